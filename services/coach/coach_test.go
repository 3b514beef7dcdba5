package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"courtside/models"
	"courtside/services/schedule"
)

type fakeCoachRepo struct {
	coaches map[string]*models.Coach
}

func newFakeCoachRepo(coaches ...*models.Coach) *fakeCoachRepo {
	repo := &fakeCoachRepo{coaches: make(map[string]*models.Coach)}
	for _, c := range coaches {
		repo.coaches[c.ID] = c
	}
	return repo
}

func (r *fakeCoachRepo) Create(ctx context.Context, coach *models.Coach) error {
	if coach.ID == "" {
		coach.ID = "coach-generated"
	}
	r.coaches[coach.ID] = coach
	return nil
}

func (r *fakeCoachRepo) GetByID(ctx context.Context, coachID string) (*models.Coach, error) {
	return r.coaches[coachID], nil
}

func (r *fakeCoachRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.coaches))
	for id := range r.coaches {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeCoachRepo) GetByEmail(ctx context.Context, email string) (*models.Coach, error) {
	for _, c := range r.coaches {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCoachRepo) Update(ctx context.Context, coach *models.Coach) error {
	r.coaches[coach.ID] = coach
	return nil
}

func (r *fakeCoachRepo) Delete(ctx context.Context, coachID string) error {
	delete(r.coaches, coachID)
	return nil
}

func (r *fakeCoachRepo) AddService(ctx context.Context, coachID string, svc models.Service) error {
	c, ok := r.coaches[coachID]
	if !ok {
		return nil
	}
	for _, existing := range c.Services {
		if existing.Name == svc.Name {
			return nil
		}
	}
	c.Services = append(c.Services, svc)
	return nil
}

func (r *fakeCoachRepo) RemoveService(ctx context.Context, coachID, serviceName string) error {
	c, ok := r.coaches[coachID]
	if !ok {
		return nil
	}
	var kept []models.Service
	for _, svc := range c.Services {
		if svc.Name != serviceName {
			kept = append(kept, svc)
		}
	}
	c.Services = kept
	return nil
}

func (r *fakeCoachRepo) EnsureIndexes() error { return nil }

type fakeRuleRepo struct {
	rules map[string]*models.AvailabilityRule
}

func (r *fakeRuleRepo) Create(ctx context.Context, rule *models.AvailabilityRule) error {
	if rule.ID == "" {
		rule.ID = "rule-generated"
	}
	r.rules[rule.ID] = rule
	return nil
}

func (r *fakeRuleRepo) GetByID(ctx context.Context, ruleID string) (*models.AvailabilityRule, error) {
	return r.rules[ruleID], nil
}

func (r *fakeRuleRepo) GetByCoach(ctx context.Context, coachID string) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, rule := range r.rules {
		if rule.CoachID == coachID {
			out = append(out, *rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) Update(ctx context.Context, rule *models.AvailabilityRule) error {
	r.rules[rule.ID] = rule
	return nil
}

func (r *fakeRuleRepo) DeleteByID(ctx context.Context, coachID, ruleID string) error {
	rule, ok := r.rules[ruleID]
	if !ok || rule.CoachID != coachID {
		return mongo.ErrNoDocuments
	}
	delete(r.rules, ruleID)
	return nil
}

func (r *fakeRuleRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultCoachService, *fakeCoachRepo, *fakeRuleRepo) {
	coaches := newFakeCoachRepo(&models.Coach{
		ID:    "coach-1",
		Name:  "Alex",
		Email: "alex@example.com",
		Services: []models.Service{
			{Name: "Private Lesson", DurationMinutes: 30},
		},
	})
	rules := &fakeRuleRepo{rules: make(map[string]*models.AvailabilityRule)}
	return &DefaultCoachService{Repo: coaches, Rules: rules}, coaches, rules
}

func weeklyRequest(services ...string) models.RuleRequest {
	return models.RuleRequest{
		LocationID:   "loc-1",
		ServiceNames: services,
		StartTime:    "09:00",
		EndTime:      "12:00",
		Recurrence:   models.RecurrenceWeekly,
		DayOfWeek:    1,
	}
}

func TestCreateCoach_RequiresEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateCoach(context.Background(), &models.Coach{Name: "No Email"})
	if err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("got %v, want email validation error", err)
	}
}

func TestCreateCoach_RejectsBadService(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateCoach(context.Background(), &models.Coach{
		Name:     "Sam",
		Email:    "sam@example.com",
		Services: []models.Service{{Name: "Clinic", DurationMinutes: 0}},
	})
	if err == nil || !strings.Contains(err.Error(), "duration") {
		t.Fatalf("got %v, want duration validation error", err)
	}
}

func TestGetCoach_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetCoach(context.Background(), "coach-404")
	if !errors.Is(err, schedule.ErrCoachNotFound) {
		t.Fatalf("got %v, want ErrCoachNotFound", err)
	}
}

func TestAddService_RejectsInvalid(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddService(ctx, "coach-1", models.ServiceRequest{Name: "", DurationMinutes: 30})
	if err == nil {
		t.Fatal("expected error for unnamed service")
	}
	_, err = svc.AddService(ctx, "coach-1", models.ServiceRequest{Name: "Clinic", DurationMinutes: -10})
	if err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestAddAndRemoveService(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	coach, err := svc.AddService(ctx, "coach-1", models.ServiceRequest{Name: "Group Clinic", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if coach.ServiceByName("Group Clinic") == nil {
		t.Fatal("added service missing from catalogue")
	}

	coach, err = svc.RemoveService(ctx, "coach-1", "Group Clinic")
	if err != nil {
		t.Fatalf("RemoveService: %v", err)
	}
	if coach.ServiceByName("Group Clinic") != nil {
		t.Fatal("removed service still in catalogue")
	}
}

func TestCreateRule_ValidatesAgainstCatalogue(t *testing.T) {
	svc, _, rules := newTestService()
	ctx := context.Background()

	rule, err := svc.CreateRule(ctx, "coach-1", weeklyRequest("Private Lesson"))
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}
	if rule.ID == "" || rule.CoachID != "coach-1" {
		t.Fatalf("unexpected rule %+v", rule)
	}
	if len(rules.rules) != 1 {
		t.Fatalf("expected 1 persisted rule, got %d", len(rules.rules))
	}

	_, err = svc.CreateRule(ctx, "coach-1", weeklyRequest("Cryotherapy"))
	if !errors.Is(err, schedule.ErrInvalidRule) {
		t.Fatalf("rule naming an unknown service: got %v, want ErrInvalidRule", err)
	}
	if len(rules.rules) != 1 {
		t.Fatal("invalid rule must not be persisted")
	}
}

func TestCreateRule_UnknownCoach(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRule(context.Background(), "coach-404", weeklyRequest("Private Lesson"))
	if !errors.Is(err, schedule.ErrCoachNotFound) {
		t.Fatalf("got %v, want ErrCoachNotFound", err)
	}
}

func TestDeleteRule_ScopedToCoach(t *testing.T) {
	svc, _, rules := newTestService()
	ctx := context.Background()

	rule, err := svc.CreateRule(ctx, "coach-1", weeklyRequest("Private Lesson"))
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}

	// Another coach's ID must not delete this rule.
	if err := svc.DeleteRule(ctx, "coach-2", rule.ID); err == nil {
		t.Fatal("expected error when deleting another coach's rule")
	}
	if len(rules.rules) != 1 {
		t.Fatal("rule deleted by the wrong coach")
	}

	if err := svc.DeleteRule(ctx, "coach-1", rule.ID); err != nil {
		t.Fatalf("DeleteRule: %v", err)
	}
	if len(rules.rules) != 0 {
		t.Fatal("rule not deleted by its owner")
	}
}
