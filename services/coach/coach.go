package coach

import (
	"context"
	"fmt"

	coachRepo "courtside/database/repository/coach"
	ruleRepo "courtside/database/repository/rule"
	"courtside/models"
	"courtside/services/schedule"
)

// CoachService covers the coach self-service surface: profile CRUD, the
// bookable service catalogue, and availability rules. Rule and catalogue
// validation happens here, before anything is persisted.
type CoachService interface {
	CreateCoach(ctx context.Context, coach *models.Coach) (*models.Coach, error)
	GetCoach(ctx context.Context, coachID string) (*models.Coach, error)
	DeleteCoach(ctx context.Context, coachID string) error

	AddService(ctx context.Context, coachID string, req models.ServiceRequest) (*models.Coach, error)
	RemoveService(ctx context.Context, coachID, serviceName string) (*models.Coach, error)

	CreateRule(ctx context.Context, coachID string, req models.RuleRequest) (*models.AvailabilityRule, error)
	ListRules(ctx context.Context, coachID string) ([]models.AvailabilityRule, error)
	DeleteRule(ctx context.Context, coachID, ruleID string) error
}

// DefaultCoachService is the concrete implementation.
type DefaultCoachService struct {
	Repo    coachRepo.CoachRepository
	Rules   ruleRepo.RuleRepository
	Engine  *schedule.Engine
	Refresh RefreshEnqueuer
}

// RefreshEnqueuer schedules a background availability-cache rewarm for a
// coach. May be nil when no worker is running.
type RefreshEnqueuer interface {
	EnqueueAvailabilityRefresh(coachID string) error
}

func (s *DefaultCoachService) CreateCoach(ctx context.Context, coach *models.Coach) (*models.Coach, error) {
	if coach.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	for _, svc := range coach.Services {
		if err := validateService(svc); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.Create(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}
	return coach, nil
}

func (s *DefaultCoachService) GetCoach(ctx context.Context, coachID string) (*models.Coach, error) {
	coach, err := s.Repo.GetByID(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coach: %w", err)
	}
	if coach == nil {
		return nil, schedule.ErrCoachNotFound
	}
	return coach, nil
}

func (s *DefaultCoachService) DeleteCoach(ctx context.Context, coachID string) error {
	if err := s.Repo.Delete(ctx, coachID); err != nil {
		return fmt.Errorf("failed to delete coach: %w", err)
	}
	s.afterAvailabilityChange(ctx, coachID)
	return nil
}

func (s *DefaultCoachService) AddService(ctx context.Context, coachID string, req models.ServiceRequest) (*models.Coach, error) {
	svc := models.Service{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Color:           req.Color,
	}
	if err := validateService(svc); err != nil {
		return nil, err
	}
	if err := s.Repo.AddService(ctx, coachID, svc); err != nil {
		return nil, fmt.Errorf("failed to add service %q: %w", svc.Name, err)
	}
	s.afterAvailabilityChange(ctx, coachID)
	return s.GetCoach(ctx, coachID)
}

// RemoveService drops a catalogue entry. Rules that still name the service
// keep their other services; the generator skips the missing name silently.
func (s *DefaultCoachService) RemoveService(ctx context.Context, coachID, serviceName string) (*models.Coach, error) {
	if err := s.Repo.RemoveService(ctx, coachID, serviceName); err != nil {
		return nil, fmt.Errorf("failed to remove service %q: %w", serviceName, err)
	}
	s.afterAvailabilityChange(ctx, coachID)
	return s.GetCoach(ctx, coachID)
}

func (s *DefaultCoachService) CreateRule(ctx context.Context, coachID string, req models.RuleRequest) (*models.AvailabilityRule, error) {
	coach, err := s.GetCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}

	rule := models.AvailabilityRule{
		CoachID:      coachID,
		LocationID:   req.LocationID,
		ServiceNames: req.ServiceNames,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BufferBefore: req.BufferBefore,
		BufferAfter:  req.BufferAfter,
		Recurrence:   req.Recurrence,
		Date:         req.Date,
		DayOfWeek:    req.DayOfWeek,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := schedule.ValidateRule(rule, coach); err != nil {
		return nil, err
	}

	if err := s.Rules.Create(ctx, &rule); err != nil {
		return nil, fmt.Errorf("failed to create availability rule: %w", err)
	}
	s.afterAvailabilityChange(ctx, coachID)
	return &rule, nil
}

func (s *DefaultCoachService) ListRules(ctx context.Context, coachID string) ([]models.AvailabilityRule, error) {
	rules, err := s.Rules.GetByCoach(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	return rules, nil
}

func (s *DefaultCoachService) DeleteRule(ctx context.Context, coachID, ruleID string) error {
	if err := s.Rules.DeleteByID(ctx, coachID, ruleID); err != nil {
		return fmt.Errorf("failed to delete availability rule: %w", err)
	}
	s.afterAvailabilityChange(ctx, coachID)
	return nil
}

// afterAvailabilityChange drops every cached slot view for the coach and, when
// a worker is wired, schedules a background rewarm.
func (s *DefaultCoachService) afterAvailabilityChange(ctx context.Context, coachID string) {
	if s.Engine != nil {
		s.Engine.InvalidateCoach(ctx, coachID)
	}
	if s.Refresh != nil {
		if err := s.Refresh.EnqueueAvailabilityRefresh(coachID); err != nil && s.Engine != nil {
			s.Engine.Logger.Warn("failed to enqueue availability refresh: " + err.Error())
		}
	}
}

func validateService(svc models.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("service %q: duration must be a positive number of minutes", svc.Name)
	}
	return nil
}
