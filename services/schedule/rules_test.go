package schedule

import (
	"errors"
	"testing"

	"courtside/models"
)

func TestRuleMatchesDate(t *testing.T) {
	tests := []struct {
		name string
		rule models.AvailabilityRule
		date string
		want bool
	}{
		{
			name: "one-off exact date",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceOneOff, Date: monday},
			date: monday,
			want: true,
		},
		{
			name: "one-off other date",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceOneOff, Date: monday},
			date: "2025-02-25",
			want: false,
		},
		{
			name: "weekly matching weekday, open-ended",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceWeekly, DayOfWeek: 1},
			date: monday,
			want: true,
		},
		{
			name: "weekly wrong weekday",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceWeekly, DayOfWeek: 3},
			date: monday,
			want: false,
		},
		{
			name: "weekly inside date range",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceWeekly, DayOfWeek: 1, StartDate: "2025-02-01", EndDate: "2025-03-01"},
			date: monday,
			want: true,
		},
		{
			name: "weekly end date is inclusive",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceWeekly, DayOfWeek: 1, StartDate: "2025-02-01", EndDate: monday},
			date: monday,
			want: true,
		},
		{
			name: "weekly before start date",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceWeekly, DayOfWeek: 1, StartDate: "2025-03-01"},
			date: monday,
			want: false,
		},
		{
			name: "weekly after end date",
			rule: models.AvailabilityRule{Recurrence: models.RecurrenceWeekly, DayOfWeek: 1, EndDate: "2025-02-17"},
			date: monday,
			want: false,
		},
	}

	for _, tt := range tests {
		if got := RuleMatchesDate(tt.rule, tt.date); got != tt.want {
			t.Errorf("%s: RuleMatchesDate = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidateRule(t *testing.T) {
	coach := &models.Coach{
		ID:       "coach-1",
		Services: []models.Service{{Name: "Private Lesson", DurationMinutes: 30}},
	}

	valid := weeklyRule(1, "09:00", "10:00", 0, 0, "Private Lesson")
	if err := ValidateRule(valid, coach); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.AvailabilityRule)
	}{
		{"end before start", func(r *models.AvailabilityRule) { r.StartTime, r.EndTime = "10:00", "09:00" }},
		{"end equals start", func(r *models.AvailabilityRule) { r.EndTime = r.StartTime }},
		{"malformed start", func(r *models.AvailabilityRule) { r.StartTime = "9am" }},
		{"negative buffer", func(r *models.AvailabilityRule) { r.BufferAfter = -5 }},
		{"no services", func(r *models.AvailabilityRule) { r.ServiceNames = nil }},
		{"unknown service", func(r *models.AvailabilityRule) { r.ServiceNames = []string{"Ghost"} }},
		{"bad weekday", func(r *models.AvailabilityRule) { r.DayOfWeek = 7 }},
		{"end date before start date", func(r *models.AvailabilityRule) {
			r.StartDate, r.EndDate = "2025-03-01", "2025-02-01"
		}},
	}

	for _, tt := range tests {
		rule := valid
		rule.ServiceNames = append([]string(nil), valid.ServiceNames...)
		tt.mutate(&rule)
		err := ValidateRule(rule, coach)
		if err == nil {
			t.Errorf("%s: expected ErrInvalidRule, got nil", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidRule) {
			t.Errorf("%s: error %v does not wrap ErrInvalidRule", tt.name, err)
		}
	}

	oneOff := valid
	oneOff.Recurrence = models.RecurrenceOneOff
	oneOff.Date = ""
	if err := ValidateRule(oneOff, coach); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("one-off without date: got %v, want ErrInvalidRule", err)
	}
}
