package schedule

import (
	"fmt"

	"courtside/models"
	"courtside/utils"
)

// RuleMatchesDate reports whether a rule's recurrence applies to the given
// civil date: exact date match for one-off rules; same weekday inside
// [StartDate, EndDate] for weekly rules, with a missing EndDate treated as
// open-ended. Malformed dates simply do not match.
func RuleMatchesDate(rule models.AvailabilityRule, date string) bool {
	switch rule.Recurrence {
	case models.RecurrenceOneOff:
		return rule.Date == date
	case models.RecurrenceWeekly:
		dow, err := utils.DayOfWeek(date)
		if err != nil || dow != rule.DayOfWeek {
			return false
		}
		if rule.StartDate != "" && date < rule.StartDate {
			return false
		}
		if rule.EndDate != "" && date > rule.EndDate {
			return false
		}
		return true
	default:
		return false
	}
}

// ValidateRule checks the structural invariants of a rule against the coach's
// catalogue. Violations surface as ErrInvalidRule and block persistence.
func ValidateRule(rule models.AvailabilityRule, coach *models.Coach) error {
	start, err := utils.ParseClock(rule.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start_time %q: %v", ErrInvalidRule, rule.StartTime, err)
	}
	end, err := utils.ParseClock(rule.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end_time %q: %v", ErrInvalidRule, rule.EndTime, err)
	}
	if end <= start {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidRule)
	}
	if rule.BufferBefore < 0 || rule.BufferAfter < 0 {
		return fmt.Errorf("%w: buffers must not be negative", ErrInvalidRule)
	}
	if len(rule.ServiceNames) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidRule)
	}
	for _, name := range rule.ServiceNames {
		if coach.ServiceByName(name) == nil {
			return fmt.Errorf("%w: service %q is not in the coach's catalogue", ErrInvalidRule, name)
		}
	}

	switch rule.Recurrence {
	case models.RecurrenceOneOff:
		if _, err := utils.ParseDate(rule.Date); err != nil {
			return fmt.Errorf("%w: one-off rule needs a valid date", ErrInvalidRule)
		}
	case models.RecurrenceWeekly:
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return fmt.Errorf("%w: day_of_week must be 0..6", ErrInvalidRule)
		}
		if rule.StartDate != "" {
			if _, err := utils.ParseDate(rule.StartDate); err != nil {
				return fmt.Errorf("%w: invalid start_date", ErrInvalidRule)
			}
		}
		if rule.EndDate != "" {
			if _, err := utils.ParseDate(rule.EndDate); err != nil {
				return fmt.Errorf("%w: invalid end_date", ErrInvalidRule)
			}
			if rule.StartDate != "" && rule.EndDate < rule.StartDate {
				return fmt.Errorf("%w: end_date is before start_date", ErrInvalidRule)
			}
		}
	default:
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidRule, rule.Recurrence)
	}

	return nil
}
