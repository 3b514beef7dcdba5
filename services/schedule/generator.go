package schedule

import (
	"fmt"
	"sort"

	"courtside/models"
	"courtside/utils"
)

// GeneratorOptions parameterizes the buffer convention of the slot walk.
//
// The convention is fixed as follows: the advance step between consecutive
// candidates is always service duration + buffer_after. BufferBefore is
// applied exactly once, shifting the walk start past the window edge, and
// only when LeadingBuffer is true (the default).
type GeneratorOptions struct {
	LeadingBuffer bool
}

// DefaultGeneratorOptions returns the production convention.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{LeadingBuffer: true}
}

// GenerateCandidates expands one availability rule into candidate slots for a
// specific date, one walk per service named by the rule. Rules that do not
// match the date yield no candidates. A service name no longer present in the
// catalogue is silently skipped; a window too short for a service's duration
// yields zero candidates for that service, never an error.
func GenerateCandidates(
	rule models.AvailabilityRule,
	date string,
	services []models.Service,
	opts GeneratorOptions,
) ([]models.CandidateSlot, error) {
	if !RuleMatchesDate(rule, date) {
		return nil, nil
	}

	windowStart, err := utils.ParseClock(rule.StartTime)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
	}
	windowEnd, err := utils.ParseClock(rule.EndTime)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
	}

	byName := make(map[string]models.Service, len(services))
	for _, svc := range services {
		byName[svc.Name] = svc
	}

	walkStart := windowStart
	if opts.LeadingBuffer {
		walkStart += rule.BufferBefore
	}

	var candidates []models.CandidateSlot
	for _, name := range rule.ServiceNames {
		svc, ok := byName[name]
		if !ok || svc.DurationMinutes <= 0 {
			continue
		}
		// A non-positive step would never advance the walk. Rules with a
		// negative buffer_after never pass validation, but stored data may
		// predate it.
		step := svc.DurationMinutes + rule.BufferAfter
		if step <= 0 {
			continue
		}

		for cursor := walkStart; cursor+svc.DurationMinutes <= windowEnd; cursor += step {
			end := cursor + svc.DurationMinutes
			candidates = append(candidates, models.CandidateSlot{
				Date:         date,
				ServiceName:  svc.Name,
				LocationID:   rule.LocationID,
				Start:        cursor,
				End:          end,
				Label:        utils.FormatClock(cursor) + " - " + utils.FormatClock(end),
				BufferBefore: rule.BufferBefore,
				BufferAfter:  rule.BufferAfter,
			})
		}
	}

	SortCandidates(candidates)
	return candidates, nil
}

// SortCandidates orders slots ascending by start time, then service name.
// The order is total, so repeated calls over the same inputs render the same
// calendar.
func SortCandidates(candidates []models.CandidateSlot) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].ServiceName < candidates[j].ServiceName
	})
}
