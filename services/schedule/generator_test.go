package schedule

import (
	"testing"

	"courtside/models"
)

// 2025-02-24 is a Monday.
const monday = "2025-02-24"

func weeklyRule(dow int, start, end string, bufBefore, bufAfter int, services ...string) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:           "rule-1",
		CoachID:      "coach-1",
		LocationID:   "loc-1",
		ServiceNames: services,
		StartTime:    start,
		EndTime:      end,
		BufferBefore: bufBefore,
		BufferAfter:  bufAfter,
		Recurrence:   models.RecurrenceWeekly,
		DayOfWeek:    dow,
	}
}

func catalogue(durations map[string]int) []models.Service {
	var services []models.Service
	for name, dur := range durations {
		services = append(services, models.Service{Name: name, DurationMinutes: dur})
	}
	return services
}

func TestGenerateCandidates_BasicWalk(t *testing.T) {
	rule := weeklyRule(1, "09:00", "10:00", 0, 0, "Private Lesson")
	services := catalogue(map[string]int{"Private Lesson": 30})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
	}
	if got[0].Start != 540 || got[0].End != 570 {
		t.Errorf("first candidate = [%d, %d), want [540, 570)", got[0].Start, got[0].End)
	}
	if got[1].Start != 570 || got[1].End != 600 {
		t.Errorf("second candidate = [%d, %d), want [570, 600)", got[1].Start, got[1].End)
	}
	if got[0].Label != "09:00 - 09:30" {
		t.Errorf("label = %q, want %q", got[0].Label, "09:00 - 09:30")
	}
}

func TestGenerateCandidates_BufferAfterShrinksWalk(t *testing.T) {
	rule := weeklyRule(1, "09:00", "10:00", 0, 10, "Private Lesson")
	services := catalogue(map[string]int{"Private Lesson": 30})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	// The second candidate would start 09:40 and end 10:10, past the window.
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(got), got)
	}
	if got[0].Start != 540 || got[0].End != 570 {
		t.Errorf("candidate = [%d, %d), want [540, 570)", got[0].Start, got[0].End)
	}
}

func TestGenerateCandidates_LeadingBuffer(t *testing.T) {
	rule := weeklyRule(1, "09:00", "10:00", 15, 0, "Private Lesson")
	services := catalogue(map[string]int{"Private Lesson": 30})

	withLeading, err := GenerateCandidates(rule, monday, services, GeneratorOptions{LeadingBuffer: true})
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	if len(withLeading) != 1 || withLeading[0].Start != 555 {
		t.Fatalf("leading buffer on: expected single candidate at 09:15, got %+v", withLeading)
	}

	withoutLeading, err := GenerateCandidates(rule, monday, services, GeneratorOptions{LeadingBuffer: false})
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	if len(withoutLeading) != 2 || withoutLeading[0].Start != 540 || withoutLeading[1].Start != 570 {
		t.Fatalf("leading buffer off: expected candidates at 09:00 and 09:30, got %+v", withoutLeading)
	}
}

func TestGenerateCandidates_WindowTooShort(t *testing.T) {
	rule := weeklyRule(1, "09:00", "09:20", 0, 0, "Private Lesson")
	services := catalogue(map[string]int{"Private Lesson": 30})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("window shorter than duration must not error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 candidates, got %d", len(got))
	}
}

func TestGenerateCandidates_MissingServiceSkipped(t *testing.T) {
	rule := weeklyRule(1, "09:00", "10:00", 0, 0, "Private Lesson", "Retired Drill")
	services := catalogue(map[string]int{"Private Lesson": 30})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	for _, c := range got {
		if c.ServiceName != "Private Lesson" {
			t.Fatalf("unexpected service %q in candidates", c.ServiceName)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates from the surviving service, got %d", len(got))
	}
}

func TestGenerateCandidates_NonPositiveStepSkipped(t *testing.T) {
	// Stored data can hold a negative buffer_after that predates rule
	// validation; the walk must skip the service rather than spin forever.
	rule := weeklyRule(1, "09:00", "10:00", 0, -30, "Private Lesson", "Video Review")
	services := catalogue(map[string]int{"Private Lesson": 30, "Video Review": 45})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	for _, c := range got {
		if c.ServiceName == "Private Lesson" {
			t.Fatalf("service with zero step must yield no candidates, got %+v", c)
		}
	}
	// Video Review's step stays positive (45 - 30 = 15) and still walks.
	if len(got) == 0 {
		t.Fatal("service with a positive step should still generate candidates")
	}
}

func TestGenerateCandidates_NonMatchingDate(t *testing.T) {
	rule := weeklyRule(2, "09:00", "10:00", 0, 0, "Private Lesson") // Tuesdays
	services := catalogue(map[string]int{"Private Lesson": 30})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rule for Tuesday must yield nothing on a Monday, got %+v", got)
	}
}

func TestGenerateCandidates_WindowContainment(t *testing.T) {
	rule := weeklyRule(1, "08:30", "11:45", 10, 5, "Private Lesson", "Video Review")
	services := catalogue(map[string]int{"Private Lesson": 45, "Video Review": 25})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	windowStart, windowEnd := 510, 705
	for _, c := range got {
		if c.Start < windowStart || c.End > windowEnd {
			t.Errorf("candidate [%d, %d) escapes window [%d, %d)", c.Start, c.End, windowStart, windowEnd)
		}
	}
}

func TestGenerateCandidates_Ordering(t *testing.T) {
	rule := weeklyRule(1, "09:00", "10:00", 0, 0, "Video Review", "Private Lesson")
	services := catalogue(map[string]int{"Private Lesson": 30, "Video Review": 30})

	got, err := GenerateCandidates(rule, monday, services, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("GenerateCandidates: %v", err)
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Start > cur.Start {
			t.Fatalf("candidates out of order at %d: %+v before %+v", i, prev, cur)
		}
		if prev.Start == cur.Start && prev.ServiceName > cur.ServiceName {
			t.Fatalf("service tiebreak out of order at %d: %q before %q", i, prev.ServiceName, cur.ServiceName)
		}
	}
}
