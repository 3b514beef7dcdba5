package utils

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"ab:cd", 0, true},
		{"09:3x", 0, true},
		{"09:+5", 0, true},
		{"+9:30", 0, true},
		{"0 :30", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes++ {
		s := FormatClock(minutes)
		back, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)) failed: %v", minutes, err)
		}
		if back != minutes {
			t.Fatalf("round trip %d -> %q -> %d", minutes, s, back)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-02-23", 0}, // Sunday
		{"2025-02-24", 1}, // Monday
		{"2025-03-01", 6}, // Saturday
	}
	for _, tt := range tests {
		got, err := DayOfWeek(tt.date)
		if err != nil {
			t.Fatalf("DayOfWeek(%q): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("DayOfWeek(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}

	if _, err := DayOfWeek("02/24/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}
