package timefmt

import (
	"testing"
	"time"
)

func TestFormatting(t *testing.T) {
	ref := time.Date(2025, time.March, 7, 8, 5, 0, 0, time.UTC)

	if got := FormatDate(ref); got != "07/03/2025" {
		t.Errorf("FormatDate = %q, want 07/03/2025", got)
	}
	if got := FormatDateTime(ref); got != "07/03/2025 08:05" {
		t.Errorf("FormatDateTime = %q, want 07/03/2025 08:05", got)
	}
}

func TestDayName(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC), "Domingo"},
		{time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC), "Segunda"},
		{time.Date(2025, time.December, 27, 0, 0, 0, 0, time.UTC), "Sábado"},
	}

	for _, tt := range tests {
		if got := DayName(tt.date); got != tt.want {
			t.Errorf("DayName(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("25/12/2025")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Day() != 25 || d.Month() != time.December || d.Year() != 2025 {
		t.Errorf("ParseDate returned %v", d)
	}

	if _, err := ParseDate("2025-12-25"); err == nil {
		t.Error("ParseDate accepted ISO format")
	}
}
