package validators

import "testing"

func TestIsDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"25/12/2025", true},
		{"01/01/2000", true},
		{"31/02/2025", false}, // dia inexistente
		{"2025-12-25", false},
		{"25/12/25", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDate(tt.in); got != tt.want {
			t.Errorf("IsDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"0900", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTimeOfDay(tt.in); got != tt.want {
			t.Errorf("IsTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
