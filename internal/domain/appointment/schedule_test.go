package appointment

import (
	"testing"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
		first string
		last  string
	}{
		{
			name:  "full business day",
			start: "09:00",
			end:   "20:00",
			want:  22,
			first: "09:00",
			last:  "19:30",
		},
		{
			name:  "single slot",
			start: "09:00",
			end:   "09:30",
			want:  1,
			first: "09:00",
			last:  "09:00",
		},
		{
			name:  "minute overflow carries into hour",
			start: "09:30",
			end:   "11:00",
			want:  3,
			first: "09:30",
			last:  "10:30",
		},
		{
			name:  "end is exclusive",
			start: "18:00",
			end:   "19:00",
			want:  2,
			first: "18:00",
			last:  "18:30",
		},
		{
			name:  "degenerate equal boundaries",
			start: "10:00",
			end:   "10:00",
			want:  0,
		},
		{
			name:  "degenerate inverted boundaries",
			start: "20:00",
			end:   "09:00",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateTimeSlots(tt.start, tt.end)

			if len(slots) != tt.want {
				t.Fatalf("got %d slots, want %d: %v", len(slots), tt.want, slots)
			}
			if tt.want == 0 {
				return
			}

			if slots[0] != tt.first {
				t.Errorf("first slot = %q, want %q", slots[0], tt.first)
			}
			if slots[len(slots)-1] != tt.last {
				t.Errorf("last slot = %q, want %q", slots[len(slots)-1], tt.last)
			}

			for i := 1; i < len(slots); i++ {
				if slots[i] <= slots[i-1] {
					t.Errorf("slots not strictly increasing at %d: %q <= %q", i, slots[i], slots[i-1])
				}
			}

			if slots[len(slots)-1] >= tt.end {
				t.Errorf("last slot %q not strictly before end %q", slots[len(slots)-1], tt.end)
			}
		})
	}
}

func TestIsSlotAvailable(t *testing.T) {
	occupied := func(status Status) []models.Appointment {
		return []models.Appointment{
			{ID: 1, DateTime: "25/12/2025 10:00", Status: string(status)},
		}
	}

	tests := []struct {
		name         string
		appointments []models.Appointment
		date         string
		time         string
		want         bool
	}{
		{
			name:         "empty agenda",
			appointments: nil,
			date:         "25/12/2025",
			time:         "10:00",
			want:         true,
		},
		{
			name:         "blocked by scheduled",
			appointments: occupied(StatusScheduled),
			date:         "25/12/2025",
			time:         "10:00",
			want:         false,
		},
		{
			name:         "blocked by pending",
			appointments: occupied(StatusPending),
			date:         "25/12/2025",
			time:         "10:00",
			want:         false,
		},
		{
			name:         "canceled frees the slot",
			appointments: occupied(StatusCanceled),
			date:         "25/12/2025",
			time:         "10:00",
			want:         true,
		},
		{
			name:         "completed frees the slot",
			appointments: occupied(StatusCompleted),
			date:         "25/12/2025",
			time:         "10:00",
			want:         true,
		},
		{
			name:         "different time same day",
			appointments: occupied(StatusScheduled),
			date:         "25/12/2025",
			time:         "10:30",
			want:         true,
		},
		{
			name:         "same time different day",
			appointments: occupied(StatusScheduled),
			date:         "26/12/2025",
			time:         "10:00",
			want:         true,
		},
		{
			name: "one live booking among dead ones",
			appointments: []models.Appointment{
				{ID: 1, DateTime: "25/12/2025 10:00", Status: string(StatusCanceled)},
				{ID: 2, DateTime: "25/12/2025 10:00", Status: string(StatusScheduled)},
			},
			date: "25/12/2025",
			time: "10:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSlotAvailable(tt.appointments, tt.date, tt.time)
			if got != tt.want {
				t.Errorf("IsSlotAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{name: "empty list", ids: nil, want: 1},
		{name: "single", ids: []int{1}, want: 2},
		{name: "max plus one regardless of order", ids: []int{3, 7, 2}, want: 8},
		{name: "gaps are not reused", ids: []int{1, 5}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments := make([]models.Appointment, 0, len(tt.ids))
			for _, id := range tt.ids {
				appointments = append(appointments, models.Appointment{ID: id})
			}

			if got := NextID(appointments); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}
