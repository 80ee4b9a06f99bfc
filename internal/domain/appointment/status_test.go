package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		action  func(*models.Appointment) error
		wantErr bool
		wantTo  Status
	}{
		{
			name:   "pending can be confirmed",
			from:   StatusPending,
			action: Confirm,
			wantTo: StatusScheduled,
		},
		{
			name:    "pending can be canceled",
			from:    StatusPending,
			action:  func(ap *models.Appointment) error { return Cancel(ap, time.Now()) },
			wantTo:  StatusCanceled,
			wantErr: false,
		},
		{
			name:    "pending cannot be completed",
			from:    StatusPending,
			action:  func(ap *models.Appointment) error { return Complete(ap, time.Now()) },
			wantErr: true,
		},
		{
			name:   "scheduled can be completed",
			from:   StatusScheduled,
			action: func(ap *models.Appointment) error { return Complete(ap, time.Now()) },
			wantTo: StatusCompleted,
		},
		{
			name:   "scheduled can be canceled",
			from:   StatusScheduled,
			action: func(ap *models.Appointment) error { return Cancel(ap, time.Now()) },
			wantTo: StatusCanceled,
		},
		{
			name:    "scheduled cannot be confirmed again",
			from:    StatusScheduled,
			action:  Confirm,
			wantErr: true,
		},
		{
			name:    "canceled is terminal for confirm",
			from:    StatusCanceled,
			action:  Confirm,
			wantErr: true,
		},
		{
			name:    "canceled is terminal for cancel",
			from:    StatusCanceled,
			action:  func(ap *models.Appointment) error { return Cancel(ap, time.Now()) },
			wantErr: true,
		},
		{
			name:    "canceled is terminal for complete",
			from:    StatusCanceled,
			action:  func(ap *models.Appointment) error { return Complete(ap, time.Now()) },
			wantErr: true,
		},
		{
			name:    "completed is terminal for cancel",
			from:    StatusCompleted,
			action:  func(ap *models.Appointment) error { return Cancel(ap, time.Now()) },
			wantErr: true,
		},
		{
			name:    "completed is terminal for complete",
			from:    StatusCompleted,
			action:  func(ap *models.Appointment) error { return Complete(ap, time.Now()) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := models.Appointment{ID: 1, Status: string(tt.from)}

			err := tt.action(&ap)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected transition error, got none (status now %q)", ap.Status)
				}
				if ap.Status != string(tt.from) {
					t.Errorf("rejected transition mutated status: %q → %q", tt.from, ap.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.Status != string(tt.wantTo) {
				t.Errorf("status = %q, want %q", ap.Status, tt.wantTo)
			}
		})
	}
}

func TestTransitionTimestamps(t *testing.T) {
	now := time.Date(2025, 12, 25, 14, 30, 0, 0, time.UTC)

	ap := models.Appointment{ID: 1, Status: string(StatusScheduled)}
	if err := Complete(&ap, now); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if ap.CompletedAt == nil || *ap.CompletedAt != "25/12/2025 14:30" {
		t.Errorf("CompletedAt = %v, want 25/12/2025 14:30", ap.CompletedAt)
	}

	ap = models.Appointment{ID: 2, Status: string(StatusPending)}
	if err := Cancel(&ap, now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.CanceledAt == nil || *ap.CanceledAt != "25/12/2025 14:30" {
		t.Errorf("CanceledAt = %v, want 25/12/2025 14:30", ap.CanceledAt)
	}
}
