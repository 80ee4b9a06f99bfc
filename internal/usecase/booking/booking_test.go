package booking

import (
	"context"
	"strings"
	"testing"

	domain "github.com/BruksfildServices01/barbearia-app/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/storage"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Load(context.Background(), storage.NewMemoryKV())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

// Cenário completo da reserva: pedido → pendente → confirmado (horário
// ocupado) → cancelado (horário liberado de novo).
func TestBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	createUC := NewCreateBooking(st, nil)
	confirmUC := NewConfirmAppointment(st)
	cancelUC := NewCancelAppointment(st)
	availabilityUC := NewGetAvailability(st)

	const date = "25/12/2025"

	in := CreateBookingInput{
		ClientName:  "João",
		ClientPhone: "21999990000",
		ServiceID:   "1", // Corte Simples, R$ 30,00
		Date:        date,
		Time:        "10:00",
	}

	ap, waURL, err := createUC.Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ap.ID != 1 {
		t.Errorf("first appointment id = %d, want 1", ap.ID)
	}
	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want pending", ap.Status)
	}
	if ap.ServiceName != "Corte Simples" || ap.Price != 30.0 {
		t.Errorf("denormalized service = %q / %.2f", ap.ServiceName, ap.Price)
	}
	if ap.DateTime != date+" 10:00" {
		t.Errorf("DateTime = %q", ap.DateTime)
	}
	if !strings.HasPrefix(waURL, "https://wa.me/") {
		t.Errorf("whatsapp url = %q", waURL)
	}

	// Admin confirma.
	confirmed, err := confirmUC.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != string(domain.StatusScheduled) {
		t.Errorf("status = %q, want scheduled", confirmed.Status)
	}

	// Mesmo horário agora indisponível.
	if _, _, err := createUC.Execute(ctx, in); !httperr.IsBusiness(err, "slot_unavailable") {
		t.Errorf("double booking: err = %v, want slot_unavailable", err)
	}
	for _, slot := range availabilityUC.Execute(date) {
		if slot.Time == "10:00" && slot.Available {
			t.Error("10:00 reported available while scheduled")
		}
	}

	// Admin cancela; horário volta a ficar livre.
	canceled, err := cancelUC.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if canceled.Status != string(domain.StatusCanceled) {
		t.Errorf("status = %q, want canceled", canceled.Status)
	}
	if canceled.CanceledAt == nil {
		t.Error("CanceledAt not stamped")
	}

	found := false
	for _, slot := range availabilityUC.Execute(date) {
		if slot.Time == "10:00" {
			found = true
			if !slot.Available {
				t.Error("10:00 still unavailable after cancel")
			}
		}
	}
	if !found {
		t.Fatal("10:00 missing from the grid")
	}

	// Nova reserva no mesmo horário recebe o próximo ID.
	ap2, _, err := createUC.Execute(ctx, in)
	if err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
	if ap2.ID != 2 {
		t.Errorf("rebooked id = %d, want 2", ap2.ID)
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	st := newTestStore(t)
	createUC := NewCreateBooking(st, nil)

	_, _, err := createUC.Execute(context.Background(), CreateBookingInput{
		ClientName:  "João",
		ClientPhone: "21999990000",
		ServiceID:   "999",
		Date:        "25/12/2025",
		Time:        "10:00",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("err = %v, want service_not_found", err)
	}
}

func TestTransitionsOnMissingAppointment(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := NewConfirmAppointment(st).Execute(ctx, 42); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("confirm: err = %v, want appointment_not_found", err)
	}
	if _, err := NewCancelAppointment(st).Execute(ctx, 42); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("cancel: err = %v, want appointment_not_found", err)
	}
	if _, err := NewCompleteAppointment(st).Execute(ctx, 42); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("complete: err = %v, want appointment_not_found", err)
	}
}

func TestAvailabilityGridFollowsConfig(t *testing.T) {
	st := newTestStore(t)

	slots := NewGetAvailability(st).Execute("25/12/2025")

	// 09:00–20:00 de meia em meia hora.
	if len(slots) != 22 {
		t.Fatalf("got %d slots, want 22", len(slots))
	}
	if slots[0].Time != "09:00" || slots[len(slots)-1].Time != "19:30" {
		t.Errorf("grid spans %s–%s", slots[0].Time, slots[len(slots)-1].Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s unavailable on empty agenda", s.Time)
		}
	}
}
