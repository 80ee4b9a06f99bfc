package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-app/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/notify"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientPhone string
	ServiceID   string

	Date string // "DD/MM/YYYY"
	Time string // "HH:mm"
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	store  *store.Store
	notify *notify.Dispatcher
}

func NewCreateBooking(
	st *store.Store,
	dispatcher *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		store:  st,
		notify: dispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute registra um pedido de agendamento com status pending e
// devolve, junto do registro, o deep link de confirmação via WhatsApp.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (models.Appointment, string, error) {

	svc, ok := uc.store.Service(in.ServiceID)
	if !ok {
		return models.Appointment{}, "", httperr.ErrBusiness("service_not_found")
	}

	// Disponibilidade, ID sequencial e gravação acontecem na mesma
	// seção crítica: escritor único de fato.
	ap, err := uc.store.AddAppointmentWith(ctx, func(appointments []models.Appointment) (models.Appointment, error) {
		if !domain.IsSlotAvailable(appointments, in.Date, in.Time) {
			return models.Appointment{}, httperr.ErrBusiness("slot_unavailable")
		}

		return models.Appointment{
			ID:          domain.NextID(appointments),
			ClientName:  in.ClientName,
			ClientPhone: in.ClientPhone,
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.Price,
			DateTime:    in.Date + " " + in.Time,
			Status:      string(domain.InitialStatus()),
			CreatedAt:   timefmt.FormatDateTime(timefmt.Now()),
		}, nil
	})
	if err != nil {
		return models.Appointment{}, "", err
	}

	cfg := uc.store.Config()

	uc.notify.Dispatch(notify.Event{
		ShopName:    cfg.Name,
		Appointment: ap,
	})

	url := notify.WhatsAppURL(cfg.WhatsApp, notify.ConfirmationMessage(ap))

	return ap, url, nil
}
