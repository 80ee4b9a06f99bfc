package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barbearia-app/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
)

// As três ações administrativas do ciclo de vida compartilham o mesmo
// esqueleto: localizar o registro, validar a transição, gravar.

type ConfirmAppointment struct {
	store *store.Store
}

func NewConfirmAppointment(st *store.Store) *ConfirmAppointment {
	return &ConfirmAppointment{store: st}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, id int) (models.Appointment, error) {
	return transition(ctx, uc.store, id, func(ap *models.Appointment) error {
		return domain.Confirm(ap)
	})
}

type CancelAppointment struct {
	store *store.Store
}

func NewCancelAppointment(st *store.Store) *CancelAppointment {
	return &CancelAppointment{store: st}
}

func (uc *CancelAppointment) Execute(ctx context.Context, id int) (models.Appointment, error) {
	return transition(ctx, uc.store, id, func(ap *models.Appointment) error {
		return domain.Cancel(ap, timefmt.Now())
	})
}

type CompleteAppointment struct {
	store *store.Store
}

func NewCompleteAppointment(st *store.Store) *CompleteAppointment {
	return &CompleteAppointment{store: st}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, id int) (models.Appointment, error) {
	return transition(ctx, uc.store, id, func(ap *models.Appointment) error {
		return domain.Complete(ap, timefmt.Now())
	})
}

func transition(ctx context.Context, st *store.Store, id int, fn func(*models.Appointment) error) (models.Appointment, error) {
	ap, err := st.MutateAppointment(ctx, id, fn)
	if errors.Is(err, store.ErrNotFound) {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, err
}
