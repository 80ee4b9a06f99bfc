package appointment

import "github.com/BruksfildServices01/barbearia-app/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ===============================
// Validations
// ===============================

// Máquina de estados: pending → {scheduled, canceled},
// scheduled → {completed, canceled}. Completed e canceled são terminais.

// CanConfirm define se um agendamento pendente pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o status de todo agendamento recém-criado
func InitialStatus() Status {
	return StatusPending
}
