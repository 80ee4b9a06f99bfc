package booking

import (
	domain "github.com/BruksfildServices01/barbearia-app/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-app/internal/dto"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
)

type GetAvailability struct {
	store *store.Store
}

func NewGetAvailability(st *store.Store) *GetAvailability {
	return &GetAvailability{store: st}
}

// Execute gera a grade do dia entre abertura e fechamento e marca cada
// horário contra a agenda corrente.
func (uc *GetAvailability) Execute(date string) []dto.SlotDTO {
	cfg := uc.store.Config()
	appointments := uc.store.Appointments()

	times := domain.GenerateTimeSlots(cfg.OpeningTime, cfg.ClosingTime)

	slots := make([]dto.SlotDTO, 0, len(times))
	for _, t := range times {
		slots = append(slots, dto.SlotDTO{
			Time:      t,
			Available: domain.IsSlotAvailable(appointments, date, t),
		})
	}

	return slots
}
