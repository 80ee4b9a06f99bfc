package dto

// SlotDTO é um horário do dia com sua disponibilidade já resolvida
// contra a agenda atual.
type SlotDTO struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
