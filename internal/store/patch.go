package store

import "github.com/BruksfildServices01/barbearia-app/internal/models"

// Patches explícitos campo a campo: o merge genérico por spread do app
// original vira structs de atualização opcionais por entidade.

type AppointmentPatch struct {
	ClientName  *string  `json:"client_name,omitempty"`
	ClientPhone *string  `json:"client_phone,omitempty"`
	ServiceID   *string  `json:"service_id,omitempty"`
	ServiceName *string  `json:"service_name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DateTime    *string  `json:"date_time,omitempty"`
}

func (p AppointmentPatch) apply(ap *models.Appointment) {
	if p.ClientName != nil {
		ap.ClientName = *p.ClientName
	}
	if p.ClientPhone != nil {
		ap.ClientPhone = *p.ClientPhone
	}
	if p.ServiceID != nil {
		ap.ServiceID = *p.ServiceID
	}
	if p.ServiceName != nil {
		ap.ServiceName = *p.ServiceName
	}
	if p.Price != nil {
		ap.Price = *p.Price
	}
	if p.DateTime != nil {
		ap.DateTime = *p.DateTime
	}
}

type ServicePatch struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
}

func (p ServicePatch) apply(svc *models.Service) {
	if p.Name != nil {
		svc.Name = *p.Name
	}
	if p.Price != nil {
		svc.Price = *p.Price
	}
	if p.DurationMin != nil {
		svc.DurationMin = *p.DurationMin
	}
}
