package models

type Appointment struct {
	ID int `json:"id"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	// Nome e preço são desnormalizados no momento do agendamento:
	// editar o serviço depois não altera agendamentos antigos.
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`

	// "DD/MM/YYYY HH:mm" — toda comparação de horário é feita sobre
	// essa string, nunca sobre time.Time.
	DateTime string `json:"date_time"`

	Status string `json:"status"`

	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CanceledAt  *string `json:"canceled_at,omitempty"`
}
