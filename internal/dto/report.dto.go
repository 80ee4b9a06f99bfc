package dto

import "github.com/BruksfildServices01/barbearia-app/internal/models"

type DashboardDTO struct {
	Date              string  `json:"date"`
	TodayAppointments int     `json:"today_appointments"`
	Pending           int     `json:"pending"`
	TodayRevenue      float64 `json:"today_revenue"`
}

// MonthlyReportDTO cobre só atendimentos concluídos do mês.
type MonthlyReportDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalRevenue  float64 `json:"total_revenue"`
	TotalVisits   int     `json:"total_visits"`
	AverageTicket float64 `json:"average_ticket"`
	TopService    string  `json:"top_service"`

	DailyRevenue map[string]float64 `json:"daily_revenue"`

	Appointments []models.Appointment `json:"appointments"`
}
