package handlers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-app/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-app/internal/dto"
	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
)

type ReportHandler struct {
	store *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{store: st}
}

// --------- Handlers ---------

// Dashboard resume o dia corrente: agendamentos de hoje (fora os
// cancelados), pendências e receita do dia.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	today := timefmt.FormatDate(timefmt.Now())
	appointments := h.store.Appointments()

	var todayCount, pending int
	var todayRevenue float64

	for _, ap := range appointments {
		if ap.Status == string(domain.StatusPending) {
			pending++
		}

		if !strings.HasPrefix(ap.DateTime, today) {
			continue
		}

		if ap.Status != string(domain.StatusCanceled) {
			todayCount++
		}
		if ap.Status == string(domain.StatusCompleted) ||
			ap.Status == string(domain.StatusScheduled) {
			todayRevenue += ap.Price
		}
	}

	httpresp.OK(c, dto.DashboardDTO{
		Date:              today,
		TodayAppointments: todayCount,
		Pending:           pending,
		TodayRevenue:      todayRevenue,
	})
}

// Monthly fecha o mês: receita, atendimentos e serviço mais vendido,
// considerando apenas agendamentos concluídos.
func (h *ReportHandler) Monthly(c *gin.Context) {
	now := timefmt.Now()

	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "mês fora do intervalo")
		return
	}

	appointments := h.store.Appointments()

	completed := make([]models.Appointment, 0)
	for _, ap := range appointments {
		if ap.Status != string(domain.StatusCompleted) {
			continue
		}
		m, y, ok := monthYearOf(ap.DateTime)
		if ok && m == month && y == year {
			completed = append(completed, ap)
		}
	}

	report := dto.MonthlyReportDTO{
		Year:         year,
		Month:        month,
		DailyRevenue: map[string]float64{},
		TopService:   "N/A",
	}

	serviceCounts := map[string]int{}

	for _, ap := range completed {
		report.TotalRevenue += ap.Price
		serviceCounts[ap.ServiceName]++

		datePart := strings.SplitN(ap.DateTime, " ", 2)[0]
		report.DailyRevenue[datePart] += ap.Price
	}

	report.TotalVisits = len(completed)
	if report.TotalVisits > 0 {
		report.AverageTicket = report.TotalRevenue / float64(report.TotalVisits)
	}

	// desempate por nome, para resultado determinístico
	names := make([]string, 0, len(serviceCounts))
	for name := range serviceCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	best := 0
	for _, name := range names {
		if serviceCounts[name] > best {
			best = serviceCounts[name]
			report.TopService = name
		}
	}

	// Ordenação lexical da string de data/hora: dentro de um mesmo mês
	// equivale à ordem cronológica.
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].DateTime > completed[j].DateTime
	})
	report.Appointments = completed

	httpresp.OK(c, report)
}

func monthYearOf(dateTime string) (month, year int, ok bool) {
	datePart := strings.SplitN(dateTime, " ", 2)[0]
	parts := strings.Split(datePart, "/")
	if len(parts) != 3 {
		return 0, 0, false
	}

	month, err1 := strconv.Atoi(parts[1])
	year, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return month, year, true
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
