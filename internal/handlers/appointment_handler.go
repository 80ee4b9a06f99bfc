package handlers

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-app/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
	ucBooking "github.com/BruksfildServices01/barbearia-app/internal/usecase/booking"
	"github.com/BruksfildServices01/barbearia-app/internal/validators"
)

type AppointmentHandler struct {
	store      *store.Store
	confirmUC  *ucBooking.ConfirmAppointment
	cancelUC   *ucBooking.CancelAppointment
	completeUC *ucBooking.CompleteAppointment
}

func NewAppointmentHandler(
	st *store.Store,
	confirmUC *ucBooking.ConfirmAppointment,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:      st,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
	}
}

// --------- Handlers ---------

// ListByDate devolve a agenda de um dia. A seleção é casamento de
// prefixo sobre a string "DD/MM/YYYY HH:mm" e a ordenação é lexical.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timefmt.FormatDate(timefmt.Now())
	}
	if !validators.IsDate(date) {
		httperr.BadRequest(c, "invalid_date", "use o formato DD/MM/YYYY")
		return
	}

	appointments := h.store.Appointments()

	out := make([]models.Appointment, 0)
	for _, ap := range appointments {
		if strings.HasPrefix(ap.DateTime, date) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateTime < out[j].DateTime
	})

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListPending(c *gin.Context) {
	appointments := h.store.Appointments()

	out := make([]models.Appointment, 0)
	for _, ap := range appointments {
		if ap.Status == string(domain.StatusPending) {
			out = append(out, ap)
		}
	}

	httpresp.List(c, out)
}

// Search procura por nome de cliente (sem caixa) ou trecho do telefone.
func (h *AppointmentHandler) Search(c *gin.Context) {
	term := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if term == "" {
		httperr.BadRequest(c, "empty_query", "informe um termo de busca")
		return
	}

	appointments := h.store.Appointments()

	out := make([]models.Appointment, 0)
	for _, ap := range appointments {
		if strings.Contains(strings.ToLower(ap.ClientName), term) ||
			strings.Contains(ap.ClientPhone, term) {
			out = append(out, ap)
		}
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	runTransition(c, h.confirmUC.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	runTransition(c, h.cancelUC.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	runTransition(c, h.completeUC.Execute)
}

// Delete remove fisicamente o registro. O cancelamento de ciclo de
// vida é o PATCH /cancel; isto aqui é manutenção de dados.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "agendamento inexistente")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "não foi possível excluir")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

func runTransition(
	c *gin.Context,
	exec func(ctx context.Context, id int) (models.Appointment, error),
) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := exec(c.Request.Context(), id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "agendamento inexistente")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "transição de status não permitida")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "não foi possível atualizar")
		}
		return
	}

	httpresp.OK(c, ap)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return 0, false
	}
	return id, true
}
