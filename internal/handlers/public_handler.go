package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	ucBooking "github.com/BruksfildServices01/barbearia-app/internal/usecase/booking"
	"github.com/BruksfildServices01/barbearia-app/internal/validators"
)

// PublicHandler atende a área do cliente: dados da barbearia, catálogo,
// grade de horários e o pedido de agendamento.
type PublicHandler struct {
	store          *store.Store
	createUC       *ucBooking.CreateBooking
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(
	st *store.Store,
	createUC *ucBooking.CreateBooking,
	availabilityUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		store:          st,
		createUC:       createUC,
		availabilityUC: availabilityUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required,ddmmyyyy"`
	Time        string `json:"time" binding:"required,hhmm"`
}

// --------- Handlers ---------

func (h *PublicHandler) GetConfig(c *gin.Context) {
	cfg := h.store.Config()

	httpresp.OK(c, gin.H{
		"name":          cfg.Name,
		"whatsapp":      cfg.WhatsApp,
		"primary_color": cfg.PrimaryColor,
		"opening_time":  cfg.OpeningTime,
		"closing_time":  cfg.ClosingTime,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	byID := h.store.Services()

	services := make([]models.Service, 0, len(byID))
	for _, svc := range byID {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})

	httpresp.List(c, services)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if !validators.IsDate(date) {
		httperr.BadRequest(c, "invalid_date", "use o formato DD/MM/YYYY")
		return
	}

	httpresp.List(c, h.availabilityUC.Execute(date))
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, whatsappURL, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "serviço inexistente")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "este horário já está ocupado")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "não foi possível agendar")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"appointment":  ap,
		"whatsapp_url": whatsappURL,
	})
}
