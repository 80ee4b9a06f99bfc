package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
)

type ServiceHandler struct {
	store *store.Store
}

func NewServiceHandler(st *store.Store) *ServiceHandler {
	return &ServiceHandler{store: st}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
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

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	svc := models.Service{
		ID:          h.nextServiceID(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}

	if err := h.store.AddService(c.Request.Context(), svc); err != nil {
		httperr.Internal(c, "failed_to_create_service", "não foi possível salvar o serviço")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Price != nil && *req.Price <= 0 {
		httperr.BadRequest(c, "invalid_price", "preço deve ser positivo")
		return
	}
	if req.DurationMin != nil && *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "duração deve ser positiva")
		return
	}

	svc, err := h.store.UpdateService(c.Request.Context(), id, store.ServicePatch{
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "serviço inexistente")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "não foi possível atualizar o serviço")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "serviço inexistente")
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "não foi possível excluir o serviço")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// nextServiceID segue a mesma ideia do ID de agendamento: maior chave
// numérica + 1, para não reciclar ID depois de exclusões.
func (h *ServiceHandler) nextServiceID() string {
	maxID := 0
	for id := range h.store.Services() {
		if n, err := strconv.Atoi(id); err == nil && n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}
