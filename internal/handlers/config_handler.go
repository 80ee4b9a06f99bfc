package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
)

type ConfigHandler struct {
	store *store.Store
}

func NewConfigHandler(st *store.Store) *ConfigHandler {
	return &ConfigHandler{store: st}
}

// --------- Requests ---------

type UpdateConfigRequest struct {
	Name         string `json:"name" binding:"required"`
	WhatsApp     string `json:"whatsapp" binding:"required"`
	PrimaryColor string `json:"primary_color" binding:"required"`
	OpeningTime  string `json:"opening_time" binding:"required,hhmm"`
	ClosingTime  string `json:"closing_time" binding:"required,hhmm"`
}

type UpdatePasswordRequest struct {
	Code string `json:"code" binding:"required,min=4"`
}

// --------- Handlers ---------

func (h *ConfigHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.store.Config())
}

// Update substitui a configuração por inteiro (não há patch parcial
// aqui: a tela de configuração sempre envia tudo).
func (h *ConfigHandler) Update(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	cfg := models.ShopConfig{
		Name:         req.Name,
		WhatsApp:     req.WhatsApp,
		PrimaryColor: req.PrimaryColor,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
	}

	if err := h.store.UpdateConfig(c.Request.Context(), cfg); err != nil {
		httperr.Internal(c, "failed_to_update_config", "não foi possível salvar a configuração")
		return
	}

	httpresp.OK(c, cfg)
}

func (h *ConfigHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.store.UpdateAdminCode(c.Request.Context(), req.Code); err != nil {
		httperr.Internal(c, "failed_to_update_password", "não foi possível trocar o código")
		return
	}

	httpresp.OK(c, gin.H{"updated": true})
}
