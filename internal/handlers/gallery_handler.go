package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-app/internal/httperr"
	"github.com/BruksfildServices01/barbearia-app/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-app/internal/media"
	"github.com/BruksfildServices01/barbearia-app/internal/models"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	"github.com/BruksfildServices01/barbearia-app/internal/timefmt"
)

type GalleryHandler struct {
	store *store.Store
	media *media.Processor
}

func NewGalleryHandler(st *store.Store, mp *media.Processor) *GalleryHandler {
	return &GalleryHandler{store: st, media: mp}
}

// --------- Requests ---------

type CreatePhotoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StaffName   string `json:"staff_name" binding:"required"`
	Category    string `json:"category" binding:"required"`

	// Referência opaca já existente (quando não há upload de arquivo).
	Image string `json:"image"`
}

// --------- Handlers ---------

// List é público; aceita filtro por categoria.
func (h *GalleryHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	photos := h.store.Photos()

	if category != "" {
		filtered := make([]models.GalleryPhoto, 0, len(photos))
		for _, p := range photos {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		photos = filtered
	}

	httpresp.List(c, photos)
}

func (h *GalleryHandler) Like(c *gin.Context) {
	photo, err := h.store.LikePhoto(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "photo_not_found", "foto inexistente")
			return
		}
		httperr.Internal(c, "failed_to_like_photo", "não foi possível curtir")
		return
	}

	httpresp.OK(c, photo)
}

// Create aceita duas formas: multipart com o arquivo da imagem (campo
// "image", processado e regravado como webp local) ou JSON com uma
// referência de imagem já resolvida.
func (h *GalleryHandler) Create(c *gin.Context) {
	contentType := c.ContentType()

	var req CreatePhotoRequest
	var imageRef string

	if strings.HasPrefix(contentType, "multipart/") {
		req.Title = c.PostForm("title")
		req.Description = c.PostForm("description")
		req.StaffName = c.PostForm("staff_name")
		req.Category = c.PostForm("category")

		file, err := c.FormFile("image")
		if err != nil {
			httperr.BadRequest(c, "missing_image", "selecione uma imagem")
			return
		}

		src, err := file.Open()
		if err != nil {
			httperr.Internal(c, "failed_to_read_image", "não foi possível ler a imagem")
			return
		}
		defer src.Close()

		imageRef, err = h.media.Ingest(src)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "imagem inválida")
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"details": err.Error(),
			})
			return
		}
		imageRef = strings.TrimSpace(req.Image)
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.StaffName) == "" {
		httperr.BadRequest(c, "invalid_request", "título e barbeiro são obrigatórios")
		return
	}
	if imageRef == "" {
		httperr.BadRequest(c, "missing_image", "selecione uma imagem")
		return
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if !models.IsValidCategory(category) {
		httperr.BadRequest(c, "invalid_category", "categoria desconhecida")
		return
	}

	photo := models.GalleryPhoto{
		ID:          store.NewPhotoID(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		StaffName:   strings.TrimSpace(req.StaffName),
		Date:        timefmt.FormatDate(timefmt.Now()),
		Image:       imageRef,
		Category:    category,
		Likes:       0,
	}

	if err := h.store.AddPhoto(c.Request.Context(), photo); err != nil {
		httperr.Internal(c, "failed_to_save_photo", "não foi possível salvar a foto")
		return
	}

	httpresp.Created(c, photo)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.store.DeletePhoto(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "photo_not_found", "foto inexistente")
			return
		}
		httperr.Internal(c, "failed_to_delete_photo", "não foi possível excluir a foto")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
