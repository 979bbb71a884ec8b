package heroslide

import (
	"context"
	"net/http"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
)

type HeroSlideService interface {
	ListPublic(ctx context.Context) ([]domain.HeroSlide, error)
	ListAll(ctx context.Context) ([]domain.HeroSlide, error)
	Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error)
	Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (domain.HeroSlide, error)
	Delete(ctx context.Context, id string) error
}

type Binder interface {
	Bind(r *http.Request, req interface{}) error
}

type idParams struct {
	ID string `param:"id" validate:"required,uuid"`
}

// CreateSlideBody é o payload de criação de um slide. order aceita número ou string numérica.
type CreateSlideBody struct {
	Title       domain.LocalizedText  `json:"title" validate:"required,localized" swaggertype:"object"`
	Subtitle    *string               `json:"subtitle" validate:"omitempty,max=500"`
	Description *domain.LocalizedText `json:"description" validate:"omitempty,localized" swaggertype:"object"`
	ImageURL    string                `json:"imageUrl" validate:"required,min=1,max=2048"`
	Order       *domain.FlexInt       `json:"order" validate:"omitempty,min=0" swaggertype:"integer"`
	IsActive    *bool                 `json:"isActive"`
}

// UpdateSlideBody é o payload parcial de atualização.
type UpdateSlideBody struct {
	Title       *domain.LocalizedText `json:"title" validate:"omitempty,localized" swaggertype:"object"`
	Subtitle    *string               `json:"subtitle" validate:"omitempty,max=500"`
	Description *domain.LocalizedText `json:"description" validate:"omitempty,localized" swaggertype:"object"`
	ImageURL    *string               `json:"imageUrl" validate:"omitempty,min=1,max=2048"`
	Order       *domain.FlexInt       `json:"order" validate:"omitempty,min=0" swaggertype:"integer"`
	IsActive    *bool                 `json:"isActive"`
}

type createRequest struct {
	Body CreateSlideBody `json:"body"`
}

type updateRequest struct {
	Params idParams        `json:"params"`
	Body   UpdateSlideBody `json:"body"`
}

type deleteRequest struct {
	Params idParams `json:"params"`
}

// Handler agrupa todos os métodos de Handler dos slides.
type Handler struct {
	Service   HeroSlideService
	Validator Binder
	Logger    logger.Logger
}

func NewHandler(svc HeroSlideService, v Binder, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// ListPublicHandler lida com GET /api/hero-slides.
// @Summary Lista os slides ativos do carrossel
// @Description Ordenados por order crescente; empates seguem a ordem de criação.
// @Tags hero-slides
// @Produce json
// @Success 200 {array} domain.HeroSlide
// @Router /hero-slides [get]
func (h *Handler) ListPublicHandler(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Service.ListPublic(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, slides)
}

// ListAllHandler lida com GET /api/hero-slides/admin.
// @Summary Lista todos os slides (inclui inativos)
// @Tags hero-slides
// @Produce json
// @Success 200 {array} domain.HeroSlide
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Security CookieAuth
// @Router /hero-slides/admin [get]
func (h *Handler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Service.ListAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, slides)
}

// CreateHandler lida com POST /api/hero-slides.
// @Summary Cria um slide
// @Tags hero-slides
// @Accept json
// @Produce json
// @Param slide body CreateSlideBody true "Dados do slide"
// @Success 201 {object} domain.HeroSlide
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Security CookieAuth
// @Router /hero-slides [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	slide := domain.HeroSlide{
		Title:       req.Body.Title,
		Subtitle:    req.Body.Subtitle,
		Description: req.Body.Description,
		ImageURL:    req.Body.ImageURL,
		IsActive:    true,
	}
	if req.Body.Order != nil {
		slide.Order = req.Body.Order.Int()
	}
	if req.Body.IsActive != nil {
		slide.IsActive = *req.Body.IsActive
	}

	created, err := h.Service.Create(r.Context(), slide)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// UpdateHandler lida com PUT /api/hero-slides/{id}.
// @Summary Atualiza parcialmente um slide
// @Tags hero-slides
// @Accept json
// @Produce json
// @Param id path string true "ID do slide (UUID)"
// @Param slide body UpdateSlideBody true "Campos a alterar"
// @Success 200 {object} domain.HeroSlide
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Hero slide not found"
// @Security CookieAuth
// @Router /hero-slides/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	patch := domain.HeroSlidePatch{
		Title:       req.Body.Title,
		Subtitle:    req.Body.Subtitle,
		Description: req.Body.Description,
		ImageURL:    req.Body.ImageURL,
		IsActive:    req.Body.IsActive,
	}
	if req.Body.Order != nil {
		order := req.Body.Order.Int()
		patch.Order = &order
	}

	updated, err := h.Service.Update(r.Context(), req.Params.ID, patch)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// DeleteHandler lida com DELETE /api/hero-slides/{id}.
// @Summary Remove um slide
// @Tags hero-slides
// @Produce json
// @Param id path string true "ID do slide (UUID)"
// @Success 200 {object} domain.MessageResponse "Slide removed"
// @Failure 404 {object} domain.ErrorResponse "Hero slide not found"
// @Security CookieAuth
// @Router /hero-slides/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	if err := h.Service.Delete(r.Context(), req.Params.ID); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "Slide removed")
}
