package content

import (
	"context"
	"net/http"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
)

// ContentService define o contrato que o Handler espera da camada de Serviço.
type ContentService interface {
	ListPublished(ctx context.Context, contentType domain.ContentType) ([]domain.Content, error)
	ListAll(ctx context.Context) ([]domain.Content, error)
	Get(ctx context.Context, id string) (domain.Content, error)
	Create(ctx context.Context, content domain.Content) (domain.Content, error)
	Update(ctx context.Context, id string, patch domain.ContentPatch) (domain.Content, error)
	Delete(ctx context.Context, id string) error
}

type Binder interface {
	Bind(r *http.Request, req interface{}) error
}

type idParams struct {
	ID string `param:"id" validate:"required,uuid"`
}

// CreateContentBody é o payload de criação. title e body aceitam texto simples ou {en, fr, ar}.
type CreateContentBody struct {
	Title     domain.LocalizedText `json:"title" validate:"required,localized" swaggertype:"object"`
	Body      domain.LocalizedText `json:"body" validate:"required,localized" swaggertype:"object"`
	Type      domain.ContentType   `json:"type" validate:"required,oneof=NEWS EVENT TESTIMONIAL ABOUT_SECTION"`
	ImageURL  *string              `json:"imageUrl" validate:"omitempty,max=2048"`
	Published *bool                `json:"published"`
}

// UpdateContentBody é o payload parcial de atualização.
type UpdateContentBody struct {
	Title     *domain.LocalizedText `json:"title" validate:"omitempty,localized" swaggertype:"object"`
	Body      *domain.LocalizedText `json:"body" validate:"omitempty,localized" swaggertype:"object"`
	Type      *domain.ContentType   `json:"type" validate:"omitempty,oneof=NEWS EVENT TESTIMONIAL ABOUT_SECTION"`
	ImageURL  *string               `json:"imageUrl" validate:"omitempty,max=2048"`
	Published *bool                 `json:"published"`
}

type listRequest struct {
	Query struct {
		Type string `query:"type" validate:"omitempty,oneof=NEWS EVENT TESTIMONIAL ABOUT_SECTION"`
	} `json:"query"`
}

type getRequest struct {
	Params idParams `json:"params"`
}

type createRequest struct {
	Body CreateContentBody `json:"body"`
}

type updateRequest struct {
	Params idParams          `json:"params"`
	Body   UpdateContentBody `json:"body"`
}

// Handler agrupa todos os métodos de Handler de conteúdo.
type Handler struct {
	Service   ContentService
	Validator Binder
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ContentService, v Binder, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// ListPublishedHandler lida com GET /api/content.
// @Summary Lista o conteúdo publicado
// @Description Mais recentes primeiro; filtro opcional por tipo.
// @Tags content
// @Produce json
// @Param type query string false "Tipo de conteúdo" Enums(NEWS, EVENT, TESTIMONIAL, ABOUT_SECTION)
// @Success 200 {array} domain.Content
// @Failure 400 {object} domain.ErrorResponse "Tipo inválido"
// @Router /content [get]
func (h *Handler) ListPublishedHandler(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	items, err := h.Service.ListPublished(r.Context(), domain.ContentType(req.Query.Type))
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// ListAllHandler lida com GET /api/content/admin.
// @Summary Lista todo o conteúdo (inclui rascunhos)
// @Tags content
// @Produce json
// @Success 200 {array} domain.Content
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Security CookieAuth
// @Router /content/admin [get]
func (h *Handler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListAll(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// GetHandler lida com GET /api/content/{id}.
// @Summary Busca um item de conteúdo
// @Tags content
// @Produce json
// @Param id path string true "ID do conteúdo (UUID)"
// @Success 200 {object} domain.Content
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Content not found"
// @Security CookieAuth
// @Router /content/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	var req getRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	item, err := h.Service.Get(r.Context(), req.Params.ID)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, item)
}

// CreateHandler lida com POST /api/content.
// @Summary Cria um item de conteúdo
// @Tags content
// @Accept json
// @Produce json
// @Param content body CreateContentBody true "Dados do conteúdo"
// @Success 201 {object} domain.Content
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Security CookieAuth
// @Router /content [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	published := true
	if req.Body.Published != nil {
		published = *req.Body.Published
	}

	created, err := h.Service.Create(r.Context(), domain.Content{
		Title:     req.Body.Title,
		Body:      req.Body.Body,
		Type:      req.Body.Type,
		ImageURL:  emptyToNil(req.Body.ImageURL),
		Published: published,
	})
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// UpdateHandler lida com PUT /api/content/{id}.
// @Summary Atualiza parcialmente um item de conteúdo
// @Description Se a imagem mudar, o arquivo anterior é removido de /uploads.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "ID do conteúdo (UUID)"
// @Param content body UpdateContentBody true "Campos a alterar"
// @Success 200 {object} domain.Content
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Content not found"
// @Security CookieAuth
// @Router /content/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), req.Params.ID, domain.ContentPatch{
		Title:     req.Body.Title,
		Body:      req.Body.Body,
		Type:      req.Body.Type,
		ImageURL:  req.Body.ImageURL,
		Published: req.Body.Published,
	})
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// DeleteHandler lida com DELETE /api/content/{id}.
// @Summary Remove um item de conteúdo e sua imagem
// @Tags content
// @Produce json
// @Param id path string true "ID do conteúdo (UUID)"
// @Success 200 {object} domain.MessageResponse "Content removed"
// @Failure 404 {object} domain.ErrorResponse "Content not found"
// @Security CookieAuth
// @Router /content/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	var req getRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	if err := h.Service.Delete(r.Context(), req.Params.ID); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.Message(w, http.StatusOK, "Content removed")
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
