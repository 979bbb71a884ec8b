package registration

import (
	"context"
	"net/http"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
)

type RegistrationService interface {
	Create(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	List(ctx context.Context) ([]domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (domain.Registration, error)
}

type Binder interface {
	Bind(r *http.Request, req interface{}) error
}

// CreateRegistrationBody é o formulário público de inscrição.
type CreateRegistrationBody struct {
	FullName  string  `json:"fullName" validate:"required,min=2,max=200"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,min=9,max=30"`
	Type      string  `json:"type" validate:"required,min=1,max=100"`
	Center    string  `json:"center" validate:"required,min=1,max=100"`
	SpaceType string  `json:"spaceType" validate:"required,min=1,max=100"`
	Message   *string `json:"message" validate:"omitempty,max=5000"`
}

// UpdateStatusBody carrega o novo status.
type UpdateStatusBody struct {
	Status domain.RegistrationStatus `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

type createRequest struct {
	Body CreateRegistrationBody `json:"body"`
}

type updateStatusRequest struct {
	Params struct {
		ID string `param:"id" validate:"required,uuid"`
	} `json:"params"`
	Body UpdateStatusBody `json:"body"`
}

// Handler agrupa todos os métodos de Handler das inscrições.
type Handler struct {
	Service   RegistrationService
	Validator Binder
	Logger    logger.Logger
}

func NewHandler(svc RegistrationService, v Binder, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: v, Logger: log}
}

// CreateHandler lida com POST /api/registrations.
// @Summary Envia um pedido de inscrição
// @Description Público. O pedido é sempre criado como PENDING.
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationBody true "Dados do formulário"
// @Success 201 {object} domain.Registration
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /registrations [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	b := req.Body
	created, err := h.Service.Create(r.Context(), domain.Registration{
		FullName:  b.FullName,
		Email:     b.Email,
		Phone:     b.Phone,
		Type:      b.Type,
		Center:    b.Center,
		SpaceType: b.SpaceType,
		Message:   b.Message,
	})
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

// ListHandler lida com GET /api/registrations.
// @Summary Lista as inscrições
// @Tags registrations
// @Produce json
// @Success 200 {array} domain.Registration
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Security CookieAuth
// @Router /registrations [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	regs, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, regs)
}

// UpdateStatusHandler lida com PATCH /api/registrations/{id}.
// @Summary Altera o status de uma inscrição
// @Description APPROVED dispara o e-mail de aprovação em segundo plano.
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "ID da inscrição (UUID)"
// @Param status body UpdateStatusBody true "Novo status"
// @Success 200 {object} domain.Registration
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Registration not found"
// @Security CookieAuth
// @Router /registrations/{id} [patch]
func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.UpdateStatus(r.Context(), req.Params.ID, req.Body.Status)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}
