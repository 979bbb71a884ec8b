package auth

import (
	"context"
	"net/http"
	"time"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/middleware"
	"skillscenter/internal/pkg/respond"
)

// AuthService define o contrato para login, sessão e criação de administradores.
type AuthService interface {
	Login(ctx context.Context, email string, password string) (domain.AuthResult, error)
	CurrentUser(ctx context.Context, id string) (domain.PublicUser, error)
	RegisterAdmin(ctx context.Context, registration domain.AdminRegistration) (domain.PublicUser, error)
}

// Binder preenche e valida o request combinado (params, query, body).
type Binder interface {
	Bind(r *http.Request, req interface{}) error
}

type loginRequest struct {
	Body domain.LoginRequest `json:"body"`
}

type registerAdminRequest struct {
	Body domain.AdminRegistration `json:"body"`
}

// Handler agrupa todos os métodos de Handler de autenticação.
type Handler struct {
	Service      AuthService
	Validator    Binder
	Logger       logger.Logger
	cookieMaxAge time.Duration
	secureCookie bool
}

// NewHandler cria o Handler. secureCookie deve ser false apenas em desenvolvimento (HTTP local).
func NewHandler(svc AuthService, v Binder, log logger.Logger, cookieMaxAge time.Duration, secureCookie bool) *Handler {
	return &Handler{
		Service:      svc,
		Validator:    v,
		Logger:       log,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

// LoginHandler lida com a requisição POST /api/auth/login.
// @Summary Autentica um administrador
// @Description Verifica email/senha, grava o JWT no cookie HTTP-only "jwt" e também o devolve no corpo.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Credenciais (email e senha)"
// @Success 200 {object} domain.AuthResult "Usuário autenticado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Invalid email or password"
// @Failure 429 {object} domain.MessageResponse "Muitas tentativas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	result, err := h.Service.Login(r.Context(), req.Body.Email, req.Body.Password)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.cookieMaxAge.Seconds())))
	respond.JSON(w, http.StatusOK, result)
}

// LogoutHandler lida com a requisição POST /api/auth/logout.
// @Summary Encerra a sessão
// @Description Sobrescreve o cookie "jwt" com valor vazio e expiração imediata.
// @Tags auth
// @Produce json
// @Success 200 {object} domain.MessageResponse "Logged out successfully"
// @Router /auth/logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	respond.Message(w, http.StatusOK, "Logged out successfully")
}

// MeHandler lida com a requisição GET /api/auth/me.
// @Summary Usuário da sessão atual
// @Tags auth
// @Produce json
// @Success 200 {object} domain.PublicUser
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Security CookieAuth
// @Router /auth/me [get]
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, r, h.Logger, apperror.NewUnauthorizedError("Not authorized, no token"))
		return
	}

	me, err := h.Service.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, me)
}

// RegisterAdminHandler lida com a requisição POST /api/auth/register-admin.
// @Summary Cria um novo administrador
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.AdminRegistration true "Nome, email e senha"
// @Success 201 {object} domain.PublicUser "Administrador criado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou User already exists"
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Security CookieAuth
// @Router /auth/register-admin [post]
func (h *Handler) RegisterAdminHandler(w http.ResponseWriter, r *http.Request) {
	var req registerAdminRequest
	if err := h.Validator.Bind(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.RegisterAdmin(r.Context(), req.Body)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}
