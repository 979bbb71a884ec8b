package middleware

import (
	"context"
	"net/http"
	"strings"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
	"skillscenter/internal/pkg/token"
)

// SessionCookieName é o cookie HTTP-only que transporta o JWT da sessão.
const SessionCookieName = "jwt"

// ContextKey é o tipo das chaves de contexto deste pacote (não exportado por valor).
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims representa a identidade verificada anexada ao contexto.
type UserClaims struct {
	UserID string
	Role   domain.UserRole
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// UserLookup relê o usuário do token no armazenamento: a role vale a partir do banco,
// não do que foi assinado no token.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

// Gate compõe as verificações "tem identidade" e "tem a role exigida".
type Gate struct {
	tokens       TokenService
	users        UserLookup
	deniedStatus int
	log          logger.Logger
}

// NewGate cria o Gate. deniedStatus é o status devolvido quando a role não confere
// (401 por compatibilidade com o cliente atual, ou 403).
func NewGate(tokens TokenService, users UserLookup, deniedStatus int, log logger.Logger) *Gate {
	if deniedStatus != http.StatusForbidden {
		deniedStatus = http.StatusUnauthorized
	}
	return &Gate{tokens: tokens, users: users, deniedStatus: deniedStatus, log: log}
}

// tokenFromRequest procura o JWT no cookie da sessão e, na falta dele, no header Bearer.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// Authenticate valida o JWT, confirma que o usuário ainda existe e anexa a identidade ao contexto.
// Qualquer falha encerra a requisição com 401.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			respond.Error(w, r, g.log, apperror.NewUnauthorizedError("Not authorized, no token"))
			return
		}

		claims, err := g.tokens.ValidateToken(tokenString)
		if err != nil {
			g.log.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "reason": err.Error()})
			respond.Error(w, r, g.log, apperror.NewUnauthorizedError("Not authorized, token failed"))
			return
		}

		user, err := g.users.FindByID(r.Context(), claims.UserID)
		if err != nil {
			if apperror.IsNotFound(err) {
				respond.Error(w, r, g.log, apperror.NewUnauthorizedError("Not authorized, user not found"))
				return
			}
			respond.Error(w, r, g.log, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserClaimsKey, UserClaims{UserID: user.ID, Role: user.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole exige que a identidade já autenticada tenha uma das roles informadas.
func (g *Gate) RequireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if ok {
				for _, role := range roles {
					if claims.Role == role {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			if g.deniedStatus == http.StatusForbidden {
				respond.Error(w, r, g.log, apperror.NewForbiddenError("Not authorized as an admin"))
				return
			}
			respond.Error(w, r, g.log, apperror.NewUnauthorizedError("Not authorized as an admin"))
		})
	}
}

// Admin é o atalho Authenticate + RequireRole(ADMIN).
func (g *Gate) Admin(next http.Handler) http.Handler {
	return g.Authenticate(g.RequireRole(domain.RoleAdmin)(next))
}

// GetUserClaimsFromContext extrai a identidade anexada pelo Authenticate.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// WithUserClaims anexa uma identidade ao contexto (usado por testes de handlers).
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}
