package authservice

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

// BcryptCost é o custo usado ao gerar hashes de senha.
const BcryptCost = 10

const invalidCredentials = "Invalid email or password"

// dummyHash é comparado quando o e-mail não existe, para que as duas falhas levem tempo parecido.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("skillscenter-dummy-password"), BcryptCost)

// TokenIssuer é o contrato da camada de token (internal/pkg/token) usado no login.
type TokenIssuer interface {
	GenerateToken(userID string, userRole string) (string, error)
}

// AuthService concentra login, sessão atual e criação de administradores.
type AuthService struct {
	UserRepo domain.UserRepository
	TokenSvc TokenIssuer
	logger   logger.Logger
}

// NewService cria uma nova instância do AuthService, injetando o Repositório.
func NewService(repo domain.UserRepository, tokenSvc TokenIssuer, logger logger.Logger) *AuthService {
	return &AuthService{
		UserRepo: repo,
		TokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Login autentica um usuário, verifica a senha e gera um JWT.
// E-mail desconhecido e senha errada devolvem o mesmo erro 401.
func (s *AuthService) Login(ctx context.Context, email string, password string) (domain.AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.logger.Info("Login recusado: e-mail desconhecido.", nil)
			return domain.AuthResult{}, apperror.NewUnauthorizedError(invalidCredentials)
		}
		return domain.AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("Login recusado: senha incorreta.", map[string]interface{}{"user_id": user.ID})
		return domain.AuthResult{}, apperror.NewUnauthorizedError(invalidCredentials)
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return domain.AuthResult{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID})
	return domain.AuthResult{PublicUser: user.Public(), Token: tokenString}, nil
}

// CurrentUser devolve a projeção pública do usuário autenticado.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (domain.PublicUser, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return domain.PublicUser{}, apperror.NewUnauthorizedError("Not authorized, user not found")
		}
		return domain.PublicUser{}, err
	}
	return user.Public(), nil
}

// RegisterAdmin cria um novo administrador. E-mail já cadastrado devolve 400.
func (s *AuthService) RegisterAdmin(ctx context.Context, registration domain.AdminRegistration) (domain.PublicUser, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), BcryptCost)
	if err != nil {
		return domain.PublicUser{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	user, err := s.UserRepo.Save(ctx, domain.User{
		Name:         registration.Name,
		Email:        registration.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		var conflict *apperror.ConflictError
		if errors.As(err, &conflict) {
			return domain.PublicUser{}, apperror.NewDomainError("User already exists", http.StatusBadRequest)
		}
		return domain.PublicUser{}, err
	}

	s.logger.Info("Administrador criado.", map[string]interface{}{"user_id": user.ID})
	return user.Public(), nil
}
