package registrationservice

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

// Service é a lógica de negócio dos pedidos de inscrição.
type Service struct {
	repo     domain.RegistrationRepository
	notifier domain.ApprovalNotifier
	policy   *bluemonday.Policy
	logger   logger.Logger
}

func NewService(repo domain.RegistrationRepository, notifier domain.ApprovalNotifier, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		policy:   bluemonday.StrictPolicy(),
		logger:   logger,
	}
}

// Create grava um pedido público. O status é sempre PENDING e o texto livre perde qualquer HTML.
func (s *Service) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	reg.ID = ""
	reg.Status = domain.StatusPending
	reg.FullName = s.clean(reg.FullName)
	reg.Type = s.clean(reg.Type)
	reg.Center = s.clean(reg.Center)
	reg.SpaceType = s.clean(reg.SpaceType)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)
	if reg.Message != nil {
		msg := s.clean(*reg.Message)
		if msg == "" {
			reg.Message = nil
		} else {
			reg.Message = &msg
		}
	}

	// Markup removido pode esvaziar um campo obrigatório: valida de novo o texto limpo.
	if fields := checkCleaned(reg); len(fields) > 0 {
		return domain.Registration{}, apperror.NewFieldValidationError(fields)
	}

	created, err := s.repo.Create(ctx, reg)
	if err != nil {
		return domain.Registration{}, err
	}

	s.logger.Info("Nova inscrição recebida.", map[string]interface{}{"id": created.ID, "center": created.Center})
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Registration, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus muda o status (qualquer transição é aceita) e, quando vira APPROVED,
// entrega a notificação sem esperar o envio.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (domain.Registration, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Registration{}, err
	}

	if updated.Status == domain.StatusApproved {
		s.notifier.NotifyApproval(updated)
	}
	return updated, nil
}

// clean remove tags e devolve as entidades ao texto original (o front escapa na renderização).
func (s *Service) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

func checkCleaned(reg domain.Registration) []apperror.FieldError {
	var fields []apperror.FieldError
	for _, f := range []struct {
		path  string
		value string
		min   int
	}{
		{"body.fullName", reg.FullName, 2},
		{"body.type", reg.Type, 1},
		{"body.center", reg.Center, 1},
		{"body.spaceType", reg.SpaceType, 1},
	} {
		if utf8.RuneCountInString(f.value) < f.min {
			fields = append(fields, apperror.FieldError{
				Path:    f.path,
				Message: fmt.Sprintf("Must be at least %d characters", f.min),
			})
		}
	}
	return fields
}
