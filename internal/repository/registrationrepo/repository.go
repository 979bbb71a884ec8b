package registrationrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

const registrationColumns = `id, full_name, email, phone, type, center, space_type, message, status, created_at`

// RegistrationRepository implementa domain.RegistrationRepository.
type RegistrationRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewRegistrationRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *RegistrationRepository {
	return &RegistrationRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRegistration(s scanner) (domain.Registration, error) {
	var reg domain.Registration
	var message sql.NullString
	err := s.Scan(
		&reg.ID, &reg.FullName, &reg.Email, &reg.Phone, &reg.Type, &reg.Center,
		&reg.SpaceType, &message, &reg.Status, &reg.CreatedAt,
	)
	if err != nil {
		return domain.Registration{}, err
	}
	if message.Valid {
		reg.Message = &message.String
	}
	return reg, nil
}

// Create insere um pedido de inscrição.
func (r *RegistrationRepository) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	r.logger.Debug("Iniciando Create de inscrição no repositório.", map[string]interface{}{"center": reg.Center})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Status == "" {
		reg.Status = domain.StatusPending
	}

	query := `
        INSERT INTO registrations (` + registrationColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + registrationColumns

	created, err := scanRegistration(r.DB.QueryRowContext(ctxTimeout, query,
		reg.ID, reg.FullName, reg.Email, reg.Phone, reg.Type, reg.Center, reg.SpaceType,
		reg.Message, reg.Status, time.Now().UTC(),
	))
	if err != nil {
		r.logger.Error("Falha ao inserir inscrição no DB.", err)
		return domain.Registration{}, apperror.NewDBError("Falha ao criar inscrição", err)
	}

	r.logger.Info("Inscrição criada com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// FindByID busca uma inscrição pelo ID.
func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (domain.Registration, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	reg, err := scanRegistration(r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Registration{}, apperror.NewNotFoundError("Registration not found")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar inscrição no DB.", err)
		return domain.Registration{}, apperror.NewDBError("Falha ao buscar inscrição", err)
	}
	return reg, nil
}

// FindAll lista as inscrições da mais nova para a mais antiga.
func (r *RegistrationRepository) FindAll(ctx context.Context) ([]domain.Registration, error) {
	r.logger.Debug("Iniciando FindAll de inscrições.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY created_at DESC, id`)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de inscrições.", err)
		return nil, apperror.NewDBError("Falha ao listar inscrições", err)
	}
	defer rows.Close()

	regs := make([]domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			r.logger.Error("Falha ao escanear linha de inscrição.", err)
			return nil, apperror.NewDBError("Falha ao ler inscrições", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro durante a iteração das linhas de inscrição.", err)
		return nil, apperror.NewDBError("Falha ao ler inscrições", err)
	}
	return regs, nil
}

// UpdateStatus grava o novo status, sem restringir a transição.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (domain.Registration, error) {
	r.logger.Debug("Iniciando UpdateStatus de inscrição.", map[string]interface{}{"id": id, "status": status})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	reg, err := scanRegistration(r.DB.QueryRowContext(ctxTimeout,
		`UPDATE registrations SET status = $2 WHERE id = $1 RETURNING `+registrationColumns, id, status))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Inscrição para atualização não encontrada.", map[string]interface{}{"id": id})
		return domain.Registration{}, apperror.NewNotFoundError("Registration not found")
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar status da inscrição no DB.", err)
		return domain.Registration{}, apperror.NewDBError("Falha ao atualizar inscrição", err)
	}

	r.logger.Info("Status da inscrição atualizado.", map[string]interface{}{"id": id, "status": status})
	return reg, nil
}
