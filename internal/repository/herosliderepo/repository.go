package herosliderepo

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

const slideColumns = `id, title, subtitle, description, image_url, sort_order, is_active, created_at, updated_at`

// HeroSlideRepository implementa domain.HeroSlideRepository.
// A coluna seq (BIGSERIAL) desempata slides com o mesmo sort_order pela ordem de inserção.
type HeroSlideRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewHeroSlideRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *HeroSlideRepository {
	return &HeroSlideRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSlide(s scanner) (domain.HeroSlide, error) {
	var slide domain.HeroSlide
	var subtitle sql.NullString
	var description []byte

	err := s.Scan(
		&slide.ID, &slide.Title, &subtitle, &description, &slide.ImageURL,
		&slide.Order, &slide.IsActive, &slide.CreatedAt, &slide.UpdatedAt,
	)
	if err != nil {
		return domain.HeroSlide{}, err
	}

	if subtitle.Valid {
		slide.Subtitle = &subtitle.String
	}
	if description != nil {
		var d domain.LocalizedText
		if err := d.Scan(description); err != nil {
			return domain.HeroSlide{}, err
		}
		if !d.IsZero() {
			slide.Description = &d
		}
	}
	return slide, nil
}

// Create insere um novo slide.
func (r *HeroSlideRepository) Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error) {
	r.logger.Debug("Iniciando Create de hero slide no repositório.", map[string]interface{}{"order": slide.Order})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if slide.ID == "" {
		slide.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	query := `
        INSERT INTO hero_slides (` + slideColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
        RETURNING ` + slideColumns

	created, err := scanSlide(r.DB.QueryRowContext(ctxTimeout, query,
		slide.ID, slide.Title, slide.Subtitle, slide.Description, slide.ImageURL, slide.Order, slide.IsActive, now,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir hero slide no DB.", err)
		return domain.HeroSlide{}, apperror.NewDBError("Falha ao criar hero slide", err)
	}

	r.logger.Info("Hero slide criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// FindByID busca um slide pelo ID.
func (r *HeroSlideRepository) FindByID(ctx context.Context, id string) (domain.HeroSlide, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	slide, err := scanSlide(r.DB.QueryRowContext(ctxTimeout, `SELECT `+slideColumns+` FROM hero_slides WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Hero slide não encontrado.", map[string]interface{}{"id": id})
		return domain.HeroSlide{}, apperror.NewNotFoundError("Hero slide not found")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar hero slide no DB.", err)
		return domain.HeroSlide{}, apperror.NewDBError("Falha ao buscar hero slide", err)
	}
	return slide, nil
}

// FindAll lista os slides por (sort_order, seq).
func (r *HeroSlideRepository) FindAll(ctx context.Context, activeOnly bool) ([]domain.HeroSlide, error) {
	r.logger.Debug("Iniciando FindAll de hero slides.", map[string]interface{}{"active_only": activeOnly})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT ` + slideColumns + `
        FROM hero_slides
        WHERE (NOT $1::boolean OR is_active)
        ORDER BY sort_order ASC, seq ASC`

	rows, err := r.DB.QueryContext(ctxTimeout, query, activeOnly)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de hero slides.", err)
		return nil, apperror.NewDBError("Falha ao listar hero slides", err)
	}
	defer rows.Close()

	slides := make([]domain.HeroSlide, 0)
	for rows.Next() {
		slide, err := scanSlide(rows)
		if err != nil {
			r.logger.Error("Falha ao escanear linha de hero slide.", err)
			return nil, apperror.NewDBError("Falha ao ler hero slides", err)
		}
		slides = append(slides, slide)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro durante a iteração das linhas de hero slide.", err)
		return nil, apperror.NewDBError("Falha ao ler hero slides", err)
	}
	return slides, nil
}

// Update aplica o patch. Subtitle vazio limpa o campo.
func (r *HeroSlideRepository) Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (domain.HeroSlide, error) {
	r.logger.Debug("Iniciando Update de hero slide no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	setSubtitle := patch.Subtitle != nil
	subtitle := ""
	if setSubtitle {
		subtitle = *patch.Subtitle
	}

	query := `
        UPDATE hero_slides SET
            title       = COALESCE($2::jsonb, title),
            subtitle    = CASE WHEN $3::boolean THEN NULLIF($4::text, '') ELSE subtitle END,
            description = COALESCE($5::jsonb, description),
            image_url   = COALESCE($6::text, image_url),
            sort_order  = COALESCE($7::integer, sort_order),
            is_active   = COALESCE($8::boolean, is_active),
            updated_at  = $9
        WHERE id = $1
        RETURNING ` + slideColumns

	updated, err := scanSlide(r.DB.QueryRowContext(ctxTimeout, query,
		id, patch.Title, setSubtitle, subtitle, patch.Description, patch.ImageURL, patch.Order, patch.IsActive, time.Now().UTC(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Hero slide para atualização não encontrado.", map[string]interface{}{"id": id})
		return domain.HeroSlide{}, apperror.NewNotFoundError("Hero slide not found")
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar hero slide no DB.", err)
		return domain.HeroSlide{}, apperror.NewDBError("Falha ao atualizar hero slide", err)
	}

	r.logger.Info("Hero slide atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nil
}

// Delete remove um slide pelo ID.
func (r *HeroSlideRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar hero slide no DB.", err)
		return apperror.NewDBError("Falha ao deletar hero slide", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após delete.", err)
		return apperror.NewDBError("Falha ao deletar hero slide", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Hero slide para exclusão não encontrado.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError("Hero slide not found")
	}

	r.logger.Info("Hero slide deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}
