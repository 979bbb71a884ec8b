package contentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

const contentColumns = `id, title, body, type, image_url, published, created_at, updated_at`

// ContentRepository implementa domain.ContentRepository sobre PostgreSQL.
type ContentRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewContentRepository cria e retorna uma nova instância do Repositório de Conteúdo.
func NewContentRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ContentRepository {
	return &ContentRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanContent(s scanner, extra ...interface{}) (domain.Content, error) {
	var c domain.Content
	var imageURL sql.NullString
	dest := []interface{}{
		&c.ID, &c.Title, &c.Body, &c.Type, &imageURL, &c.Published, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return domain.Content{}, err
	}
	if imageURL.Valid {
		c.ImageURL = &imageURL.String
	}
	return c, nil
}

// Create insere um novo item de conteúdo.
func (r *ContentRepository) Create(ctx context.Context, content domain.Content) (domain.Content, error) {
	r.logger.Debug("Iniciando Create de conteúdo no repositório.", map[string]interface{}{"type": content.Type})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	query := `
        INSERT INTO contents (` + contentColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
        RETURNING ` + contentColumns

	created, err := scanContent(r.DB.QueryRowContext(ctxTimeout, query,
		content.ID, content.Title, content.Body, content.Type, content.ImageURL, content.Published, now,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir conteúdo no DB.", err)
		return domain.Content{}, apperror.NewDBError("Falha ao criar conteúdo", err)
	}

	r.logger.Info("Conteúdo criado com sucesso.", map[string]interface{}{"id": created.ID, "type": created.Type})
	return created, nil
}

// FindByID busca um item pelo ID, publicado ou não.
func (r *ContentRepository) FindByID(ctx context.Context, id string) (domain.Content, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`

	content, err := scanContent(r.DB.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Conteúdo não encontrado.", map[string]interface{}{"id": id})
		return domain.Content{}, apperror.NewNotFoundError("Content not found")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar conteúdo no DB.", err)
		return domain.Content{}, apperror.NewDBError("Falha ao buscar conteúdo", err)
	}
	return content, nil
}

// FindAll lista o conteúdo do mais novo para o mais antigo.
func (r *ContentRepository) FindAll(ctx context.Context, filter domain.ContentFilter) ([]domain.Content, error) {
	r.logger.Debug("Iniciando FindAll de conteúdo no repositório.", map[string]interface{}{
		"type": filter.Type, "published_only": filter.PublishedOnly,
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT ` + contentColumns + `
        FROM contents
        WHERE ($1::text = '' OR type = $1::text)
          AND (NOT $2::boolean OR published)
        ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctxTimeout, query, string(filter.Type), filter.PublishedOnly)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de conteúdo.", err)
		return nil, apperror.NewDBError("Falha ao listar conteúdo", err)
	}
	defer rows.Close()

	contents := make([]domain.Content, 0)
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			r.logger.Error("Falha ao escanear linha de conteúdo.", err)
			return nil, apperror.NewDBError("Falha ao ler conteúdo", err)
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro durante a iteração das linhas de conteúdo.", err)
		return nil, apperror.NewDBError("Falha ao ler conteúdo", err)
	}

	return contents, nil
}

// Update aplica o patch e devolve também o image_url anterior, lido na mesma instrução.
func (r *ContentRepository) Update(ctx context.Context, id string, patch domain.ContentPatch) (domain.Content, *string, error) {
	r.logger.Debug("Iniciando Update de conteúdo no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var contentType *string
	if patch.Type != nil {
		s := string(*patch.Type)
		contentType = &s
	}
	setImage := patch.ImageURL != nil
	imageURL := ""
	if setImage {
		imageURL = *patch.ImageURL
	}

	// image_url vazio no patch limpa a imagem.
	query := `
        UPDATE contents c SET
            title      = COALESCE($2::jsonb, c.title),
            body       = COALESCE($3::jsonb, c.body),
            type       = COALESCE($4::text, c.type),
            image_url  = CASE WHEN $5::boolean THEN NULLIF($6::text, '') ELSE c.image_url END,
            published  = COALESCE($7::boolean, c.published),
            updated_at = $8
        FROM (SELECT id, image_url FROM contents WHERE id = $1 FOR UPDATE) prev
        WHERE c.id = prev.id
        RETURNING c.id, c.title, c.body, c.type, c.image_url, c.published, c.created_at, c.updated_at, prev.image_url`

	var previous sql.NullString
	updated, err := scanContent(r.DB.QueryRowContext(ctxTimeout, query,
		id, patch.Title, patch.Body, contentType, setImage, imageURL, patch.Published, time.Now().UTC(),
	), &previous)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Conteúdo para atualização não encontrado.", map[string]interface{}{"id": id})
		return domain.Content{}, nil, apperror.NewNotFoundError("Content not found")
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar conteúdo no DB.", err)
		return domain.Content{}, nil, apperror.NewDBError("Falha ao atualizar conteúdo", err)
	}

	r.logger.Info("Conteúdo atualizado com sucesso.", map[string]interface{}{"id": id})
	return updated, nullableString(previous), nil
}

// Delete remove o item e devolve o image_url que ele referenciava.
func (r *ContentRepository) Delete(ctx context.Context, id string) (*string, error) {
	r.logger.Debug("Iniciando Delete de conteúdo no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var previous sql.NullString
	err := r.DB.QueryRowContext(ctxTimeout, `DELETE FROM contents WHERE id = $1 RETURNING image_url`, id).Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Conteúdo para exclusão não encontrado.", map[string]interface{}{"id": id})
		return nil, apperror.NewNotFoundError("Content not found")
	}
	if err != nil {
		r.logger.Error("Falha ao deletar conteúdo no DB.", err)
		return nil, apperror.NewDBError(fmt.Sprintf("Falha ao deletar conteúdo %s", id), err)
	}

	r.logger.Info("Conteúdo deletado com sucesso.", map[string]interface{}{"id": id})
	return nullableString(previous), nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
