package domain

import (
	"context"
	"time"
)

// ContentType classifica os itens de conteúdo exibidos no site público.
type ContentType string

const (
	ContentNews         ContentType = "NEWS"
	ContentEvent        ContentType = "EVENT"
	ContentTestimonial  ContentType = "TESTIMONIAL"
	ContentAboutSection ContentType = "ABOUT_SECTION"
)

// Valid indica se o tipo pertence ao enum.
func (t ContentType) Valid() bool {
	switch t {
	case ContentNews, ContentEvent, ContentTestimonial, ContentAboutSection:
		return true
	}
	return false
}

// Content é uma notícia, evento, depoimento ou seção "sobre", publicada ou rascunho.
type Content struct {
	ID        string        `json:"id"`
	Title     LocalizedText `json:"title"`
	Body      LocalizedText `json:"body"`
	Type      ContentType   `json:"type"`
	ImageURL  *string       `json:"imageUrl"`
	Published bool          `json:"published"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ContentFilter restringe a listagem de conteúdo.
type ContentFilter struct {
	Type          ContentType // vazio = todos os tipos
	PublishedOnly bool
}

// ContentPatch carrega uma atualização parcial; nil significa "não alterar".
type ContentPatch struct {
	Title     *LocalizedText
	Body      *LocalizedText
	Type      *ContentType
	ImageURL  *string
	Published *bool
}

// ContentRepository define o contrato de persistência de Content.
// Update e Delete devolvem também a imagem referenciada antes da operação.
type ContentRepository interface {
	Create(ctx context.Context, content Content) (Content, error)
	FindByID(ctx context.Context, id string) (Content, error)
	FindAll(ctx context.Context, filter ContentFilter) ([]Content, error)
	Update(ctx context.Context, id string, patch ContentPatch) (updated Content, previousImage *string, err error)
	Delete(ctx context.Context, id string) (previousImage *string, err error)
}
