package domain

import (
	"context"
	"time"
)

// HeroSlide é uma entrada do carrossel da landing page.
// Order não é único; empates seguem a ordem de inserção.
type HeroSlide struct {
	ID          string         `json:"id"`
	Title       LocalizedText  `json:"title"`
	Subtitle    *string        `json:"subtitle"`
	Description *LocalizedText `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Order       int            `json:"order"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// HeroSlidePatch carrega uma atualização parcial; nil significa "não alterar".
type HeroSlidePatch struct {
	Title       *LocalizedText
	Subtitle    *string
	Description *LocalizedText
	ImageURL    *string
	Order       *int
	IsActive    *bool
}

// HeroSlideRepository define o contrato de persistência de HeroSlide.
// FindAll devolve os slides por (order, sequência de inserção).
type HeroSlideRepository interface {
	Create(ctx context.Context, slide HeroSlide) (HeroSlide, error)
	FindByID(ctx context.Context, id string) (HeroSlide, error)
	FindAll(ctx context.Context, activeOnly bool) ([]HeroSlide, error)
	Update(ctx context.Context, id string, patch HeroSlidePatch) (HeroSlide, error)
	Delete(ctx context.Context, id string) error
}
