package contentservice

import (
	"context"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
)

// ImageRemover apaga do disco uma imagem referenciada pelo URL público.
type ImageRemover interface {
	Remove(url string)
}

// Service é a lógica de negócio do conteúdo do site (notícias, eventos, depoimentos, seções).
type Service struct {
	repo   domain.ContentRepository
	images ImageRemover
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Conteúdo.
func NewService(repo domain.ContentRepository, images ImageRemover, logger logger.Logger) *Service {
	return &Service{repo: repo, images: images, logger: logger}
}

// ListPublished devolve o conteúdo publicado, opcionalmente filtrado por tipo.
func (s *Service) ListPublished(ctx context.Context, contentType domain.ContentType) ([]domain.Content, error) {
	return s.repo.FindAll(ctx, domain.ContentFilter{Type: contentType, PublishedOnly: true})
}

// ListAll devolve todo o conteúdo, inclusive rascunhos.
func (s *Service) ListAll(ctx context.Context) ([]domain.Content, error) {
	return s.repo.FindAll(ctx, domain.ContentFilter{})
}

func (s *Service) Get(ctx context.Context, id string) (domain.Content, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, content domain.Content) (domain.Content, error) {
	s.logger.Debug("Iniciando criação de conteúdo no serviço.", map[string]interface{}{"type": content.Type})

	created, err := s.repo.Create(ctx, content)
	if err != nil {
		return domain.Content{}, err
	}
	return created, nil
}

// Update aplica o patch e, se a imagem mudou, remove o arquivo antigo.
func (s *Service) Update(ctx context.Context, id string, patch domain.ContentPatch) (domain.Content, error) {
	s.logger.Debug("Iniciando atualização de conteúdo no serviço.", map[string]interface{}{"id": id})

	updated, previous, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Content{}, err
	}

	if previous != nil && (updated.ImageURL == nil || *updated.ImageURL != *previous) {
		s.images.Remove(*previous)
	}
	return updated, nil
}

// Delete remove o item e a imagem que ele referenciava.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de conteúdo no serviço.", map[string]interface{}{"id": id})

	previous, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if previous != nil {
		s.images.Remove(*previous)
	}
	return nil
}
