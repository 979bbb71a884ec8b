package heroslideservice

import (
	"context"
	"sort"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
)

// Service é a lógica de negócio dos slides do carrossel.
type Service struct {
	repo   domain.HeroSlideRepository
	logger logger.Logger
}

func NewService(repo domain.HeroSlideRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublic devolve apenas os slides ativos, por order crescente; empates mantêm a ordem de inserção.
func (s *Service) ListPublic(ctx context.Context) ([]domain.HeroSlide, error) {
	slides, err := s.repo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	return sortByOrder(slides), nil
}

// ListAll devolve todos os slides, ativos ou não, na mesma ordem.
func (s *Service) ListAll(ctx context.Context) ([]domain.HeroSlide, error) {
	slides, err := s.repo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	return sortByOrder(slides), nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.HeroSlide, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error) {
	s.logger.Debug("Iniciando criação de hero slide no serviço.", map[string]interface{}{"order": slide.Order})
	return s.repo.Create(ctx, slide)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (domain.HeroSlide, error) {
	s.logger.Debug("Iniciando atualização de hero slide no serviço.", map[string]interface{}{"id": id})
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("Iniciando exclusão de hero slide no serviço.", map[string]interface{}{"id": id})
	return s.repo.Delete(ctx, id)
}

// sortByOrder é estável: a ordem de inserção vinda do repositório desempata.
func sortByOrder(slides []domain.HeroSlide) []domain.HeroSlide {
	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].Order < slides[j].Order
	})
	return slides
}
