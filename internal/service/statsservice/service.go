package statsservice

import (
	"context"

	"skillscenter/internal/domain"
)

// RecentLimit é quantas inscrições aparecem na atividade recente.
const RecentLimit = 5

type Service struct {
	repo domain.StatsRepository
}

func NewService(repo domain.StatsRepository) *Service {
	return &Service{repo: repo}
}

// Dashboard devolve os contadores do painel e as últimas inscrições.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.repo.Collect(ctx, RecentLimit)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	if stats.RecentActivity == nil {
		stats.RecentActivity = []domain.RecentRegistration{}
	}
	return stats, nil
}
