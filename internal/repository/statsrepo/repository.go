package statsrepo

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/sync/errgroup"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

// StatsRepository executa as consultas agregadas do dashboard em paralelo.
type StatsRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewStatsRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *StatsRepository {
	return &StatsRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Collect roda as quatro contagens e a lista recente concorrentemente; a primeira falha cancela as demais.
func (r *StatsRepository) Collect(ctx context.Context, recentLimit int) (domain.DashboardStats, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctxTimeout)

	count := func(dest *int, query string) func() error {
		return func() error {
			return r.DB.QueryRowContext(gctx, query).Scan(dest)
		}
	}

	g.Go(count(&stats.Registration.Total, `SELECT COUNT(*) FROM registrations`))
	g.Go(count(&stats.Registration.Pending, `SELECT COUNT(*) FROM registrations WHERE status = 'PENDING'`))
	g.Go(count(&stats.Content.Total, `SELECT COUNT(*) FROM contents`))
	g.Go(count(&stats.HeroSlides.Active, `SELECT COUNT(*) FROM hero_slides WHERE is_active`))
	g.Go(func() error {
		recent, err := r.recent(gctx, recentLimit)
		stats.RecentActivity = recent
		return err
	})

	if err := g.Wait(); err != nil {
		r.logger.Error("Falha ao coletar estatísticas do dashboard.", err)
		return domain.DashboardStats{}, apperror.NewDBError("Falha ao coletar estatísticas", err)
	}
	return stats, nil
}

func (r *StatsRepository) recent(ctx context.Context, limit int) ([]domain.RecentRegistration, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, full_name, email, status, created_at
        FROM registrations
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := make([]domain.RecentRegistration, 0, limit)
	for rows.Next() {
		var rr domain.RecentRegistration
		if err := rows.Scan(&rr.ID, &rr.FullName, &rr.Email, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, err
		}
		recent = append(recent, rr)
	}
	return recent, rows.Err()
}
