package statsservice_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/domain"
	"skillscenter/internal/service/statsservice"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Collect(ctx context.Context, recentLimit int) (domain.DashboardStats, error) {
	args := m.Called(ctx, recentLimit)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

func TestDashboard_UsesRecentLimitAndEmptyList(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := statsservice.NewService(repo)

	var stats domain.DashboardStats
	stats.Registration.Total = 3
	stats.Registration.Pending = 1
	repo.On("Collect", mock.Anything, 5).Return(stats, nil)

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"registration":{"total":3,"pending":1},"content":{"total":0},"heroSlides":{"active":0},"recentActivity":[]}`,
		string(raw))
	repo.AssertExpectations(t)
}
