package heroslideservice_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/service/heroslideservice"
)

// MockHeroSlideRepository é uma implementação mock da interface HeroSlideRepository
type MockHeroSlideRepository struct {
	mock.Mock
}

func (m *MockHeroSlideRepository) Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error) {
	args := m.Called(ctx, slide)
	return args.Get(0).(domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideRepository) FindByID(ctx context.Context, id string) (domain.HeroSlide, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideRepository) FindAll(ctx context.Context, activeOnly bool) ([]domain.HeroSlide, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideRepository) Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (domain.HeroSlide, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.New(io.Discard, "debug")
}

func ids(slides []domain.HeroSlide) []string {
	out := make([]string, len(slides))
	for i, s := range slides {
		out[i] = s.ID
	}
	return out
}

func TestListPublic_OnlyActiveSortedStable(t *testing.T) {
	repo := new(MockHeroSlideRepository)
	svc := heroslideservice.NewService(repo, newTestLogger())

	// Chegam na ordem de inserção; "b" e "c" empatam em order=1.
	repo.On("FindAll", mock.Anything, true).Return([]domain.HeroSlide{
		{ID: "a", Order: 2, IsActive: true},
		{ID: "b", Order: 1, IsActive: true},
		{ID: "c", Order: 1, IsActive: true},
		{ID: "d", Order: 0, IsActive: true},
	}, nil)

	slides, err := svc.ListPublic(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids(slides))
	repo.AssertExpectations(t)
}

func TestListAll_IncludesInactive(t *testing.T) {
	repo := new(MockHeroSlideRepository)
	svc := heroslideservice.NewService(repo, newTestLogger())

	repo.On("FindAll", mock.Anything, false).Return([]domain.HeroSlide{
		{ID: "on", IsActive: true},
		{ID: "off", IsActive: false},
	}, nil)

	slides, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, slides, 2)
}

func TestListPublic_StorageFailure(t *testing.T) {
	repo := new(MockHeroSlideRepository)
	svc := heroslideservice.NewService(repo, newTestLogger())
	repo.On("FindAll", mock.Anything, true).Return([]domain.HeroSlide(nil), apperror.NewDBError("down", errors.New("conn")))

	_, err := svc.ListPublic(context.Background())
	assert.Error(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockHeroSlideRepository)
	svc := heroslideservice.NewService(repo, newTestLogger())
	repo.On("Delete", mock.Anything, "missing").Return(apperror.NewNotFoundError("Hero slide not found"))

	err := svc.Delete(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
}
