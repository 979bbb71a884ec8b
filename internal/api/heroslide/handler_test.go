package heroslide_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/api/heroslide"
	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/validator"
)

type MockHeroSlideService struct {
	mock.Mock
}

func (m *MockHeroSlideService) ListPublic(ctx context.Context) ([]domain.HeroSlide, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideService) ListAll(ctx context.Context) ([]domain.HeroSlide, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideService) Create(ctx context.Context, slide domain.HeroSlide) (domain.HeroSlide, error) {
	args := m.Called(ctx, slide)
	return args.Get(0).(domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideService) Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (domain.HeroSlide, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.HeroSlide), args.Error(1)
}

func (m *MockHeroSlideService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

const slideID = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"

func newRouter(svc *MockHeroSlideService) http.Handler {
	h := heroslide.NewHandler(svc, validator.New(), logger.New(io.Discard, "debug"))
	r := chi.NewRouter()
	r.Get("/api/hero-slides", h.ListPublicHandler)
	r.Post("/api/hero-slides", h.CreateHandler)
	r.Put("/api/hero-slides/{id}", h.UpdateHandler)
	r.Delete("/api/hero-slides/{id}", h.DeleteHandler)
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestCreateHandler_StringOrderAndActiveDefault(t *testing.T) {
	svc := new(MockHeroSlideService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(s domain.HeroSlide) bool {
		return s.Order == 3 && s.IsActive && s.ImageURL == "/uploads/hero.jpg" && s.Description == nil
	})).Return(domain.HeroSlide{ID: slideID, Order: 3, IsActive: true}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/api/hero-slides",
		`{"title":{"en":"Innovate","fr":"Innover","ar":"ابتكر"},"imageUrl":"/uploads/hero.jpg","order":"3"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateHandler_RequiresImage(t *testing.T) {
	svc := new(MockHeroSlideService)

	rec := do(newRouter(svc), http.MethodPost, "/api/hero-slides",
		`{"title":{"en":"Innovate","fr":"Innover","ar":"ابتكر"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "body.imageUrl")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateHandler_OrderOnly(t *testing.T) {
	svc := new(MockHeroSlideService)
	svc.On("Update", mock.Anything, slideID, mock.MatchedBy(func(p domain.HeroSlidePatch) bool {
		return p.Order != nil && *p.Order == 1 && p.Title == nil && p.IsActive == nil
	})).Return(domain.HeroSlide{ID: slideID, Order: 1}, nil)

	rec := do(newRouter(svc), http.MethodPut, "/api/hero-slides/"+slideID, `{"order":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	svc := new(MockHeroSlideService)
	svc.On("Delete", mock.Anything, slideID).Return(apperror.NewNotFoundError("Hero slide not found"))

	rec := do(newRouter(svc), http.MethodDelete, "/api/hero-slides/"+slideID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hero slide not found")
}

func TestListPublicHandler(t *testing.T) {
	svc := new(MockHeroSlideService)
	svc.On("ListPublic", mock.Anything).Return([]domain.HeroSlide{
		{ID: "a", Order: 0, IsActive: true},
		{ID: "b", Order: 1, IsActive: true},
	}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/api/hero-slides", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, `"id":"a"`), strings.Index(body, `"id":"b"`))
}
