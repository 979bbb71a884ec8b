package router_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/api/auth"
	"skillscenter/internal/api/content"
	"skillscenter/internal/api/heroslide"
	"skillscenter/internal/api/registration"
	"skillscenter/internal/api/router"
	"skillscenter/internal/api/stats"
	"skillscenter/internal/api/upload"
	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/cache"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/middleware"
	"skillscenter/internal/pkg/token"
	"skillscenter/internal/pkg/validator"
)

// fakeUsers resolve as identidades dos tokens de teste.
type fakeUsers map[string]domain.User

func (f fakeUsers) FindByID(_ context.Context, id string) (domain.User, error) {
	u, ok := f[id]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("user not found")
	}
	return u, nil
}

// fakeContent devolve um rascunho e um item publicado.
type fakeContent struct{}

var items = []domain.Content{
	{ID: "draft", Title: domain.PlainText("Draft"), Type: domain.ContentNews, Published: false},
	{ID: "live", Title: domain.PlainText("Live"), Type: domain.ContentNews, Published: true},
}

func (fakeContent) ListPublished(context.Context, domain.ContentType) ([]domain.Content, error) {
	return items[1:], nil
}
func (fakeContent) ListAll(context.Context) ([]domain.Content, error) { return items, nil }
func (fakeContent) Get(context.Context, string) (domain.Content, error) {
	return domain.Content{}, apperror.NewNotFoundError("Content not found")
}
func (fakeContent) Create(_ context.Context, c domain.Content) (domain.Content, error) { return c, nil }
func (fakeContent) Update(context.Context, string, domain.ContentPatch) (domain.Content, error) {
	return domain.Content{}, nil
}
func (fakeContent) Delete(context.Context, string) error { return nil }

type fixture struct {
	handler http.Handler
	tokens  *token.Service
	uploads string
}

func newFixture(t *testing.T, loginLimit int, trustedProxies ...*net.IPNet) fixture {
	t.Helper()
	log := logger.New(io.Discard, "debug")

	mr := miniredis.RunT(t)
	limiter, err := cache.NewRedisClient(mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = limiter.Close() })

	tokens := token.NewService("router-test-secret", time.Hour)
	users := fakeUsers{
		"admin-1": {ID: "admin-1", Role: domain.RoleAdmin},
		"user-1":  {ID: "user-1", Role: domain.RoleUser},
	}
	v := validator.New()
	uploads := t.TempDir()

	h := router.NewRouter(router.Handlers{
		Auth:         auth.NewHandler(nil, v, log, time.Hour, false),
		Content:      content.NewHandler(fakeContent{}, v, log),
		HeroSlide:    heroslide.NewHandler(nil, v, log),
		Registration: registration.NewHandler(nil, v, log),
		Stats:        stats.NewHandler(nil, log),
		Upload:       upload.NewHandler(nil, log, 1<<20),
	}, router.Options{
		Gate:           middleware.NewGate(tokens, users, http.StatusUnauthorized, log),
		Limiter:        limiter,
		LoginPolicy:    middleware.RateLimitPolicy{Name: "login", Limit: loginLimit, Window: 15 * time.Minute, Message: "Too many login attempts from this IP, please try again after 15 minutes"},
		APIPolicy:      middleware.RateLimitPolicy{Name: "api", Limit: 1000, Window: time.Hour, Message: "Too many requests"},
		AllowedOrigins: []string{"http://localhost:5173"},
		TrustedProxies: trustedProxies,
		UploadsDir:     uploads,
		Logger:         log,
	})
	return fixture{handler: h, tokens: tokens, uploads: uploads}
}

func (f fixture) get(t *testing.T, path, userID string, role domain.UserRole) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		tok, err := f.tokens.GenerateToken(userID, string(role))
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: tok})
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestWelcomeAndPing(t *testing.T) {
	f := newFixture(t, 5)

	rec := f.get(t, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to Algerie Telecom API"}`, rec.Body.String())

	rec = f.get(t, "/ping", "", "")
	assert.Equal(t, "pong", rec.Body.String())
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	f := newFixture(t, 5)

	rec := f.get(t, "/api/unknown", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found - /api/unknown")
}

func TestAdminContentListing(t *testing.T) {
	f := newFixture(t, 5)

	rec := f.get(t, "/api/content/admin", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A role vem do armazenamento: o token diz ADMIN, o usuário é USER.
	rec = f.get(t, "/api/content/admin", "user-1", domain.RoleAdmin)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized as an admin")

	rec = f.get(t, "/api/content/admin", "admin-1", domain.RoleAdmin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"draft"`)
	assert.Contains(t, rec.Body.String(), `"id":"live"`)
}

func TestPublicContentListing(t *testing.T) {
	f := newFixture(t, 5)

	rec := f.get(t, "/api/content", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"id":"draft"`)
	assert.NotEmpty(t, rec.Header().Get("RateLimit-Remaining"))
}

func TestLoginRateLimit(t *testing.T) {
	f := newFixture(t, 1)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.10:4321"
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, post().Code)
	rec := post()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many login attempts")
}

func postLogin(h http.Handler, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginRateLimit_IgnoresForwardedHeadersFromUntrustedPeer(t *testing.T) {
	f := newFixture(t, 1)

	assert.Equal(t, http.StatusBadRequest, postLogin(f.handler, "198.51.100.4:1000", "10.0.0.1").Code)
	for i := 2; i <= 5; i++ {
		rec := postLogin(f.handler, "198.51.100.4:1000", "10.0.0."+strconv.Itoa(i))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, "tentativa %d", i)
	}
}

func TestLoginRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	_, proxyNet, err := net.ParseCIDR("203.0.113.0/24")
	require.NoError(t, err)
	f := newFixture(t, 1, proxyNet)

	// Atrás do proxy confiável cada cliente tem a própria janela.
	assert.Equal(t, http.StatusBadRequest, postLogin(f.handler, "203.0.113.9:443", "10.0.0.1").Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(f.handler, "203.0.113.9:443", "10.0.0.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(f.handler, "203.0.113.9:443", "10.0.0.1").Code)
}

func TestUploadsAreServedStatically(t *testing.T) {
	f := newFixture(t, 5)
	require.NoError(t, os.WriteFile(filepath.Join(f.uploads, "image-1-2.jpg"), []byte("jpeg"), 0o644))

	rec := f.get(t, "/uploads/image-1-2.jpg", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())

	rec = f.get(t, "/uploads/", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadsHideInProgressFiles(t *testing.T) {
	f := newFixture(t, 5)
	require.NoError(t, os.WriteFile(filepath.Join(f.uploads, ".upload-123.tmp"), []byte("partial"), 0o644))

	rec := f.get(t, "/uploads/.upload-123.tmp", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
