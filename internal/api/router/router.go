package router

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "skillscenter/docs" // documento OpenAPI gerado pelo swag

	"skillscenter/internal/api/auth"
	"skillscenter/internal/api/content"
	"skillscenter/internal/api/heroslide"
	"skillscenter/internal/api/registration"
	"skillscenter/internal/api/stats"
	"skillscenter/internal/api/upload"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/cache"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/middleware"
	"skillscenter/internal/pkg/respond"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Auth         *auth.Handler
	Content      *content.Handler
	HeroSlide    *heroslide.Handler
	Registration *registration.Handler
	Stats        *stats.Handler
	Upload       *upload.Handler
}

// Options carrega a infraestrutura transversal usada pelo roteador.
type Options struct {
	Gate           *middleware.Gate
	Limiter        cache.Client
	LoginPolicy    middleware.RateLimitPolicy
	APIPolicy      middleware.RateLimitPolicy
	AllowedOrigins []string
	TrustedProxies []*net.IPNet
	UploadsDir     string
	Logger         logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opt Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.TrustedRealIP(opt.TrustedProxies))
	r.Use(middleware.RequestLogger(opt.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(opt.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, opt.Logger, apperror.NewNotFoundError("Not Found - "+req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respond.Message(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", WelcomeHandler)
	r.Get("/ping", PingHandler)

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(opt.UploadsDir)))))
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	gate := opt.Gate
	loginLimiter := middleware.RateLimiter(opt.Limiter, opt.LoginPolicy, opt.Logger)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RateLimiter(opt.Limiter, opt.APIPolicy, opt.Logger))

		api.Route("/auth", func(ar chi.Router) {
			ar.With(loginLimiter).Post("/login", h.Auth.LoginHandler)
			ar.Post("/logout", h.Auth.LogoutHandler)
			ar.With(gate.Authenticate).Get("/me", h.Auth.MeHandler)
			ar.With(gate.Admin).Post("/register-admin", h.Auth.RegisterAdminHandler)
		})

		api.Route("/content", func(cr chi.Router) {
			cr.Get("/", h.Content.ListPublishedHandler)
			cr.With(gate.Admin).Get("/admin", h.Content.ListAllHandler)
			cr.With(gate.Admin).Post("/", h.Content.CreateHandler)
			cr.With(gate.Admin).Get("/{id}", h.Content.GetHandler)
			cr.With(gate.Admin).Put("/{id}", h.Content.UpdateHandler)
			cr.With(gate.Admin).Delete("/{id}", h.Content.DeleteHandler)
		})

		api.Route("/hero-slides", func(hr chi.Router) {
			hr.Get("/", h.HeroSlide.ListPublicHandler)
			hr.With(gate.Admin).Get("/admin", h.HeroSlide.ListAllHandler)
			hr.With(gate.Admin).Post("/", h.HeroSlide.CreateHandler)
			hr.With(gate.Admin).Put("/{id}", h.HeroSlide.UpdateHandler)
			hr.With(gate.Admin).Delete("/{id}", h.HeroSlide.DeleteHandler)
		})

		api.Route("/registrations", func(rr chi.Router) {
			rr.Post("/", h.Registration.CreateHandler)
			rr.With(gate.Admin).Get("/", h.Registration.ListHandler)
			rr.With(gate.Admin).Patch("/{id}", h.Registration.UpdateStatusHandler)
		})

		api.With(gate.Authenticate).Get("/stats", h.Stats.DashboardHandler)
		api.With(gate.Admin).Post("/upload", h.Upload.UploadHandler)
	})

	return r
}

// WelcomeHandler responde na raiz da API.
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	respond.Message(w, http.StatusOK, "Welcome to Algerie Telecom API")
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// noDirListing devolve 404 para diretórios e para arquivos ocultos (uploads ainda em escrita)
// em vez de deixar o FileServer servi-los.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") || hasHiddenSegment(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func hasHiddenSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
