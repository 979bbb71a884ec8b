package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"skillscenter/config"
	"skillscenter/internal/pkg/cache"
	"skillscenter/internal/pkg/database"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/mailer"
	"skillscenter/internal/pkg/middleware"
	"skillscenter/internal/pkg/storage"
	"skillscenter/internal/pkg/token"
	"skillscenter/internal/pkg/validator"

	// Camadas para Injeção de Dependências
	"skillscenter/internal/api/auth"
	"skillscenter/internal/api/content"
	"skillscenter/internal/api/heroslide"
	"skillscenter/internal/api/registration"
	"skillscenter/internal/api/router"
	"skillscenter/internal/api/stats"
	"skillscenter/internal/api/upload"
	"skillscenter/internal/repository/contentrepo"
	"skillscenter/internal/repository/herosliderepo"
	"skillscenter/internal/repository/registrationrepo"
	"skillscenter/internal/repository/statsrepo"
	"skillscenter/internal/repository/userrepo"
	"skillscenter/internal/service/authservice"
	"skillscenter/internal/service/contentservice"
	"skillscenter/internal/service/heroslideservice"
	"skillscenter/internal/service/registrationservice"
	"skillscenter/internal/service/statsservice"
	"skillscenter/internal/service/uploadservice"
)

// @title Skills Center API
// @version 1.0
// @description API do site do Skills Center: conteúdo, carrossel, inscrições e painel administrativo.
// @BasePath /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt
func main() {
	log.Println("⚡ Inicializando a API do Skills Center...")
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos com o ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// 1. Infraestrutura

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// Redis fora do ar não impede a subida: o rate limiter libera as requisições.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		appLog.Warn("Redis indisponível; rate limiting desativado até reconectar.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		appLog.Info("Conexão Redis estabelecida.", nil)
	}
	defer cacheClient.Close()

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry())
	v := validator.New()
	files := storage.NewFiles(cfg.UploadsDir, appLog)
	notifier := mailer.NewAsyncNotifier(mailer.NewSender(cfg.ResendAPIKey, cfg.MailFrom, appLog), 15*time.Second, appLog)

	// 2. Injeção de dependências: Repository -> Service -> Handler

	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout(), appLog)
	contentRepo := contentrepo.NewContentRepository(db, cfg.DBTimeout(), appLog)
	slideRepo := herosliderepo.NewHeroSlideRepository(db, cfg.DBTimeout(), appLog)
	registrationRepo := registrationrepo.NewRegistrationRepository(db, cfg.DBTimeout(), appLog)
	statsRepo := statsrepo.NewStatsRepository(db, cfg.DBTimeout(), appLog)

	authSvc := authservice.NewService(userRepo, tokenSvc, appLog)
	contentSvc := contentservice.NewService(contentRepo, files, appLog)
	slideSvc := heroslideservice.NewService(slideRepo, appLog)
	registrationSvc := registrationservice.NewService(registrationRepo, notifier, appLog)
	statsSvc := statsservice.NewService(statsRepo)
	uploadSvc := uploadservice.NewService(files, appLog)

	handlers := router.Handlers{
		Auth:         auth.NewHandler(authSvc, v, appLog, tokenSvc.Expiry(), !cfg.IsDevelopment()),
		Content:      content.NewHandler(contentSvc, v, appLog),
		HeroSlide:    heroslide.NewHandler(slideSvc, v, appLog),
		Registration: registration.NewHandler(registrationSvc, v, appLog),
		Stats:        stats.NewHandler(statsSvc, appLog),
		Upload:       upload.NewHandler(uploadSvc, appLog, cfg.UploadMaxBytes()),
	}
	appLog.Debug("Handlers inicializados.", nil)

	// 3. Roteador e servidor

	r := router.NewRouter(handlers, router.Options{
		Gate:    middleware.NewGate(tokenSvc, userRepo, cfg.AdminDeniedStatus, appLog),
		Limiter: cacheClient,
		LoginPolicy: middleware.RateLimitPolicy{
			Name:    "login",
			Limit:   cfg.LoginRateLimitMax,
			Window:  cfg.LoginRateLimitWindow(),
			Message: "Too many login attempts from this IP, please try again after 15 minutes",
		},
		APIPolicy: middleware.RateLimitPolicy{
			Name:    "api",
			Limit:   cfg.APIRateLimitMax,
			Window:  cfg.APIRateLimitWindow(),
			Message: "Too many requests from this IP, please try again after an hour",
		},
		AllowedOrigins: cfg.AllowedOrigins(),
		TrustedProxies: cfg.TrustedProxyNets(),
		UploadsDir:     cfg.UploadsDir,
		Logger:         appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}
	if err := notifier.Close(ctx); err != nil {
		appLog.Error("E-mails de aprovação ainda pendentes no encerramento.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
