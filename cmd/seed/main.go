package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/database"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/repository/userrepo"
	"skillscenter/internal/service/authservice"
)

type seedConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	AdminName     string `env:"SEED_ADMIN_NAME" envDefault:"Super Admin"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"password123"`
}

// Cria o administrador inicial. Rodar de novo não duplica o usuário.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema.")
	}

	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("seed: configuração inválida: %v", err)
	}
	appLog := logger.NewLogger(cfg.LogLevel)

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()

	repo := userrepo.NewUserRepository(db, 10*time.Second, appLog)
	svc := authservice.NewService(repo, nil, appLog)

	ctx := context.Background()
	if _, err := repo.FindByEmail(ctx, cfg.AdminEmail); err == nil {
		appLog.Info("Administrador já existe; nada a fazer.", map[string]interface{}{"email": cfg.AdminEmail})
		return
	} else if !apperror.IsNotFound(err) {
		appLog.Fatal("Falha ao verificar administrador existente.", err)
	}

	admin, err := svc.RegisterAdmin(ctx, domain.AdminRegistration{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		var domainErr *apperror.DomainError
		if errors.As(err, &domainErr) {
			appLog.Info("Administrador já existe; nada a fazer.", map[string]interface{}{"email": cfg.AdminEmail})
			return
		}
		appLog.Fatal("Falha ao criar administrador.", err)
	}

	appLog.Info("Administrador criado.", map[string]interface{}{"id": admin.ID, "email": admin.Email})
}
