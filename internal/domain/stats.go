package domain

import (
	"context"
	"time"
)

// RecentRegistration é a projeção usada na atividade recente do dashboard.
type RecentRegistration struct {
	ID        string             `json:"id"`
	FullName  string             `json:"fullName"`
	Email     string             `json:"email"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// DashboardStats agrega os contadores exibidos no painel administrativo.
type DashboardStats struct {
	Registration struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
	} `json:"registration"`
	Content struct {
		Total int `json:"total"`
	} `json:"content"`
	HeroSlides struct {
		Active int `json:"active"`
	} `json:"heroSlides"`
	RecentActivity []RecentRegistration `json:"recentActivity"`
}

// StatsRepository define as consultas agregadas do dashboard.
type StatsRepository interface {
	Collect(ctx context.Context, recentLimit int) (DashboardStats, error)
}
