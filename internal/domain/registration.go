package domain

import (
	"context"
	"time"
)

// RegistrationStatus é o estado de um pedido de inscrição.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "PENDING"
	StatusApproved RegistrationStatus = "APPROVED"
	StatusRejected RegistrationStatus = "REJECTED"
)

// Valid indica se o status pertence ao enum.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Registration é um pedido público de inscrição/contato.
type Registration struct {
	ID        string             `json:"id"`
	FullName  string             `json:"fullName"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Type      string             `json:"type"`
	Center    string             `json:"center"`
	SpaceType string             `json:"spaceType"`
	Message   *string            `json:"message"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// RegistrationRepository define o contrato de persistência de Registration.
type RegistrationRepository interface {
	Create(ctx context.Context, registration Registration) (Registration, error)
	FindByID(ctx context.Context, id string) (Registration, error)
	FindAll(ctx context.Context) ([]Registration, error)
	UpdateStatus(ctx context.Context, id string, status RegistrationStatus) (Registration, error)
}

// ApprovalNotifier recebe a notificação de aprovação de forma assíncrona.
// A entrega é best-effort e no máximo uma vez por chamada.
type ApprovalNotifier interface {
	NotifyApproval(registration Registration)
}
