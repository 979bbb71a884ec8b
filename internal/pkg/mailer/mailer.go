package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"skillscenter/internal/pkg/logger"
)

// DefaultEndpoint é a API REST do Resend para envio de e-mails.
const DefaultEndpoint = "https://api.resend.com/emails"

// Sender envia o e-mail de aprovação de uma inscrição.
type Sender interface {
	SendApproval(ctx context.Context, to, name string) error
}

var approvalTemplate = template.Must(template.New("approval").Parse(`<div style="font-family: Arial, sans-serif; color: #1a1a1a">
  <h2>Votre inscription a été approuvée</h2>
  <p>Bonjour {{.Name}},</p>
  <p>Nous avons le plaisir de vous informer que votre demande d'inscription au Skills Center a été approuvée.</p>
  <p>Notre équipe vous contactera prochainement pour les prochaines étapes.</p>
  <p>Cordialement,<br>L'équipe Skills Center – Algérie Télécom</p>
</div>`))

const approvalSubject = "Votre inscription au Skills Center a été approuvée"

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendMailer envia pela API do Resend, limitado a 2 requisições por segundo (limite da conta).
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	log      logger.Logger
}

// NewResendMailer cria o cliente. endpoint vazio usa DefaultEndpoint.
func NewResendMailer(apiKey, from, endpoint string, log logger.Logger) *ResendMailer {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(2), 1),
		log:      log,
	}
}

func (m *ResendMailer) SendApproval(ctx context.Context, to, name string) error {
	var body bytes.Buffer
	if err := approvalTemplate.Execute(&body, struct{ Name string }{Name: name}); err != nil {
		return fmt.Errorf("render approval email: %w", err)
	}

	payload, err := json.Marshal(resendPayload{
		From:    m.from,
		To:      []string{to},
		Subject: approvalSubject,
		HTML:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("encode approval email: %w", err)
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mail rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	m.log.Info("E-mail de aprovação enviado.", map[string]interface{}{"to": to})
	return nil
}

// NoopSender é usado quando RESEND_API_KEY não está configurada.
type NoopSender struct {
	log logger.Logger
}

func NewNoopSender(log logger.Logger) *NoopSender {
	return &NoopSender{log: log}
}

func (n *NoopSender) SendApproval(_ context.Context, to, _ string) error {
	n.log.Warn("RESEND_API_KEY ausente; e-mail de aprovação não enviado.", map[string]interface{}{"to": to})
	return nil
}

// NewSender escolhe o Resend quando há chave, senão o NoopSender.
func NewSender(apiKey, from string, log logger.Logger) Sender {
	if apiKey == "" {
		return NewNoopSender(log)
	}
	return NewResendMailer(apiKey, from, "", log)
}
