package mailer

import (
	"context"
	"sync"
	"time"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
)

// AsyncNotifier implementa domain.ApprovalNotifier disparando cada envio em uma goroutine
// rastreada. Falhas são apenas logadas; não há nova tentativa.
type AsyncNotifier struct {
	sender  Sender
	timeout time.Duration
	log     logger.Logger
	wg      sync.WaitGroup
}

func NewAsyncNotifier(sender Sender, timeout time.Duration, log logger.Logger) *AsyncNotifier {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AsyncNotifier{sender: sender, timeout: timeout, log: log}
}

// NotifyApproval retorna imediatamente.
func (n *AsyncNotifier) NotifyApproval(reg domain.Registration) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.sender.SendApproval(ctx, reg.Email, reg.FullName); err != nil {
			n.log.Error("Falha ao enviar e-mail de aprovação para a inscrição "+reg.ID, err)
		}
	}()
}

// Close espera os envios em andamento ou o fim do ctx, o que vier primeiro.
func (n *AsyncNotifier) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
