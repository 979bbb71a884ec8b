package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"skillscenter/internal/pkg/cache"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
)

// RateLimitPolicy descreve uma janela fixa por IP.
type RateLimitPolicy struct {
	Name    string // prefixo da chave no Redis ("login", "api")
	Limit   int
	Window  time.Duration
	Message string // corpo {message} devolvido com 429
}

// RateLimiter aplica a política com contadores no Redis (janela fixa por IP).
// Se o Redis falhar a requisição segue, com log de erro.
func RateLimiter(client cache.Client, policy RateLimitPolicy, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + policy.Name + ":" + clientIP(r)

			count, ttl, err := client.IncrWindow(r.Context(), key, policy.Window)
			if err != nil {
				log.Error("Falha ao consultar o rate limiter; requisição liberada.", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := policy.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			resetSec := int((ttl + time.Second - 1) / time.Second)

			w.Header().Set("RateLimit-Limit", strconv.Itoa(policy.Limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(resetSec))

			if count > int64(policy.Limit) {
				w.Header().Set("Retry-After", strconv.Itoa(resetSec))
				log.Warn("Rate limit excedido.", map[string]interface{}{"policy": policy.Name, "ip": clientIP(r)})
				respond.Message(w, http.StatusTooManyRequests, policy.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP usa o RemoteAddr (reescrito por TrustedRealIP só quando a conexão vem de um proxy confiável).
func clientIP(r *http.Request) string {
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
