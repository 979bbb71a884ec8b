package config

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config armazena todas as configurações da API do Skills Center.
// Os valores vêm das variáveis de ambiente (o .env é carregado antes pelo main).
type Config struct {
	// Geral
	Port        string `env:"PORT" envDefault:"5000"`
	Environment string `env:"ENV" envDefault:"production"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL  string `env:"DATABASE_URL,required,notEmpty"`
	DBTimeoutSec int    `env:"DB_TIMEOUT_SEC" envDefault:"5"`

	// Redis (contadores do rate limiting)
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Segurança (JWT)
	JWTSecretKey  string `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiryDays int    `env:"JWT_EXPIRY_DAYS" envDefault:"30"`

	// Status devolvido quando um usuário autenticado não é ADMIN (401 ou 403).
	AdminDeniedStatus int `env:"ADMIN_DENIED_STATUS" envDefault:"401"`

	// CORS
	ClientURL        string   `env:"CLIENT_URL"`
	BaseURL          string   `env:"BASE_URL"`
	CORSExtraOrigins []string `env:"CORS_EXTRA_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:4173"`

	// Proxies cujos cabeçalhos X-Forwarded-For/X-Real-IP são aceitos (IPs ou CIDRs).
	// Vazio: o IP do cliente é sempre o da conexão.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	trustedNets    []*net.IPNet

	// Uploads
	UploadsDir  string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	UploadMaxMB int64  `env:"UPLOAD_MAX_MB" envDefault:"10"`

	// E-mail (Resend). Sem chave o envio fica desativado.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"Algerie Telecom <onboarding@resend.dev>"`

	// Rate Limiting. Zero no login significa "usar o padrão do ambiente".
	LoginRateLimitMax       int `env:"LOGIN_RATE_LIMIT_MAX"`
	LoginRateLimitWindowMin int `env:"LOGIN_RATE_LIMIT_WINDOW_MIN" envDefault:"15"`
	APIRateLimitMax         int `env:"API_RATE_LIMIT_MAX" envDefault:"1000"`
	APIRateLimitWindowMin   int `env:"API_RATE_LIMIT_WINDOW_MIN" envDefault:"60"`
}

// Parse lê e valida a configuração a partir do ambiente.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.AdminDeniedStatus != 401 && cfg.AdminDeniedStatus != 403 {
		return nil, fmt.Errorf("ADMIN_DENIED_STATUS must be 401 or 403, got %d", cfg.AdminDeniedStatus)
	}
	if cfg.JWTExpiryDays <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRY_DAYS must be positive, got %d", cfg.JWTExpiryDays)
	}

	nets, err := parseNetworks(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	cfg.trustedNets = nets

	if cfg.LoginRateLimitMax <= 0 {
		cfg.LoginRateLimitMax = 100
		if cfg.IsProduction() {
			cfg.LoginRateLimitMax = 5
		}
	}

	return cfg, nil
}

// LoadConfig é a variante usada pelos binários: qualquer erro aborta o processo.
func LoadConfig() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	return cfg
}

// IsDevelopment indica se a API roda em ambiente local.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction indica se a API roda em produção.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutSec) * time.Second
}

func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWTExpiryDays) * 24 * time.Hour
}

func (c *Config) LoginRateLimitWindow() time.Duration {
	return time.Duration(c.LoginRateLimitWindowMin) * time.Minute
}

func (c *Config) APIRateLimitWindow() time.Duration {
	return time.Duration(c.APIRateLimitWindowMin) * time.Minute
}

// UploadMaxBytes é o limite do corpo multipart do upload.
func (c *Config) UploadMaxBytes() int64 {
	return c.UploadMaxMB << 20
}

// TrustedProxyNets devolve as redes de TRUSTED_PROXIES já validadas.
func (c *Config) TrustedProxyNets() []*net.IPNet {
	return c.trustedNets
}

// parseNetworks aceita CIDRs ou IPs isolados (tratados como /32 ou /128).
func parseNetworks(entries []string) ([]*net.IPNet, error) {
	var nets []*net.IPNet
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "/") {
			ip := net.ParseIP(e)
			if ip == nil {
				return nil, fmt.Errorf("TRUSTED_PROXIES: invalid address %q", e)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(e)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// AllowedOrigins monta a allow-list do CORS sem entradas vazias ou repetidas.
func (c *Config) AllowedOrigins() []string {
	seen := make(map[string]bool)
	var origins []string
	for _, o := range append([]string{c.ClientURL, c.BaseURL}, c.CORSExtraOrigins...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}
