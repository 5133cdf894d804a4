// Package config loads the immutable runtime configuration for the service.
//
// Configuration is read once at startup from environment variables and
// passed to components at construction. Business logic never performs
// ambient environment lookups.
package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime configuration for the auth backend.
type Config struct {
	Addr            string `env:"ADDR,default=:4000"`
	FrontendURL     string `env:"FRONTEND_URL,default=http://localhost:3000"`
	JWTSecret       string `env:"JWT_SECRET,required"`
	TokenExpiresMin int    `env:"TOKEN_EXPIRES_MIN,default=60"`
	BcryptCost      int    `env:"BCRYPT_COST,default=10"`

	UsersFile  string `env:"USERS_FILE,default=users.json"`
	ResetsFile string `env:"RESETS_FILE,default=resets.json"`

	// TicketBackend selects where reset tickets are persisted: "file"
	// (default, alongside UsersFile) or "redis".
	TicketBackend string `env:"TICKET_BACKEND,default=file"`
	RedisAddr     string `env:"REDIS_ADDR,default=localhost:6379"`

	SMTPHost     string `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUser     string `env:"EMAIL_USER"`
	SMTPPassword string `env:"EMAIL_PASS"`
	MailFrom     string `env:"MAIL_FROM"`
}

// TokenTTL returns the reset token lifetime as a duration.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpiresMin) * time.Minute
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must not be empty")
	}
	if cfg.TokenExpiresMin <= 0 {
		return Config{}, errors.New("TOKEN_EXPIRES_MIN must be > 0")
	}
	if cfg.TicketBackend != "file" && cfg.TicketBackend != "redis" {
		return Config{}, errors.New("TICKET_BACKEND must be \"file\" or \"redis\"")
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}
	return cfg, nil
}
