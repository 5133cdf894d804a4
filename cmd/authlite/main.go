// Command authlite runs the authentication backend: login,
// forgot-password, and reset-password over JSON files.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"authlite/internal/auth"
	"authlite/internal/config"
	"authlite/internal/httpapi"
	"authlite/internal/mail"
	"authlite/internal/password"
	"authlite/internal/store"
	"authlite/internal/token"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	hasher, err := password.NewHasher(password.Config{Cost: cfg.BcryptCost})
	if err != nil {
		log.Fatal().Err(err).Msg("init hasher")
	}

	tokens, err := token.NewManager(token.Config{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL(),
		Issuer: "authlite",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init token manager")
	}

	users := store.NewFileUserStore(cfg.UsersFile)

	var tickets store.TicketStore
	switch cfg.TicketBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		tickets = store.NewRedisTicketStore(rdb)
	default:
		tickets = store.NewFileTicketStore(cfg.ResetsFile)
	}

	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init mailer")
	}

	engine, err := auth.New(auth.Options{
		Users:       users,
		Tickets:     tickets,
		Hasher:      hasher,
		Tokens:      tokens,
		Mailer:      mailer,
		FrontendURL: cfg.FrontendURL,
		TicketTTL:   cfg.TokenTTL(),
		Logger:      log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build engine")
	}

	router := httpapi.NewRouter(httpapi.Options{
		Engine:        engine,
		AllowedOrigin: cfg.FrontendURL,
		Logger:        log.Logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("ticket_backend", cfg.TicketBackend).Msg("starting authlite")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
}
