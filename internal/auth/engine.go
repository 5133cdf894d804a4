package auth

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"authlite/internal/mail"
	"authlite/internal/password"
	"authlite/internal/store"
	"authlite/internal/token"
)

// Options carries the collaborators an Engine needs. All stores, the
// hasher, the token manager, and the mailer are required.
type Options struct {
	Users   store.UserStore
	Tickets store.TicketStore
	Hasher  *password.Hasher
	Tokens  *token.Manager
	Mailer  mail.Mailer

	// FrontendURL is the base URL reset links point at.
	FrontendURL string
	// TicketTTL is the reset ticket lifetime, matching the token TTL.
	TicketTTL time.Duration

	Logger zerolog.Logger
	// Now overrides the clock for ticket timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Engine executes the authentication flows against its configured
// collaborators. It keeps no cross-request state; every operation
// re-reads durable storage.
type Engine struct {
	users     store.UserStore
	tickets   store.TicketStore
	hasher    *password.Hasher
	tokens    *token.Manager
	mailer    mail.Mailer
	frontend  string
	ticketTTL time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// New validates opts and returns an Engine.
func New(opts Options) (*Engine, error) {
	if opts.Users == nil {
		return nil, errors.New("user store is required")
	}
	if opts.Tickets == nil {
		return nil, errors.New("ticket store is required")
	}
	if opts.Hasher == nil {
		return nil, errors.New("password hasher is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("token manager is required")
	}
	if opts.Mailer == nil {
		return nil, errors.New("mailer is required")
	}
	if opts.FrontendURL == "" {
		return nil, errors.New("frontend URL is required")
	}
	if opts.TicketTTL <= 0 {
		return nil, errors.New("invalid ticket TTL")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		users:     opts.Users,
		tickets:   opts.Tickets,
		hasher:    opts.Hasher,
		tokens:    opts.Tokens,
		mailer:    opts.Mailer,
		frontend:  opts.FrontendURL,
		ticketTTL: opts.TicketTTL,
		log:       opts.Logger,
		now:       opts.Now,
	}, nil
}
