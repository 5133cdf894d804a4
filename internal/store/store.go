package store

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound reports that no user record matched the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrTicketNotFound reports that no reset ticket exists for the user.
	ErrTicketNotFound = errors.New("reset ticket not found")
	// ErrTicketStoreUnavailable wraps transport failures of a remote
	// ticket backend.
	ErrTicketStoreUnavailable = errors.New("ticket store unavailable")
)

// User is a credential record. Users are unique by ID and by Email, are
// created externally, and are only ever mutated here by replacing the
// password hash.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// ResetTicket is the store-side half of a reset authorization, keyed by
// user id. Timestamps are unix milliseconds. The signed token itself is
// the authoritative expiry carrier; ExpiresAt here is advisory metadata.
type ResetTicket struct {
	Token     string `json:"token"`
	CreatedAt int64  `json:"createdAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

// UserStore is the credential storage contract. See the package
// documentation for the lost-update caveat on UpdatePasswordHash.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	UpdatePasswordHash(ctx context.Context, id, newHash string) error
}

// TicketStore holds at most one outstanding reset ticket per user id.
// Put silently replaces any prior ticket for that user; there is no
// explicit invalidation event.
type TicketStore interface {
	Put(ctx context.Context, userID string, ticket ResetTicket) error
	Get(ctx context.Context, userID string) (ResetTicket, error)
	Delete(ctx context.Context, userID string) error
}
