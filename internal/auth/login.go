package auth

import (
	"context"
	"errors"

	"authlite/internal/metrics"
	"authlite/internal/store"
)

// Login verifies email and password against the credential store and
// returns the user id. An unknown email and a wrong password both fail
// with ErrInvalidCredentials; the two cases are indistinguishable to the
// caller by design.
func (e *Engine) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := e.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			metrics.LoginFailure.Inc()
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !e.hasher.Verify(plaintext, user.PasswordHash) {
		metrics.LoginFailure.Inc()
		return "", ErrInvalidCredentials
	}

	metrics.LoginSuccess.Inc()
	return user.ID, nil
}
