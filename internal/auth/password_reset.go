package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"authlite/internal/mail"
	"authlite/internal/metrics"
	"authlite/internal/store"
)

// RequestPasswordReset issues a reset ticket for the user with the given
// email and mails them the reset link. An unknown email returns
// ErrUserNotFound, which the HTTP layer must collapse into the generic
// success message. Issuing overwrites any outstanding ticket for the
// user, superseding it.
//
// The ticket is persisted before the mail is sent, so a transport failure
// (ErrMailUnavailable) leaves the ticket issued, matching the upstream
// behavior this service replaces.
func (e *Engine) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := e.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	tokenValue, err := e.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return err
	}

	now := e.now()
	ticket := store.ResetTicket{
		Token:     tokenValue,
		CreatedAt: now.UnixMilli(),
		ExpiresAt: now.Add(e.ticketTTL).UnixMilli(),
	}
	if err := e.tickets.Put(ctx, user.ID, ticket); err != nil {
		return err
	}
	metrics.ResetRequested.Inc()

	msg := mail.ResetMessage(e.frontend, user.Email, tokenValue, e.ticketTTL)
	if err := e.mailer.Send(ctx, msg); err != nil {
		metrics.MailFailure.Inc()
		e.log.Error().Err(err).Str("user_id", user.ID).Msg("reset mail send failed")
		return fmt.Errorf("%w: %v", ErrMailUnavailable, err)
	}

	e.log.Info().Str("user_id", user.ID).Msg("reset ticket issued")
	return nil
}

// ConfirmPasswordReset redeems a reset token: it verifies the signature
// and expiry, checks the stored ticket for single-use revocation,
// replaces the user's password hash, and consumes the ticket.
//
// The credential write is persisted before the ticket is deleted. A crash
// between the two leaves a consumable-but-harmless ticket (redeeming it
// again overwrites the same password) rather than a consumed ticket with
// an unchanged password. No multi-file transaction backs this ordering;
// it is a recovery posture, not a guarantee.
func (e *Engine) ConfirmPasswordReset(ctx context.Context, tokenValue, newPassword string) error {
	// Signature and expiry are the primary check; the store is not
	// consulted until they pass.
	claims, err := e.tokens.Parse(tokenValue)
	if err != nil {
		metrics.ResetRejected.Inc()
		e.log.Debug().Err(err).Msg("reset token verification failed")
		return ErrResetInvalidOrExpired
	}

	ticket, err := e.tickets.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrTicketNotFound) {
			metrics.ResetRejected.Inc()
			return ErrResetInvalidOrUsed
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(ticket.Token), []byte(tokenValue)) != 1 {
		// A verified token that no longer matches the stored record has
		// been superseded by a newer issue.
		metrics.ResetRejected.Inc()
		return ErrResetInvalidOrUsed
	}

	newHash, err := e.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := e.users.UpdatePasswordHash(ctx, claims.UserID, newHash); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			metrics.ResetRejected.Inc()
			return ErrUserNotFound
		}
		return err
	}

	if err := e.tickets.Delete(ctx, claims.UserID); err != nil {
		return err
	}

	metrics.ResetConfirmed.Inc()
	e.log.Info().Str("user_id", claims.UserID).Msg("password reset completed")
	return nil
}
