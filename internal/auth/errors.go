package auth

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both unknown emails
	// and wrong passwords, uniformly.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound reports that no user matched the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrResetInvalidOrExpired reports a reset token that failed
	// signature or expiry verification, before the store was consulted.
	ErrResetInvalidOrExpired = errors.New("reset token invalid or expired")
	// ErrResetInvalidOrUsed reports a structurally valid reset token with
	// no matching store record: already redeemed or superseded.
	ErrResetInvalidOrUsed = errors.New("reset token invalid or already used")
	// ErrMailUnavailable wraps a mail transport failure while sending the
	// reset link.
	ErrMailUnavailable = errors.New("mail transport unavailable")
)
