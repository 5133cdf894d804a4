// Package mail delivers the out-of-band reset notification. The SMTP
// sender is the production implementation; tests substitute the Mailer
// interface.
package mail

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer sends a message, blocking until the transport accepts or
// rejects it. No retries are attempted; a failed send surfaces
// immediately to the caller.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResetMessage builds the password-reset email for a token. The reset
// link points at the frontend reset page with the token URL-encoded in
// the query string.
func ResetMessage(frontendURL, to, tokenValue string, ttl time.Duration) Message {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, url.QueryEscape(tokenValue))
	minutes := int(ttl.Minutes())

	body := fmt.Sprintf(`<p>Hello,</p>
<p>You (or someone else) requested a password reset. Click the link to choose a new password (expires in %d minutes):</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>
`, minutes, resetURL)

	return Message{
		To:       to,
		Subject:  "Password reset request",
		HTMLBody: body,
	}
}
