// Package auth implements the authentication engine: login, reset-ticket
// issuance, and reset-ticket redemption.
//
// # Ticket lifecycle
//
// A ticket has a signed, self-verifying form (the token mailed to the
// user) and a store-side record keyed by user id. The signature and
// embedded expiry are the primary validity mechanism; store membership is
// a secondary, single-use revocation mechanism. A ticket moves from
// Issued to exactly one of three terminal states: Redeemed (consumed by a
// successful password change), Expired (past its exp claim), or
// Superseded (silently replaced when a newer ticket is issued for the
// same user).
//
// # Anti-enumeration
//
// Login returns the same error for an unknown email and a wrong password,
// and RequestPasswordReset reports an unknown email with a sentinel that
// the HTTP layer collapses into the generic success message. These
// uniform responses are deliberate; do not make them more specific.
package auth
