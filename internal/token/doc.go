// Package token issues and verifies the signed reset tokens that authorize
// a password change, using HS256 with a process-wide secret and strict
// validation semantics (allowed-method list, expiry, optional issuer).
package token
