// Package password implements password hashing and verification with bcrypt.
//
// # Verification contract
//
// [Hasher.Verify] is pure and never panics: an empty or malformed stored
// hash verifies false rather than returning an error, so an account with a
// missing credential behaves exactly like a wrong password.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. It does not store or
// retrieve passwords, does not import any other package of this module,
// and never logs plaintext input.
package password
