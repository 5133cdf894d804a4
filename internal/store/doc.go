// Package store defines the credential and reset-ticket storage contracts
// and their flat-file and Redis implementations.
//
// # Consistency contract
//
// Every operation re-reads durable storage; nothing is cached between
// requests. No locking or transaction spans the read-modify-write
// sequences inside an operation, so two concurrent writers touching the
// same collection race and the last writer wins. This is an accepted
// limitation at the targeted scale; swapping in a database-backed
// implementation only requires satisfying [UserStore] and [TicketStore].
package store
