package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ticketKeyPrefix = "reset"

// RedisTicketStore is a TicketStore backed by Redis. Tickets carry a key
// TTL derived from their ExpiresAt, so expired records vanish without a
// sweeper. It exists as the database-backed counterpart to
// FileTicketStore behind the same interface.
type RedisTicketStore struct {
	redis  *redis.Client
	prefix string
}

// NewRedisTicketStore returns a RedisTicketStore using client.
func NewRedisTicketStore(client *redis.Client) *RedisTicketStore {
	return &RedisTicketStore{
		redis:  client,
		prefix: ticketKeyPrefix,
	}
}

func (s *RedisTicketStore) key(userID string) string {
	return s.prefix + ":" + userID
}

// Put stores ticket under userID with a TTL running to the ticket's
// ExpiresAt, replacing any prior ticket for that user.
func (s *RedisTicketStore) Put(ctx context.Context, userID string, ticket ResetTicket) error {
	encoded, err := json.Marshal(ticket)
	if err != nil {
		return err
	}

	ttl := time.Until(time.UnixMilli(ticket.ExpiresAt))
	if ttl <= 0 {
		return errors.New("ticket already expired")
	}

	if err := s.redis.Set(ctx, s.key(userID), encoded, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTicketStoreUnavailable, err)
	}
	return nil
}

// Get returns the ticket stored for userID. Missing and natively expired
// records both surface as ErrTicketNotFound.
func (s *RedisTicketStore) Get(ctx context.Context, userID string) (ResetTicket, error) {
	data, err := s.redis.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ResetTicket{}, ErrTicketNotFound
		}
		return ResetTicket{}, fmt.Errorf("%w: %v", ErrTicketStoreUnavailable, err)
	}

	var ticket ResetTicket
	if err := json.Unmarshal(data, &ticket); err != nil {
		return ResetTicket{}, err
	}
	return ticket, nil
}

// Delete removes the ticket stored for userID. Deleting an absent ticket
// is not an error.
func (s *RedisTicketStore) Delete(ctx context.Context, userID string) error {
	if err := s.redis.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTicketStoreUnavailable, err)
	}
	return nil
}
