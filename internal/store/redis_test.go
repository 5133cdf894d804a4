package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) (*miniredis.Miniredis, *RedisTicketStore) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, NewRedisTicketStore(rdb)
}

func liveTicket(token string, ttl time.Duration) ResetTicket {
	now := time.Now()
	return ResetTicket{
		Token:     token,
		CreatedAt: now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	}
}

func TestRedisTicketStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	_, s := newTestRedisStore(t)

	if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}

	ticket := liveTicket("tk1", time.Hour)
	if err := s.Put(ctx, "u1", ticket); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != ticket {
		t.Fatalf("expected %+v, got %+v", ticket, got)
	}

	replacement := liveTicket("tk2", time.Hour)
	if err := s.Put(ctx, "u1", replacement); err != nil {
		t.Fatalf("overwriting Put failed: %v", err)
	}
	got, err = s.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if got.Token != "tk2" {
		t.Fatalf("expected overwritten ticket, got %+v", got)
	}

	if err := s.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, "u1"); err != nil {
		t.Fatalf("repeat Delete failed: %v", err)
	}
}

func TestRedisTicketStoreNativeExpiry(t *testing.T) {
	ctx := context.Background()
	mr, s := newTestRedisStore(t)

	if err := s.Put(ctx, "u1", liveTicket("tk1", time.Hour)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := s.Get(ctx, "u1"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ticket to expire natively, got %v", err)
	}
}

func TestRedisTicketStoreRejectsExpiredPut(t *testing.T) {
	ctx := context.Background()
	_, s := newTestRedisStore(t)

	stale := ResetTicket{Token: "tk1", CreatedAt: 0, ExpiresAt: 1}
	if err := s.Put(ctx, "u1", stale); err == nil {
		t.Fatal("expected already-expired ticket to be rejected")
	}
}
