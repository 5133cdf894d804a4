package auth

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"authlite/internal/mail"
	"authlite/internal/password"
	"authlite/internal/store"
	"authlite/internal/token"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *stubMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type testEnv struct {
	engine    *Engine
	users     *store.FileUserStore
	usersPath string
	tickets   *store.FileTicketStore
	hasher    *password.Hasher
	mailer    *stubMailer
	clock     *fakeClock
}

func writeEmptyUsers(env *testEnv) error {
	return os.WriteFile(env.usersPath, []byte(`{"users": []}`), 0o600)
}

// newTestEnv builds an engine over temp-dir file stores with a single
// seeded user u1/a@x.com whose password is "p0".
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	clock := &fakeClock{now: time.Unix(1700000000, 0)}

	hasher, err := password.NewHasher(password.Config{Cost: 4})
	if err != nil {
		t.Fatalf("NewHasher failed: %v", err)
	}
	seedHash, err := hasher.Hash("p0")
	if err != nil {
		t.Fatalf("seed hash failed: %v", err)
	}

	usersPath := filepath.Join(dir, "users.json")
	doc := map[string][]store.User{
		"users": {{ID: "u1", Email: "a@x.com", PasswordHash: seedHash}},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encode seed users failed: %v", err)
	}
	if err := os.WriteFile(usersPath, raw, 0o600); err != nil {
		t.Fatalf("write seed users failed: %v", err)
	}

	tokens, err := token.NewManager(token.Config{
		Secret:   []byte("test-secret-key"),
		TTL:      60 * time.Minute,
		Issuer:   "authlite",
		TimeFunc: clock.Now,
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	env := &testEnv{
		users:     store.NewFileUserStore(usersPath),
		usersPath: usersPath,
		tickets:   store.NewFileTicketStore(filepath.Join(dir, "resets.json")),
		hasher:    hasher,
		mailer:    &stubMailer{},
		clock:     clock,
	}

	engine, err := New(Options{
		Users:       env.users,
		Tickets:     env.tickets,
		Hasher:      hasher,
		Tokens:      tokens,
		Mailer:      env.mailer,
		FrontendURL: "http://localhost:3000",
		TicketTTL:   60 * time.Minute,
		Logger:      zerolog.Nop(),
		Now:         clock.Now,
	})
	if err != nil {
		t.Fatalf("engine build failed: %v", err)
	}
	env.engine = engine
	return env
}

// issuedToken requests a reset for email and returns the signed token
// from the persisted ticket.
func (env *testEnv) issuedToken(t *testing.T, email string) string {
	t.Helper()

	ctx := context.Background()
	if err := env.engine.RequestPasswordReset(ctx, email); err != nil {
		t.Fatalf("RequestPasswordReset failed: %v", err)
	}
	ticket, err := env.tickets.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("reading issued ticket failed: %v", err)
	}
	return ticket.Token
}
