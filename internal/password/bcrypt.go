package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when Config.Cost is zero.
const DefaultCost = 10

// Config carries bcrypt parameters. Instances are configured during
// initialization and treated as immutable afterwards.
type Config struct {
	Cost int
}

// Hasher hashes and verifies passwords with a fixed bcrypt work factor.
type Hasher struct {
	config Config
}

// NewHasher validates cfg and returns a Hasher. A zero Cost selects
// DefaultCost; anything outside the bcrypt-supported range is rejected.
func NewHasher(cfg Config) (*Hasher, error) {
	if cfg.Cost == 0 {
		cfg.Cost = DefaultCost
	}
	if cfg.Cost < bcrypt.MinCost || cfg.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{config: cfg}, nil
}

// Hash returns a salted bcrypt hash of password at the configured cost.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.config.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches encodedHash. An empty or
// malformed encodedHash verifies false.
func (h *Hasher) Verify(password, encodedHash string) bool {
	if encodedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
