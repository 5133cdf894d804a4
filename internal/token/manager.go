package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Config carries signing parameters. Instances are configured during
// initialization and treated as immutable afterwards.
type Config struct {
	// Secret is the process-wide HMAC signing key. Required.
	Secret []byte
	// TTL is the token lifetime. Required.
	TTL time.Duration
	// Issuer, when set, is stamped on issued tokens and enforced on parse.
	Issuer string
	// Leeway tolerates small clock skew when validating expiry.
	Leeway time.Duration
	// TimeFunc overrides the clock for both issuance and validation.
	// Defaults to time.Now.
	TimeFunc func() time.Time
}

// Manager signs and verifies reset tokens.
type Manager struct {
	config Config
}

// ResetClaims is the payload embedded in a reset token.
type ResetClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewManager validates cfg and returns a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("signing secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	if cfg.TimeFunc == nil {
		cfg.TimeFunc = time.Now
	}
	return &Manager{config: cfg}, nil
}

// Sign returns a signed token embedding the user id and email, expiring
// TTL from now. Each token carries a unique jti so that two tokens issued
// for the same user are never byte-identical.
func (m *Manager) Sign(userID, email string) (string, error) {
	now := m.config.TimeFunc()

	claims := ResetClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TTL)),
			Issuer:    m.config.Issuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.config.Secret)
}

// Parse verifies tokenStr against the signing secret and returns its
// claims. Any failure (bad signature, malformed token, wrong algorithm,
// expired) surfaces as an error; callers must not consult secondary state
// before Parse succeeds.
func (m *Manager) Parse(tokenStr string) (*ResetClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.config.TimeFunc),
	}
	if m.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(m.config.Leeway))
	}
	if m.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(m.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	parsed, err := parser.ParseWithClaims(tokenStr, &ResetClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return m.config.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*ResetClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing user id claim")
	}

	return claims, nil
}
