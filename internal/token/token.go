package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a minted token stays valid.
const DefaultTTL = time.Hour

// ErrInvalidToken covers every verification failure: malformed input, bad
// signature, expiry, or an unusable subject claim. Callers must not
// distinguish the causes, so only one error is exposed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried in every bearer token. The claim key for
// the subject id is fixed here so issuance and verification can never
// drift apart.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Manager mints and verifies HS256 bearer tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing with secret. A non-positive ttl
// falls back to DefaultTTL.
func NewManager(secret []byte, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: secret, ttl: ttl}
}

// Mint issues a signed token bound to userID, expiring after the
// configured TTL.
func (m *Manager) Mint(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// subject id it carries. Any failure returns ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (uint, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
