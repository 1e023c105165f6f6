// Package auth supplies the authentication collaborator: bearer session
// tokens held in an in-memory TTL store, and bcrypt password hashing. The
// booking engine itself only ever sees the resolved user id.
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

// Sessions issues and resolves bearer tokens. Tokens expire after the
// configured TTL and are purged in the background by the cache.
type Sessions struct {
	tokens *cache.Cache
	ttl    time.Duration
}

// NewSessions creates a session store with the given token lifetime.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		tokens: cache.New(ttl, 2*ttl),
		ttl:    ttl,
	}
}

// Issue creates a fresh token bound to the user.
func (s *Sessions) Issue(userID int64) string {
	token := uuid.NewString()
	s.tokens.Set(token, userID, s.ttl)
	return token
}

// Resolve returns the user id bound to the token, if the token is live.
func (s *Sessions) Resolve(token string) (int64, bool) {
	v, ok := s.tokens.Get(token)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

// Revoke invalidates the token. Revoking an unknown token is a no-op.
func (s *Sessions) Revoke(token string) {
	s.tokens.Delete(token)
}

// HashPassword hashes a plaintext password with bcrypt at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
