package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"

	"parcelpoint/internal/apperr"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "pp_admin"

const tokenBytes = 16

// Gate is the admission control for administrative operations: it issues
// opaque session tokens against the configured admin password and answers
// whether a token is (still) an admin session. Sessions live in memory.
type Gate struct {
	password string
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time

	now func() time.Time
}

// NewGate creates a Gate with the given admin password and session lifetime.
func NewGate(password string, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Gate{
		password: password,
		ttl:      ttl,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// IssueSession checks the password and returns a fresh session token, or
// apperr.ErrDenied.
func (g *Gate) IssueSession(password string) (string, error) {
	if !secureEq(password, g.password) {
		return "", apperr.ErrDenied
	}

	buf := make([]byte, tokenBytes)
	_, _ = rand.Read(buf)
	token := hex.EncodeToString(buf)

	g.mu.Lock()
	g.sessions[token] = g.now().Add(g.ttl)
	g.purgeLocked()
	g.mu.Unlock()

	return token, nil
}

// IsAdmin reports whether token identifies a live admin session.
func (g *Gate) IsAdmin(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	expiry, ok := g.sessions[token]
	if !ok {
		return false
	}
	if g.now().After(expiry) {
		delete(g.sessions, token)
		return false
	}
	return true
}

// Revoke ends a session. Revoking an unknown token is a no-op.
func (g *Gate) Revoke(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

// purgeLocked drops expired sessions. Caller holds g.mu.
func (g *Gate) purgeLocked() {
	now := g.now()
	for token, expiry := range g.sessions {
		if now.After(expiry) {
			delete(g.sessions, token)
		}
	}
}

func secureEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
