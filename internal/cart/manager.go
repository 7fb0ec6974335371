package cart

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle cart survives before the sweeper
// discards it. Carts are ephemeral by design; nothing is persisted.
const DefaultSessionTTL = 24 * time.Hour

// Manager maps opaque session tokens (carried in a cookie) to live cart
// sessions. It is safe for concurrent use by HTTP handlers.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewManager creates a session manager with the given idle TTL.
// A zero ttl uses DefaultSessionTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetOrCreate returns the session for the given token, creating a new
// session and token when the token is empty or unknown. The returned token
// should be written back to the visitor's cookie when it differs from the
// one supplied.
func (m *Manager) GetOrCreate(token string) (*Session, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != "" {
		if e, ok := m.sessions[token]; ok {
			e.lastSeen = m.now()
			return e.session, token, nil
		}
	}

	newToken, err := generateToken()
	if err != nil {
		return nil, "", err
	}

	session := NewSession()
	m.sessions[newToken] = &entry{session: session, lastSeen: m.now()}
	return session, newToken, nil
}

// Get returns the session for the given token, or nil if the token is
// unknown or expired.
func (m *Manager) Get(token string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok {
		return nil
	}
	e.lastSeen = m.now()
	return e.session
}

// Sweep discards sessions idle for longer than the TTL and reports how many
// were removed. Call it periodically from the server loop.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	var removed int
	for token, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// generateToken generates a cryptographically secure session token.
// Uses 32 bytes of random data encoded as a base64 URL-safe string.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
