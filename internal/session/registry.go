package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
)

// Registry maps opaque bearer tokens to user ids for the lifetime of the
// process. Sessions do not survive a restart; that limitation is accepted
// and documented. A user may hold any number of tokens at once.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]string)}
}

// Issue binds a fresh unpredictable token to userID and returns it.
func (r *Registry) Issue(userID string) string {
	buf := make([]byte, 32)
	rand.Read(buf)
	token := base64.RawURLEncoding.EncodeToString(buf)

	r.mu.Lock()
	r.tokens[token] = userID
	r.mu.Unlock()

	return token
}

// Resolve returns the user id bound to token, if any.
func (r *Registry) Resolve(token string) (string, bool) {
	r.mu.RLock()
	userID, ok := r.tokens[token]
	r.mu.RUnlock()
	return userID, ok
}

// Revoke removes the binding. Revoking an unknown token is a no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}
