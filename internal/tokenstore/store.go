// Package tokenstore persists per-discussion anonymous participation
// credentials. Presence of a token means this client holds anonymous
// standing in that discussion; absence means none. A Store is scoped to one
// Client instance, the SDK analog of per-tab browser storage: it survives
// for the lifetime of the client and is never shared across instances.
package tokenstore

import "sync"

// Store is a pure key/value lookup keyed by discussion id. No network.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{tokens: make(map[string]string)}
}

// Get returns the participation token for discussionID, if one is held.
func (s *Store) Get(discussionID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tok, ok := s.tokens[discussionID]
	return tok, ok
}

// Set stores the participation token for discussionID, replacing any
// previous value. Empty tokens are ignored; use Clear to drop standing.
func (s *Store) Set(discussionID, token string) {
	if discussionID == "" || token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[discussionID] = token
}

// Clear removes the token for discussionID. Called by the application when
// anonymous participation in a discussion ends.
func (s *Store) Clear(discussionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, discussionID)
}
