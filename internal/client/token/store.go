// Package token holds the current short-lived access token in process memory.
// The token is deliberately never persisted: if device storage is compromised,
// only the long-lived refresh token is exposed, and it can be revoked
// server-side.
package token

import "sync"

// Store is the single source of truth for the access token. Get never blocks;
// Set replaces the token (empty string clears it) and synchronously notifies
// every subscriber with the new value before returning.
type Store struct {
	mu        sync.Mutex
	token     string
	listeners map[int]func(string)
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]func(string))}
}

// Get returns the current token and whether one is set.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Set replaces the current token. An empty value clears it. Subscribers are
// invoked synchronously, in unspecified order, with the new value.
func (s *Store) Set(token string) {
	s.mu.Lock()
	s.token = token
	fns := make([]func(string), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Listeners run outside the lock so they may call back into the store.
	for _, fn := range fns {
		fn(token)
	}
}

// Clear removes the current token and notifies subscribers.
func (s *Store) Clear() {
	s.Set("")
}

// Subscribe registers fn to be called on every change. The returned function
// removes the subscription; it is safe to call more than once.
func (s *Store) Subscribe(fn func(token string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
