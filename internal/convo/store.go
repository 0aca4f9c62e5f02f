package convo

import (
	"sync"

	"prism/internal/models"
)

// Store holds the conversation state: an append-only message log, the busy
// flag gating submissions, and the selected mode. The dispatcher is the
// only writer of the log; readers get copies.
type Store struct {
	mu       sync.RWMutex
	messages []models.Message
	busy     bool
	mode     models.Mode
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Snapshot returns a copy of the transcript in conversation order.
func (s *Store) Snapshot() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = busy
}

func (s *Store) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// SetMode switches the active mode. Switching is allowed at any time,
// including while busy; an in-flight request keeps the mode captured at its
// dispatch.
func (s *Store) SetMode(mode models.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *Store) Mode() models.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Reset discards the transcript for a fresh session. The mode selection
// survives.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.busy = false
}
