// Package state holds the per-process session state: the last retryable
// status line and the last embed-bearing status message. Both slots are
// independently locked and last-write-wins; nothing survives a restart.
package state

import (
	"sync"

	"saucier/internal/model"
)

type Store struct {
	statusMu   sync.RWMutex
	lastStatus string

	trackedMu  sync.RWMutex
	tracked    model.MessageRef
	hasTracked bool
}

func NewStore() *Store {
	return &Store{}
}

// LastStatus returns the most recent retryable status line, or the empty
// string if none has been seen.
func (s *Store) LastStatus() string {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.lastStatus
}

func (s *Store) SetLastStatus(text string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.lastStatus = text
}

// Tracked returns a reference to the most recent embed-bearing status
// message, and whether one has been seen.
func (s *Store) Tracked() (model.MessageRef, bool) {
	s.trackedMu.RLock()
	defer s.trackedMu.RUnlock()
	return s.tracked, s.hasTracked
}

func (s *Store) SetTracked(ref model.MessageRef) {
	s.trackedMu.Lock()
	defer s.trackedMu.Unlock()
	s.tracked = ref
	s.hasTracked = true
}
