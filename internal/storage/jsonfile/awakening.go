package jsonfile

import (
	"context"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// LoadPoolState returns the persisted awakening pool selector.
// A missing file defaults to the normal pool.
func (s *Store) LoadPoolState(ctx context.Context) (domain.AwakeningPoolState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.AwakeningPoolState{Normal: true}
	if _, err := s.readDocument(AwakenPoolFile, &state); err != nil {
		return domain.AwakeningPoolState{}, err
	}
	return state, nil
}

// SavePoolState replaces the awakening pool selector.
func (s *Store) SavePoolState(ctx context.Context, state domain.AwakeningPoolState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeDocument(AwakenPoolFile, state)
}
