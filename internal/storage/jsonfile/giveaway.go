package jsonfile

import (
	"context"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// LoadGiveaways returns all giveaway records. A missing file is an empty list.
func (s *Store) LoadGiveaways(ctx context.Context) ([]domain.Giveaway, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var giveaways []domain.Giveaway
	if _, err := s.readDocument(GiveawaysFile, &giveaways); err != nil {
		return nil, err
	}
	return giveaways, nil
}

// SaveGiveaways replaces the whole giveaway list.
func (s *Store) SaveGiveaways(ctx context.Context, giveaways []domain.Giveaway) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if giveaways == nil {
		giveaways = []domain.Giveaway{}
	}
	return s.writeDocument(GiveawaysFile, giveaways)
}
