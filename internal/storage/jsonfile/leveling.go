package jsonfile

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// LoadUserLevels returns the whole level ledger. A missing file is an empty
// ledger. The user id key is copied into each record so callers get complete
// values.
func (s *Store) LoadUserLevels(ctx context.Context) (map[string]domain.UserLevel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make(map[string]domain.UserLevel)
	if _, err := s.readDocument(UserLevelsFile, &raw); err != nil {
		return nil, err
	}

	for id, rec := range raw {
		rec.UserID = id
		raw[id] = rec
	}
	return raw, nil
}

// SaveUserLevels replaces the whole level ledger.
func (s *Store) SaveUserLevels(ctx context.Context, levels map[string]domain.UserLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeDocument(UserLevelsFile, levels)
}

// LoadLevelCosts returns the static level cost table. Keys on disk are
// string-encoded level numbers; a non-numeric key rejects the document at
// load time. The table must be strictly increasing in level.
func (s *Store) LoadLevelCosts(ctx context.Context) (domain.LevelCosts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := make(map[string]int64)
	if _, err := s.readDocument(LevelCostsFile, &raw); err != nil {
		return nil, err
	}

	costs := make(domain.LevelCosts, len(raw))
	for key, cost := range raw {
		level, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: level key %q is not a number", domain.ErrStorage, LevelCostsFile, key)
		}
		if level < 1 {
			return nil, fmt.Errorf("%w: decode %s: level key %d out of range", domain.ErrStorage, LevelCostsFile, level)
		}
		costs[level] = cost
	}

	if err := checkIncreasing(costs); err != nil {
		return nil, err
	}
	return costs, nil
}

func checkIncreasing(costs domain.LevelCosts) error {
	levels := make([]int, 0, len(costs))
	for level := range costs {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	prev := int64(-1)
	for _, level := range levels {
		if costs[level] <= prev {
			return fmt.Errorf("%w: decode %s: cost for level %d is not increasing", domain.ErrStorage, LevelCostsFile, level)
		}
		prev = costs[level]
	}
	return nil
}
