// Package repository defines the persistence contracts consumed by the
// engine services. Documents are read and rewritten wholesale; there is no
// row-level access. A missing backing file is an empty document, never an
// error; decode failures surface as domain.ErrStorage.
package repository

import (
	"context"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// Leveling is the contract for the user level ledger and the level cost table.
type Leveling interface {
	// LoadUserLevels returns the whole ledger keyed by user id.
	LoadUserLevels(ctx context.Context) (map[string]domain.UserLevel, error)
	// SaveUserLevels replaces the whole ledger.
	SaveUserLevels(ctx context.Context, levels map[string]domain.UserLevel) error
	// LoadLevelCosts returns the static level cost table.
	LoadLevelCosts(ctx context.Context) (domain.LevelCosts, error)
}

// Giveaway is the contract for the giveaway record list.
type Giveaway interface {
	LoadGiveaways(ctx context.Context) ([]domain.Giveaway, error)
	SaveGiveaways(ctx context.Context, giveaways []domain.Giveaway) error
}

// Awakening is the contract for the persisted gacha pool selector.
type Awakening interface {
	LoadPoolState(ctx context.Context) (domain.AwakeningPoolState, error)
	SavePoolState(ctx context.Context, state domain.AwakeningPoolState) error
}
