package config

import (
	"os"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// Role and channel IDs for the Exile server. IDs that vary per deployment
// (booster, premium) come from the environment; the rest are fixed.
const (
	ExileChatChannelID = "866773791560040519"
	ExileRoleID        = "866772888635441162"
	BoosterRoleID      = "970496362766536756"
)

// defaultXPTables assembles the XP lookup tables. The value is built once at
// startup and passed around by value; hot reload replaces the whole thing.
func defaultXPTables(levelRate float64) domain.XPTables {
	tables := domain.XPTables{
		ChannelBonuses: []domain.XPBonus{
			{ID: ExileChatChannelID, Amount: 17},
		},
		RoleBonuses: nil,
		ChannelMultipliers: nil,
		RoleMultipliers: []domain.XPMultiplier{
			{ID: ExileRoleID, Value: 1.5},
		},
		RoleTrueMultipliers: []domain.XPTrueMultiplier{
			{ID: BoosterRoleID, Value: 2.0},
		},
		LevelMultiplierRate: levelRate,
	}

	// Premium role grants the same 2x true multiplier as boosting.
	// Entry order matters: first matching true multiplier wins.
	if premium := os.Getenv("PREMIUM_ROLE"); premium != "" {
		tables.RoleTrueMultipliers = append(tables.RoleTrueMultipliers,
			domain.XPTrueMultiplier{ID: premium, Value: 2.0})
	}

	return tables
}
