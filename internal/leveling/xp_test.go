package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

func TestComputeXPNoBonuses(t *testing.T) {
	total, breakdown := ComputeXP(10, nil, "c1", 0, domain.XPTables{})

	assert.Equal(t, 10, total)
	assert.Equal(t, 10, breakdown.Subtotal)
	assert.Empty(t, breakdown.Bonuses)
	assert.Empty(t, breakdown.Multipliers)
	assert.Nil(t, breakdown.TrueMult)
	assert.Equal(t, 1.0, breakdown.LevelMult.Value)
}

func TestComputeXPBonusAndMultiplier(t *testing.T) {
	// base 10, +17 channel bonus, x1.5 role multiplier, level 0, rate 0.1:
	// floor(27 * 1.5 * 1.0 * 1.0) = 40
	tables := domain.XPTables{
		ChannelBonuses:      []domain.XPBonus{{ID: "chan", Amount: 17}},
		RoleMultipliers:     []domain.XPMultiplier{{ID: "role", Value: 1.5}},
		LevelMultiplierRate: 0.1,
	}

	total, breakdown := ComputeXP(10, []string{"role"}, "chan", 0, tables)

	assert.Equal(t, 40, total)
	assert.Equal(t, 27, breakdown.Subtotal)
	require.Len(t, breakdown.Bonuses, 1)
	assert.Equal(t, "channel_chan", breakdown.Bonuses[0].Source)
	require.Len(t, breakdown.Multipliers, 1)
	assert.Equal(t, "role_role", breakdown.Multipliers[0].Source)
}

func TestComputeXPLevelMultiplier(t *testing.T) {
	tables := domain.XPTables{LevelMultiplierRate: 0.1}

	total, breakdown := ComputeXP(100, nil, "c", 5, tables)

	// 100 * (1 + 5*0.1) = 150
	assert.Equal(t, 150, total)
	assert.Equal(t, "level_5", breakdown.LevelMult.Source)
	assert.InDelta(t, 1.5, breakdown.LevelMult.Value, 1e-9)
}

func TestComputeXPLevelMultiplierMonotonic(t *testing.T) {
	tables := domain.XPTables{LevelMultiplierRate: 0.05}

	prev := 0
	for level := 0; level <= 50; level++ {
		total, _ := ComputeXP(100, nil, "c", level, tables)
		assert.GreaterOrEqual(t, total, prev, "level %d", level)
		prev = total
	}
}

func TestComputeXPTrueMultiplierFirstMatchWins(t *testing.T) {
	tables := domain.XPTables{
		RoleTrueMultipliers: []domain.XPTrueMultiplier{
			{ID: "booster", Value: 2.0},
			{ID: "premium", Value: 3.0},
		},
	}

	// User holds both roles: table order decides, and the values never stack
	total, breakdown := ComputeXP(10, []string{"premium", "booster"}, "c", 0, tables)

	assert.Equal(t, 20, total)
	require.NotNil(t, breakdown.TrueMult)
	assert.Equal(t, "role_booster", breakdown.TrueMult.Source)
}

func TestComputeXPMultipliersStack(t *testing.T) {
	tables := domain.XPTables{
		ChannelMultipliers: []domain.XPMultiplier{{ID: "c", Value: 2.0}},
		RoleMultipliers:    []domain.XPMultiplier{{ID: "r", Value: 1.5}},
	}

	total, _ := ComputeXP(10, []string{"r"}, "c", 0, tables)
	assert.Equal(t, 30, total)
}

func TestComputeXPTruncatesTowardZero(t *testing.T) {
	tables := domain.XPTables{
		RoleMultipliers: []domain.XPMultiplier{{ID: "r", Value: 1.17}},
	}

	total, _ := ComputeXP(10, []string{"r"}, "c", 0, tables)

	// 10 * 1.17 = 11.7 -> 11, never rounded up
	assert.Equal(t, 11, total)
}

func TestComputeXPDeterministic(t *testing.T) {
	tables := domain.XPTables{
		ChannelBonuses:      []domain.XPBonus{{ID: "c", Amount: 5}},
		RoleMultipliers:     []domain.XPMultiplier{{ID: "r", Value: 1.3}},
		LevelMultiplierRate: 0.02,
	}

	first, firstBreakdown := ComputeXP(35, []string{"r"}, "c", 7, tables)
	second, secondBreakdown := ComputeXP(35, []string{"r"}, "c", 7, tables)

	assert.Equal(t, first, second)
	assert.Equal(t, firstBreakdown, secondBreakdown)
}
