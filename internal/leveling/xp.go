package leveling

import (
	"fmt"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// ComputeXP runs the four-tier XP pipeline for one message. Pure function:
// no side effects, deterministic for identical inputs. Tier order is part of
// the contract and must not change:
//
//  1. static bonuses (channel, then roles) are summed onto the base
//  2. normal multipliers (channel, then roles) stack multiplicatively
//  3. the level multiplier 1 + level*rate always applies
//  4. the first matching true multiplier in table order applies, if any
//
// The final total truncates toward zero.
func ComputeXP(baseXP int, roleIDs []string, channelID string, currentLevel int, tables domain.XPTables) (int, domain.XPBreakdown) {
	breakdown := domain.XPBreakdown{BaseXP: baseXP}

	roles := make(map[string]struct{}, len(roleIDs))
	for _, id := range roleIDs {
		roles[id] = struct{}{}
	}

	// Tier 1: static additions
	static := 0
	for _, bonus := range tables.ChannelBonuses {
		if bonus.ID == channelID {
			static += bonus.Amount
			breakdown.Bonuses = append(breakdown.Bonuses, domain.XPContribution{
				Source: SourceChannelPrefix + bonus.ID,
				Value:  float64(bonus.Amount),
			})
		}
	}
	for _, bonus := range tables.RoleBonuses {
		if _, ok := roles[bonus.ID]; ok {
			static += bonus.Amount
			breakdown.Bonuses = append(breakdown.Bonuses, domain.XPContribution{
				Source: SourceRolePrefix + bonus.ID,
				Value:  float64(bonus.Amount),
			})
		}
	}

	subtotal := baseXP + static
	breakdown.Subtotal = subtotal

	// Tier 2: normal multipliers, 1.0 when none match
	multiplier := 1.0
	for _, mult := range tables.ChannelMultipliers {
		if mult.ID == channelID {
			multiplier *= mult.Value
			breakdown.Multipliers = append(breakdown.Multipliers, domain.XPContribution{
				Source: SourceChannelPrefix + mult.ID,
				Value:  mult.Value,
			})
		}
	}
	for _, mult := range tables.RoleMultipliers {
		if _, ok := roles[mult.ID]; ok {
			multiplier *= mult.Value
			breakdown.Multipliers = append(breakdown.Multipliers, domain.XPContribution{
				Source: SourceRolePrefix + mult.ID,
				Value:  mult.Value,
			})
		}
	}

	// Tier 3: level multiplier, 1.0 at level 0
	levelMult := 1.0 + float64(currentLevel)*tables.LevelMultiplierRate
	breakdown.LevelMult = domain.XPContribution{
		Source: fmt.Sprintf("%s%d", SourceLevelPrefix, currentLevel),
		Value:  levelMult,
	}

	// Tier 4: first matching true multiplier wins, table order breaks ties
	trueMult := 1.0
	for _, tm := range tables.RoleTrueMultipliers {
		if _, ok := roles[tm.ID]; ok {
			trueMult = tm.Value
			breakdown.TrueMult = &domain.XPContribution{
				Source: SourceRolePrefix + tm.ID,
				Value:  tm.Value,
			}
			break
		}
	}

	total := int(float64(subtotal) * multiplier * levelMult * trueMult)
	breakdown.Total = total

	return total, breakdown
}
