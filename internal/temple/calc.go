// Package temple calculates Divine Temple upgrade requirements from the
// resources locked in a player's hero ranks and bag.
package temple

import (
	"fmt"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// Input describes a player's holdings for a temple calculation. RankCounts
// follows progression order: origin, surge, chaos, core, polystar, nirvana.
type Input struct {
	GoalLevel  int
	RankCounts [6]int
	BagGems    int64
	BagSpirits int64
}

// Result compares a player's resources against a temple level requirement.
// Negative Missing values mean the player exceeds the requirement by that
// amount.
type Result struct {
	Requirement        LevelCost
	UserGems           int64
	UserSpirits        int64
	MissingGems        int64
	MissingSpiritveins int64
}

// Calculate totals the resources held across hero ranks and the bag, then
// diffs them against the goal level requirement.
func Calculate(input Input) (*Result, error) {
	if input.GoalLevel < 1 || input.GoalLevel > MaxLevel {
		return nil, fmt.Errorf("%w: temple level %d", domain.ErrLevelNotFound, input.GoalLevel)
	}
	if input.BagGems < 0 || input.BagSpirits < 0 {
		return nil, fmt.Errorf("%w: bag amounts cannot be negative", domain.ErrInvalidInput)
	}

	gems := input.BagGems
	spirits := input.BagSpirits
	for i, count := range input.RankCounts {
		if count < 0 {
			return nil, fmt.Errorf("%w: rank counts cannot be negative", domain.ErrInvalidInput)
		}
		gems += rankCosts[i].Gems * int64(count)
		spirits += rankCosts[i].Spiritveins * int64(count)
	}

	req := levelCosts[input.GoalLevel-1]
	return &Result{
		Requirement:        req,
		UserGems:           gems,
		UserSpirits:        spirits,
		MissingGems:        req.Gems - gems,
		MissingSpiritveins: req.Spiritveins - spirits,
	}, nil
}
