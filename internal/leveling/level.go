package leveling

import (
	"sort"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// LevelForXP returns the greatest level whose cumulative cost is <= xp, or 0
// when none qualifies. The cost table may have gaps: only levels actually
// present count.
func LevelForXP(xp int64, costs domain.LevelCosts) int {
	best := 0
	for _, level := range sortedLevels(costs) {
		if costs[level] > xp {
			break
		}
		best = level
	}
	return best
}

// XPForLevel returns the cumulative XP required to reach level. Level 0 costs
// nothing; a level absent from the table reports ok == false.
func XPForLevel(level int, costs domain.LevelCosts) (int64, bool) {
	if level == 0 {
		return 0, true
	}
	cost, ok := costs[level]
	return cost, ok
}

// NextLevel returns the smallest level present in the table above current,
// with its cumulative cost. ok == false when current is at or past the cap.
func NextLevel(current int, costs domain.LevelCosts) (level int, cost int64, ok bool) {
	for _, lv := range sortedLevels(costs) {
		if lv > current {
			return lv, costs[lv], true
		}
	}
	return 0, 0, false
}

func sortedLevels(costs domain.LevelCosts) []int {
	levels := make([]int, 0, len(costs))
	for level := range costs {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}
