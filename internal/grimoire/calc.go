// Package grimoire calculates upgrade costs for the two Grimoire chapters.
// Cost tables are cumulative, so the cost between two levels is a simple
// difference.
package grimoire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// Book selects which Grimoire chapter a calculation targets.
type Book string

const (
	BookEnable  Book = "enable"
	BookImprint Book = "imprint"
)

// Event choice exchange rates. One event choice grants either 1400k essence
// or 175k imprint.
const (
	EssencePerChoice = 1_400_000
	ImprintPerChoice = 175_000
)

// MaxLevel is the highest grimoire level with known costs.
const MaxLevel = 150

// Result holds the resource cost between two grimoire levels and the
// equivalent number of event choices.
type Result struct {
	EssenceCost    int64
	ImprintCost    int64
	EssenceChoices float64
	ImprintChoices float64
}

// ParseBook maps user input to a Book, case insensitively.
func ParseBook(s string) (Book, error) {
	switch strings.ToLower(s) {
	case string(BookEnable):
		return BookEnable, nil
	case string(BookImprint):
		return BookImprint, nil
	default:
		return "", fmt.Errorf("%w: unknown book %q", domain.ErrInvalidInput, s)
	}
}

// Calculate returns the cost to raise the given book from currentLevel to
// goalLevel. A currentLevel of 0 means starting from scratch.
func Calculate(book Book, goalLevel, currentLevel int) (*Result, error) {
	if currentLevel > 0 && goalLevel <= currentLevel {
		return nil, fmt.Errorf("%w: goal level must be higher than current level", domain.ErrInvalidInput)
	}

	switch book {
	case BookEnable:
		goal, ok := enableCosts[strconv.Itoa(goalLevel)]
		if !ok {
			return nil, fmt.Errorf("%w: enable level %d", domain.ErrLevelNotFound, goalLevel)
		}
		var current int64
		if currentLevel > 0 {
			current, ok = enableCosts[strconv.Itoa(currentLevel)]
			if !ok {
				return nil, fmt.Errorf("%w: enable level %d", domain.ErrLevelNotFound, currentLevel)
			}
		}
		return newResult(goal-current, 0), nil

	case BookImprint:
		goal, ok := imprintCosts[strconv.Itoa(goalLevel)]
		if !ok {
			return nil, fmt.Errorf("%w: imprint level %d", domain.ErrLevelNotFound, goalLevel)
		}
		var current ImprintCost
		if currentLevel > 0 {
			current, ok = imprintCosts[strconv.Itoa(currentLevel)]
			if !ok {
				return nil, fmt.Errorf("%w: imprint level %d", domain.ErrLevelNotFound, currentLevel)
			}
		}
		return newResult(goal.Essence-current.Essence, goal.Imprint-current.Imprint), nil

	default:
		return nil, fmt.Errorf("%w: unknown book %q", domain.ErrInvalidInput, book)
	}
}

func newResult(essence, imprint int64) *Result {
	res := &Result{EssenceCost: essence, ImprintCost: imprint}
	if essence > 0 {
		res.EssenceChoices = float64(essence) / EssencePerChoice
	}
	if imprint > 0 {
		res.ImprintChoices = float64(imprint) / ImprintPerChoice
	}
	return res
}
