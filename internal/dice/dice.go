// Package dice rolls dice.
package dice

import (
	"fmt"
	"math/rand"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// DefaultSides is used when a roll does not specify a die.
const DefaultSides = 6

// Roll returns a uniform value in [1, sides].
func Roll(rnd *rand.Rand, sides int) (int, error) {
	if sides < 2 {
		return 0, fmt.Errorf("%w: a die needs at least 2 sides", domain.ErrInvalidInput)
	}
	return rnd.Intn(sides) + 1, nil
}
