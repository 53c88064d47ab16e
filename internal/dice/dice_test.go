package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

func TestRollWithinBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for _, sides := range []int{2, 6, 20, 100} {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			v, err := Roll(rnd, sides)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, sides)
			seen[v] = true
		}
		assert.True(t, seen[1], "d%d never rolled 1", sides)
		assert.True(t, seen[sides], "d%d never rolled %d", sides, sides)
	}
}

func TestRollRejectsSmallDice(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for _, sides := range []int{1, 0, -6} {
		_, err := Roll(rnd, sides)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
