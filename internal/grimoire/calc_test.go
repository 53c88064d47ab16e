package grimoire

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

func TestParseBook(t *testing.T) {
	for _, s := range []string{"enable", "Enable", "ENABLE"} {
		book, err := ParseBook(s)
		require.NoError(t, err)
		assert.Equal(t, BookEnable, book)
	}

	book, err := ParseBook("Imprint")
	require.NoError(t, err)
	assert.Equal(t, BookImprint, book)

	_, err = ParseBook("forbidden")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateEnableFromScratch(t *testing.T) {
	res, err := Calculate(BookEnable, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, enableCosts["10"], res.EssenceCost)
	assert.Equal(t, int64(0), res.ImprintCost)
	assert.InDelta(t, float64(res.EssenceCost)/EssencePerChoice, res.EssenceChoices, 1e-9)
	assert.Zero(t, res.ImprintChoices)
}

func TestCalculateEnableDifference(t *testing.T) {
	res, err := Calculate(BookEnable, 20, 10)
	require.NoError(t, err)

	assert.Equal(t, enableCosts["20"]-enableCosts["10"], res.EssenceCost)
	assert.Positive(t, res.EssenceCost)
}

func TestCalculateImprintDifference(t *testing.T) {
	res, err := Calculate(BookImprint, 50, 25)
	require.NoError(t, err)

	assert.Equal(t, imprintCosts["50"].Essence-imprintCosts["25"].Essence, res.EssenceCost)
	assert.Equal(t, imprintCosts["50"].Imprint-imprintCosts["25"].Imprint, res.ImprintCost)
	assert.InDelta(t, float64(res.ImprintCost)/ImprintPerChoice, res.ImprintChoices, 1e-9)
}

func TestCalculateGoalMustExceedCurrent(t *testing.T) {
	_, err := Calculate(BookEnable, 10, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Calculate(BookEnable, 5, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateUnknownLevel(t *testing.T) {
	_, err := Calculate(BookEnable, MaxLevel+1, 0)
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)

	_, err = Calculate(BookImprint, 151, 0)
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)
}

func TestTablesCoverAllLevels(t *testing.T) {
	require.Len(t, enableCosts, MaxLevel)
	require.Len(t, imprintCosts, MaxLevel)

	// Cumulative tables must be strictly increasing
	for level := 2; level <= MaxLevel; level++ {
		prev, cur := strconv.Itoa(level-1), strconv.Itoa(level)
		assert.Greater(t, enableCosts[cur], enableCosts[prev])
		assert.Greater(t, imprintCosts[cur].Essence, imprintCosts[prev].Essence)
		assert.Greater(t, imprintCosts[cur].Imprint, imprintCosts[prev].Imprint)
	}
}
