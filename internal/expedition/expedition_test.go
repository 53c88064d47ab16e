package expedition

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

func TestBossHPFull(t *testing.T) {
	hp, err := BossHP(1, 100)
	require.NoError(t, err)
	assert.Equal(t, bossHP["1"], hp)
}

func TestBossHPScalesByPercentage(t *testing.T) {
	full, err := BossHP(50, 100)
	require.NoError(t, err)

	half, err := BossHP(50, 50)
	require.NoError(t, err)
	assert.InDelta(t, full/2, half, full*1e-12)

	one, err := BossHP(50, 1)
	require.NoError(t, err)
	assert.InDelta(t, full/100, one, full*1e-12)
}

func TestBossHPUnknownStage(t *testing.T) {
	for _, stage := range []int{0, -3, MaxStage + 1} {
		_, err := BossHP(stage, 100)
		assert.ErrorIs(t, err, domain.ErrStageNotFound, "stage %d", stage)
	}
}

func TestBossHPInvalidPercentage(t *testing.T) {
	for _, pct := range []int{0, -1, 101} {
		_, err := BossHP(1, pct)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "percentage %d", pct)
	}
}

func TestBossHPTableComplete(t *testing.T) {
	require.Len(t, bossHP, MaxStage)
	for stage := 2; stage <= MaxStage; stage++ {
		cur := bossHP[strconv.Itoa(stage)]
		prev := bossHP[strconv.Itoa(stage-1)]
		assert.Greater(t, cur, prev, "stage %d", stage)
	}
}
