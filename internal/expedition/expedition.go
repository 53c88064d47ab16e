// Package expedition looks up Star Expedition boss HP values.
package expedition

import (
	"embed"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

//go:embed data/boss_hp.json
var dataFS embed.FS

// MaxStage is the highest expedition stage with known HP data.
const MaxStage = 200

// Full HP per boss stage.
var bossHP map[string]float64

func init() {
	raw, err := dataFS.ReadFile("data/boss_hp.json")
	if err != nil {
		panic(fmt.Errorf("read boss hp table: %w", err))
	}
	if err := json.Unmarshal(raw, &bossHP); err != nil {
		panic(fmt.Errorf("decode boss hp table: %w", err))
	}
}

// BossHP returns the remaining HP of the boss at the given stage, scaled by
// the remaining percentage. A percentage of 100 means full HP.
func BossHP(stage, percentage int) (float64, error) {
	if percentage < 1 || percentage > 100 {
		return 0, fmt.Errorf("%w: percentage must be between 1 and 100", domain.ErrInvalidInput)
	}

	hp, ok := bossHP[strconv.Itoa(stage)]
	if !ok {
		return 0, fmt.Errorf("%w: stage %d", domain.ErrStageNotFound, stage)
	}

	return hp * float64(percentage) / 100, nil
}
