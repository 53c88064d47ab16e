package grimoire

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/enable_costs.json data/imprint_costs.json
var dataFS embed.FS

// ImprintCost is the cumulative cost of one Imprint chapter level.
type ImprintCost struct {
	Essence int64 `json:"essence"`
	Imprint int64 `json:"imprint"`
}

var (
	// Cumulative essence cost per Enabling chapter level.
	enableCosts map[string]int64
	// Cumulative essence and imprint cost per Imprint chapter level.
	imprintCosts map[string]ImprintCost
)

func init() {
	if err := loadTable("data/enable_costs.json", &enableCosts); err != nil {
		panic(err)
	}
	if err := loadTable("data/imprint_costs.json", &imprintCosts); err != nil {
		panic(err)
	}
}

func loadTable(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read grimoire table %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode grimoire table %s: %w", name, err)
	}
	return nil
}
