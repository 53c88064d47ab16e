package domain

// XPBonus is a static XP addition granted by a channel or role.
type XPBonus struct {
	ID     string
	Amount int
}

// XPMultiplier is a normal XP multiplier granted by a channel or role.
// Multiple matching multipliers stack multiplicatively.
type XPMultiplier struct {
	ID    string
	Value float64
}

// XPTrueMultiplier is a final multiplier granted by a role. Only the first
// matching entry in table order applies, regardless of how many roles match.
type XPTrueMultiplier struct {
	ID    string
	Value float64
}

// XPTables is the immutable lookup configuration for one XP computation.
// Built once at startup; never mutated afterwards. Hot reload replaces the
// whole value.
type XPTables struct {
	ChannelBonuses      []XPBonus
	RoleBonuses         []XPBonus
	ChannelMultipliers  []XPMultiplier
	RoleMultipliers     []XPMultiplier
	RoleTrueMultipliers []XPTrueMultiplier
	LevelMultiplierRate float64
}

// XPContribution is one line of an XP breakdown: where the value came from
// and what it contributed.
type XPContribution struct {
	Source string  `json:"source"` // channel_<id>, role_<id> or level_<n>
	Value  float64 `json:"value"`
}

// XPBreakdown records every contribution to a single message's XP award,
// for audit and debug display.
type XPBreakdown struct {
	BaseXP      int              `json:"base_xp"`
	Bonuses     []XPContribution `json:"bonuses"`
	Subtotal    int              `json:"subtotal"`
	Multipliers []XPContribution `json:"multipliers"`
	LevelMult   XPContribution   `json:"level_multiplier"`
	TrueMult    *XPContribution  `json:"true_multiplier,omitempty"`
	Total       int              `json:"total"`
}

// XPAwardResult is the outcome of applying an XP delta to the ledger.
type XPAwardResult struct {
	LeveledUp bool
	NewLevel  int
	OldLevel  int
	NewXP     int64
}
