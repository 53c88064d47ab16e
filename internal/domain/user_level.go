package domain

// UserLevel is one ledger record per user.
// XP is lifetime experience and never decreases; Level is always derived
// from XP via the level cost table, never set directly.
type UserLevel struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XP       int64  `json:"xp"`
	Level    int    `json:"level"`
}

// LevelCosts maps a level to the cumulative XP required to reach it.
// Loaded once at startup from levelCosts.json; regenerated only by an
// offline data step. Levels are not required to be contiguous.
type LevelCosts map[int]int64

// UserLevelInfo is the display view of a ledger record: the record plus
// progress toward the next level.
type UserLevelInfo struct {
	UserLevel
	XPForNextLevel int64 `json:"xp_for_next_level"`
	XPProgress     int64 `json:"xp_progress"`
}
