package config

import "time"

// Leveling defaults
const (
	// DefaultBaseXP is the XP granted per message before bonuses and multipliers
	DefaultBaseXP = 35

	// DefaultLevelMultiplierRate is the per-level XP boost (0.01 = +1% per level)
	DefaultLevelMultiplierRate = 0.01
)

// Giveaway defaults
const (
	// DefaultGiveawaySweep is how often the sweep job concludes overdue giveaways
	DefaultGiveawaySweep = 2 * time.Minute

	// DefaultGiveawayRetention is how long concluded records stay available for
	// reroll before the expiry sweep removes them
	DefaultGiveawayRetention = 24 * time.Hour
)

// DefaultPort is the internal HTTP server port (health + metrics)
const DefaultPort = 8080
