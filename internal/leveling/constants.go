package leveling

import "time"

// Read-path cache configuration. The cache only serves display lookups
// (rank cards, leaderboards); the award path always re-reads the ledger.
const (
	CacheSize = 512
	CacheTTL  = 30 * time.Second
)

// Breakdown source tag prefixes
const (
	SourceChannelPrefix = "channel_"
	SourceRolePrefix    = "role_"
	SourceLevelPrefix   = "level_"
)
