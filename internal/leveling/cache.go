package leveling

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/exile7/ExileBot_Go/internal/domain"
)

// infoCache is an in-memory LRU for Progress lookups with time-based
// expiration. It exists so rank cards and repeated lookups don't re-read the
// ledger file; award paths bypass it entirely and invalidate on write.
type infoCache struct {
	lru *expirable.LRU[string, *domain.UserLevelInfo]
}

func newInfoCache(size int, ttl time.Duration) *infoCache {
	return &infoCache{
		lru: expirable.NewLRU[string, *domain.UserLevelInfo](size, nil, ttl),
	}
}

func (c *infoCache) Get(userID string) (*domain.UserLevelInfo, bool) {
	return c.lru.Get(userID)
}

func (c *infoCache) Set(userID string, info *domain.UserLevelInfo) {
	c.lru.Add(userID, info)
}

func (c *infoCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
