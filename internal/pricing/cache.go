package pricing

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

type priceKey struct {
	serverID int
	itemID   int
}

// priceCache is an in-memory LRU of current-price lookups with time-based expiration.
// A nil value records that no approved price exists.
type priceCache struct {
	lru *expirable.LRU[priceKey, *domain.Price]
}

func newPriceCache(size int, ttl time.Duration) *priceCache {
	return &priceCache{
		lru: expirable.NewLRU[priceKey, *domain.Price](size, nil, ttl),
	}
}

// Get returns (price, true) on a hit, where price may be nil for a cached absence.
func (c *priceCache) Get(serverID, itemID int) (*domain.Price, bool) {
	key := priceKey{serverID: serverID, itemID: itemID}
	return c.lru.Get(key)
}

func (c *priceCache) Set(serverID, itemID int, price *domain.Price) {
	c.lru.Add(priceKey{serverID: serverID, itemID: itemID}, price)
}

func (c *priceCache) Invalidate(serverID, itemID int) {
	c.lru.Remove(priceKey{serverID: serverID, itemID: itemID})
}

func (c *priceCache) Clear() {
	c.lru.Purge()
}

func (c *priceCache) Len() int {
	return c.lru.Len()
}
