package hiscores

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache keeps recent hiscores lookups. It is safe for concurrent use and a
// nil *Cache is a valid, always-empty cache.
type Cache struct {
	players *expirable.LRU[string, *Player]
}

// NewCache creates a cache holding up to size players for ttl.
// Non-positive values fall back to 256 players and 10 minutes.
func NewCache(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 256
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{
		players: expirable.NewLRU[string, *Player](size, nil, ttl),
	}
}

// Get returns a cached player, if present and not expired.
func (c *Cache) Get(name string) (*Player, bool) {
	if c == nil {
		return nil, false
	}
	key := normalizeName(name)
	if key == "" {
		return nil, false
	}
	return c.players.Get(key)
}

// Set caches a player under its normalized name.
func (c *Cache) Set(name string, player *Player) {
	if c == nil || player == nil {
		return
	}
	key := normalizeName(name)
	if key == "" {
		return
	}
	c.players.Add(key, player)
}

// Len returns the number of cached players.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.players.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.players.Purge()
}

// normalizeName folds case and the separators the game treats as equal:
// "Ze_Zima", "ze-zima" and "ze zima" share one key. Hiscores pages render
// spaces in names as U+00A0.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", " ", "-", " ", "\u00a0", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
