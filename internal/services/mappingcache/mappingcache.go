package mappingcache

import (
	"context"
	"time"

	"github.com/filedrop/file-delivery-bot/internal/delivery"
	"github.com/patrickmn/go-cache"
)

// Cache is a read-through cache of mapping records. Only hits are stored, so a key that
// is added to the store later is picked up on the next request.
type Cache struct {
	cache  *cache.Cache
	finder delivery.MappingFinder
}

// New creates a mapping cache in front of finder. ttl must be positive.
func New(ttl time.Duration, finder delivery.MappingFinder) *Cache {
	return &Cache{
		cache:  cache.New(ttl, 2*ttl),
		finder: finder,
	}
}

// FindMapping returns the cached record for mapping, asking the underlying finder on a miss.
func (c *Cache) FindMapping(ctx context.Context, mapping string) (*delivery.Record, error) {
	if cached, found := c.cache.Get(mapping); found {
		record := cached.(delivery.Record)
		return &record, nil
	}

	record, err := c.finder.FindMapping(ctx, mapping)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(mapping, *record)
	return record, nil
}
