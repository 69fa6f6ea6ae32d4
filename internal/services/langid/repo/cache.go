package repo

import (
	"context"
	"fmt"
	"time"

	"langid/internal/services/langid/domain"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// modelCache keeps loaded experts keyed by path and modification time, so a
// replaced artifact is picked up on the next call. Concurrent misses for the
// same artifact share one load
type modelCache struct {
	loader domain.Loader
	lru    *lru.Cache[string, domain.Model]
	group  singleflight.Group
}

func newModelCache(loader domain.Loader, size int) (*modelCache, error) {
	c := &modelCache{loader: loader}
	if size > 0 {
		l, err := lru.New[string, domain.Model](size)
		if err != nil {
			return nil, err
		}
		c.lru = l
	}
	return c, nil
}

func cacheKey(path string, mod time.Time) string {
	return fmt.Sprintf("%s@%d", path, mod.UnixNano())
}

func (c *modelCache) get(ctx context.Context, path string, mod time.Time) (domain.Model, error) {
	key := cacheKey(path, mod)
	if c.lru != nil {
		if m, ok := c.lru.Get(key); ok {
			return m, nil
		}
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if c.lru != nil {
			if m, ok := c.lru.Get(key); ok {
				return m, nil
			}
		}
		// detached so one caller's cancellation does not fail the others
		m, err := c.loader.Load(context.WithoutCancel(ctx), path)
		if err != nil {
			return nil, err
		}
		if c.lru != nil {
			c.lru.Add(key, m)
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.Model), nil
}

// len reports cached experts, 0 when caching is off
func (c *modelCache) len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
