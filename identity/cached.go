package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CachedProvider memoizes permission decisions per token and permission.
// Concurrent identical checks share one upstream call. Errors are not cached.
type CachedProvider struct {
	next  Provider
	cache *cache.Cache
	group singleflight.Group
}

func NewCachedProvider(next Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func cacheKey(token, permission string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:]) + "|" + permission
}

func (p *CachedProvider) Check(ctx context.Context, token, permission string) (*Identity, error) {
	if bearerToken(token) == "" {
		return nil, ErrMissingToken
	}
	key := cacheKey(token, permission)
	if v, ok := p.cache.Get(key); ok {
		return v.(*Identity), nil
	}

	// The shared call outlives any single waiter's cancellation.
	shared := context.WithoutCancel(ctx)
	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		id, err := p.next.Check(shared, token, permission)
		if err != nil {
			return nil, err
		}
		p.cache.SetDefault(key, id)
		return id, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Identity), nil
}
