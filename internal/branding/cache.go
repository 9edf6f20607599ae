package branding

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/propforma/propforma/internal/domain"
)

// CachedProvider wraps another provider with a TTL cache so repeated report
// generations for the same agent do not hammer the branding store. Errors
// are not cached; only successful lookups are.
type CachedProvider struct {
	inner Provider
	c     *cache.Cache
}

// NewCachedProvider caches lookups from inner for ttl.
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		c:     cache.New(ttl, 2*ttl),
	}
}

func (cp *CachedProvider) Lookup(ctx context.Context, userID string) (domain.BrandingProfile, error) {
	if cached, found := cp.c.Get(userID); found {
		return cached.(domain.BrandingProfile), nil
	}
	profile, err := cp.inner.Lookup(ctx, userID)
	if err != nil {
		return domain.BrandingProfile{}, err
	}
	cp.c.Set(userID, profile, cache.DefaultExpiration)
	return profile, nil
}
