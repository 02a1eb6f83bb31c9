// Package aliascache resolves the well-known mosaic alias namespaces
// (currency, harvest, xem) that the accounts-by-balance families depend
// on, and caches the result with a short TTL (spec.md §9 "Balance
// families' dependency on aliases" suggests caching but never makes it
// mandatory) — every lookup always falls back to a live per-query
// resolution against the store on a cache miss or a disabled cache.
package aliascache

import (
	"context"
	"time"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/families"
	"github.com/chainscope/timeline/pkg/redis"
	"github.com/chainscope/timeline/pkg/utils"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultTTL bounds how stale a cached alias can be before the periodic
// refresh replaces it. Aliases change only when a namespace is
// re-aliased, an infrequent chain event, so a short TTL is generous.
const DefaultTTL = 30 * time.Second

// WellKnownAliases lists every alias the cache keeps warm.
var WellKnownAliases = []string{
	indexer.AliasCurrency,
	indexer.AliasHarvest,
	indexer.AliasXem,
}

type entry struct {
	mosaicID string
	expires  time.Time
}

// Cache is a two-tier well-known-alias resolver: an in-process
// puzpuzpuz/xsync map first, an optional Redis tier second, and a live
// store lookup as the always-correct fallback.
type Cache struct {
	store  *store.Store
	logger *zap.Logger
	local  *xsync.Map[string, entry]
	redis  *redis.Client
	ttl    time.Duration
	cron   *cron.Cron
}

// New constructs a Cache. redisClient may be nil (spec's Non-goals do not
// require the Redis tier; REDIS_ENABLED gates it at startup in app.go).
func New(s *store.Store, logger *zap.Logger, redisClient *redis.Client) *Cache {
	return &Cache{
		store:  s,
		logger: logger,
		local:  xsync.NewMap[string, entry](),
		redis:  redisClient,
		ttl:    DefaultTTL,
	}
}

// StartRefresh schedules a periodic warm of every well-known alias using
// robfig/cron, running once immediately before the first tick.
func (c *Cache) StartRefresh(ctx context.Context) {
	c.refreshAll(ctx)

	c.cron = cron.New()
	_, err := c.cron.AddFunc("@every 20s", func() {
		c.refreshAll(ctx)
	})
	if err != nil {
		c.logger.Warn("failed to schedule alias cache refresh", zap.Error(err))
		return
	}
	c.cron.Start()
}

// Stop halts the periodic refresh.
func (c *Cache) Stop() {
	if c.cron != nil {
		c.cron.Stop()
	}
}

func (c *Cache) refreshAll(ctx context.Context) {
	for _, alias := range WellKnownAliases {
		mosaicID, found, err := families.ResolveWellKnownAlias(ctx, c.store, alias)
		if err != nil {
			c.logger.Warn("alias cache refresh failed", zap.String("alias", alias), zap.Error(err))
			continue
		}
		if !found {
			continue
		}
		c.set(ctx, alias, mosaicID)
	}
}

// Resolve returns the mosaic id for a well-known alias, consulting the
// local map, then Redis, then falling back to a live lookup which
// repopulates both tiers.
func (c *Cache) Resolve(ctx context.Context, alias string) (string, bool, error) {
	if e, ok := c.local.Load(alias); ok && time.Now().Before(e.expires) {
		return e.mosaicID, true, nil
	}

	if c.redis != nil {
		if mosaicID, ok := c.getRedis(ctx, alias); ok {
			c.local.Store(alias, entry{mosaicID: mosaicID, expires: time.Now().Add(c.ttl)})
			return mosaicID, true, nil
		}
	}

	mosaicID, found, err := families.ResolveWellKnownAlias(ctx, c.store, alias)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	c.set(ctx, alias, mosaicID)
	return mosaicID, true, nil
}

func (c *Cache) set(ctx context.Context, alias, mosaicID string) {
	c.local.Store(alias, entry{mosaicID: mosaicID, expires: time.Now().Add(c.ttl)})
	if c.redis != nil {
		c.setRedis(ctx, alias, mosaicID)
	}
}

func (c *Cache) getRedis(ctx context.Context, alias string) (string, bool) {
	val, err := c.redis.GetClient().Get(ctx, redisKey(alias)).Result()
	if err != nil {
		return "", false
	}
	return val, val != ""
}

func (c *Cache) setRedis(ctx context.Context, alias, mosaicID string) {
	if err := c.redis.GetClient().Set(ctx, redisKey(alias), mosaicID, c.ttl).Err(); err != nil {
		c.logger.Warn("alias cache redis write failed", zap.String("alias", alias), zap.Error(err))
	}
}

func redisKey(alias string) string {
	return "aliascache:" + alias
}

// RedisEnabled reports whether REDIS_ENABLED opts this deployment into
// the Redis tier.
func RedisEnabled() bool {
	return utils.Env("REDIS_ENABLED", "false") == "true"
}
