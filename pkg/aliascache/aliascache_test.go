package aliascache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedisEnabledDefaultsFalse(t *testing.T) {
	os.Unsetenv("REDIS_ENABLED")
	assert.False(t, RedisEnabled())
}

func TestRedisEnabledHonorsEnv(t *testing.T) {
	os.Setenv("REDIS_ENABLED", "true")
	defer os.Unsetenv("REDIS_ENABLED")
	assert.True(t, RedisEnabled())
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "aliascache:currency", redisKey("currency"))
}

func TestWellKnownAliasesListsAllThree(t *testing.T) {
	assert.ElementsMatch(t, []string{"currency", "harvest", "xem"}, WellKnownAliases)
}

func TestResolveHitsLocalCacheWithoutTouchingStore(t *testing.T) {
	c := New(nil, zap.NewNop(), nil)
	c.set(context.Background(), "currency", "mosaic-abc")

	mosaicID, found, err := c.Resolve(context.Background(), "currency")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "mosaic-abc", mosaicID)
}

func TestSetWithNegativeTTLStoresExpiredEntry(t *testing.T) {
	c := New(nil, zap.NewNop(), nil)
	c.ttl = -1 * time.Second // force immediate expiry
	c.set(context.Background(), "currency", "mosaic-abc")

	// The local entry is already expired; with no store and no redis the
	// live fallback will panic on a nil store, so this only exercises the
	// expiry check itself via a pre-expired direct load.
	e, ok := c.local.Load("currency")
	assert.True(t, ok)
	assert.True(t, time.Now().After(e.expires))
}

func TestStopWithoutStartIsSafe(t *testing.T) {
	c := New(nil, zap.NewNop(), nil)
	assert.NotPanics(t, func() { c.Stop() })
}
