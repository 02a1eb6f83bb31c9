package families

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockFromRangeLatestSentinelReturnsTailOfChain(t *testing.T) {
	// fromMax/fromLatest seeds target with the maxU64 sentinel; the window
	// must still resolve to the last `count` blocks, not come up empty.
	start, end := blockFromRange(1000, maxU64, 25)
	assert.Equal(t, uint64(976), start)
	assert.Equal(t, uint64(1001), end)
}

func TestBlockFromRangeOrdinaryTarget(t *testing.T) {
	start, end := blockFromRange(1000, 500, 25)
	assert.Equal(t, uint64(475), start)
	assert.Equal(t, uint64(500), end)
}

func TestBlockFromRangeNearGenesisClampsToOne(t *testing.T) {
	start, end := blockFromRange(1000, 10, 25)
	assert.Equal(t, uint64(1), start)
	assert.Equal(t, uint64(10), end)
}

func TestBlockFromRangeTargetBeyondTipClampsEnd(t *testing.T) {
	start, end := blockFromRange(1000, 5000, 25)
	assert.Equal(t, uint64(976), start)
	assert.Equal(t, uint64(1001), end)
}

func TestBlockSinceRangeOrdinaryTarget(t *testing.T) {
	start, end := blockSinceRange(1000, 500, 25)
	assert.Equal(t, uint64(500), start)
	assert.Equal(t, uint64(525), end)
}

func TestBlockSinceRangeMinSentinelExcludesGenesisBlock(t *testing.T) {
	// sinceMin seeds target with height 1 (the chain's first block), not 0:
	// since is non-inclusive, so the smallest height a real query can return
	// is 2.
	start, end := blockSinceRange(1000, 1, 25)
	assert.Equal(t, uint64(1), start)
	assert.Equal(t, uint64(26), end)
}

func TestBlockSinceRangeTargetBeyondTipClampsStart(t *testing.T) {
	start, end := blockSinceRange(1000, 5000, 25)
	assert.Equal(t, uint64(1001), start)
	assert.Equal(t, uint64(1026), end)
}
