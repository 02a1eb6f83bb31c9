package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	from, err := ParseDuration("from")
	assert.NoError(t, err)
	assert.Equal(t, DurationFrom, from)

	since, err := ParseDuration("since")
	assert.NoError(t, err)
	assert.Equal(t, DurationSince, since)

	_, err = ParseDuration("longest")
	assert.Error(t, err)
}

func TestTimeSentinels(t *testing.T) {
	for _, alias := range []string{"min", "earliest"} {
		assert.True(t, IsTimeSentinel(alias))
		bound, ok := TimeSentinelBound(alias)
		assert.True(t, ok)
		assert.Equal(t, BoundMin, bound)
	}
	for _, alias := range []string{"max", "latest"} {
		bound, ok := TimeSentinelBound(alias)
		assert.True(t, ok)
		assert.Equal(t, BoundMax, bound)
	}
	assert.False(t, IsTimeSentinel("most"))
}

func TestQuantitySentinels(t *testing.T) {
	for _, alias := range []string{"min", "least"} {
		bound, ok := QuantitySentinelBound(alias)
		assert.True(t, ok)
		assert.Equal(t, BoundMin, bound)
	}
	for _, alias := range []string{"max", "most"} {
		bound, ok := QuantitySentinelBound(alias)
		assert.True(t, ok)
		assert.Equal(t, BoundMax, bound)
	}
	assert.False(t, IsQuantitySentinel("latest"))
}

func TestParseTransferFilter(t *testing.T) {
	f, err := ParseTransferFilter("mosaic")
	assert.NoError(t, err)
	assert.Equal(t, FilterMosaic, f)

	f, err = ParseTransferFilter("multisig")
	assert.NoError(t, err)
	assert.Equal(t, FilterMultisig, f)

	_, err = ParseTransferFilter("unknown")
	assert.Error(t, err)
}
