package objectid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMaxSentinels(t *testing.T) {
	assert.Equal(t, ID{}, Min)
	for _, b := range Max {
		assert.Equal(t, byte(0xFF), b)
	}
	assert.True(t, Min.Less(Max))
	assert.False(t, Max.Less(Min))
}

func TestParseRoundTrip(t *testing.T) {
	id, err := Parse("0102030405060708090a0b0c")
	require.NoError(t, err)
	assert.Equal(t, "0102030405060708090a0b0c", id.String())
}

func TestParseWrongLength(t *testing.T) {
	_, err := Parse("abcd")
	assert.Error(t, err)
}

func TestParseInvalidHex(t *testing.T) {
	_, err := Parse("zz02030405060708090a0b0c")
	assert.Error(t, err)
}

func TestLessIsStrictAndTransitive(t *testing.T) {
	a, _ := Parse("000000000000000000000001")
	b, _ := Parse("000000000000000000000002")
	c, _ := Parse("000000000000000000000003")

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(c))
	assert.False(t, a.Less(a))
}

func TestMarshalUnmarshalText(t *testing.T) {
	var id ID
	require.NoError(t, id.UnmarshalText([]byte("0102030405060708090a0b0c")))

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0102030405060708090a0b0c", string(text))
}
