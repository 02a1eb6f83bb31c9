package families

import (
	"testing"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/objectid"
	"github.com/stretchr/testify/assert"
)

func TestJoinColumnNames(t *testing.T) {
	cols := []indexer.ColumnDef{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	assert.Equal(t, "a, b, c", joinColumnNames(cols))
}

func TestJoinColumnNamesEmpty(t *testing.T) {
	assert.Equal(t, "", joinColumnNames(nil))
}

func TestObjectIDSentinelSeeds(t *testing.T) {
	// Seeds must be the raw bytes stored in the FixedString(12) id column,
	// not its hex encoding, or every sentinel comparison against a real row
	// value silently compares strings of different lengths.
	assert.Equal(t, string(objectid.Min[:]), objectIDMinSeed())
	assert.Equal(t, string(objectid.Max[:]), objectIDMaxSeed())
	assert.Len(t, objectIDMinSeed(), objectid.Size)
	assert.Len(t, objectIDMaxSeed(), objectid.Size)
	assert.NotEqual(t, objectIDMinSeed(), objectIDMaxSeed())
}

func TestU64Sentinels(t *testing.T) {
	assert.Equal(t, uint64(0), minU64)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), maxU64)
}
