package rangequery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessThanSingleColumn(t *testing.T) {
	pred := LessThan([]string{"height"}, []interface{}{uint64(10)})
	assert.Equal(t, "(height < ?)", pred.SQL)
	assert.Equal(t, []interface{}{uint64(10)}, pred.Args)
}

func TestGreaterThanCompositeColumns(t *testing.T) {
	pred := GreaterThan([]string{"height", "idx"}, []interface{}{uint64(10), int32(2)})
	assert.Equal(t, "((height > ?) OR (height = ? AND idx > ?))", pred.SQL)
	assert.Equal(t, []interface{}{uint64(10), uint64(10), int32(2)}, pred.Args)
}

func TestBuildPanicsOnColumnAnchorMismatch(t *testing.T) {
	assert.Panics(t, func() {
		LessThan([]string{"a", "b"}, []interface{}{1})
	})
}

func TestBuildFromDirection(t *testing.T) {
	q := Build("*", `"db"."blocks"`, true, "", nil, []string{"height"}, []interface{}{uint64(100)}, From, 25)
	assert.False(t, q.NeedsReversal)
	assert.Contains(t, q.SQL, "FINAL")
	assert.Contains(t, q.SQL, "WHERE (height < ?)")
	assert.Contains(t, q.SQL, "ORDER BY height DESC")
	assert.Contains(t, q.SQL, "LIMIT ?")
	require.Len(t, q.Args, 2)
	assert.Equal(t, uint64(100), q.Args[0])
	assert.Equal(t, 25, q.Args[1])
}

func TestBuildSinceDirectionNeedsReversal(t *testing.T) {
	q := Build("*", `"db"."blocks"`, true, "", nil, []string{"height"}, []interface{}{uint64(100)}, Since, 25)
	assert.True(t, q.NeedsReversal)
	assert.Contains(t, q.SQL, "WHERE (height > ?)")
	assert.Contains(t, q.SQL, "ORDER BY height ASC")
}

func TestBuildWithBaseWhereAndArgs(t *testing.T) {
	q := Build("*", `"db"."transactions"`, true, "type = ?", []interface{}{"transfer"}, []string{"height", "idx"},
		[]interface{}{uint64(5), int32(0)}, From, 10)
	assert.Contains(t, q.SQL, "WHERE type = ? AND (")
	require.Len(t, q.Args, 5) // baseArg, height, height, idx, limit... actually 1 base + 3 pred args + 1 limit
	assert.Equal(t, "transfer", q.Args[0])
	assert.Equal(t, 10, q.Args[len(q.Args)-1])
}

func TestReverse(t *testing.T) {
	in := []int{1, 2, 3}
	out := Reverse(in)
	assert.Equal(t, []int{3, 2, 1}, out)
	assert.Equal(t, []int{1, 2, 3}, in, "Reverse must not mutate the input")
}

func TestReverseEmpty(t *testing.T) {
	assert.Empty(t, Reverse([]int{}))
}
