package timeline

import (
	"context"
	"testing"

	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	key string
}

func newFixture() *Timeline[*fakeRecord] {
	t := New[*fakeRecord]()
	seedMin := func() []interface{} { return []interface{}{"min"} }
	seedMax := func() []interface{} { return []interface{}{"max"} }
	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*fakeRecord, error) {
		return []*fakeRecord{{key: "from"}}, nil
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*fakeRecord, error) {
		return []*fakeRecord{{key: "since"}}, nil
	}
	t.AddAll(GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	lookup := func(ctx context.Context, anchor string) (*fakeRecord, bool, error) {
		if anchor == "missing" {
			return nil, false, nil
		}
		return &fakeRecord{key: anchor}, true, nil
	}
	extract := func(r *fakeRecord) []interface{} { return []interface{}{r.key} }
	t.AddAll(GenerateIDParameters("Key", lookup, extract, storeFrom, storeSince))
	return t
}

func TestUnknownEntryIsInternalError(t *testing.T) {
	tl := newFixture()
	_, _, err := tl.Call(context.Background(), "doesNotExist", nil, 25)
	require.Error(t, err)
	qerr, ok := queryerr.As(err)
	require.True(t, ok)
	assert.Equal(t, queryerr.ClassInternal, qerr.Class)
}

func TestCountZeroShortCircuits(t *testing.T) {
	tl := newFixture()
	recs, found, err := tl.Call(context.Background(), "fromMax", nil, 0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, recs)
}

func TestEmptyKindEntriesNeverTouchTheStore(t *testing.T) {
	tl := newFixture()
	recs, found, err := tl.Call(context.Background(), "fromMin", nil, 25)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, recs)

	recs, found, err = tl.Call(context.Background(), "sinceMax", nil, 25)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, recs)
}

func TestAbsoluteEntriesDispatchToStoreMethod(t *testing.T) {
	tl := newFixture()
	recs, found, err := tl.Call(context.Background(), "fromMax", nil, 25)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, recs, 1)
	assert.Equal(t, "from", recs[0].key)

	recs, found, err = tl.Call(context.Background(), "sinceMin", nil, 25)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, recs, 1)
	assert.Equal(t, "since", recs[0].key)
}

func TestIdentifierEntryMissLookupReturnsNotFound(t *testing.T) {
	tl := newFixture()
	recs, found, err := tl.Call(context.Background(), "fromKey", []interface{}{"missing"}, 25)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, recs)
}

func TestIdentifierEntryHitDelegatesToStoreMethod(t *testing.T) {
	tl := newFixture()
	recs, found, err := tl.Call(context.Background(), "sinceKey", []interface{}{"anchor-value"}, 25)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, recs, 1)
	assert.Equal(t, "since", recs[0].key)
}

func TestIdentifierEntryWithoutAnchorIsInternalError(t *testing.T) {
	tl := newFixture()
	_, _, err := tl.Call(context.Background(), "fromKey", nil, 25)
	require.Error(t, err)
	qerr, ok := queryerr.As(err)
	require.True(t, ok)
	assert.Equal(t, queryerr.ClassInternal, qerr.Class)
}

func TestHasReportsBoundEntries(t *testing.T) {
	tl := newFixture()
	assert.True(t, tl.Has("fromMin"))
	assert.True(t, tl.Has("sinceKey"))
	assert.False(t, tl.Has("nope"))
}
