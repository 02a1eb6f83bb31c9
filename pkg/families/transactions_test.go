package families

import (
	"context"
	"testing"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByNonWellKnownMosaicExcludesWellKnownOnly(t *testing.T) {
	rows := []*indexer.Transaction{
		{Hash: "only-well-known", MosaicIDs: []string{indexer.AliasCurrency, indexer.AliasHarvest}},
		{Hash: "mixed", MosaicIDs: []string{indexer.AliasCurrency, "custom-mosaic"}},
		{Hash: "no-mosaics", MosaicIDs: nil},
	}

	out := filterByNonWellKnownMosaic(rows)

	assert.Len(t, out, 1)
	assert.Equal(t, "mixed", out[0].Hash)
}

func TestFilterByNonWellKnownMosaicEmptyInput(t *testing.T) {
	assert.Empty(t, filterByNonWellKnownMosaic(nil))
}

func TestWellKnownNetworkMosaicsSet(t *testing.T) {
	assert.True(t, wellKnownNetworkMosaics[indexer.AliasCurrency])
	assert.True(t, wellKnownNetworkMosaics[indexer.AliasHarvest])
	assert.False(t, wellKnownNetworkMosaics[indexer.AliasXem])
}

// A malformed anchor must be rejected before it ever reaches the store: the
// "id" column stores 12 raw bytes, so any anchor that doesn't decode as a
// 24-character hex object id would otherwise be bound to the query as the
// wrong length and either match nothing or, worse, something unrelated.
func TestTransactionsFromIDRejectsMalformedAnchor(t *testing.T) {
	tl := NewTransactionsTimeline(&store.Store{}, indexer.TransactionsTableName, "")
	_, _, err := tl.Call(context.Background(), "fromID", []interface{}{"not-hex"}, 25)
	require.Error(t, err)
	qerr, ok := queryerr.As(err)
	require.True(t, ok)
	assert.Equal(t, queryerr.ClassInvalidArgument, qerr.Class)
}

func TestTransactionsByFilterFromIDRejectsMalformedAnchor(t *testing.T) {
	tl := NewTransactionsByFilterTimeline(&store.Store{}, "transfer", validate.FilterMosaic)
	_, _, err := tl.Call(context.Background(), "fromID", []interface{}{"nothex"}, 25)
	require.Error(t, err)
	qerr, ok := queryerr.As(err)
	require.True(t, ok)
	assert.Equal(t, queryerr.ClassInvalidArgument, qerr.Class)
}
