package families

import (
	"context"
	"fmt"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/rangequery"
	"github.com/chainscope/timeline/pkg/timeline"
)

var mosaicSortColumns = []string{"start_height", "id"}

// NewMosaicsTimeline builds the Mosaics family's Timeline: composite sort
// key (StartHeight, ID) descending, identifier anchor is the 8-byte
// MosaicID.
func NewMosaicsTimeline(s *store.Store) *timeline.Timeline[*indexer.Mosaic] {
	t := timeline.New[*indexer.Mosaic]()

	seedMin := func() []interface{} { return []interface{}{minU64, objectIDMinSeed()} }
	seedMax := func() []interface{} { return []interface{}{maxU64, objectIDMaxSeed()} }

	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Mosaic, error) {
		return mosaicsQuery(ctx, s, args, rangequery.From, count)
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Mosaic, error) {
		return mosaicsQuery(ctx, s, args, rangequery.Since, count)
	}
	t.AddAll(timeline.GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	extract := func(m *indexer.Mosaic) []interface{} { return []interface{}{m.StartHeight, m.ID} }
	lookup := func(ctx context.Context, anchor string) (*indexer.Mosaic, bool, error) {
		return mosaicByMosaicID(ctx, s, anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("MosaicID", lookup, extract, storeFrom, storeSince))

	return t
}

func mosaicColumns() string {
	return joinColumnNames(indexer.MosaicColumns)
}

func mosaicByMosaicID(ctx context.Context, s *store.Store, mosaicID string) (*indexer.Mosaic, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE mosaic_id = ? LIMIT 1`, mosaicColumns(), s.Table(indexer.MosaicsTableName))
	var rows []*indexer.Mosaic
	if err := s.Select(ctx, &rows, query, mosaicID); err != nil {
		return nil, false, queryerr.Internal("mosaic lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func mosaicsQuery(ctx context.Context, s *store.Store, anchor []interface{}, dir rangequery.Direction, count int) ([]*indexer.Mosaic, error) {
	q := rangequery.Build(mosaicColumns(), s.Table(indexer.MosaicsTableName), true, "", nil, mosaicSortColumns, anchor, dir, count)
	var rows []*indexer.Mosaic
	if err := s.Select(ctx, &rows, q.SQL, q.Args...); err != nil {
		return nil, queryerr.Internal("mosaics query failed", err)
	}
	if q.NeedsReversal {
		rows = rangequery.Reverse(rows)
	}
	return rows, nil
}
