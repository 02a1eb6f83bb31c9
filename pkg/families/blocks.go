package families

import (
	"context"
	"fmt"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/timeline"
	"github.com/chainscope/timeline/pkg/validate"
)

// NewBlocksTimeline builds the Blocks family's Timeline. Blocks are the
// one family whose sort key (height) is unique, so From/Since are
// computed as a direct bounded height range rather than through the
// generic lexicographic predicate in pkg/rangequery (spec.md §4.3
// "Blocks").
func NewBlocksTimeline(s *store.Store) *timeline.Timeline[*indexer.Block] {
	t := timeline.New[*indexer.Block]()

	// sinceMin is seeded with height 1, the chain's first real block, not 0:
	// since is non-inclusive, so seeding with 0 would let height 1 itself
	// leak into the page instead of being the excluded lower bound.
	seedMin := func() []interface{} { return []interface{}{uint64(1)} }
	seedMax := func() []interface{} { return []interface{}{maxU64} }

	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Block, error) {
		return blocksFrom(ctx, s, args[0].(uint64), count)
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Block, error) {
		return blocksSince(ctx, s, args[0].(uint64), count)
	}
	t.AddAll(timeline.GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	extractHeight := func(b *indexer.Block) []interface{} { return []interface{}{b.Height} }

	lookupByHash := func(ctx context.Context, anchor string) (*indexer.Block, bool, error) {
		return blockByColumn(ctx, s, "hash", anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("Hash", lookupByHash, extractHeight, storeFrom, storeSince))

	lookupByHeight := func(ctx context.Context, anchor string) (*indexer.Block, bool, error) {
		height, err := validate.ParseInteger(anchor)
		if err != nil {
			return nil, false, err
		}
		return blockByColumn(ctx, s, "height", height)
	}
	t.AddAll(timeline.GenerateIDParameters("Height", lookupByHeight, extractHeight, storeFrom, storeSince))

	return t
}

func blockColumns() string {
	return joinColumnNames(indexer.BlockColumns)
}

func blockByColumn(ctx context.Context, s *store.Store, column string, value interface{}) (*indexer.Block, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE %s = ? LIMIT 1`, blockColumns(), s.Table(indexer.BlocksTableName), column)
	var rows []*indexer.Block
	if err := s.Select(ctx, &rows, query, value); err != nil {
		return nil, false, queryerr.Internal("block lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func chainHeight(ctx context.Context, s *store.Store) (uint64, error) {
	query := fmt.Sprintf(`SELECT max(height) FROM %s FINAL`, s.Table(indexer.BlocksTableName))
	var height uint64
	if err := s.QueryRow(ctx, query).Scan(&height); err != nil {
		return 0, queryerr.Internal("chain height lookup failed", err)
	}
	return height, nil
}

// blockFromRange computes the half-open [startHeight, endHeight) window for
// a "from" scan given the chain tip, the requested target height, and the
// page size. endHeight is clamped to the tip first, and startHeight is then
// derived from that clamped endHeight rather than the raw target — for the
// `fromMax`/`fromLatest` entries target is the maxU64 sentinel, so deriving
// startHeight from the raw target would leave it astronomically large and
// the window permanently empty.
func blockFromRange(tip, target uint64, count int) (startHeight, endHeight uint64) {
	endHeight = target
	if tip+1 < endHeight {
		endHeight = tip + 1
	}

	if endHeight > uint64(count) {
		startHeight = endHeight - uint64(count)
	} else {
		startHeight = 0
	}
	if startHeight < 1 {
		startHeight = 1
	}
	return startHeight, endHeight
}

// blockSinceRange computes the half-open (startHeight, endHeight] window for
// a "since" scan given the chain tip, the requested target height, and the
// page size.
func blockSinceRange(tip, target uint64, count int) (startHeight, endHeight uint64) {
	startHeight = target
	if tip+1 < startHeight {
		startHeight = tip + 1
	}
	endHeight = startHeight + uint64(count)
	return startHeight, endHeight
}

func blocksFrom(ctx context.Context, s *store.Store, target uint64, count int) ([]*indexer.Block, error) {
	tip, err := chainHeight(ctx, s)
	if err != nil {
		return nil, err
	}

	startHeight, endHeight := blockFromRange(tip, target, count)
	if endHeight <= startHeight {
		return []*indexer.Block{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE height >= ? AND height < ? ORDER BY height DESC LIMIT ?`,
		blockColumns(), s.Table(indexer.BlocksTableName))
	var rows []*indexer.Block
	if err := s.Select(ctx, &rows, query, startHeight, endHeight, count); err != nil {
		return nil, queryerr.Internal("blocks from-query failed", err)
	}
	return rows, nil
}

func blocksSince(ctx context.Context, s *store.Store, target uint64, count int) ([]*indexer.Block, error) {
	tip, err := chainHeight(ctx, s)
	if err != nil {
		return nil, err
	}

	startHeight, endHeight := blockSinceRange(tip, target, count)

	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE height > ? AND height <= ? ORDER BY height DESC LIMIT ?`,
		blockColumns(), s.Table(indexer.BlocksTableName))
	var rows []*indexer.Block
	if err := s.Select(ctx, &rows, query, startHeight, endHeight, count); err != nil {
		return nil, queryerr.Internal("blocks since-query failed", err)
	}
	return rows, nil
}
