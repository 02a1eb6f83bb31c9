// Package families holds one query builder per entity family: blocks,
// transactions (plain / by-type / by-type-with-filter / unconfirmed /
// partial), mosaics, namespaces, and the accounts variants. Each builder
// wires a pkg/timeline.Timeline around its own collection name, sort key,
// tie-breakers, and pre-aggregation. Transactions, mosaics and namespaces
// build their range queries with pkg/rangequery; blocks use a direct height
// window and accounts compare their computed rank in memory.
package families

import (
	"strings"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/objectid"
)

// Composite sentinel tuples, per spec.md §9 "Composite sentinel tuples":
// explicit constants per key width, not computed from type metadata, so
// the range-predicate algebra stays total.
const (
	minU64 uint64 = 0
	maxU64 uint64 = 0xFFFF_FFFF_FFFF_FFFF
)

// objectIDSeed returns the (min, max) sentinel pair for the internal
// 12-byte id tie-breaker, as the raw bytes stored in the FixedString(12)
// id column — not its hex encoding — so it compares correctly against
// row values bound from the same column.
func objectIDMinSeed() string { return string(objectid.Min[:]) }
func objectIDMaxSeed() string { return string(objectid.Max[:]) }

// joinColumnNames renders a column list for a SELECT clause.
func joinColumnNames(columns []indexer.ColumnDef) string {
	return strings.Join(indexer.ColumnsToNameList(columns), ", ")
}
