package families

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/objectid"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/rangequery"
	"github.com/chainscope/timeline/pkg/timeline"
)

var namespaceSortColumns = []string{"start_height", "id"}

// NewNamespacesTimeline builds the Namespaces family's Timeline: composite
// sort key (StartHeight, ID) descending. Three identifier anchors are
// bound: the 8-byte namespace id ("NamespaceID", see namespaceByID), the
// internal 12-byte object id ("ObjectID"), and the dotted name ("Name",
// see namespaceByName).
func NewNamespacesTimeline(s *store.Store) *timeline.Timeline[*indexer.Namespace] {
	t := timeline.New[*indexer.Namespace]()

	seedMin := func() []interface{} { return []interface{}{minU64, objectIDMinSeed()} }
	seedMax := func() []interface{} { return []interface{}{maxU64, objectIDMaxSeed()} }

	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Namespace, error) {
		return namespacesQuery(ctx, s, args, rangequery.From, count)
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Namespace, error) {
		return namespacesQuery(ctx, s, args, rangequery.Since, count)
	}
	t.AddAll(timeline.GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	extract := func(n *indexer.Namespace) []interface{} { return []interface{}{n.StartHeight, n.ID} }

	lookupByID := func(ctx context.Context, anchor string) (*indexer.Namespace, bool, error) {
		return namespaceByID(ctx, s, anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("NamespaceID", lookupByID, extract, storeFrom, storeSince))

	lookupByObjectID := func(ctx context.Context, anchor string) (*indexer.Namespace, bool, error) {
		id, err := objectid.Parse(anchor)
		if err != nil {
			return nil, false, queryerr.InvalidArgument("malformed object id: " + anchor)
		}
		return namespaceByColumn(ctx, s, "id", string(id[:]))
	}
	t.AddAll(timeline.GenerateIDParameters("ObjectID", lookupByObjectID, extract, storeFrom, storeSince))

	lookupByName := func(ctx context.Context, anchor string) (*indexer.Namespace, bool, error) {
		return namespaceByName(ctx, s, anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("Name", lookupByName, extract, storeFrom, storeSince))

	return t
}

func namespaceColumns() string {
	return joinColumnNames(indexer.NamespaceColumns)
}

// namespaceByName resolves a dotted namespace name (e.g. "harvest" or
// "foo.bar") to its active row, ORing across whichever level the last
// segment can occupy.
func namespaceByName(ctx context.Context, s *store.Store, name string) (*indexer.Namespace, bool, error) {
	last := name
	if i := strings.LastIndex(name, "."); i != -1 {
		last = name[i+1:]
	}
	query := fmt.Sprintf(
		`SELECT %s FROM %s FINAL WHERE active = 1 AND (level0 = ? OR level1 = ? OR level2 = ?)`,
		namespaceColumns(), s.Table(indexer.NamespacesTableName),
	)
	var rows []*indexer.Namespace
	if err := s.Select(ctx, &rows, query, last, last, last); err != nil {
		return nil, false, queryerr.Internal("namespace lookup failed", err)
	}
	for _, row := range rows {
		if row.LevelName() == name {
			return row, true, nil
		}
	}
	return nil, false, nil
}

// namespaceByID resolves an 8-byte namespace id, which may occupy level0,
// level1, or level2 of the row depending on how deep that namespace sits
// (spec.md §4.3 "Mosaics / Namespaces"); the lookup ORs across all three
// levels with the matching depth, and requires the row be active.
func namespaceByID(ctx context.Context, s *store.Store, id string) (*indexer.Namespace, bool, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s FINAL WHERE active = 1 AND ((depth = 0 AND level0 = ?) OR (depth = 1 AND level1 = ?) OR (depth = 2 AND level2 = ?)) LIMIT 1`,
		namespaceColumns(), s.Table(indexer.NamespacesTableName),
	)
	var rows []*indexer.Namespace
	if err := s.Select(ctx, &rows, query, id, id, id); err != nil {
		return nil, false, queryerr.Internal("namespace lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

// namespaceByColumn resolves a namespace by an exact column match, used for
// the internal object-id identifier shape (spec.md §3 data model: object
// id is the second identifier anchor for namespaces).
func namespaceByColumn(ctx context.Context, s *store.Store, column, value string) (*indexer.Namespace, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE %s = ? LIMIT 1`, namespaceColumns(), s.Table(indexer.NamespacesTableName), column)
	var rows []*indexer.Namespace
	if err := s.Select(ctx, &rows, query, value); err != nil {
		return nil, false, queryerr.Internal("namespace lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

// ResolveWellKnownAlias resolves a well-known mosaic alias namespace
// (currency/harvest/xem) to its aliased mosaic id, used by the
// accounts-by-balance families (spec.md §9 "Balance families' dependency
// on aliases"). It always performs a live lookup; pkg/aliascache wraps
// this with a short-TTL cache.
func ResolveWellKnownAlias(ctx context.Context, s *store.Store, alias string) (string, bool, error) {
	ns, found, err := namespaceByName(ctx, s, alias)
	if err != nil {
		return "", false, err
	}
	if !found || ns.AliasMosaicID == "" {
		return "", false, nil
	}
	return ns.AliasMosaicID, true, nil
}

func namespacesQuery(ctx context.Context, s *store.Store, anchor []interface{}, dir rangequery.Direction, count int) ([]*indexer.Namespace, error) {
	q := rangequery.Build(namespaceColumns(), s.Table(indexer.NamespacesTableName), true, "", nil, namespaceSortColumns, anchor, dir, count)
	var rows []*indexer.Namespace
	if err := s.Select(ctx, &rows, q.SQL, q.Args...); err != nil {
		return nil, queryerr.Internal("namespaces query failed", err)
	}
	if q.NeedsReversal {
		rows = rangequery.Reverse(rows)
	}
	return rows, nil
}
