package families

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/objectid"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/rangequery"
	"github.com/chainscope/timeline/pkg/timeline"
	"github.com/chainscope/timeline/pkg/validate"
	"go.uber.org/zap"
)

var transactionSortColumns = []string{"height", "idx"}

// wellKnownNetworkMosaics is the set excluded by filter=mosaic: a
// transaction only qualifies if it carries a mosaic outside this set.
var wellKnownNetworkMosaics = map[string]bool{
	indexer.AliasCurrency: true,
	indexer.AliasHarvest:  true,
}

// NewTransactionsTimeline builds a Timeline over one of the three
// transactions tables (confirmed/unconfirmed/partial share the same
// schema and query shape). typeFilter, when non-empty, restricts every
// query to that type discriminator (spec.md §4.3 "Transactions-by-type").
func NewTransactionsTimeline(s *store.Store, table string, typeFilter string) *timeline.Timeline[*indexer.Transaction] {
	t := timeline.New[*indexer.Transaction]()

	// Sentinel args per spec.md §4.3 "Transactions": min = (minU64, -1),
	// max = (maxU64, 0), so any real (height, idx>=0) row sits strictly
	// between them regardless of typeFilter.
	seedMin := func() []interface{} { return []interface{}{minU64, int32(-1)} }
	seedMax := func() []interface{} { return []interface{}{maxU64, int32(0)} }

	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Transaction, error) {
		return transactionsQuery(ctx, s, table, typeFilter, "", args, rangequery.From, count)
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Transaction, error) {
		return transactionsQuery(ctx, s, table, typeFilter, "", args, rangequery.Since, count)
	}
	t.AddAll(timeline.GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	extract := func(tx *indexer.Transaction) []interface{} { return []interface{}{tx.Height, tx.Index} }

	lookupByHash := func(ctx context.Context, anchor string) (*indexer.Transaction, bool, error) {
		return transactionByColumn(ctx, s, table, "hash", anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("Hash", lookupByHash, extract, storeFrom, storeSince))

	lookupByID := func(ctx context.Context, anchor string) (*indexer.Transaction, bool, error) {
		id, err := objectid.Parse(anchor)
		if err != nil {
			return nil, false, queryerr.InvalidArgument("malformed object id: " + anchor)
		}
		return transactionByColumn(ctx, s, table, "id", string(id[:]))
	}
	t.AddAll(timeline.GenerateIDParameters("ID", lookupByID, extract, storeFrom, storeSince))

	return t
}

// NewTransactionsByFilterTimeline builds the transactions-by-type-with-
// filter Timeline (spec.md §4.3 "Transactions-by-type-with-filter"),
// currently defined only for the transfer type. filter selects the
// computed-field refinement applied on top of the type equality
// predicate.
func NewTransactionsByFilterTimeline(s *store.Store, transferType string, filter validate.TransferFilter) *timeline.Timeline[*indexer.Transaction] {
	t := timeline.New[*indexer.Transaction]()

	seedMin := func() []interface{} { return []interface{}{minU64, int32(-1)} }
	seedMax := func() []interface{} { return []interface{}{maxU64, int32(0)} }

	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Transaction, error) {
		return transactionsByFilterQuery(ctx, s, transferType, filter, args, rangequery.From, count)
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Transaction, error) {
		return transactionsByFilterQuery(ctx, s, transferType, filter, args, rangequery.Since, count)
	}
	t.AddAll(timeline.GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	extract := func(tx *indexer.Transaction) []interface{} { return []interface{}{tx.Height, tx.Index} }
	lookupByHash := func(ctx context.Context, anchor string) (*indexer.Transaction, bool, error) {
		return transactionByColumn(ctx, s, indexer.TransactionsTableName, "hash", anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("Hash", lookupByHash, extract, storeFrom, storeSince))

	lookupByID := func(ctx context.Context, anchor string) (*indexer.Transaction, bool, error) {
		id, err := objectid.Parse(anchor)
		if err != nil {
			return nil, false, queryerr.InvalidArgument("malformed object id: " + anchor)
		}
		return transactionByColumn(ctx, s, indexer.TransactionsTableName, "id", string(id[:]))
	}
	t.AddAll(timeline.GenerateIDParameters("ID", lookupByID, extract, storeFrom, storeSince))

	return t
}

func transactionColumns() string {
	return joinColumnNames(indexer.TransactionColumns)
}

func transactionByColumn(ctx context.Context, s *store.Store, table, column, value string) (*indexer.Transaction, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE %s = ? AND aggregate_id = '' LIMIT 1`,
		transactionColumns(), s.Table(table), column)
	var rows []*indexer.Transaction
	if err := s.Select(ctx, &rows, query, value); err != nil {
		return nil, false, queryerr.Internal("transaction lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	tx := rows[0]
	if err := attachInnerTransactions(ctx, s, table, []*indexer.Transaction{tx}); err != nil {
		return nil, false, err
	}
	return tx, true, nil
}

// transactionsQuery runs the range query and drops embedded rows (§4.3),
// then attaches each parent's inner transactions.
func transactionsQuery(ctx context.Context, s *store.Store, table, typeFilter, extraWhere string, anchor []interface{}, dir rangequery.Direction, count int) ([]*indexer.Transaction, error) {
	baseWhere := "aggregate_id = ''"
	var baseArgs []interface{}
	if typeFilter != "" {
		baseWhere += " AND type = ?"
		baseArgs = append(baseArgs, typeFilter)
	}
	if extraWhere != "" {
		baseWhere += " AND " + extraWhere
	}

	q := rangequery.Build(transactionColumns(), s.Table(table), true, baseWhere, baseArgs, transactionSortColumns, anchor, dir, count)
	var rows []*indexer.Transaction
	if err := s.Select(ctx, &rows, q.SQL, q.Args...); err != nil {
		return nil, queryerr.Internal("transactions query failed", err)
	}
	if q.NeedsReversal {
		rows = rangequery.Reverse(rows)
	}
	if err := attachInnerTransactions(ctx, s, table, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func transactionsByFilterQuery(ctx context.Context, s *store.Store, transferType string, filter validate.TransferFilter, anchor []interface{}, dir rangequery.Direction, count int) ([]*indexer.Transaction, error) {
	switch filter {
	case validate.FilterMosaic:
		rows, err := transactionsQuery(ctx, s, indexer.TransactionsTableName, transferType, "", anchor, dir, count)
		if err != nil {
			return nil, err
		}
		return filterByNonWellKnownMosaic(rows), nil
	case validate.FilterMultisig:
		return transactionsFilterMultisig(ctx, s, transferType, anchor, dir, count)
	default:
		return nil, queryerr.Internal(fmt.Sprintf("unknown transfer filter %q", filter), nil)
	}
}

// filterByNonWellKnownMosaic keeps only transactions that carry at least
// one attached mosaic id outside the well-known network mosaics
// (currency, harvest) — spec.md §4.3 filter=mosaic.
func filterByNonWellKnownMosaic(rows []*indexer.Transaction) []*indexer.Transaction {
	out := make([]*indexer.Transaction, 0, len(rows))
	for _, tx := range rows {
		for _, mosaicID := range tx.MosaicIDs {
			if !wellKnownNetworkMosaics[mosaicID] {
				out = append(out, tx)
				break
			}
		}
	}
	return out
}

// transactionsFilterMultisig keeps transactions whose participants
// include at least one address present in the multisig_accounts
// collection (spec.md §4.3 filter=multisig "left-joins ... keeps rows
// where the join yields >= 1 linked multisig account").
func transactionsFilterMultisig(ctx context.Context, s *store.Store, transferType string, anchor []interface{}, dir rangequery.Direction, count int) ([]*indexer.Transaction, error) {
	rows, err := transactionsQuery(ctx, s, indexer.TransactionsTableName, transferType, "", anchor, dir, count)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	participants := map[string]bool{}
	for _, tx := range rows {
		for _, addr := range tx.Participants {
			participants[addr] = true
		}
	}
	addrs := make([]string, 0, len(participants))
	for addr := range participants {
		addrs = append(addrs, addr)
	}

	query := fmt.Sprintf(`SELECT DISTINCT address FROM %s WHERE address IN ?`, s.Table(indexer.MultisigAccountsTableName))
	var multisig []indexer.MultisigAccount
	if err := s.Select(ctx, &multisig, query, addrs); err != nil {
		return nil, queryerr.Internal("multisig join failed", err)
	}
	linked := map[string]bool{}
	for _, m := range multisig {
		linked[m.Address] = true
	}

	out := make([]*indexer.Transaction, 0, len(rows))
	for _, tx := range rows {
		for _, addr := range tx.Participants {
			if linked[addr] {
				out = append(out, tx)
				break
			}
		}
	}
	return out, nil
}

// attachInnerTransactions batch-fetches each parent's embedded
// sub-transactions by aggregateId and attaches them to Inner. Parents are
// fanned out over a bounded worker pool since each attachment is its own
// round trip to the store. A failed attachment for one parent does not fail
// the page (spec.md §7): it is logged at Warn and that parent is returned
// with whatever Inner prefix it already had (nil, here, since the
// attachment never completed).
func attachInnerTransactions(ctx context.Context, s *store.Store, table string, parents []*indexer.Transaction) error {
	if len(parents) == 0 {
		return nil
	}

	pool := pond.NewPool(4)
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	for _, parent := range parents {
		parent := parent
		group.Submit(func() {
			if err := groupCtx.Err(); err != nil {
				return
			}
			inner, err := innerTransactionsFor(groupCtx, s, table, parent.Hash)
			if err != nil {
				if s.Logger != nil {
					s.Logger.Warn("inner transaction attachment failed, returning parent with known prefix",
						zap.String("table", table), zap.String("aggregateHash", parent.Hash), zap.Error(err))
				}
				return
			}
			parent.Inner = inner
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		return err
	}
	return nil
}

func innerTransactionsFor(ctx context.Context, s *store.Store, table, aggregateHash string) ([]*indexer.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE aggregate_id = ? ORDER BY idx ASC`,
		transactionColumns(), s.Table(table))
	var rows []*indexer.Transaction
	if err := s.Select(ctx, &rows, query, aggregateHash); err != nil {
		return nil, queryerr.Internal("inner transaction fetch failed", err)
	}
	return rows, nil
}
