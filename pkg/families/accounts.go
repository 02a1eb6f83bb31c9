package families

import (
	"context"
	"fmt"
	"sort"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/db/store"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/timeline"
)

// RankField selects which pre-aggregated field an accounts Timeline sorts
// on (spec.md §4.3 "Accounts (all variants)").
type RankField int

const (
	RankImportance RankField = iota
	RankHarvestedBlocks
	RankHarvestedFees
	RankBalance
)

// rankOf computes the sort field's value for one account, resolving the
// balance variant against mosaicID (empty for the non-balance variants).
func rankOf(a *indexer.Account, field RankField, mosaicID string) uint64 {
	switch field {
	case RankImportance:
		return a.Importance()
	case RankHarvestedBlocks:
		return a.HarvestedBlocks()
	case RankHarvestedFees:
		return a.HarvestedFees()
	case RankBalance:
		return a.BalanceOf(mosaicID)
	default:
		return 0
	}
}

// NewAccountsTimeline builds an accounts Timeline ranked by field. For
// RankBalance, mosaicID must already be resolved (spec.md §9 "Balance
// families' dependency on aliases": if resolution fails the caller never
// builds this Timeline at all, it returns 404 directly).
//
// The sort key is (rankField, publicKeyHeight, id) descending — every
// account row is pulled in full and re-ranked at query time since the
// rank is a computed attribute, never a stored column (spec.md §9
// "Accounts ranking is computed, not stored").
func NewAccountsTimeline(s *store.Store, field RankField, mosaicID string) *timeline.Timeline[*indexer.Account] {
	t := timeline.New[*indexer.Account]()

	seedMin := func() []interface{} { return []interface{}{minU64, minU64, objectIDMinSeed()} }
	seedMax := func() []interface{} { return []interface{}{maxU64, maxU64, objectIDMaxSeed()} }

	storeFrom := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Account, error) {
		return accountsPage(ctx, s, field, mosaicID, args, true, count)
	}
	storeSince := func(ctx context.Context, args []interface{}, count int) ([]*indexer.Account, error) {
		return accountsPage(ctx, s, field, mosaicID, args, false, count)
	}
	t.AddAll(timeline.GenerateAbsoluteParameters(seedMin, seedMax, storeFrom, storeSince))

	extract := func(a *indexer.Account) []interface{} {
		return []interface{}{rankOf(a, field, mosaicID), a.PublicKeyHeight, a.ID}
	}

	lookupByBase32 := func(ctx context.Context, anchor string) (*indexer.Account, bool, error) {
		return accountByColumn(ctx, s, field, mosaicID, "address_base32", anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("Base32Address", lookupByBase32, extract, storeFrom, storeSince))

	lookupByAddress := func(ctx context.Context, anchor string) (*indexer.Account, bool, error) {
		return accountByColumn(ctx, s, field, mosaicID, "address", anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("Address", lookupByAddress, extract, storeFrom, storeSince))

	lookupByPublicKey := func(ctx context.Context, anchor string) (*indexer.Account, bool, error) {
		return accountByColumn(ctx, s, field, mosaicID, "public_key", anchor)
	}
	t.AddAll(timeline.GenerateIDParameters("PublicKey", lookupByPublicKey, extract, storeFrom, storeSince))

	return t
}

func accountColumns() string {
	return joinColumnNames(indexer.AccountColumns)
}

func accountByColumn(ctx context.Context, s *store.Store, field RankField, mosaicID string, column, value string) (*indexer.Account, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL WHERE %s = ? LIMIT 1`, accountColumns(), s.Table(indexer.AccountsTableName), column)
	var rows []*indexer.Account
	if err := s.Select(ctx, &rows, query, value); err != nil {
		return nil, false, queryerr.Internal("account lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	a := rows[0]
	a.Rank = rankOf(a, field, mosaicID)
	return a, true, nil
}

// accountsPage re-aggregates every account's rank field, applies the
// lexicographic range predicate against (rank, publicKeyHeight, id) in
// memory, sorts, and returns the page. Accounts are not partitioned by
// rank in storage, so this scans the full table rather than pushing the
// comparison down to SQL; the well-known account catalog for any single
// chain is small enough for this to be a full FINAL read per query.
func accountsPage(ctx context.Context, s *store.Store, field RankField, mosaicID string, anchor []interface{}, descendingFrom bool, count int) ([]*indexer.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s FINAL`, accountColumns(), s.Table(indexer.AccountsTableName))
	var all []*indexer.Account
	if err := s.Select(ctx, &all, query); err != nil {
		return nil, queryerr.Internal("accounts scan failed", err)
	}

	rank := anchor[0].(uint64)
	pkHeight := anchor[1].(uint64)
	id := anchor[2].(string)

	var filtered []*indexer.Account
	for _, a := range all {
		a.Rank = rankOf(a, field, mosaicID)
		if descendingFrom {
			if lessTuple(a.Rank, a.PublicKeyHeight, a.ID, rank, pkHeight, id) {
				filtered = append(filtered, a)
			}
		} else {
			if lessTuple(rank, pkHeight, id, a.Rank, a.PublicKeyHeight, a.ID) {
				filtered = append(filtered, a)
			}
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if descendingFrom {
			return lessTuple(filtered[j].Rank, filtered[j].PublicKeyHeight, filtered[j].ID, filtered[i].Rank, filtered[i].PublicKeyHeight, filtered[i].ID)
		}
		return lessTuple(filtered[i].Rank, filtered[i].PublicKeyHeight, filtered[i].ID, filtered[j].Rank, filtered[j].PublicKeyHeight, filtered[j].ID)
	})

	if len(filtered) > count {
		filtered = filtered[:count]
	}
	if !descendingFrom {
		// Since scans ascending then re-sorts descending for presentation,
		// matching every other family (pkg/rangequery's pattern).
		reversed := make([]*indexer.Account, len(filtered))
		for i, a := range filtered {
			reversed[len(filtered)-1-i] = a
		}
		filtered = reversed
	}
	return filtered, nil
}

func lessTuple(r1, h1 uint64, id1 string, r2, h2 uint64, id2 string) bool {
	if r1 != r2 {
		return r1 < r2
	}
	if h1 != h2 {
		return h1 < h2
	}
	return id1 < id2
}
