package indexer

const AccountsTableName = "accounts"

// AccountColumns defines the schema for the accounts table.
var AccountColumns = []ColumnDef{
	{Name: "address", Type: "String", Codec: "ZSTD(1)"},
	{Name: "address_base32", Type: "String", Codec: "ZSTD(1)"},
	{Name: "public_key", Type: "String", Codec: "ZSTD(1)"},
	{Name: "id", Type: "FixedString(12)", Codec: "ZSTD(1)"},
	{Name: "public_key_height", Type: "UInt64", Codec: "DoubleDelta, LZ4"},
	{Name: "importances", Type: "Array(UInt64)", Codec: "ZSTD(1)"},
	{Name: "activity_buckets.height", Type: "Array(UInt64)", Codec: "ZSTD(1)"},
	{Name: "activity_buckets.total_fees_paid", Type: "Array(UInt64)", Codec: "ZSTD(1)"},
	{Name: "mosaics.id", Type: "Array(String)", Codec: "ZSTD(1)"},
	{Name: "mosaics.amount", Type: "Array(UInt64)", Codec: "ZSTD(1)"},
}

// ActivityBucket is one harvested-block entry contributing to both the
// harvestedBlocks (cardinality) and harvestedFees (sum) pre-aggregations.
type ActivityBucket struct {
	Height        uint64 `json:"height"`
	TotalFeesPaid uint64 `json:"totalFeesPaid"`
}

// MosaicBalance is one entry of an account's per-mosaic balance,
// contributing to the balance-in-mosaic-M pre-aggregation.
type MosaicBalance struct {
	ID     string `json:"id"`
	Amount uint64 `json:"amount"`
}

// Account carries the raw sub-arrays every accounts-family sort field is
// pre-aggregated from at query time (spec.md §4.3 "Accounts"): the
// balance/harvest-derived field is an ephemeral computed attribute,
// recomputed per query and projected away after sorting — never a stored
// column of its own.
type Account struct {
	Address         string   `ch:"address" json:"address"`
	AddressBase32   string   `ch:"address_base32" json:"addressBase32"`
	PublicKey       string   `ch:"public_key" json:"publicKey"`
	ID              string   `ch:"id" json:"id"`
	PublicKeyHeight uint64   `ch:"public_key_height" json:"publicKeyHeight"`
	Importances     []uint64 `ch:"importances" json:"-"`

	ActivityBucketHeights        []uint64 `ch:"activity_buckets.height" json:"-"`
	ActivityBucketTotalFeesPaid  []uint64 `ch:"activity_buckets.total_fees_paid" json:"-"`

	MosaicIDs     []string `ch:"mosaics.id" json:"-"`
	MosaicAmounts []uint64 `ch:"mosaics.amount" json:"-"`

	// Rank is the resolved value of whichever field this query's family
	// sorted by (importance / harvestedBlocks / harvestedFees / balance).
	// It is computed by pkg/families, not the store, and always the last
	// thing attached before serialization.
	Rank uint64 `ch:"-" json:"rank"`
}

// Importance returns the last entry of Importances, or 0 if empty
// (spec.md §4.3 "Accounts").
func (a *Account) Importance() uint64 {
	if len(a.Importances) == 0 {
		return 0
	}
	return a.Importances[len(a.Importances)-1]
}

// HarvestedBlocks returns the cardinality of the account's activity
// buckets.
func (a *Account) HarvestedBlocks() uint64 {
	return uint64(len(a.ActivityBucketHeights))
}

// HarvestedFees returns the sum of totalFeesPaid over the account's
// activity buckets.
func (a *Account) HarvestedFees() uint64 {
	var sum uint64
	for _, fees := range a.ActivityBucketTotalFeesPaid {
		sum += fees
	}
	return sum
}

// BalanceOf returns the sum of amounts held in mosaic id M, or 0 if the
// account holds none.
func (a *Account) BalanceOf(mosaicID string) uint64 {
	var sum uint64
	for i, id := range a.MosaicIDs {
		if id == mosaicID {
			sum += a.MosaicAmounts[i]
		}
	}
	return sum
}
