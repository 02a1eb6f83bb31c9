package indexer

import "time"

const (
	TransactionsTableName            = "transactions"
	TransactionsUnconfirmedTableName = "unconfirmed_transactions"
	TransactionsPartialTableName     = "partial_transactions"
)

// TransactionColumns defines the schema for the transactions table.
var TransactionColumns = []ColumnDef{
	{Name: "height", Type: "UInt64", Codec: "DoubleDelta, LZ4"},
	{Name: "idx", Type: "Int32", Codec: "Delta, ZSTD(3)"},
	{Name: "hash", Type: "String", Codec: "ZSTD(1)"},
	{Name: "id", Type: "FixedString(12)", Codec: "ZSTD(1)"},
	{Name: "aggregate_id", Type: "String", Codec: "ZSTD(1)"},
	{Name: "type", Type: "LowCardinality(String)"},
	{Name: "time", Type: "DateTime64(6)", Codec: "DoubleDelta, LZ4"},
	{Name: "signer", Type: "String", Codec: "ZSTD(1)"},
	{Name: "mosaic_ids", Type: "Array(String)", Codec: "ZSTD(1)"},
	{Name: "participants", Type: "Array(String)", Codec: "ZSTD(1)"},
	{Name: "payload", Type: "String", Codec: "ZSTD(3)"},
}

// Transaction is a row of the transactions/unconfirmedTransactions/
// partialTransactions families. Height+idx is the sort key, tie-broken by
// nothing further since idx is already unique within a height.
//
// A row with a non-empty AggregateID is an embedded inner transaction of
// some other row (its parent, identified by that AggregateID's own Hash);
// the timeline never returns these directly (spec.md §4.3 "Transactions"
// filters them out) — they are attached back onto their parent at
// serialization time via Inner.
type Transaction struct {
	Height       uint64    `ch:"height" json:"height"`
	Index        int32     `ch:"idx" json:"index"`
	Hash         string    `ch:"hash" json:"hash"`
	ID           string    `ch:"id" json:"id"`
	AggregateID  string    `ch:"aggregate_id" json:"-"`
	Type         string    `ch:"type" json:"type"`
	Time         time.Time `ch:"time" json:"time"`
	Signer       string    `ch:"signer" json:"signer"`
	MosaicIDs    []string  `ch:"mosaic_ids" json:"mosaicIds,omitempty"`
	Participants []string  `ch:"participants" json:"-"`
	Payload      string    `ch:"payload" json:"payload"`

	// Inner holds the embedded sub-transactions attached by aggregateId
	// after the main range query returns (§4.3 "Transactions"). It is
	// never a stored column.
	Inner []*Transaction `ch:"-" json:"innerTransactions,omitempty"`
}

// IsEmbedded reports whether this row is another transaction's inner
// transaction and should never be returned as a page's top-level row.
func (t *Transaction) IsEmbedded() bool {
	return t.AggregateID != ""
}
