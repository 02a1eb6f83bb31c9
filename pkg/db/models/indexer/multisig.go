package indexer

// MultisigAccountsTableName is the collection the transactions-by-type-
// with-filter=multisig query joins participants against.
const MultisigAccountsTableName = "multisig_accounts"

// MultisigAccountColumns defines the schema for the multisig_accounts
// table: one row per address known to be a multisig cosignatory or
// multisig account at some point in the chain's history.
var MultisigAccountColumns = []ColumnDef{
	{Name: "address", Type: "String", Codec: "ZSTD(1)"},
	{Name: "start_height", Type: "UInt64", Codec: "DoubleDelta, LZ4"},
}

// MultisigAccount is a row of the multisig_accounts table.
type MultisigAccount struct {
	Address     string `ch:"address" json:"address"`
	StartHeight uint64 `ch:"start_height" json:"startHeight"`
}
