package indexer

// MosaicsTableName is the collection backing the Mosaics family.
const MosaicsTableName = "mosaics"

// MosaicColumns defines the schema for the mosaics table.
var MosaicColumns = []ColumnDef{
	{Name: "start_height", Type: "UInt64", Codec: "DoubleDelta, LZ4"},
	{Name: "id", Type: "FixedString(12)", Codec: "ZSTD(1)"},
	{Name: "mosaic_id", Type: "String", Codec: "ZSTD(1)"},
	{Name: "owner", Type: "String", Codec: "ZSTD(1)"},
	{Name: "supply", Type: "UInt64", Codec: "Delta, ZSTD(3)"},
	{Name: "divisibility", Type: "UInt8"},
}

// Mosaic is a row of the Mosaics family: composite sort key
// (StartHeight, ID), identifier anchor is the 8-byte MosaicID.
type Mosaic struct {
	StartHeight  uint64 `ch:"start_height" json:"startHeight"`
	ID           string `ch:"id" json:"id"`
	MosaicID     string `ch:"mosaic_id" json:"mosaicId"`
	Owner        string `ch:"owner" json:"owner"`
	Supply       uint64 `ch:"supply" json:"supply"`
	Divisibility uint8  `ch:"divisibility" json:"divisibility"`
}
