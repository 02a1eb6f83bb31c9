package indexer

// NamespacesTableName is the collection backing the Namespaces family.
const NamespacesTableName = "namespaces"

// NamespaceColumns defines the schema for the namespaces table. A
// namespace id may appear at level0, level1, or level2 of the row
// (spec.md §4.3 "Mosaics / Namespaces"); the id lookup ORs across all
// three, and requires the row's Active flag.
var NamespaceColumns = []ColumnDef{
	{Name: "start_height", Type: "UInt64", Codec: "DoubleDelta, LZ4"},
	{Name: "id", Type: "FixedString(12)", Codec: "ZSTD(1)"},
	{Name: "level0", Type: "String", Codec: "ZSTD(1)"},
	{Name: "level1", Type: "String", Codec: "ZSTD(1)"},
	{Name: "level2", Type: "String", Codec: "ZSTD(1)"},
	{Name: "depth", Type: "UInt8"},
	{Name: "owner", Type: "String", Codec: "ZSTD(1)"},
	{Name: "alias_mosaic_id", Type: "String", Codec: "ZSTD(1)"},
	{Name: "active", Type: "UInt8"},
}

// Namespace is a row of the Namespaces family: composite sort key
// (StartHeight, ID). AliasMosaicID is empty unless this namespace is
// aliased to a mosaic (needed by the well-known alias resolution used by
// the accounts-by-balance families).
type Namespace struct {
	StartHeight   uint64 `ch:"start_height" json:"startHeight"`
	ID            string `ch:"id" json:"id"`
	Level0        string `ch:"level0" json:"level0"`
	Level1        string `ch:"level1" json:"level1,omitempty"`
	Level2        string `ch:"level2" json:"level2,omitempty"`
	Depth         uint8  `ch:"depth" json:"depth"`
	Owner         string `ch:"owner" json:"owner"`
	AliasMosaicID string `ch:"alias_mosaic_id" json:"aliasMosaicId,omitempty"`
	Active        uint8  `ch:"active" json:"-"`
}

// LevelName returns the fully qualified name for this namespace, joining
// non-empty levels with a dot, matching the conventional
// currency/harvest/xem well-known alias spellings.
func (n *Namespace) LevelName() string {
	name := n.Level0
	if n.Level1 != "" {
		name += "." + n.Level1
	}
	if n.Level2 != "" {
		name += "." + n.Level2
	}
	return name
}

// IsActive reports whether this namespace row is the active one at its
// depth (spec.md §4.3: the id lookup "must additionally require the row
// be active").
func (n *Namespace) IsActive() bool {
	return n.Active != 0
}

// WellKnownAliases are the namespace names the accounts-by-balance
// families resolve to a mosaic id (spec.md §4.3 "Accounts", §9 "Balance
// families' dependency on aliases").
const (
	AliasCurrency = "currency"
	AliasHarvest  = "harvest"
	AliasXem      = "xem"
)
