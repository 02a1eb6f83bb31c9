package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnDefSQLWithAndWithoutCodec(t *testing.T) {
	withCodec := ColumnDef{Name: "address", Type: "String", Codec: "ZSTD(1)"}
	assert.Equal(t, "address String CODEC(ZSTD(1))", withCodec.SQL())

	withoutCodec := ColumnDef{Name: "depth", Type: "UInt8"}
	assert.Equal(t, "depth UInt8", withoutCodec.SQL())
}

func TestColumnDefValidate(t *testing.T) {
	require.NoError(t, ColumnDef{Name: "a", Type: "String"}.Validate())
	assert.Error(t, ColumnDef{Type: "String"}.Validate())
	assert.Error(t, ColumnDef{Name: "a"}.Validate())
}

func TestColumnsToNameList(t *testing.T) {
	cols := []ColumnDef{{Name: "a"}, {Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, ColumnsToNameList(cols))
}

func TestValidateColumnsPropagatesFirstError(t *testing.T) {
	cols := []ColumnDef{{Name: "a", Type: "String"}, {Name: "", Type: "String"}}
	assert.Error(t, ValidateColumns(cols))
}

func TestRealSchemasAreValid(t *testing.T) {
	for _, cols := range [][]ColumnDef{BlockColumns, TransactionColumns, MosaicColumns, NamespaceColumns, AccountColumns, MultisigAccountColumns} {
		assert.NoError(t, ValidateColumns(cols))
	}
}

func TestTransactionIsEmbedded(t *testing.T) {
	assert.True(t, (&Transaction{AggregateID: "parent-hash"}).IsEmbedded())
	assert.False(t, (&Transaction{}).IsEmbedded())
}
