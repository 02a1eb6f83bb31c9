package controller

import (
	"strings"
	"testing"

	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEntrySentinelMin(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	entry, isID, err := resolveEntry(validate.DurationFrom, "min", isSentinel, sentinelBound, blockIdentifierShapes)
	require.NoError(t, err)
	assert.False(t, isID)
	assert.Equal(t, "fromMin", entry)
}

func TestResolveEntrySentinelMax(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	entry, isID, err := resolveEntry(validate.DurationSince, "latest", isSentinel, sentinelBound, blockIdentifierShapes)
	require.NoError(t, err)
	assert.False(t, isID)
	assert.Equal(t, "sinceMax", entry)
}

func TestResolveEntryIdentifierShape(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	hash := strings.Repeat("ab", 32)
	entry, isID, err := resolveEntry(validate.DurationFrom, hash, isSentinel, sentinelBound, blockIdentifierShapes)
	require.NoError(t, err)
	assert.True(t, isID)
	assert.Equal(t, "fromHash", entry)
}

func TestResolveEntryIntegerFallsThroughToHeightShape(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	entry, isID, err := resolveEntry(validate.DurationSince, "12345", isSentinel, sentinelBound, blockIdentifierShapes)
	require.NoError(t, err)
	assert.True(t, isID)
	assert.Equal(t, "sinceHeight", entry)
}

func TestResolveEntryUnrecognizedAnchorIsInvalidArgument(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	_, _, err := resolveEntry(validate.DurationFrom, "0X", isSentinel, sentinelBound, blockIdentifierShapes)
	require.Error(t, err)
	qerr, ok := queryerr.As(err)
	require.True(t, ok)
	assert.Equal(t, queryerr.ClassInvalidArgument, qerr.Class)
}

func TestNamespaceShapesPreferObjectIDOverName(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	objectID := "0102030405060708090a0b0c"
	entry, isID, err := resolveEntry(validate.DurationFrom, objectID, isSentinel, sentinelBound, namespaceIdentifierShapes)
	require.NoError(t, err)
	assert.True(t, isID)
	assert.Equal(t, "fromObjectID", entry)
}

func TestNamespaceShapesFallBackToNameForNonHex(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	entry, isID, err := resolveEntry(validate.DurationFrom, "nem.owner.mosaic", isSentinel, sentinelBound, namespaceIdentifierShapes)
	require.NoError(t, err)
	assert.True(t, isID)
	assert.Equal(t, "fromName", entry)
}

func TestNamespaceShapesPreferNamespaceIDOverObjectIDAndName(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	namespaceID := "0102030405060708"
	entry, isID, err := resolveEntry(validate.DurationFrom, namespaceID, isSentinel, sentinelBound, namespaceIdentifierShapes)
	require.NoError(t, err)
	assert.True(t, isID)
	assert.Equal(t, "fromNamespaceID", entry)
}

func TestNamespaceShapesRejectMalformedAnchor(t *testing.T) {
	isSentinel, sentinelBound := timeSentinelShapes()
	_, _, err := resolveEntry(validate.DurationFrom, "not a name!", isSentinel, sentinelBound, namespaceIdentifierShapes)
	require.Error(t, err)
	qerr, ok := queryerr.As(err)
	require.True(t, ok)
	assert.Equal(t, queryerr.ClassInvalidArgument, qerr.Class)
}

func TestAccountShapesUseQuantitySentinels(t *testing.T) {
	isSentinel, sentinelBound := quantitySentinelShapes()
	entry, isID, err := resolveEntry(validate.DurationFrom, "most", isSentinel, sentinelBound, accountIdentifierShapes)
	require.NoError(t, err)
	assert.False(t, isID)
	assert.Equal(t, "fromMax", entry)

	// "latest" is a time sentinel, not a quantity sentinel, and doesn't
	// match any account identifier shape either.
	_, _, err = resolveEntry(validate.DurationFrom, "latest", isSentinel, sentinelBound, accountIdentifierShapes)
	assert.Error(t, err)
}
