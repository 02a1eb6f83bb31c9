package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelNameJoinsNonEmptyLevels(t *testing.T) {
	n := &Namespace{Level0: "nem"}
	assert.Equal(t, "nem", n.LevelName())

	n = &Namespace{Level0: "nem", Level1: "owner"}
	assert.Equal(t, "nem.owner", n.LevelName())

	n = &Namespace{Level0: "nem", Level1: "owner", Level2: "mosaic"}
	assert.Equal(t, "nem.owner.mosaic", n.LevelName())
}

func TestIsActive(t *testing.T) {
	assert.True(t, (&Namespace{Active: 1}).IsActive())
	assert.False(t, (&Namespace{Active: 0}).IsActive())
}

func TestWellKnownAliasConstants(t *testing.T) {
	assert.Equal(t, "currency", AliasCurrency)
	assert.Equal(t, "harvest", AliasHarvest)
	assert.Equal(t, "xem", AliasXem)
}
