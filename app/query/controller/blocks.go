package controller

import (
	"net/http"

	"github.com/chainscope/timeline/pkg/families"
	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/validate"
)

var blockIdentifierShapes = []identifierShape{
	{key: "Hash", recognize: validate.IsHexHash256},
	{key: "Height", recognize: validate.IsInteger},
}

func (c *Controller) HandleBlocks(w http.ResponseWriter, r *http.Request) {
	params, ok := c.parseCommon(w, r)
	if !ok {
		return
	}

	isSentinel, sentinelBound := timeSentinelShapes()
	entryName, isIdentifier, err := resolveEntry(params.Duration, params.Anchor, isSentinel, sentinelBound, blockIdentifierShapes)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	t := families.NewBlocksTimeline(c.App.Store)
	records, found, err := callTimeline(r.Context(), t, entryName, isIdentifier, params.Anchor, params.Count)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}
	if !found {
		writeNotFound(w)
		return
	}
	writePage(w, family.Blocks, records)
}
