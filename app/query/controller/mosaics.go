package controller

import (
	"net/http"

	"github.com/chainscope/timeline/pkg/families"
	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/validate"
)

var mosaicIdentifierShapes = []identifierShape{
	{key: "MosaicID", recognize: validate.IsHexMosaicID},
}

func (c *Controller) HandleMosaics(w http.ResponseWriter, r *http.Request) {
	params, ok := c.parseCommon(w, r)
	if !ok {
		return
	}

	isSentinel, sentinelBound := timeSentinelShapes()
	entryName, isIdentifier, err := resolveEntry(params.Duration, params.Anchor, isSentinel, sentinelBound, mosaicIdentifierShapes)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	t := families.NewMosaicsTimeline(c.App.Store)
	records, found, err := callTimeline(r.Context(), t, entryName, isIdentifier, params.Anchor, params.Count)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}
	if !found {
		writeNotFound(w)
		return
	}
	writePage(w, family.Mosaics, records)
}
