package controller

import (
	"net/http"

	"github.com/chainscope/timeline/pkg/families"
	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/validate"
)

// Namespace identifiers are tried strict-shape-first, matching spec.md
// §4.3's "for namespaces, namespace-id → object-id" priority: the 8-byte
// namespace id first, then the internal 12-byte object id, then the
// dotted-name lookup as a fallback addition.
var namespaceIdentifierShapes = []identifierShape{
	{key: "NamespaceID", recognize: validate.IsHexNamespaceID},
	{key: "ObjectID", recognize: validate.IsHexObjectID},
	{key: "Name", recognize: validate.IsNamespaceName},
}

func (c *Controller) HandleNamespaces(w http.ResponseWriter, r *http.Request) {
	params, ok := c.parseCommon(w, r)
	if !ok {
		return
	}

	isSentinel, sentinelBound := timeSentinelShapes()
	entryName, isIdentifier, err := resolveEntry(params.Duration, params.Anchor, isSentinel, sentinelBound, namespaceIdentifierShapes)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	t := families.NewNamespacesTimeline(c.App.Store)
	records, found, err := callTimeline(r.Context(), t, entryName, isIdentifier, params.Anchor, params.Count)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}
	if !found {
		writeNotFound(w)
		return
	}
	writePage(w, family.Namespaces, records)
}
