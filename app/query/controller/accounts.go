package controller

import (
	"net/http"

	"github.com/chainscope/timeline/pkg/families"
	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/validate"
	"github.com/gorilla/mux"
)

var accountIdentifierShapes = []identifierShape{
	{key: "Base32Address", recognize: validate.IsBase32Address},
	{key: "Address", recognize: validate.IsHexAddress},
	{key: "PublicKey", recognize: validate.IsHexPublicKey},
}

func (c *Controller) handleAccountsRanked(w http.ResponseWriter, r *http.Request, field families.RankField, mosaicID string, tag family.Family) {
	params, ok := c.parseCommon(w, r)
	if !ok {
		return
	}

	isSentinel, sentinelBound := quantitySentinelShapes()
	entryName, isIdentifier, err := resolveEntry(params.Duration, params.Anchor, isSentinel, sentinelBound, accountIdentifierShapes)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	t := families.NewAccountsTimeline(c.App.Store, field, mosaicID)
	records, found, err := callTimeline(r.Context(), t, entryName, isIdentifier, params.Anchor, params.Count)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}
	if !found {
		writeNotFound(w)
		return
	}
	writePage(w, tag, records)
}

// HandleAccountsImportance serves the accounts-by-importance family.
func (c *Controller) HandleAccountsImportance(w http.ResponseWriter, r *http.Request) {
	c.handleAccountsRanked(w, r, families.RankImportance, "", family.AccountsImportance)
}

// HandleAccountsHarvested serves accounts-by-harvestedBlocks and
// accounts-by-harvestedFees, selected by the :which path segment.
func (c *Controller) HandleAccountsHarvested(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["which"] {
	case "blocks":
		c.handleAccountsRanked(w, r, families.RankHarvestedBlocks, "", family.AccountsHarvestedBlocks)
	case "fees":
		c.handleAccountsRanked(w, r, families.RankHarvestedFees, "", family.AccountsHarvestedFees)
	default:
		writeError(w, c.App.Logger, queryerr.InvalidArgument("unknown harvested variant: "+mux.Vars(r)["which"]))
	}
}

// accountsBalanceFamilies maps the :which route segment to its well-known
// alias namespace and response type tag.
var accountsBalanceFamilies = map[string]struct {
	alias string
	tag   family.Family
}{
	"currency": {alias: "currency", tag: family.AccountsBalanceCurrency},
	"harvest":  {alias: "harvest", tag: family.AccountsBalanceHarvest},
	"xem":      {alias: "xem", tag: family.AccountsBalanceXem},
}

// HandleAccountsBalance serves accounts-by-balance-in-{currency,harvest,
// xem}. The well-known alias must resolve to a mosaic id before the
// ranked query can run; an absent alias is the "undefined outcome" (404)
// per spec.md §4.3 "Accounts (all variants)".
func (c *Controller) HandleAccountsBalance(w http.ResponseWriter, r *http.Request) {
	which := mux.Vars(r)["which"]
	spec, ok := accountsBalanceFamilies[which]
	if !ok {
		writeError(w, c.App.Logger, queryerr.InvalidArgument("unknown balance variant: "+which))
		return
	}

	mosaicID, found, err := c.App.AliasCache.Resolve(r.Context(), spec.alias)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}
	if !found {
		writeNotFound(w)
		return
	}

	c.handleAccountsRanked(w, r, families.RankBalance, mosaicID, spec.tag)
}
