package controller

import (
	"net/http"

	"github.com/chainscope/timeline/pkg/db/models/indexer"
	"github.com/chainscope/timeline/pkg/families"
	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/chainscope/timeline/pkg/validate"
	"github.com/gorilla/mux"
)

var transactionIdentifierShapes = []identifierShape{
	{key: "Hash", recognize: validate.IsHexHash256},
	{key: "ID", recognize: validate.IsHexObjectID},
}

func (c *Controller) handleTransactionsTable(w http.ResponseWriter, r *http.Request, table string, typeFilter string, tag family.Family) {
	params, ok := c.parseCommon(w, r)
	if !ok {
		return
	}

	isSentinel, sentinelBound := timeSentinelShapes()
	entryName, isIdentifier, err := resolveEntry(params.Duration, params.Anchor, isSentinel, sentinelBound, transactionIdentifierShapes)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	t := families.NewTransactionsTimeline(c.App.Store, table, typeFilter)
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

// HandleTransactions serves the plain confirmed-transactions family.
func (c *Controller) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	c.handleTransactionsTable(w, r, indexer.TransactionsTableName, "", family.Transactions)
}

// HandleUnconfirmedTransactions serves the unconfirmed-transactions family.
func (c *Controller) HandleUnconfirmedTransactions(w http.ResponseWriter, r *http.Request) {
	c.handleTransactionsTable(w, r, indexer.TransactionsUnconfirmedTableName, "", family.TransactionsUnconfirmed)
}

// HandlePartialTransactions serves the partial-transactions family.
func (c *Controller) HandlePartialTransactions(w http.ResponseWriter, r *http.Request) {
	c.handleTransactionsTable(w, r, indexer.TransactionsPartialTableName, "", family.TransactionsPartial)
}

// HandleTransactionsByType serves the transactions-by-type family: an
// equality predicate on the type discriminator (spec.md §4.3
// "Transactions-by-type").
func (c *Controller) HandleTransactionsByType(w http.ResponseWriter, r *http.Request) {
	txType := mux.Vars(r)["type"]
	c.handleTransactionsTable(w, r, indexer.TransactionsTableName, txType, family.Transactions)
}

// HandleTransactionsByTypeFilter serves the transactions-by-type-with-
// filter family, currently defined only for the transfer type (spec.md
// §4.3 "Transactions-by-type-with-filter").
func (c *Controller) HandleTransactionsByTypeFilter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	txType := vars["type"]
	if txType != "transfer" {
		writeError(w, c.App.Logger, queryerr.InvalidArgument("unknown type for filtered transactions: "+txType))
		return
	}

	filter, err := validate.ParseTransferFilter(vars["filter"])
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	params, ok := c.parseCommon(w, r)
	if !ok {
		return
	}

	isSentinel, sentinelBound := timeSentinelShapes()
	entryName, isIdentifier, err := resolveEntry(params.Duration, params.Anchor, isSentinel, sentinelBound, transactionIdentifierShapes)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}

	t := families.NewTransactionsByFilterTimeline(c.App.Store, txType, filter)
	records, found, err := callTimeline(r.Context(), t, entryName, isIdentifier, params.Anchor, params.Count)
	if err != nil {
		writeError(w, c.App.Logger, err)
		return
	}
	if !found {
		writeNotFound(w)
		return
	}
	writePage(w, family.Transactions, records)
}
