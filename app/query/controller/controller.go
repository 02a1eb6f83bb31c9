package controller

import (
	"net/http"
	"strconv"

	"github.com/chainscope/timeline/app/query/types"
	"github.com/chainscope/timeline/pkg/validate"
	"github.com/gorilla/mux"
)

// Controller holds the app dependencies and the limit bounds every route
// enforces.
type Controller struct {
	App    *types.App
	Limits limitConfig
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App:    app,
		Limits: loadLimitConfig(),
	}
}

// NewRouter returns a new router with every route from spec.md §6's
// grammar registered.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()

	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods("GET")

	r.HandleFunc("/blocks/{duration}/{anchor}/limit/{limit}", c.HandleBlocks).Methods("GET")

	r.HandleFunc("/transactions/{duration}/{anchor}/type/{type}/filter/{filter}/limit/{limit}", c.HandleTransactionsByTypeFilter).Methods("GET")
	r.HandleFunc("/transactions/{duration}/{anchor}/type/{type}/limit/{limit}", c.HandleTransactionsByType).Methods("GET")
	r.HandleFunc("/transactions/unconfirmed/{duration}/{anchor}/limit/{limit}", c.HandleUnconfirmedTransactions).Methods("GET")
	r.HandleFunc("/transactions/partial/{duration}/{anchor}/limit/{limit}", c.HandlePartialTransactions).Methods("GET")
	r.HandleFunc("/transactions/{duration}/{anchor}/limit/{limit}", c.HandleTransactions).Methods("GET")

	r.HandleFunc("/mosaics/{duration}/{anchor}/limit/{limit}", c.HandleMosaics).Methods("GET")
	r.HandleFunc("/namespaces/{duration}/{anchor}/limit/{limit}", c.HandleNamespaces).Methods("GET")

	r.HandleFunc("/accounts/importance/{duration}/{anchor}/limit/{limit}", c.HandleAccountsImportance).Methods("GET")
	r.HandleFunc("/accounts/harvested/{which}/{duration}/{anchor}/limit/{limit}", c.HandleAccountsHarvested).Methods("GET")
	r.HandleFunc("/accounts/balance/{which}/{duration}/{anchor}/limit/{limit}", c.HandleAccountsBalance).Methods("GET")

	return r, nil
}

// requestParams is what every family handler needs after the shared
// parse/sanitize prologue.
type requestParams struct {
	Duration validate.Duration
	Anchor   string
	Count    int
}

// parseCommon validates :duration and applies the :limit range check
// (spec.md §4.4 steps 1-2). ok=false means the response has already been
// written (either a 409 or a 302) and the handler must return
// immediately.
func (c *Controller) parseCommon(w http.ResponseWriter, r *http.Request) (requestParams, bool) {
	vars := mux.Vars(r)

	duration, err := validate.ParseDuration(vars["duration"])
	if err != nil {
		writeConflict(w, err.Error())
		return requestParams{}, false
	}

	limit, err := strconv.Atoi(vars["limit"])
	if err != nil || limit < 0 {
		writeConflict(w, "invalid limit: "+vars["limit"])
		return requestParams{}, false
	}

	if !c.Limits.inRange(limit) {
		writeRedirect(w, r, canonicalRedirectURL(r, c.Limits.Preset))
		return requestParams{}, false
	}

	return requestParams{Duration: duration, Anchor: vars["anchor"], Count: limit}, true
}
