package controller

import (
	"net/http"

	"github.com/chainscope/timeline/pkg/family"
	"github.com/chainscope/timeline/pkg/queryerr"
	"github.com/go-jose/go-jose/v4/json"
	"go.uber.org/zap"
)

// envelope is the response shape every route returns on success (spec.md
// §6 "all return JSON with a payload array and a type tag").
type envelope struct {
	Payload interface{}   `json:"payload"`
	Type    family.Family `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writePage writes the 200-with-payload response, including an empty
// page (spec.md §6 "200 OK ... on success (including empty page)").
func writePage(w http.ResponseWriter, f family.Family, payload interface{}) {
	writeJSON(w, http.StatusOK, envelope{Payload: payload, Type: f})
}

// writeRedirect emits the canonical-URL redirect used for out-of-range
// limits (spec.md §6 "302 Found").
func writeRedirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}

// writeNotFound emits the identifier-miss / missing-alias response.
func writeNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// writeConflict emits the invalid-anchor / dispatch-failure response
// (spec.md §7 "Invalid-argument ... surfaced as 409").
func writeConflict(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusConflict, map[string]string{"error": msg})
}

// writeError maps a queryerr.Error's class to its HTTP status and writes
// the response, logging internal errors since those are the only class
// this layer doesn't expect a client to trigger routinely.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	qerr, ok := queryerr.As(err)
	if !ok {
		logger.Error("unclassified query error", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch qerr.Class {
	case queryerr.ClassInvalidArgument:
		writeConflict(w, qerr.Msg)
	case queryerr.ClassNotFound:
		writeNotFound(w)
	case queryerr.ClassInternal:
		logger.Error("internal query error", zap.String("msg", qerr.Msg), zap.Error(qerr.Unwrap()))
		w.WriteHeader(http.StatusInternalServerError)
	default:
		logger.Error("unrecognized query error class", zap.Int("class", int(qerr.Class)))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
