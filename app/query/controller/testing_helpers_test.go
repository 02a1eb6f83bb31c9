package controller

import (
	"net/http"

	"github.com/gorilla/mux"
)

// muxSetVars stamps route variables onto a request the way gorilla/mux's
// router would after a successful match, so handler-level tests can call
// c.parseCommon without spinning up a real router.
func muxSetVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}
