package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/chainscope/timeline/pkg/utils"
)

// limitConfig bounds the :limit path segment (spec.md §6 "Configuration
// options": pageSize / countRange). Values are read once at process
// startup; the timeline engine never mutates them.
type limitConfig struct {
	Min     int
	Max     int
	Preset  int
}

func loadLimitConfig() limitConfig {
	return limitConfig{
		Min:    utils.EnvInt("PAGE_SIZE_MIN", 1),
		Max:    utils.EnvInt("PAGE_SIZE_MAX", 100),
		Preset: utils.EnvInt("PAGE_SIZE_DEFAULT", 25),
	}
}

// inRange reports whether limit falls within [Min, Max].
func (c limitConfig) inRange(limit int) bool {
	return limit >= c.Min && limit <= c.Max
}

// canonicalRedirectURL rebuilds r's URL with its trailing "limit/<n>"
// segment replaced by the configured preset (spec.md §4.4 step 2:
// "emits an HTTP redirect to the same route with limit replaced by the
// preset default").
func canonicalRedirectURL(r *http.Request, preset int) string {
	path := r.URL.Path
	idx := strings.LastIndex(path, "/limit/")
	if idx == -1 {
		return path
	}
	newPath := fmt.Sprintf("%s/limit/%d", path[:idx], preset)
	u := url.URL{Path: newPath, RawQuery: r.URL.RawQuery}
	return u.String()
}
