package ratelimit

import (
	"net/http"
	"strings"
)

var unlimited = EndpointConfig{}

// MatchEndpoint returns the config for path and method, or nil when the
// default limit applies. GET /health is always unlimited. Exact paths win
// over prefix routes, and longer prefixes win over shorter ones.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		u := unlimited
		return &u
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
