package ratelimit

import (
	"net/http"
	"strings"
	"time"
)

// EndpointConfig is the limit for one route. A Path ending in "/" matches
// every path under it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; zero means unlimited
	Window time.Duration
	Burst  int           // bucket capacity, Limit when zero
}

// key groups requests into one bucket: every path under a prefix route
// shares the route's bucket.
func (e *EndpointConfig) key(path string) string {
	if e.Path != "" {
		return e.Path
	}
	return path
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Defaults for routes without an endpoint config.
const (
	DefaultLimit           = 1000
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
)

// DefaultConfig enables limiting with the default limit and the generation
// route limits from GenerationEndpoints(30, time.Minute, 5).
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    DefaultLimit,
		DefaultWindow:   DefaultWindow,
		CleanupInterval: DefaultCleanupInterval,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: GenerationEndpoints(30, time.Minute, 5),
	}
}

// GenerationEndpoints limits the routes that call the generation provider.
// Reads fall back to the default limit and /health is never limited.
func GenerationEndpoints(limit int, window time.Duration, burst int) []EndpointConfig {
	routes := []string{"/upload-resume", "/ingest-url", "/interviews/", "/submit-interview", "/score"}
	configs := make([]EndpointConfig, 0, len(routes))
	for _, path := range routes {
		configs = append(configs, EndpointConfig{
			Path:   path,
			Method: http.MethodPost,
			Limit:  limit,
			Window: window,
			Burst:  burst,
		})
	}
	return configs
}

// ParseIPList turns addresses into a lookup set, skipping blanks. Entries
// may themselves be comma-separated.
func ParseIPList(entries []string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range entries {
		for _, ip := range strings.Split(entry, ",") {
			if ip = strings.TrimSpace(ip); ip != "" {
				set[ip] = true
			}
		}
	}
	return set
}
