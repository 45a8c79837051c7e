package ratelimit

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/config"
)

// batchDivisor scales the per-client limit down for batch analysis, which
// runs many pipelines per request.
const batchDivisor = 10

// EndpointConfig is the limit applied to one method and path.
type EndpointConfig struct {
	Path   string // exact path, or a prefix when it ends with "/"
	Method string
	Limit  int // requests per window; 0 means unlimited
	Window time.Duration
	Burst  int // defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig builds the limiter configuration from the server config, then
// applies RATE_LIMIT_* environment overrides.
func LoadConfig(rl config.RateLimitConfig) (*Config, error) {
	window, err := rl.WindowDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window %q: %w", rl.Window, err)
	}

	enabled := getEnvBool("RATE_LIMIT_ENABLED", rl.Enabled)
	limit := getEnvInt("RATE_LIMIT_LIMIT", rl.Limit)
	window = getEnvDuration("RATE_LIMIT_WINDOW", window)
	if window <= 0 {
		window = time.Minute
	}

	return &Config{
		Enabled:         enabled && limit > 0,
		DefaultLimit:    limit,
		DefaultWindow:   window,
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTTL:         time.Hour,
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(limit, window),
	}, nil
}

// DefaultEndpointConfigs returns per-endpoint limits derived from the
// default limit. Health and metrics probes are never limited.
func DefaultEndpointConfigs(limit int, window time.Duration) []EndpointConfig {
	batchLimit := max(limit/batchDivisor, 1)
	return []EndpointConfig{
		{Path: "/health", Method: "GET"},
		{Path: "/metrics", Method: "GET"},
		{Path: "/analyze/batch", Method: "POST", Limit: batchLimit, Window: window, Burst: batchLimit},
		{Path: "/analyze", Method: "POST", Limit: limit, Window: window, Burst: limit},
	}
}

// MatchEndpoint returns the config for path and method, preferring exact
// matches over prefix matches, or nil when nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}
	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}
	return nil
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// parseIPList parses a comma-separated list of addresses into a set.
func parseIPList(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
