package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Document cache settings for file and URL inputs.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheSweepInterval time.Duration

	// MaxInputSize bounds inline content, files and fetched URLs.
	MaxInputSize int64
	// MaxIDs caps generate_ids count.
	MaxIDs int
	// PasswordLength is the generate_password default length.
	PasswordLength int
	// AllowPrivateIPs permits URL inputs that resolve to private addresses.
	AllowPrivateIPs bool

	// ListLimit is the default page size of list outputs; MaxLimit caps it.
	ListLimit int
	MaxLimit  int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from XUTIL_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("XUTIL_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("XUTIL_MCP_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("XUTIL_MCP_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("XUTIL_MCP_CACHE_URL_TTL", 5*time.Minute),
		CacheSweepInterval: envDuration("XUTIL_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInputSize:       int64(envInt("XUTIL_MCP_MAX_INPUT_SIZE", 10*1024*1024)),
		MaxIDs:             envInt("XUTIL_MCP_MAX_IDS", 100),
		PasswordLength:     envInt("XUTIL_MCP_PASSWORD_LENGTH", 16),
		AllowPrivateIPs:    envBool("XUTIL_MCP_ALLOW_PRIVATE_IPS", false),
		ListLimit:          envInt("XUTIL_MCP_LIST_LIMIT", 100),
		MaxLimit:           envInt("XUTIL_MCP_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
