// Package config loads xutil settings from defaults, an optional config
// file, .env files, XUTIL_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable; "http.addr" is read from
// XUTIL_HTTP_ADDR.
const EnvPrefix = "XUTIL"

// Keys understood by Load.
const (
	KeyHTTPAddr            = "http.addr"
	KeyHTTPReadTimeout     = "http.read_timeout"
	KeyHTTPWriteTimeout    = "http.write_timeout"
	KeyHTTPShutdownTimeout = "http.shutdown_timeout"
	KeyHTTPCORSOrigins     = "http.cors_origins"
	KeyHTTPMaxBodyBytes    = "http.max_body_bytes"
	KeyLogLevel            = "log.level"
	KeyLogFormat           = "log.format"
	KeyMetricsEnabled      = "metrics.enabled"
)

// Config is the resolved configuration.
type Config struct {
	HTTP    HTTP    `json:"http" yaml:"http"`
	Log     Log     `json:"log" yaml:"log"`
	Metrics Metrics `json:"metrics" yaml:"metrics"`
}

// HTTP configures the API server.
type HTTP struct {
	Addr            string        `json:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	CORSOrigins     []string      `json:"cors_origins" yaml:"cors_origins"`
	MaxBodyBytes    int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// Log configures the process logger.
type Log struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:            ":8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"http://localhost:5173"},
			MaxBodyBytes:    10 << 20,
		},
		Log:     Log{Level: "info", Format: "text"},
		Metrics: Metrics{Enabled: true},
	}
}

// New returns a viper instance carrying the defaults and bound to the
// XUTIL_* environment.
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyHTTPAddr, d.HTTP.Addr)
	v.SetDefault(KeyHTTPReadTimeout, d.HTTP.ReadTimeout.String())
	v.SetDefault(KeyHTTPWriteTimeout, d.HTTP.WriteTimeout.String())
	v.SetDefault(KeyHTTPShutdownTimeout, d.HTTP.ShutdownTimeout.String())
	v.SetDefault(KeyHTTPCORSOrigins, d.HTTP.CORSOrigins)
	v.SetDefault(KeyHTTPMaxBodyBytes, d.HTTP.MaxBodyBytes)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyMetricsEnabled, d.Metrics.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"addr":             KeyHTTPAddr,
	"read-timeout":     KeyHTTPReadTimeout,
	"write-timeout":    KeyHTTPWriteTimeout,
	"shutdown-timeout": KeyHTTPShutdownTimeout,
	"cors-origin":      KeyHTTPCORSOrigins,
	"max-body-bytes":   KeyHTTPMaxBodyBytes,
	"log-level":        KeyLogLevel,
	"log-format":       KeyLogFormat,
	"metrics":          KeyMetricsEnabled,
}

// BindFlags binds every flag in fs that has a config key. A flag only
// overrides lower layers when it was set on the command line.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			errs = append(errs, v.BindPFlag(key, f))
		}
	})
	return errors.Join(errs...)
}

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	// ConfigFile is a YAML, JSON or TOML file. Empty means none.
	ConfigFile string
	// EnvFiles are dotenv files. Missing files are skipped. Variables that
	// are already set in the environment are not overwritten.
	EnvFiles []string
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	for _, f := range opts.EnvFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
		slog.Debug("loaded env file", "path", f)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", opts.ConfigFile, err)
		}
	}

	var errs []error
	duration := func(key string) time.Duration {
		raw := strings.TrimSpace(v.GetString(key))
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		}
		return d
	}

	cfg := &Config{
		HTTP: HTTP{
			Addr:            strings.TrimSpace(v.GetString(KeyHTTPAddr)),
			ReadTimeout:     duration(KeyHTTPReadTimeout),
			WriteTimeout:    duration(KeyHTTPWriteTimeout),
			ShutdownTimeout: duration(KeyHTTPShutdownTimeout),
			CORSOrigins:     list(v.Get(KeyHTTPCORSOrigins)),
			MaxBodyBytes:    v.GetInt64(KeyHTTPMaxBodyBytes),
		},
		Log: Log{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		},
		Metrics: Metrics{Enabled: v.GetBool(KeyMetricsEnabled)},
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// list accepts a sequence from a config file or a comma-separated string
// from the environment or a flag.
func list(raw any) []string {
	var parts []string
	switch t := raw.(type) {
	case string:
		parts = strings.Split(t, ",")
	case []string:
		parts = t
	case []any:
		for _, p := range t {
			parts = append(parts, fmt.Sprint(p))
		}
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		// pflag string slices arrive as "[a,b]" through viper.
		p = strings.Trim(strings.TrimSpace(p), "[]")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr must not be empty"))
	}
	for key, d := range map[string]time.Duration{
		KeyHTTPReadTimeout:     c.HTTP.ReadTimeout,
		KeyHTTPWriteTimeout:    c.HTTP.WriteTimeout,
		KeyHTTPShutdownTimeout: c.HTTP.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", key, d))
		}
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", KeyHTTPMaxBodyBytes, c.HTTP.MaxBodyBytes))
	}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("%s must be one of debug, info, warn, error; got %q", KeyLogLevel, c.Log.Level))
	}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
