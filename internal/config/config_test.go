package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), LoadOptions{})
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, &want, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("XUTIL_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("XUTIL_HTTP_READ_TIMEOUT", "2s")
	t.Setenv("XUTIL_HTTP_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("XUTIL_HTTP_MAX_BODY_BYTES", "1024")
	t.Setenv("XUTIL_LOG_LEVEL", "DEBUG")
	t.Setenv("XUTIL_METRICS_ENABLED", "false")

	cfg, err := Load(New(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, int64(1024), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xutil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":7000"
  shutdown_timeout: 1m
  cors_origins:
    - https://x.example
log:
  format: json
`), 0o600))

	cfg, err := Load(New(), LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, time.Minute, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"https://x.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvFile(t *testing.T) {
	const key = "XUTIL_LOG_FORMAT"
	require.Empty(t, os.Getenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=json\n"), 0o600))

	cfg, err := Load(New(), LoadOptions{EnvFiles: []string{filepath.Join(dir, "missing.env"), path}})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("XUTIL_HTTP_ADDR", ":1111")
	t.Setenv("XUTIL_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.String("addr", ":8000", "")
	fs.String("log-level", "info", "")
	fs.StringSlice("cors-origin", nil, "")
	fs.Bool("unrelated", false, "")
	require.NoError(t, fs.Parse([]string{"--addr", ":2222", "--cors-origin", "https://a.example,https://b.example"}))

	v := New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, ":2222", cfg.HTTP.Addr, "set flags win")
	assert.Equal(t, "warn", cfg.Log.Level, "unset flags fall through")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad duration", env: map[string]string{"XUTIL_HTTP_WRITE_TIMEOUT": "soon"}, wantErr: `invalid duration "soon"`},
		{name: "zero timeout", env: map[string]string{"XUTIL_HTTP_READ_TIMEOUT": "0s"}, wantErr: "http.read_timeout must be positive"},
		{name: "bad level", env: map[string]string{"XUTIL_LOG_LEVEL": "trace"}, wantErr: "log.level must be one of"},
		{name: "bad format", env: map[string]string{"XUTIL_LOG_FORMAT": "xml"}, wantErr: "log.format must be text or json"},
		{name: "negative body", env: map[string]string{"XUTIL_HTTP_MAX_BODY_BYTES": "-1"}, wantErr: "http.max_body_bytes must be positive"},
		{name: "empty addr", env: map[string]string{"XUTIL_HTTP_ADDR": " "}, wantErr: "http.addr must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New(), LoadOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(New(), LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}
