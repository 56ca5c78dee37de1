package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/xutil/internal/config"
	"github.com/erraggy/xutil/internal/httpapi"
	"github.com/erraggy/xutil/internal/logging"
	"github.com/erraggy/xutil/internal/metrics"
)

// loadConfig resolves the configuration for cmd and installs the process
// logger, which writes to stderr.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(v, config.LoadOptions{
		ConfigFile: o.configFile,
		EnvFiles:   o.envFiles,
	})
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func addLogFlags(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	fs.String("log-format", d.Log.Format, "log format: text or json")
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP JSON API",
		Long: `Run the HTTP JSON API under /api until interrupted.

Settings come from flags, XUTIL_* environment variables (XUTIL_HTTP_ADDR,
XUTIL_LOG_LEVEL, ...), dotenv files and an optional config file, in that
order of precedence.`,
		Example: `  xutil serve
  xutil serve --addr 127.0.0.1:9000 --cors-origin https://example.com
  XUTIL_LOG_FORMAT=json xutil serve --metrics=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			serverOpts := []httpapi.Option{httpapi.WithLogger(logger)}
			if cfg.Metrics.Enabled {
				serverOpts = append(serverOpts, httpapi.WithMetrics(metrics.New()))
			}
			logger.Info("starting http server",
				"addr", cfg.HTTP.Addr,
				"metrics", cfg.Metrics.Enabled,
				"cors_origins", cfg.HTTP.CORSOrigins)
			return httpapi.New(cfg.HTTP, serverOpts...).ListenAndServe(cmd.Context())
		},
	}

	d := config.Default()
	fs := cmd.Flags()
	fs.String("addr", d.HTTP.Addr, "listen address")
	fs.Duration("read-timeout", d.HTTP.ReadTimeout, "request read timeout")
	fs.Duration("write-timeout", d.HTTP.WriteTimeout, "response write timeout")
	fs.Duration("shutdown-timeout", d.HTTP.ShutdownTimeout, "graceful shutdown timeout")
	fs.StringSlice("cors-origin", d.HTTP.CORSOrigins, "allowed CORS origin (repeatable)")
	fs.Int64("max-body-bytes", d.HTTP.MaxBodyBytes, "maximum request body size")
	fs.Bool("metrics", d.Metrics.Enabled, "serve Prometheus metrics at /metrics")
	addLogFlags(cmd)
	return cmd
}
