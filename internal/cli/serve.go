package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotlib/pkg/buildinfo"
	"github.com/matzehuels/plotlib/pkg/cache"
	"github.com/matzehuels/plotlib/pkg/observability"
	"github.com/matzehuels/plotlib/pkg/pipeline"
	"github.com/matzehuels/plotlib/pkg/server"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr        string
	redisAddr   string
	redisPrefix string
	noCache     bool
	timeout     time.Duration
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render server",
		Long: `Run an HTTP server that renders plot documents.

Endpoints:
  POST /v1/render   render a JSON or TOML document
  GET  /v1/themes   list theme presets
  GET  /v1/formats  list output formats
  POST /v1/ticks    compute axis ticks for a range
  GET  /healthz     health check

Artifacts are cached in Redis when --redis is set, otherwise on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, then "+server.DefaultAddr+")")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache")
	cmd.Flags().StringVar(&opts.redisPrefix, "redis-prefix", "", "Redis key prefix")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", server.DefaultTimeout, "per-request timeout")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)
	logger.Info("starting plotlib server", "version", buildinfo.Version, "commit", buildinfo.Commit, "built", buildinfo.Date)

	hooks := observability.NewLogHooks(logger)
	observability.SetRenderHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	var (
		ch   cache.Cache
		ping func(context.Context) error
		err  error
	)
	redisAddr := firstNonEmpty(opts.redisAddr, c.Config.Server.RedisAddr)
	switch {
	case opts.noCache:
		printWarning("Artifact cache disabled; every request renders")
		ch = cache.NewNullCache()
	case redisAddr != "":
		cfg := cache.DefaultRedisConfig()
		cfg.Addr = redisAddr
		cfg.KeyPrefix = firstNonEmpty(opts.redisPrefix, c.Config.Server.RedisPrefix, cfg.KeyPrefix)
		rc, err := cache.NewRedisCache(ctx, cfg)
		if err != nil {
			return err
		}
		ch, ping = rc, rc.Ping
		logger.Info("using redis cache", "addr", redisAddr, "prefix", cfg.KeyPrefix)
	default:
		ch, err = c.newCache(false)
		if err != nil {
			return err
		}
	}

	runner := pipeline.NewRunner(ch, versionKeyer(), logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:    firstNonEmpty(opts.addr, c.Config.Server.Addr),
		Runner:  runner,
		Logger:  logger,
		Timeout: opts.timeout,
		Ping:    ping,
	})
	return srv.ListenAndServe(ctx)
}
