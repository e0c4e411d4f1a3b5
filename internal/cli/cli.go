// Package cli implements the plotlib command-line interface.
//
// Commands:
//   - render: render plot documents to PNG, JPEG, SVG or PDF
//   - show: open a document in an interactive window
//   - themes: list theme presets or pick one interactively
//   - ticks: print the axis ticks chosen for a data range
//   - demo: write a gallery of example charts
//   - serve: run the HTTP render server
//   - cache: manage the artifact cache
//
// All commands accept --verbose (-v) for debug logging and --config to
// point at a config file other than $XDG_CONFIG_HOME/plotlib/config.toml.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotlib/pkg/buildinfo"
	"github.com/matzehuels/plotlib/pkg/cache"
	"github.com/matzehuels/plotlib/pkg/pipeline"
)

// appName names the config and cache directories.
const appName = "plotlib"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger     *log.Logger
	Config     Config
	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "plotlib renders line and scatter charts",
		Long:          `plotlib renders line and scatter charts from TOML or JSON plot documents to PNG, JPEG, SVG and PDF, or shows them in a window.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := LoadConfig(c.configFile())
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Logger.Debug("build info", "info", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/plotlib/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.ticksCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configFile returns the --config path or the default location.
func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return defaultConfigPath()
}

// newRunner creates a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, versionKeyer(), c.Logger), nil
}

// versionKeyer scopes artifact keys by release so an upgraded renderer
// never serves artifacts drawn by an older one.
func versionKeyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, buildinfo.Version+":")
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching in memory", "err", err)
		return cache.NewMemoryCache(memoryCacheEntries), nil
	}
	return cache.NewFileCache(dir)
}

// memoryCacheEntries bounds the fallback cache used without a cache dir.
const memoryCacheEntries = 256

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/plotlib).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
