package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/server"
	"github.com/matzehuels/plotlib/pkg/theme"
)

// Config is the user configuration file. Command-line flags override it.
//
//	theme   = "paper"
//	width   = 1024
//	height  = 768
//	formats = ["svg", "png"]
//
//	[cache]
//	dir = "/var/cache/plotlib"
//
//	[server]
//	addr       = ":9000"
//	redis_addr = "localhost:6379"
type Config struct {
	Theme   string       `toml:"theme"`
	Width   int          `toml:"width"`
	Height  int          `toml:"height"`
	Formats []string     `toml:"formats"`
	Cache   CacheConfig  `toml:"cache"`
	Server  ServerConfig `toml:"server"`
}

type CacheConfig struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

type ServerConfig struct {
	Addr        string `toml:"addr"`
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Formats: []string{"svg"},
		Server:  ServerConfig{Addr: server.DefaultAddr, RedisPrefix: "plotlib:"},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/plotlib/config.toml, falling
// back to ~/.config.
func defaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Theme != "" {
		if _, ok := theme.ByName(cfg.Theme); !ok {
			return cfg, errors.New(errors.ErrCodeInvalidTheme, "config %s: unknown theme %q", path, cfg.Theme)
		}
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: size must not be negative", path)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create config dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
