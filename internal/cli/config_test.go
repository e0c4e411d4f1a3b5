package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/plotlib/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		check   func(t *testing.T, cfg Config)
		wantErr errors.Code
	}{
		{
			name: "missing file gives defaults",
			path: filepath.Join(dir, "absent.toml"),
			check: func(t *testing.T, cfg Config) {
				if !reflect.DeepEqual(cfg, DefaultConfig()) {
					t.Errorf("cfg = %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "values override defaults",
			path: write("full.toml", `
theme   = "dark"
width   = 1200
formats = ["png", "pdf"]

[cache]
dir = "/tmp/plots"

[server]
redis_addr = "redis:6379"
`),
			check: func(t *testing.T, cfg Config) {
				if cfg.Theme != "dark" || cfg.Width != 1200 || cfg.Height != 0 {
					t.Errorf("cfg = %+v", cfg)
				}
				if !reflect.DeepEqual(cfg.Formats, []string{"png", "pdf"}) {
					t.Errorf("Formats = %v", cfg.Formats)
				}
				if cfg.Cache.Dir != "/tmp/plots" || cfg.Server.RedisAddr != "redis:6379" {
					t.Errorf("nested sections not decoded: %+v", cfg)
				}
				if cfg.Server.Addr != DefaultConfig().Server.Addr {
					t.Errorf("Server.Addr = %q, want default kept", cfg.Server.Addr)
				}
			},
		},
		{name: "unknown key", path: write("typo.toml", "them = \"dark\"\n"), wantErr: errors.ErrCodeInvalidInput},
		{name: "unknown theme", path: write("theme.toml", "theme = \"neon\"\n"), wantErr: errors.ErrCodeInvalidTheme},
		{name: "negative size", path: write("size.toml", "width = -1\n"), wantErr: errors.ErrCodeInvalidInput},
		{name: "malformed", path: write("bad.toml", "theme = \n"), wantErr: errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Theme = "paper"
	cfg.Height = 500
	cfg.Cache.Disabled = true

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"png", []string{"png"}},
		{"svg, pdf", []string{"svg", "pdf"}},
		{" ,png,,", []string{"png"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
