package cli

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotlib/pkg/errors"
	pkgio "github.com/matzehuels/plotlib/pkg/io"
	"github.com/matzehuels/plotlib/pkg/plot"
	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/sink"
	"github.com/matzehuels/plotlib/pkg/theme"
)

// demoChart builds one gallery plot styled with t.
type demoChart struct {
	name  string
	build func(t theme.Theme) (*plot.Plot, error)
}

var demoCharts = []demoChart{
	{name: "waves", build: demoWaves},
	{name: "scatter", build: demoScatter},
	{name: "growth", build: demoGrowth},
}

func (c *CLI) demoCommand() *cobra.Command {
	var (
		output    string
		format    string
		themeName string
		docs      bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a gallery of example charts",
		Long: `Write example charts for every theme preset (or just --theme) into a
directory, one file per chart and theme. With --docs, the TOML document
of each chart is written next to it as a starting point for "plotlib render".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := theme.Names()
			if themeName != "" {
				if _, ok := theme.ByName(themeName); !ok {
					return errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", themeName)
				}
				themes = []string{themeName}
			}
			sk, err := sink.ForFormat(format)
			if err != nil {
				return err
			}
			return c.writeGallery(cmd.Context(), output, sk.Format(), themes, docs)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "gallery", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", sink.FormatPNG, "output format")
	cmd.Flags().StringVar(&themeName, "theme", "", "render only this theme")
	cmd.Flags().BoolVar(&docs, "docs", false, "also write each chart as a TOML document")

	return cmd
}

func (c *CLI) writeGallery(ctx context.Context, dir, format string, themes []string, docs bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	width := firstPositive(c.Config.Width, plot.DefaultWidth)
	height := firstPositive(c.Config.Height, plot.DefaultHeight)

	count := 0
	for _, name := range themes {
		t, _ := theme.ByName(name)
		for _, chart := range demoCharts {
			p, err := chart.build(t)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", chart.name, name, format))
			data, err := p.Render(ctx, format, width, height)
			if err != nil {
				return err
			}
			if err := writeArtifact(path, data); err != nil {
				return err
			}
			logger.Debug("wrote chart", "path", path, "bytes", len(data))
			printFile(path)
			count++

			if docs {
				doc := pkgio.FromPlot(p, width, height)
				docPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".toml"
				if err := pkgio.WriteFile(doc, docPath); err != nil {
					return err
				}
				printFile(docPath)
			}
		}
	}
	prog.done(fmt.Sprintf("Wrote %d charts", count))
	return nil
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func mapf(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func demoWaves(t theme.Theme) (*plot.Plot, error) {
	p, err := plot.New("Waves", "t (s)", "amplitude", plot.WithTheme(t))
	if err != nil {
		return nil, err
	}
	x := linspace(0, 4*math.Pi, 120)
	sin := mapf(x, math.Sin)
	lower := mapf(x, func(v float64) float64 { return math.Sin(v) - 0.2 })
	upper := mapf(x, func(v float64) float64 { return math.Sin(v) + 0.2 })
	if err := p.Line("sin", x, sin, series.WithErrorBand(lower, upper)); err != nil {
		return nil, err
	}
	if err := p.Line("cos", x, mapf(x, math.Cos)); err != nil {
		return nil, err
	}
	return p, nil
}

func demoScatter(t theme.Theme) (*plot.Plot, error) {
	p, err := plot.New("Samples", "x", "y", plot.WithTheme(t))
	if err != nil {
		return nil, err
	}
	// Deterministic pseudo-noise keeps the gallery reproducible.
	x := linspace(0, 10, 40)
	a := mapf(x, func(v float64) float64 { return 0.8*v + math.Sin(v*7.3) })
	b := mapf(x, func(v float64) float64 { return 10 - 0.6*v + math.Cos(v*5.1) })
	if err := p.Scatter("group a", x, a); err != nil {
		return nil, err
	}
	if err := p.Scatter("group b", x, b); err != nil {
		return nil, err
	}
	return p, nil
}

func demoGrowth(t theme.Theme) (*plot.Plot, error) {
	p, err := plot.New("Growth", "year", "users", plot.WithTheme(t))
	if err != nil {
		return nil, err
	}
	years := linspace(2015, 2025, 11)
	users := mapf(years, func(y float64) float64 { return 1200 * math.Pow(1.45, y-2015) })
	style := series.DefaultStyle()
	style.ShowPoints = true
	if err := p.Line("users", years, users, series.WithStyle(style)); err != nil {
		return nil, err
	}
	return p, nil
}
