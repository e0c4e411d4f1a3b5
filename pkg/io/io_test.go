package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/plot"
	"github.com/matzehuels/plotlib/pkg/series"
	"github.com/matzehuels/plotlib/pkg/theme"
)

const sampleTOML = `
title   = "Latency"
x_label = "Load (rps)"
y_label = "p99 (ms)"
theme   = "paper"
width   = 1024

[theme_overrides.axis]
max_decimal_places = 1

[theme_overrides.colors]
palette = ["#111111", "red"]

[[series]]
name    = "v1"
x       = [100.0, 200.0, 400.0]
y       = [12.5, 14.0, 31.2]
y_lower = [11.0, 13.1, 28.0]
y_upper = [14.0, 15.2, 35.0]

[[series]]
name  = "v2"
kind  = "scatter"
color = "#d62728"
x     = [100.0, 200.0, 400.0]
y     = [10.1, 11.0, 19.8]
`

func TestDecodeTOML(t *testing.T) {
	doc, err := DecodeBytes([]byte(sampleTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w, h := doc.Size(800, 600); w != 1024 || h != 600 {
		t.Errorf("Size() = %dx%d, want 1024x600", w, h)
	}

	p, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Title() != "Latency" || p.XLabel() != "Load (rps)" || p.YLabel() != "p99 (ms)" {
		t.Errorf("labels = %q %q %q", p.Title(), p.XLabel(), p.YLabel())
	}

	th := p.Theme()
	if th.Name() != theme.NamePaper {
		t.Errorf("theme = %q, want paper", th.Name())
	}
	if got := th.AxisFormat().MaxDecimalPlaces; got != 1 {
		t.Errorf("MaxDecimalPlaces = %d, want 1", got)
	}
	if got := th.PaletteLen(); got != 2 {
		t.Errorf("palette length = %d, want 2", got)
	}
	if got := th.Fonts(); got != theme.Paper().Fonts() {
		t.Error("fonts should be untouched by axis and color overrides")
	}

	ss := p.Series()
	if len(ss) != 2 {
		t.Fatalf("got %d series, want 2", len(ss))
	}
	if !ss[0].HasBand() {
		t.Error("v1 should carry an error band")
	}
	st, ok := ss[1].Style()
	if !ok || !st.HideLine || !st.ShowPoints {
		t.Errorf("v2 style = %+v, want scatter", st)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		code   errors.Code
	}{
		{"toml syntax", FormatTOML, `title = `, errors.ErrCodeInvalidInput},
		{"toml unknown key", FormatTOML, "title = \"a\"\ncolour = \"red\"", errors.ErrCodeInvalidInput},
		{"json unknown key", FormatJSON, `{"title": "a", "subtitle": "b"}`, errors.ErrCodeInvalidInput},
		{"json syntax", FormatJSON, `{"title": `, errors.ErrCodeInvalidInput},
		{"format", "yaml", `title: a`, errors.ErrCodeUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes([]byte(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	xy := []float64{1, 2, 3}
	tests := []struct {
		name string
		doc  Document
		code errors.Code
	}{
		{"unknown theme", Document{Theme: "neon"}, errors.ErrCodeInvalidTheme},
		{"bad override color", Document{ThemeOverrides: &ThemeOverrides{
			Colors: &ColorOverrides{Background: ptr("#12")},
		}}, errors.ErrCodeInvalidTheme},
		{"invalid override value", Document{ThemeOverrides: &ThemeOverrides{
			Axis: &AxisOverrides{MinTickSpacing: ptr(0.0)},
		}}, errors.ErrCodeInvalidTheme},
		{"length mismatch", Document{Series: []Series{{Name: "a", X: []float64{1, 2}, Y: xy}}}, errors.ErrCodeInvalidSeries},
		{"unknown kind", Document{Series: []Series{{Name: "a", Kind: "bar", X: xy, Y: xy}}}, errors.ErrCodeInvalidSeries},
		{"bad color", Document{Series: []Series{{Name: "a", Color: "chartreuse-ish", X: xy, Y: xy}}}, errors.ErrCodeInvalidSeries},
		{"bad line width", Document{Series: []Series{{Name: "a", LineWidth: ptr(-1.0), X: xy, Y: xy}}}, errors.ErrCodeInvalidSeries},
		{"duplicate", Document{Series: []Series{{Name: "a", X: xy, Y: xy}, {Name: "a", X: xy, Y: xy}}}, errors.ErrCodeInvalidSeries},
		{"negative size", Document{Width: -1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Build()
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() = %v, want %s", err, tt.code)
			}
			if tt.doc.Validate() == nil {
				t.Error("Validate() should fail as well")
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestFromPlotRoundTrip(t *testing.T) {
	p, err := plot.New("Round", "x", "y", plot.WithTheme(theme.Dark()))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Line("plain", []float64{0, 1, 2}, []float64{2, 1, 0}); err != nil {
		t.Fatal(err)
	}
	if err := p.Add("styled", []float64{0, 1}, []float64{5, 6},
		series.WithStyle(series.Style{Color: theme.NamedColors["orange"], LineWidth: 3, PointRadius: 4, ShowPoints: true}),
		series.WithErrorBand([]float64{4, 5}, []float64{6, 7})); err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{FormatJSON, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, FromPlot(p, 640, 480), format); err != nil {
				t.Fatal(err)
			}
			doc, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			q, err := doc.Build()
			if err != nil {
				t.Fatal(err)
			}
			if q.Theme().Name() != theme.NameDark || doc.Width != 640 || doc.Height != 480 {
				t.Errorf("theme/size = %s %dx%d", q.Theme().Name(), doc.Width, doc.Height)
			}
			if q.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", q.Len())
			}
			if _, ok := q.Series()[0].Style(); ok {
				t.Error("series without explicit style should stay palette-colored")
			}
			st, ok := q.Series()[1].Style()
			if !ok || st.LineWidth != 3 || !st.ShowPoints {
				t.Errorf("styled series = %+v", st)
			}
			if lo, hi := q.Series()[1].Band(1); lo != 5 || hi != 7 {
				t.Errorf("band[1] = (%v, %v), want (5, 7)", lo, hi)
			}
		})
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	doc, err := DecodeBytes([]byte(sampleTOML), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "plot.json")
	if err := WriteFile(doc, path); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), `"x_label": "Load (rps)"`) {
		t.Errorf("JSON output missing snake_case keys:\n%s", raw)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Series) != 2 || back.ThemeOverrides == nil || back.ThemeOverrides.Axis == nil {
		t.Errorf("ReadFile lost data: %+v", back)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("ReadFile(missing) = %v", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "plot.yaml")); !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("ReadFile(yaml) = %v", err)
	}
	if err := WriteFile(doc, filepath.Join(dir, "plot.txt")); !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("WriteFile(txt) = %v", err)
	}
}
