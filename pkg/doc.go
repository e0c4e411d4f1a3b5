// Package pkg holds the plotlib libraries.
//
// The packages layer bottom-up:
//
//  1. [ticks], [theme], [series] - axis numbers, styling and data
//  2. [layout], [render] - geometry and drawing onto a [surface]
//  3. [sink], [window] - encoding to PNG, JPEG, SVG and PDF, or display
//  4. [plot] - the user-facing facade (AddSeries, Save, Show)
//  5. [io], [pipeline], [cache], [server] - plot documents, cached
//     rendering and the HTTP service
//
// A typical program only imports plot:
//
//	p, _ := plot.New("Latency", "load (rps)", "p99 (ms)")
//	_ = p.Line("v1", []float64{100, 200, 400}, []float64{12.5, 14, 31.2})
//	_ = p.Save("latency.png")
//
// [ticks]: github.com/matzehuels/plotlib/pkg/ticks
// [theme]: github.com/matzehuels/plotlib/pkg/theme
// [series]: github.com/matzehuels/plotlib/pkg/series
// [layout]: github.com/matzehuels/plotlib/pkg/layout
// [render]: github.com/matzehuels/plotlib/pkg/render
// [surface]: github.com/matzehuels/plotlib/pkg/surface
// [sink]: github.com/matzehuels/plotlib/pkg/sink
// [window]: github.com/matzehuels/plotlib/pkg/window
// [plot]: github.com/matzehuels/plotlib/pkg/plot
// [io]: github.com/matzehuels/plotlib/pkg/io
// [pipeline]: github.com/matzehuels/plotlib/pkg/pipeline
// [cache]: github.com/matzehuels/plotlib/pkg/cache
// [server]: github.com/matzehuels/plotlib/pkg/server
package pkg
