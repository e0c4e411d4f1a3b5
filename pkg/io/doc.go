// Package io reads and writes plot description documents.
//
// A document describes one chart: labels, a theme preset with optional
// overrides, the output size and the series. TOML and JSON are accepted;
// the format follows the file extension.
//
//	title   = "Latency"
//	x_label = "Load (rps)"
//	y_label = "p99 (ms)"
//	theme   = "paper"
//	width   = 1024
//	height  = 640
//
//	[theme_overrides.axis]
//	max_decimal_places = 1
//
//	[[series]]
//	name    = "v1"
//	x       = [100.0, 200.0, 400.0]
//	y       = [12.5, 14.0, 31.2]
//	y_lower = [11.0, 13.1, 28.0]
//	y_upper = [14.0, 15.2, 35.0]
//
//	[[series]]
//	name  = "v2"
//	kind  = "scatter"
//	color = "#d62728"
//	x     = [100.0, 200.0, 400.0]
//	y     = [10.1, 11.0, 19.8]
//
// Use [ReadFile] or [Decode] to load a document, [Document.Build] to turn
// it into a [plot.Plot], and [FromPlot] with [WriteFile] or [Encode] to go
// the other way. Unknown keys are rejected so typos surface early.
//
// [plot.Plot]: github.com/matzehuels/plotlib/pkg/plot.Plot
package io
