// Package theme defines the visual configuration of a plot.
//
// A [Theme] bundles five independent value objects:
//
//   - [FontTheme]: family and sizes for title, axis labels, ticks and legend
//   - [ColorTheme]: background, foreground, grid, axis border and the series
//     palette
//   - [MarginTheme]: pixel insets around the plot area
//   - [GridTheme]: major/minor grid visibility and line widths
//   - [AxisFormatTheme]: tick label formatting and tick density
//
// Themes are immutable. Every sub-theme has a With method that edits a copy,
// and [Theme.With] composes overrides into a new Theme:
//
//	t := theme.Dark().With(
//	    theme.WithName("dark-large"),
//	    theme.WithFonts(theme.Dark().Fonts().With(func(f *theme.FontTheme) {
//	        f.TitleSize = 24
//	    })),
//	)
//
// # Presets
//
// [Default], [Presentation], [Paper], [Dark] and [Minimal] are available as
// functions and by name through [ByName].
package theme
