// Package pipeline turns plot documents into rendered artifacts.
//
// It is shared by the CLI and the render server so both validate, cache
// and log the same way. A run has two stages:
//
//  1. Build: validate the document and construct the plot
//  2. Render: encode the plot once per requested format
//
// Rendered bytes are cached by a hash of the document and the output
// options, so re-rendering an unchanged document is a cache lookup.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotlib/pkg/cache"
	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/plot"
	"github.com/matzehuels/plotlib/pkg/sink"
)

const (
	DefaultWidth  = plot.DefaultWidth
	DefaultHeight = plot.DefaultHeight

	// MaxDimension bounds either canvas side.
	MaxDimension = 8192
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = sink.FormatSVG

// Options configure a pipeline run. Zero values take the document's
// settings, then the package defaults.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	// Theme replaces the document's preset when set.
	Theme string `json:"theme,omitempty"`
	// Refresh skips cache reads; fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result is the output of a pipeline run.
type Result struct {
	Plot *plot.Plot
	// DocumentHash identifies the effective document (after Options.Theme).
	DocumentHash string
	// Artifacts are rendered outputs keyed by format.
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains run statistics.
type Stats struct {
	SeriesCount int
	Width       int
	Height      int
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo records which formats came from the cache.
type CacheInfo struct {
	Hits map[string]bool
	// RenderHit is true when every artifact was a cache hit.
	RenderHit bool
}

// ValidateFormat checks that format names a sink. Aliases such as "jpg"
// are accepted.
func ValidateFormat(format string) error {
	if !sink.IsValid(format) {
		return errors.New(errors.ErrCodeUnsupportedFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(sink.Formats(), ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// validate normalizes format names, applies defaults and checks bounds.
func (o *Options) validate(docW, docH int) error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	seen := make(map[string]bool, len(o.Formats))
	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if sk, err := sink.ForFormat(f); err == nil {
			f = sk.Format()
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	o.Formats = formats

	if o.Width == 0 {
		o.Width = docW
	}
	if o.Height == 0 {
		o.Height = docH
	}
	if o.Width <= 0 || o.Height <= 0 || o.Width > MaxDimension || o.Height > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput,
			"canvas size %dx%d out of range (1..%d)", o.Width, o.Height, MaxDimension)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ArtifactKeyOpts returns the cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Width: o.Width, Height: o.Height}
}
