package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotlib/pkg/cache"
	"github.com/matzehuels/plotlib/pkg/errors"
	pkgio "github.com/matzehuels/plotlib/pkg/io"
	"github.com/matzehuels/plotlib/pkg/observability"
	"github.com/matzehuels/plotlib/pkg/plot"
)

const artifactKeyType = "artifact"

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute builds doc and renders every requested format. doc is not
// modified.
func (r *Runner) Execute(ctx context.Context, doc *pkgio.Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	eff := *doc
	if opts.Theme != "" {
		eff.Theme = opts.Theme
	}
	w, h := eff.Size(DefaultWidth, DefaultHeight)
	if err := opts.validate(w, h); err != nil {
		return nil, err
	}

	buildStart := time.Now()
	p, err := eff.Build()
	if err != nil {
		return nil, err
	}
	docHash, err := hashDocument(&eff)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Plot:         p,
		DocumentHash: docHash,
		Stats: Stats{
			SeriesCount: p.Len(),
			Width:       opts.Width,
			Height:      opts.Height,
			BuildTime:   time.Since(buildStart),
		},
	}
	opts.Logger.Debug("built plot", "series", p.Len(), "theme", p.Theme().Name(), "hash", result.DocumentHash[:12])

	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, p, result.DocumentHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered plot",
		"formats", opts.Formats,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"cached", info.RenderHit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// RenderWithCacheInfo renders p in each of opts.Formats, consulting the
// cache under docHash first. opts must already be validated.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *plot.Plot, docHash string, opts Options) (map[string][]byte, CacheInfo, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	info := CacheInfo{Hits: make(map[string]bool, len(opts.Formats)), RenderHit: true}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, CacheInfo{}, err
		}
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err == nil && hit {
				observability.Cache().OnCacheHit(ctx, artifactKeyType)
				artifacts[format] = data
				info.Hits[format] = true
				continue
			}
			observability.Cache().OnCacheMiss(ctx, artifactKeyType)
		}
		info.RenderHit = false

		data, err := r.render(ctx, p, format, opts)
		if err != nil {
			return nil, CacheInfo{}, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, artifactKeyType, len(data))
		}
	}
	return artifacts, info, nil
}

func (r *Runner) render(ctx context.Context, p *plot.Plot, format string, opts Options) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, p.Len())
	start := time.Now()
	data, err := p.Render(ctx, format, opts.Width, opts.Height)
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// hashDocument hashes the TOML form of doc, which unlike JSON can carry
// nan and inf. Size is excluded because it is part of the artifact key.
func hashDocument(doc *pkgio.Document) (string, error) {
	d := *doc
	d.Width, d.Height = 0, 0
	var buf bytes.Buffer
	if err := pkgio.Encode(&buf, &d, pkgio.FormatTOML); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	return cache.Hash(buf.Bytes()), nil
}
