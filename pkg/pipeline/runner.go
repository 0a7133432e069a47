package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/circlegrid/pkg/cache"
	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/observability"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, keys are scoped to [EngineVersion].
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(nil, EngineScope())
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID[:8])

	data, err := ReadInput(opts.Input)
	if err != nil {
		return nil, err
	}
	result.InputHash = cache.Hash(data)

	// Stage 1+2: Load and layout
	layoutStart := time.Now()
	l, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, data, opts)
	if err != nil {
		return nil, errors.Annotate(err, "layout")
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Clusters = len(l.Cells)
	result.Stats.Circles = len(l.Circles)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"clusters", result.Stats.Clusters,
		"circles", result.Stats.Circles,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, errors.Annotate(err, "render")
	}
	result.Artifacts = artifacts
	result.Formats = opts.Formats
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ReadInput reads the input file, mapping a missing file to FILE_NOT_FOUND.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// GenerateLayoutWithCacheInfo loads data and computes its layout with
// caching, and reports whether the layout came from the cache.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, data []byte, opts Options) (circles.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return circles.Layout{}, false, err
	}

	cacheKey := r.Keyer.LayoutKey(cache.Hash(data), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, cacheKey, "layout"); ok {
			l, err := circles.UnmarshalLayout(cached)
			if err == nil {
				return l, true, nil
			}
			// Stale or corrupt entry, recompute.
			opts.Logger.Debug("discarding cached layout", "err", err)
		}
	}

	in, err := Load(ctx, data, opts)
	if err != nil {
		return circles.Layout{}, false, err
	}
	l, err := GenerateLayout(ctx, in, opts)
	if err != nil {
		return circles.Layout{}, false, err
	}

	if encoded, err := circles.MarshalLayout(l); err == nil {
		r.store(ctx, cacheKey, "layout", encoded, cache.TTLLayout)
	}
	return l, false, nil
}

// GenerateLayoutFromData is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayoutFromData(ctx context.Context, data []byte, opts Options) (circles.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, data, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l circles.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := circles.MarshalLayout(l)
	if err != nil {
		return nil, false, err
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			data, ok := r.lookup(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)), "artifact")
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.store(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)), "artifact", data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l circles.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads key from the cache. Backend errors count as misses.
func (r *Runner) lookup(ctx context.Context, key, kind string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return data, true
}

// store writes to the cache. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key, kind string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
