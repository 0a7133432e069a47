package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every pipeline and cache event to a logger at debug
// level. Failures are logged at warn level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to logger. A nil logger uses the
// package default from charmbracelet/log.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "took", d.Round(time.Microsecond))
	if err != nil {
		h.Logger.Warn(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(stage+" done", kv...)
}

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.Logger.Debug("load", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, records int, d time.Duration, err error) {
	h.done("load", d, err, "path", path, "records", records)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, clusters, nodes int) {
	h.Logger.Debug("layout", "clusters", clusters, "nodes", nodes)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, circles int, d time.Duration, err error) {
	h.done("layout", d, err, "circles", circles)
}

func (h *LogHooks) OnRenderStart(_ context.Context, vizType string, formats []string) {
	h.Logger.Debug("render", "viz", vizType, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, vizType string, formats []string, d time.Duration, err error) {
	h.done("render", d, err, "viz", vizType, "formats", formats)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "kind", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "kind", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "kind", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
