// Package observability lets the application observe rendering, caching
// and the HTTP server without tying library code to a metrics backend.
//
// Hooks are registered once at startup and default to no-ops:
//
//	func main() {
//	    observability.SetRenderHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Library code emits events through the accessors:
//
//	observability.Render().OnRenderStart(ctx, "svg", len(series))
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, seriesCount int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from artifact cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the render server.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// NoopRenderHooks ignores every event.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// hookSet is swapped as a whole under mu.
type hookSet struct {
	render RenderHooks
	cache  CacheHooks
	http   HTTPHooks
}

func defaultHooks() hookSet {
	return hookSet{render: NoopRenderHooks{}, cache: NoopCacheHooks{}, http: NoopHTTPHooks{}}
}

var (
	mu     sync.RWMutex
	active = defaultHooks()
)

func update(fn func(*hookSet)) {
	mu.Lock()
	next := active
	fn(&next)
	active = next
	mu.Unlock()
}

func current() hookSet {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// SetRenderHooks registers render hooks. Nil is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		update(func(s *hookSet) { s.render = h })
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(s *hookSet) { s.cache = h })
	}
}

// SetHTTPHooks registers HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(s *hookSet) { s.http = h })
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks { return current().render }
// Cache returns the registered cache hooks.
func Cache() CacheHooks   { return current().cache }
// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks     { return current().http }

// Reset restores the no-op defaults.
func Reset() {
	update(func(s *hookSet) { *s = defaultHooks() })
}
