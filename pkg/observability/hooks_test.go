package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 3)
	r.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/render")
	h.OnResponse(ctx, "POST", "/v1/render", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should default to NoopRenderHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to NoopHTTPHooks")
	}

	hooks := NewLogHooks(nil)
	SetRenderHooks(hooks)
	SetCacheHooks(hooks)
	SetHTTPHooks(hooks)
	if Render() != RenderHooks(hooks) || Cache() != CacheHooks(hooks) || HTTP() != HTTPHooks(hooks) {
		t.Error("Set*Hooks should register custom hooks")
	}

	SetRenderHooks(nil)
	if Render() != RenderHooks(hooks) {
		t.Error("SetRenderHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	tests := []struct {
		name string
		emit func()
		want []string
	}{
		{"render start", func() { h.OnRenderStart(ctx, "png", 2) }, []string{"render start", "format=png", "series=2"}},
		{"render done", func() { h.OnRenderComplete(ctx, "svg", 512, time.Millisecond, nil) }, []string{"render done", "bytes=512"}},
		{"render failed", func() { h.OnRenderComplete(ctx, "pdf", 0, time.Millisecond, errors.New("boom")) }, []string{"render failed", "boom"}},
		{"cache hit", func() { h.OnCacheHit(ctx, "artifact") }, []string{"cache hit", "type=artifact"}},
		{"response", func() { h.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond) }, []string{"response", "status=200"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.emit()
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("log output %q missing %q", out, want)
				}
			}
		})
	}
}
