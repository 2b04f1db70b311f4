// Package observability provides hooks for instrumenting registry traffic
// and update detection without coupling the libraries to a logging or
// metrics backend.
//
// Hooks are registered once at startup (typically by main or the CLI) and
// default to no-ops, so library code can emit events unconditionally:
//
//	observability.HTTP().OnRequest(ctx, "GET", host, path)
//	observability.Detect().OnPackageSkipped(ctx, name, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// DetectHooks receives events from the update detector.
type DetectHooks interface {
	// OnBatchStart records the start of a detection batch.
	OnBatchStart(ctx context.Context, size int)

	// OnPackageSkipped records a package excluded from the batch result,
	// either because its registry lookup failed or it is already current.
	OnPackageSkipped(ctx context.Context, name string, err error)

	// OnBatchComplete records the end of a detection batch.
	OnBatchComplete(ctx context.Context, updates int, duration time.Duration)
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// NoopDetectHooks is a no-op implementation of DetectHooks.
type NoopDetectHooks struct{}

func (NoopDetectHooks) OnBatchStart(context.Context, int)                   {}
func (NoopDetectHooks) OnPackageSkipped(context.Context, string, error)     {}
func (NoopDetectHooks) OnBatchComplete(context.Context, int, time.Duration) {}

var (
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	detectHooks DetectHooks = NoopDetectHooks{}
	hooksMu     sync.RWMutex
)

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// SetDetectHooks registers custom detector hooks.
// This should be called once at application startup before any detection runs.
func SetDetectHooks(h DetectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		detectHooks = h
	}
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Detect returns the registered detector hooks.
func Detect() DetectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return detectHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	httpHooks = NoopHTTPHooks{}
	detectHooks = NoopDetectHooks{}
}
