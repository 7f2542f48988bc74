// Package observability provides hooks for metrics, tracing, and logging.
//
// Data manager operations and HTTP requests report events through hooks
// registered at startup. The defaults are no-ops, so libraries can emit
// events without depending on an observability backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetManagerHooks(&myManagerHooks{})
//	    // ... run application
//	}
//
// Callers emit events around manager operations:
//
//	observability.Manager().OnOperationStart(ctx, observability.OpWrite, "dat", path)
//	err := m.Write(model, data)
//	observability.Manager().OnOperationComplete(ctx, observability.OpWrite, "dat", path, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Operation names a data manager operation.
type Operation string

const (
	OpCheck   Operation = "check"
	OpProcess Operation = "process"
	OpWrite   Operation = "write"
)

// =============================================================================
// Manager Hooks
// =============================================================================

// ManagerHooks receives events from data manager operations.
type ManagerHooks interface {
	OnOperationStart(ctx context.Context, op Operation, format, path string)
	OnOperationComplete(ctx context.Context, op Operation, format, path string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnResponse records a served request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopManagerHooks is a no-op implementation of ManagerHooks.
type NoopManagerHooks struct{}

func (NoopManagerHooks) OnOperationStart(context.Context, Operation, string, string) {}
func (NoopManagerHooks) OnOperationComplete(context.Context, Operation, string, string, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	managerHooks ManagerHooks = NoopManagerHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetManagerHooks registers custom data manager hooks.
// A nil h is ignored.
func SetManagerHooks(h ManagerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		managerHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Manager returns the registered data manager hooks.
func Manager() ManagerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return managerHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	managerHooks = NoopManagerHooks{}
	httpHooks = NoopHTTPHooks{}
}

// Track emits start and completion events for op around fn.
func Track(ctx context.Context, op Operation, format, path string, fn func() error) error {
	h := Manager()
	h.OnOperationStart(ctx, op, format, path)
	start := time.Now()
	err := fn()
	h.OnOperationComplete(ctx, op, format, path, time.Since(start), err)
	return err
}
