// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about position computations and scene loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPositionHooks(&myPositionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Position().OnComputeStart(placement, len(middleware))
//	// ... run the pipeline ...
//	observability.Position().OnComputeComplete(placement, resets, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Position Hooks
// =============================================================================

// PositionHooks receives events from the position computation pipeline.
type PositionHooks interface {
	// Computation events
	OnComputeStart(placement string, middlewareCount int)
	OnComputeComplete(placement string, resets int, duration time.Duration, err error)

	// Pipeline events
	OnMiddleware(name string, pass int, duration time.Duration, err error)
	OnReset(name string, placement string, rects bool)
}

// =============================================================================
// Scene Hooks
// =============================================================================

// SceneHooks receives events from scene file loading.
type SceneHooks interface {
	// OnSceneLoad records a scene file load.
	OnSceneLoad(path, format string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPositionHooks is a no-op implementation of PositionHooks.
type NoopPositionHooks struct{}

func (NoopPositionHooks) OnComputeStart(string, int)                          {}
func (NoopPositionHooks) OnComputeComplete(string, int, time.Duration, error) {}
func (NoopPositionHooks) OnMiddleware(string, int, time.Duration, error)      {}
func (NoopPositionHooks) OnReset(string, string, bool)                        {}

// NoopSceneHooks is a no-op implementation of SceneHooks.
type NoopSceneHooks struct{}

func (NoopSceneHooks) OnSceneLoad(string, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	positionHooks PositionHooks = NoopPositionHooks{}
	sceneHooks    SceneHooks    = NoopSceneHooks{}
	hooksMu       sync.RWMutex
)

// SetPositionHooks registers custom position hooks.
// This should be called once at application startup before any computation.
func SetPositionHooks(h PositionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		positionHooks = h
	}
}

// SetSceneHooks registers custom scene hooks.
// This should be called once at application startup before any scene is loaded.
func SetSceneHooks(h SceneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sceneHooks = h
	}
}

// Position returns the registered position hooks.
func Position() PositionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return positionHooks
}

// Scene returns the registered scene hooks.
func Scene() SceneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sceneHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	positionHooks = NoopPositionHooks{}
	sceneHooks = NoopSceneHooks{}
}
