package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"github.com/Carmen-Shannon/oxy-freelook/engine/input"
	"github.com/Carmen-Shannon/oxy-freelook/engine/profiler"
	"github.com/Carmen-Shannon/oxy-freelook/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables frame statistics.
//
// Parameters:
//   - enabled: if true, enables profiling
//   - interval: reporting interval (<= 0 means 1 second)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool, interval time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
		e.profiler = profiler.NewProfiler(interval)
	}
}

// WithStatsInTitle appends each profiler report to the window title.
//
// Parameters:
//   - baseTitle: the title shown before the statistics
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStatsInTitle(baseTitle string) EngineBuilderOption {
	return func(e *engine) {
		e.showStatsTitle = true
		e.baseTitle = baseTitle
	}
}

// WithWindow sets the window the engine reads input from.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera sets the camera driven by the engine.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithTracker replaces the input tracker, e.g. to share one with other consumers.
//
// Parameters:
//   - t: the input tracker
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTracker(t *input.Tracker) EngineBuilderOption {
	return func(e *engine) {
		if t != nil {
			e.tracker = t
		}
	}
}

// WithProjection sets the clipping planes for the projection matrix.
//
// Parameters:
//   - p: near/far planes
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProjection(p camera.Projection) EngineBuilderOption {
	return func(e *engine) {
		e.projection = p
	}
}

// WithBindings sets the key bindings for camera actions.
//
// Parameters:
//   - b: key bindings
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBindings(b camera.KeyBindings) EngineBuilderOption {
	return func(e *engine) {
		e.bindings = b
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}
