package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"github.com/Carmen-Shannon/oxy-freelook/engine/config"
	"github.com/Carmen-Shannon/oxy-freelook/engine/input"
	"github.com/Carmen-Shannon/oxy-freelook/engine/profiler"
	"github.com/Carmen-Shannon/oxy-freelook/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// maxDeltaTime caps the delta of a single frame, in seconds.
const maxDeltaTime float32 = 0.25

// Frame is everything the render callback needs for one frame.
// The camera has already consumed this frame's input when a Frame is built.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Position   mgl32.Vec3
	Zoom       float32
	Aspect     float32
	DeltaTime  float32
	Input      input.Snapshot
}

// Uniform packs the frame's camera state for upload to a uniform buffer.
func (f Frame) Uniform() camera.GPUCameraUniform {
	return camera.GPUCameraUniform{
		View:           f.View,
		Projection:     f.Projection,
		CameraPosition: f.Position,
		ZoomDegrees:    f.Zoom,
	}
}

// Settings are the hot-reloadable parts of the engine configuration.
type Settings struct {
	Camera     camera.Config
	Projection camera.Projection
	Bindings   camera.KeyBindings
}

// engine implements the Engine interface.
// Everything runs on the window thread: poll events, apply input, build matrices, render.
type engine struct {
	settingsChannel chan Settings // Pending settings, applied at the start of the next Step

	quitChannel chan struct{}
	quitOnce    sync.Once
	closed      bool

	window  window.Window
	camera  camera.Camera
	tracker *input.Tracker

	projection camera.Projection
	bindings   camera.KeyBindings
	aspect     float32

	profiler         *profiler.Profiler
	profilingEnabled bool
	showStatsTitle   bool
	baseTitle        string

	renderCallback func(frame Frame)
	reportCallback func(report profiler.Report)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastTime         float64
	hasLastTime      bool
}

// Engine is the main entry point for the engine.
// It owns the camera and drives it from window input once per frame.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera driven by the engine.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// Tracker returns the input tracker fed by the window callbacks.
	//
	// Returns:
	//   - *input.Tracker: the input tracker
	Tracker() *input.Tracker

	// EnableProfiler enables frame statistics.
	EnableProfiler()

	// DisableProfiler disables frame statistics.
	DisableProfiler()

	// SetRenderCallback registers the function called once per frame after the camera
	// has consumed the frame's input.
	//
	// Parameters:
	//   - callback: function receiving the frame's matrices
	SetRenderCallback(callback func(frame Frame))

	// SetReportCallback registers the function called whenever the profiler produces a report.
	//
	// Parameters:
	//   - callback: function receiving the report
	SetReportCallback(callback func(report profiler.Report))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// ApplySettings queues new camera, projection and binding settings.
	// They take effect at the start of the next Step, never in the middle of a frame.
	// Only the most recent pending settings are kept.
	//
	// Parameters:
	//   - s: the settings to apply
	ApplySettings(s Settings)

	// SetConfig queues the camera, projection and bindings sections of a reloaded config file.
	// Window settings are ignored; they only apply at startup.
	//
	// Parameters:
	//   - cfg: the loaded configuration
	//
	// Returns:
	//   - error: error if cfg is nil or names an unknown key
	SetConfig(cfg *config.Config) error

	// Resize updates the aspect ratio used for the projection matrix.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	Resize(width, height int)

	// Step runs one frame: apply pending settings, take an input snapshot, feed it to the
	// camera, build the frame and hand it to the render callback.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds, clamped to [0, 0.25]
	//
	// Returns:
	//   - Frame: the frame passed to the render callback
	Step(deltaTime float32) Frame

	// Run wires the window callbacks and runs the message loop until the window closes.
	//
	// Returns:
	//   - error: error if no window is configured or closing it fails
	Run() error

	// Quit asks the loop to stop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Without WithCamera a default camera at (0, 0, 3) is created.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		settingsChannel: make(chan Settings, 1),
		quitChannel:     make(chan struct{}),
		tracker:         input.NewTracker(),
		projection:      camera.DefaultProjection(),
		bindings:        camera.DefaultKeyBindings(),
		aspect:          1,
		profiler:        profiler.NewProfiler(time.Second),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithPosition(0, 0, 3))
	}
	if e.window != nil {
		e.Resize(e.window.Width(), e.window.Height())
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Tracker() *input.Tracker {
	return e.tracker
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetRenderCallback(callback func(frame Frame)) {
	e.renderCallback = callback
}

func (e *engine) SetReportCallback(callback func(report profiler.Report)) {
	e.reportCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) ApplySettings(s Settings) {
	// Non-blocking send - if a pending update exists, replace it.
	select {
	case e.settingsChannel <- s:
	default:
		select {
		case <-e.settingsChannel:
		default:
		}
		e.settingsChannel <- s
	}
}

func (e *engine) SetConfig(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("engine: nil config")
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return errors.Wrap(err, "engine: apply config")
	}
	e.ApplySettings(Settings{
		Camera:     cfg.Camera,
		Projection: cfg.Projection,
		Bindings:   bindings,
	})
	return nil
}

func (e *engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.aspect = float32(width) / float32(height)
}

func (e *engine) Step(deltaTime float32) Frame {
	select {
	case s := <-e.settingsChannel:
		e.camera.ApplyConfig(s.Camera)
		e.projection = s.Projection
		e.bindings = s.Bindings
	default:
	}

	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}

	snap := e.tracker.Snapshot()
	camera.ApplyInput(e.camera, snap, e.bindings, deltaTime)

	frame := Frame{
		View:       e.camera.ViewMatrix(),
		Projection: e.camera.ProjectionMatrix(e.projection, e.aspect),
		Position:   e.camera.Position(),
		Zoom:       e.camera.Zoom(),
		Aspect:     e.aspect,
		DeltaTime:  deltaTime,
		Input:      snap,
	}

	if e.renderCallback != nil {
		e.renderCallback(frame)
	}

	if e.profilingEnabled && e.profiler != nil {
		pose := profiler.Pose{
			Position: frame.Position,
			Yaw:      e.camera.Yaw(),
			Pitch:    e.camera.Pitch(),
			Zoom:     frame.Zoom,
		}
		if report, ok := e.profiler.Tick(deltaTime, pose); ok {
			if e.reportCallback != nil {
				e.reportCallback(report)
			}
			if e.showStatsTitle && e.window != nil {
				e.window.SetTitle(e.baseTitle + " | " + report.String())
			}
		}
	}

	return frame
}

func (e *engine) Run() error {
	if e.window == nil {
		return errors.New("engine: no window configured")
	}
	w := e.window

	w.SetKeyDownCallback(e.tracker.KeyDown)
	w.SetKeyUpCallback(e.tracker.KeyUp)
	w.SetMouseMoveCallback(e.tracker.MouseMove)
	w.SetScrollCallback(e.tracker.Scroll)
	w.SetFocusCallback(func(focused bool) {
		if !focused {
			e.tracker.ReleaseAll()
		}
		e.tracker.ResetBaseline()
	})
	w.SetResizeCallback(e.Resize)
	w.SetUpdateCallback(e.update)

	log.Println("engine: starting frame loop")
	w.ProcessMessages()
	log.Println("engine: frame loop stopped")

	if e.closed {
		return nil
	}
	e.closed = true
	return errors.Wrap(w.Close(), "engine: close window")
}

// update is the window's per-iteration callback. It measures the frame delta,
// runs Step and applies the optional frame limit.
func (e *engine) update() {
	select {
	case <-e.quitChannel:
		if !e.closed {
			e.closed = true
			if err := e.window.Close(); err != nil {
				log.Printf("engine: close window: %v", err)
			}
		}
		return
	default:
	}

	start := time.Now()
	now := e.window.Time()
	var dt float32
	if e.hasLastTime {
		dt = float32(now - e.lastTime)
	}
	e.lastTime = now
	e.hasLastTime = true

	e.Step(dt)

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}
