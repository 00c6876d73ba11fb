package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"github.com/Carmen-Shannon/oxy-freelook/engine/config"
	"github.com/Carmen-Shannon/oxy-freelook/engine/profiler"
	"github.com/Carmen-Shannon/oxy-freelook/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeWindow replays scripted input and advances a fixed clock on every update.
type fakeWindow struct {
	width, height int
	title         string
	clock         float64
	step          float64
	frames        int
	maxFrames     int
	running       bool
	closeCalls    int

	// script is called before each update with the frame index.
	script func(w *fakeWindow, frame int)

	update  func()
	resize  func(width, height int)
	scroll  func(delta float32)
	keyDown func(keyCode uint32)
	keyUp   func(keyCode uint32)
	mouse   func(x, y float64)
	focus   func(focused bool)
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(maxFrames int) *fakeWindow {
	return &fakeWindow{width: 800, height: 600, step: 0.01, maxFrames: maxFrames, running: true}
}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.update = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.resize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(delta float32))     { w.scroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32))   { w.keyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(keyCode uint32))     { w.keyUp = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float64))   { w.mouse = cb }
func (w *fakeWindow) SetFocusCallback(cb func(focused bool))       { w.focus = cb }
func (w *fakeWindow) SetTitle(title string)                        { w.title = title }
func (w *fakeWindow) Time() float64                                { return w.clock }
func (w *fakeWindow) IsRunning() bool                              { return w.running }
func (w *fakeWindow) Width() int                                   { return w.width }
func (w *fakeWindow) Height() int                                  { return w.height }

func (w *fakeWindow) Close() error {
	w.closeCalls++
	w.running = false
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for w.running && w.frames < w.maxFrames {
		if w.script != nil {
			w.script(w, w.frames)
		}
		if w.update != nil {
			w.update()
		}
		w.frames++
		w.clock += w.step
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine()

	if e.Camera() == nil {
		t.Fatal("Camera() == nil")
	}
	if p := e.Camera().Position(); p != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("Camera().Position() != (0,0,3) (got %v)", p)
	}
	if e.Window() != nil {
		t.Errorf("Window() != nil (got %v)", e.Window())
	}
	if err := e.Run(); err == nil {
		t.Error("Run() without a window != error")
	}
}

func TestStep_MatchesCamera(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(1, 2, 3))
	proj := camera.Projection{Near: 0.5, Far: 50}
	e := NewEngine(WithCamera(cam), WithProjection(proj))
	e.Resize(1600, 900)

	var rendered []Frame
	e.SetRenderCallback(func(f Frame) { rendered = append(rendered, f) })

	f := e.Step(0.016)

	if len(rendered) != 1 {
		t.Fatalf("render callback calls != 1 (got %d)", len(rendered))
	}
	if rendered[0].View != f.View {
		t.Error("rendered frame != returned frame")
	}
	if !f.View.ApproxEqualThreshold(cam.ViewMatrix(), 1e-6) {
		t.Errorf("View != camera view\n%v\n%v", f.View, cam.ViewMatrix())
	}
	want := proj.Matrix(cam.Zoom(), 1600.0/900.0)
	if !f.Projection.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Projection != %v (got %v)", want, f.Projection)
	}
	if !mgl32.FloatEqualThreshold(f.Aspect, 1600.0/900.0, 1e-6) {
		t.Errorf("Aspect != %v (got %v)", 1600.0/900.0, f.Aspect)
	}
	if f.Position != (mgl32.Vec3{1, 2, 3}) || f.Zoom != camera.DefaultZoom {
		t.Errorf("Position/Zoom != (1,2,3)/%v (got %v/%v)", camera.DefaultZoom, f.Position, f.Zoom)
	}

	u := f.Uniform()
	if u.ZoomDegrees != f.Zoom || u.CameraPosition != [3]float32(f.Position) {
		t.Errorf("Uniform() does not carry frame pose (got %+v)", u)
	}
}

func TestStep_AppliesInput(t *testing.T) {
	e := NewEngine()
	tr := e.Tracker()

	tr.KeyDown(common.KeyW)
	e.Step(1)
	if p := e.Camera().Position(); !p.ApproxEqualThreshold(mgl32.Vec3{0, 0, 3 - camera.DefaultMovementSpeed*maxDeltaTime}, 1e-5) {
		t.Errorf("Position() after clamped step != (0,0,%v) (got %v)", 3-camera.DefaultMovementSpeed*maxDeltaTime, p)
	}

	tr.KeyUp(common.KeyW)
	tr.Scroll(10)
	f := e.Step(0.1)
	if f.Zoom != camera.DefaultZoom-10 {
		t.Errorf("Zoom after scroll != %v (got %v)", camera.DefaultZoom-10, f.Zoom)
	}
	if f.Input.Held(common.KeyW) {
		t.Error("frame snapshot still holds W after KeyUp")
	}

	f = e.Step(-1)
	if f.DeltaTime != 0 {
		t.Errorf("DeltaTime for negative step != 0 (got %v)", f.DeltaTime)
	}
}

func TestApplySettings_QueuedUntilStep(t *testing.T) {
	e := NewEngine()

	cfg := camera.DefaultConfig()
	cfg.MovementSpeed = 10
	e.ApplySettings(Settings{Camera: camera.DefaultConfig(), Projection: camera.DefaultProjection(), Bindings: camera.DefaultKeyBindings()})
	e.ApplySettings(Settings{Camera: cfg, Projection: camera.Projection{Near: 1, Far: 10}, Bindings: camera.KeyBindings{Forward: common.KeyUp}})

	if e.Camera().MovementSpeed() != camera.DefaultMovementSpeed {
		t.Errorf("MovementSpeed() changed before Step (got %v)", e.Camera().MovementSpeed())
	}

	e.Tracker().KeyDown(common.KeyUp)
	f := e.Step(0.1)

	if e.Camera().MovementSpeed() != 10 {
		t.Errorf("MovementSpeed() after Step != 10 (got %v)", e.Camera().MovementSpeed())
	}
	if p := f.Position; !p.ApproxEqualThreshold(mgl32.Vec3{0, 0, 2}, 1e-5) {
		t.Errorf("Position() with rebound forward != (0,0,2) (got %v)", p)
	}
	want := camera.Projection{Near: 1, Far: 10}.Matrix(f.Zoom, 1)
	if !f.Projection.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Projection did not pick up new planes (got %v)", f.Projection)
	}
}

func TestSetConfig(t *testing.T) {
	e := NewEngine()

	if err := e.SetConfig(nil); err == nil {
		t.Error("SetConfig(nil) != error")
	}

	bad := config.Default()
	bad.Bindings.Forward = "no-such-key"
	if err := e.SetConfig(bad); err == nil {
		t.Error("SetConfig(unknown key) != error")
	}

	good := config.Default()
	good.Camera.MouseSensitivity = 0.5
	if err := e.SetConfig(good); err != nil {
		t.Fatalf("SetConfig() error: %v", err)
	}
	e.Step(0)
	if s := e.Camera().MouseSensitivity(); s != 0.5 {
		t.Errorf("MouseSensitivity() != 0.5 (got %v)", s)
	}
}

func TestRun_DrivesFrames(t *testing.T) {
	w := newFakeWindow(5)
	w.script = func(w *fakeWindow, frame int) {
		switch frame {
		case 0:
			w.mouse(400, 300)
			w.keyDown(common.KeyD)
		case 1:
			w.mouse(410, 300)
		case 2:
			w.keyUp(common.KeyD)
			w.resize(1000, 500)
		case 3:
			w.focus(false)
		}
	}

	e := NewEngine(WithWindow(w))
	var frames []Frame
	e.SetRenderCallback(func(f Frame) { frames = append(frames, f) })

	if err := e.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(frames) != 5 {
		t.Fatalf("rendered frames != 5 (got %d)", len(frames))
	}
	if frames[0].DeltaTime != 0 {
		t.Errorf("first frame DeltaTime != 0 (got %v)", frames[0].DeltaTime)
	}
	if !mgl32.FloatEqualThreshold(frames[1].DeltaTime, 0.01, 1e-6) {
		t.Errorf("second frame DeltaTime != 0.01 (got %v)", frames[1].DeltaTime)
	}
	if frames[0].Input.MouseDX != 0 {
		t.Errorf("first mouse sample MouseDX != 0 (got %v)", frames[0].Input.MouseDX)
	}
	if frames[1].Input.MouseDX != 10 {
		t.Errorf("second mouse sample MouseDX != 10 (got %v)", frames[1].Input.MouseDX)
	}
	if frames[2].Aspect != 2 {
		t.Errorf("Aspect after resize != 2 (got %v)", frames[2].Aspect)
	}
	if !frames[3].Input.Empty() {
		t.Errorf("snapshot after focus loss not empty (got %v)", frames[3].Input.HeldKeys())
	}
	if w.closeCalls != 1 {
		t.Errorf("Close() calls != 1 (got %d)", w.closeCalls)
	}
}

func TestQuit_StopsLoop(t *testing.T) {
	w := newFakeWindow(100)
	e := NewEngine(WithWindow(w))

	count := 0
	e.SetRenderCallback(func(Frame) {
		count++
		if count == 3 {
			e.Quit()
			e.Quit()
		}
	})

	if err := e.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if count != 3 {
		t.Errorf("frames after Quit != 3 (got %d)", count)
	}
	if w.closeCalls != 1 {
		t.Errorf("Close() calls != 1 (got %d)", w.closeCalls)
	}
}

func TestProfiling_TitleAndReport(t *testing.T) {
	w := newFakeWindow(0)
	e := NewEngine(
		WithWindow(w),
		WithProfiling(true, 50*time.Millisecond),
		WithStatsInTitle("Free-Look"),
	)

	var reports []profiler.Report
	e.SetReportCallback(func(r profiler.Report) { reports = append(reports, r) })

	for i := 0; i < 6; i++ {
		e.Step(0.01)
	}

	if len(reports) != 1 {
		t.Fatalf("reports != 1 (got %d)", len(reports))
	}
	if !strings.HasPrefix(w.title, "Free-Look | FPS:") {
		t.Errorf("title != \"Free-Look | FPS: ...\" (got %q)", w.title)
	}

	e.DisableProfiler()
	for i := 0; i < 10; i++ {
		e.Step(0.01)
	}
	if len(reports) != 1 {
		t.Errorf("reports after DisableProfiler != 1 (got %d)", len(reports))
	}
}

func TestSetRenderFrameLimit(t *testing.T) {
	e := NewEngine(WithRenderFrameLimit(50)).(*engine)
	if e.renderFrameLimit != 20*time.Millisecond {
		t.Errorf("renderFrameLimit != 20ms (got %v)", e.renderFrameLimit)
	}
	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Errorf("renderFrameLimit != 0 (got %v)", e.renderFrameLimit)
	}
}
