package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the camera state included in each report.
type Pose struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Zoom     float32
}

// Report summarizes the frames of one reporting interval.
type Report struct {
	Frames   int
	FPS      float64
	MinFrame time.Duration
	MaxFrame time.Duration
	HeapMB   float64
	GCCount  uint32
	Pose     Pose
}

func (r Report) String() string {
	return fmt.Sprintf("FPS: %.1f | frame %.2f-%.2f ms | heap %.2f MB | GC %d | pos (%.2f, %.2f, %.2f) yaw %.1f pitch %.1f fov %.1f",
		r.FPS,
		float64(r.MinFrame)/float64(time.Millisecond), float64(r.MaxFrame)/float64(time.Millisecond),
		r.HeapMB, r.GCCount,
		r.Pose.Position[0], r.Pose.Position[1], r.Pose.Position[2],
		r.Pose.Yaw, r.Pose.Pitch, r.Pose.Zoom,
	)
}

// Profiler tracks frame timing and memory statistics for performance monitoring.
// Time is accumulated from the frame deltas it is given, not read from the wall clock.
type Profiler struct {
	updateInterval time.Duration
	logging        bool

	frameCount int
	elapsed    time.Duration
	minFrame   time.Duration
	maxFrame   time.Duration
	memStats   runtime.MemStats
}

// NewProfiler creates a new Profiler.
// A non-positive interval defaults to 1 second.
//
// Parameters:
//   - interval: how much frame time is accumulated before a report is produced
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	p := &Profiler{updateInterval: interval, logging: true}
	p.resetWindow()
	return p
}

// SetLogging enables or disables writing reports to the standard logger.
func (p *Profiler) SetLogging(enabled bool) {
	p.logging = enabled
}

// Interval returns the reporting interval.
func (p *Profiler) Interval() time.Duration {
	return p.updateInterval
}

// Tick records one frame. When the accumulated frame time reaches the interval a report is
// produced, logged (if logging is enabled) and the counters restart.
//
// Parameters:
//   - deltaTime: frame time in seconds; negative values count as zero
//   - pose: camera state at the end of the frame
//
// Returns:
//   - Report: the interval summary, valid only when ok is true
//   - bool: true if a report was produced this tick
func (p *Profiler) Tick(deltaTime float32, pose Pose) (Report, bool) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	frame := time.Duration(float64(deltaTime) * float64(time.Second)).Round(time.Microsecond)

	p.frameCount++
	p.elapsed += frame
	if frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}

	if p.elapsed < p.updateInterval {
		return Report{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	r := Report{
		Frames:   p.frameCount,
		FPS:      float64(p.frameCount) / p.elapsed.Seconds(),
		MinFrame: p.minFrame,
		MaxFrame: p.maxFrame,
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:  p.memStats.NumGC,
		Pose:     pose,
	}
	if p.logging {
		log.Printf("[Profiler] %s", r)
	}
	p.resetWindow()
	return r, true
}

func (p *Profiler) resetWindow() {
	p.frameCount = 0
	p.elapsed = 0
	p.minFrame = time.Duration(1<<63 - 1)
	p.maxFrame = 0
}
