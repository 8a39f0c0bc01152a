package performance

import "time"

// FramePacer caps the event loop at a target rate and tracks how long
// frames take. It is owned by the loop goroutine.
type FramePacer struct {
	budget     time.Duration
	frameTimes *RollingAverage
	slowFrames int
	frames     int
}

// FrameReport summarises recent frame timing
type FrameReport struct {
	AvgFrameMs float64
	Frames     int
	SlowFrames int
}

// NewFramePacer creates a pacer for targetFPS averaging over window frames
func NewFramePacer(targetFPS, window int) *FramePacer {
	if targetFPS < 1 {
		targetFPS = 1
	}
	return &FramePacer{
		budget:     time.Second / time.Duration(targetFPS),
		frameTimes: NewRollingAverage(window),
	}
}

// Budget returns the time available for one frame
func (p *FramePacer) Budget() time.Duration {
	return p.budget
}

// Record notes how long a frame's work took and returns how long the loop
// should sleep to stay on budget
func (p *FramePacer) Record(elapsed time.Duration) time.Duration {
	p.frames++
	p.frameTimes.Add(elapsed)
	if elapsed > p.budget {
		p.slowFrames++
		return 0
	}
	return p.budget - elapsed
}

// Report returns the timing since the last Reset
func (p *FramePacer) Report() FrameReport {
	return FrameReport{
		AvgFrameMs: float64(p.frameTimes.Average().Microseconds()) / 1000.0,
		Frames:     p.frames,
		SlowFrames: p.slowFrames,
	}
}

// Reset clears the counters, e.g. after the loop was paused by a launch
func (p *FramePacer) Reset() {
	p.frameTimes.Reset()
	p.frames = 0
	p.slowFrames = 0
}
