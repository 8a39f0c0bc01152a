package performance

import "time"

// RollingAverage keeps the mean of the last N durations
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	index   int
	filled  bool
}

// NewRollingAverage creates an average over windowSize samples. A window
// below one is treated as one.
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{samples: make([]time.Duration, windowSize)}
}

// Add records a sample, evicting the oldest once the window is full
func (r *RollingAverage) Add(d time.Duration) {
	if r.filled {
		r.sum -= r.samples[r.index]
	}
	r.samples[r.index] = d
	r.sum += d

	r.index++
	if r.index == len(r.samples) {
		r.index = 0
		r.filled = true
	}
}

// Count returns how many samples the average covers
func (r *RollingAverage) Count() int {
	if r.filled {
		return len(r.samples)
	}
	return r.index
}

// Average returns the mean, or zero with no samples
func (r *RollingAverage) Average() time.Duration {
	n := r.Count()
	if n == 0 {
		return 0
	}
	return r.sum / time.Duration(n)
}

// Reset drops all samples
func (r *RollingAverage) Reset() {
	for i := range r.samples {
		r.samples[i] = 0
	}
	r.sum = 0
	r.index = 0
	r.filled = false
}
