package input

import "time"

// DoubleTapWindow is the longest gap between two releases that still counts
// as a double tap.
const DoubleTapWindow = 500 * time.Millisecond

// TapDetector recognises double clicks and double taps from release times.
type TapDetector struct {
	window time.Duration
	last   time.Time
}

// NewTapDetector creates a detector using DoubleTapWindow.
func NewTapDetector() *TapDetector {
	return &TapDetector{window: DoubleTapWindow}
}

// Release records a pointer release and reports whether it completes a
// double tap. The gap must be strictly positive and strictly shorter than
// the window. After a double tap the detector starts over.
func (d *TapDetector) Release(at time.Time) bool {
	if !d.last.IsZero() {
		gap := at.Sub(d.last)
		if gap > 0 && gap < d.window {
			d.last = time.Time{}
			return true
		}
	}
	d.last = at
	return false
}

// Reset forgets the previous release.
func (d *TapDetector) Reset() {
	d.last = time.Time{}
}
