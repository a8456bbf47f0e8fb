package clock

// rateWindow is the number of frame deltas averaged by RateCounter.
const rateWindow = 32

// RateCounter derives a frames-per-second estimate from successive
// frame timestamps. Feed it FPSMillis once per frame; FPSMillis is
// unaffected by the first-frame epoch, so the counter keeps working
// across freezes.
//
// Like FrameClock, a RateCounter belongs to the frame loop goroutine
// and is not internally synchronized.
type RateCounter struct {
	primed bool
	last   uint32

	deltas [rateWindow]uint32
	next   int
	count  int
}

// NewRateCounter creates an empty frame-rate counter.
func NewRateCounter() *RateCounter {
	return &RateCounter{}
}

// Frame records a frame boundary at the given millisecond timestamp.
// The first call only primes the counter.
func (rc *RateCounter) Frame(nowMillis uint32) {
	if !rc.primed {
		rc.primed = true
		rc.last = nowMillis
		return
	}

	rc.deltas[rc.next] = nowMillis - rc.last
	rc.last = nowMillis
	rc.next = (rc.next + 1) % rateWindow
	if rc.count < rateWindow {
		rc.count++
	}
}

// Rate returns the average frame rate over the window in frames per
// second. It returns 0 until two frames have been recorded, and 0
// when the recorded frames span less than a millisecond.
func (rc *RateCounter) Rate() float64 {
	if rc.count == 0 {
		return 0
	}

	var total uint32
	for i := 0; i < rc.count; i++ {
		total += rc.deltas[i]
	}
	if total == 0 {
		return 0
	}

	return float64(rc.count) * 1000 / float64(total)
}

// Reset discards all recorded frames.
func (rc *RateCounter) Reset() {
	*rc = RateCounter{}
}
