// Package clock provides fixed-rate tic timekeeping for a real-time
// simulation loop.
//
// A FrameClock converts readings from a monotonic time source into a
// 1-based tic counter at a fixed rate, supports freezing (frozen spans
// are excised from the elapsed timeline) and sleep-based
// synchronization to a target tic. Queries read the snapshot cached by
// SetFrameTime, so every query within one frame observes the same
// time.
//
// A FrameClock is not internally synchronized. One goroutine, the
// frame loop, owns SetFrameTime, and queries are expected from that
// same goroutine between snapshots. Callers on other goroutines need
// external synchronization.
package clock

import "time"

// vblRate is the legacy 70 Hz delay reference used by WaitInterval.
// It never synchronizes to an actual display; the rate survives
// purely as a delay unit.
const vblRate = 70

// FrameClock tracks elapsed simulation time as discrete tics at a
// fixed rate. The zero value is not usable; create one with New.
type FrameClock struct {
	provider TimeProvider
	ticRate  uint64 // simulation tics per second

	firstFrameStart   uint64 // ns reading of the first frame; 0 = not yet set
	currentFrameStart uint64 // ns reading of the most recent snapshot
	freezeTime        uint64 // ns reading when freezing began; 0 = not frozen
}

// New creates a FrameClock reading from provider, counting ticRate
// tics per second.
func New(provider TimeProvider, ticRate int) *FrameClock {
	return &FrameClock{
		provider: provider,
		ticRate:  uint64(ticRate),
	}
}

// TicRate returns the fixed simulation rate in tics per second.
func (fc *FrameClock) TicRate() int {
	return int(fc.ticRate)
}

// SetFrameTime caches the clock reading for the current frame. Must be
// called once per rendered frame, before any query for that frame.
// While frozen it does nothing, so the frame's perceived time stays
// pinned at the freeze point.
func (fc *FrameClock) SetFrameTime() {
	if fc.freezeTime != 0 {
		return
	}
	fc.currentFrameStart = fc.provider.NowNanos()
	if fc.firstFrameStart == 0 {
		fc.firstFrameStart = fc.currentFrameStart
	}
}

// ElapsedNanos returns nanoseconds since the first frame, read from
// the cached snapshot so repeated calls within one frame are stable.
//
// While frozen it reads the live clock: the first frozen call seeds
// the first-frame epoch and returns 0, later frozen calls keep
// advancing. CurrentTic and TicFraction stay pinned during the same
// freeze. The asymmetry is inherited behavior kept for compatibility.
func (fc *FrameClock) ElapsedNanos() uint64 {
	if fc.freezeTime == 0 {
		return fc.currentFrameStart - fc.firstFrameStart
	}
	if fc.firstFrameStart == 0 {
		fc.firstFrameStart = fc.provider.NowNanos()
		return 0
	}
	return fc.provider.NowNanos() - fc.firstFrameStart
}

// FPSNanos returns the raw snapshot reading, or a live reading while
// frozen. It measures frame-to-frame deltas for a frame-rate counter
// and is unaffected by the first-frame epoch.
func (fc *FrameClock) FPSNanos() uint64 {
	if fc.freezeTime == 0 {
		return fc.currentFrameStart
	}
	return fc.provider.NowNanos()
}

// Millis returns ElapsedNanos truncated to milliseconds.
func (fc *FrameClock) Millis() uint32 {
	return nsToMillis(fc.ElapsedNanos())
}

// FPSMillis returns FPSNanos truncated to milliseconds.
func (fc *FrameClock) FPSMillis() uint32 {
	return nsToMillis(fc.FPSNanos())
}

// CurrentTic returns the 1-based tic index of the cached snapshot.
// The first queried tic is 1, and the value is stable for the
// duration of a frame.
func (fc *FrameClock) CurrentTic() int {
	return fc.nsToTic(fc.currentFrameStart-fc.firstFrameStart) + 1
}

// TicFraction returns how far through the current tic interval the
// cached snapshot has progressed, in [0, 1), for sub-tic interpolation
// between discrete simulation steps. If outTic is non-nil it receives
// the 1-based tic, matching CurrentTic.
func (fc *FrameClock) TicFraction(outTic *int) float64 {
	tic := fc.nsToTic(fc.currentFrameStart - fc.firstFrameStart)
	ticStart := fc.firstFrameStart + fc.ticToNS(tic)
	ticNext := fc.firstFrameStart + fc.ticToNS(tic+1)

	if outTic != nil {
		*outTic = tic + 1
	}

	return float64(fc.currentFrameStart-ticStart) / float64(ticNext-ticStart)
}

// IsFrozen returns whether frame time is currently frozen.
func (fc *FrameClock) IsFrozen() bool {
	return fc.freezeTime != 0
}

// Freeze pins frame time (true) or resumes it (false). On resume the
// first-frame epoch is advanced by the frozen duration and a fresh
// snapshot is taken, so frozen spans are excised from the elapsed
// timeline and simulation tics do not advance across them.
//
// Freezing while already frozen overwrites the recorded freeze start
// with a new reading; the earlier span since the original freeze is
// then counted as elapsed on resume.
func (fc *FrameClock) Freeze(frozen bool) {
	if frozen {
		fc.freezeTime = fc.provider.NowNanos()
		return
	}
	fc.firstFrameStart += fc.provider.NowNanos() - fc.freezeTime
	fc.freezeTime = 0
	fc.SetFrameTime()
}

// WaitForTic blocks until the current tic exceeds prevTic and returns
// the first tic observed past it. Most of the wait is slept, keeping a
// 2 ms margin for scheduler imprecision before polling again. If the
// tic is already past prevTic it returns immediately without sleeping.
//
// Time must not be frozen: frozen tics never advance and the wait
// would never return.
func (fc *FrameClock) WaitForTic(prevTic int) int {
	tic := fc.CurrentTic()
	for tic <= prevTic {
		if sleepTime := prevTic - tic; sleepTime > 2 {
			fc.provider.Sleep(time.Duration(sleepTime-2) * time.Millisecond)
		}
		fc.SetFrameTime()
		tic = fc.CurrentTic()
	}
	return tic
}

// WaitInterval sleeps for count units of the 70 Hz delay reference
// (1000*count/70 milliseconds) and then snapshots frame time.
func (fc *FrameClock) WaitInterval(count int) {
	fc.provider.Sleep(time.Duration(1000*count/vblRate) * time.Millisecond)
	fc.SetFrameTime()
}

// nsToTic converts an elapsed duration to a 0-based tic index with
// floor division.
func (fc *FrameClock) nsToTic(ns uint64) int {
	return int(ns * fc.ticRate / uint64(time.Second))
}

// ticToNS returns the nanosecond offset of a tic boundary.
func (fc *FrameClock) ticToNS(tic int) uint64 {
	return uint64(tic) * uint64(time.Second) / fc.ticRate
}

func nsToMillis(ns uint64) uint32 {
	return uint32(ns / uint64(time.Millisecond))
}
