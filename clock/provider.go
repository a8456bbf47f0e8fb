package clock

import "time"

// TimeProvider abstracts the time source a FrameClock reads from.
// Sleep is part of the interface so that wait loops can run against a
// mock provider in virtual time instead of parking the test.
type TimeProvider interface {
	// NowNanos returns the current reading of the clock in
	// nanoseconds. Readings are monotonic and never zero; zero is
	// reserved as the "unset" sentinel in FrameClock state.
	NowNanos() uint64

	// Sleep pauses the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// MonotonicTimeProvider reads the real system clock. Readings are
// derived from time.Since against a fixed epoch, so they carry Go's
// monotonic clock component and are immune to wall clock adjustment.
type MonotonicTimeProvider struct {
	epoch time.Time
}

// NewMonotonicTimeProvider creates a provider backed by the system
// monotonic clock.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	// Back-dating the epoch keeps every reading well above zero,
	// which FrameClock reserves as its unset sentinel.
	return &MonotonicTimeProvider{
		epoch: time.Now().Add(-time.Hour),
	}
}

// NowNanos returns nanoseconds of monotonic clock reading.
func (p *MonotonicTimeProvider) NowNanos() uint64 {
	return uint64(time.Since(p.epoch))
}

// Sleep delegates to time.Sleep.
func (p *MonotonicTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
