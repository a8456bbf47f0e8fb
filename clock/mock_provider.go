package clock

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing.
// Sleep advances virtual time instead of blocking, so code built on
// WaitForTic or WaitInterval runs to completion instantly under test.
type MockTimeProvider struct {
	mu    sync.RWMutex
	nanos uint64
}

// NewMockTimeProvider creates a mock provider with the given start
// reading. Start readings of zero are valid but collide with the
// FrameClock unset sentinel; tests normally start well above zero.
func NewMockTimeProvider(startNanos uint64) *MockTimeProvider {
	return &MockTimeProvider{
		nanos: startNanos,
	}
}

// NowNanos returns the current mocked reading.
func (m *MockTimeProvider) NowNanos() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nanos
}

// SetNanos sets the current reading for the mock.
func (m *MockTimeProvider) SetNanos(nanos uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nanos = nanos
}

// Advance advances the current reading by the given duration.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nanos += uint64(d)
}

// Sleep advances virtual time by d without blocking.
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.Advance(d)
}
