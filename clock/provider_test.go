package clock

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	n1 := provider.NowNanos()
	time.Sleep(10 * time.Millisecond)
	n2 := provider.NowNanos()

	if n1 == 0 || n2 == 0 {
		t.Errorf("Expected nonzero readings, got n1=%d, n2=%d", n1, n2)
	}

	if n2 <= n1 {
		t.Errorf("Expected n2 to be after n1, but got n1=%d, n2=%d", n1, n2)
	}

	diff := time.Duration(n2 - n1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMonotonicTimeProviderSleep(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	n1 := provider.NowNanos()
	provider.Sleep(10 * time.Millisecond)
	n2 := provider.NowNanos()

	if diff := time.Duration(n2 - n1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms to pass across Sleep, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	const start = uint64(5_000_000_000)
	mock := NewMockTimeProvider(start)

	// Test initial reading
	if got := mock.NowNanos(); got != start {
		t.Errorf("Expected initial reading %d, got %d", start, got)
	}

	// Test SetNanos
	mock.SetNanos(7_000_000_000)
	if got := mock.NowNanos(); got != 7_000_000_000 {
		t.Errorf("Expected reading 7000000000 after SetNanos, got %d", got)
	}

	// Test Advance
	mock.Advance(1 * time.Second)
	if got := mock.NowNanos(); got != 8_000_000_000 {
		t.Errorf("Expected reading 8000000000 after Advance, got %d", got)
	}

	// Test that Sleep advances virtual time without blocking
	mock.Sleep(500 * time.Millisecond)
	if got := mock.NowNanos(); got != 8_500_000_000 {
		t.Errorf("Expected reading 8500000000 after Sleep, got %d", got)
	}

	// Test multiple advances
	mock.Advance(30 * time.Millisecond)
	mock.Advance(15 * time.Millisecond)
	if got := mock.NowNanos(); got != 8_545_000_000 {
		t.Errorf("Expected reading 8545000000 after multiple advances, got %d", got)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(1_000_000_000)

	// Test concurrent reads and writes
	done := make(chan bool)

	// Multiple readers
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.NowNanos()
			}
			done <- true
		}()
	}

	// Multiple writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				mock.Advance(1 * time.Millisecond)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for i := 0; i < 15; i++ {
		<-done
	}

	// Verify the reading advanced by 5 * 50 * 1ms = 250ms
	want := uint64(1_000_000_000) + uint64(250*time.Millisecond)
	if got := mock.NowNanos(); got != want {
		t.Errorf("Expected reading %d after concurrent operations, got %d", want, got)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	// Test that both implementations satisfy the TimeProvider interface
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
