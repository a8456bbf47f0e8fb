package constants

import "time"

// Simulation Timing Constants
const (
	// TicRate is the fixed simulation step rate in tics per second,
	// set once for the process.
	TicRate = 35

	// FrameUpdateInterval is the rendering frame rate interval for the
	// demo programs (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)
