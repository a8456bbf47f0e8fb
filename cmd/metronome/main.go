// metronome paces itself with FrameClock.WaitForTic and plays a short
// click on each beat, demonstrating the wait primitives against the
// real clock.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/gametime/clock"
	"github.com/lixenwraith/gametime/constants"
)

const sampleRate = beep.SampleRate(48000)

var (
	ticRateFlag = flag.Int("ticrate", constants.TicRate, "Simulation tics per second")
	everyFlag   = flag.Int("every", constants.TicRate, "Tics between clicks")
	beatsFlag   = flag.Int("beats", 8, "Number of beats to play (0 = forever)")
)

func main() {
	flag.Parse()

	if *everyFlag < 1 {
		fmt.Fprintf(os.Stderr, "Invalid -every value %d: must be at least 1\n", *everyFlag)
		os.Exit(1)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize speaker: %v\n", err)
		os.Exit(1)
	}

	fc := clock.New(clock.NewMonotonicTimeProvider(), *ticRateFlag)

	// Brief lead-in before the first beat
	fc.WaitInterval(35)

	tic := fc.CurrentTic()
	for beat := 1; *beatsFlag == 0 || beat <= *beatsFlag; beat++ {
		tic = fc.WaitForTic(tic + *everyFlag - 1)

		speaker.Play(beep.Take(sampleRate.N(time.Millisecond*60), NewClickGenerator(sampleRate, 880)))
		fmt.Printf("beat %d  tic %d  %d ms\n", beat, tic, fc.Millis())
	}

	// Let the last click ring out before the speaker goes away
	fc.WaitInterval(14)
}

// ClickGenerator generates a short decaying sine click
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click sound generator
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sine burst with a fast exponential decay
		sample := 0.4 * math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*80)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
