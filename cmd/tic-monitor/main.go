// tic-monitor renders a live view of a FrameClock: current tic, tic
// fraction, elapsed time and frame rate. Space freezes and resumes the
// clock, q or ESC quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gametime/clock"
	"github.com/lixenwraith/gametime/constants"
)

var ticRateFlag = flag.Int("ticrate", constants.TicRate, "Simulation tics per second")

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the monitor crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTIC-MONITOR CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	fc := clock.New(clock.NewMonotonicTimeProvider(), *ticRateFlag)
	rate := clock.NewRateCounter()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					fc.Freeze(!fc.IsFrozen())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			fc.SetFrameTime()
			rate.Frame(fc.FPSMillis())
			drawStatus(screen, fc, rate)
		}
	}
}

func drawStatus(screen tcell.Screen, fc *clock.FrameClock, rate *clock.RateCounter) {
	style := tcell.StyleDefault
	highlight := style.Bold(true)

	var tic int
	frac := fc.TicFraction(&tic)

	state := "running"
	stateStyle := style.Foreground(tcell.ColorGreen)
	if fc.IsFrozen() {
		state = "FROZEN"
		stateStyle = style.Foreground(tcell.ColorRed)
	}

	screen.Clear()
	drawText(screen, 1, 1, highlight, fmt.Sprintf("tic rate   %d/sec", fc.TicRate()))
	drawText(screen, 1, 2, style, fmt.Sprintf("tic        %d", tic))
	drawText(screen, 1, 3, style, fmt.Sprintf("fraction   %.3f", frac))
	drawText(screen, 1, 4, style, fmt.Sprintf("elapsed    %d ms", fc.Millis()))
	drawText(screen, 1, 5, style, fmt.Sprintf("frame rate %.1f fps", rate.Rate()))
	drawText(screen, 1, 6, stateStyle, state)
	drawText(screen, 1, 8, style, "space: freeze/resume   q: quit")
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
