package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/render"
)

// Loop drives a Driver at a fixed frame rate against a tcell screen
type Loop struct {
	screen  tcell.Screen
	driver  *Driver
	painter *render.ScreenPainter
	clock   TimeProvider

	frameInterval time.Duration
	lastFrame     time.Time
	frameCount    uint64
}

// NewLoop wires driver to screen; fps must be positive
func NewLoop(screen tcell.Screen, driver *Driver, clock TimeProvider, fps int) *Loop {
	return &Loop{
		screen:        screen,
		driver:        driver,
		painter:       render.NewScreenPainter(screen),
		clock:         clock,
		frameInterval: time.Second / time.Duration(fps),
		lastFrame:     clock.Now(),
	}
}

// Run processes events and frames until ctx is done or a quit key is pressed
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(l.frameInterval)
	defer ticker.Stop()

	l.lastFrame = l.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !l.HandleEvent(ev) {
				log.Printf("[LOOP] quit after %d frames", l.frameCount)
				return nil
			}
		case <-ticker.C:
			l.Frame()
		}
	}
}

// Frame runs one tick with the elapsed time since the previous frame, then redraws
func (l *Loop) Frame() TickReport {
	now := l.clock.Now()
	delta := float64(now.Sub(l.lastFrame)) / float64(time.Millisecond)
	l.lastFrame = now
	l.frameCount++

	report := l.driver.Tick(delta)
	for _, id := range report.Walls {
		log.Printf("[HIT] wall %s frame %d", id, l.frameCount)
	}
	for _, id := range report.Paddles {
		log.Printf("[HIT] paddle %s frame %d", id, l.frameCount)
	}

	l.screen.Clear()
	l.driver.Draw(l.painter)
	l.screen.Show()
	return report
}

// FrameCount returns the number of frames run so far
func (l *Loop) FrameCount() uint64 {
	return l.frameCount
}

// HandleEvent reacts to resize and quit keys, returns false when the loop should stop
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return !isQuitKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		w, h := ev.Size()
		log.Printf("[LOOP] resize to %dx%d", w, h)
		l.driver.Resize(float64(w), float64(h))
		l.screen.Sync()
	}
	return true
}

func isQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}
