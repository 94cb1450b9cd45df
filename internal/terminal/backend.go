// Package terminal runs the loop on a tcell screen. The 700x800 surface is
// scaled onto whatever grid the terminal has; a cell is filled when its
// center falls on the disc.
package terminal

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"circlegame/internal/clock"
	"circlegame/internal/config"
	"circlegame/internal/input"
	"circlegame/internal/loop"
)

// Terminals report key presses but never releases. A press counts as held
// for this many frames, which bridges the gap between autorepeat events.
const HoldFrames = 6

const (
	dirLeft = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlack)
	styleCircle     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
)

const discRune = '█'

type Backend struct {
	screen  tcell.Screen
	ctrl    *loop.Controller
	limiter *clock.Limiter
	log     *zap.Logger

	// Logical surface size in pixels
	width, height int

	held [dirCount]int // Frames left per direction
}

// New wraps an initialized screen. The caller owns Init/Fini.
func New(screen tcell.Screen, ctrl *loop.Controller, cfg config.Config, log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	screen.SetStyle(styleBackground)
	screen.HideCursor()

	return &Backend{
		screen:  screen,
		ctrl:    ctrl,
		limiter: clock.NewLimiter(cfg.TPS),
		log:     log,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

// Run drives frames until the controller stops or ctx is cancelled. Both
// are a normal quit and return nil.
func (b *Backend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 128)
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks, so it gets its own goroutine. It only forwards;
	// all state changes happen on this goroutine when the frame drains.
	go func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	b.log.Info("terminal loop started")

	for b.ctrl.Running() {
		b.Frame(drain(events))

		if err := b.limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				b.ctrl.HandleEvents([]input.Event{input.EventQuit})
				break
			}
			return err
		}
	}
	return nil
}

// drain empties whatever is queued without blocking, preserving order.
func drain(events <-chan tcell.Event) []tcell.Event {
	var out []tcell.Event
	for {
		select {
		case ev := <-events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Frame runs one full iteration: translate events, step, draw, show.
func (b *Backend) Frame(events []tcell.Event) {
	b.ctrl.Step(b.translate(events))
	b.draw()
}

func (b *Backend) translate(events []tcell.Event) input.Frame {
	var f input.Frame

	for i := range b.held {
		if b.held[i] > 0 {
			b.held[i]--
		}
	}

	for _, ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				f.Pending = append(f.Pending, input.EventQuit)
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					f.Pending = append(f.Pending, input.EventQuit)
				}
			case tcell.KeyLeft:
				b.held[dirLeft] = HoldFrames
			case tcell.KeyRight:
				b.held[dirRight] = HoldFrames
			case tcell.KeyUp:
				b.held[dirUp] = HoldFrames
			case tcell.KeyDown:
				b.held[dirDown] = HoldFrames
			}
		case *tcell.EventResize:
			b.screen.Sync()
			w, h := b.screen.Size()
			b.log.Debug("terminal resized", zap.Int("cols", w), zap.Int("rows", h))
		}
	}

	f.Held = input.Directions{
		Left:  b.held[dirLeft] > 0,
		Right: b.held[dirRight] > 0,
		Up:    b.held[dirUp] > 0,
		Down:  b.held[dirDown] > 0,
	}
	return f
}

func (b *Backend) draw() {
	// 1. Clear Screen
	b.screen.Fill(' ', styleBackground)

	cols, rows := b.screen.Size()
	if cols <= 0 || rows <= 0 {
		b.screen.Show()
		return
	}

	// 2. Disc: sample each cell's center in surface pixels
	circle := b.ctrl.Circle()
	sx := float64(b.width) / float64(cols)
	sy := float64(b.height) / float64(rows)

	minCol, maxCol := cellRange(circle.X, circle.Radius, sx, cols)
	minRow, maxRow := cellRange(circle.Y, circle.Radius, sy, rows)

	for row := minRow; row <= maxRow; row++ {
		py := (float64(row) + 0.5) * sy
		for col := minCol; col <= maxCol; col++ {
			px := (float64(col) + 0.5) * sx
			if circle.Contains(px, py) {
				b.screen.SetContent(col, row, discRune, nil, styleCircle)
			}
		}
	}

	// 3. Present
	b.screen.Show()
}

// cellRange returns the cells that can overlap [center-radius, center+radius].
func cellRange(center, radius int, scale float64, n int) (int, int) {
	lo := int(float64(center-radius) / scale)
	hi := int(float64(center+radius) / scale)
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
