package loop

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"circlegame/internal/config"
	"circlegame/internal/input"
)

func newTestController(t *testing.T) (*Controller, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(config.Default(), zap.New(core)), logs
}

func hold(d input.Directions) input.Frame {
	return input.Frame{Held: d}
}

func TestNewStartsCentered(t *testing.T) {
	c, logs := newTestController(t)

	if !c.Running() {
		t.Error("controller not running after New")
	}
	circle := c.Circle()
	if circle.X != 350 || circle.Y != 300 || circle.Radius != 20 || circle.Speed != 5 {
		t.Errorf("circle = %+v", circle)
	}
	if b := c.Bounds(); b.Width != 700 || b.Height != 600 {
		t.Errorf("bounds = %+v, want 700x600", b)
	}
	if logs.FilterMessage("loop initialized").Len() != 1 {
		t.Error("missing startup log")
	}
}

func TestNilLogger(t *testing.T) {
	c := New(config.Default(), nil)
	c.Step(hold(input.Directions{Left: true}))
	c.Shutdown()
	if c.Circle().X != 345 {
		t.Errorf("x = %d, want 345", c.Circle().X)
	}
}

// Every reachable position stays inside the margin, whatever is held.
func TestInvariantHoldsForAllFrames(t *testing.T) {
	c, _ := newTestController(t)

	pattern := []input.Directions{
		{Left: true},
		{Left: true, Up: true},
		{Up: true},
		{Right: true, Up: true},
		{Right: true},
		{Right: true, Down: true},
		{Down: true},
		{Left: true, Down: true},
	}

	for _, d := range pattern {
		for i := 0; i < 150; i++ {
			c.Step(hold(d))
			p := c.Circle()
			if p.X < 20 || p.X > 680 || p.Y < 20 || p.Y > 580 {
				t.Fatalf("holding %+v: position (%d, %d) out of bounds", d, p.X, p.Y)
			}
		}
	}
}

func TestCornerHalts(t *testing.T) {
	c, logs := newTestController(t)

	for i := 0; i < 100; i++ {
		c.Step(hold(input.Directions{Left: true, Up: true}))
	}
	if p := c.Circle(); p.X != 25 || p.Y != 25 {
		t.Errorf("top-left = (%d, %d), want (25, 25)", p.X, p.Y)
	}

	for i := 0; i < 200; i++ {
		c.Step(hold(input.Directions{Right: true, Down: true}))
	}
	if p := c.Circle(); p.X != 675 || p.Y != 575 {
		t.Errorf("bottom-right = (%d, %d), want (675, 575)", p.X, p.Y)
	}

	if c.Frames() != 300 {
		t.Errorf("frames = %d, want 300", c.Frames())
	}
	if logs.FilterMessage("move blocked at edge").Len() == 0 {
		t.Error("expected blocked moves to be logged")
	}
}

func TestDiagonalSingleFrame(t *testing.T) {
	c, _ := newTestController(t)
	c.Step(hold(input.Directions{Left: true, Up: true}))
	if p := c.Circle(); p.X != 345 || p.Y != 295 {
		t.Errorf("position = (%d, %d), want (345, 295)", p.X, p.Y)
	}
}

func TestNoInputIdempotent(t *testing.T) {
	c, logs := newTestController(t)
	for i := 0; i < 1000; i++ {
		c.Step(input.Frame{})
	}
	if p := c.Circle(); p.X != 350 || p.Y != 300 {
		t.Errorf("position = (%d, %d), want (350, 300)", p.X, p.Y)
	}
	if logs.FilterMessage("move blocked at edge").Len() != 0 {
		t.Error("blocked log without input")
	}
}

// Quit stops the loop at the next check, but the frame that saw it still
// updates.
func TestQuitFinishesCurrentFrame(t *testing.T) {
	c, logs := newTestController(t)

	c.Step(input.Frame{
		Pending: []input.Event{input.EventNone, input.EventQuit, input.EventQuit},
		Held:    input.Directions{Right: true},
	})

	if c.Running() {
		t.Error("still running after quit event")
	}
	if c.Circle().X != 355 {
		t.Errorf("x = %d, want 355: quit frame must still move", c.Circle().X)
	}
	if c.Frames() != 1 {
		t.Errorf("frames = %d, want 1", c.Frames())
	}
	if n := logs.FilterMessage("quit requested").Len(); n != 1 {
		t.Errorf("quit logged %d times, want 1", n)
	}
}

func TestHandleEventsIgnoresNone(t *testing.T) {
	c, _ := newTestController(t)
	c.HandleEvents([]input.Event{input.EventNone, input.EventNone})
	if !c.Running() {
		t.Error("EventNone stopped the loop")
	}
	c.HandleEvents(nil)
	if !c.Running() {
		t.Error("empty event list stopped the loop")
	}
}

func TestShutdownLogsSummary(t *testing.T) {
	c, logs := newTestController(t)
	for i := 0; i < 10; i++ {
		c.Step(input.Frame{})
	}
	c.Shutdown()

	entries := logs.FilterMessage("loop stopped").All()
	if len(entries) != 1 {
		t.Fatalf("got %d shutdown entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["frames"] != uint64(10) {
		t.Errorf("frames field = %v, want 10", fields["frames"])
	}
}
