package loop

import (
	"time"

	"go.uber.org/zap"

	"circlegame/internal/config"
	"circlegame/internal/entity"
	"circlegame/internal/input"
)

// Controller owns everything that changes between frames: the circle, the
// running flag and the frame count. Backends drive it once per frame with
// Step and then render Circle().
type Controller struct {
	bounds  entity.Bounds
	circle  *entity.Circle
	running bool

	frames  uint64
	blocked uint64
	started time.Time

	log *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}

	bounds := entity.Bounds{
		Width:  cfg.Window.Width,
		Height: cfg.Window.PlayingArea,
	}
	c := &Controller{
		bounds:  bounds,
		circle:  entity.NewCircle(bounds, cfg.Circle.Radius, cfg.Circle.Speed),
		running: true,
		started: time.Now(),
		log:     log,
	}

	log.Info("loop initialized",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("playing_area", cfg.Window.PlayingArea),
		zap.Int("x", c.circle.X),
		zap.Int("y", c.circle.Y),
		zap.Int("tps", cfg.TPS),
	)
	return c
}

func (c *Controller) Running() bool { return c.running }

func (c *Controller) Bounds() entity.Bounds { return c.bounds }

func (c *Controller) Frames() uint64 { return c.frames }

// Circle returns a copy; only Step moves the circle.
func (c *Controller) Circle() entity.Circle { return *c.circle }

// HandleEvents processes one frame's drained events in order.
func (c *Controller) HandleEvents(events []input.Event) {
	for _, ev := range events {
		switch ev {
		case input.EventQuit:
			if c.running {
				c.log.Info("quit requested", zap.Uint64("frame", c.frames))
			}
			c.running = false
		}
	}
}

// Step runs the update half of one frame: events first, then movement.
// A quit seen here does not cancel this frame's movement or draw; the
// backend stops at its next Running check.
func (c *Controller) Step(src input.Source) {
	c.HandleEvents(src.Events())

	d := src.Directions()
	if n := c.circle.Move(d, c.bounds); n > 0 {
		c.blocked += uint64(n)
		c.log.Debug("move blocked at edge",
			zap.Int("x", c.circle.X),
			zap.Int("y", c.circle.Y),
			zap.Int("dropped", n),
		)
	}
	c.frames++
}

// Shutdown logs the run summary.
func (c *Controller) Shutdown() {
	elapsed := time.Since(c.started)
	fps := 0.0
	if s := elapsed.Seconds(); s > 0 {
		fps = float64(c.frames) / s
	}
	c.log.Info("loop stopped",
		zap.Uint64("frames", c.frames),
		zap.Uint64("blocked_moves", c.blocked),
		zap.Duration("elapsed", elapsed),
		zap.Float64("avg_fps", fps),
	)
	_ = c.log.Sync()
}
