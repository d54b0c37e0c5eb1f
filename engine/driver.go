package engine

import (
	"log"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/vmath"
)

// netAlpha dims the center line relative to the walls
const netAlpha = 0.6

// TickReport lists what happened during one Tick
type TickReport struct {
	Walls   []string // Wall IDs that produced a reflection
	Paddles []string // Paddle IDs that produced a reflection
	Served  bool     // Ball left the court and was replaced
}

// Driver runs the per-tick sequence: detect, respond, integrate.
// It is not safe for concurrent use; the frame loop owns it.
type Driver struct {
	cfg      Config
	court    *Court
	ball     *physics.Ball
	rng      vmath.Source
	contacts *CollisionTracker
}

// NewDriver builds a court of the given size and serves the first ball
func NewDriver(cfg Config, width, height float64, rng vmath.Source) *Driver {
	d := &Driver{
		cfg:      cfg,
		court:    NewCourt(width, height, cfg),
		rng:      rng,
		contacts: NewCollisionTracker(),
	}
	d.Serve()
	return d
}

func (d *Driver) Court() *Court       { return d.court }
func (d *Driver) Ball() *physics.Ball { return d.ball }

// SetBall installs b as the live ball, used for scripted serves
func (d *Driver) SetBall(b *physics.Ball) {
	d.ball = b
	d.contacts.Reset()
}

// Serve replaces the ball with a fresh one at court center heading in a random direction
func (d *Driver) Serve() {
	cx, cy := d.court.Center()
	size := d.cfg.BallSize
	d.SetBall(physics.NewBall(cx, cy, size, size, d.cfg.BallColor, d.cfg.BallSpeed, d.rng))

	dx, dy := d.ball.Direction()
	log.Printf("[SERVE] at (%.1f, %.1f) dir (%.3f, %.3f) speed %.3f", cx, cy, dx, dy, d.ball.Speed())
}

// Resize rebuilds the court for new dimensions and re-serves
func (d *Driver) Resize(width, height float64) {
	d.court = NewCourt(width, height, d.cfg)
	d.Serve()
}

// Tick advances the simulation by delta milliseconds
func (d *Driver) Tick(delta float64) TickReport {
	var report TickReport

	maxStep := d.cfg.PaddleSpeed * delta
	for i := range d.court.Paddles {
		d.court.TrackBall(i, d.ball.Cy(), maxStep)
	}

	for _, w := range d.court.Walls {
		if d.contacts.Observe(w.ID, d.ball.CheckCollision(w)) {
			d.ball.OnWallCollision(w.ID)
			report.Walls = append(report.Walls, w.ID)
		}
	}
	for _, p := range d.court.Paddles {
		if d.contacts.Observe(p.ID, d.ball.CheckCollision(p)) {
			d.ball.OnPlayerCollision(p.ID)
			report.Paddles = append(report.Paddles, p.ID)
		}
	}

	d.ball.Update(delta)

	// Large deltas can tunnel through a wall; bring the ball back
	if !d.ball.CheckCollision(d.court.Bounds()) {
		log.Printf("[ESCAPE] ball left court at (%.1f, %.1f)", d.ball.Cx(), d.ball.Cy())
		d.Serve()
		report.Served = true
	}

	return report
}

// Draw paints the court then the ball
func (d *Driver) Draw(p render.Painter) {
	cx, _ := d.court.Center()
	p.SetColor(d.cfg.WallColor.Blend(core.RGBBlack, netAlpha))
	for y := 1.0; y < d.court.Height; y += 2 {
		p.FillRect(cx, y, 1, 1)
	}

	p.SetColor(d.cfg.WallColor)
	for _, w := range d.court.Walls {
		p.FillRect(w.CX, w.CY, w.W, w.H)
	}

	p.SetColor(d.cfg.PaddleColor)
	for _, pd := range d.court.Paddles {
		p.FillRect(pd.CX, pd.CY, pd.W, pd.H)
	}

	d.ball.Draw(p)
}
