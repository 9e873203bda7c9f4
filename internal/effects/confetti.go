package effects

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// ConfettiConfig holds burst tuning. Durations are in ticks.
type ConfettiConfig struct {
	Duration      int     // Total length of the burst
	Interval      int     // Ticks between spawn waves
	MaxPerWave    int     // Particles per origin in the first wave; later waves shrink linearly
	StartVelocity float64 // Playfield units per tick
	Gravity       float64
	Decay         float64 // Velocity multiplier per tick
	ParticleTTL   int
}

// DefaultConfettiConfig returns a 3 second burst at the given tick rate,
// spawning a wave every quarter second.
func DefaultConfettiConfig(tickRate int) ConfettiConfig {
	if tickRate <= 0 {
		tickRate = 60
	}
	return ConfettiConfig{
		Duration:      3 * tickRate,
		Interval:      core.Max(tickRate/4, 1),
		MaxPerWave:    12,
		StartVelocity: 12,
		Gravity:       0.5,
		Decay:         0.92,
		ParticleTTL:   tickRate,
	}
}

// confettiGlyphs are drawn at random per particle.
var confettiGlyphs = []rune{'*', '+', '•', '✦', '▪'}

var confettiColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorOrange,
}

// Particle is a single piece of confetti in playfield coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Color  core.Color
	TTL    int
}

// Confetti is the victory burst. It spawns waves from two side origins
// (left fifth and right fifth of the playfield) until the burst expires,
// then lets the remaining particles fade out.
type Confetti struct {
	cfg       ConfettiConfig
	width     float64
	height    float64
	rng       *SimpleRNG
	particles []Particle
	elapsed   int
	bursting  bool
}

// NewConfetti creates an idle confetti effect for a playfield.
func NewConfetti(width, height float64, cfg ConfettiConfig, seed int64) *Confetti {
	return &Confetti{
		cfg:    cfg,
		width:  width,
		height: height,
		rng:    NewSimpleRNG(seed),
	}
}

// React starts a burst on victory.
func (c *Confetti) React(ev breakout.Event) error {
	if ev.Kind == breakout.EventVictory {
		c.Start()
	}
	return nil
}

// Start begins a new burst. A running burst restarts.
func (c *Confetti) Start() {
	c.elapsed = 0
	c.bursting = true
}

// Active reports whether anything is still on screen or about to spawn.
func (c *Confetti) Active() bool {
	return c.bursting || len(c.particles) > 0
}

// Particles returns the live particles.
func (c *Confetti) Particles() []Particle {
	return c.particles
}

// Update advances the effect by one tick.
func (c *Confetti) Update() {
	if c.bursting {
		if c.elapsed >= c.cfg.Duration {
			c.bursting = false
		} else {
			if c.elapsed%c.cfg.Interval == 0 {
				c.spawnWave()
			}
			c.elapsed++
		}
	}

	// Move particles and remove expired ones
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= c.cfg.Decay
		p.VY = p.VY*c.cfg.Decay + c.cfg.Gravity
		p.TTL--
		if p.TTL > 0 && p.Y < c.height {
			alive = append(alive, p)
		}
	}
	c.particles = alive
}

// spawnWave emits particles from both origins. Wave size shrinks as the
// burst runs out.
func (c *Confetti) spawnWave() {
	left := float64(c.cfg.Duration-c.elapsed) / float64(c.cfg.Duration)
	count := int(math.Ceil(float64(c.cfg.MaxPerWave) * left))

	for range count {
		c.spawn(c.rng.Range(0.1, 0.3))
		c.spawn(c.rng.Range(0.7, 0.9))
	}
}

func (c *Confetti) spawn(originX float64) {
	angle := c.rng.Range(0, 2*math.Pi)
	speed := c.cfg.StartVelocity * c.rng.Range(0.5, 1)

	c.particles = append(c.particles, Particle{
		X:     originX * c.width,
		Y:     c.rng.Range(-0.2, 0.8) * c.height,
		VX:    speed * math.Cos(angle),
		VY:    speed * math.Sin(angle),
		Glyph: confettiGlyphs[c.rng.Intn(len(confettiGlyphs))],
		Color: confettiColors[c.rng.Intn(len(confettiColors))],
		TTL:   c.cfg.ParticleTTL,
	})
}

// Render draws live particles into the viewport.
func (c *Confetti) Render(dst *core.Screen, view breakout.Viewport) {
	for _, p := range c.particles {
		cx, cy := view.ToCell(p.X, p.Y)
		if view.Contains(cx, cy) {
			dst.SetColored(cx, cy, p.Glyph, p.Color)
		}
	}
}
