// Package field implements the ambient particle background: a fixed batch
// of drifting shapes that bounce off the surface edges and are joined by
// fading lines when they come close to each other.
package field

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Surface is the drawing target a Field renders onto.
type Surface interface {
	Clear()
	Resize(width, height int)
	// DrawShape draws p at its position and rotation. alpha scales the
	// particle colour's own alpha.
	DrawShape(p Particle, alpha float64)
	DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64)
}

// Link is a connection between two particles closer than the link distance.
type Link struct {
	A, B     int
	Distance float64
	Alpha    float64
}

// LinkAlpha fades linearly from base at distance 0 to 0 at threshold.
// Distances at or beyond threshold yield 0.
func LinkAlpha(distance, threshold, base float64) float64 {
	if distance >= threshold || threshold <= 0 {
		return 0
	}
	return base * (1 - distance/threshold)
}

// Field owns the particles and the surface dimensions they move within.
type Field struct {
	cfg           Config
	width, height float64
	particles     []Particle
	links         []Link
}

// New spawns cfg.Count(width) particles spread over a width x height
// surface using rng.
func New(cfg Config, width, height int, rng *rand.Rand) *Field {
	f := &Field{
		cfg:    cfg,
		width:  float64(width),
		height: float64(height),
	}

	n := cfg.Count(width)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = spawn(cfg, f.width, f.height, rng)
	}
	return f
}

// FromParticles builds a field around an existing particle set.
func FromParticles(cfg Config, width, height int, particles []Particle) *Field {
	return &Field{
		cfg:       cfg,
		width:     float64(width),
		height:    float64(height),
		particles: particles,
	}
}

func spawn(cfg Config, width, height float64, rng *rand.Rand) Particle {
	p := Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		Size:   cfg.SizeMin + rng.Float64()*(cfg.SizeMax-cfg.SizeMin),
		SpeedX: (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
		SpeedY: (rng.Float64() - 0.5) * 2 * cfg.MaxSpeed,
		Kind:   Circle,
	}
	if len(cfg.Palette) > 0 {
		p.Color = cfg.Palette[rng.IntN(len(cfg.Palette))]
	}
	if len(cfg.Kinds) > 0 {
		p.Kind = cfg.Kinds[rng.IntN(len(cfg.Kinds))]
	}
	if cfg.MaxSpin > 0 {
		p.Rotation = rng.Float64() * 2 * math.Pi
		p.RotationSpeed = (rng.Float64() - 0.5) * 2 * cfg.MaxSpin
	}
	return p
}

// Len is the particle count. It never changes after New.
func (f *Field) Len() int { return len(f.particles) }

// Particles exposes the particles in draw order. Callers must not append.
func (f *Field) Particles() []Particle { return f.particles }

// Size returns the surface dimensions the particles bounce within.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Config returns the variant the field was built with.
func (f *Field) Config() Config { return f.cfg }

// Resize updates the bounds. Particles are left where they are.
func (f *Field) Resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
}

// Step advances every particle by one frame without drawing.
func (f *Field) Step() {
	for i := range f.particles {
		f.particles[i].advance(f.width, f.height)
	}
}

// Render draws one frame onto s and advances the simulation: each
// particle is drawn and then moved, after which the connection pass runs
// on the updated positions.
func (f *Field) Render(s Surface) {
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		s.DrawShape(*p, f.cfg.Opacity)
		p.advance(f.width, f.height)
	}

	f.links = f.appendLinks(f.links[:0])
	for _, l := range f.links {
		a, b := f.particles[l.A], f.particles[l.B]
		s.DrawLine(a.X, a.Y, b.X, b.Y, f.cfg.LinkWidth, f.cfg.LinkColor, l.Alpha)
	}
}

// Links returns the connections between the current particle positions.
func (f *Field) Links() []Link {
	return f.appendLinks(nil)
}

func (f *Field) appendLinks(dst []Link) []Link {
	threshold := f.cfg.LinkDistance
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			dx := f.particles[i].X - f.particles[j].X
			dy := f.particles[i].Y - f.particles[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= threshold {
				continue
			}
			dst = append(dst, Link{
				A:        i,
				B:        j,
				Distance: d,
				Alpha:    LinkAlpha(d, threshold, f.cfg.LinkAlpha),
			})
		}
	}
	return dst
}
