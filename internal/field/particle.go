package field

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind is the outline a particle is drawn with.
type Kind int

const (
	Circle Kind = iota
	Square
	Triangle
)

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a config name back to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return Circle, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}

// Particle is one animated shape. Kind, Size and Color are fixed at
// creation; position, velocity and rotation change every frame.
type Particle struct {
	X, Y          float64
	SpeedX        float64
	SpeedY        float64
	Rotation      float64
	RotationSpeed float64

	Kind  Kind
	Size  float64
	Color color.NRGBA
}

// advance moves p one frame within a width x height surface. A coordinate
// that leaves the surface reverses its velocity component; the position is
// not clamped, so p may sit just outside the bounds for one frame.
func (p *Particle) advance(width, height float64) {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Rotation += p.RotationSpeed

	if p.X < 0 || p.X > width {
		p.SpeedX = -p.SpeedX
	}
	if p.Y < 0 || p.Y > height {
		p.SpeedY = -p.SpeedY
	}
}
