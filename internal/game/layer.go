package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/charro-ambient/internal/field"
)

// layer is the particle drawing surface the home page composites over its
// gradient.
type layer interface {
	field.Surface
	Image() *ebiten.Image
}

// imageLayer is an offscreen ebiten image sized to the viewport.
type imageLayer struct {
	img      *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newImageLayer() *imageLayer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &imageLayer{
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (l *imageLayer) Image() *ebiten.Image { return l.img }

func (l *imageLayer) Resize(width, height int) {
	if l.img != nil {
		if b := l.img.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		l.img.Deallocate()
		l.img = nil
	}
	if width <= 0 || height <= 0 {
		return
	}
	l.img = ebiten.NewImage(width, height)
}

func (l *imageLayer) Clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *imageLayer) DrawShape(p field.Particle, alpha float64) {
	if l.img == nil {
		return
	}
	c := withAlpha(p.Color, alpha)
	s := p.Size

	switch p.Kind {
	case field.Square:
		h := s / 2
		l.fillPolygon(p.X, p.Y, p.Rotation, c, [][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}})
	case field.Triangle:
		l.fillPolygon(p.X, p.Y, p.Rotation, c, [][2]float64{{0, -s}, {s, s}, {-s, s}})
	default:
		vector.DrawFilledCircle(l.img, float32(p.X), float32(p.Y), float32(s), c, true)
	}
}

func (l *imageLayer) DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA, alpha float64) {
	if l.img == nil {
		return
	}
	vector.StrokeLine(l.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), withAlpha(c, alpha), true)
}

// fillPolygon fills pts, given relative to (cx, cy), rotated by angle.
func (l *imageLayer) fillPolygon(cx, cy, angle float64, c color.NRGBA, pts [][2]float64) {
	sin, cos := math.Sincos(angle)

	var path vector.Path
	for i, pt := range pts {
		x := float32(cx + pt[0]*cos - pt[1]*sin)
		y := float32(cy + pt[0]*sin + pt[1]*cos)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	l.vertices, l.indices = path.AppendVerticesAndIndicesForFilling(l.vertices[:0], l.indices[:0])
	r, g, b, a := vertexColor(c)
	for i := range l.vertices {
		v := &l.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	l.img.DrawTriangles(l.vertices, l.indices, l.white, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	})
}

// vertexColor is c as straight-alpha vertex components. DrawTriangles
// premultiplies them itself in ColorScaleModeStraightAlpha.
func vertexColor(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
