// Package term renders the particle field into a terminal with tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/charro-ambient/internal/field"
)

const lineRune = '·'

var shapeRunes = map[field.Kind]rune{
	field.Circle:   '●',
	field.Square:   '■',
	field.Triangle: '▲',
}

// Surface draws field particles as cells. One cell covers
// cellW x cellH field units. Terminals have no alpha, so colours are
// blended toward the background instead.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	bg           colorful.Color
	bgColor      tcell.Color
	cols, rows   int
	shapes       map[[2]int]bool
}

func NewSurface(screen tcell.Screen, cellW, cellH float64, bg color.Color) *Surface {
	c, _ := colorful.MakeColor(bg)
	r, g, b := c.RGB255()
	cols, rows := screen.Size()
	return &Surface{
		screen:  screen,
		cellW:   cellW,
		cellH:   cellH,
		bg:      c,
		bgColor: tcell.NewRGBColor(int32(r), int32(g), int32(b)),
		cols:    cols,
		rows:    rows,
		shapes:  make(map[[2]int]bool),
	}
}

// Viewport is the terminal size in field units.
func (s *Surface) Viewport() (width, height int) {
	cols, rows := s.screen.Size()
	return int(float64(cols) * s.cellW), int(float64(rows) * s.cellH)
}

// Resize tracks the new dimensions. tcell resizes its own buffers.
func (s *Surface) Resize(width, height int) {
	s.cols = int(float64(width) / s.cellW)
	s.rows = int(float64(height) / s.cellH)
}

func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bgColor))
	clear(s.shapes)
}

func (s *Surface) DrawShape(p field.Particle, alpha float64) {
	x, y := s.cell(p.X, p.Y)
	if !s.inside(x, y) {
		return
	}
	r, ok := shapeRunes[p.Kind]
	if !ok {
		r = shapeRunes[field.Circle]
	}
	s.screen.SetContent(x, y, r, nil, s.style(p.Color, alpha))
	s.shapes[[2]int{x, y}] = true
}

// DrawLine walks the cells between both ends. Cells holding a shape drawn
// this frame are left alone.
func (s *Surface) DrawLine(x0, y0, x1, y1, _ float64, c color.NRGBA, alpha float64) {
	style := s.style(c, alpha)
	cx0, cy0 := s.cell(x0, y0)
	cx1, cy1 := s.cell(x1, y1)
	for _, pt := range cellLine(cx0, cy0, cx1, cy1) {
		if !s.inside(pt[0], pt[1]) || s.shapes[pt] {
			continue
		}
		s.screen.SetContent(pt[0], pt[1], lineRune, nil, style)
	}
}

func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.cols && y < s.rows
}

func (s *Surface) style(c color.NRGBA, alpha float64) tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.blend(c, alpha)).
		Background(s.bgColor)
}

// blend mixes c over the background by its own alpha scaled by alpha.
func (s *Surface) blend(c color.NRGBA, alpha float64) tcell.Color {
	t := math.Max(0, math.Min(1, alpha*float64(c.A)/255))
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := s.bg.BlendRgb(fg, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cellLine returns the Bresenham cells from (x0, y0) to (x1, y1) inclusive.
func cellLine(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	pts := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		pts = append(pts, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
