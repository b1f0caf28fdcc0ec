package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

func (r rect) bottom() float64 { return r.y + r.h }

// button is a clickable area. Buttons later in a list sit on top.
type button struct {
	id     string
	label  string
	r      rect
	active bool
}

// buttonStyle is the fill for each interaction state.
type buttonStyle struct {
	normal, hovered, pressed, active color.NRGBA
	border                           color.NRGBA
	borderWidth                      float32
}

var (
	primaryStyle = buttonStyle{
		normal:      color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0xff},
		hovered:     color.NRGBA{R: 0x16, G: 0x8a, B: 0xa8, A: 0xff},
		pressed:     color.NRGBA{R: 0x0a, G: 0x50, B: 0x68, A: 0xff},
		active:      color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0xff},
		border:      color.NRGBA{R: 0x8f, G: 0xd3, B: 0xe6, A: 0xff},
		borderWidth: 1,
	}
	ghostStyle = buttonStyle{
		normal:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x18},
		hovered:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30},
		pressed:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10},
		active:      color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0xcc},
		border:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60},
		borderWidth: 1,
	}
	linkStyle = buttonStyle{
		hovered: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x20},
		pressed: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10},
		active:  color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0x80},
	}
)

func (g *Game) drawButton(screen *ebiten.Image, b button, st buttonStyle) {
	bg := st.normal
	switch {
	case g.pressed == b.id && g.hovered == b.id:
		bg = st.pressed
	case g.hovered == b.id:
		bg = st.hovered
	case b.active:
		bg = st.active
	}
	if bg.A > 0 {
		vector.DrawFilledRect(screen, float32(b.r.x), float32(b.r.y), float32(b.r.w), float32(b.r.h), bg, false)
	}
	if st.borderWidth > 0 {
		vector.StrokeRect(screen, float32(b.r.x), float32(b.r.y), float32(b.r.w), float32(b.r.h), st.borderWidth, st.border, false)
	}

	tx := b.r.x + (b.r.w-textWidth(b.label))/2
	ty := b.r.y + (b.r.h-lineHeight)/2
	printAt(screen, b.label, tx, ty)
}

func printAt(screen *ebiten.Image, s string, x, y float64) {
	ebitenutil.DebugPrintAt(screen, fold(s), int(x), int(y))
}

// printCentered prints s centred horizontally in [x, x+w).
func printCentered(screen *ebiten.Image, s string, x, w, y float64) {
	printAt(screen, s, x+(w-textWidth(s))/2, y)
}

func fillRect(screen *ebiten.Image, r rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, false)
}

// drawGradient fills r with a vertical blend from top to bottom.
func drawGradient(screen *ebiten.Image, r rect, top, bottom color.NRGBA) {
	const band = 4
	for y := 0.0; y < r.h; y += band {
		c := lerpColor(top, bottom, y/r.h)
		vector.DrawFilledRect(screen, float32(r.x), float32(r.y+y), float32(r.w), band, c, false)
	}
}
