package game

import (
	"github.com/iburimskiy/charro-ambient/internal/field"
	"github.com/iburimskiy/charro-ambient/internal/frame"
)

// The Game is the field.Host for the hero renderer: frame callbacks run
// once per Update and resizes come from Layout.

func (g *Game) Surface() (field.Surface, bool) {
	if g.layer == nil {
		return nil, false
	}
	return g.layer, true
}

func (g *Game) Viewport() (int, int) { return g.width, g.height }

func (g *Game) OnResize(fn func(width, height int)) func() { return g.resizes.Subscribe(fn) }

func (g *Game) RequestFrame(fn func()) frame.ID { return g.frames.RequestFrame(fn) }

func (g *Game) CancelFrame(id frame.ID) { g.frames.CancelFrame(id) }
