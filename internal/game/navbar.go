package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/charro-ambient/internal/site"
)

const (
	navHeight   = 64
	navPadding  = 24
	navLinkH    = 32
	menuButton  = 40
	menuRowH    = 40
	idMenu      = "menu"
	navIDPrefix = "nav:"
)

var (
	navClear    = color.NRGBA{A: 0}
	navScrolled = color.NRGBA{R: 0x06, G: 0x2a, B: 0x35, A: 0xd8}
	navPanel    = color.NRGBA{R: 0x06, G: 0x2a, B: 0x35, A: 0xf0}
)

// navView is the navbar geometry for one viewport width.
type navView struct {
	bar    rect
	mobile bool
	links  []button
	menu   button
	panel  rect
}

func (g *Game) navView() navView {
	v := navView{
		bar:    rect{0, 0, float64(g.width), navHeight},
		mobile: site.Mobile(g.width),
	}
	current := g.page.anchor()

	if !v.mobile {
		x := float64(g.width) - navPadding
		links := make([]button, len(site.NavLinks))
		for i := len(site.NavLinks) - 1; i >= 0; i-- {
			l := site.NavLinks[i]
			w := textWidth(l.Label) + 24
			x -= w
			links[i] = button{id: navIDPrefix + l.Anchor, label: l.Label, r: rect{x, (navHeight - navLinkH) / 2, w, navLinkH}, active: l.Anchor == current}
			x -= 8
		}
		v.links = links
		return v
	}

	v.menu = button{id: idMenu, label: "=", r: rect{float64(g.width) - navPadding - menuButton, (navHeight - menuButton) / 2, menuButton, menuButton}}
	if !g.nav.MenuOpen {
		return v
	}
	v.panel = rect{0, navHeight, float64(g.width), float64(len(site.NavLinks))*menuRowH + 16}
	for i, l := range site.NavLinks {
		r := rect{navPadding, navHeight + 8 + float64(i)*menuRowH, float64(g.width) - 2*navPadding, navLinkH}
		v.links = append(v.links, button{id: navIDPrefix + l.Anchor, label: l.Label, r: r, active: l.Anchor == current})
	}
	v.menu.label = "x"
	return v
}

func (v navView) buttons() []button {
	bs := append([]button(nil), v.links...)
	if v.mobile {
		bs = append(bs, v.menu)
	}
	return bs
}

// navBackground is clear at the top of a page and frosted once scrolled.
func (g *Game) navBackground() color.NRGBA {
	if g.nav.Scrolled {
		return navScrolled
	}
	return navClear
}

func (g *Game) drawNavbar(screen *ebiten.Image) {
	v := g.navView()

	if bg := g.navBackground(); bg.A > 0 {
		fillRect(screen, v.bar, bg)
	}
	printAt(screen, site.Brand, navPadding, float64((navHeight-lineHeight)/2))
	g.drawLevel(screen, navPadding+textWidth(site.Brand)+16, navHeight/2)

	if v.mobile {
		if g.nav.MenuOpen {
			fillRect(screen, v.panel, navPanel)
		}
		g.drawButton(screen, v.menu, ghostStyle)
	}
	for _, b := range v.links {
		g.drawButton(screen, b, linkStyle)
	}
}

// drawLevel shows the ambient loudness next to the brand.
func (g *Game) drawLevel(screen *ebiten.Image, x, cy float64) {
	if g.sound == nil || !g.sound.Ready() {
		return
	}
	const w, h = 40, 4
	vector.StrokeRect(screen, float32(x), float32(cy-h/2), w, h, 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}, false)
	if lvl := clamp01(g.sound.Level() * 4); lvl > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(cy-h/2), float32(w*lvl), h, color.NRGBA{R: 0x8f, G: 0xd3, B: 0xe6, A: 0xff}, false)
	}
	if g.sound.Muted() {
		printAt(screen, "mute", x+w+6, cy-lineHeight/2)
	}
}
