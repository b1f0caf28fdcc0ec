package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/charro-ambient/internal/site"
)

const (
	idHeroPrimary = "hero:primary"
	idHeroContact = "hero:contact"
	heroMaxWidth  = 640
	ctaWidth      = 120
	ctaHeight     = 40
	ctaGap        = 16
)

var (
	heroTop    = color.NRGBA{R: 0x0a, G: 0x50, B: 0x68, A: 0xff}
	heroBottom = color.NRGBA{R: 0x0c, G: 0x6d, B: 0x94, A: 0xff}
	badgeFill  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x20}
)

// homeView is the hero column laid out for the current viewport.
type homeView struct {
	badge     rect
	headlineY float64
	accentY   float64
	lead      []string
	leadY     float64
	primary   button
	contact   button
}

func (g *Game) homeView() homeView {
	w := float64(g.width)
	col := math.Min(w-2*navPadding, heroMaxWidth)

	var v homeView
	y := math.Max(navHeight+32, float64(g.height)*0.28)

	bw := textWidth(site.Hero.Badge) + 24
	v.badge = rect{(w - bw) / 2, y, bw, 24}
	y = v.badge.bottom() + 24

	v.headlineY = y
	v.accentY = y + lineHeight + 4
	y = v.accentY + lineHeight + 24

	v.lead = wrap(site.Hero.Lead, int(col/charWidth))
	v.leadY = y
	y += float64(len(v.lead))*lineHeight + 32

	x := (w - (2*ctaWidth + ctaGap)) / 2
	v.primary = button{id: idHeroPrimary, label: site.Hero.Primary.Label, r: rect{x, y, ctaWidth, ctaHeight}}
	v.contact = button{id: idHeroContact, label: site.Hero.Contact.Label, r: rect{x + ctaWidth + ctaGap, y, ctaWidth, ctaHeight}}
	return v
}

func (v homeView) buttons() []button {
	return []button{v.primary, v.contact}
}

func (g *Game) drawHome(screen *ebiten.Image) {
	w := float64(g.width)
	drawGradient(screen, rect{0, 0, w, float64(g.height)}, heroTop, heroBottom)

	if g.layer != nil {
		if img := g.layer.Image(); img != nil {
			screen.DrawImage(img, nil)
		}
	}

	v := g.homeView()
	fillRect(screen, v.badge, badgeFill)
	printCentered(screen, site.Hero.Badge, v.badge.x, v.badge.w, v.badge.y+4)
	printCentered(screen, site.Hero.Headline, 0, w, v.headlineY)
	printCentered(screen, site.Hero.Accent, 0, w, v.accentY)
	for i, line := range v.lead {
		printCentered(screen, line, 0, w, v.leadY+float64(i)*lineHeight)
	}
	g.drawButton(screen, v.primary, primaryStyle)
	g.drawButton(screen, v.contact, ghostStyle)

	if f := g.hero.Field(); f != nil {
		printAt(screen, fmt.Sprintf("%d particles", f.Len()), navPadding, float64(g.height-2*lineHeight-8))
	}
}
