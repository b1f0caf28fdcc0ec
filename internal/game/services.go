package game

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/charro-ambient/internal/site"
)

const (
	idRequest    = "request"
	tabIDPrefix  = "tab:"
	headerHeight = 160
	wideLayout   = 1024
	tabHeight    = 48
	tabGap       = 8
	panelPad     = 24
	bulletIndent = 16
)

var (
	pageBackground = color.NRGBA{R: 0x08, G: 0x1c, B: 0x24, A: 0xff}
	panelFill      = color.NRGBA{R: 0x0d, G: 0x2e, B: 0x3a, A: 0xff}
	panelBorder    = color.NRGBA{R: 0x1b, G: 0x4f, B: 0x60, A: 0xff}
)

// servicesView is the services page geometry, already offset by the
// scroll position.
type servicesView struct {
	header  rect
	list    rect
	tabs    []button
	detail  rect
	icon    rect
	desc    []string
	descY   float64
	offerY  float64
	bullets [][]string
	bulletY []float64
	request button
	// content is the unscrolled page height.
	content float64
}

func (g *Game) servicesView() servicesView {
	w := float64(g.width)
	top := navHeight - g.scrollY

	var v servicesView
	v.header = rect{0, top, w, headerHeight}
	y := v.header.bottom() + 32

	inner := w - 2*navPadding
	listW, detailX, detailW := inner, float64(navPadding), inner
	if g.width >= wideLayout {
		listW = math.Floor((inner - 32) * 4 / 12)
		detailX = navPadding + listW + 32
		detailW = inner - listW - 32
	}

	items := g.tabs.Items()
	v.list = rect{navPadding, y, listW, 56 + float64(len(items))*(tabHeight+tabGap) + 8}
	for i, s := range items {
		r := rect{v.list.x + 16, y + 56 + float64(i)*(tabHeight+tabGap), listW - 32, tabHeight}
		v.tabs = append(v.tabs, button{id: tabIDPrefix + strconv.Itoa(i), label: s.Title, r: r, active: i == g.tabs.Index()})
	}

	dy := y
	if g.width < wideLayout {
		dy = v.list.bottom() + 24
	}

	active := g.tabs.Active()
	cols := int((detailW - 2*panelPad) / charWidth)
	v.icon = rect{detailX + panelPad, dy + panelPad, 32, 32}
	v.descY = v.icon.bottom() + 16
	v.desc = wrap(active.Description, cols)
	v.offerY = v.descY + float64(len(v.desc))*lineHeight + 24

	by := v.offerY + lineHeight + 12
	for _, d := range active.Details {
		lines := wrap(d, cols-bulletIndent/charWidth-1)
		v.bullets = append(v.bullets, lines)
		v.bulletY = append(v.bulletY, by)
		by += float64(len(lines))*lineHeight + 8
	}

	rw := textWidth(site.RequestInfo) + 32
	v.request = button{id: idRequest, label: site.RequestInfo, r: rect{detailX + panelPad, by + 16, rw, ctaHeight}}
	v.detail = rect{detailX, dy, detailW, v.request.r.bottom() + panelPad - dy}

	v.content = math.Max(v.list.bottom(), v.detail.bottom()) + 32 + g.scrollY
	return v
}

func (v servicesView) buttons() []button {
	return append(append([]button(nil), v.tabs...), v.request)
}

func (g *Game) drawServices(screen *ebiten.Image) {
	w := float64(g.width)
	screen.Fill(pageBackground)

	v := g.servicesView()
	drawGradient(screen, v.header, heroTop, heroBottom)
	printCentered(screen, site.ServicesTitle, 0, w, v.header.y+48)
	for i, line := range wrap(site.ServicesSubtitle, int(math.Min(w-2*navPadding, heroMaxWidth)/charWidth)) {
		printCentered(screen, line, 0, w, v.header.y+80+float64(i)*lineHeight)
	}

	drawPanel(screen, v.list)
	printAt(screen, site.ServicesNavTitle, v.list.x+16, v.list.y+24)
	for _, b := range v.tabs {
		g.drawButton(screen, b, ghostStyle)
	}

	active := g.tabs.Active()
	drawPanel(screen, v.detail)
	fillRect(screen, v.icon, primaryStyle.normal)
	printCentered(screen, iconGlyph(active.Icon), v.icon.x, v.icon.w, v.icon.y+8)
	printAt(screen, active.Title, v.icon.x+v.icon.w+12, v.icon.y+8)
	for i, line := range v.desc {
		printAt(screen, line, v.icon.x, v.descY+float64(i)*lineHeight)
	}
	printAt(screen, site.OfferHeading, v.icon.x, v.offerY)
	for i, lines := range v.bullets {
		vector.DrawFilledCircle(screen, float32(v.icon.x+4), float32(v.bulletY[i]+lineHeight/2), 3, primaryStyle.border, true)
		for j, line := range lines {
			printAt(screen, line, v.icon.x+bulletIndent, v.bulletY[i]+float64(j)*lineHeight)
		}
	}
	g.drawButton(screen, v.request, primaryStyle)
}

func drawPanel(screen *ebiten.Image, r rect) {
	fillRect(screen, r, panelFill)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, panelBorder, false)
}

// iconGlyph is the two-letter stand-in for a pictogram.
func iconGlyph(i site.Icon) string {
	s := strings.ToUpper(string(i))
	if len(s) > 2 {
		s = s[:2]
	}
	return s
}

// maxScroll is how far the current page can scroll.
func (g *Game) maxScroll() float64 {
	if g.page != PageServices {
		return 0
	}
	return math.Max(0, g.servicesView().content-float64(g.height))
}
