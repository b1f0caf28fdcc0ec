package game

import (
	"errors"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/charro-ambient/internal/field"
	"github.com/iburimskiy/charro-ambient/internal/site"
)

type fakeLayer struct {
	resizes [][2]int
	clears  int
	shapes  int
	lines   int
}

func (f *fakeLayer) Clear() { f.clears++ }

func (f *fakeLayer) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeLayer) DrawShape(field.Particle, float64) { f.shapes++ }

func (f *fakeLayer) DrawLine(_, _, _, _, _ float64, _ color.NRGBA, _ float64) { f.lines++ }

func (f *fakeLayer) Image() *ebiten.Image { return nil }

type fakePrompter struct {
	email  string
	err    error
	infos  []string
	errors []string
	asked  []string
}

func (p *fakePrompter) Email(service string) (string, error) {
	p.asked = append(p.asked, service)
	return p.email, p.err
}

func (p *fakePrompter) Info(msg string) error {
	p.infos = append(p.infos, msg)
	return nil
}

func (p *fakePrompter) Error(msg string) error {
	p.errors = append(p.errors, msg)
	return nil
}

func (p *fakePrompter) Track() (string, error) { return "", zenity.ErrCanceled }

func newTestGame(t *testing.T, width, height int) (*Game, *fakeLayer, *fakePrompter) {
	t.Helper()
	l := &fakeLayer{}
	p := &fakePrompter{}
	r := field.NewRenderer(field.Dots(), rand.New(rand.NewPCG(1, 2)))
	g := newGame(r, l, nil, p, log.New(io.Discard, "", 0))
	g.Layout(width, height)
	return g, l, p
}

func click(g *Game, b button) {
	x, y := b.r.x+b.r.w/2, b.r.y+b.r.h/2
	g.pointer(x, y, true, false)
	g.pointer(x, y, false, true)
}

func findButton(t *testing.T, g *Game, id string) button {
	t.Helper()
	for _, b := range g.buttons() {
		if b.id == id {
			return b
		}
	}
	t.Fatalf("no button %q on %s", id, g.page)
	return button{}
}

func TestHomeMountsOnFirstStep(t *testing.T) {
	g, l, _ := newTestGame(t, 1280, 800)
	if g.hero.Mounted() {
		t.Fatal("mounted before the first step")
	}

	g.step()
	if !g.hero.Mounted() {
		t.Fatal("hero not mounted on home")
	}
	if n := g.hero.Field().Len(); n != 150 {
		t.Fatalf("expected the dots cap of 150 particles, got %d", n)
	}
	if len(l.resizes) != 1 || l.resizes[0] != [2]int{1280, 800} {
		t.Fatalf("layer sized %v", l.resizes)
	}
	if g.hero.Frames() != 1 || l.shapes != 150 || l.clears != 1 {
		t.Fatalf("first frame: frames=%d shapes=%d clears=%d", g.hero.Frames(), l.shapes, l.clears)
	}

	g.step()
	if g.hero.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", g.hero.Frames())
	}
}

func TestNoSurfaceLeavesHeroUnmounted(t *testing.T) {
	r := field.NewRenderer(field.Dots(), rand.New(rand.NewPCG(1, 2)))
	g := newGame(r, nil, nil, &fakePrompter{}, log.New(io.Discard, "", 0))
	g.Layout(800, 600)
	g.step()
	if g.hero.Mounted() || g.frames.Pending() != 0 {
		t.Fatal("mounted without a surface")
	}
}

func TestLayoutPublishesResize(t *testing.T) {
	g, l, _ := newTestGame(t, 1280, 800)
	g.step()
	n := g.hero.Field().Len()

	if w, h := g.Layout(600, 400); w != 600 || h != 400 {
		t.Fatalf("Layout returned %dx%d", w, h)
	}
	if got := l.resizes[len(l.resizes)-1]; got != [2]int{600, 400} {
		t.Fatalf("layer resized to %v", got)
	}
	if w, h := g.hero.Field().Size(); w != 600 || h != 400 {
		t.Fatalf("field is %vx%v", w, h)
	}
	if g.hero.Field().Len() != n {
		t.Fatal("resize changed the particle count")
	}

	before := len(l.resizes)
	g.Layout(600, 400)
	if len(l.resizes) != before {
		t.Fatal("unchanged layout published a resize")
	}
}

func TestLeavingHomeUnmounts(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	g.step()
	g.step()

	g.togglePage()
	if g.page != PageServices {
		t.Fatalf("page = %s", g.page)
	}
	if g.hero.Mounted() || g.frames.Pending() != 0 {
		t.Fatal("hero still running off the home page")
	}
	g.step()
	if g.hero.Mounted() {
		t.Fatal("services page mounted the hero")
	}

	g.togglePage()
	g.step()
	if !g.hero.Mounted() || g.hero.Frames() != 1 {
		t.Fatalf("expected a fresh field on return, frames=%d", g.hero.Frames())
	}
}

func TestHeroPrimaryOpensServices(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	g.step()

	click(g, findButton(t, g, idHeroPrimary))
	if g.page != PageServices {
		t.Fatalf("page = %s", g.page)
	}
	if g.hero.Mounted() {
		t.Fatal("hero left mounted")
	}
}

func TestReleaseOffButtonDoesNotClick(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	b := findButton(t, g, idHeroPrimary)

	g.pointer(b.r.x+1, b.r.y+1, true, false)
	if g.pressed != idHeroPrimary {
		t.Fatalf("pressed = %q", g.pressed)
	}
	g.pointer(2, 790, false, true)
	if g.page != PageHome || g.pressed != "" {
		t.Fatalf("page=%s pressed=%q", g.page, g.pressed)
	}
}

func TestDesktopNavbar(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	v := g.navView()
	if v.mobile || len(v.links) != len(site.NavLinks) {
		t.Fatalf("desktop navbar: mobile=%t links=%d", v.mobile, len(v.links))
	}
	last := v.links[len(v.links)-1]
	if last.r.x+last.r.w > 1280-navPadding {
		t.Fatalf("links overflow the bar: %+v", last.r)
	}
	for i := 1; i < len(v.links); i++ {
		if v.links[i].r.x <= v.links[i-1].r.x {
			t.Fatal("links out of order")
		}
	}
	if !v.links[0].active {
		t.Fatal("home link not marked active")
	}

	click(g, findButton(t, g, navIDPrefix+site.AnchorServices))
	if g.page != PageServices {
		t.Fatalf("page = %s", g.page)
	}
}

func TestMobileMenu(t *testing.T) {
	g, _, _ := newTestGame(t, 500, 800)
	if v := g.navView(); !v.mobile || len(v.links) != 0 {
		t.Fatalf("closed mobile menu shows %d links", len(v.links))
	}

	click(g, findButton(t, g, idMenu))
	if !g.nav.MenuOpen {
		t.Fatal("menu did not open")
	}
	if v := g.navView(); len(v.links) != len(site.NavLinks) {
		t.Fatalf("open menu shows %d links", len(v.links))
	}

	click(g, findButton(t, g, navIDPrefix+site.AnchorServices))
	if g.page != PageServices || g.nav.MenuOpen {
		t.Fatalf("page=%s menuOpen=%t", g.page, g.nav.MenuOpen)
	}

	click(g, findButton(t, g, idMenu))
	g.Layout(1280, 800)
	if g.nav.MenuOpen {
		t.Fatal("menu left open on a desktop width")
	}
}

func TestServiceSelection(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	g.moveSelection(1)
	if g.tabs.Index() != 0 {
		t.Fatal("selection moved on the home page")
	}

	g.setPage(PageServices)
	click(g, findButton(t, g, tabIDPrefix+"2"))
	if g.tabs.Index() != 2 {
		t.Fatalf("index = %d, want 2", g.tabs.Index())
	}
	if b := findButton(t, g, tabIDPrefix+"2"); !b.active {
		t.Fatal("selected tab not marked active")
	}

	g.moveSelection(1)
	g.moveSelection(1)
	g.moveSelection(1)
	g.moveSelection(1)
	if g.tabs.Index() != 0 {
		t.Fatalf("expected wrap to 0, got %d", g.tabs.Index())
	}
	g.moveSelection(-1)
	if g.tabs.Index() != len(site.Services)-1 {
		t.Fatalf("expected wrap to last, got %d", g.tabs.Index())
	}
}

func TestServicesLayoutStacksWhenNarrow(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	g.setPage(PageServices)
	wide := g.servicesView()
	if wide.detail.y != wide.list.y || wide.detail.x <= wide.list.x+wide.list.w {
		t.Fatalf("wide layout not side by side: list=%+v detail=%+v", wide.list, wide.detail)
	}

	g.Layout(700, 800)
	narrow := g.servicesView()
	if narrow.detail.y <= narrow.list.bottom() {
		t.Fatalf("narrow layout not stacked: list=%+v detail=%+v", narrow.list, narrow.detail)
	}
	if narrow.request.r.bottom() > narrow.detail.bottom() {
		t.Fatal("request button outside the panel")
	}
	for _, lines := range narrow.bullets {
		for _, line := range lines {
			if textWidth(line) > narrow.detail.w-2*panelPad {
				t.Fatalf("bullet line too wide: %q", line)
			}
		}
	}
}

func TestScrollDrivesNavbar(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 400)
	g.scroll(100)
	if g.scrollY != 0 {
		t.Fatal("home page scrolled")
	}

	g.setPage(PageServices)
	if g.navBackground() != navClear {
		t.Fatal("navbar not clear at the top of the services page")
	}
	limit := g.maxScroll()
	if limit <= site.ScrollThreshold {
		t.Fatalf("services page too short to scroll: %v", limit)
	}

	g.scroll(5)
	if g.nav.Scrolled {
		t.Fatal("scrolled style below the threshold")
	}
	g.scroll(25)
	if !g.nav.Scrolled {
		t.Fatal("scrolled style not applied")
	}
	if g.navBackground() != navScrolled {
		t.Fatalf("navbar background = %v after scrolling", g.navBackground())
	}
	g.scroll(1e6)
	if g.scrollY != limit {
		t.Fatalf("scrollY = %v, want clamp to %v", g.scrollY, limit)
	}
	g.scroll(-1e6)
	if g.scrollY != 0 || g.nav.Scrolled || g.navBackground() != navClear {
		t.Fatalf("scrollY = %v scrolled=%t", g.scrollY, g.nav.Scrolled)
	}

	g.scroll(50)
	g.setPage(PageHome)
	if g.scrollY != 0 || g.nav.Scrolled {
		t.Fatal("page switch kept the scroll offset")
	}
}

func TestVertexColorIsStraightAlpha(t *testing.T) {
	teal := color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0x80}
	tests := []struct {
		name       string
		c          color.NRGBA
		r, g, b, a float32
	}{
		{"palette at opacity", withAlpha(teal, 0.8), 0x10 / 255.0, 0x72 / 255.0, 0x8b / 255.0, 0x66 / 255.0},
		{"opaque", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 1, 1, 1, 1},
		{"transparent", color.NRGBA{R: 0x80, G: 0x40}, 0x80 / 255.0, 0x40 / 255.0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := vertexColor(tt.c)
			got := [4]float32{r, g, b, a}
			want := [4]float32{tt.r, tt.g, tt.b, tt.a}
			for i := range got {
				if math.Abs(float64(got[i]-want[i])) > 1e-4 {
					t.Fatalf("vertexColor(%v) = %v, want %v", tt.c, got, want)
				}
			}
		})
	}
	if c := withAlpha(teal, 0.8); c.A != 0x66 {
		t.Errorf("withAlpha alpha = %#x, want 0x66", c.A)
	}
}

func TestRequestInformation(t *testing.T) {
	g, _, p := newTestGame(t, 1280, 800)
	g.setPage(PageServices)
	g.tabs.Select(1)
	p.email = " Ana <ana@example.com> "

	click(g, findButton(t, g, idRequest))

	if len(g.inquiries) != 1 {
		t.Fatalf("inquiries = %+v", g.inquiries)
	}
	q := g.inquiries[0]
	if q.Service != site.Services[1].Title || q.Email != "ana@example.com" {
		t.Fatalf("inquiry = %+v", q)
	}
	if len(p.infos) != 1 || !strings.Contains(p.infos[0], q.ID) {
		t.Fatalf("confirmation = %v", p.infos)
	}
	if g.lastErr != nil {
		t.Fatalf("lastErr = %v", g.lastErr)
	}
}

func TestContactFromNavbar(t *testing.T) {
	g, _, p := newTestGame(t, 1280, 800)
	p.email = "hola@example.com"

	click(g, findButton(t, g, navIDPrefix+site.AnchorContact))
	if len(p.asked) != 1 || p.asked[0] != GeneralInquiry {
		t.Fatalf("asked = %v", p.asked)
	}
	if g.page != PageHome {
		t.Fatal("contact changed the page")
	}
	if len(g.inquiries) != 1 {
		t.Fatalf("inquiries = %+v", g.inquiries)
	}
}

func TestContactCancelled(t *testing.T) {
	g, _, p := newTestGame(t, 1280, 800)
	p.err = zenity.ErrCanceled

	if err := g.contact(GeneralInquiry); err != nil {
		t.Fatalf("cancel returned %v", err)
	}
	if len(g.inquiries) != 0 || len(p.infos) != 0 || len(p.errors) != 0 {
		t.Fatal("cancelled dialog had side effects")
	}
}

func TestContactInvalidEmail(t *testing.T) {
	g, _, p := newTestGame(t, 1280, 800)
	p.email = "not an address"

	if err := g.contact(GeneralInquiry); err != nil {
		t.Fatalf("invalid e-mail returned %v", err)
	}
	if len(g.inquiries) != 0 || len(p.errors) != 1 {
		t.Fatalf("inquiries=%d error dialogs=%d", len(g.inquiries), len(p.errors))
	}
}

func TestContactDialogFailureIsReported(t *testing.T) {
	g, _, p := newTestGame(t, 1280, 800)
	boom := errors.New("no display")
	p.err = boom

	click(g, findButton(t, g, idHeroContact))
	if !errors.Is(g.lastErr, boom) {
		t.Fatalf("lastErr = %v", g.lastErr)
	}
}

func TestChooseAmbientWithoutSound(t *testing.T) {
	g, _, _ := newTestGame(t, 1280, 800)
	if err := g.chooseAmbient(); err != nil {
		t.Fatalf("chooseAmbient without a player: %v", err)
	}
}

func TestWrap(t *testing.T) {
	text := "En Charro.ai revolucionamos la transformación digital con un enfoque estratégico"
	lines := wrap(text, 20)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %q", lines)
	}
	for _, l := range lines {
		if n := len([]rune(l)); n > 20 {
			t.Fatalf("line %q has %d runes", l, n)
		}
	}
	if strings.Join(lines, " ") != text {
		t.Fatalf("wrap lost text: %q", lines)
	}

	if got := wrap("a supercalifragilistic b", 5); len(got) != 3 || got[1] != "supercalifragilistic" {
		t.Fatalf("long word: %q", got)
	}
	if wrap("anything", 0) != nil {
		t.Fatal("zero width should give no lines")
	}
}

func TestFoldStripsAccents(t *testing.T) {
	tests := map[string]string{
		"Servicios y Consultoría Digital": "Servicios y Consultoria Digital",
		"Solicitar información":           "Solicitar informacion",
		"Diseño":                          "Diseno",
		"plain":                           "plain",
	}
	for in, want := range tests {
		if got := fold(in); got != want {
			t.Errorf("fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestColorHelpers(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 100, G: 200, B: 0, A: 255}
	if got := lerpColor(a, b, 0.5); got != (color.NRGBA{R: 50, G: 150, B: 100, A: 255}) {
		t.Fatalf("lerp = %v", got)
	}
	if got := lerpColor(a, b, 2); got != b {
		t.Fatalf("lerp past 1 = %v", got)
	}
	if got := withAlpha(color.NRGBA{A: 0x80}, 0.5); got.A != 0x40 {
		t.Fatalf("alpha = %#x", got.A)
	}
}

func TestIconGlyph(t *testing.T) {
	if got := iconGlyph(site.IconMonitor); got != "MO" {
		t.Fatalf("glyph = %q", got)
	}
}
