// Package game is the desktop rendition of the Charro site on ebiten: a
// landing page with the ambient particle field behind the hero and a
// services showcase.
package game

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/charro-ambient/internal/config"
	"github.com/iburimskiy/charro-ambient/internal/field"
	"github.com/iburimskiy/charro-ambient/internal/frame"
	"github.com/iburimskiy/charro-ambient/internal/site"
	"github.com/iburimskiy/charro-ambient/internal/sound"
)

const scrollStep = 40

type Page int

const (
	PageHome Page = iota
	PageServices
)

func (p Page) anchor() string {
	if p == PageServices {
		return site.AnchorServices
	}
	return site.AnchorHome
}

func (p Page) String() string {
	if p == PageServices {
		return "services"
	}
	return "home"
}

// Game implements ebiten.Game.
type Game struct {
	logger *log.Logger
	sound  *sound.Player
	prompt prompter

	page    Page
	nav     site.Navbar
	tabs    *site.Tabs
	scrollY float64

	width, height int
	frames        frame.Queue
	resizes       frame.Bus
	layer         layer
	hero          *field.Renderer

	// input edge detection
	prevKey map[ebiten.Key]bool

	// pointer state: ids of the buttons under and pressed by the cursor
	hovered string
	pressed string

	inquiries []site.Inquiry
	lastErr   error
}

// newGame builds a Game showing the home page. player may be nil.
func newGame(hero *field.Renderer, l layer, player *sound.Player, p prompter, logger *log.Logger) *Game {
	return &Game{
		logger:  logger,
		sound:   player,
		prompt:  p,
		tabs:    site.NewTabs(site.Services),
		layer:   l,
		hero:    hero,
		prevKey: map[ebiten.Key]bool{},
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Window, hero *field.Renderer, player *sound.Player, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := newGame(hero, newImageLayer(), player, zenityPrompter{title: site.Brand}, logger)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Close tears the hero renderer down.
func (g *Game) Close() {
	g.hero.Unmount()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mx, my := ebiten.CursorPosition()
	g.pointer(float64(mx), float64(my),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroll(-dy * scrollStep)
	}

	if justPressed(ebiten.KeyTab) {
		g.togglePage()
	}
	if justPressed(ebiten.KeyUp) {
		g.moveSelection(-1)
	}
	if justPressed(ebiten.KeyDown) {
		g.moveSelection(1)
	}
	if justPressed(ebiten.KeyM) && g.sound != nil {
		g.logger.Printf("sound muted: %t", g.sound.ToggleMute())
	}
	if justPressed(ebiten.KeyO) {
		if err := g.chooseAmbient(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()
	return nil
}

// step mounts the hero field when home is showing and runs the frame
// callbacks due this tick.
func (g *Game) step() {
	if g.page == PageHome && !g.hero.Mounted() && g.width > 0 && g.height > 0 {
		if !g.hero.Mount(g) {
			g.logger.Printf("no drawing surface, hero field disabled")
		}
	}
	g.frames.Run()
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.page {
	case PageServices:
		g.drawServices(screen)
	default:
		g.drawHome(screen)
	}
	g.drawNavbar(screen)

	status := "Tab: page | Up/Down: service | O: ambient track | M: mute | Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	printAt(screen, status, navPadding, float64(g.height-lineHeight-8))
}

// Layout fills the window and publishes size changes to the hero field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if !site.Mobile(g.width) {
			g.nav.MenuOpen = false
		}
		g.scroll(0)
		g.resizes.Publish(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// buttons lists the clickable areas from bottom to top.
func (g *Game) buttons() []button {
	var bs []button
	switch g.page {
	case PageServices:
		bs = g.servicesView().buttons()
	default:
		bs = g.homeView().buttons()
	}
	return append(bs, g.navView().buttons()...)
}

// pointer updates hover state and fires a click when the button pressed is
// the one released over.
func (g *Game) pointer(x, y float64, down, up bool) {
	g.hovered = ""
	bs := g.buttons()
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i].r.contains(x, y) {
			g.hovered = bs[i].id
			break
		}
	}

	if down && g.hovered != "" {
		g.pressed = g.hovered
	}
	if up {
		if g.pressed != "" && g.pressed == g.hovered {
			if err := g.activate(g.pressed); err != nil {
				g.lastErr = err
			}
		}
		g.pressed = ""
	}
}

func (g *Game) activate(id string) error {
	if g.sound != nil {
		g.sound.Click()
	}

	switch {
	case id == idMenu:
		g.nav.ToggleMenu()
	case strings.HasPrefix(id, navIDPrefix):
		anchor := strings.TrimPrefix(id, navIDPrefix)
		for _, l := range site.NavLinks {
			if l.Anchor == anchor {
				return g.navigate(g.nav.Follow(l))
			}
		}
	case id == idHeroPrimary:
		return g.navigate(site.Hero.Primary.Anchor)
	case id == idHeroContact:
		return g.navigate(site.Hero.Contact.Anchor)
	case strings.HasPrefix(id, tabIDPrefix):
		i, err := strconv.Atoi(strings.TrimPrefix(id, tabIDPrefix))
		if err != nil {
			return err
		}
		g.tabs.Select(i)
	case id == idRequest:
		return g.contact(g.tabs.Active().Title)
	}
	return nil
}

func (g *Game) navigate(anchor string) error {
	switch anchor {
	case site.AnchorHome:
		g.setPage(PageHome)
	case site.AnchorServices:
		g.setPage(PageServices)
	case site.AnchorContact:
		return g.contact(GeneralInquiry)
	}
	return nil
}

func (g *Game) togglePage() {
	if g.page == PageHome {
		g.setPage(PageServices)
	} else {
		g.setPage(PageHome)
	}
}

// setPage switches pages. Leaving home unmounts the hero field; coming
// back spawns a fresh one on the next step.
func (g *Game) setPage(p Page) {
	if p == g.page {
		return
	}
	if g.page == PageHome {
		g.hero.Unmount()
	}
	g.page = p
	g.scrollY = 0
	g.nav.Scroll(0)
	g.logger.Printf("page %s", p)
}

func (g *Game) moveSelection(delta int) {
	if g.page != PageServices {
		return
	}
	if delta < 0 {
		g.tabs.Prev()
	} else {
		g.tabs.Next()
	}
}

func (g *Game) scroll(dy float64) {
	g.scrollY = math.Min(math.Max(g.scrollY+dy, 0), g.maxScroll())
	g.nav.Scroll(g.scrollY)
}
