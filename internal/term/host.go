package term

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/charro-ambient/internal/config"
	"github.com/iburimskiy/charro-ambient/internal/field"
	"github.com/iburimskiy/charro-ambient/internal/frame"
	"github.com/iburimskiy/charro-ambient/internal/site"
)

// Background is the terminal fill, the brand teal darkened for contrast.
var Background = color.NRGBA{R: 0x06, G: 0x2a, B: 0x35, A: 0xff}

// Host drives frame callbacks from a ticker and turns tcell resize events
// into viewport notifications. It implements field.Host.
type Host struct {
	screen  tcell.Screen
	surface *Surface
	frames  frame.Queue
	resizes frame.Bus
	period  time.Duration
	logger  *log.Logger
}

func NewHost(screen tcell.Screen, cfg config.Terminal, logger *log.Logger) *Host {
	return &Host{
		screen:  screen,
		surface: NewSurface(screen, cfg.CellWidth, cfg.CellHeight, Background),
		period:  time.Second / time.Duration(cfg.FPS),
		logger:  logger,
	}
}

func (h *Host) Surface() (field.Surface, bool) {
	if h.surface == nil {
		return nil, false
	}
	return h.surface, true
}

func (h *Host) Viewport() (int, int) { return h.surface.Viewport() }

func (h *Host) OnResize(fn func(width, height int)) func() { return h.resizes.Subscribe(fn) }

func (h *Host) RequestFrame(fn func()) frame.ID { return h.frames.RequestFrame(fn) }

func (h *Host) CancelFrame(id frame.ID) { h.frames.CancelFrame(id) }

// Run pumps events and frames until the user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.period)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !h.handle(ev) {
				return nil
			}

		case <-ticker.C:
			h.Tick()
		}
	}
}

// Tick runs the pending frame callbacks and presents the result.
func (h *Host) Tick() {
	h.frames.Run()
	h.drawBanner()
	h.screen.Show()
}

// handle reacts to one event and reports whether the loop should go on.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}

	case *tcell.EventResize:
		h.screen.Sync()
		w, ht := h.surface.Viewport()
		h.logger.Printf("terminal resized to %dx%d units", w, ht)
		h.resizes.Publish(w, ht)
	}
	return true
}

func (h *Host) drawBanner() {
	cols, rows := h.screen.Size()
	title := site.Brand + " · " + site.Hero.Headline + " " + site.Hero.Accent
	hint := "q / Esc para salir"

	bg := h.surface.bgColor
	h.printCentered(cols, rows/2, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bg).Bold(true))
	h.printCentered(cols, rows/2+1, site.Hero.Badge, tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x8a, 0xcc, 0xdf)).Background(bg))
	h.printCentered(cols, rows-1, hint, tcell.StyleDefault.Foreground(tcell.ColorGray).Background(bg))
}

func (h *Host) printCentered(cols, row int, text string, style tcell.Style) {
	x := (cols - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	for _, r := range text {
		if x >= cols {
			return
		}
		h.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
