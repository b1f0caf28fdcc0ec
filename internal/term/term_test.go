package term

import (
	"context"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/charro-ambient/internal/config"
	"github.com/iburimskiy/charro-ambient/internal/field"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestSurfaceViewport(t *testing.T) {
	screen := newScreen(t, 80, 24)
	s := NewSurface(screen, 8, 16, Background)
	if w, h := s.Viewport(); w != 640 || h != 384 {
		t.Fatalf("viewport = %dx%d, want 640x384", w, h)
	}
}

func TestDrawShapeMapsToCell(t *testing.T) {
	screen := newScreen(t, 80, 24)
	s := NewSurface(screen, 8, 16, Background)
	s.Clear()

	s.DrawShape(field.Particle{X: 20, Y: 40, Kind: field.Triangle, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, 1)

	r, _, style, _ := screen.GetContent(2, 2)
	if r != '▲' {
		t.Fatalf("expected triangle at (2,2), got %q", r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Fatalf("opaque white blended to %v", fg)
	}
}

func TestDrawShapeOutsideIsIgnored(t *testing.T) {
	screen := newScreen(t, 10, 5)
	s := NewSurface(screen, 8, 16, Background)
	s.Clear()

	s.DrawShape(field.Particle{X: -0.3, Y: 10}, 1)
	s.DrawShape(field.Particle{X: 81, Y: 10}, 1)

	for x := 0; x < 10; x++ {
		if r, _, _, _ := screen.GetContent(x, 0); r != ' ' {
			t.Fatalf("cell (%d,0) drawn: %q", x, r)
		}
	}
}

func TestLineSkipsShapeCells(t *testing.T) {
	screen := newScreen(t, 40, 10)
	s := NewSurface(screen, 8, 16, Background)
	s.Clear()

	s.DrawShape(field.Particle{X: 4, Y: 8, Kind: field.Square}, 1)
	s.DrawLine(4, 8, 8*9+4, 8, 1, color.NRGBA{R: 0x10, G: 0x72, B: 0x8b, A: 0xff}, 0.5)

	if r, _, _, _ := screen.GetContent(0, 0); r != '■' {
		t.Fatalf("line overwrote the shape: %q", r)
	}
	for x := 1; x <= 9; x++ {
		if r, _, _, _ := screen.GetContent(x, 0); r != lineRune {
			t.Fatalf("cell (%d,0) = %q, want line", x, r)
		}
	}
	if r, _, _, _ := screen.GetContent(10, 0); r != ' ' {
		t.Fatalf("line ran past its end: %q", r)
	}
}

func TestClearResetsShapeMask(t *testing.T) {
	screen := newScreen(t, 20, 5)
	s := NewSurface(screen, 8, 16, Background)
	s.Clear()
	s.DrawShape(field.Particle{X: 4, Y: 8}, 1)
	s.Clear()
	s.DrawLine(4, 8, 20, 8, 1, color.NRGBA{A: 255}, 1)

	if r, _, _, _ := screen.GetContent(0, 0); r != lineRune {
		t.Fatalf("stale shape mask blocked the line: %q", r)
	}
}

func TestBlendTowardBackground(t *testing.T) {
	screen := newScreen(t, 10, 5)
	s := NewSurface(screen, 8, 16, color.Black)

	if got := s.blend(color.NRGBA{R: 200, G: 100, B: 50, A: 255}, 0); got != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("zero alpha should give background, got %v", got)
	}
	half := s.blend(color.NRGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	r, g, b := half.RGB()
	if r != 100 || g != 50 || b != 25 {
		t.Fatalf("half blend = %d,%d,%d", r, g, b)
	}
}

func TestCellLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical up", 2, 7, 2, 3, 5},
		{"diagonal", 0, 0, 4, 4, 5},
		{"steep back", 5, 0, 3, 6, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := cellLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(pts) != tt.want {
				t.Fatalf("got %d cells, want %d: %v", len(pts), tt.want, pts)
			}
			if pts[0] != [2]int{tt.x0, tt.y0} || pts[len(pts)-1] != [2]int{tt.x1, tt.y1} {
				t.Fatalf("endpoints wrong: %v", pts)
			}
		})
	}
}

func TestHostResizePublishes(t *testing.T) {
	screen := newScreen(t, 80, 24)
	h := NewHost(screen, config.Terminal{CellWidth: 8, CellHeight: 16, FPS: 30}, testLogger())

	var gotW, gotH int
	cancel := h.OnResize(func(w, ht int) { gotW, gotH = w, ht })
	defer cancel()

	screen.SetSize(100, 30)
	if !h.handle(tcell.NewEventResize(100, 30)) {
		t.Fatal("resize stopped the loop")
	}
	if gotW != 800 || gotH != 480 {
		t.Fatalf("published %dx%d, want 800x480", gotW, gotH)
	}
}

func TestHostQuitKeys(t *testing.T) {
	screen := newScreen(t, 80, 24)
	h := NewHost(screen, config.Terminal{CellWidth: 8, CellHeight: 16, FPS: 30}, testLogger())

	quit := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quit {
		if h.handle(ev) {
			t.Errorf("key %v did not quit", ev.Name())
		}
	}
	if !h.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("unrelated key quit the loop")
	}
}

func TestHostRendersMountedField(t *testing.T) {
	screen := newScreen(t, 80, 24)
	h := NewHost(screen, config.Terminal{CellWidth: 8, CellHeight: 16, FPS: 30}, testLogger())

	r := field.NewRenderer(field.Dots(), rand.New(rand.NewPCG(3, 4)))
	if !r.Mount(h) {
		t.Fatal("mount failed")
	}
	defer r.Unmount()

	if r.Field().Len() != 80 {
		t.Fatalf("expected 640/8 = 80 particles, got %d", r.Field().Len())
	}

	h.Tick()
	h.Tick()
	if r.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d", r.Frames())
	}

	drawn := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if c, _, _, _ := screen.GetContent(x, y); c == '●' {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Fatal("no particles reached the screen")
	}
}

func TestHostRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 80, 24)
	h := NewHost(screen, config.Terminal{CellWidth: 8, CellHeight: 16, FPS: 30}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
}

func TestHostRunStopsOnQuitKey(t *testing.T) {
	screen := newScreen(t, 80, 24)
	h := NewHost(screen, config.Terminal{CellWidth: 8, CellHeight: 16, FPS: 30}, testLogger())

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
}
