package field

import (
	"math/rand/v2"

	"github.com/iburimskiy/charro-ambient/internal/frame"
)

// Host is the environment a Renderer is mounted into: a drawing surface,
// the viewport it covers, resize notifications and a display-refresh
// callback queue.
type Host interface {
	// Surface returns the drawing surface, or false when none is available.
	Surface() (Surface, bool)
	Viewport() (width, height int)
	OnResize(fn func(width, height int)) (cancel func())
	RequestFrame(fn func()) frame.ID
	CancelFrame(id frame.ID)
}

// Renderer binds a Field to a Host for the time it is mounted.
type Renderer struct {
	cfg Config
	rng *rand.Rand

	host        Host
	surface     Surface
	field       *Field
	unsubscribe func()
	pending     frame.ID
	frames      uint64
}

func NewRenderer(cfg Config, rng *rand.Rand) *Renderer {
	return &Renderer{cfg: cfg, rng: rng}
}

// Mount spawns a fresh field sized to the host viewport and starts the
// frame loop. It reports false, and does nothing, when the host has no
// surface. Mounting an already mounted renderer is a no-op.
func (r *Renderer) Mount(h Host) bool {
	if r.host != nil {
		return true
	}
	s, ok := h.Surface()
	if !ok || s == nil {
		return false
	}

	width, height := h.Viewport()
	s.Resize(width, height)

	r.host = h
	r.surface = s
	r.field = New(r.cfg, width, height, r.rng)
	r.frames = 0
	r.unsubscribe = h.OnResize(r.resize)
	r.pending = h.RequestFrame(r.tick)
	return true
}

// Unmount stops the frame loop, drops the resize subscription and
// discards the field.
func (r *Renderer) Unmount() {
	if r.host == nil {
		return
	}
	r.unsubscribe()
	r.host.CancelFrame(r.pending)

	r.host = nil
	r.surface = nil
	r.field = nil
	r.unsubscribe = nil
	r.pending = 0
}

// Mounted reports whether the frame loop is live.
func (r *Renderer) Mounted() bool { return r.host != nil }

// Field is the live field, or nil while unmounted.
func (r *Renderer) Field() *Field { return r.field }

// Frames counts frames rendered since the last Mount.
func (r *Renderer) Frames() uint64 { return r.frames }

func (r *Renderer) resize(width, height int) {
	if r.host == nil {
		return
	}
	r.surface.Resize(width, height)
	r.field.Resize(width, height)
}

func (r *Renderer) tick() {
	if r.host == nil {
		return
	}
	r.field.Render(r.surface)
	r.frames++
	r.pending = r.host.RequestFrame(r.tick)
}
