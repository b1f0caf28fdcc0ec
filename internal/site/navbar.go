package site

const (
	// ScrollThreshold is how far the page must scroll before the navbar
	// switches to its frosted style.
	ScrollThreshold = 10
	// MobileBreakpoint is the viewport width below which the link row
	// collapses into a menu button.
	MobileBreakpoint = 768
)

// Navbar tracks the navigation bar's scrolled style and mobile menu.
type Navbar struct {
	Scrolled bool
	MenuOpen bool
}

// Scroll records the page scroll offset.
func (n *Navbar) Scroll(y float64) {
	n.Scrolled = y > ScrollThreshold
}

func (n *Navbar) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// Follow closes the mobile menu and returns the anchor to navigate to.
func (n *Navbar) Follow(l Link) string {
	n.MenuOpen = false
	return l.Anchor
}

// Mobile reports whether a viewport of the given width uses the menu button.
func Mobile(width int) bool {
	return width < MobileBreakpoint
}
