package site

// Tabs is the selected-index state of the services showcase.
type Tabs struct {
	items  []Service
	active int
}

func NewTabs(items []Service) *Tabs {
	return &Tabs{items: items}
}

// Select activates index i. Out of range indexes are ignored.
func (t *Tabs) Select(i int) {
	if i < 0 || i >= len(t.items) {
		return
	}
	t.active = i
}

// Next moves the selection forward, wrapping to the first entry.
func (t *Tabs) Next() {
	if len(t.items) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.items)
}

// Prev moves the selection back, wrapping to the last entry.
func (t *Tabs) Prev() {
	if len(t.items) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.items)) % len(t.items)
}

func (t *Tabs) Index() int { return t.active }

func (t *Tabs) Len() int { return len(t.items) }

// Items returns the entries in display order.
func (t *Tabs) Items() []Service { return t.items }

// Active returns the selected entry. It panics on an empty Tabs.
func (t *Tabs) Active() Service { return t.items[t.active] }
