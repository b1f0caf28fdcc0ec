package frame

// Bus fans viewport resize notifications out to subscribers.
type Bus struct {
	next      int
	listeners map[int]func(width, height int)
}

// Subscribe registers fn and returns a function that removes it again.
// The returned cancel func may be called more than once.
func (b *Bus) Subscribe(fn func(width, height int)) (cancel func()) {
	if b.listeners == nil {
		b.listeners = make(map[int]func(width, height int))
	}
	b.next++
	key := b.next
	b.listeners[key] = fn
	return func() {
		delete(b.listeners, key)
	}
}

// Publish notifies every subscriber of the new viewport size.
func (b *Bus) Publish(width, height int) {
	for _, fn := range b.listeners {
		fn(width, height)
	}
}

// Len reports the number of live subscriptions.
func (b *Bus) Len() int { return len(b.listeners) }
