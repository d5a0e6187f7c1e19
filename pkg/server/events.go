package server

import "sync"

// ClickEvent is fired when a player clicks a slot of an open window.
type ClickEvent struct {
	Inventory   *Inventory
	RawSlot     int
	WhoClicked  *Player
	CurrentItem *ItemStack

	cancelled bool
}

// Cancel prevents the host's default item move for this click.
func (e *ClickEvent) Cancel() { e.cancelled = true }

func (e *ClickEvent) SetCancelled(cancel bool) { e.cancelled = cancel }

func (e *ClickEvent) Cancelled() bool { return e.cancelled }

// CloseEvent is fired when a window is closed, whether by the client or by
// the server replacing it.
type CloseEvent struct {
	Inventory *Inventory
	Player    *Player
}

// Listener receives inventory events from the bus.
type Listener interface {
	OnInventoryClick(e *ClickEvent)
	OnInventoryClose(e *CloseEvent)
}

// Bus dispatches inventory events to every registered listener. Listeners
// filter by the event's inventory.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
	metrics   *Metrics
}

// NewBus creates an empty bus. metrics may be nil.
func NewBus(metrics *Metrics) *Bus {
	return &Bus{metrics: metrics}
}

// Register adds l. Registering the same listener twice is a no-op.
func (b *Bus) Register(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, x := range b.listeners {
		if x == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

// Unregister removes l if present.
func (b *Bus) Unregister(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, x := range b.listeners {
		if x == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Registered reports whether l is currently registered.
func (b *Bus) Registered(l Listener) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, x := range b.listeners {
		if x == l {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

func (b *Bus) snapshot() []Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.listeners
}

// CallClick dispatches e. Listeners may unregister while it runs.
func (b *Bus) CallClick(e *ClickEvent) {
	b.metrics.event("click")
	for _, l := range b.snapshot() {
		l.OnInventoryClick(e)
	}
}

// CallClose dispatches e. Listeners may unregister while it runs.
func (b *Bus) CallClose(e *CloseEvent) {
	b.metrics.event("close")
	for _, l := range b.snapshot() {
		l.OnInventoryClose(e)
	}
}
