// Package anvil opens an anvil window to a player and uses it as a one-line
// text prompt. The player's rename text is delivered to a ClickHandler when
// they take the output item; closing the window cancels the prompt.
package anvil

import (
	"errors"
	"fmt"

	"github.com/go-mclib/anvilgui/pkg/server"
	"github.com/go-mclib/anvilgui/pkg/version"
)

// Slot indices of the anvil window.
const (
	// SlotInputLeft always holds the item being renamed.
	SlotInputLeft = 0
	// SlotInputRight is unused; in a real anvil it takes the second item.
	SlotInputRight = 1
	// SlotOutput holds the renamed result. Clicking it confirms the input.
	SlotOutput = 2
)

var (
	// ErrNotOpen is returned by Close when the dialog was already closed.
	ErrNotOpen = errors.New("anvil: inventory is not open")
	// ErrNoHandler is returned by Open when handler is nil.
	ErrNoHandler = errors.New("anvil: click handler is required")
)

// ClickHandler is called when the player clicks the output slot. input is
// the output item's name. Returning ok=true replaces the text and keeps the
// dialog open; ok=false closes it.
type ClickHandler func(clicker *server.Player, input string) (text string, ok bool)

// GUI is one open anvil dialog. It is not safe for concurrent use; all calls
// are expected on the server's main loop, like the events that drive it.
type GUI struct {
	plugin  *server.Plugin
	holder  *server.Player
	insert  *server.ItemStack
	handler ClickHandler
	adapter version.Adapter

	containerID int32
	container   *server.Container
	inventory   *server.Inventory
	listener    *listener

	title   string
	onClose func(*server.Player)

	open bool
}

// Open builds the dialog and shows it to holder with insert as the starting
// text. An unknown server release falls back to a best-effort adapter with a
// warning on the plugin logger. handler must not be nil. Other errors come
// from writing the window packets; on error nothing stays registered and
// holder is back on their own inventory.
func Open(plugin *server.Plugin, holder *server.Player, insert string, handler ClickHandler, opts ...Option) (*GUI, error) {
	if handler == nil {
		return nil, ErrNoHandler
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	item := server.NewItemStack(o.material, 1)
	item.SetDisplayName(insert)

	g := &GUI{
		plugin:  plugin,
		holder:  holder,
		insert:  item,
		handler: handler,
		adapter: version.Resolve(plugin.Server().Version(), plugin.Logger()),
		title:   o.title,
		onClose: o.onClose,
	}
	g.listener = &listener{gui: g}

	g.adapter.HandleInventoryCloseEvent(holder)
	g.adapter.SetActiveContainerDefault(holder)

	events := plugin.Server().Events
	events.Register(g.listener)

	g.container = g.adapter.NewContainerAnvil(holder, g.title)
	g.inventory = g.adapter.ToInventory(g.container)
	g.inventory.SetItem(SlotInputLeft, g.insert)

	g.containerID = g.adapter.NextContainerID(holder)
	if err := g.adapter.SendPacketOpenWindow(holder, g.containerID, g.title); err != nil {
		events.Unregister(g.listener)
		return nil, fmt.Errorf("anvil: open window: %w", err)
	}
	g.adapter.SetActiveContainer(holder, g.container)
	g.adapter.SetActiveContainerID(g.container, g.containerID)

	if err := g.adapter.AddActiveContainerSlotListener(g.container, holder); err != nil {
		g.adapter.SetActiveContainerDefault(holder)
		_ = g.adapter.SendPacketCloseWindow(holder, g.containerID)
		events.Unregister(g.listener)
		return nil, fmt.Errorf("anvil: sync window: %w", err)
	}

	g.open = true
	return g, nil
}

// Close closes the dialog. It returns ErrNotOpen if it is already closed.
func (g *GUI) Close() error {
	if !g.open {
		return ErrNotOpen
	}
	g.open = false

	// another window may have replaced ours without a close event
	if g.holder.ActiveContainer() == g.container {
		g.adapter.HandleInventoryCloseEvent(g.holder)
		g.adapter.SetActiveContainerDefault(g.holder)
		if err := g.adapter.SendPacketCloseWindow(g.holder, g.containerID); err != nil {
			g.plugin.Logger().Printf("anvil: close window %d for %s: %v", g.containerID, g.holder.Name(), err)
		}
	}

	g.plugin.Server().Events.Unregister(g.listener)

	if g.onClose != nil {
		g.onClose(g.holder)
	}
	return nil
}

// IsOpen reports whether the dialog is still showing.
func (g *GUI) IsOpen() bool { return g.open }

// Holder returns the player the dialog was opened for.
func (g *GUI) Holder() *server.Player { return g.holder }

// Inventory returns the anvil's inventory view.
func (g *GUI) Inventory() *server.Inventory { return g.inventory }

// ContainerID returns the window id the dialog was opened with.
func (g *GUI) ContainerID() int32 { return g.containerID }

// Adapter returns the release adapter selected when the dialog opened.
func (g *GUI) Adapter() version.Adapter { return g.adapter }

type listener struct {
	gui *GUI
}

func (l *listener) OnInventoryClick(e *server.ClickEvent) {
	g := l.gui
	if e.Inventory != g.inventory {
		return
	}
	e.Cancel()

	if e.RawSlot != SlotOutput || !g.open {
		return
	}
	clicked := g.inventory.Item(SlotOutput)
	if clicked.IsEmpty() {
		return
	}

	text, ok := g.handler(e.WhoClicked, clicked.Label())
	if !g.open {
		// the handler closed the dialog itself
		return
	}
	if !ok {
		_ = g.Close()
		return
	}

	renamed := clicked.Clone()
	renamed.SetDisplayName(text)
	g.inventory.SetItem(SlotInputLeft, renamed)
}

func (l *listener) OnInventoryClose(e *server.CloseEvent) {
	g := l.gui
	if e.Inventory != g.inventory {
		return
	}
	if g.open {
		_ = g.Close()
	}
	e.Inventory.Clear()
}
