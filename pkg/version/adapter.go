// Package version hides the release-specific parts of opening a custom
// window behind one interface, selected once per dialog from the server's
// reported release.
package version

import (
	"github.com/go-mclib/anvilgui/pkg/server"
)

// Adapter is the set of server-internal operations a custom anvil window
// needs. Implementations are stateless and shared by every dialog on a server.
type Adapter interface {
	// Name returns the release the adapter targets, or "fallback".
	Name() string
	// Protocol returns the protocol version number the adapter targets.
	Protocol() int32

	// HandleInventoryCloseEvent fires the close event for whatever custom
	// container the player has open, if any.
	HandleInventoryCloseEvent(p *server.Player)
	// SetActiveContainerDefault points the player back at their own inventory.
	SetActiveContainerDefault(p *server.Player)
	// SetActiveContainer binds c as the player's viewed container.
	SetActiveContainer(p *server.Player, c *server.Container)
	// SetActiveContainerID binds c to a window id.
	SetActiveContainerID(c *server.Container, id int32)

	// NewContainerAnvil allocates an unbound anvil container for p.
	NewContainerAnvil(p *server.Player, title string) *server.Container
	// ToInventory returns the public inventory view of c.
	ToInventory(c *server.Container) *server.Inventory
	// NextContainerID returns a fresh window id for p.
	NextContainerID(p *server.Player) int32

	// SendPacketOpenWindow tells the client to open an anvil window with id.
	SendPacketOpenWindow(p *server.Player, id int32, title string) error
	// SendPacketCloseWindow tells the client to close the window with id.
	SendPacketCloseWindow(p *server.Player, id int32) error
	// AddActiveContainerSlotListener mirrors c's slots to p's client.
	AddActiveContainerSlotListener(c *server.Container, p *server.Player) error
}
