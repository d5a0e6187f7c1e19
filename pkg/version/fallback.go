package version

import "github.com/go-mclib/anvilgui/pkg/server"

// fallback is used when the server reports a release with no adapter. It
// assumes the newest known layout and pushes the window contents once on open
// without tracking later slot changes.
type fallback struct{}

func (fallback) Name() string { return "fallback" }

// Protocol returns 0: the real protocol version is unknown.
func (fallback) Protocol() int32 { return 0 }

func (fallback) HandleInventoryCloseEvent(p *server.Player) { closeActive(p) }

func (fallback) SetActiveContainerDefault(p *server.Player) { p.SetActiveContainer(nil) }

func (fallback) SetActiveContainer(p *server.Player, c *server.Container) { p.SetActiveContainer(c) }

func (fallback) SetActiveContainerID(c *server.Container, id int32) { c.SetID(id) }

func (fallback) NewContainerAnvil(_ *server.Player, title string) *server.Container {
	return server.NewAnvilContainer(server.MenuAnvil, title)
}

func (fallback) ToInventory(c *server.Container) *server.Inventory { return c.Inventory() }

func (fallback) NextContainerID(p *server.Player) int32 { return p.NextContainerCounter() }

func (fallback) SendPacketOpenWindow(p *server.Player, id int32, title string) error {
	return openWindow(p, id, server.MenuAnvil, title)
}

func (fallback) SendPacketCloseWindow(p *server.Player, id int32) error { return closeWindow(p, id) }

func (fallback) AddActiveContainerSlotListener(c *server.Container, p *server.Player) error {
	return p.SyncContents(c)
}
