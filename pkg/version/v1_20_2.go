package version

import "github.com/go-mclib/anvilgui/pkg/server"

// v1_20_2 targets 1.20.2, the last release before crafter_3x3 shifted the
// anvil menu id. Slots are pushed one by one when the window opens.
type v1_20_2 struct{}

func (v1_20_2) Name() string { return "1.20.2" }
func (v1_20_2) Protocol() int32 { return 764 }

func (v1_20_2) HandleInventoryCloseEvent(p *server.Player) { closeActive(p) }

func (v1_20_2) SetActiveContainerDefault(p *server.Player) { p.SetActiveContainer(nil) }

func (v1_20_2) SetActiveContainer(p *server.Player, c *server.Container) { p.SetActiveContainer(c) }

func (v1_20_2) SetActiveContainerID(c *server.Container, id int32) { c.SetID(id) }

func (v1_20_2) NewContainerAnvil(_ *server.Player, title string) *server.Container {
	return server.NewAnvilContainer(server.MenuAnvilLegacy, title)
}

func (v1_20_2) ToInventory(c *server.Container) *server.Inventory { return c.Inventory() }

func (v1_20_2) NextContainerID(p *server.Player) int32 { return p.NextContainerCounter() }

func (v1_20_2) SendPacketOpenWindow(p *server.Player, id int32, title string) error {
	return openWindow(p, id, server.MenuAnvilLegacy, title)
}

func (v1_20_2) SendPacketCloseWindow(p *server.Player, id int32) error { return closeWindow(p, id) }

func (v1_20_2) AddActiveContainerSlotListener(c *server.Container, p *server.Player) error {
	return listenPerSlot(c, p)
}
