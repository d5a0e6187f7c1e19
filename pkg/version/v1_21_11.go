package version

import "github.com/go-mclib/anvilgui/pkg/server"

// v1_21_11 targets 1.21.11.
type v1_21_11 struct{}

func (v1_21_11) Name() string { return "1.21.11" }
func (v1_21_11) Protocol() int32 { return 774 }

func (v1_21_11) HandleInventoryCloseEvent(p *server.Player) { closeActive(p) }

func (v1_21_11) SetActiveContainerDefault(p *server.Player) { p.SetActiveContainer(nil) }

func (v1_21_11) SetActiveContainer(p *server.Player, c *server.Container) { p.SetActiveContainer(c) }

func (v1_21_11) SetActiveContainerID(c *server.Container, id int32) { c.SetID(id) }

func (v1_21_11) NewContainerAnvil(_ *server.Player, title string) *server.Container {
	return server.NewAnvilContainer(server.MenuAnvil, title)
}

func (v1_21_11) ToInventory(c *server.Container) *server.Inventory { return c.Inventory() }

func (v1_21_11) NextContainerID(p *server.Player) int32 { return p.NextContainerCounter() }

func (v1_21_11) SendPacketOpenWindow(p *server.Player, id int32, title string) error {
	return openWindow(p, id, server.MenuAnvil, title)
}

func (v1_21_11) SendPacketCloseWindow(p *server.Player, id int32) error { return closeWindow(p, id) }

func (v1_21_11) AddActiveContainerSlotListener(c *server.Container, p *server.Player) error {
	return listenFullSync(c, p)
}
