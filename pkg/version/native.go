package version

import (
	"github.com/go-mclib/anvilgui/pkg/server"
	"github.com/go-mclib/data/pkg/packets"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Helpers shared by the release adapters. Each adapter picks the ones that
// match its release rather than inheriting them.

func closeActive(p *server.Player) {
	c := p.ActiveContainer()
	if !p.HasCustomContainer() || !c.Detach() {
		return
	}
	p.Server().Events.CallClose(&server.CloseEvent{Inventory: c.Inventory(), Player: p})
}

func openWindow(p *server.Player, id int32, menu server.MenuType, title string) error {
	return p.WritePacket(&packets.S2COpenScreen{
		WindowId:    ns.VarInt(id),
		WindowType:  ns.VarInt(menu),
		WindowTitle: ns.TextComponent{Text: title},
	})
}

func closeWindow(p *server.Player, id int32) error {
	return p.WritePacket(&packets.S2CContainerClose{
		WindowId: ns.VarInt(id),
	})
}

// listenFullSync pushes the whole window once, then every changed slot.
func listenFullSync(c *server.Container, p *server.Player) error {
	if err := p.SyncContents(c); err != nil {
		return err
	}
	c.OnSlotChange(func(slot int, item *server.ItemStack) {
		if err := p.SyncSlot(c, slot, item); err != nil {
			p.Server().Logger.Printf("version: sync slot %d of window %d: %v", slot, c.ID(), err)
		}
	})
	return nil
}

// listenPerSlot pushes each slot individually, then every changed slot.
func listenPerSlot(c *server.Container, p *server.Player) error {
	inv := c.Inventory()
	for i := range inv.Size() {
		if err := p.SyncSlot(c, i, inv.Item(i)); err != nil {
			return err
		}
	}
	c.OnSlotChange(func(slot int, item *server.ItemStack) {
		if err := p.SyncSlot(c, slot, item); err != nil {
			p.Server().Logger.Printf("version: sync slot %d of window %d: %v", slot, c.ID(), err)
		}
	})
	return nil
}
