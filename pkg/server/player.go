package server

import (
	"crypto/md5"
	"fmt"

	"github.com/go-mclib/data/pkg/data/packet_ids"
	"github.com/go-mclib/data/pkg/packets"
	jp "github.com/go-mclib/protocol/java_protocol"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
	"github.com/google/uuid"
)

// PacketWriter is the outgoing half of a player connection.
type PacketWriter interface {
	WritePacket(pkt jp.Packet) error
}

// Player is a connected player and the window state the server keeps for it.
type Player struct {
	server      *Server
	conn        PacketWriter
	name        string
	displayName string
	uuid        uuid.UUID

	inventory        *Container // own inventory view, window 0
	active           *Container
	containerCounter int32
}

func newPlayer(s *Server, name string, conn PacketWriter) *Player {
	inv := newPlayerContainer()
	return &Player{
		server:      s,
		conn:        conn,
		name:        name,
		displayName: name,
		uuid:        OfflineUUID(name),
		inventory:   inv,
		active:      inv,
	}
}

// OfflineUUID derives the name-based (version 3) UUID an offline-mode server
// assigns to name.
func OfflineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	return uuid.UUID(sum)
}

func (p *Player) Name() string { return p.name }

func (p *Player) DisplayName() string { return p.displayName }

func (p *Player) SetDisplayName(name string) { p.displayName = name }

func (p *Player) UUID() uuid.UUID { return p.uuid }

func (p *Player) Server() *Server { return p.server }

// WritePacket sends pkt to the player's client.
func (p *Player) WritePacket(pkt jp.Packet) error {
	return p.conn.WritePacket(pkt)
}

// ActiveContainer returns the container the player is viewing. When no
// custom window is open this is the player's own inventory.
func (p *Player) ActiveContainer() *Container { return p.active }

// DefaultContainer returns the player's own inventory view.
func (p *Player) DefaultContainer() *Container { return p.inventory }

// HasCustomContainer reports whether a window other than the player's own
// inventory is bound.
func (p *Player) HasCustomContainer() bool { return p.active != p.inventory }

// SetActiveContainer binds c as the viewed container. nil restores the
// player's own inventory. A replaced custom container is detached.
func (p *Player) SetActiveContainer(c *Container) {
	if c == nil {
		c = p.inventory
	}
	if c == p.active {
		return
	}
	if p.active != p.inventory {
		p.active.Detach()
		p.server.Metrics.closed()
	}
	if c != p.inventory {
		p.server.Metrics.opened()
	}
	p.active = c
}

// NextContainerCounter advances the per-player window id counter. Ids cycle
// through 1..100; 0 is the player's own inventory.
func (p *Player) NextContainerCounter() int32 {
	p.containerCounter = p.containerCounter%windowIDMax + 1
	return p.containerCounter
}

// SyncContents sends every container slot to the client.
func (p *Player) SyncContents(c *Container) error {
	slots, err := c.WireSlots()
	if err != nil {
		return err
	}
	return p.WritePacket(&packets.S2CContainerSetContent{
		WindowId:    ns.VarInt(c.ID()),
		StateId:     ns.VarInt(c.StateID()),
		Slots:       slots,
		CarriedItem: ns.Slot{},
	})
}

// SyncSlot sends a single container slot to the client.
func (p *Player) SyncSlot(c *Container, slot int, item *ItemStack) error {
	data, err := item.WireSlot()
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", slot, err)
	}
	return p.WritePacket(&packets.S2CContainerSetSlot{
		WindowId: ns.VarInt(c.ID()),
		StateId:  ns.VarInt(c.StateID()),
		Slot:     ns.Int16(slot),
		SlotData: data,
	})
}

// CloseActiveContainer detaches the open custom container, fires its close
// event and restores the player's own inventory. It reports false if no
// custom container was open.
func (p *Player) CloseActiveContainer() bool {
	c := p.active
	if c == p.inventory {
		return false
	}
	if c.Detach() {
		p.server.Events.CallClose(&CloseEvent{Inventory: c.Inventory(), Player: p})
	}
	p.SetActiveContainer(nil)
	return true
}

// HandlePacket decodes the serverbound window packets this server cares about.
func (p *Player) HandlePacket(pkt *jp.WirePacket) {
	switch pkt.PacketID {
	case packet_ids.C2SContainerClickID:
		var d packets.C2SContainerClick
		if err := pkt.ReadInto(&d); err != nil {
			p.server.Logger.Println("player: failed to parse container click:", err)
			return
		}
		p.HandleContainerClick(int32(d.WindowId), int(d.Slot))
	case packet_ids.C2SContainerCloseID:
		var d packets.C2SContainerClose
		if err := pkt.ReadInto(&d); err != nil {
			p.server.Logger.Println("player: failed to parse container close:", err)
			return
		}
		p.HandleContainerClose(int32(d.WindowId))
	case packet_ids.C2SRenameItemID:
		var d packets.C2SRenameItem
		if err := pkt.ReadInto(&d); err != nil {
			p.server.Logger.Println("player: failed to parse rename item:", err)
			return
		}
		p.HandleRenameItem(string(d.ItemName))
	}
}

// HandleContainerClick fires a click event for the open window. Item movement
// is not simulated, so the client is resynchronised afterwards.
func (p *Player) HandleContainerClick(windowID int32, slot int) {
	c := p.active
	if c.ID() != windowID {
		p.server.Logger.Printf("player %s: ignored click on unknown window %d", p.name, windowID)
		return
	}

	e := &ClickEvent{
		Inventory:   c.Inventory(),
		RawSlot:     slot,
		WhoClicked:  p,
		CurrentItem: c.Inventory().Item(slot),
	}
	p.server.Events.CallClick(e)

	if p.active != c || c.Detached() || c == p.inventory {
		return
	}
	if err := p.SyncContents(c); err != nil {
		p.server.Logger.Printf("player %s: resync window %d: %v", p.name, c.ID(), err)
	}
}

// HandleContainerClose handles the client closing its open window.
func (p *Player) HandleContainerClose(windowID int32) {
	if p.active.ID() != windowID {
		p.server.Logger.Printf("player %s: ignored close of unknown window %d", p.name, windowID)
		return
	}
	p.CloseActiveContainer()
}

// HandleRenameItem updates the rename text of an open anvil.
func (p *Player) HandleRenameItem(name string) {
	if !p.active.IsAnvil() {
		return
	}
	p.active.SetRenameText(name)
}
