package server

import (
	"fmt"

	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Container is the native, server-side state of an open window: its id on
// the client, menu type, slots and the listeners that mirror slot changes to
// the viewer.
type Container struct {
	id         int32
	menu       MenuType
	title      string
	anvil      bool
	stateID    int32
	renameText string
	inventory  *Inventory
	detached   bool

	onSlotChange []func(slot int, item *ItemStack)
}

// NewAnvilContainer creates an unbound anvil container. menu is the
// release-specific registry id of the anvil menu.
func NewAnvilContainer(menu MenuType, title string) *Container {
	c := &Container{menu: menu, title: title, anvil: true}
	c.inventory = newInventory(c, AnvilSlots)
	return c
}

func newPlayerContainer() *Container {
	c := &Container{id: WindowIDPlayer, menu: MenuPlayer}
	c.inventory = newInventory(c, PlayerInventorySlots)
	return c
}

// ID returns the window id the container is bound to (0 until bound).
func (c *Container) ID() int32 { return c.id }

// SetID binds the container to a window id.
func (c *Container) SetID(id int32) { c.id = id }

func (c *Container) Menu() MenuType { return c.menu }

func (c *Container) Title() string { return c.title }

func (c *Container) IsAnvil() bool { return c.anvil }

// StateID is the revision counter echoed by the client in click packets.
func (c *Container) StateID() int32 { return c.stateID }

func (c *Container) Inventory() *Inventory { return c.inventory }

// RenameText returns the text last typed into the anvil's rename box.
func (c *Container) RenameText() string { return c.renameText }

// SetRenameText records the rename box contents and recomputes the output slot.
func (c *Container) SetRenameText(text string) {
	if !c.anvil {
		return
	}
	c.renameText = text
	c.updateResult()
}

// OnSlotChange registers cb to run after any slot of the container changes.
func (c *Container) OnSlotChange(cb func(slot int, item *ItemStack)) {
	if c.detached {
		return
	}
	c.onSlotChange = append(c.onSlotChange, cb)
}

// SlotListeners returns the number of registered slot listeners.
func (c *Container) SlotListeners() int { return len(c.onSlotChange) }

// Detach drops all slot listeners. It reports false if the container was
// already detached, so callers can run close handling exactly once.
func (c *Container) Detach() bool {
	if c.detached {
		return false
	}
	c.detached = true
	c.onSlotChange = nil
	return true
}

func (c *Container) Detached() bool { return c.detached }

// WireSlots returns the container slots in protocol form. Player inventory
// slots that trail every window view are not included.
func (c *Container) WireSlots() ([]ns.Slot, error) {
	out := make([]ns.Slot, len(c.inventory.items))
	for i, s := range c.inventory.items {
		slot, err := s.WireSlot()
		if err != nil {
			return nil, fmt.Errorf("encode slot %d: %w", i, err)
		}
		out[i] = slot
	}
	return out, nil
}

func (c *Container) slotChanged(slot int) {
	c.stateID = (c.stateID + 1) & 0x7fff
	item := c.inventory.items[slot]
	for _, cb := range c.onSlotChange {
		cb(slot, item)
	}
	if c.anvil && slot == anvilInputLeft {
		c.updateResult()
	}
}

// updateResult mirrors the vanilla rename: the output is a copy of the left
// input carrying the rename text. Repair and enchant combining are not modelled.
func (c *Container) updateResult() {
	left := c.inventory.items[anvilInputLeft]
	var out *ItemStack
	if !left.IsEmpty() {
		out = left.Clone()
		if c.renameText != "" {
			out.SetDisplayName(c.renameText)
		}
	}
	c.inventory.items[anvilOutput] = out
	c.slotChanged(anvilOutput)
}
