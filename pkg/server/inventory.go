package server

// Inventory is the public view of a container's slots. Events carry the
// *Inventory they refer to, so listeners compare by pointer.
type Inventory struct {
	container *Container
	items     []*ItemStack
}

func newInventory(c *Container, size int) *Inventory {
	return &Inventory{container: c, items: make([]*ItemStack, size)}
}

// Size returns the number of slots.
func (inv *Inventory) Size() int { return len(inv.items) }

// Container returns the native container backing this inventory.
func (inv *Inventory) Container() *Container { return inv.container }

// Item returns the stack at slot, or nil if the slot is empty or out of range.
func (inv *Inventory) Item(slot int) *ItemStack {
	if slot < 0 || slot >= len(inv.items) {
		return nil
	}
	return inv.items[slot]
}

// SetItem replaces the stack at slot. Out-of-range slots are ignored.
func (inv *Inventory) SetItem(slot int, s *ItemStack) {
	if slot < 0 || slot >= len(inv.items) {
		return
	}
	inv.items[slot] = s
	inv.container.slotChanged(slot)
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	for i := range inv.items {
		if inv.items[i] == nil {
			continue
		}
		inv.items[i] = nil
		inv.container.slotChanged(i)
	}
}

// Contents returns a copy of the slot slice.
func (inv *Inventory) Contents() []*ItemStack {
	out := make([]*ItemStack, len(inv.items))
	copy(out, inv.items)
	return out
}
