package server

import (
	"github.com/go-mclib/data/pkg/data/items"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// Material is an id from the minecraft:item registry.
type Material int32

// MaterialAir is the empty item.
const MaterialAir Material = 0

// MaterialPaper is the default item put into anvil dialogs.
var MaterialPaper = MaterialOf("minecraft:paper")

// MaterialOf resolves a namespaced item name (e.g. "minecraft:paper").
// Unknown names resolve to air.
func MaterialOf(name string) Material {
	id := items.ItemID(name)
	if id < 0 {
		return MaterialAir
	}
	return Material(id)
}

// String returns the namespaced registry name.
func (m Material) String() string {
	return items.ItemName(int32(m))
}

// ItemStack is a go-mclib item stack. Its display name lives in the
// minecraft:custom_name component, so it reaches the client with the slot.
type ItemStack struct {
	items.ItemStack
}

// NewItemStack creates a stack of count items.
func NewItemStack(m Material, count int32) *ItemStack {
	return &ItemStack{items.ItemStack{ID: int32(m), Count: count}}
}

// ItemStackFromSlot decodes a protocol slot. Empty slots decode to nil.
func ItemStackFromSlot(raw ns.Slot) (*ItemStack, error) {
	stack, err := items.FromSlot(raw)
	if err != nil {
		return nil, err
	}
	if stack == nil || stack.IsEmpty() {
		return nil, nil
	}
	return &ItemStack{*stack}, nil
}

// Material returns the stack's item type.
func (s *ItemStack) Material() Material { return Material(s.ID) }

// IsEmpty reports whether the stack holds nothing. A nil stack is empty.
func (s *ItemStack) IsEmpty() bool {
	return s == nil || s.ID == int32(MaterialAir) || s.Count <= 0
}

func (s *ItemStack) HasDisplayName() bool {
	return s != nil && s.Components != nil && s.Components.CustomName != nil
}

func (s *ItemStack) DisplayName() string {
	if !s.HasDisplayName() {
		return ""
	}
	return s.Components.CustomName.Text
}

func (s *ItemStack) SetDisplayName(name string) {
	if s.Components == nil {
		s.Components = &items.Components{}
	}
	s.Components.CustomName = &ns.TextComponent{Text: name}
}

// ClearDisplayName drops the custom name, reverting to the material name.
func (s *ItemStack) ClearDisplayName() {
	if s.Components != nil {
		s.Components.CustomName = nil
	}
}

// Label returns the display name if set, otherwise the material name.
func (s *ItemStack) Label() string {
	if s.HasDisplayName() {
		return s.DisplayName()
	}
	if s == nil {
		return MaterialAir.String()
	}
	return s.Material().String()
}

// Clone returns an independent copy. Cloning nil returns nil.
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	c := *s
	if s.Components != nil {
		comps := *s.Components
		c.Components = &comps
	}
	return &c
}

// WireSlot encodes the stack, components included, for the client.
func (s *ItemStack) WireSlot() (ns.Slot, error) {
	if s.IsEmpty() {
		return ns.Slot{}, nil
	}
	return s.ToSlot()
}
