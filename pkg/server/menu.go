package server

// MenuType represents a Minecraft container menu type from the minecraft:menu registry.
// Ids shift between releases; the values below are the 1.20.3+ layout.
type MenuType int32

const (
	MenuGeneric9x1 MenuType = 0
	MenuGeneric9x2 MenuType = 1
	MenuGeneric9x3 MenuType = 2 // single chest, barrel
	MenuGeneric9x4 MenuType = 3
	MenuGeneric9x5 MenuType = 4
	MenuGeneric9x6 MenuType = 5 // double chest
	MenuGeneric3x3 MenuType = 6 // dispenser, dropper
	MenuCrafter3x3 MenuType = 7
	MenuAnvil      MenuType = 8
	MenuBeacon     MenuType = 9
	MenuFurnace    MenuType = 14
	MenuHopper     MenuType = 16
	MenuShulkerBox MenuType = 20

	// MenuAnvilLegacy is the anvil id before crafter_3x3 was added in 1.20.3.
	MenuAnvilLegacy MenuType = 7

	// MenuPlayer marks the player's own inventory view. It is never sent.
	MenuPlayer MenuType = -1
)

const (
	// PlayerInventorySlots is the size of the player's own inventory view
	// (crafting grid, armor, main, hotbar, offhand).
	PlayerInventorySlots = 46

	// AnvilSlots is the number of container slots of an anvil menu.
	AnvilSlots = 3

	anvilInputLeft = 0
	anvilOutput    = 2

	// WindowIDPlayer is the window id of the player's own inventory.
	WindowIDPlayer = 0
	windowIDMax    = 100
)
