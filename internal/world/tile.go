package world

import (
	"sync"

	"github.com/OCharnyshevich/structure-generator/pkg/blockid"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

// Container is the inventory of a chest, furnace, dispenser, dropper or hopper.
type Container struct {
	mu    sync.Mutex
	id    int
	slots []host.ItemStack
}

// NewContainer returns an empty container with size slots for block id.
func NewContainer(id, size int) *Container {
	return &Container{id: id, slots: make([]host.ItemStack, size)}
}

func (c *Container) BlockID() int { return c.id }

func (c *Container) SizeInventory() int { return len(c.slots) }

func (c *Container) StackInSlot(i int) host.ItemStack {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.slots) {
		return host.ItemStack{}
	}
	return c.slots[i]
}

func (c *Container) SetInventorySlot(i int, s host.ItemStack) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.slots) {
		return
	}
	if s.Empty() {
		s = host.ItemStack{}
	}
	c.slots[i] = s
}

func (c *Container) InventoryStackLimit() int { return 64 }

// Slots returns a copy of every slot.
func (c *Container) Slots() []host.ItemStack {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]host.ItemStack(nil), c.slots...)
}

// Sign is a standing or wall sign.
type Sign struct {
	mu    sync.Mutex
	lines [4]string
}

func (s *Sign) SetLines(lines [4]string) {
	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

func (s *Sign) Lines() [4]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}

// Skull is a mob or player head.
type Skull struct {
	mu       sync.Mutex
	kind     host.SkullKind
	owner    string
	rotation int
}

func (s *Skull) SetSkull(kind host.SkullKind, owner string) {
	s.mu.Lock()
	s.kind, s.owner = kind, owner
	s.mu.Unlock()
}

func (s *Skull) SetRotation(rot int) {
	s.mu.Lock()
	s.rotation = rot & 15
	s.mu.Unlock()
}

// Skull returns the type, owner and rotation.
func (s *Skull) Skull() (host.SkullKind, string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind, s.owner, s.rotation
}

// newTileEntity returns the tile entity a block id carries, or nil.
func newTileEntity(id int) host.TileEntity {
	switch id {
	case blockid.Chest, blockid.TrappedChest:
		return NewContainer(id, 27)
	case blockid.Dispenser, blockid.Dropper:
		return NewContainer(id, 9)
	case blockid.Furnace, blockid.LitFurnace:
		return NewContainer(id, 3)
	case blockid.Hopper:
		return NewContainer(id, 5)
	case blockid.StandingSign, blockid.WallSign:
		return &Sign{}
	case blockid.Skull:
		return &Skull{}
	}
	return nil
}

// sameTileKind reports whether switching between ids a and b keeps the tile entity.
func sameTileKind(a, b int) bool {
	switch {
	case a == b:
		return true
	case (a == blockid.Furnace || a == blockid.LitFurnace) && (b == blockid.Furnace || b == blockid.LitFurnace):
		return true
	case (a == blockid.StandingSign || a == blockid.WallSign) && (b == blockid.StandingSign || b == blockid.WallSign):
		return true
	}
	return false
}
