// Package host declares the narrow slice of a voxel world that structure
// generation needs. Implementations live with the game server; the generator
// and the effect helpers only ever talk to these interfaces.
package host

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// ErrUnavailable is the panic value (or wrapped error) a host uses when the
// world can no longer accept writes at all, e.g. it is shutting down.
var ErrUnavailable = errors.New("host world unavailable")

// Pos is an absolute block position.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns p translated by the given deltas.
func (p Pos) Add(dx, dy, dz int) Pos {
	return Pos{p.X + dx, p.Y + dy, p.Z + dz}
}

// Step returns the neighbour of p in direction f.
func (p Pos) Step(f orient.Facing) Pos {
	dx, dz := f.Offset()
	return p.Add(dx, 0, dz)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Vec returns the centre of the block's bottom face.
func (p Pos) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X) + 0.5, float64(p.Y), float64(p.Z) + 0.5}
}

// UpdateFlag controls the side effects of a block write.
type UpdateFlag int

const (
	// NotifyNeighbors triggers neighbour block updates (water flow, redstone, ...).
	NotifyNeighbors UpdateFlag = 1 << iota
	// SendToClients pushes the change to connected clients.
	SendToClients

	UpdateAll = NotifyNeighbors | SendToClients
)

// World is the placement interface a host exposes to the generator.
// Coordinates are absolute; meta is the 4-bit block metadata.
type World interface {
	// SetBlock writes a block and reports whether the host accepted it.
	SetBlock(x, y, z, id, meta int, flags UpdateFlag) bool
	// Block returns the id and metadata at a position. Unloaded or empty
	// positions report air.
	Block(x, y, z int) (id, meta int)
	// TileEntity returns the tile entity at a position, or nil.
	TileEntity(x, y, z int) TileEntity
	// SpawnEntity adds e to the world at its current position.
	SpawnEntity(e Entity) bool
}

// TileEntity is an opaque host handle. Effects probe it for the capability
// interfaces below.
type TileEntity any

// ItemStack is an item id, a stack size and a damage (or subtype) value.
type ItemStack struct {
	ID     int `json:"id"`
	Count  int `json:"count"`
	Damage int `json:"damage"`
}

// Empty reports whether the stack holds nothing.
func (s ItemStack) Empty() bool {
	return s.ID <= 0 || s.Count <= 0
}

// Stacks reports whether o can merge into s.
func (s ItemStack) Stacks(o ItemStack) bool {
	return s.ID == o.ID && s.Damage == o.Damage
}

// Inventory is implemented by tile entities that hold items.
type Inventory interface {
	SizeInventory() int
	// StackInSlot returns the stack in slot i; empty slots return a zero stack.
	StackInSlot(i int) ItemStack
	SetInventorySlot(i int, s ItemStack)
	// InventoryStackLimit caps the count of any single slot.
	InventoryStackLimit() int
}

// Sign is implemented by sign tile entities.
type Sign interface {
	SetLines(lines [4]string)
}

// SkullKind is the 1.8 skull type.
type SkullKind int

const (
	SkullSkeleton SkullKind = iota
	SkullWither
	SkullZombie
	SkullPlayer
	SkullCreeper
)

// Skull is implemented by skull tile entities.
type Skull interface {
	SetSkull(kind SkullKind, owner string)
	// SetRotation sets the 16-way rotation of a floor skull.
	SetRotation(rot int)
}

// Entity is a host entity handle.
type Entity interface {
	Position() mgl64.Vec3
	SetPosition(pos mgl64.Vec3, yaw, pitch float32)
}

// HangingKind selects the entity created by HangingWorld.SpawnHanging.
type HangingKind int

const (
	HangingPainting HangingKind = iota
	HangingItemFrame
)

func (k HangingKind) String() string {
	switch k {
	case HangingPainting:
		return "painting"
	case HangingItemFrame:
		return "item_frame"
	}
	return fmt.Sprintf("hanging(%d)", int(k))
}

// HangingWorld is implemented by hosts that support paintings and item frames.
type HangingWorld interface {
	World
	// SpawnHanging creates a hanging entity in the block at (x, y, z),
	// facing dir (its back against the wall in the opposite direction).
	SpawnHanging(kind HangingKind, x, y, z int, dir orient.Facing) (Entity, bool)
	// HangingAt returns the hanging entity in that block facing dir, if any.
	HangingAt(x, y, z int, dir orient.Facing) (Entity, bool)
}

// ItemFrame is implemented by item frame entities.
type ItemFrame interface {
	SetDisplayedItem(s ItemStack, rotation int)
}

// Painting is implemented by painting entities.
type Painting interface {
	SetArt(title string)
}
