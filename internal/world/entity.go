package world

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Entity kinds created by the world.
const (
	KindPainting  = "Painting"
	KindItemFrame = "ItemFrame"
	KindVillager  = "Villager"
)

// NewVillager creates a villager with the given profession that is not yet
// in the world.
func (w *World) NewVillager(profession int) host.Entity {
	e := w.NewEntity(KindVillager)
	e.SetProfession(profession)
	return e
}

// Entity is a mob or hanging entity. Paintings and item frames also carry
// their art or displayed item.
type Entity struct {
	ID   int64
	UUID uuid.UUID
	Kind string

	mu         sync.Mutex
	pos        mgl64.Vec3
	yaw, pitch float32
	facing     orient.Facing
	profession int
	art        string
	item       host.ItemStack
	itemRot    int
}

func (e *Entity) Position() mgl64.Vec3 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pos
}

func (e *Entity) SetPosition(pos mgl64.Vec3, yaw, pitch float32) {
	e.mu.Lock()
	e.pos, e.yaw, e.pitch = pos, yaw, pitch
	e.mu.Unlock()
}

// Rotation returns the yaw and pitch in degrees.
func (e *Entity) Rotation() (yaw, pitch float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.yaw, e.pitch
}

// Facing is the direction a hanging entity faces.
func (e *Entity) Facing() orient.Facing { return e.facing }

func (e *Entity) SetProfession(p int) {
	e.mu.Lock()
	e.profession = p
	e.mu.Unlock()
}

func (e *Entity) Profession() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profession
}

func (e *Entity) SetArt(title string) {
	e.mu.Lock()
	e.art = title
	e.mu.Unlock()
}

func (e *Entity) Art() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.art
}

func (e *Entity) SetDisplayedItem(s host.ItemStack, rotation int) {
	e.mu.Lock()
	e.item, e.itemRot = s, rotation
	e.mu.Unlock()
}

// DisplayedItem returns the item frame's stack and rotation.
func (e *Entity) DisplayedItem() (host.ItemStack, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.item, e.itemRot
}
