package effects

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

type chest struct {
	slots []host.ItemStack
	limit int
}

func (c *chest) SizeInventory() int { return len(c.slots) }
func (c *chest) StackInSlot(i int) host.ItemStack { return c.slots[i] }
func (c *chest) SetInventorySlot(i int, s host.ItemStack) { c.slots[i] = s }
func (c *chest) InventoryStackLimit() int { return c.limit }

type sign struct{ lines [4]string }

func (s *sign) SetLines(l [4]string) { s.lines = l }

type skull struct {
	kind  host.SkullKind
	owner string
	rot   int
}

func (s *skull) SetSkull(k host.SkullKind, owner string) { s.kind, s.owner = k, owner }
func (s *skull) SetRotation(r int) { s.rot = r }

type entity struct {
	pos mgl64.Vec3
	art string

	item host.ItemStack
	rot  int
}

func (e *entity) Position() mgl64.Vec3 { return e.pos }
func (e *entity) SetPosition(p mgl64.Vec3, _, _ float32) { e.pos = p }
func (e *entity) SetArt(title string) { e.art = title }
func (e *entity) SetDisplayedItem(s host.ItemStack, r int) {
	e.item, e.rot = s, r
}

type hangKey struct {
	pos host.Pos
	dir orient.Facing
}

type world struct {
	blocks  map[host.Pos][2]int
	tiles   map[host.Pos]host.TileEntity
	hanging map[hangKey]*entity
	spawned []host.Entity
}

func newWorld() *world {
	return &world{
		blocks:  make(map[host.Pos][2]int),
		tiles:   make(map[host.Pos]host.TileEntity),
		hanging: make(map[hangKey]*entity),
	}
}

func (w *world) SetBlock(x, y, z, id, meta int, _ host.UpdateFlag) bool {
	p := host.Pos{X: x, Y: y, Z: z}
	if id == 0 {
		delete(w.blocks, p)
		return true
	}
	w.blocks[p] = [2]int{id, meta}
	return true
}

func (w *world) Block(x, y, z int) (int, int) {
	b := w.blocks[host.Pos{X: x, Y: y, Z: z}]
	return b[0], b[1]
}

func (w *world) TileEntity(x, y, z int) host.TileEntity {
	return w.tiles[host.Pos{X: x, Y: y, Z: z}]
}

func (w *world) SpawnEntity(e host.Entity) bool {
	w.spawned = append(w.spawned, e)
	return true
}

func (w *world) SpawnHanging(_ host.HangingKind, x, y, z int, dir orient.Facing) (host.Entity, bool) {
	p := host.Pos{X: x, Y: y, Z: z}
	e := &entity{pos: p.Vec()}
	w.hanging[hangKey{p, dir}] = e
	return e, true
}

func (w *world) HangingAt(x, y, z int, dir orient.Facing) (host.Entity, bool) {
	e, ok := w.hanging[hangKey{host.Pos{X: x, Y: y, Z: z}, dir}]
	return e, ok
}

var origin = host.Pos{X: 1, Y: 64, Z: 1}

func TestAddItemToTileInventory(t *testing.T) {
	w := newWorld()
	c := &chest{slots: make([]host.ItemStack, 4), limit: 64}
	w.tiles[origin] = c

	potions := []int{8206, 8270, 8193, 16385}
	for _, d := range potions {
		if !AddItemToTileInventory(w, origin, host.ItemStack{ID: 373, Count: 1, Damage: d}) {
			t.Fatalf("potion %d did not fit", d)
		}
	}
	for i, d := range potions {
		if got := c.slots[i]; got != (host.ItemStack{ID: 373, Count: 1, Damage: d}) {
			t.Errorf("slot %d = %+v, want potion %d", i, got, d)
		}
	}
	if AddItemToTileInventory(w, origin, host.ItemStack{ID: 264, Count: 1}) {
		t.Error("item added to a full inventory")
	}
}

func TestAddItemToTileInventoryMerges(t *testing.T) {
	w := newWorld()
	c := &chest{slots: make([]host.ItemStack, 3), limit: 64}
	c.slots[1] = host.ItemStack{ID: 264, Count: 60}
	w.tiles[origin] = c

	if !AddItemToTileInventory(w, origin, host.ItemStack{ID: 264, Count: 10}) {
		t.Fatal("stack did not fit")
	}
	// The empty slot 0 comes first, so the whole stack lands there.
	if c.slots[0] != (host.ItemStack{ID: 264, Count: 10}) || c.slots[1].Count != 60 {
		t.Errorf("slots = %+v, want 10 in slot 0 and slot 1 untouched", c.slots)
	}

	if !AddItemToTileInventory(w, origin, host.ItemStack{ID: 264, Count: 60}) {
		t.Fatal("second stack did not fit")
	}
	if c.slots[0].Count != 64 || c.slots[1].Count != 64 || c.slots[2].Count != 2 {
		t.Errorf("slots = %+v, want 64, 64, 2", c.slots)
	}

	// 62 more fill the chest, so a big stack only partly fits.
	if AddItemToTileInventory(w, origin, host.ItemStack{ID: 264, Count: 200}) {
		t.Error("oversized stack reported as fitting")
	}
	for i, s := range c.slots {
		if s.Count != 64 {
			t.Errorf("slot %d count = %d, want 64", i, s.Count)
		}
	}
}

func TestAddItemWithoutInventory(t *testing.T) {
	w := newWorld()
	if AddItemToTileInventory(w, origin, host.ItemStack{ID: 1, Count: 1}) {
		t.Error("no tile entity should report false")
	}
	w.tiles[origin] = &sign{}
	if AddItemToTileInventory(w, origin, host.ItemStack{ID: 1, Count: 1}) {
		t.Error("a sign has no inventory")
	}
}

func TestSetSignText(t *testing.T) {
	w := newWorld()
	if SetSignText(w, origin, "a") {
		t.Error("no sign should report false")
	}
	s := &sign{}
	w.tiles[origin] = s
	if !SetSignText(w, origin, "Welcome", "home", "", "traveller", "dropped") {
		t.Fatal("SetSignText failed")
	}
	if s.lines != [4]string{"Welcome", "home", "", "traveller"} {
		t.Errorf("lines = %q", s.lines)
	}
}

func TestSetSkullData(t *testing.T) {
	w := newWorld()
	s := &skull{rot: -1}
	w.tiles[origin] = s
	w.blocks[origin] = [2]int{144, 3}

	if !SetSkullDataRotated(w, origin, host.SkullPlayer, "Notch", 6) {
		t.Fatal("SetSkullDataRotated failed")
	}
	if s.kind != host.SkullPlayer || s.owner != "Notch" {
		t.Errorf("skull = %+v", s)
	}
	if s.rot != -1 {
		t.Errorf("wall skull rotated to %d", s.rot)
	}

	w.blocks[origin] = [2]int{144, 1}
	if !SetSkullDataRotated(w, origin, host.SkullCreeper, "", 22) {
		t.Fatal("SetSkullDataRotated failed")
	}
	if s.rot != 6 {
		t.Errorf("floor skull rotation = %d, want 6", s.rot)
	}
	if !SetSkullData(w, origin, host.SkullWither, "") || s.kind != host.SkullWither {
		t.Errorf("SetSkullData: %+v", s)
	}
	if SetSkullData(w, origin.Add(1, 0, 0), host.SkullZombie, "") {
		t.Error("no skull should report false")
	}
}

func TestHangingPainting(t *testing.T) {
	w := newWorld()
	// A torch pointing north is the dummy for a painting on a south wall.
	w.blocks[origin] = [2]int{50, 4}

	dir, ok := SetHangingEntity(w, origin, host.HangingPainting)
	if !ok || dir != orient.North {
		t.Fatalf("SetHangingEntity = %v, %v; want north", dir, ok)
	}
	if id, _ := w.Block(origin.X, origin.Y, origin.Z); id != 0 {
		t.Errorf("dummy block not cleared: %d", id)
	}
	if !SetPaintingArt(w, origin, dir, "skullandroses") {
		t.Fatal("SetPaintingArt failed")
	}
	if got := w.hanging[hangKey{origin, orient.North}].art; got != "SkullAndRoses" {
		t.Errorf("art = %q, want SkullAndRoses", got)
	}
	if SetPaintingArt(w, origin, dir, "Mona Lisa") {
		t.Error("unknown art accepted")
	}
	if SetPaintingArt(w, origin, orient.East, "Kebab") {
		t.Error("painting found with the wrong direction")
	}
}

func TestHangingItemFrame(t *testing.T) {
	w := newWorld()
	w.blocks[origin] = [2]int{50, 1}

	dir, ok := SetHangingEntity(w, origin, host.HangingItemFrame)
	if !ok || dir != orient.East {
		t.Fatalf("SetHangingEntity = %v, %v; want east", dir, ok)
	}
	sword := host.ItemStack{ID: 267, Count: 1}
	if !SetItemFrameStack(w, origin, dir, sword, 5) {
		t.Fatal("SetItemFrameStack failed")
	}
	e := w.hanging[hangKey{origin, dir}]
	if e.item != sword || e.rot != 1 {
		t.Errorf("frame holds %+v rotation %d", e.item, e.rot)
	}
}

func TestHangingNeedsWallMount(t *testing.T) {
	w := newWorld()
	w.blocks[origin] = [2]int{50, 5}
	if _, ok := SetHangingEntity(w, origin, host.HangingPainting); ok {
		t.Error("floor torch accepted as a hanging dummy")
	}
	if id, _ := w.Block(origin.X, origin.Y, origin.Z); id != 50 {
		t.Error("dummy cleared although no entity was placed")
	}
}

func TestSpawnEntityInStructure(t *testing.T) {
	w := newWorld()
	// Placeholder with a solid ceiling right above it: the column at the
	// placeholder is blocked, the one east of it is free.
	w.blocks[origin] = [2]int{7, 0}
	w.blocks[origin.Add(0, 1, 0)] = [2]int{1, 0}
	for _, p := range []host.Pos{origin.Add(-1, 0, -1), origin.Add(-1, 0, 0), origin.Add(-1, 0, 1), origin.Add(0, 0, -1)} {
		w.blocks[p] = [2]int{1, 0}
	}

	e := &entity{}
	if !SpawnEntityInStructure(w, e, origin, DefaultCavityRadius) {
		t.Fatal("no cavity found")
	}
	want := origin.Add(0, 0, 1).Vec()
	if e.pos != want {
		t.Errorf("entity at %v, want %v", e.pos, want)
	}
	if id, _ := w.Block(origin.X, origin.Y, origin.Z); id != 0 {
		t.Error("placeholder not cleared")
	}
	if len(w.spawned) != 1 {
		t.Errorf("spawned %d entities, want 1", len(w.spawned))
	}
}

func TestSpawnEntityWithoutCavity(t *testing.T) {
	w := newWorld()
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			w.blocks[origin.Add(dx, 1, dz)] = [2]int{1, 0}
		}
	}
	w.blocks[origin] = [2]int{7, 0}

	e := &entity{}
	if SpawnEntityInStructure(w, e, origin, 1) {
		t.Error("cavity reported inside solid blocks")
	}
	if e.pos != origin.Vec() {
		t.Errorf("entity at %v, want the placeholder %v", e.pos, origin.Vec())
	}
	if id, _ := w.Block(origin.X, origin.Y, origin.Z); id != 7 {
		t.Error("placeholder cleared although no cavity was found")
	}
	if len(w.spawned) != 1 {
		t.Error("entity should still be spawned")
	}
}

func TestSetEntityInStructureDoesNotSpawn(t *testing.T) {
	w := newWorld()
	w.blocks[origin] = [2]int{7, 0}
	e := &entity{}
	if !SetEntityInStructure(w, e, origin, 2) {
		t.Fatal("open air should be a cavity")
	}
	if e.pos != origin.Vec() {
		t.Errorf("entity at %v, want the placeholder position", e.pos)
	}
	if len(w.spawned) != 0 {
		t.Error("SetEntityInStructure spawned the entity")
	}
}

func TestLookupArt(t *testing.T) {
	for _, name := range []string{"kebab", "KEBAB", "DonkeyKong", "burningskull"} {
		if _, ok := LookupArt(name); !ok {
			t.Errorf("LookupArt(%q) failed", name)
		}
	}
	if len(Arts) != 26 {
		t.Errorf("len(Arts) = %d, want 26", len(Arts))
	}
}
