package world

import (
	"testing"

	"github.com/OCharnyshevich/structure-generator/internal/world/gen"
	"github.com/OCharnyshevich/structure-generator/pkg/blockid"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

var (
	_ host.World        = (*World)(nil)
	_ host.HangingWorld = (*World)(nil)
	_ host.Inventory    = (*Container)(nil)
	_ host.Sign         = (*Sign)(nil)
	_ host.Skull        = (*Skull)(nil)
	_ host.Painting     = (*Entity)(nil)
	_ host.ItemFrame    = (*Entity)(nil)
)

func TestWorldBaseStateFlatGenerator(t *testing.T) {
	w := NewWorld(gen.NewFlatGenerator(0))

	tests := []struct {
		x, y, z int
		want    int
	}{
		{0, 0, 0, blockid.Bedrock},
		{0, 1, 0, blockid.Stone},
		{0, 4, 0, blockid.Grass},
		{-17, 4, 33, blockid.Grass},
		{5, 64, 10, blockid.Air},
		{5, -1, 10, blockid.Air},
		{5, 300, 10, blockid.Air},
	}
	for _, tt := range tests {
		if id, _ := w.Block(tt.x, tt.y, tt.z); id != tt.want {
			t.Errorf("Block(%d,%d,%d) = %d, want %d", tt.x, tt.y, tt.z, id, tt.want)
		}
	}
}

func TestWorldSetBlock(t *testing.T) {
	w := NewWorld(gen.NewFlatGenerator(0))

	if !w.SetBlock(3, 10, 5, blockid.Cobblestone, 0, host.UpdateAll) {
		t.Fatal("SetBlock refused")
	}
	if id, meta := w.Block(3, 10, 5); id != blockid.Cobblestone || meta != 0 {
		t.Errorf("Block(3,10,5) = %d:%d", id, meta)
	}

	// Break grass, then restore it; the restore removes the override.
	w.SetBlock(0, 4, 0, blockid.Air, 0, host.UpdateAll)
	if id, _ := w.Block(0, 4, 0); id != blockid.Air {
		t.Errorf("Block(0,4,0) after break = %d", id)
	}
	w.SetBlock(0, 4, 0, blockid.Grass, 0, host.UpdateAll)
	if id, _ := w.Block(0, 4, 0); id != blockid.Grass {
		t.Errorf("Block(0,4,0) after restore = %d", id)
	}
	w.mu.RLock()
	_, exists := w.blocks[host.Pos{X: 0, Y: 4, Z: 0}]
	w.mu.RUnlock()
	if exists {
		t.Error("restoring the base block should not keep an override")
	}
}

func TestWorldSetBlockRefusals(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})
	tests := []struct {
		name        string
		y, id, meta      int
	}{
		{"below world", -1, 1, 0},
		{"above world", 256, 1, 0},
		{"negative id", 10, -1, 0},
		{"id too large", 10, 4096, 0},
		{"meta too large", 10, 1, 16},
	}
	for _, tt := range tests {
		if w.SetBlock(0, tt.y, 0, tt.id, tt.meta, host.UpdateAll) {
			t.Errorf("%s: SetBlock accepted", tt.name)
		}
	}
}

func TestWorldUpdates(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})
	w.SetBlock(0, 1, 0, blockid.Stone, 0, host.SendToClients)
	w.SetBlock(0, 2, 0, blockid.Stone, 0, host.UpdateAll)
	w.SetBlock(0, 3, 0, blockid.Stone, 0, host.NotifyNeighbors)
	if got := w.Updates(); got != 2 {
		t.Errorf("Updates() = %d, want 2", got)
	}
}

func TestWorldTileEntities(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})

	if te := w.TileEntity(0, 10, 0); te != nil {
		t.Fatalf("TileEntity on air = %v", te)
	}

	tests := []struct {
		id   int
		size int
	}{
		{blockid.Chest, 27},
		{blockid.TrappedChest, 27},
		{blockid.Dispenser, 9},
		{blockid.Dropper, 9},
		{blockid.Furnace, 3},
		{blockid.Hopper, 5},
	}
	for i, tt := range tests {
		w.SetBlock(i, 10, 0, tt.id, 2, host.UpdateAll)
		inv, ok := w.TileEntity(i, 10, 0).(host.Inventory)
		if !ok {
			t.Errorf("block %d has no inventory", tt.id)
			continue
		}
		if inv.SizeInventory() != tt.size {
			t.Errorf("block %d inventory size = %d, want %d", tt.id, inv.SizeInventory(), tt.size)
		}
	}

	w.SetBlock(0, 11, 0, blockid.WallSign, 3, host.UpdateAll)
	if _, ok := w.TileEntity(0, 11, 0).(host.Sign); !ok {
		t.Error("wall sign has no sign tile entity")
	}
	w.SetBlock(0, 12, 0, blockid.Skull, 1, host.UpdateAll)
	if _, ok := w.TileEntity(0, 12, 0).(host.Skull); !ok {
		t.Error("skull has no skull tile entity")
	}
}

func TestWorldTileEntityLifecycle(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})
	w.SetBlock(0, 10, 0, blockid.Chest, 2, host.UpdateAll)
	c := w.TileEntity(0, 10, 0).(*Container)
	c.SetInventorySlot(0, host.ItemStack{ID: blockid.ItemDiamond, Count: 3})

	// Re-orienting the chest keeps its contents.
	w.SetBlock(0, 10, 0, blockid.Chest, 5, host.UpdateAll)
	if got := w.TileEntity(0, 10, 0).(*Container).StackInSlot(0); got.Count != 3 {
		t.Errorf("contents lost on rewrite: %+v", got)
	}

	// Furnace lighting keeps the tile entity too.
	w.SetBlock(1, 10, 0, blockid.Furnace, 2, host.UpdateAll)
	f := w.TileEntity(1, 10, 0)
	w.SetBlock(1, 10, 0, blockid.LitFurnace, 2, host.UpdateAll)
	if w.TileEntity(1, 10, 0) != f {
		t.Error("lighting a furnace replaced its tile entity")
	}

	// Replacing with a plain block drops it.
	w.SetBlock(0, 10, 0, blockid.Stone, 0, host.UpdateAll)
	if te := w.TileEntity(0, 10, 0); te != nil {
		t.Errorf("tile entity survived: %v", te)
	}
}

func TestContainerBounds(t *testing.T) {
	c := NewContainer(blockid.Hopper, 5)
	c.SetInventorySlot(9, host.ItemStack{ID: 1, Count: 1})
	if got := c.StackInSlot(9); !got.Empty() {
		t.Errorf("out of range slot = %+v", got)
	}
	c.SetInventorySlot(1, host.ItemStack{ID: 1, Count: 0})
	if got := c.StackInSlot(1); got != (host.ItemStack{}) {
		t.Errorf("empty stack stored as %+v", got)
	}
}

func TestWorldEntities(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})
	a := w.NewEntity(KindVillager)
	b := w.NewEntity(KindVillager)
	if a.ID == b.ID || a.UUID == b.UUID {
		t.Fatal("entities share an identity")
	}
	if !w.SpawnEntity(b) || !w.SpawnEntity(a) {
		t.Fatal("SpawnEntity refused")
	}
	if w.SpawnEntity(a) {
		t.Error("entity spawned twice")
	}
	got := w.Entities()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Entities() not in creation order")
	}
}

func TestWorldHanging(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})
	e, ok := w.SpawnHanging(host.HangingItemFrame, 2, 10, 3, orient.East)
	if !ok {
		t.Fatal("SpawnHanging refused")
	}
	if _, ok := w.SpawnHanging(host.HangingPainting, 2, 10, 3, orient.East); ok {
		t.Error("two hanging entities facing the same way in one block")
	}
	if _, ok := w.SpawnHanging(host.HangingPainting, 2, 10, 3, orient.West); !ok {
		t.Error("opposite face should be free")
	}

	got, ok := w.HangingAt(2, 10, 3, orient.East)
	if !ok || got != e {
		t.Fatalf("HangingAt = %v, %v", got, ok)
	}
	frame := got.(*Entity)
	if frame.Kind != KindItemFrame || frame.Facing() != orient.East {
		t.Errorf("frame = %s facing %v", frame.Kind, frame.Facing())
	}
	if _, ok := w.HangingAt(2, 10, 3, orient.North); ok {
		t.Error("HangingAt found an entity facing north")
	}
	if len(w.Entities()) != 2 {
		t.Errorf("Entities() = %d, want 2", len(w.Entities()))
	}
}

func TestWorldLoadOverrides(t *testing.T) {
	w := NewWorld(gen.NewFlatGenerator(0))
	w.LoadOverrides(map[host.Pos]uint16{
		{X: 1, Y: 5, Z: 1}: gen.State(blockid.Chest, 3),
		{X: 0, Y: 4, Z: 0}: gen.State(blockid.Air, 0),
	})
	if id, meta := w.Block(1, 5, 1); id != blockid.Chest || meta != 3 {
		t.Errorf("Block(1,5,1) = %d:%d", id, meta)
	}
	if _, ok := w.TileEntity(1, 5, 1).(host.Inventory); !ok {
		t.Error("loaded chest has no inventory")
	}
	if id, _ := w.Block(0, 4, 0); id != blockid.Air {
		t.Errorf("loaded air override ignored: %d", id)
	}

	n := 0
	w.ForEachOverride(func(host.Pos, int, int) { n++ })
	if n != 2 {
		t.Errorf("ForEachOverride visited %d, want 2", n)
	}
}

func TestWorldSurfaceHeight(t *testing.T) {
	if got := NewWorld(gen.NewFlatGenerator(0)).SurfaceHeight(0, 0); got != 5 {
		t.Errorf("flat SurfaceHeight = %d, want 5", got)
	}
	if got := NewWorld(gen.VoidGenerator{}).SurfaceHeight(0, 0); got != 0 {
		t.Errorf("void SurfaceHeight = %d, want 0", got)
	}
}

func TestPreGenerateRadius(t *testing.T) {
	w := NewWorld(gen.NewFlatGenerator(0))
	if n := w.PreGenerateRadius(3, -1, 2); n != 25 {
		t.Errorf("PreGenerateRadius = %d, want 25", n)
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.chunks) != 25 {
		t.Errorf("cached %d chunks, want 25", len(w.chunks))
	}
	if _, ok := w.chunks[gen.ChunkPos{X: 5, Z: 1}]; !ok {
		t.Error("corner chunk missing")
	}
}

func TestWorldChunks(t *testing.T) {
	w := NewWorld(gen.VoidGenerator{})
	w.GetOrGenerateChunk(1, 0)
	w.SetBlock(-1, 64, 17, 1, 0, host.UpdateAll)
	got := w.Chunks()
	want := []gen.ChunkPos{{X: -1, Z: 1}, {X: 1, Z: 0}}
	if len(got) < len(want) {
		t.Fatalf("Chunks() = %v", got)
	}
	has := make(map[gen.ChunkPos]bool)
	for i, c := range got {
		has[c] = true
		if i > 0 && (got[i-1].X > c.X || got[i-1].X == c.X && got[i-1].Z >= c.Z) {
			t.Errorf("Chunks() not sorted: %v", got)
		}
	}
	for _, c := range want {
		if !has[c] {
			t.Errorf("Chunks() = %v, missing %v", got, c)
		}
	}
}
