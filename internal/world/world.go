// Package world is an in-memory host world: generated base terrain, block
// overrides, tile entities and entities. It implements host.World and
// host.HangingWorld.
package world

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/OCharnyshevich/structure-generator/internal/world/gen"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

const (
	minY    = 0
	maxY    = 255
	maxID   = 4095
	maxMeta = 15
)

type hangKey struct {
	pos host.Pos
	dir orient.Facing
}

// World tracks block state with a generator for base terrain and overrides
// for placed blocks.
type World struct {
	mu        sync.RWMutex
	blocks    map[host.Pos]uint16
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ChunkData

	tiles    map[host.Pos]host.TileEntity
	entities map[int64]*Entity
	hanging  map[hangKey]*Entity

	nextID  *atomic.Int64
	updates *atomic.Int64
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator) *World {
	return &World{
		blocks:    make(map[host.Pos]uint16),
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
		tiles:     make(map[host.Pos]host.TileEntity),
		entities:  make(map[int64]*Entity),
		hanging:   make(map[hangKey]*Entity),
		nextID:    atomic.NewInt64(0),
		updates:   atomic.NewInt64(0),
	}
}

// GetOrGenerateChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *gen.ChunkData {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generator.Generate(cx, cz)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	w.chunks[pos] = c
	w.mu.Unlock()
	return c
}

// Chunks returns the positions of generated chunks and of chunks holding
// overrides, sorted by x then z.
func (w *World) Chunks() []gen.ChunkPos {
	w.mu.RLock()
	seen := make(map[gen.ChunkPos]bool, len(w.chunks))
	for pos := range w.chunks {
		seen[pos] = true
	}
	for pos := range w.blocks {
		seen[gen.ChunkPos{X: pos.X >> 4, Z: pos.Z >> 4}] = true
	}
	w.mu.RUnlock()

	out := make([]gen.ChunkPos, 0, len(seen))
	for pos := range seen {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Z < out[j].Z
	})
	return out
}

// PreGenerateRadius generates every chunk within r chunks of (cx, cz) and
// returns how many chunks that covers.
func (w *World) PreGenerateRadius(cx, cz, r int) int {
	n := 0
	for x := cx - r; x <= cx+r; x++ {
		for z := cz - r; z <= cz+r; z++ {
			w.GetOrGenerateChunk(x, z)
			n++
		}
	}
	return n
}

func baseState(c *gen.ChunkData, x, y, z int) uint16 {
	if y < minY || y > maxY {
		return 0
	}
	return c.GetBlock(x&0xF, y, z&0xF)
}

// Block returns the id and metadata at the given position. Overrides win
// over the generated chunk.
func (w *World) Block(x, y, z int) (id, meta int) {
	if y < minY || y > maxY {
		return 0, 0
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)

	w.mu.RLock()
	defer w.mu.RUnlock()
	if s, ok := w.blocks[host.Pos{X: x, Y: y, Z: z}]; ok {
		return gen.Unpack(s)
	}
	return gen.Unpack(baseState(c, x, y, z))
}

// SetBlock stores a block override. It refuses positions outside the world
// height and ids or metadata outside the 1.8 range. Tile entities follow
// the block: a new tile block gets a fresh tile entity, any other block
// drops the old one.
func (w *World) SetBlock(x, y, z, id, meta int, flags host.UpdateFlag) bool {
	if y < minY || y > maxY || id < 0 || id > maxID || meta < 0 || meta > maxMeta {
		return false
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	state := gen.State(id, meta)
	pos := host.Pos{X: x, Y: y, Z: z}

	w.mu.Lock()
	defer w.mu.Unlock()

	prev := baseState(c, x, y, z)
	if s, ok := w.blocks[pos]; ok {
		prev = s
	}
	if state == baseState(c, x, y, z) {
		delete(w.blocks, pos)
	} else {
		w.blocks[pos] = state
	}

	prevID, _ := gen.Unpack(prev)
	if _, ok := w.tiles[pos]; !ok || !sameTileKind(prevID, id) {
		delete(w.tiles, pos)
		if te := newTileEntity(id); te != nil {
			w.tiles[pos] = te
		}
	}
	if flags&host.NotifyNeighbors != 0 {
		w.updates.Inc()
	}
	return true
}

// TileEntity returns the tile entity at a position, or nil.
func (w *World) TileEntity(x, y, z int) host.TileEntity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if te, ok := w.tiles[host.Pos{X: x, Y: y, Z: z}]; ok {
		return te
	}
	return nil
}

// NewEntity creates an entity of kind that is not yet in the world.
func (w *World) NewEntity(kind string) *Entity {
	return &Entity{
		ID:   w.nextID.Inc(),
		UUID: uuid.New(),
		Kind: kind,
	}
}

// SpawnEntity adds an entity created by NewEntity to the world. It refuses
// foreign entities and entities already spawned.
func (w *World) SpawnEntity(e host.Entity) bool {
	ent, ok := e.(*Entity)
	if !ok || ent == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, dup := w.entities[ent.ID]; dup {
		return false
	}
	w.entities[ent.ID] = ent
	return true
}

// SpawnHanging creates and spawns a painting or item frame in the block at
// (x, y, z). Only one hanging entity may face each direction per block.
func (w *World) SpawnHanging(kind host.HangingKind, x, y, z int, dir orient.Facing) (host.Entity, bool) {
	if !dir.Valid() || y < minY || y > maxY {
		return nil, false
	}
	name := KindPainting
	if kind == host.HangingItemFrame {
		name = KindItemFrame
	}
	pos := host.Pos{X: x, Y: y, Z: z}
	e := w.NewEntity(name)
	e.facing = dir
	e.SetPosition(pos.Vec(), float32(int(dir)*90), 0)

	w.mu.Lock()
	defer w.mu.Unlock()
	key := hangKey{pos, dir}
	if _, taken := w.hanging[key]; taken {
		return nil, false
	}
	w.hanging[key] = e
	w.entities[e.ID] = e
	return e, true
}

// HangingAt returns the hanging entity in the block at (x, y, z) facing dir.
func (w *World) HangingAt(x, y, z int, dir orient.Facing) (host.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.hanging[hangKey{host.Pos{X: x, Y: y, Z: z}, dir}]
	if !ok {
		return nil, false
	}
	return e, true
}

// Entities returns the spawned entities in spawn order.
func (w *World) Entities() []*Entity {
	w.mu.RLock()
	out := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	w.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ForEachOverride calls fn for every block override under a read lock.
func (w *World) ForEachOverride(fn func(pos host.Pos, id, meta int)) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for pos, state := range w.blocks {
		id, meta := gen.Unpack(state)
		fn(pos, id, meta)
	}
}

// ForEachTileEntity calls fn for every tile entity under a read lock.
func (w *World) ForEachTileEntity(fn func(pos host.Pos, te host.TileEntity)) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for pos, te := range w.tiles {
		fn(pos, te)
	}
}

// LoadOverrides bulk-loads block overrides, replacing matching positions.
// Tile entities are created for tile blocks.
func (w *World) LoadOverrides(overrides map[host.Pos]uint16) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for pos, state := range overrides {
		w.blocks[pos] = state
		id, _ := gen.Unpack(state)
		if te := newTileEntity(id); te != nil {
			w.tiles[pos] = te
		} else {
			delete(w.tiles, pos)
		}
	}
}

// Updates returns how many writes asked for neighbour notifications.
func (w *World) Updates() int64 { return w.updates.Load() }

// SurfaceHeight returns the y just above the generated terrain at (x, z).
func (w *World) SurfaceHeight(x, z int) int {
	return w.generator.HeightAt(x, z) + 1
}
