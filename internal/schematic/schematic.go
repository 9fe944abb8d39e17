// Package schematic exports a region of an in-memory world as a gzipped
// MCEdit .schematic file.
package schematic

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/klauspost/compress/gzip"

	"github.com/OCharnyshevich/structure-generator/internal/nbt"
	"github.com/OCharnyshevich/structure-generator/internal/world"
	"github.com/OCharnyshevich/structure-generator/pkg/blockid"
	"github.com/OCharnyshevich/structure-generator/pkg/structure"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

// Region is a snapshot of a box of blocks with its tile entities and entities.
// Positions inside it are relative to Origin.
type Region struct {
	Origin                host.Pos
	Width, Height, Length int

	// Blocks and Data are indexed (y*Length+z)*Width + x.
	Blocks []int
	Data   []byte

	Tiles    []Tile
	Entities []*world.Entity
}

// Tile is a tile entity at a position relative to the region origin.
type Tile struct {
	Pos    host.Pos
	Entity host.TileEntity
}

func (r *Region) index(x, y, z int) int {
	return (y*r.Length+z)*r.Width + x
}

// Capture copies box out of w. Entities are included when their position
// lies inside the box.
func Capture(w *world.World, box structure.Box) (*Region, error) {
	if box.Empty() {
		return nil, fmt.Errorf("capture: empty region")
	}
	width, height, length := box.Size()
	if width > math.MaxInt16 || height > math.MaxInt16 || length > math.MaxInt16 {
		return nil, fmt.Errorf("capture: region %dx%dx%d too large", width, height, length)
	}
	r := &Region{
		Origin: box.Min,
		Width:  width,
		Height: height,
		Length: length,
		Blocks: make([]int, width*height*length),
		Data:   make([]byte, width*height*length),
	}
	for y := 0; y < height; y++ {
		for z := 0; z < length; z++ {
			for x := 0; x < width; x++ {
				p := box.Min.Add(x, y, z)
				id, meta := w.Block(p.X, p.Y, p.Z)
				i := r.index(x, y, z)
				r.Blocks[i] = id
				r.Data[i] = byte(meta)
			}
		}
	}

	w.ForEachTileEntity(func(pos host.Pos, te host.TileEntity) {
		if box.Contains(pos) {
			r.Tiles = append(r.Tiles, Tile{Pos: pos.Add(-box.Min.X, -box.Min.Y, -box.Min.Z), Entity: te})
		}
	})
	sort.Slice(r.Tiles, func(i, j int) bool {
		a, b := r.Tiles[i].Pos, r.Tiles[j].Pos
		return r.index(a.X, a.Y, a.Z) < r.index(b.X, b.Y, b.Z)
	})

	for _, e := range w.Entities() {
		v := e.Position()
		p := host.Pos{X: int(math.Floor(v.X())), Y: int(math.Floor(v.Y())), Z: int(math.Floor(v.Z()))}
		if box.Contains(p) {
			r.Entities = append(r.Entities, e)
		}
	}
	return r, nil
}

// Write encodes r as a gzipped schematic.
func (r *Region) Write(out io.Writer) error {
	zw := gzip.NewWriter(out)
	e := nbt.NewWriter(zw)
	r.encode(e)
	if err := e.Err(); err != nil {
		zw.Close()
		return fmt.Errorf("encode schematic: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress schematic: %w", err)
	}
	return nil
}

// Export captures box from w and writes it to out.
func Export(w *world.World, box structure.Box, out io.Writer) error {
	r, err := Capture(w, box)
	if err != nil {
		return err
	}
	return r.Write(out)
}

func (r *Region) encode(e *nbt.Writer) {
	blocks := make([]byte, len(r.Blocks))
	var add []byte
	for i, id := range r.Blocks {
		blocks[i] = byte(id)
		if id > 0xFF {
			if add == nil {
				add = make([]byte, (len(r.Blocks)+1)/2)
			}
			hi := byte(id>>8) & 0xF
			if i&1 == 0 {
				add[i>>1] = add[i>>1]&0xF0 | hi
			} else {
				add[i>>1] = add[i>>1]&0x0F | hi<<4
			}
		}
	}

	e.Compound("Schematic", func() {
		e.Short("Width", int16(r.Width))
		e.Short("Height", int16(r.Height))
		e.Short("Length", int16(r.Length))
		e.StringTag("Materials", "Alpha")
		e.ByteArray("Blocks", blocks)
		if add != nil {
			e.ByteArray("AddBlocks", add)
		}
		e.ByteArray("Data", r.Data)
		e.Int("WEOriginX", int32(r.Origin.X))
		e.Int("WEOriginY", int32(r.Origin.Y))
		e.Int("WEOriginZ", int32(r.Origin.Z))

		e.List("TileEntities", nbt.TagCompound, len(r.Tiles), func(i int) {
			e.Element(func() { WriteTileEntity(e, r.Tiles[i].Pos, r.Tiles[i].Entity) })
		})
		e.List("Entities", nbt.TagCompound, len(r.Entities), func(i int) {
			e.Element(func() { WriteEntity(e, r.Entities[i], r.Origin) })
		})
	})
}

// WriteTileEntity writes the fields of te at pos. Tile entities the
// schematic format has no form for get only their position.
func WriteTileEntity(e *nbt.Writer, pos host.Pos, te host.TileEntity) {
	e.Int("x", int32(pos.X))
	e.Int("y", int32(pos.Y))
	e.Int("z", int32(pos.Z))

	switch te := te.(type) {
	case *world.Container:
		e.StringTag("id", containerID(te.BlockID()))
		slots := te.Slots()
		var used []int
		for i, s := range slots {
			if !s.Empty() {
				used = append(used, i)
			}
		}
		e.List("Items", nbt.TagCompound, len(used), func(i int) {
			e.Element(func() {
				e.Byte("Slot", byte(used[i]))
				encodeStack(e, slots[used[i]])
			})
		})
	case *world.Sign:
		e.StringTag("id", "Sign")
		for i, line := range te.Lines() {
			e.StringTag(fmt.Sprintf("Text%d", i+1), line)
		}
	case *world.Skull:
		kind, owner, rot := te.Skull()
		e.StringTag("id", "Skull")
		e.Byte("SkullType", byte(kind))
		e.Byte("Rot", byte(rot))
		if owner != "" {
			e.StringTag("ExtraType", owner)
		}
	}
}

func containerID(block int) string {
	switch block {
	case blockid.Dispenser:
		return "Trap"
	case blockid.Furnace, blockid.LitFurnace:
		return "Furnace"
	case blockid.Hopper:
		return "Hopper"
	case blockid.Dropper:
		return "Dropper"
	}
	return "Chest"
}

func encodeStack(e *nbt.Writer, s host.ItemStack) {
	e.Short("id", int16(s.ID))
	e.Byte("Count", byte(s.Count))
	e.Short("Damage", int16(s.Damage))
}

// WriteEntity writes the fields of ent with its position made relative to
// origin.
func WriteEntity(e *nbt.Writer, ent *world.Entity, o host.Pos) {
	v := ent.Position()
	yaw, pitch := ent.Rotation()

	e.StringTag("id", ent.Kind)
	e.Doubles("Pos", v.X()-float64(o.X), v.Y()-float64(o.Y), v.Z()-float64(o.Z))
	e.Floats("Rotation", yaw, pitch)
	e.Long("UUIDMost", int64(binary.BigEndian.Uint64(ent.UUID[:8])))
	e.Long("UUIDLeast", int64(binary.BigEndian.Uint64(ent.UUID[8:])))

	switch ent.Kind {
	case world.KindPainting, world.KindItemFrame:
		e.Byte("Facing", byte(ent.Facing()))
		e.Int("TileX", int32(math.Floor(v.X()))-int32(o.X))
		e.Int("TileY", int32(math.Floor(v.Y()))-int32(o.Y))
		e.Int("TileZ", int32(math.Floor(v.Z()))-int32(o.Z))
		if ent.Kind == world.KindPainting {
			e.StringTag("Motive", ent.Art())
			return
		}
		item, rot := ent.DisplayedItem()
		if !item.Empty() {
			e.Compound("Item", func() { encodeStack(e, item) })
		}
		e.Byte("ItemRotation", byte(rot))
	case world.KindVillager:
		e.Int("Profession", int32(ent.Profession()))
	}
}
