// Package anvil exports an in-memory world as 1.8 Anvil region files.
package anvil

import (
	"bytes"
	"math"
	"sort"

	"github.com/OCharnyshevich/structure-generator/internal/nbt"
	"github.com/OCharnyshevich/structure-generator/internal/schematic"
	"github.com/OCharnyshevich/structure-generator/internal/world"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

const biomePlains = 1

// EncodeChunkNBT encodes chunk (cx, cz) of w, overrides, tile entities and
// entities included, as MC 1.8 chunk NBT.
func EncodeChunkNBT(w *world.World, cx, cz int) ([]byte, error) {
	var buf bytes.Buffer
	e := nbt.NewWriter(&buf)

	sections := make([]section, 0, 16)
	heightMap := make([]int32, 256)
	for secY := 0; secY < 16; secY++ {
		s := section{y: secY}
		for i := 0; i < 4096; i++ {
			lx, ly, lz := i&0xF, i>>8, (i>>4)&0xF
			y := secY<<4 | ly
			id, meta := w.Block(cx<<4|lx, y, cz<<4|lz)
			if id == 0 {
				continue
			}
			s.set(i, id, meta)
			heightMap[lz*16+lx] = max(heightMap[lz*16+lx], int32(y+1))
		}
		if s.used {
			sections = append(sections, s)
		}
	}

	type tile struct {
		pos host.Pos
		te  host.TileEntity
	}
	var tiles []tile
	w.ForEachTileEntity(func(pos host.Pos, te host.TileEntity) {
		if pos.X>>4 == cx && pos.Z>>4 == cz {
			tiles = append(tiles, tile{pos, te})
		}
	})
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i].pos, tiles[j].pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})

	var ents []*world.Entity
	for _, ent := range w.Entities() {
		v := ent.Position()
		if int(math.Floor(v.X()))>>4 == cx && int(math.Floor(v.Z()))>>4 == cz {
			ents = append(ents, ent)
		}
	}

	biomes := bytes.Repeat([]byte{biomePlains}, 256)

	e.Compound("", func() {
		e.Compound("Level", func() {
			e.Int("xPos", int32(cx))
			e.Int("zPos", int32(cz))
			e.Byte("TerrainPopulated", 1)
			e.Byte("LightPopulated", 1)
			e.Long("LastUpdate", 0)

			e.List("Sections", nbt.TagCompound, len(sections), func(i int) {
				e.Element(func() { sections[i].encode(e) })
			})
			e.ByteArray("Biomes", biomes)
			e.IntArray("HeightMap", heightMap)

			e.List("TileEntities", nbt.TagCompound, len(tiles), func(i int) {
				e.Element(func() { schematic.WriteTileEntity(e, tiles[i].pos, tiles[i].te) })
			})
			e.List("Entities", nbt.TagCompound, len(ents), func(i int) {
				e.Element(func() { schematic.WriteEntity(e, ents[i], host.Pos{}) })
			})
		})
	})

	if err := e.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// section is one 16×16×16 slice. Index = y*256 + z*16 + x.
type section struct {
	y      int
	blocks [4096]byte
	data   [2048]byte
	add    []byte
	used   bool
}

func (s *section) set(i, id, meta int) {
	s.used = true
	s.blocks[i] = byte(id)
	setNibble(s.data[:], i, byte(meta))
	if id > 0xFF {
		if s.add == nil {
			s.add = make([]byte, 2048)
		}
		setNibble(s.add, i, byte(id>>8))
	}
}

func (s *section) encode(e *nbt.Writer) {
	e.Byte("Y", byte(s.y))
	e.ByteArray("Blocks", s.blocks[:])
	if s.add != nil {
		e.ByteArray("Add", s.add)
	}
	e.ByteArray("Data", s.data[:])

	// Full brightness.
	light := bytes.Repeat([]byte{0xFF}, 2048)
	e.ByteArray("BlockLight", light)
	e.ByteArray("SkyLight", light)
}

// setNibble sets a 4-bit value at the given block index in a nibble array.
func setNibble(arr []byte, index int, val byte) {
	byteIdx := index / 2
	if index%2 == 0 {
		arr[byteIdx] = (arr[byteIdx] & 0xF0) | (val & 0x0F)
	} else {
		arr[byteIdx] = (arr[byteIdx] & 0x0F) | ((val & 0x0F) << 4)
	}
}
