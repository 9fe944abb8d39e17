package gen

import "fmt"

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x, value = blockID<<4 | metadata.
type Section struct {
	Blocks [4096]uint16
}

// ChunkData holds the generated terrain for one chunk column.
type ChunkData struct {
	Sections [16]*Section // nil = all-air
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	// HeightAt returns the y of the top solid block, or -1 for none.
	HeightAt(blockX, blockZ int) int
}

// State packs a block id and metadata into a section value.
func State(id, meta int) uint16 {
	return uint16(id<<4 | meta&0xF)
}

// Unpack splits a section value into id and metadata.
func Unpack(state uint16) (id, meta int) {
	return int(state >> 4), int(state & 0xF)
}

// SetBlock sets a block state at the given local coordinates within the chunk.
// x, z must be in [0,16), y must be in [0,256).
func (c *ChunkData) SetBlock(x, y, z int, state uint16) {
	sec := y >> 4
	if c.Sections[sec] == nil {
		if state == 0 {
			return
		}
		c.Sections[sec] = &Section{}
	}
	c.Sections[sec].Blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (c *ChunkData) GetBlock(x, y, z int) uint16 {
	sec := y >> 4
	if c.Sections[sec] == nil {
		return 0
	}
	return c.Sections[sec].Blocks[(y&0xF)*256+z*16+x]
}

// New returns the generator called kind: "flat", "void" or "hills".
func New(kind string, seed int64) (Generator, error) {
	switch kind {
	case "", "flat":
		return NewFlatGenerator(seed), nil
	case "void":
		return VoidGenerator{}, nil
	case "hills":
		return NewHillsGenerator(seed), nil
	}
	return nil, fmt.Errorf("unknown generator type %q", kind)
}
