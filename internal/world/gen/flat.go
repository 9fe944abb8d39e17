package gen

import "github.com/OCharnyshevich/structure-generator/pkg/blockid"

// Layer is one horizontal band of a flat world, from the bottom up.
type Layer struct {
	ID     int
	Height int
}

// ClassicLayers is the classic superflat preset:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4.
var ClassicLayers = []Layer{
	{blockid.Bedrock, 1},
	{blockid.Stone, 2},
	{blockid.Dirt, 1},
	{blockid.Grass, 1},
}

// FlatGenerator generates a world of uniform layers.
type FlatGenerator struct {
	column []uint16
}

// NewFlatGenerator creates a FlatGenerator with the classic layers.
func NewFlatGenerator(_ int64) *FlatGenerator {
	return NewLayeredGenerator(ClassicLayers)
}

// NewLayeredGenerator stacks layers from y=0. Layers above y=255 are cut.
func NewLayeredGenerator(layers []Layer) *FlatGenerator {
	g := &FlatGenerator{}
	for _, l := range layers {
		for i := 0; i < l.Height && len(g.column) < 256; i++ {
			g.column = append(g.column, State(l.ID, 0))
		}
	}
	return g
}

func (g *FlatGenerator) Generate(_, _ int) *ChunkData {
	c := &ChunkData{}

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			for y, s := range g.column {
				c.SetBlock(x, y, z, s)
			}
		}
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	for y := len(g.column) - 1; y >= 0; y-- {
		if g.column[y] != 0 {
			return y
		}
	}
	return -1
}
