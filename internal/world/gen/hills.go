package gen

import "github.com/OCharnyshevich/structure-generator/pkg/blockid"

// SeaLevel is the water surface of hill worlds.
const SeaLevel = 62

// HillsGenerator produces rolling noise terrain: bedrock, stone, three
// blocks of dirt under grass, sand at the shore and water up to SeaLevel.
type HillsGenerator struct {
	terrain *simplex
	detail  *simplex
}

// NewHillsGenerator creates a HillsGenerator from a seed.
func NewHillsGenerator(seed int64) *HillsGenerator {
	return &HillsGenerator{
		terrain: newSimplex(seed),
		detail:  newSimplex(seed + 1),
	}
}

// groundAt is the y of the top terrain block, water excluded.
func (g *HillsGenerator) groundAt(bx, bz int) int {
	base := g.terrain.octaves(float64(bx)/128, float64(bz)/128, 6, 0.5)
	detail := g.detail.octaves(float64(bx)/32, float64(bz)/32, 3, 0.5)
	return min(max(int(SeaLevel+2+base*14+detail*4), 1), 250)
}

func (g *HillsGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := &ChunkData{}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			h := g.groundAt(chunkX*16+x, chunkZ*16+z)
			top := blockid.Grass
			if h <= SeaLevel+1 {
				top = blockid.Sand
			}
			c.SetBlock(x, 0, z, State(blockid.Bedrock, 0))
			for y := 1; y <= h; y++ {
				id := blockid.Stone
				switch {
				case y == h:
					id = top
				case y >= h-3:
					id = blockid.Dirt
					if top == blockid.Sand {
						id = blockid.Sand
					}
				}
				c.SetBlock(x, y, z, State(id, 0))
			}
			for y := h + 1; y <= SeaLevel; y++ {
				c.SetBlock(x, y, z, State(blockid.Water, 0))
			}
		}
	}
	return c
}

// HeightAt returns the top non-air block, which is the water surface over
// sunken ground.
func (g *HillsGenerator) HeightAt(blockX, blockZ int) int {
	return max(g.groundAt(blockX, blockZ), SeaLevel)
}
