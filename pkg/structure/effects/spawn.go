package effects

import (
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

// DefaultCavityRadius bounds the search for room to stand an entity in.
const DefaultCavityRadius = 4

// SetEntityInStructure looks for a free 1×2×1 column near pos, searching
// square rings of growing radius on the placeholder's layer. The placeholder
// block at pos counts as free. When a column is found the placeholder is
// cleared and e is moved there; otherwise nothing changes and it returns false.
// The entity is not spawned.
func SetEntityInStructure(w host.World, e host.Entity, pos host.Pos, radius int) bool {
	spot, ok := findCavity(w, pos, radius)
	if !ok {
		return false
	}
	w.SetBlock(pos.X, pos.Y, pos.Z, 0, 0, host.UpdateAll)
	e.SetPosition(spot.Vec(), 0, 0)
	return true
}

// SpawnEntityInStructure is SetEntityInStructure followed by a spawn. When
// no free column is found the entity spawns at pos and it returns false.
func SpawnEntityInStructure(w host.World, e host.Entity, pos host.Pos, radius int) bool {
	found := SetEntityInStructure(w, e, pos, radius)
	if !found {
		e.SetPosition(pos.Vec(), 0, 0)
	}
	return w.SpawnEntity(e) && found
}

func findCavity(w host.World, pos host.Pos, radius int) (host.Pos, bool) {
	free := func(p host.Pos) bool {
		if p == pos {
			return true
		}
		id, _ := w.Block(p.X, p.Y, p.Z)
		return id == 0
	}
	for r := 0; r <= radius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if max(abs(dx), abs(dz)) != r {
					continue
				}
				p := pos.Add(dx, 0, dz)
				if free(p) && free(p.Add(0, 1, 0)) {
					return p, true
				}
			}
		}
	}
	return host.Pos{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
