package effects

import (
	"golang.org/x/text/cases"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Arts lists the painting titles of the 1.8 id-space.
var Arts = []string{
	"Kebab", "Aztec", "Alban", "Aztec2", "Bomb", "Plant", "Wasteland",
	"Pool", "Courbet", "Sea", "Sunset", "Creebet",
	"Wanderer", "Graham",
	"Match", "Bust", "Stage", "Void", "SkullAndRoses", "Wither",
	"Fighters",
	"Pointer", "Pigscene", "BurningSkull",
	"Skeleton", "DonkeyKong",
}

// LookupArt returns the canonical title matching name, ignoring case.
func LookupArt(name string) (string, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for _, title := range Arts {
		if fold.String(title) == want {
			return title, true
		}
	}
	return "", false
}

// SetPaintingArt sets the art of the painting at pos facing dir. It
// returns false when name is not a known title or there is no painting.
func SetPaintingArt(w host.World, pos host.Pos, dir orient.Facing, name string) bool {
	title, ok := LookupArt(name)
	if !ok {
		return false
	}
	hw, ok := w.(host.HangingWorld)
	if !ok {
		return false
	}
	e, ok := hw.HangingAt(pos.X, pos.Y, pos.Z, dir)
	if !ok {
		return false
	}
	p, ok := e.(host.Painting)
	if !ok {
		return false
	}
	p.SetArt(title)
	return true
}
