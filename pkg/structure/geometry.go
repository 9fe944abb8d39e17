package structure

import (
	"strings"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Anchor selects which point of the rotated footprint sits at the anchor.
type Anchor int

const (
	// AnchorCorner pins the footprint's minimum corner on the bottom layer.
	AnchorCorner Anchor = iota
	// AnchorCenter pins the footprint's horizontal centre on the bottom layer.
	AnchorCenter
)

func (a Anchor) String() string {
	if a == AnchorCenter {
		return "center"
	}
	return "corner"
}

// ParseAnchor accepts "corner" or "center" (empty means corner).
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "corner":
		return AnchorCorner, nil
	case "center", "centre":
		return AnchorCenter, nil
	}
	return 0, configErr("unknown anchor %q", s)
}

// rotations holds the integer matrices {a, b, c, d} mapping a template
// vector (x, z) to (a*x + b*z, c*x + d*z) for 0..3 clockwise quarter turns.
var rotations = [4][4]int{
	{1, 0, 0, 1},
	{0, -1, 1, 0},
	{-1, 0, 0, -1},
	{0, 1, -1, 0},
}

// Transform maps template cell indices to world positions. Templates of one
// structure that turn by the same amount share a footprint, so they rotate
// and mirror as one body.
type Transform struct {
	Steps  int
	Mirror orient.Mirror

	width, depth int
	origin       host.Pos
	// cell offset of the template inside the shared footprint
	dx, dy, dz int
}

// NewTransform builds the transform for a width × depth footprint turned by
// steps quarter turns and mirrored by m. The effective offset (ox, oy, oz)
// is expressed in the template frame and is rotated along with the cells.
func NewTransform(width, depth, steps int, m orient.Mirror, anchor host.Pos, ox, oy, oz int, mode Anchor) Transform {
	t := Transform{Steps: ((steps % 4) + 4) % 4, Mirror: m, width: width, depth: depth}
	dx, dz := t.rotateVec(t.mirrorVec(ox, oz))
	t.origin = anchor.Add(dx, oy, dz)
	if mode == AnchorCenter {
		w, d := t.Footprint()
		t.origin = t.origin.Add(-w/2, 0, -d/2)
	}
	return t
}

// Within returns the transform for a template whose cell (0, 0, 0) lies at
// (dx, dy, dz) inside the footprint t was built for.
func (t Transform) Within(dx, dy, dz int) Transform {
	t.dx, t.dy, t.dz = t.dx+dx, t.dy+dy, t.dz+dz
	return t
}

// Footprint returns the rotated world extent in x and z.
func (t Transform) Footprint() (w, d int) {
	if t.Steps%2 == 1 {
		return t.depth, t.width
	}
	return t.width, t.depth
}

// Origin is the world position of the footprint's minimum corner at the
// template's bottom layer.
func (t Transform) Origin() host.Pos { return t.origin.Add(0, t.dy, 0) }

func (t Transform) mirrorVec(x, z int) (int, int) {
	switch t.Mirror {
	case orient.MirrorX:
		return -x, z
	case orient.MirrorZ:
		return x, -z
	}
	return x, z
}

func (t Transform) rotateVec(x, z int) (int, int) {
	r := rotations[t.Steps]
	return r[0]*x + r[1]*z, r[2]*x + r[3]*z
}

// Local returns the rotated and mirrored index of template cell (x, z)
// within the footprint, so that the footprint starts at (0, 0).
func (t Transform) Local(x, z int) (int, int) {
	x, z = x+t.dx, z+t.dz
	switch t.Mirror {
	case orient.MirrorX:
		x = t.width - 1 - x
	case orient.MirrorZ:
		z = t.depth - 1 - z
	}
	rx, rz := t.rotateVec(x, z)
	switch t.Steps {
	case 1:
		rx += t.depth - 1
	case 2:
		rx += t.width - 1
		rz += t.depth - 1
	case 3:
		rz += t.width - 1
	}
	return rx, rz
}

// World returns the world position of template cell [y][x][z].
func (t Transform) World(y, x, z int) host.Pos {
	lx, lz := t.Local(x, z)
	return t.origin.Add(lx, y+t.dy, lz)
}

// footprint is the union of template extents in the structure frame.
type footprint struct {
	minX, minZ, maxX, maxZ int
	set                    bool
}

func (f *footprint) add(ox, oz, width, depth int) {
	if !f.set {
		*f = footprint{minX: ox, minZ: oz, maxX: ox + width - 1, maxZ: oz + depth - 1, set: true}
		return
	}
	f.minX, f.minZ = min(f.minX, ox), min(f.minZ, oz)
	f.maxX, f.maxZ = max(f.maxX, ox+width-1), max(f.maxZ, oz+depth-1)
}

// Box is an inclusive axis-aligned block region.
type Box struct {
	Min host.Pos `json:"min"`
	Max host.Pos `json:"max"`
}

// Empty reports whether the box has never been extended.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X
}

func emptyBox() Box {
	const big = int(^uint(0) >> 1)
	return Box{Min: host.Pos{X: big, Y: big, Z: big}, Max: host.Pos{X: -big, Y: -big, Z: -big}}
}

func (b *Box) extend(p host.Pos) {
	b.Min = host.Pos{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
	b.Max = host.Pos{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
}

// Size returns the box extent along each axis.
func (b Box) Size() (w, h, d int) {
	if b.Empty() {
		return 0, 0, 0
	}
	return b.Max.X - b.Min.X + 1, b.Max.Y - b.Min.Y + 1, b.Max.Z - b.Min.Z + 1
}

// Contains reports whether p lies inside b.
func (b Box) Contains(p host.Pos) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
