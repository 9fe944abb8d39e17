package orient

import "fmt"

// Class groups block kinds that encode orientation in their metadata the same way.
type Class int

const (
	Inert Class = iota
	Axis
	Stairs
	Door
	Bed
	WallMount
	Facing4
	Facing6
	Horizontal
	Directional
	VineMask
	Trapdoor
	Rail
	PoweredRail
	Rotation16
)

var classNames = map[Class]string{
	Inert:       "inert",
	Axis:        "axis",
	Stairs:      "stairs",
	Door:        "door",
	Bed:         "bed",
	WallMount:   "wall-mount",
	Facing4:     "facing4",
	Facing6:     "facing6",
	Horizontal:  "horizontal",
	Directional: "directional",
	VineMask:    "vine",
	Trapdoor:    "trapdoor",
	Rail:        "rail",
	PoweredRail: "powered-rail",
	Rotation16:  "rotation16",
}

func (c Class) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// TransformFunc rewrites a metadata value for a mirror followed by a
// clockwise rotation of steps quarter turns (steps is already in 0..3).
type TransformFunc func(meta, steps int, m Mirror) int

// Metadata bits with a fixed meaning across several classes.
const (
	DoorHinge = 4
	DoorUpper = 8
	BedHead   = 8
)

// facingCodec stores a horizontal facing in the bits selected by mask.
// values holds the encoded value for South, West, North and East.
type facingCodec struct {
	mask   int
	values [4]int
}

func (c facingCodec) decode(meta int) (Facing, bool) {
	v := meta & c.mask
	for i, enc := range c.values {
		if enc == v {
			return Facing(i), true
		}
	}
	return 0, false
}

func (c facingCodec) encode(meta int, f Facing) int {
	return meta&^c.mask | c.values[f]
}

func (c facingCodec) transform(meta, steps int, m Mirror) int {
	f, ok := c.decode(meta)
	if !ok {
		return meta
	}
	return c.encode(meta, f.Mirror(m).Rotate(steps))
}

var (
	stairsCodec      = facingCodec{mask: 3, values: [4]int{2, 1, 3, 0}}
	doorCodec        = facingCodec{mask: 3, values: [4]int{3, 0, 1, 2}}
	bedCodec         = facingCodec{mask: 3, values: [4]int{0, 1, 2, 3}}
	wallMountCodec   = facingCodec{mask: 7, values: [4]int{3, 2, 4, 1}}
	facing4Codec     = facingCodec{mask: 7, values: [4]int{3, 4, 2, 5}}
	horizontalCodec  = facingCodec{mask: 3, values: [4]int{2, 3, 0, 1}}
	directionalCodec = facingCodec{mask: 3, values: [4]int{0, 1, 2, 3}}
	trapdoorCodec    = facingCodec{mask: 3, values: [4]int{1, 2, 0, 3}}
)

// codecs maps the classes whose facing can be decoded from metadata.
var codecs = map[Class]facingCodec{
	Stairs:      stairsCodec,
	Door:        doorCodec,
	Bed:         bedCodec,
	WallMount:   wallMountCodec,
	Facing4:     facing4Codec,
	Facing6:     facing4Codec,
	Horizontal:  horizontalCodec,
	Directional: directionalCodec,
	Trapdoor:    trapdoorCodec,
}

// DecodeFacing extracts the horizontal facing encoded in meta for class c.
func DecodeFacing(c Class, meta int) (Facing, bool) {
	codec, ok := codecs[c]
	if !ok {
		return 0, false
	}
	return codec.decode(meta)
}

// EncodeFacing replaces the facing bits of meta for class c.
func EncodeFacing(c Class, meta int, f Facing) (int, bool) {
	codec, ok := codecs[c]
	if !ok {
		return meta, false
	}
	return codec.encode(meta, f), true
}

func identity(meta, _ int, _ Mirror) int { return meta }

func transformCodec(c facingCodec) TransformFunc {
	return c.transform
}

func transformDoor(meta, steps int, m Mirror) int {
	if m != MirrorNone {
		meta ^= DoorHinge
	}
	return doorCodec.transform(meta, steps, m)
}

func transformAxis(meta, steps int, _ Mirror) int {
	if steps%2 == 0 {
		return meta
	}
	switch meta & 12 {
	case 4:
		return meta&^12 | 8
	case 8:
		return meta&^12 | 4
	}
	return meta
}

func transformVine(meta, steps int, m Mirror) int {
	out := meta &^ 15
	for _, f := range Facings {
		if meta&(1<<uint(f)) != 0 {
			out |= 1 << uint(f.Mirror(m).Rotate(steps))
		}
	}
	return out
}

func transformRotation16(meta, steps int, m Mirror) int {
	r := meta & 15
	switch m {
	case MirrorX:
		r = (16 - r) & 15
	case MirrorZ:
		r = (8 - r) & 15
	}
	return meta&^15 | (r+4*steps)&15
}

// railShape describes a rail by the two sides it connects. For sloped
// shapes, raised is the side that goes up.
type railShape struct {
	a, b   Facing
	sloped bool
}

var railShapes = [10]railShape{
	{North, South, false},
	{East, West, false},
	{East, West, true},
	{West, East, true},
	{North, South, true},
	{South, North, true},
	{South, East, false},
	{South, West, false},
	{North, West, false},
	{North, East, false},
}

func (s railShape) matches(o railShape) bool {
	if s.sloped != o.sloped {
		return false
	}
	if s.sloped {
		return s.a == o.a
	}
	return (s.a == o.a && s.b == o.b) || (s.a == o.b && s.b == o.a)
}

func transformRailShape(shape, steps int, m Mirror, limit int) int {
	if shape < 0 || shape >= limit {
		return shape
	}
	src := railShapes[shape]
	want := railShape{
		a:      src.a.Mirror(m).Rotate(steps),
		b:      src.b.Mirror(m).Rotate(steps),
		sloped: src.sloped,
	}
	for i := 0; i < limit; i++ {
		if railShapes[i].matches(want) {
			return i
		}
	}
	return shape
}

func transformRail(meta, steps int, m Mirror) int {
	return transformRailShape(meta, steps, m, len(railShapes))
}

func transformPoweredRail(meta, steps int, m Mirror) int {
	return meta&8 | transformRailShape(meta&7, steps, m, 6)
}

// TransformLever handles the floor and ceiling variants of a lever, whose
// low bits record the axis the handle lies along.
func TransformLever(meta, steps int, m Mirror) int {
	low := meta & 7
	if low >= 1 && low <= 4 {
		return wallMountCodec.transform(meta, steps, m)
	}
	if steps%2 == 0 {
		return meta
	}
	switch low {
	case 5:
		low = 6
	case 6:
		low = 5
	case 7:
		low = 0
	case 0:
		low = 7
	}
	return meta&^7 | low
}

// TransformPillar handles quartz pillars: 2 vertical, 3 north-south, 4 east-west.
func TransformPillar(meta, steps int, _ Mirror) int {
	if steps%2 == 0 {
		return meta
	}
	switch meta {
	case 3:
		return 4
	case 4:
		return 3
	}
	return meta
}

// TransformAnvil flips the anvil axis on odd turns and keeps the damage bits.
func TransformAnvil(meta, steps int, _ Mirror) int {
	if steps%2 == 0 {
		return meta
	}
	return meta ^ 1
}

var classTransforms = map[Class]TransformFunc{
	Inert:       identity,
	Axis:        transformAxis,
	Stairs:      transformCodec(stairsCodec),
	Door:        transformDoor,
	Bed:         transformCodec(bedCodec),
	WallMount:   transformCodec(wallMountCodec),
	Facing4:     transformCodec(facing4Codec),
	Facing6:     transformCodec(facing4Codec),
	Horizontal:  transformCodec(horizontalCodec),
	Directional: transformCodec(directionalCodec),
	VineMask:    transformVine,
	Trapdoor:    transformCodec(trapdoorCodec),
	Rail:        transformRail,
	PoweredRail: transformPoweredRail,
	Rotation16:  transformRotation16,
}
