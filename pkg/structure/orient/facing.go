package orient

import (
	"fmt"
	"math"
	"strings"
)

// Facing is a horizontal cardinal direction in the host's yaw order.
// Adding one is a clockwise quarter turn seen from above.
type Facing int

const (
	South Facing = iota
	West
	North
	East
)

// Facings lists the four horizontal directions in rotation order.
var Facings = [4]Facing{South, West, North, East}

// Valid reports whether f is one of the four cardinal directions.
func (f Facing) Valid() bool {
	return f >= South && f <= East
}

// Rotate turns f clockwise by steps quarter turns. Negative steps turn counter-clockwise.
func (f Facing) Rotate(steps int) Facing {
	return Facing(mod4(int(f) + steps))
}

// Opposite returns the direction pointing the other way.
func (f Facing) Opposite() Facing {
	return f.Rotate(2)
}

// Mirror reflects f across the given axis. MirrorX swaps east and west,
// MirrorZ swaps north and south.
func (f Facing) Mirror(m Mirror) Facing {
	switch {
	case m == MirrorX && (f == East || f == West):
		return f.Opposite()
	case m == MirrorZ && (f == North || f == South):
		return f.Opposite()
	}
	return f
}

// Offset returns the unit step in world x and z for f.
func (f Facing) Offset() (dx, dz int) {
	switch f {
	case South:
		return 0, 1
	case West:
		return -1, 0
	case North:
		return 0, -1
	case East:
		return 1, 0
	}
	return 0, 0
}

func (f Facing) String() string {
	switch f {
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	}
	return fmt.Sprintf("facing(%d)", int(f))
}

func (f Facing) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Facing) UnmarshalText(b []byte) error {
	v, err := ParseFacing(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFacing accepts a direction name or its first letter, case-insensitive.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	}
	return 0, fmt.Errorf("unknown facing %q", s)
}

// FacingFromYaw partitions a viewer yaw in degrees into a cardinal direction.
// offset shifts the partition boundaries; 45 centres each quarter on its
// direction, which is how the host itself maps player yaw.
func FacingFromYaw(yaw, offset float64) Facing {
	return Facing(mod4(int(math.Floor((yaw + offset) / 90))))
}

// StepsBetween returns the clockwise quarter turns that take from onto to.
func StepsBetween(from, to Facing) int {
	return mod4(int(to) - int(from))
}

// Mirror selects a reflection applied before rotation.
type Mirror int

const (
	MirrorNone Mirror = iota
	MirrorX
	MirrorZ
)

func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorX:
		return "x"
	case MirrorZ:
		return "z"
	}
	return fmt.Sprintf("mirror(%d)", int(m))
}

func (m Mirror) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mirror) UnmarshalText(b []byte) error {
	v, err := ParseMirror(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMirror accepts "none", "x" or "z" (empty means none).
func ParseMirror(s string) (Mirror, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MirrorNone, nil
	case "x":
		return MirrorX, nil
	case "z":
		return MirrorZ, nil
	}
	return 0, fmt.Errorf("unknown mirror axis %q", s)
}

func mod4(v int) int {
	return ((v % 4) + 4) % 4
}
