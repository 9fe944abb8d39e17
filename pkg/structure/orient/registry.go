package orient

import (
	"errors"
	"fmt"
)

// Mount says what a kind needs next to it to stay in place.
type Mount int

const (
	// MountNone kinds stand on their own.
	MountNone Mount = iota
	// MountFloor kinds need the block below.
	MountFloor
	// MountBehind kinds hang on the block opposite their facing.
	MountBehind
	// MountPointing kinds (torches, buttons, levers) point away from the block
	// they sit on; the floor and ceiling variants rest on the block below or above.
	MountPointing
	// MountVine kinds need any one of the faces recorded in their bitmask.
	MountVine
)

// Offset is a relative block position.
type Offset struct {
	DX, DY, DZ int
}

var (
	below = Offset{0, -1, 0}
	above = Offset{0, 1, 0}
)

func horizontal(f Facing) Offset {
	dx, dz := f.Offset()
	return Offset{DX: dx, DZ: dz}
}

// Kind describes how one block id behaves under rotation and placement.
type Kind struct {
	ID    int
	Name  string
	Class Class
	Mount Mount

	// Transform, when set, takes precedence over the class transform.
	Transform TransformFunc
}

// Attached reports whether the kind needs a neighbouring block to exist first.
func (k Kind) Attached() bool {
	return k.Mount != MountNone
}

// Composite reports whether the kind spans two cells placed as a unit.
func (k Kind) Composite() bool {
	return k.Class == Door || k.Class == Bed
}

// ErrDuplicateKind is returned when an id is registered twice.
var ErrDuplicateKind = errors.New("kind already registered")

// Registry maps block ids to their orientation behaviour. It is populated once
// during configuration and only read afterwards, so concurrent readers need no locking.
type Registry struct {
	kinds map[int]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[int]Kind)}
}

// Register adds k. Registering the same id twice is an error.
func (r *Registry) Register(k Kind) error {
	if k.ID < 0 {
		return fmt.Errorf("register kind %d: negative id", k.ID)
	}
	if _, ok := r.kinds[k.ID]; ok {
		return fmt.Errorf("register kind %d (%s): %w", k.ID, k.Name, ErrDuplicateKind)
	}
	if _, ok := classTransforms[k.Class]; !ok {
		return fmt.Errorf("register kind %d (%s): unknown class %v", k.ID, k.Name, k.Class)
	}
	r.kinds[k.ID] = k
	return nil
}

// Replace registers k, overwriting any earlier registration for the same id.
func (r *Registry) Replace(k Kind) {
	r.kinds[k.ID] = k
}

// Lookup returns the kind registered for id.
func (r *Registry) Lookup(id int) (Kind, bool) {
	k, ok := r.kinds[id]
	return k, ok
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.kinds)
}

// IDs returns every registered id in no particular order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.kinds))
	for id := range r.kinds {
		ids = append(ids, id)
	}
	return ids
}

// Transform rewrites meta for a mirror followed by a rotation of steps
// clockwise quarter turns. Unknown ids keep their metadata and report false.
func (r *Registry) Transform(id, meta, steps int, m Mirror) (int, bool) {
	k, ok := r.kinds[id]
	if !ok {
		return meta, false
	}
	return k.transform(meta&15, mod4(steps), m), true
}

func (k Kind) transform(meta, steps int, m Mirror) int {
	if k.Transform != nil {
		return k.Transform(meta, steps, m) & 15
	}
	return classTransforms[k.Class](meta, steps, m) & 15
}

// Supports lists the neighbours that can hold a block of kind id with the
// given (already transformed) metadata. Any one of them is enough.
// It returns nil for kinds that stand on their own.
func (r *Registry) Supports(id, meta int) []Offset {
	k, ok := r.kinds[id]
	if !ok {
		return nil
	}
	switch k.Mount {
	case MountFloor:
		return []Offset{below}
	case MountBehind:
		f, ok := DecodeFacing(k.Class, meta)
		if !ok {
			return []Offset{below}
		}
		return []Offset{horizontal(f.Opposite())}
	case MountPointing:
		if f, ok := wallMountCodec.decode(meta); ok {
			return []Offset{horizontal(f.Opposite())}
		}
		switch meta & 7 {
		case 0, 7:
			return []Offset{above}
		}
		return []Offset{below}
	case MountVine:
		var out []Offset
		for _, f := range Facings {
			if meta&(1<<uint(f)) != 0 {
				out = append(out, horizontal(f))
			}
		}
		if len(out) == 0 {
			out = append(out, above)
		}
		return out
	}
	return nil
}
