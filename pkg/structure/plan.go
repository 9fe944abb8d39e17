package structure

import (
	"fmt"
	"sort"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Pass is one of the three dependency-ordered placement rounds of a template.
type Pass int

const (
	// PassSupport places blocks that stand on their own.
	PassSupport Pass = iota
	// PassAttached places blocks that need a neighbour.
	PassAttached
	// PassComposite places doors, beds and custom hook cells.
	PassComposite
)

func (p Pass) String() string {
	switch p {
	case PassSupport:
		return "support"
	case PassAttached:
		return "attached"
	case PassComposite:
		return "composite"
	}
	return fmt.Sprintf("pass(%d)", int(p))
}

func (p Pass) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Step is one planned template cell.
type Step struct {
	Cell Cell
	// Y, X, Z index the cell in its template.
	Y, X, Z int

	Pos  host.Pos
	ID   int // id written to the world; the resolved real id for hook cells
	Meta int // metadata after mirroring and rotation
	Kind orient.Kind
	Pass Pass

	// Hook is the sentinel id for custom hook cells, zero otherwise.
	Hook int

	// Partner is the second half of a door or bed, written with the step.
	Partner     *host.Pos
	PartnerMeta int

	// Drop is set when the step can never be placed; DropKind is the
	// diagnostic reported for it.
	Drop     string
	DropKind DiagnosticKind
}

func (s Step) doorUpper() bool {
	return s.Kind.Class == orient.Door && s.Cell.Meta&orient.DoorUpper != 0
}

// TemplatePlan is the ordered placement of one template.
type TemplatePlan struct {
	Name      string
	Facing    orient.Facing
	Transform Transform
	Passes    [3][]Step
}

// Plan is the full placement of a structure, computed without touching a world.
type Plan struct {
	Structure   string
	Facing      orient.Facing
	Mirror      orient.Mirror
	Templates   []TemplatePlan
	Bounds      Box
	Diagnostics []Diagnostic
}

// Len returns the number of planned steps.
func (p *Plan) Len() int {
	n := 0
	for _, tp := range p.Templates {
		for _, steps := range tp.Passes {
			n += len(steps)
		}
	}
	return n
}

func (g *Generator) plan(s *Structure, want orient.Facing, anchor host.Pos) *Plan {
	p := &Plan{
		Structure: s.Name(),
		Facing:    want,
		Mirror:    g.mirror,
		Bounds:    emptyBox(),
	}
	unknown := make(map[int]bool)

	gx, gy, gz := s.Offset()
	if g.offsetSet {
		gx, gy, gz = g.offX, g.offY, g.offZ
	}

	// Templates turning by the same amount share one footprint.
	var fps [4]footprint
	for _, t := range s.templates {
		tx, _, tz := t.Offset()
		fps[orient.StepsBetween(s.templateFacing(t), want)].add(gx+tx, gz+tz, t.Width(), t.Depth())
	}
	var bases [4]Transform
	for steps, fp := range fps {
		if fp.set {
			bases[steps] = NewTransform(fp.maxX-fp.minX+1, fp.maxZ-fp.minZ+1, steps, g.mirror,
				anchor, fp.minX, gy, fp.minZ, g.opts.Anchor)
		}
	}

	for _, t := range s.templates {
		tf := s.templateFacing(t)
		tx, ty, tz := t.Offset()
		steps := orient.StepsBetween(tf, want)
		fp := fps[steps]
		tr := bases[steps].Within(gx+tx-fp.minX, ty, gz+tz-fp.minZ)
		tp := TemplatePlan{Name: t.Name(), Facing: tf, Transform: tr}

		t.Each(func(y, x, z int, c Cell) {
			if c.IsSkip() {
				return
			}
			st := g.planCell(t.Name(), tr, y, x, z, c, unknown, &p.Diagnostics)
			if st.Drop == "" {
				p.Bounds.extend(st.Pos)
				if st.Partner != nil {
					p.Bounds.extend(*st.Partner)
				}
			}
			tp.Passes[st.Pass] = append(tp.Passes[st.Pass], st)
		})

		for i := range tp.Passes {
			steps := tp.Passes[i]
			sort.SliceStable(steps, func(a, b int) bool {
				pa, pb := steps[a].Pos, steps[b].Pos
				if pa.Y != pb.Y {
					return pa.Y < pb.Y
				}
				if pa.X != pb.X {
					return pa.X < pb.X
				}
				return pa.Z < pb.Z
			})
		}
		p.Templates = append(p.Templates, tp)
	}
	return p
}

func (g *Generator) planCell(name string, tr Transform, y, x, z int, c Cell, unknown map[int]bool, diags *[]Diagnostic) Step {
	st := Step{Cell: c, Y: y, X: x, Z: z, Pos: tr.World(y, x, z), ID: c.ID}

	if c.ID >= g.opts.RealIDCeiling {
		st.Hook = c.ID
		st.Pass = PassComposite
		h, ok := g.hooks[c.ID]
		if !ok {
			st.Drop = fmt.Sprintf("unknown sentinel id %d", c.ID)
			return st
		}
		id, err := resolveHook(h.resolve, c.Data1)
		if err != nil {
			st.Drop, st.DropKind = fmt.Sprintf("sentinel %d: %v", c.ID, err), HookFailure
			return st
		}
		st.ID = id
		if st.ID < 0 || st.ID >= g.opts.RealIDCeiling {
			st.Drop = fmt.Sprintf("sentinel %d resolved to id %d outside [0, %d)", c.ID, st.ID, g.opts.RealIDCeiling)
			return st
		}
	}

	kind, ok := g.reg.Lookup(st.ID)
	if !ok {
		kind = orient.Kind{ID: st.ID, Class: orient.Inert}
		if !unknown[st.ID] {
			unknown[st.ID] = true
			*diags = append(*diags, Diagnostic{
				Kind:     UnknownKind,
				Template: name,
				Pos:      st.Pos,
				Cell:     c,
				Reason:   fmt.Sprintf("id %d has no registered kind, placed unrotated", st.ID),
			})
		}
	}
	st.Kind = kind
	st.Meta, _ = g.reg.Transform(st.ID, c.Meta, tr.Steps, tr.Mirror)

	if st.Hook == 0 {
		switch {
		case kind.Composite():
			st.Pass = PassComposite
		case kind.Attached():
			st.Pass = PassAttached
		default:
			st.Pass = PassSupport
		}
	}

	if !g.inWorld(st.Pos) {
		st.Drop = fmt.Sprintf("y=%d outside world height %d..%d", st.Pos.Y, g.opts.MinY, g.opts.MaxY)
		return st
	}

	switch kind.Class {
	case orient.Door:
		if st.doorUpper() {
			return st
		}
		up := st.Pos.Add(0, 1, 0)
		if !g.inWorld(up) {
			st.Drop = fmt.Sprintf("door upper half y=%d outside world height", up.Y)
			return st
		}
		st.Partner, st.PartnerMeta = &up, st.Meta|orient.DoorUpper
	case orient.Bed:
		f, ok := orient.DecodeFacing(orient.Bed, st.Meta)
		if !ok {
			return st
		}
		if st.Meta&orient.BedHead != 0 {
			foot := st.Pos.Step(f.Opposite())
			st.Partner, st.PartnerMeta = &foot, st.Meta&^orient.BedHead
		} else {
			head := st.Pos.Step(f)
			st.Partner, st.PartnerMeta = &head, st.Meta|orient.BedHead
		}
	}
	return st
}

// resolveHook runs a hook resolver, turning a panic into an error.
func resolveHook(resolve Resolver, data1 int) (id int, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("resolver panicked: %v", v)
		}
	}()
	return resolve(data1), nil
}

func (g *Generator) inWorld(p host.Pos) bool {
	return p.Y >= g.opts.MinY && p.Y <= g.opts.MaxY
}
