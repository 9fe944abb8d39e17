// Package structure places authored block templates into a host world,
// rotated and mirrored to a requested facing, with block metadata rewritten
// to match and custom hooks run on sentinel cells.
package structure

import (
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Structure is a named stack of templates placed bottom-up. Later templates
// overlay earlier ones; skipped cells in an overlay keep what is below.
type Structure struct {
	name      string
	templates []*Template
	facing    orient.Facing

	offX, offY, offZ int
}

// NewStructure returns an empty structure whose front faces south.
func NewStructure(name string) *Structure {
	return &Structure{name: name, facing: orient.South}
}

func (s *Structure) Name() string { return s.name }

// AddTemplate appends t on top of the existing templates.
func (s *Structure) AddTemplate(t *Template) error {
	if t == nil {
		return configErr("structure %q: nil template", s.name)
	}
	s.templates = append(s.templates, t)
	return nil
}

// SetFacing declares the direction the author considered the front.
func (s *Structure) SetFacing(f orient.Facing) error {
	if !f.Valid() {
		return configErr("structure %q: unknown facing %d", s.name, int(f))
	}
	s.facing = f
	return nil
}

func (s *Structure) Facing() orient.Facing { return s.facing }

// SetOffset shifts every template from the anchor, in the template frame.
func (s *Structure) SetOffset(dx, dy, dz int) {
	s.offX, s.offY, s.offZ = dx, dy, dz
}

func (s *Structure) Offset() (dx, dy, dz int) {
	return s.offX, s.offY, s.offZ
}

// Templates returns the templates in placement order.
func (s *Structure) Templates() []*Template {
	return append([]*Template(nil), s.templates...)
}

func (s *Structure) templateFacing(t *Template) orient.Facing {
	if f, ok := t.Facing(); ok {
		return f
	}
	return s.facing
}
