package structure

import (
	"fmt"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Template is an immutable block array indexed [y][x][z]. Layers may differ
// in size but each layer is rectangular. Template axes coincide with world
// axes (+x east, +z south) when the template is placed in its own facing.
type Template struct {
	name   string
	layers [][][]Cell

	facing    orient.Facing
	hasFacing bool

	offX, offY, offZ int

	width, depth int
}

// NewTemplate copies layers into a new template. The template takes the
// facing of the structure it is added to unless WithFacing overrides it.
func NewTemplate(name string, layers [][][]Cell) (*Template, error) {
	if len(layers) == 0 {
		return nil, configErr("template %q: no layers", name)
	}
	t := &Template{name: name, layers: make([][][]Cell, len(layers))}
	for y, layer := range layers {
		if len(layer) == 0 {
			t.layers[y] = [][]Cell{}
			continue
		}
		d := len(layer[0])
		rows := make([][]Cell, len(layer))
		for x, row := range layer {
			if len(row) != d {
				return nil, configErr("template %q: layer %d is not rectangular (row %d has %d cells, want %d)", name, y, x, len(row), d)
			}
			for z, c := range row {
				if err := c.validate(); err != nil {
					return nil, fmt.Errorf("template %q at [%d][%d][%d]: %w", name, y, x, z, err)
				}
			}
			rows[x] = append([]Cell(nil), row...)
		}
		t.layers[y] = rows
		t.width = max(t.width, len(layer))
		t.depth = max(t.depth, d)
	}
	return t, nil
}

// NewTemplateFromInts parses the nested integer form used by template
// authors, where every cell is 1 to 4 integers.
func NewTemplateFromInts(name string, raw [][][][]int) (*Template, error) {
	layers := make([][][]Cell, len(raw))
	for y, layer := range raw {
		layers[y] = make([][]Cell, len(layer))
		for x, row := range layer {
			layers[y][x] = make([]Cell, len(row))
			for z, v := range row {
				c, err := ParseCell(v)
				if err != nil {
					return nil, fmt.Errorf("template %q at [%d][%d][%d]: %w", name, y, x, z, err)
				}
				layers[y][x][z] = c
			}
		}
	}
	return NewTemplate(name, layers)
}

// WithFacing returns a copy of t whose front is f regardless of the structure facing.
func (t *Template) WithFacing(f orient.Facing) (*Template, error) {
	if !f.Valid() {
		return nil, configErr("template %q: unknown facing %d", t.name, int(f))
	}
	c := *t
	c.facing, c.hasFacing = f, true
	return &c, nil
}

// WithOffset returns a copy of t shifted by (dx, dy, dz) in its own frame.
func (t *Template) WithOffset(dx, dy, dz int) *Template {
	c := *t
	c.offX, c.offY, c.offZ = dx, dy, dz
	return &c
}

func (t *Template) Name() string { return t.name }

// Height is the number of layers.
func (t *Template) Height() int { return len(t.layers) }

// Width is the largest x extent over all layers.
func (t *Template) Width() int { return t.width }

// Depth is the largest z extent over all layers.
func (t *Template) Depth() int { return t.depth }

// Facing returns the template's own front, if it declares one.
func (t *Template) Facing() (orient.Facing, bool) {
	return t.facing, t.hasFacing
}

// Offset returns the template's shift from the anchor in its own frame.
func (t *Template) Offset() (dx, dy, dz int) {
	return t.offX, t.offY, t.offZ
}

// Cell returns the cell at [y][x][z]. Positions outside a ragged layer are skipped cells.
func (t *Template) Cell(y, x, z int) Cell {
	if y < 0 || y >= len(t.layers) {
		return Skip
	}
	layer := t.layers[y]
	if x < 0 || x >= len(layer) {
		return Skip
	}
	if z < 0 || z >= len(layer[x]) {
		return Skip
	}
	return layer[x][z]
}

// Each calls fn for every cell in [y][x][z] order, including skipped ones.
func (t *Template) Each(fn func(y, x, z int, c Cell)) {
	for y, layer := range t.layers {
		for x, row := range layer {
			for z, c := range row {
				fn(y, x, z, c)
			}
		}
	}
}
