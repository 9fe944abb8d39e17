package structure

import (
	"errors"
	"fmt"
)

// ErrConfig wraps every error caused by invalid structure configuration.
// Generation never starts when one is returned.
var ErrConfig = errors.New("structure configuration")

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// SkipID marks a template cell that leaves the world untouched. Air (id 0)
// on the other hand clears whatever was there.
const SkipID = -1

// Cell is one template position: a block id, its metadata and two values
// that only custom hooks interpret.
type Cell struct {
	ID    int `json:"id"`
	Meta  int `json:"meta,omitempty"`
	Data1 int `json:"data1,omitempty"`
	Data2 int `json:"data2,omitempty"`
}

// Skip is the cell that preserves the world.
var Skip = Cell{ID: SkipID}

// IsSkip reports whether c leaves the world untouched.
func (c Cell) IsSkip() bool {
	return c.ID == SkipID
}

func (c Cell) String() string {
	if c.IsSkip() {
		return "skip"
	}
	if c.Data1 == 0 && c.Data2 == 0 {
		return fmt.Sprintf("%d:%d", c.ID, c.Meta)
	}
	return fmt.Sprintf("%d:%d[%d,%d]", c.ID, c.Meta, c.Data1, c.Data2)
}

// ParseCell builds a cell from its 1 to 4 integer form:
// {id}, {id, meta}, {id, meta, data1} or {id, meta, data1, data2}.
func ParseCell(v []int) (Cell, error) {
	var c Cell
	switch len(v) {
	case 4:
		c.Data2 = v[3]
		fallthrough
	case 3:
		c.Data1 = v[2]
		fallthrough
	case 2:
		c.Meta = v[1]
		fallthrough
	case 1:
		c.ID = v[0]
	default:
		return Cell{}, configErr("cell %v: want 1 to 4 values, got %d", v, len(v))
	}
	if err := c.validate(); err != nil {
		return Cell{}, err
	}
	return c, nil
}

func (c Cell) validate() error {
	if c.ID < SkipID {
		return configErr("cell %v: negative id", c)
	}
	if c.Meta < 0 || c.Meta > 15 {
		return configErr("cell %v: metadata out of range 0..15", c)
	}
	return nil
}
