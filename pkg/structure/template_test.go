package structure

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   []int
		want Cell
	}{
		{[]int{5}, Cell{ID: 5}},
		{[]int{54, 2}, Cell{ID: 54, Meta: 2}},
		{[]int{4096, 2, -1}, Cell{ID: 4096, Meta: 2, Data1: -1}},
		{[]int{4096, 2, 322, 16}, Cell{ID: 4096, Meta: 2, Data1: 322, Data2: 16}},
		{[]int{SkipID}, Skip},
	}
	for _, tt := range tests {
		got, err := ParseCell(tt.in)
		if err != nil {
			t.Errorf("ParseCell(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCell(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range [][]int{nil, {1, 2, 3, 4, 5}, {-2}, {1, 16}, {1, -1}} {
		if _, err := ParseCell(bad); !errors.Is(err, ErrConfig) {
			t.Errorf("ParseCell(%v) error = %v, want ErrConfig", bad, err)
		}
	}
}

func TestNewTemplateRagged(t *testing.T) {
	tmpl, err := NewTemplateFromInts("ragged", [][][][]int{
		{{{1}, {1}, {1}}, {{1}, {1}, {1}}},
		{{{2}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Width() != 2 || tmpl.Depth() != 3 || tmpl.Height() != 2 {
		t.Errorf("size = %dx%dx%d, want 2x2x3", tmpl.Width(), tmpl.Height(), tmpl.Depth())
	}
	if c := tmpl.Cell(1, 1, 2); !c.IsSkip() {
		t.Errorf("cell outside ragged layer = %v, want skip", c)
	}
	if c := tmpl.Cell(1, 0, 0); c.ID != 2 {
		t.Errorf("cell(1,0,0) = %v, want id 2", c)
	}
}

func TestNewTemplateErrors(t *testing.T) {
	if _, err := NewTemplate("empty", nil); !errors.Is(err, ErrConfig) {
		t.Errorf("empty template: %v", err)
	}
	_, err := NewTemplateFromInts("jagged", [][][][]int{
		{{{1}, {1}}, {{1}}},
	})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("non-rectangular layer: %v", err)
	}
	_, err = NewTemplateFromInts("bad cell", [][][][]int{
		{{{1, 99}}},
	})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("bad metadata: %v", err)
	}
}

func TestTemplateIsImmutable(t *testing.T) {
	layers := [][][]Cell{{{{ID: 1}, {ID: 2}}}}
	tmpl, err := NewTemplate("copy", layers)
	if err != nil {
		t.Fatal(err)
	}
	layers[0][0][0] = Cell{ID: 9}
	if c := tmpl.Cell(0, 0, 0); c.ID != 1 {
		t.Errorf("template changed with caller's slice: %v", c)
	}

	shifted := tmpl.WithOffset(1, 2, 3)
	if x, y, z := tmpl.Offset(); x != 0 || y != 0 || z != 0 {
		t.Errorf("WithOffset changed the original: %d,%d,%d", x, y, z)
	}
	if x, y, z := shifted.Offset(); x != 1 || y != 2 || z != 3 {
		t.Errorf("shifted offset = %d,%d,%d", x, y, z)
	}

	turned, err := tmpl.WithFacing(orient.East)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tmpl.Facing(); ok {
		t.Error("WithFacing changed the original")
	}
	if f, ok := turned.Facing(); !ok || f != orient.East {
		t.Errorf("turned facing = %v, %v", f, ok)
	}
}

func TestTransformLocal(t *testing.T) {
	// 3 wide (x) and 2 deep (z).
	tests := []struct {
		steps  int
		m      orient.Mirror
		x, z   int
		wx, wz int
	}{
		{0, orient.MirrorNone, 2, 1, 2, 1},
		{1, orient.MirrorNone, 0, 0, 1, 0},
		{1, orient.MirrorNone, 2, 1, 0, 2},
		{2, orient.MirrorNone, 0, 0, 2, 1},
		{3, orient.MirrorNone, 0, 0, 0, 2},
		{3, orient.MirrorNone, 2, 1, 1, 0},
		{0, orient.MirrorX, 0, 0, 2, 0},
		{0, orient.MirrorZ, 0, 0, 0, 1},
		{1, orient.MirrorX, 0, 0, 1, 2},
	}
	for _, tt := range tests {
		tr := NewTransform(3, 2, tt.steps, tt.m, host.Pos{}, 0, 0, 0, AnchorCorner)
		wx, wz := tr.Local(tt.x, tt.z)
		if wx != tt.wx || wz != tt.wz {
			t.Errorf("steps %d mirror %v: Local(%d,%d) = (%d,%d), want (%d,%d)",
				tt.steps, tt.m, tt.x, tt.z, wx, wz, tt.wx, tt.wz)
		}
		w, d := tr.Footprint()
		if wx < 0 || wx >= w || wz < 0 || wz >= d {
			t.Errorf("steps %d: (%d,%d) outside footprint %dx%d", tt.steps, wx, wz, w, d)
		}
	}
}

func TestTransformCenterAnchor(t *testing.T) {
	tr := NewTransform(5, 5, 1, orient.MirrorNone, host.Pos{X: 10, Y: 64, Z: 10}, 0, 0, 0, AnchorCenter)
	if got := tr.Origin(); got != (host.Pos{X: 8, Y: 64, Z: 8}) {
		t.Errorf("origin = %s, want (8,64,8)", got)
	}
	if got := tr.World(0, 2, 2); got != (host.Pos{X: 10, Y: 64, Z: 10}) {
		t.Errorf("centre cell at %s, want the anchor", got)
	}
}

func TestBox(t *testing.T) {
	b := emptyBox()
	if !b.Empty() {
		t.Fatal("new box should be empty")
	}
	b.extend(host.Pos{X: 1, Y: 2, Z: 3})
	b.extend(host.Pos{X: -1, Y: 5, Z: 3})
	if w, h, d := b.Size(); w != 3 || h != 4 || d != 1 {
		t.Errorf("size = %d,%d,%d, want 3,4,1", w, h, d)
	}
	if !b.Contains(host.Pos{X: 0, Y: 3, Z: 3}) || b.Contains(host.Pos{X: 0, Y: 3, Z: 4}) {
		t.Error("Contains disagrees with the extents")
	}
}
