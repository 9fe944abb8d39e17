package structure

import (
	"testing"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

type block struct {
	id, meta int
}

type write struct {
	pos      host.Pos
	id, meta int
	flags    host.UpdateFlag
}

// fakeWorld records every write. refuse makes SetBlock return false and
// panics makes it panic with the stored value.
type fakeWorld struct {
	blocks map[host.Pos]block
	writes []write
	refuse map[host.Pos]bool
	panics map[host.Pos]any
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		blocks: make(map[host.Pos]block),
		refuse: make(map[host.Pos]bool),
		panics: make(map[host.Pos]any),
	}
}

func (w *fakeWorld) SetBlock(x, y, z, id, meta int, flags host.UpdateFlag) bool {
	p := host.Pos{X: x, Y: y, Z: z}
	if v, ok := w.panics[p]; ok {
		panic(v)
	}
	if w.refuse[p] {
		return false
	}
	w.blocks[p] = block{id, meta}
	w.writes = append(w.writes, write{p, id, meta, flags})
	return true
}

func (w *fakeWorld) Block(x, y, z int) (int, int) {
	b := w.blocks[host.Pos{X: x, Y: y, Z: z}]
	return b.id, b.meta
}

func (w *fakeWorld) TileEntity(_, _, _ int) host.TileEntity { return nil }

func (w *fakeWorld) SpawnEntity(host.Entity) bool { return false }

func (w *fakeWorld) at(x, y, z int) block {
	return w.blocks[host.Pos{X: x, Y: y, Z: z}]
}

// writeIndex returns the position of the first write at p, or -1.
func (w *fakeWorld) writeIndex(p host.Pos) int {
	for i, wr := range w.writes {
		if wr.pos == p {
			return i
		}
	}
	return -1
}

const (
	idAir    = 0
	idCobble = 4
	idPlanks = 5
	idGlass  = 20
	idBed    = 26
	idTorch  = 50
	idChest  = 54
	idDoor   = 64
)

// house is a 5×3×5 west-facing hut: a door in the west wall at z=2, a bed
// along the north wall with its head at x=3 z=1, a chest facing north and a
// torch on the inside of the west wall.
func house() [][][][]int {
	W := []int{idPlanks}
	G := []int{idGlass}
	o := []int{idAir}
	return [][][][]int{
		{
			{W, W, {idDoor, 0}, W, W},
			{W, o, o, {idChest, 2}, W},
			{W, o, o, o, W},
			{W, {idBed, 10}, {idBed, 2}, o, W},
			{W, W, W, W, W},
		},
		{
			{W, W, {idDoor, 8}, W, W},
			{W, {idTorch, 1}, o, o, W},
			{G, o, o, o, G},
			{W, o, o, o, W},
			{W, W, G, W, W},
		},
		{
			{W, W, W, W, W},
			{W, W, W, W, W},
			{W, W, W, W, W},
			{W, W, W, W, W},
			{W, W, W, W, W},
		},
	}
}

func houseStructure(t *testing.T, raw [][][][]int) *Structure {
	t.Helper()
	tmpl, err := NewTemplateFromInts("house", raw)
	if err != nil {
		t.Fatalf("NewTemplateFromInts: %v", err)
	}
	s := NewStructure("Test House")
	if err := s.AddTemplate(tmpl); err != nil {
		t.Fatal(err)
	}
	if err := s.SetFacing(orient.West); err != nil {
		t.Fatal(err)
	}
	return s
}

func newTestGenerator(t *testing.T, s *Structure) *Generator {
	t.Helper()
	g, err := NewGenerator(nil, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if s != nil {
		if err := g.SetStructure(s); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func expectBlocks(t *testing.T, w *fakeWorld, want map[host.Pos]block) {
	t.Helper()
	for p, b := range want {
		if got := w.at(p.X, p.Y, p.Z); got != b {
			t.Errorf("block at %s = %d:%d, want %d:%d", p, got.id, got.meta, b.id, b.meta)
		}
	}
}
