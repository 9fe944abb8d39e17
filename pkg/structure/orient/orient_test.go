package orient

import (
	"errors"
	"testing"

	b "github.com/OCharnyshevich/structure-generator/pkg/blockid"
)

func TestFacingRotate(t *testing.T) {
	tests := []struct {
		from  Facing
		steps int
		want  Facing
	}{
		{South, 1, West},
		{West, 1, North},
		{North, 1, East},
		{East, 1, South},
		{South, 2, North},
		{East, -1, North},
		{West, 7, South},
	}
	for _, tt := range tests {
		if got := tt.from.Rotate(tt.steps); got != tt.want {
			t.Errorf("%v.Rotate(%d) = %v, want %v", tt.from, tt.steps, got, tt.want)
		}
	}
}

func TestFacingMirror(t *testing.T) {
	if got := East.Mirror(MirrorX); got != West {
		t.Errorf("East mirrored on x = %v, want west", got)
	}
	if got := North.Mirror(MirrorX); got != North {
		t.Errorf("North mirrored on x = %v, want north", got)
	}
	if got := North.Mirror(MirrorZ); got != South {
		t.Errorf("North mirrored on z = %v, want south", got)
	}
	if got := West.Mirror(MirrorNone); got != West {
		t.Errorf("West with no mirror = %v, want west", got)
	}
}

func TestFacingFromYaw(t *testing.T) {
	tests := []struct {
		yaw  float64
		want Facing
	}{
		{0, South},
		{44, South},
		{46, West},
		{90, West},
		{180, North},
		{-90, East},
		{270, East},
		{-180, North},
		{359, South},
	}
	for _, tt := range tests {
		if got := FacingFromYaw(tt.yaw, 45); got != tt.want {
			t.Errorf("FacingFromYaw(%v) = %v, want %v", tt.yaw, got, tt.want)
		}
	}
}

func TestStepsBetween(t *testing.T) {
	if got := StepsBetween(West, North); got != 1 {
		t.Errorf("StepsBetween(west, north) = %d, want 1", got)
	}
	if got := StepsBetween(North, West); got != 3 {
		t.Errorf("StepsBetween(north, west) = %d, want 3", got)
	}
	if got := StepsBetween(East, East); got != 0 {
		t.Errorf("StepsBetween(east, east) = %d, want 0", got)
	}
}

func TestParseFacing(t *testing.T) {
	for _, s := range []string{"WEST", "w", " west "} {
		f, err := ParseFacing(s)
		if err != nil || f != West {
			t.Errorf("ParseFacing(%q) = %v, %v; want west", s, f, err)
		}
	}
	if _, err := ParseFacing("up"); err == nil {
		t.Error("ParseFacing(up) should fail")
	}
}

func TestRotationPeriodicity(t *testing.T) {
	r := Vanilla()
	for _, id := range r.IDs() {
		for meta := 0; meta < 16; meta++ {
			got := meta
			for i := 0; i < 4; i++ {
				got, _ = r.Transform(id, got, 1, MirrorNone)
			}
			if got != meta {
				t.Errorf("id %d meta %d: four quarter turns gave %d", id, meta, got)
			}
		}
	}
}

func TestMirrorInvolution(t *testing.T) {
	r := Vanilla()
	for _, m := range []Mirror{MirrorX, MirrorZ} {
		for _, id := range r.IDs() {
			for meta := 0; meta < 16; meta++ {
				once, _ := r.Transform(id, meta, 0, m)
				twice, _ := r.Transform(id, once, 0, m)
				if twice != meta {
					t.Errorf("id %d meta %d: mirroring twice on %v gave %d", id, meta, m, twice)
				}
			}
		}
	}
}

func TestTransformKnownKinds(t *testing.T) {
	r := Vanilla()
	tests := []struct {
		name  string
		id    int
		meta  int
		steps int
		m     Mirror
		want  int
	}{
		{"door west to north", b.WoodenDoor, 0, 1, MirrorNone, 1},
		{"door top follows", b.WoodenDoor, 8, 1, MirrorNone, 9},
		{"door mirror flips hinge", b.WoodenDoor, 0, 0, MirrorX, 2 | DoorHinge},
		{"bed head north to east", b.Bed, 10, 1, MirrorNone, 11},
		{"bed foot north to south", b.Bed, 2, 2, MirrorNone, 0},
		{"chest north to east", b.Chest, 2, 1, MirrorNone, 5},
		{"chest mirror z", b.Chest, 2, 0, MirrorZ, 3},
		{"torch east to south", b.Torch, 1, 1, MirrorNone, 3},
		{"torch mirror x", b.Torch, 1, 0, MirrorX, 2},
		{"torch floor invariant", b.Torch, 5, 1, MirrorX, 5},
		{"stairs east to south", b.OakStairs, 0, 1, MirrorNone, 2},
		{"stairs upside down kept", b.OakStairs, 4, 1, MirrorNone, 6},
		{"log x to z", b.Log, 4 | 1, 1, MirrorNone, 8 | 1},
		{"log vertical kept", b.Log, 2, 1, MirrorNone, 2},
		{"repeater delay kept", b.Repeater, 0 | 12, 1, MirrorNone, 1 | 12},
		{"vine south to west", b.Vine, 1, 1, MirrorNone, 2},
		{"vine east mirrored", b.Vine, 8, 0, MirrorX, 2},
		{"rail straight turns", b.Rail, 0, 1, MirrorNone, 1},
		{"rail slope east to south", b.Rail, 2, 1, MirrorNone, 5},
		{"rail curve south-east", b.Rail, 6, 1, MirrorNone, 7},
		{"rail curve mirrored", b.Rail, 9, 0, MirrorX, 8},
		{"powered rail keeps power", b.PoweredRail, 8 | 2, 1, MirrorNone, 8 | 5},
		{"sign rotates by four", b.StandingSign, 0, 1, MirrorNone, 4},
		{"sign mirror x", b.StandingSign, 4, 0, MirrorX, 12},
		{"wall sign rotates", b.WallSign, 4, 1, MirrorNone, 2},
		{"piston down invariant", b.Piston, 0, 1, MirrorNone, 0},
		{"piston extended kept", b.Piston, 8 | 2, 1, MirrorNone, 8 | 5},
		{"lever floor axis swaps", b.Lever, 5, 1, MirrorNone, 6},
		{"lever wall rotates", b.Lever, 1, 1, MirrorNone, 3},
		{"quartz pillar swaps", b.QuartzBlock, 3, 1, MirrorNone, 4},
		{"quartz chiseled kept", b.QuartzBlock, 1, 1, MirrorNone, 1},
		{"anvil axis", b.Anvil, 4, 1, MirrorNone, 5},
		{"pumpkin", b.Pumpkin, 0, 1, MirrorNone, 1},
		{"trapdoor open kept", b.Trapdoor, 4 | 0, 1, MirrorNone, 4 | 3},
		{"inert", b.Stone, 3, 1, MirrorX, 3},
	}
	for _, tt := range tests {
		got, ok := r.Transform(tt.id, tt.meta, tt.steps, tt.m)
		if !ok {
			t.Errorf("%s: id %d not registered", tt.name, tt.id)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Transform(%d, %d, %d, %v) = %d, want %d", tt.name, tt.id, tt.meta, tt.steps, tt.m, got, tt.want)
		}
	}
}

func TestTransformUnknownKind(t *testing.T) {
	r := Vanilla()
	got, ok := r.Transform(3000, 7, 1, MirrorX)
	if ok {
		t.Error("id 3000 should be unknown")
	}
	if got != 7 {
		t.Errorf("unknown kind meta = %d, want identity 7", got)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Kind{ID: 1, Name: "stone"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := r.Register(Kind{ID: 1, Name: "stone"})
	if !errors.Is(err, ErrDuplicateKind) {
		t.Errorf("second register error = %v, want ErrDuplicateKind", err)
	}
}

func TestPerKindTransformWins(t *testing.T) {
	r := NewRegistry()
	calls := 0
	err := r.Register(Kind{ID: 500, Class: Facing4, Transform: func(meta, _ int, _ Mirror) int {
		calls++
		return meta
	}})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := r.Transform(500, 2, 1, MirrorNone)
	if got != 2 || calls != 1 {
		t.Errorf("per-kind transform not used: got %d, calls %d", got, calls)
	}
}

func TestSupports(t *testing.T) {
	r := Vanilla()
	tests := []struct {
		name string
		id   int
		meta int
		want []Offset
	}{
		{"torch pointing east hangs west", b.Torch, 1, []Offset{{-1, 0, 0}}},
		{"torch on floor", b.Torch, 5, []Offset{{0, -1, 0}}},
		{"button on ceiling", b.StoneButton, 0, []Offset{{0, 1, 0}}},
		{"ladder facing north hangs south", b.Ladder, 2, []Offset{{0, 0, 1}}},
		{"wall sign facing east hangs west", b.WallSign, 5, []Offset{{-1, 0, 0}}},
		{"rail", b.Rail, 0, []Offset{{0, -1, 0}}},
		{"vine south and east", b.Vine, 1 | 8, []Offset{{0, 0, 1}, {1, 0, 0}}},
		{"vine hanging", b.Vine, 0, []Offset{{0, 1, 0}}},
		{"stone", b.Stone, 0, nil},
		{"chest", b.Chest, 2, nil},
	}
	for _, tt := range tests {
		got := r.Supports(tt.id, tt.meta)
		if len(got) != len(tt.want) {
			t.Errorf("%s: Supports = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: Supports = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestKindPasses(t *testing.T) {
	r := Vanilla()
	door, _ := r.Lookup(b.WoodenDoor)
	if !door.Composite() || door.Attached() {
		t.Errorf("door: composite=%v attached=%v", door.Composite(), door.Attached())
	}
	torch, _ := r.Lookup(b.Torch)
	if torch.Composite() || !torch.Attached() {
		t.Errorf("torch: composite=%v attached=%v", torch.Composite(), torch.Attached())
	}
	if r.Len() != b.MaxVanilla+1 {
		t.Errorf("vanilla registry has %d kinds, want %d", r.Len(), b.MaxVanilla+1)
	}
}
