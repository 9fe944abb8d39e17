// Package builtin holds the structures that ship with the generator.
package builtin

import (
	"fmt"

	"github.com/OCharnyshevich/structure-generator/internal/hooks"
	"github.com/OCharnyshevich/structure-generator/pkg/blockid"
	"github.com/OCharnyshevich/structure-generator/pkg/structure"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/catalog"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Names of the built-in structures.
const (
	TutorialHome1 = "Tutorial Home"
	TutorialHome2 = "Tutorial Home 2"
	Platform      = "Platform"
	StackedHut    = "Stacked Hut"
)

var (
	air    = []int{blockid.Air}
	skip   = []int{structure.SkipID}
	planks = []int{blockid.Planks}
	glass  = []int{blockid.Glass}
	cobble = []int{blockid.Cobblestone}
)

// house returns the tutorial house, front door to the west, with chest as
// the cell in the corner right of the door. extras are set over the result,
// keyed by [y, x, z].
func house(chest []int, extras map[[3]int][]int) [][][][]int {
	layers := [][][][]int{
		{
			{planks, planks, {blockid.WoodenDoor, 0}, planks, planks},
			{planks, air, air, chest, planks},
			{planks, air, air, air, planks},
			{planks, {blockid.Bed, 10}, {blockid.Bed, 2}, air, planks},
			{planks, planks, planks, planks, planks},
		},
		{
			{planks, planks, {blockid.WoodenDoor, 8}, planks, planks},
			{planks, {blockid.Torch, 1}, air, air, planks},
			{glass, air, air, air, glass},
			{planks, air, air, air, planks},
			{planks, planks, glass, planks, planks},
		},
		{
			{planks, planks, planks, planks, planks},
			{planks, planks, planks, planks, planks},
			{planks, planks, planks, planks, planks},
			{planks, planks, planks, planks, planks},
			{planks, planks, planks, planks, planks},
		},
	}
	for at, cell := range extras {
		layers[at[0]][at[1]][at[2]] = cell
	}
	return layers
}

func square(n int, cell []int) [][][]int {
	layer := make([][][]int, n)
	for x := range layer {
		layer[x] = make([][]int, n)
		for z := range layer[x] {
			layer[x][z] = cell
		}
	}
	return layer
}

// ring is an n×n layer of cell around a centre of fill.
func ring(n int, cell, fill []int) [][][]int {
	layer := square(n, fill)
	for i := 0; i < n; i++ {
		layer[0][i], layer[n-1][i], layer[i][0], layer[i][n-1] = cell, cell, cell, cell
	}
	return layer
}

type definition struct {
	name      string
	facing    orient.Facing
	templates [][][][][]int
}

func definitions() []definition {
	return []definition{
		{
			name:      TutorialHome1,
			facing:    orient.West,
			templates: [][][][][]int{house([]int{hooks.CustomChest, 2, hooks.ChestHouse1}, nil)},
		},
		{
			name:   TutorialHome2,
			facing: orient.West,
			templates: [][][][][]int{house([]int{hooks.CustomChest, 2, hooks.ChestHouse2}, map[[3]int][]int{
				// A villager in the middle of the room.
				{0, 2, 2}: {hooks.SpawnVillager, 0, 0},
				// A painting on the back wall, facing the door.
				{1, 3, 3}: {hooks.CustomPainting, 2, 0},
				// A clock on the south wall above the chest.
				{1, 1, 3}: {hooks.CustomItemFrame, 4, blockid.ItemClock},
			})},
		},
		{
			name:      Platform,
			facing:    orient.South,
			templates: [][][][][]int{{square(5, cobble)}},
		},
		{
			name:   StackedHut,
			facing: orient.South,
			templates: [][][][][]int{
				{square(3, planks)},
				{square(3, skip), ring(3, cobble, air), square(3, cobble)},
			},
		},
	}
}

// Structures builds every built-in structure.
func Structures() ([]*structure.Structure, error) {
	defs := definitions()
	out := make([]*structure.Structure, 0, len(defs))
	for _, d := range defs {
		s := structure.NewStructure(d.name)
		if err := s.SetFacing(d.facing); err != nil {
			return nil, err
		}
		for i, raw := range d.templates {
			t, err := structure.NewTemplateFromInts(fmt.Sprintf("%s/%d", d.name, i), raw)
			if err != nil {
				return nil, err
			}
			if err := s.AddTemplate(t); err != nil {
				return nil, err
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// Catalog returns a catalog holding the built-in structures.
func Catalog() (*catalog.Catalog, error) {
	return AddTo(catalog.New())
}

// AddTo adds the built-in structures to c, for example after loading a pack.
func AddTo(c *catalog.Catalog) (*catalog.Catalog, error) {
	all, err := Structures()
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}
