// Package hooks is the library of custom hooks the built-in structures use:
// stocked chests, signs, paintings, item frames, skulls and villagers.
package hooks

import (
	"fmt"

	"github.com/OCharnyshevich/structure-generator/pkg/blockid"
	"github.com/OCharnyshevich/structure-generator/pkg/structure"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/effects"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

// Sentinel ids. Templates use them in place of a real block id.
const (
	// CustomChest places a chest. data1 selects the contents: a chest
	// subtype below zero, or an item id with data2 as the stack size.
	CustomChest = structure.DefaultRealIDCeiling + iota
	// CustomSign places a wall sign showing Options.Signs[data1].
	CustomSign
	// CustomPainting hangs a painting showing effects.Arts[data1]. The
	// cell meta is that of a wall torch on the same wall.
	CustomPainting
	// CustomItemFrame hangs an item frame holding item data1 turned data2
	// times. The cell meta is that of a wall torch on the same wall.
	CustomItemFrame
	// CustomSkull places a skull of type data1. Floor skulls are turned to
	// the 16-way rotation data2.
	CustomSkull
	// SpawnVillager spawns a villager with profession data1 in the nearest
	// free space.
	SpawnVillager
)

// Chest subtypes, passed as data1 of CustomChest.
const (
	ChestHouse1   = -1 // four potions
	ChestHouse2   = -2 // a set of worn iron gear
	ChestTreasure = -3 // diamonds and emeralds until full
)

// Options hold the data hooks cannot store in a template cell.
type Options struct {
	Signs        [][]string
	SkullOwner   string
	CavityRadius int
}

// DefaultOptions returns the sign texts of the built-in structures.
func DefaultOptions() Options {
	return Options{
		Signs: [][]string{
			{"Welcome", "home!"},
			{"Beware", "of the", "creepers"},
		},
		SkullOwner:   "Steve",
		CavityRadius: effects.DefaultCavityRadius,
	}
}

// Spawner is a host world that can create villagers.
type Spawner interface {
	host.World
	NewVillager(profession int) host.Entity
}

var chestContents = map[int][]host.ItemStack{
	ChestHouse1: {
		{ID: blockid.ItemPotion, Count: 1, Damage: 8206},
		{ID: blockid.ItemPotion, Count: 1, Damage: 8270},
		{ID: blockid.ItemPotion, Count: 1, Damage: 8193},
		{ID: blockid.ItemPotion, Count: 1, Damage: 16385},
	},
	ChestHouse2: {
		{ID: blockid.ItemIronSword, Count: 1, Damage: 128},
		{ID: blockid.ItemIronChest, Count: 1, Damage: 128},
		{ID: blockid.ItemIronHelmet, Count: 1, Damage: 72},
		{ID: blockid.ItemIronLegs, Count: 1, Damage: 128},
		{ID: blockid.ItemIronBoots, Count: 1, Damage: 72},
	},
}

// ChestContents returns the stacks a chest subtype is filled with.
func ChestContents(subtype int) []host.ItemStack {
	return append([]host.ItemStack(nil), chestContents[subtype]...)
}

// Register binds every hook of this package on g.
func Register(g *structure.Generator, opts Options) error {
	if opts.CavityRadius <= 0 {
		opts.CavityRadius = effects.DefaultCavityRadius
	}
	h := handlers{opts: opts}
	table := []struct {
		id      int
		real    int
		handler structure.Handler
	}{
		{CustomChest, blockid.Chest, h.chest},
		{CustomSign, blockid.WallSign, h.sign},
		{CustomPainting, blockid.Torch, h.painting},
		{CustomItemFrame, blockid.Torch, h.itemFrame},
		{CustomSkull, blockid.Skull, h.skull},
		{SpawnVillager, blockid.Wool, h.villager},
	}
	for _, e := range table {
		if err := g.RegisterHook(e.id, structure.Fixed(e.real), e.handler); err != nil {
			return fmt.Errorf("register hooks: %w", err)
		}
	}
	return nil
}

type handlers struct {
	opts Options
}

func (h handlers) chest(w host.World, pos host.Pos, _, data1, data2 int) error {
	switch {
	case data1 == ChestTreasure:
		for _, id := range []int{blockid.ItemDiamond, blockid.ItemEmerald} {
			for effects.AddItemToTileInventory(w, pos, host.ItemStack{ID: id, Count: 64}) {
			}
		}
		return nil
	case data1 < 0:
		stacks, ok := chestContents[data1]
		if !ok {
			return fmt.Errorf("unknown chest subtype %d", data1)
		}
		for _, s := range stacks {
			if !effects.AddItemToTileInventory(w, pos, s) {
				return fmt.Errorf("chest subtype %d: no room for item %d", data1, s.ID)
			}
		}
		return nil
	case data1 == 0:
		return nil
	}
	count := max(data2, 1)
	if !effects.AddItemToTileInventory(w, pos, host.ItemStack{ID: data1, Count: count}) {
		return fmt.Errorf("chest: no room for %d of item %d", count, data1)
	}
	return nil
}

func (h handlers) sign(w host.World, pos host.Pos, _, data1, _ int) error {
	if data1 < 0 || data1 >= len(h.opts.Signs) {
		return fmt.Errorf("sign text %d not configured", data1)
	}
	if !effects.SetSignText(w, pos, h.opts.Signs[data1]...) {
		return fmt.Errorf("no sign at %s", pos)
	}
	return nil
}

func (h handlers) painting(w host.World, pos host.Pos, _, data1, _ int) error {
	if data1 < 0 || data1 >= len(effects.Arts) {
		return fmt.Errorf("painting art %d out of range", data1)
	}
	dir, ok := effects.SetHangingEntity(w, pos, host.HangingPainting)
	if !ok {
		return fmt.Errorf("could not hang a painting at %s", pos)
	}
	if !effects.SetPaintingArt(w, pos, dir, effects.Arts[data1]) {
		return fmt.Errorf("could not set painting art at %s", pos)
	}
	return nil
}

func (h handlers) itemFrame(w host.World, pos host.Pos, _, data1, data2 int) error {
	dir, ok := effects.SetHangingEntity(w, pos, host.HangingItemFrame)
	if !ok {
		return fmt.Errorf("could not hang an item frame at %s", pos)
	}
	if data1 <= 0 {
		return nil
	}
	if !effects.SetItemFrameStack(w, pos, dir, host.ItemStack{ID: data1, Count: 1}, data2) {
		return fmt.Errorf("could not fill the item frame at %s", pos)
	}
	return nil
}

func (h handlers) skull(w host.World, pos host.Pos, _, data1, data2 int) error {
	kind := host.SkullKind(data1)
	if kind < host.SkullSkeleton || kind > host.SkullCreeper {
		return fmt.Errorf("unknown skull type %d", data1)
	}
	owner := ""
	if kind == host.SkullPlayer {
		owner = h.opts.SkullOwner
	}
	if !effects.SetSkullDataRotated(w, pos, kind, owner, data2) {
		return fmt.Errorf("no skull at %s", pos)
	}
	return nil
}

func (h handlers) villager(w host.World, pos host.Pos, _, data1, _ int) error {
	sp, ok := w.(Spawner)
	if !ok {
		return fmt.Errorf("host cannot create villagers")
	}
	if !effects.SpawnEntityInStructure(w, sp.NewVillager(data1), pos, h.opts.CavityRadius) {
		return fmt.Errorf("villager left at %s: no free space nearby", pos)
	}
	return nil
}
