package orient

import b "github.com/OCharnyshevich/structure-generator/pkg/blockid"

// vanillaKinds lists every 1.8 block whose metadata carries an orientation or
// which cannot stand on its own. All other ids up to blockid.MaxVanilla are inert.
var vanillaKinds = []Kind{
	{ID: b.Log, Name: "log", Class: Axis},
	{ID: b.Log2, Name: "log2", Class: Axis},
	{ID: b.HayBlock, Name: "hay_block", Class: Axis},
	{ID: b.QuartzBlock, Name: "quartz_block", Class: Inert, Transform: TransformPillar},
	{ID: b.Anvil, Name: "anvil", Class: Inert, Transform: TransformAnvil},

	{ID: b.OakStairs, Name: "oak_stairs", Class: Stairs},
	{ID: b.StoneStairs, Name: "stone_stairs", Class: Stairs},
	{ID: b.BrickStairs, Name: "brick_stairs", Class: Stairs},
	{ID: b.StoneBrickStair, Name: "stone_brick_stairs", Class: Stairs},
	{ID: b.NetherStairs, Name: "nether_brick_stairs", Class: Stairs},
	{ID: b.SandstoneStairs, Name: "sandstone_stairs", Class: Stairs},
	{ID: b.SpruceStairs, Name: "spruce_stairs", Class: Stairs},
	{ID: b.BirchStairs, Name: "birch_stairs", Class: Stairs},
	{ID: b.JungleStairs, Name: "jungle_stairs", Class: Stairs},
	{ID: b.QuartzStairs, Name: "quartz_stairs", Class: Stairs},
	{ID: b.AcaciaStairs, Name: "acacia_stairs", Class: Stairs},
	{ID: b.DarkOakStairs, Name: "dark_oak_stairs", Class: Stairs},
	{ID: b.RedSandstoneSt, Name: "red_sandstone_stairs", Class: Stairs},

	{ID: b.WoodenDoor, Name: "wooden_door", Class: Door},
	{ID: b.IronDoor, Name: "iron_door", Class: Door},
	{ID: b.SpruceDoor, Name: "spruce_door", Class: Door},
	{ID: b.BirchDoor, Name: "birch_door", Class: Door},
	{ID: b.JungleDoor, Name: "jungle_door", Class: Door},
	{ID: b.AcaciaDoor, Name: "acacia_door", Class: Door},
	{ID: b.DarkOakDoor, Name: "dark_oak_door", Class: Door},
	{ID: b.Bed, Name: "bed", Class: Bed},

	{ID: b.Torch, Name: "torch", Class: WallMount, Mount: MountPointing},
	{ID: b.UnlitRedTorch, Name: "unlit_redstone_torch", Class: WallMount, Mount: MountPointing},
	{ID: b.RedstoneTorch, Name: "redstone_torch", Class: WallMount, Mount: MountPointing},
	{ID: b.StoneButton, Name: "stone_button", Class: WallMount, Mount: MountPointing},
	{ID: b.WoodenButton, Name: "wooden_button", Class: WallMount, Mount: MountPointing},
	{ID: b.Lever, Name: "lever", Class: WallMount, Mount: MountPointing, Transform: TransformLever},

	{ID: b.Chest, Name: "chest", Class: Facing4},
	{ID: b.TrappedChest, Name: "trapped_chest", Class: Facing4},
	{ID: b.EnderChest, Name: "ender_chest", Class: Facing4},
	{ID: b.Furnace, Name: "furnace", Class: Facing4},
	{ID: b.LitFurnace, Name: "lit_furnace", Class: Facing4},
	{ID: b.Skull, Name: "skull", Class: Facing4},
	{ID: b.Ladder, Name: "ladder", Class: Facing4, Mount: MountBehind},
	{ID: b.WallSign, Name: "wall_sign", Class: Facing4, Mount: MountBehind},
	{ID: b.WallBanner, Name: "wall_banner", Class: Facing4, Mount: MountBehind},

	{ID: b.Dispenser, Name: "dispenser", Class: Facing6},
	{ID: b.Dropper, Name: "dropper", Class: Facing6},
	{ID: b.Piston, Name: "piston", Class: Facing6},
	{ID: b.StickyPiston, Name: "sticky_piston", Class: Facing6},
	{ID: b.PistonHead, Name: "piston_head", Class: Facing6},
	{ID: b.Hopper, Name: "hopper", Class: Facing6},

	{ID: b.Repeater, Name: "unpowered_repeater", Class: Horizontal, Mount: MountFloor},
	{ID: b.PoweredRepeater, Name: "powered_repeater", Class: Horizontal, Mount: MountFloor},
	{ID: b.Comparator, Name: "unpowered_comparator", Class: Horizontal, Mount: MountFloor},
	{ID: b.PoweredComp, Name: "powered_comparator", Class: Horizontal, Mount: MountFloor},

	{ID: b.Pumpkin, Name: "pumpkin", Class: Directional},
	{ID: b.LitPumpkin, Name: "lit_pumpkin", Class: Directional},
	{ID: b.EndPortalFrame, Name: "end_portal_frame", Class: Directional},
	{ID: b.Cocoa, Name: "cocoa", Class: Directional},
	{ID: b.TripwireHook, Name: "tripwire_hook", Class: Directional, Mount: MountBehind},
	{ID: b.FenceGate, Name: "fence_gate", Class: Directional},
	{ID: b.SpruceFenceGate, Name: "spruce_fence_gate", Class: Directional},
	{ID: b.BirchFenceGate, Name: "birch_fence_gate", Class: Directional},
	{ID: b.JungleFenceGate, Name: "jungle_fence_gate", Class: Directional},
	{ID: b.DarkOakGate, Name: "dark_oak_fence_gate", Class: Directional},
	{ID: b.AcaciaFenceGate, Name: "acacia_fence_gate", Class: Directional},

	{ID: b.Vine, Name: "vine", Class: VineMask, Mount: MountVine},
	{ID: b.Trapdoor, Name: "trapdoor", Class: Trapdoor, Mount: MountBehind},
	{ID: b.IronTrapdoor, Name: "iron_trapdoor", Class: Trapdoor, Mount: MountBehind},

	{ID: b.Rail, Name: "rail", Class: Rail, Mount: MountFloor},
	{ID: b.PoweredRail, Name: "golden_rail", Class: PoweredRail, Mount: MountFloor},
	{ID: b.DetectorRail, Name: "detector_rail", Class: PoweredRail, Mount: MountFloor},
	{ID: b.ActivatorRail, Name: "activator_rail", Class: PoweredRail, Mount: MountFloor},

	{ID: b.StandingSign, Name: "standing_sign", Class: Rotation16, Mount: MountFloor},
	{ID: b.StandingBanner, Name: "standing_banner", Class: Rotation16, Mount: MountFloor},

	{ID: b.Sapling, Name: "sapling", Mount: MountFloor},
	{ID: b.TallGrass, Name: "tallgrass", Mount: MountFloor},
	{ID: b.DeadBush, Name: "deadbush", Mount: MountFloor},
	{ID: b.YellowFlower, Name: "yellow_flower", Mount: MountFloor},
	{ID: b.RedFlower, Name: "red_flower", Mount: MountFloor},
	{ID: b.BrownMushroom, Name: "brown_mushroom", Mount: MountFloor},
	{ID: b.RedMushroom, Name: "red_mushroom", Mount: MountFloor},
	{ID: b.RedstoneWire, Name: "redstone_wire", Mount: MountFloor},
	{ID: b.Wheat, Name: "wheat", Mount: MountFloor},
	{ID: b.StonePlate, Name: "stone_pressure_plate", Mount: MountFloor},
	{ID: b.WoodenPlate, Name: "wooden_pressure_plate", Mount: MountFloor},
	{ID: b.GoldPlate, Name: "light_weighted_pressure_plate", Mount: MountFloor},
	{ID: b.IronPlate, Name: "heavy_weighted_pressure_plate", Mount: MountFloor},
	{ID: b.SnowLayer, Name: "snow_layer", Mount: MountFloor},
	{ID: b.Cactus, Name: "cactus", Mount: MountFloor},
	{ID: b.Reeds, Name: "reeds", Mount: MountFloor},
	{ID: b.Cake, Name: "cake", Mount: MountFloor},
	{ID: b.PumpkinStem, Name: "pumpkin_stem", Mount: MountFloor},
	{ID: b.MelonStem, Name: "melon_stem", Mount: MountFloor},
	{ID: b.NetherWart, Name: "nether_wart", Mount: MountFloor},
	{ID: b.FlowerPot, Name: "flower_pot", Mount: MountFloor},
	{ID: b.Carrots, Name: "carrots", Mount: MountFloor},
	{ID: b.Potatoes, Name: "potatoes", Mount: MountFloor},
	{ID: b.Carpet, Name: "carpet", Mount: MountFloor},
	{ID: b.DoublePlant, Name: "double_plant", Mount: MountFloor},
	{ID: b.Tripwire, Name: "tripwire", Mount: MountFloor},
}

// Vanilla returns a fresh registry covering the whole 1.8 id-space. Each call
// builds its own table so callers can extend it without affecting others.
func Vanilla() *Registry {
	r := NewRegistry()
	for _, k := range vanillaKinds {
		// Entries are unique by construction.
		_ = r.Register(k)
	}
	for id := 0; id <= b.MaxVanilla; id++ {
		if _, ok := r.kinds[id]; !ok {
			r.kinds[id] = Kind{ID: id, Class: Inert}
		}
	}
	return r
}
