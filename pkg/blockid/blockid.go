// Package blockid lists the numeric block and item ids of the 1.8 id-space
// that structure templates are authored against.
package blockid

// MaxVanilla is the highest vanilla block id.
const MaxVanilla = 197

const (
	Air             = 0
	Stone           = 1
	Grass           = 2
	Dirt            = 3
	Cobblestone     = 4
	Planks          = 5
	Sapling         = 6
	Bedrock         = 7
	FlowingWater    = 8
	Water           = 9
	FlowingLava     = 10
	Lava            = 11
	Sand            = 12
	Gravel          = 13
	Log             = 17
	Leaves          = 18
	Glass           = 20
	Dispenser       = 23
	Sandstone       = 24
	Bed             = 26
	PoweredRail     = 27
	DetectorRail    = 28
	StickyPiston    = 29
	Web             = 30
	TallGrass       = 31
	DeadBush        = 32
	Piston          = 33
	PistonHead      = 34
	Wool            = 35
	YellowFlower    = 37
	RedFlower       = 38
	BrownMushroom   = 39
	RedMushroom     = 40
	GoldBlock       = 41
	IronBlock       = 42
	DoubleSlab      = 43
	Slab            = 44
	Brick           = 45
	TNT             = 46
	Bookshelf       = 47
	MossyCobble     = 48
	Obsidian        = 49
	Torch           = 50
	Fire            = 51
	MobSpawner      = 52
	OakStairs       = 53
	Chest           = 54
	RedstoneWire    = 55
	CraftingTable   = 58
	Wheat           = 59
	Farmland        = 60
	Furnace         = 61
	LitFurnace      = 62
	StandingSign    = 63
	WoodenDoor      = 64
	Ladder          = 65
	Rail            = 66
	StoneStairs     = 67
	WallSign        = 68
	Lever           = 69
	StonePlate      = 70
	IronDoor        = 71
	WoodenPlate     = 72
	UnlitRedTorch   = 75
	RedstoneTorch   = 76
	StoneButton     = 77
	SnowLayer       = 78
	Ice             = 79
	Snow            = 80
	Cactus          = 81
	Clay            = 82
	Reeds           = 83
	Fence           = 85
	Pumpkin         = 86
	Netherrack      = 87
	Glowstone       = 89
	LitPumpkin      = 91
	Cake            = 92
	Repeater        = 93
	PoweredRepeater = 94
	StainedGlass    = 95
	Trapdoor        = 96
	StoneBrick      = 98
	IronBars        = 101
	GlassPane       = 102
	MelonBlock      = 103
	PumpkinStem     = 104
	MelonStem       = 105
	Vine            = 106
	FenceGate       = 107
	BrickStairs     = 108
	StoneBrickStair = 109
	Mycelium        = 110
	Lilypad         = 111
	NetherBrick     = 112
	NetherFence     = 113
	NetherStairs    = 114
	NetherWart      = 115
	EnchantTable    = 116
	BrewingStand    = 117
	Cauldron        = 118
	EndPortalFrame  = 120
	EndStone        = 121
	RedstoneLamp    = 123
	WoodenSlab      = 126
	Cocoa           = 127
	SandstoneStairs = 128
	EmeraldOre      = 129
	EnderChest      = 130
	TripwireHook    = 131
	Tripwire        = 132
	EmeraldBlock    = 133
	SpruceStairs    = 134
	BirchStairs     = 135
	JungleStairs    = 136
	Beacon          = 138
	CobbleWall      = 139
	FlowerPot       = 140
	Carrots         = 141
	Potatoes        = 142
	WoodenButton    = 143
	Skull           = 144
	Anvil           = 145
	TrappedChest    = 146
	GoldPlate       = 147
	IronPlate       = 148
	Comparator      = 149
	PoweredComp     = 150
	Hopper          = 154
	QuartzBlock     = 155
	QuartzStairs    = 156
	ActivatorRail   = 157
	Dropper         = 158
	Log2            = 162
	AcaciaStairs    = 163
	DarkOakStairs   = 164
	IronTrapdoor    = 167
	HayBlock        = 170
	Carpet          = 171
	DoublePlant     = 175
	StandingBanner  = 176
	WallBanner      = 177
	RedSandstoneSt  = 180
	SpruceFenceGate = 183
	BirchFenceGate  = 184
	JungleFenceGate = 185
	DarkOakGate     = 186
	AcaciaFenceGate = 187
	SpruceDoor      = 193
	BirchDoor       = 194
	JungleDoor      = 195
	AcaciaDoor      = 196
	DarkOakDoor     = 197
)

// Item ids used by the bundled hooks.
const (
	ItemIronSword     = 267
	ItemDiamond       = 264
	ItemIronHelmet    = 306
	ItemIronChest     = 307
	ItemIronLegs      = 308
	ItemIronBoots     = 309
	ItemGoldenApple   = 322
	ItemPainting      = 321
	ItemSign          = 323
	ItemEmerald       = 388
	ItemItemFrame     = 389
	ItemSkull         = 397
	ItemPotion        = 373
	ItemMap           = 358
	ItemClock         = 347
	ItemCompass       = 345
	ItemBook          = 340
	ItemWrittenBook   = 387
	ItemBread         = 297
	ItemFlintAndSteel = 259
)
