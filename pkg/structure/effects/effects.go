// Package effects holds the helpers custom hooks use to finish a placed
// block: filling containers, writing signs, hanging art, naming skulls and
// spawning entities inside the structure. Every helper reports false when
// its precondition is missing and never panics on a missing tile entity.
package effects

import (
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// AddItemToTileInventory puts stack into the inventory at pos, walking the
// slots in order and filling each empty or matching slot it meets. It
// returns false when the stack did not fit entirely or there is no inventory.
func AddItemToTileInventory(w host.World, pos host.Pos, stack host.ItemStack) bool {
	inv, ok := w.TileEntity(pos.X, pos.Y, pos.Z).(host.Inventory)
	if !ok || stack.Empty() {
		return false
	}
	limit := inv.InventoryStackLimit()
	if limit <= 0 {
		return false
	}
	left := stack.Count
	for i, n := 0, inv.SizeInventory(); i < n && left > 0; i++ {
		cur := inv.StackInSlot(i)
		switch {
		case cur.Empty():
			cur = host.ItemStack{ID: stack.ID, Damage: stack.Damage}
		case !cur.Stacks(stack) || cur.Count >= limit:
			continue
		}
		add := min(left, limit-cur.Count)
		cur.Count += add
		inv.SetInventorySlot(i, cur)
		left -= add
	}
	return left == 0
}

// SetSignText writes up to four lines to the sign at pos. Extra lines are dropped.
func SetSignText(w host.World, pos host.Pos, lines ...string) bool {
	sign, ok := w.TileEntity(pos.X, pos.Y, pos.Z).(host.Sign)
	if !ok {
		return false
	}
	var text [4]string
	copy(text[:], lines)
	sign.SetLines(text)
	return true
}

// SetSkullData sets the type and owner of the skull at pos.
func SetSkullData(w host.World, pos host.Pos, kind host.SkullKind, owner string) bool {
	skull, ok := w.TileEntity(pos.X, pos.Y, pos.Z).(host.Skull)
	if !ok {
		return false
	}
	skull.SetSkull(kind, owner)
	return true
}

// skullOnFloor is the skull metadata for a skull standing on a block.
const skullOnFloor = 1

// SetSkullDataRotated is SetSkullData plus a 16-way rotation. The rotation
// is only applied to skulls standing on the floor.
func SetSkullDataRotated(w host.World, pos host.Pos, kind host.SkullKind, owner string, rot int) bool {
	skull, ok := w.TileEntity(pos.X, pos.Y, pos.Z).(host.Skull)
	if !ok {
		return false
	}
	skull.SetSkull(kind, owner)
	if _, meta := w.Block(pos.X, pos.Y, pos.Z); meta&7 == skullOnFloor {
		skull.SetRotation(rot & 15)
	}
	return true
}

// SetHangingEntity replaces the wall-mounted dummy block at pos (a torch or
// button placed by a hook) with a hanging entity facing the same way. It
// returns the direction the entity faces, for SetItemFrameStack and
// SetPaintingArt.
func SetHangingEntity(w host.World, pos host.Pos, kind host.HangingKind) (orient.Facing, bool) {
	hw, ok := w.(host.HangingWorld)
	if !ok {
		return 0, false
	}
	_, meta := w.Block(pos.X, pos.Y, pos.Z)
	dir, ok := orient.DecodeFacing(orient.WallMount, meta)
	if !ok {
		return 0, false
	}
	w.SetBlock(pos.X, pos.Y, pos.Z, 0, 0, host.UpdateAll)
	if _, ok := hw.SpawnHanging(kind, pos.X, pos.Y, pos.Z, dir); !ok {
		return dir, false
	}
	return dir, true
}

// SetItemFrameStack puts stack into the item frame at pos facing dir.
// rotation is taken modulo 4.
func SetItemFrameStack(w host.World, pos host.Pos, dir orient.Facing, stack host.ItemStack, rotation int) bool {
	hw, ok := w.(host.HangingWorld)
	if !ok {
		return false
	}
	e, ok := hw.HangingAt(pos.X, pos.Y, pos.Z, dir)
	if !ok {
		return false
	}
	frame, ok := e.(host.ItemFrame)
	if !ok {
		return false
	}
	frame.SetDisplayedItem(stack, ((rotation%4)+4)%4)
	return true
}
