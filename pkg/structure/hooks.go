package structure

import (
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

// Resolver returns the real block id placed for a sentinel cell, given the
// cell's data1 value.
type Resolver func(data1 int) int

// Handler runs after the real block of a sentinel cell was placed at pos.
// id is the sentinel id; data1 and data2 are the cell's hook payload.
// Anything else a handler needs must be captured when it is registered.
type Handler func(w host.World, pos host.Pos, id, data1, data2 int) error

// Fixed returns a resolver that ignores data1 and always places id.
func Fixed(id int) Resolver {
	return func(int) int { return id }
}

type hook struct {
	resolve Resolver
	handle  Handler
}

// RegisterHook binds a sentinel id to its resolver and handler. A nil
// handler only places the resolved block.
func (g *Generator) RegisterHook(id int, resolve Resolver, handle Handler) error {
	if id < g.opts.RealIDCeiling {
		return configErr("hook %d: sentinel ids start at %d", id, g.opts.RealIDCeiling)
	}
	if resolve == nil {
		return configErr("hook %d: nil resolver", id)
	}
	if _, ok := g.hooks[id]; ok {
		return configErr("hook %d: already registered", id)
	}
	g.hooks[id] = hook{resolve: resolve, handle: handle}
	return nil
}

// Hooks returns the registered sentinel ids.
func (g *Generator) Hooks() []int {
	ids := make([]int, 0, len(g.hooks))
	for id := range g.hooks {
		ids = append(ids, id)
	}
	return ids
}
