package structure

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// DefaultRealIDCeiling is the first sentinel id. It lies above every
// block id of the 1.8 id-space.
const DefaultRealIDCeiling = 4096

// Options configure a Generator.
type Options struct {
	// RealIDCeiling separates real block ids from hook sentinels.
	RealIDCeiling int
	// MinY and MaxY bound the writable world height.
	MinY, MaxY int
	// SuppressUpdates writes the support and attached passes without
	// neighbour notifications; the composite pass always notifies.
	SuppressUpdates bool
	Anchor          Anchor
	// YawOffset shifts the yaw partition used by SetPlayerFacing.
	YawOffset float64
}

// DefaultOptions returns the options matching a vanilla 1.8 host.
func DefaultOptions() Options {
	return Options{
		RealIDCeiling:   DefaultRealIDCeiling,
		MinY:            0,
		MaxY:            255,
		SuppressUpdates: true,
		Anchor:          AnchorCorner,
		YawOffset:       45,
	}
}

// Generator places a Structure into host worlds. Configure it once, then
// call Generate; no state is kept between calls. A Generator must not be
// reconfigured while a Generate call is running.
type Generator struct {
	reg   *orient.Registry
	opts  Options
	log   *slog.Logger
	hooks map[int]hook

	structure *Structure

	facing    orient.Facing
	facingSet bool
	mirror    orient.Mirror

	offX, offY, offZ int
	offsetSet        bool
}

// NewGenerator returns a generator using reg for block orientation.
// A nil reg uses orient.Vanilla and a nil log discards output.
func NewGenerator(reg *orient.Registry, opts Options, log *slog.Logger) (*Generator, error) {
	if opts.RealIDCeiling <= 0 {
		return nil, configErr("real id ceiling %d must be positive", opts.RealIDCeiling)
	}
	if opts.MinY > opts.MaxY {
		return nil, configErr("min y %d above max y %d", opts.MinY, opts.MaxY)
	}
	if reg == nil {
		reg = orient.Vanilla()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		reg:   reg,
		opts:  opts,
		log:   log,
		hooks: make(map[int]hook),
	}, nil
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options { return g.opts }

// SetStructure selects the structure to place.
func (g *Generator) SetStructure(s *Structure) error {
	if s == nil {
		return configErr("nil structure")
	}
	g.structure = s
	return nil
}

func (g *Generator) Structure() *Structure { return g.structure }

// SetFacing sets the world direction the structure's front will face.
func (g *Generator) SetFacing(f orient.Facing) error {
	if !f.Valid() {
		return configErr("unknown facing %d", int(f))
	}
	g.facing, g.facingSet = f, true
	return nil
}

// SetPlayerFacing turns the structure's front toward a viewer looking
// along yaw degrees.
func (g *Generator) SetPlayerFacing(yaw float64) {
	g.facing = orient.FacingFromYaw(yaw, g.opts.YawOffset).Opposite()
	g.facingSet = true
}

// ClearFacing lets Generate pick a facing from its rng, as world
// generation does.
func (g *Generator) ClearFacing() {
	g.facingSet = false
}

// SetMirror reflects the structure across an axis before it is rotated.
func (g *Generator) SetMirror(m orient.Mirror) error {
	switch m {
	case orient.MirrorNone, orient.MirrorX, orient.MirrorZ:
		g.mirror = m
		return nil
	}
	return configErr("unknown mirror axis %d", int(m))
}

// SetDefaultOffset overrides the structure offset for every template.
func (g *Generator) SetDefaultOffset(dx, dy, dz int) {
	g.offX, g.offY, g.offZ = dx, dy, dz
	g.offsetSet = true
}

func (g *Generator) targetFacing(rng *rand.Rand) orient.Facing {
	switch {
	case g.facingSet:
		return g.facing
	case rng != nil:
		return orient.Facing(rng.Intn(4))
	}
	return g.structure.Facing()
}

// Plan computes where every cell of the structure would go without
// touching a world.
func (g *Generator) Plan(rng *rand.Rand, ax, ay, az int) (*Plan, error) {
	if g.structure == nil {
		return nil, configErr("no structure set")
	}
	return g.plan(g.structure, g.targetFacing(rng), host.Pos{X: ax, Y: ay, Z: az}), nil
}

// Generate places the structure with its anchor at (ax, ay, az). rng picks
// the facing when none was set. Problems with individual cells are
// collected in the result; the returned error is non-nil only for
// configuration errors and for a host that became unavailable, in which
// case the result holds the partial placement.
func (g *Generator) Generate(w host.World, rng *rand.Rand, ax, ay, az int) (*Result, error) {
	if w == nil {
		return nil, configErr("nil world")
	}
	if g.structure == nil {
		return nil, configErr("no structure set")
	}

	r := &run{
		g:      g,
		w:      w,
		placed: make(map[host.Pos]int),
		done:   make(map[host.Pos]bool),
		res: &Result{
			Structure: g.structure.Name(),
			Mirror:    g.mirror,
			State:     StateIdle,
		},
	}

	r.setState(StatePlanning)
	p := g.plan(g.structure, g.targetFacing(rng), host.Pos{X: ax, Y: ay, Z: az})
	r.res.Facing = p.Facing
	r.res.Bounds = p.Bounds
	for _, d := range p.Diagnostics {
		r.report(d)
	}

	for _, tp := range p.Templates {
		for pass := PassSupport; pass <= PassComposite; pass++ {
			r.setState(StatePlacingSupport + State(pass))
			if err := r.pass(tp, pass); err != nil {
				r.setState(StateFailed)
				g.log.Error("structure generation aborted",
					"structure", r.res.Structure, "template", tp.Name, "error", err)
				return r.res, fmt.Errorf("generate %q: %w", r.res.Structure, err)
			}
		}
	}

	r.setState(StateDone)
	g.log.Info("structure generated",
		"structure", r.res.Structure,
		"facing", p.Facing,
		"mirror", g.mirror,
		"anchor", host.Pos{X: ax, Y: ay, Z: az},
		"placed", r.res.Count(Placed),
		"skipped", r.res.Count(Skipped),
		"failed", r.res.Count(Failed),
		"diagnostics", len(r.res.Diagnostics),
	)
	return r.res, nil
}

// run is the state of one Generate call.
type run struct {
	g   *Generator
	w   host.World
	res *Result

	// placed holds the id written at each position during this call.
	placed map[host.Pos]int
	// done holds the second halves of doors and beds already written.
	done map[host.Pos]bool
}

func (r *run) setState(s State) {
	r.g.log.Debug("structure generation state", "structure", r.res.Structure, "from", r.res.State, "to", s)
	r.res.State = s
}

func (r *run) report(d Diagnostic) {
	r.res.Diagnostics = append(r.res.Diagnostics, d)
	r.g.log.Warn("structure placement",
		"kind", d.Kind,
		"template", d.Template,
		"pos", d.Pos,
		"cell", d.Cell,
		"reason", d.Reason,
	)
}

func (r *run) warn(kind DiagnosticKind, tmpl string, st Step, pos host.Pos, reason string) {
	r.report(Diagnostic{Kind: kind, Template: tmpl, Pos: pos, Cell: st.Cell, Reason: reason})
}

func (r *run) record(tmpl string, st Step, pos host.Pos, id, meta int, o Outcome, reason string) {
	r.res.Records = append(r.res.Records, Record{
		Template: tmpl,
		Pos:      pos,
		ID:       id,
		Meta:     meta,
		Pass:     st.Pass,
		Outcome:  o,
		Reason:   reason,
	})
}

func (r *run) skip(tmpl string, st Step, kind DiagnosticKind, reason string) {
	r.warn(kind, tmpl, st, st.Pos, reason)
	r.record(tmpl, st, st.Pos, st.ID, st.Meta, Skipped, reason)
}

func (r *run) flags(p Pass) host.UpdateFlag {
	if p != PassComposite && r.g.opts.SuppressUpdates {
		return host.SendToClients
	}
	return host.UpdateAll
}

func unavailable(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, host.ErrUnavailable)
}

func (r *run) pass(tp TemplatePlan, p Pass) error {
	for _, st := range tp.Passes[p] {
		if st.Drop != "" {
			r.skip(tp.Name, st, st.DropKind, st.Drop)
			continue
		}
		var err error
		switch {
		case st.Hook != 0:
			err = r.placeHook(tp.Name, st)
		case p == PassComposite:
			err = r.placeComposite(tp.Name, st)
		case p == PassAttached:
			if r.supported(tp.Name, st) {
				_, err = r.write(tp.Name, st, st.Pos, st.ID, st.Meta, r.flags(p))
			}
		default:
			_, err = r.write(tp.Name, st, st.Pos, st.ID, st.Meta, r.flags(p))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// write places one block and records the outcome. A non-nil error means
// the host is gone and the call must stop.
func (r *run) write(tmpl string, st Step, pos host.Pos, id, meta int, flags host.UpdateFlag) (ok bool, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		ok = false
		reason := fmt.Sprintf("host panicked: %v", v)
		r.warn(HostError, tmpl, st, pos, reason)
		r.record(tmpl, st, pos, id, meta, Failed, reason)
		if unavailable(v) {
			err = host.ErrUnavailable
		}
	}()

	if !r.w.SetBlock(pos.X, pos.Y, pos.Z, id, meta, flags) {
		const reason = "host refused the block"
		r.warn(PlacementWarning, tmpl, st, pos, reason)
		r.record(tmpl, st, pos, id, meta, Failed, reason)
		return false, nil
	}
	r.placed[pos] = id
	r.record(tmpl, st, pos, id, meta, Placed, "")
	return true, nil
}

// blockAt prefers what this call already wrote over the host world.
func (r *run) blockAt(p host.Pos) (id int) {
	if placed, ok := r.placed[p]; ok {
		return placed
	}
	defer func() {
		if v := recover(); v != nil {
			r.g.log.Warn("host block query panicked", "pos", p, "panic", v)
			id = 0
		}
	}()
	id, _ = r.w.Block(p.X, p.Y, p.Z)
	return id
}

// supported checks that at least one block able to hold st exists and
// reports a warning when none does.
func (r *run) supported(tmpl string, st Step) bool {
	offs := r.g.reg.Supports(st.ID, st.Meta)
	if len(offs) == 0 {
		return true
	}
	for _, o := range offs {
		if r.blockAt(st.Pos.Add(o.DX, o.DY, o.DZ)) != 0 {
			return true
		}
	}
	o := offs[0]
	r.skip(tmpl, st, PlacementWarning, fmt.Sprintf("no support at %s", st.Pos.Add(o.DX, o.DY, o.DZ)))
	return false
}

func (r *run) placeComposite(tmpl string, st Step) error {
	_, err := r.writeComposite(tmpl, st)
	return err
}

// writeComposite writes a door or bed together with its second half. ok
// reports whether the step's own block was written by this call.
func (r *run) writeComposite(tmpl string, st Step) (ok bool, err error) {
	if r.done[st.Pos] {
		return false, nil
	}
	if st.doorUpper() {
		r.skip(tmpl, st, PlacementWarning, "door upper half without a lower half below it")
		return false, nil
	}
	ok, err = r.write(tmpl, st, st.Pos, st.ID, st.Meta, host.UpdateAll)
	if err != nil || !ok || st.Partner == nil {
		return ok, err
	}
	r.done[st.Pos] = true
	if r.done[*st.Partner] {
		return true, nil
	}
	if _, err := r.write(tmpl, st, *st.Partner, st.ID, st.PartnerMeta, host.UpdateAll); err != nil {
		return true, err
	}
	r.done[*st.Partner] = true
	return true, nil
}

func (r *run) placeHook(tmpl string, st Step) error {
	if st.Kind.Attached() && !r.supported(tmpl, st) {
		return nil
	}
	var (
		ok  bool
		err error
	)
	if st.Kind.Composite() {
		ok, err = r.writeComposite(tmpl, st)
	} else {
		ok, err = r.write(tmpl, st, st.Pos, st.ID, st.Meta, host.UpdateAll)
	}
	if err != nil || !ok {
		return err
	}
	h := r.g.hooks[st.Hook]
	if h.handle == nil {
		return nil
	}
	return r.runHandler(tmpl, st, h.handle)
}

func (r *run) runHandler(tmpl string, st Step, handle Handler) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		r.warn(HookFailure, tmpl, st, st.Pos, fmt.Sprintf("hook %d panicked: %v", st.Hook, v))
		if unavailable(v) {
			err = host.ErrUnavailable
		}
	}()
	if herr := handle(r.w, st.Pos, st.Hook, st.Cell.Data1, st.Cell.Data2); herr != nil {
		r.warn(HookFailure, tmpl, st, st.Pos, fmt.Sprintf("hook %d: %v", st.Hook, herr))
		if errors.Is(herr, host.ErrUnavailable) {
			return host.ErrUnavailable
		}
	}
	return nil
}
