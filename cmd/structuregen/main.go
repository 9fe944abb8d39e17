package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/OCharnyshevich/structure-generator/internal/builtin"
	"github.com/OCharnyshevich/structure-generator/internal/config"
	"github.com/OCharnyshevich/structure-generator/internal/hooks"
	"github.com/OCharnyshevich/structure-generator/internal/schematic"
	"github.com/OCharnyshevich/structure-generator/internal/storage"
	"github.com/OCharnyshevich/structure-generator/internal/world"
	"github.com/OCharnyshevich/structure-generator/internal/world/anvil"
	"github.com/OCharnyshevich/structure-generator/internal/world/gen"
	"github.com/OCharnyshevich/structure-generator/pkg/structure"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/catalog"
)

// target is where and how to place, beyond the persisted config.
type target struct {
	x, y, z    int
	yaw        float64
	yawSet     bool
	list       bool
	saveConfig bool
}

func main() {
	cfg := config.DefaultConfig()
	var tg target

	flag.IntVar(&cfg.RealIDCeiling, "real-id-ceiling", cfg.RealIDCeiling, "first id treated as a hook sentinel")
	flag.IntVar(&cfg.MinY, "min-y", cfg.MinY, "lowest writable y")
	flag.IntVar(&cfg.MaxY, "max-y", cfg.MaxY, "highest writable y")
	flag.BoolVar(&cfg.SuppressUpdates, "suppress-updates", cfg.SuppressUpdates, "skip neighbour updates for support and attached blocks")
	flag.StringVar(&cfg.Anchor, "anchor", cfg.Anchor, "anchor mode: corner or center")
	flag.Float64Var(&cfg.YawOffset, "yaw-offset", cfg.YawOffset, "degrees added to yaw before picking a facing")
	flag.IntVar(&cfg.CavityRadius, "cavity-radius", cfg.CavityRadius, "search radius for spawned entities")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world and facing seed")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "world generator: flat, void or hills")
	flag.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "template pack directory")
	flag.StringVar(&cfg.PackURL, "pack-url", cfg.PackURL, "go-getter source of a template pack")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	flag.BoolVar(&cfg.ExportAnvil, "anvil", cfg.ExportAnvil, "also export the world as Anvil region files")
	flag.StringVar(&cfg.Structure, "structure", cfg.Structure, "structure to place")
	flag.StringVar(&cfg.Facing, "facing", cfg.Facing, "front facing: south, west, north or east")
	flag.StringVar(&cfg.Mirror, "mirror", cfg.Mirror, "mirror axis: none, x or z")
	flag.IntVar(&tg.x, "x", 0, "anchor x")
	flag.IntVar(&tg.y, "y", -1, "anchor y, -1 for the surface")
	flag.IntVar(&tg.z, "z", 0, "anchor z")
	flag.Float64Var(&tg.yaw, "yaw", 0, "viewer yaw the structure should face")
	flag.BoolVar(&tg.list, "list", false, "list structures and exit")
	flag.BoolVar(&tg.saveConfig, "save-config", false, "write the merged config to the output directory")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	tg.yawSet = explicit["yaw"]

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, explicit, tg, log, os.Stdout); err != nil {
		log.Error("structuregen", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, explicit map[string]bool, tg target, log *slog.Logger, out io.Writer) error {
	store, err := storage.New(cfg.OutDir, log)
	if err != nil {
		return err
	}
	fromFile := *cfg
	if err := store.LoadConfig(&fromFile); err != nil {
		return err
	}
	config.Merge(cfg, &fromFile, explicit)
	if tg.saveConfig {
		if err := store.SaveConfig(cfg); err != nil {
			return err
		}
	}

	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	if tg.list {
		for _, name := range cat.Names() {
			fmt.Fprintln(out, color.CyanString("%s", name))
		}
		return nil
	}
	s, err := cat.Get(cfg.Structure)
	if err != nil {
		return err
	}

	wgen, err := gen.New(cfg.GeneratorType, cfg.Seed)
	if err != nil {
		return err
	}
	w := world.NewWorld(wgen)
	if err := store.LoadWorld(w); err != nil {
		return err
	}

	g, err := newGenerator(cfg, tg, log)
	if err != nil {
		return err
	}
	if err := g.SetStructure(s); err != nil {
		return err
	}

	w.PreGenerateRadius(tg.x>>4, tg.z>>4, 1)
	if tg.y < 0 {
		tg.y = w.SurfaceHeight(tg.x, tg.z)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	res, genErr := g.Generate(w, rng, tg.x, tg.y, tg.z)
	if res == nil {
		return genErr
	}
	printResult(out, res)

	if err := store.SaveReport(storage.NewReport(res, tg.x, tg.y, tg.z)); err != nil {
		return err
	}
	if err := store.SaveWorld(w); err != nil {
		return err
	}
	if !res.Bounds.Empty() {
		var buf bytes.Buffer
		if err := schematic.Export(w, res.Bounds, &buf); err != nil {
			return err
		}
		path, err := store.WriteFile(storage.SafeName(res.Structure)+".schematic", buf.Bytes())
		if err != nil {
			return err
		}
		log.Info("saved schematic", "path", path, "bytes", buf.Len())
	}
	if cfg.ExportAnvil {
		dir := filepath.Join(store.Dir(), "region")
		n, err := anvil.Export(w, dir)
		if err != nil {
			return err
		}
		log.Info("saved region files", "dir", dir, "regions", n)
	}
	return genErr
}

func loadCatalog(ctx context.Context, cfg *config.Config, log *slog.Logger) (*catalog.Catalog, error) {
	switch {
	case cfg.PackURL != "":
		dst := cfg.Catalog
		if dst == "" {
			dst = filepath.Join(cfg.OutDir, "pack")
		}
		log.Info("fetching template pack", "source", cfg.PackURL, "dir", dst)
		return catalog.FetchAndLoad(ctx, cfg.PackURL, dst)
	case cfg.Catalog != "":
		return catalog.Load(os.DirFS(cfg.Catalog), catalog.DefaultManifest)
	}
	return builtin.Catalog()
}

func newGenerator(cfg *config.Config, tg target, log *slog.Logger) (*structure.Generator, error) {
	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	g, err := structure.NewGenerator(nil, opts, log)
	if err != nil {
		return nil, err
	}

	hopts := hooks.DefaultOptions()
	hopts.CavityRadius = cfg.CavityRadius
	if err := hooks.Register(g, hopts); err != nil {
		return nil, err
	}

	f, ok, m, err := cfg.Orientation()
	if err != nil {
		return nil, err
	}
	switch {
	case ok:
		err = g.SetFacing(f)
	case tg.yawSet:
		g.SetPlayerFacing(tg.yaw)
	}
	if err != nil {
		return nil, err
	}
	if err := g.SetMirror(m); err != nil {
		return nil, err
	}
	return g, nil
}

func printResult(out io.Writer, res *structure.Result) {
	fmt.Fprintf(out, "%s facing %s: %s placed, %s skipped, %s failed\n",
		color.New(color.Bold).Sprint(res.Structure),
		res.Facing,
		color.GreenString("%d", res.Count(structure.Placed)),
		color.YellowString("%d", res.Count(structure.Skipped)),
		color.RedString("%d", res.Count(structure.Failed)),
	)
	for _, d := range res.Diagnostics {
		c := color.YellowString
		if d.Kind != structure.PlacementWarning {
			c = color.RedString
		}
		fmt.Fprintln(out, c("%s", d))
	}
	if res.State == structure.StateFailed {
		fmt.Fprintln(out, color.RedString("generation aborted"))
	}
}
