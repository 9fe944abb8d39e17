package config

import (
	"fmt"

	"github.com/OCharnyshevich/structure-generator/pkg/structure"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// Config holds the generator configuration.
type Config struct {
	RealIDCeiling   int     `json:"real_id_ceiling"`
	MinY            int     `json:"min_y"`
	MaxY            int     `json:"max_y"`
	SuppressUpdates bool    `json:"suppress_updates"`
	Anchor          string  `json:"anchor"`     // "corner" or "center"
	YawOffset       float64 `json:"yaw_offset"` // shifts the yaw partition used by player facing
	CavityRadius    int     `json:"cavity_radius"`

	Seed          int64  `json:"seed"`
	GeneratorType string `json:"generator_type"` // "flat", "void" or "hills"

	Catalog string `json:"catalog"`  // local pack directory holding structures.yaml
	PackURL string `json:"pack_url"` // go-getter source fetched into Catalog
	OutDir  string `json:"out_dir"`

	// ExportAnvil also writes the world as Anvil region files under out_dir/region.
	ExportAnvil bool `json:"export_anvil"`

	Structure string `json:"structure"`
	Facing    string `json:"facing"` // empty draws a facing from the seed
	Mirror    string `json:"mirror"` // "none", "x" or "z"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RealIDCeiling:   structure.DefaultRealIDCeiling,
		MinY:            0,
		MaxY:            255,
		SuppressUpdates: true,
		Anchor:          "corner",
		YawOffset:       45,
		CavityRadius:    4,
		GeneratorType:   "flat",
		OutDir:          "./out",
		Structure:       "Tutorial Home",
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["real-id-ceiling"] {
		cfg.RealIDCeiling = fromFile.RealIDCeiling
	}
	if !explicitFlags["min-y"] {
		cfg.MinY = fromFile.MinY
	}
	if !explicitFlags["max-y"] {
		cfg.MaxY = fromFile.MaxY
	}
	if !explicitFlags["suppress-updates"] {
		cfg.SuppressUpdates = fromFile.SuppressUpdates
	}
	if !explicitFlags["anchor"] {
		cfg.Anchor = fromFile.Anchor
	}
	if !explicitFlags["yaw-offset"] {
		cfg.YawOffset = fromFile.YawOffset
	}
	if !explicitFlags["cavity-radius"] {
		cfg.CavityRadius = fromFile.CavityRadius
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["catalog"] {
		cfg.Catalog = fromFile.Catalog
	}
	if !explicitFlags["pack-url"] {
		cfg.PackURL = fromFile.PackURL
	}
	if !explicitFlags["out"] {
		cfg.OutDir = fromFile.OutDir
	}
	if !explicitFlags["anvil"] {
		cfg.ExportAnvil = fromFile.ExportAnvil
	}
	if !explicitFlags["structure"] {
		cfg.Structure = fromFile.Structure
	}
	if !explicitFlags["facing"] {
		cfg.Facing = fromFile.Facing
	}
	if !explicitFlags["mirror"] {
		cfg.Mirror = fromFile.Mirror
	}
}

// GeneratorOptions converts the placement knobs to structure.Options.
func (c *Config) GeneratorOptions() (structure.Options, error) {
	anchor, err := structure.ParseAnchor(c.Anchor)
	if err != nil {
		return structure.Options{}, err
	}
	return structure.Options{
		RealIDCeiling:   c.RealIDCeiling,
		MinY:            c.MinY,
		MaxY:            c.MaxY,
		SuppressUpdates: c.SuppressUpdates,
		Anchor:          anchor,
		YawOffset:       c.YawOffset,
	}, nil
}

// Orientation parses the requested facing and mirror. ok is false when no
// facing is configured.
func (c *Config) Orientation() (f orient.Facing, ok bool, m orient.Mirror, err error) {
	if m, err = orient.ParseMirror(c.Mirror); err != nil {
		return 0, false, 0, fmt.Errorf("config mirror: %w", err)
	}
	if c.Facing == "" {
		return 0, false, m, nil
	}
	if f, err = orient.ParseFacing(c.Facing); err != nil {
		return 0, false, 0, fmt.Errorf("config facing: %w", err)
	}
	return f, true, m, nil
}
