package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/OCharnyshevich/structure-generator/internal/config"
	"github.com/OCharnyshevich/structure-generator/internal/world"
	"github.com/OCharnyshevich/structure-generator/internal/world/gen"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/host"
)

// Storage handles file-based persistence for config, world overrides and
// generation reports.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "world"),
		filepath.Join(dir, "reports"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// Dir returns the storage root.
func (s *Storage) Dir() string { return s.dir }

// LoadConfig reads config.json into cfg. If the file does not exist, cfg is unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return nil
}

// SaveConfig writes cfg to config.json atomically.
func (s *Storage) SaveConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	return s.atomicWriteJSON(path, cfg)
}

// LoadWorld reads overrides.json and bulk-loads block overrides into the world.
func (s *Storage) LoadWorld(w *world.World) error {
	path := filepath.Join(s.dir, "world", "overrides.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read world overrides: %w", err)
	}

	var wd WorldData
	if err := json.Unmarshal(data, &wd); err != nil {
		return fmt.Errorf("parse world overrides: %w", err)
	}

	overrides := make(map[host.Pos]uint16, len(wd.Overrides))
	for _, o := range wd.Overrides {
		overrides[host.Pos{X: o.X, Y: o.Y, Z: o.Z}] = gen.State(o.ID, o.Meta)
	}

	w.LoadOverrides(overrides)
	s.log.Info("loaded world overrides", "count", len(overrides))
	return nil
}

// SaveWorld writes all block overrides to overrides.json atomically, sorted
// by position so the file is stable across runs.
func (s *Storage) SaveWorld(w *world.World) error {
	wd := WorldData{Overrides: []BlockOverride{}}
	w.ForEachOverride(func(pos host.Pos, id, meta int) {
		wd.Overrides = append(wd.Overrides, BlockOverride{
			X: pos.X, Y: pos.Y, Z: pos.Z, ID: id, Meta: meta,
		})
	})
	sort.Slice(wd.Overrides, func(i, j int) bool {
		a, b := wd.Overrides[i], wd.Overrides[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Z < b.Z
	})

	path := filepath.Join(s.dir, "world", "overrides.json")
	return s.atomicWriteJSON(path, &wd)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeName turns a structure name into a file name stem.
func SafeName(name string) string {
	return unsafeName.ReplaceAllString(name, "_")
}

// ReportPath returns the file a report for the named structure is saved to.
func (s *Storage) ReportPath(name string) string {
	return filepath.Join(s.dir, "reports", SafeName(name)+".json")
}

// SaveReport writes r to reports/<structure>.json atomically.
func (s *Storage) SaveReport(r *Report) error {
	path := s.ReportPath(r.Structure)
	if err := s.atomicWriteJSON(path, r); err != nil {
		return err
	}
	s.log.Info("saved generation report", "path", path, "placed", r.Placed, "diagnostics", len(r.Diagnostics))
	return nil
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	return s.atomicWrite(path, data)
}

// atomicWrite writes data to path using a temp file + rename.
func (s *Storage) atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// WriteFile stores data under name in the storage root atomically.
func (s *Storage) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := s.atomicWrite(path, data); err != nil {
		return "", err
	}
	return path, nil
}
