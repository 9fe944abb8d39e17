// Package catalog loads named structures from a template pack: a YAML
// manifest listing structures and the JSONC template files they stack.
//
// A manifest looks like:
//
//	structures:
//	  - name: Tutorial Home
//	    facing: west
//	    templates:
//	      - file: home/ground.jsonc
//	      - file: home/roof.jsonc
//	        offset: [0, 4, 0]
//
// and a template file like:
//
//	{
//	  "name": "ground",
//	  // y, then x, then z; every cell is [id, meta, data1, data2]
//	  "layers": [[[[5], [5, 0]], [[4], [-1]]]]
//	}
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/muhammadmuzzammil1998/jsonc"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/structure-generator/pkg/structure"
	"github.com/OCharnyshevich/structure-generator/pkg/structure/orient"
)

// DefaultManifest is the manifest file name looked up at the root of a pack.
const DefaultManifest = "structures.yaml"

var ErrNotFound = errors.New("structure not found")

// Manifest is the decoded YAML manifest.
type Manifest struct {
	Structures []StructureEntry `yaml:"structures"`
}

type StructureEntry struct {
	Name      string          `yaml:"name"`
	Facing    string          `yaml:"facing"`
	Offset    []int           `yaml:"offset"`
	Templates []TemplateEntry `yaml:"templates"`
}

type TemplateEntry struct {
	File string `yaml:"file"`
	// Facing overrides the structure facing for this template only.
	Facing string `yaml:"facing"`
	Offset []int  `yaml:"offset"`
}

// templateFile is the JSONC template document.
type templateFile struct {
	Name   string      `json:"name"`
	Facing string      `json:"facing"`
	Layers [][][][]int `json:"layers"`
}

// Catalog holds structures by name. Lookups ignore case.
type Catalog struct {
	byName map[string]*structure.Structure
	names  []string
}

func New() *Catalog {
	return &Catalog{byName: make(map[string]*structure.Structure)}
}

func key(name string) string {
	return cases.Fold().String(name)
}

// Add registers s under its name. Names must be unique ignoring case.
func (c *Catalog) Add(s *structure.Structure) error {
	if s == nil {
		return fmt.Errorf("%w: nil structure", structure.ErrConfig)
	}
	k := key(s.Name())
	if _, dup := c.byName[k]; dup {
		return fmt.Errorf("%w: duplicate structure %q", structure.ErrConfig, s.Name())
	}
	c.byName[k] = s
	c.names = append(c.names, s.Name())
	return nil
}

// Get returns the structure called name.
func (c *Catalog) Get(name string) (*structure.Structure, error) {
	s, ok := c.byName[key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// Names returns the structure names in sorted order.
func (c *Catalog) Names() []string {
	names := append([]string(nil), c.names...)
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int { return len(c.names) }

// Load reads the manifest at name from fsys and every template it lists.
// Template paths are relative to the manifest's directory.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", name, err)
	}

	c := New()
	dir := path.Dir(name)
	for i, e := range m.Structures {
		s, err := buildStructure(fsys, dir, e)
		if err != nil {
			return nil, fmt.Errorf("manifest %s structure %d: %w", name, i, err)
		}
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func buildStructure(fsys fs.FS, dir string, e StructureEntry) (*structure.Structure, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("%w: structure without a name", structure.ErrConfig)
	}
	if len(e.Templates) == 0 {
		return nil, fmt.Errorf("%w: structure %q has no templates", structure.ErrConfig, e.Name)
	}
	s := structure.NewStructure(e.Name)
	if e.Facing != "" {
		f, err := orient.ParseFacing(e.Facing)
		if err != nil {
			return nil, fmt.Errorf("%w: structure %q: %v", structure.ErrConfig, e.Name, err)
		}
		if err := s.SetFacing(f); err != nil {
			return nil, err
		}
	}
	dx, dy, dz, err := offset(e.Offset)
	if err != nil {
		return nil, fmt.Errorf("structure %q: %w", e.Name, err)
	}
	s.SetOffset(dx, dy, dz)

	for _, te := range e.Templates {
		t, err := LoadTemplate(fsys, path.Join(dir, te.File))
		if err != nil {
			return nil, err
		}
		if te.Facing != "" {
			f, err := orient.ParseFacing(te.Facing)
			if err != nil {
				return nil, fmt.Errorf("%w: template %s: %v", structure.ErrConfig, te.File, err)
			}
			if t, err = t.WithFacing(f); err != nil {
				return nil, err
			}
		}
		dx, dy, dz, err := offset(te.Offset)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", te.File, err)
		}
		if err := s.AddTemplate(t.WithOffset(dx, dy, dz)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func offset(v []int) (dx, dy, dz int, err error) {
	switch len(v) {
	case 0:
		return 0, 0, 0, nil
	case 3:
		return v[0], v[1], v[2], nil
	}
	return 0, 0, 0, fmt.Errorf("%w: offset needs 3 values, got %d", structure.ErrConfig, len(v))
}

// LoadTemplate reads one JSONC template file. A template without a name
// is named after its file.
func LoadTemplate(fsys fs.FS, name string) (*structure.Template, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return ParseTemplate(name, raw)
}

// ParseTemplate decodes a JSONC template document.
func ParseTemplate(name string, raw []byte) (*structure.Template, error) {
	var tf templateFile
	if err := jsonc.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("%w: decode template %s: %v", structure.ErrConfig, name, err)
	}
	if tf.Name == "" {
		tf.Name = path.Base(name)
	}
	t, err := structure.NewTemplateFromInts(tf.Name, tf.Layers)
	if err != nil {
		return nil, err
	}
	if tf.Facing == "" {
		return t, nil
	}
	f, err := orient.ParseFacing(tf.Facing)
	if err != nil {
		return nil, fmt.Errorf("%w: template %s: %v", structure.ErrConfig, name, err)
	}
	return t.WithFacing(f)
}
