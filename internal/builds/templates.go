// Package builds saves and loads named build templates: one JSON file per
// template under a templates directory.
package builds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hadeshelper/internal/run"
)

// Template is a reusable build snapshot.
type Template struct {
	Name   string         `json:"name"`
	Weapon string         `json:"weapon"`
	Aspect string         `json:"aspect,omitempty"`
	Gods   []string       `json:"gods"`
	Boons  []string       `json:"boons"`
	Levels map[string]int `json:"pom_levels"`
}

func (t *Template) normalize() {
	if t.Gods == nil {
		t.Gods = []string{}
	}
	if t.Boons == nil {
		t.Boons = []string{}
	}
	if t.Levels == nil {
		t.Levels = map[string]int{}
	}
}

// FromState captures the current run as a named template.
func FromState(name string, st *run.State) Template {
	tpl := Template{
		Name:   name,
		Weapon: st.Weapon,
		Aspect: st.Aspect,
		Gods:   append([]string{}, st.Gods...),
		Boons:  append([]string{}, st.Boons...),
		Levels: map[string]int{},
	}
	for boon, level := range st.Levels {
		tpl.Levels[boon] = level
	}
	return tpl
}

// Apply replays the template onto a fresh run state. Entries the catalog does
// not know are skipped rather than failing the whole load.
func (t Template) Apply(st *run.State) {
	if t.Weapon != "" {
		_ = st.SelectWeapon(t.Weapon)
	}
	if t.Aspect != "" {
		_ = st.SelectAspect(t.Aspect)
	}
	for _, god := range t.Gods {
		_ = st.SelectGod(god)
	}
	for _, boon := range t.Boons {
		if err := st.AddBoon(boon); err != nil {
			continue
		}
		for lvl := 1; lvl < t.Levels[boon]; lvl++ {
			if err := st.ApplyPom(boon); err != nil {
				break
			}
		}
	}
}

// Dir manages the template directory.
type Dir struct {
	path string
}

// NewDir opens (creating if needed) a template directory.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating template dir: %w", err)
	}
	return &Dir{path: path}, nil
}

// Save writes the template as <name>.json. The name is sanitized for use as
// a file name; an empty result is rejected.
func (d *Dir) Save(tpl Template) error {
	name := sanitize(tpl.Name)
	if name == "" {
		return fmt.Errorf("template name %q is empty after sanitizing", tpl.Name)
	}
	tpl.normalize()
	data, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template %s: %w", name, err)
	}
	path := filepath.Join(d.path, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a template by name. Missing optional fields get defaults.
func (d *Dir) Load(name string) (Template, error) {
	clean := sanitize(name)
	if clean == "" {
		return Template{}, fmt.Errorf("template name %q is empty after sanitizing", name)
	}
	path := filepath.Join(d.path, clean+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading template %s: %w", clean, err)
	}
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return Template{}, fmt.Errorf("parsing template %s: %w", clean, err)
	}
	if tpl.Name == "" {
		tpl.Name = clean
	}
	tpl.normalize()
	return tpl, nil
}

// Delete removes a template by name.
func (d *Dir) Delete(name string) error {
	clean := sanitize(name)
	if clean == "" {
		return fmt.Errorf("template name %q is empty after sanitizing", name)
	}
	return os.Remove(filepath.Join(d.path, clean+".json"))
}

// List names every stored template, sorted.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out, nil
}

// sanitize reduces a template name to letters, digits, spaces, hyphens, and
// underscores, then trims it. Path separators and dots can never reach the
// filesystem.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
