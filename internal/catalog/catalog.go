// Package catalog holds the static game data: gods, weapons and their
// aspects, boons, duo and legendary boons, Mirror of Night talents, and the
// region table. The catalog is immutable once loaded and is passed explicitly
// to everything that scores against it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Catalog is the full static data set plus name indexes built at load time.
type Catalog struct {
	Gods           []God           `yaml:"gods"`
	Weapons        []Weapon        `yaml:"weapons"`
	Boons          []Boon          `yaml:"boons"`
	DuoBoons       []DuoBoon       `yaml:"duoBoons"`
	LegendaryBoons []LegendaryBoon `yaml:"legendaryBoons"`
	MirrorTalents  []MirrorTalent  `yaml:"mirrorTalents"`
	Regions        []Region        `yaml:"regions"`

	godIndex    map[string]int
	weaponIndex map[string]int
	boonIndex   map[string]int
	regionIndex map[string]int
	duoPrereqs  map[string]bool
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// LoadFile loads a catalog from a YAML document on disk.
func LoadFile(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path is cleaned and validated
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a YAML catalog document, builds the indexes, and validates
// reference integrity.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c.buildIndexes()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) buildIndexes() {
	c.godIndex = make(map[string]int, len(c.Gods))
	for i, g := range c.Gods {
		c.godIndex[g.Name] = i
	}
	c.weaponIndex = make(map[string]int, len(c.Weapons))
	for i, w := range c.Weapons {
		c.weaponIndex[w.Name] = i
	}
	c.boonIndex = make(map[string]int, len(c.Boons))
	for i, b := range c.Boons {
		c.boonIndex[b.Name] = i
	}
	c.regionIndex = make(map[string]int, len(c.Regions))
	for i, r := range c.Regions {
		c.regionIndex[r.Name] = i
	}
	c.duoPrereqs = make(map[string]bool)
	for _, d := range c.DuoBoons {
		for _, p := range d.Prerequisites {
			c.duoPrereqs[p.Boon] = true
		}
	}
}

// Validate checks that every boon, god, and weapon referenced anywhere in the
// catalog resolves to a real entry. The original data set was not consistent
// about this; here a dangling reference is a load error.
func (c *Catalog) Validate() error {
	for _, b := range c.Boons {
		if _, ok := c.godIndex[b.God]; !ok {
			return fmt.Errorf("boon %q: unknown god %q", b.Name, b.God)
		}
		for _, w := range b.WeaponSynergy {
			if _, ok := c.weaponIndex[w]; !ok {
				return fmt.Errorf("boon %q: unknown weapon %q", b.Name, w)
			}
		}
	}
	for _, d := range c.DuoBoons {
		if len(d.Gods) != 2 {
			return fmt.Errorf("duo boon %q: needs exactly two gods", d.Name)
		}
		for _, g := range d.Gods {
			if _, ok := c.godIndex[g]; !ok {
				return fmt.Errorf("duo boon %q: unknown god %q", d.Name, g)
			}
		}
		if err := c.checkPrereqs(d.Name, d.Prerequisites); err != nil {
			return err
		}
	}
	for _, l := range c.LegendaryBoons {
		if _, ok := c.godIndex[l.God]; !ok {
			return fmt.Errorf("legendary boon %q: unknown god %q", l.Name, l.God)
		}
		if err := c.checkPrereqs(l.Name, l.Prerequisites); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) checkPrereqs(owner string, prereqs []Prerequisite) error {
	for _, p := range prereqs {
		b, ok := c.BoonByName(p.Boon)
		if !ok {
			return fmt.Errorf("%s: prerequisite boon %q not in catalog", owner, p.Boon)
		}
		if b.God != p.God {
			return fmt.Errorf("%s: prerequisite %q belongs to %s, not %s", owner, p.Boon, b.God, p.God)
		}
	}
	return nil
}

// GodByName looks up a god.
func (c *Catalog) GodByName(name string) (God, bool) {
	i, ok := c.godIndex[name]
	if !ok {
		return God{}, false
	}
	return c.Gods[i], true
}

// WeaponByName looks up a weapon.
func (c *Catalog) WeaponByName(name string) (Weapon, bool) {
	i, ok := c.weaponIndex[name]
	if !ok {
		return Weapon{}, false
	}
	return c.Weapons[i], true
}

// AspectOf looks up an aspect of a specific weapon.
func (c *Catalog) AspectOf(weapon, aspect string) (Aspect, bool) {
	w, ok := c.WeaponByName(weapon)
	if !ok {
		return Aspect{}, false
	}
	for _, a := range w.Aspects {
		if a.Name == aspect {
			return a, true
		}
	}
	return Aspect{}, false
}

// BoonByName looks up a boon.
func (c *Catalog) BoonByName(name string) (Boon, bool) {
	i, ok := c.boonIndex[name]
	if !ok {
		return Boon{}, false
	}
	return c.Boons[i], true
}

// RegionByName looks up a region.
func (c *Catalog) RegionByName(name string) (Region, bool) {
	i, ok := c.regionIndex[name]
	if !ok {
		return Region{}, false
	}
	return c.Regions[i], true
}

// RoomsUntilBoss reports how many rooms remain before the region's boss.
// Unknown regions fall back to the first region's table entry, matching the
// original's Tartarus default. Never negative.
func (c *Catalog) RoomsUntilBoss(region string, room int) int {
	bossRoom := 14
	if r, ok := c.RegionByName(region); ok {
		bossRoom = r.BossRoom
	} else if len(c.Regions) > 0 {
		bossRoom = c.Regions[0].BossRoom
	}
	if left := bossRoom - room; left > 0 {
		return left
	}
	return 0
}

// IsDuoPrerequisite reports whether the boon unlocks at least one duo boon.
func (c *Catalog) IsDuoPrerequisite(boon string) bool {
	return c.duoPrereqs[boon]
}

// BoonsOf returns every boon offered by the god, in catalog order.
func (c *Catalog) BoonsOf(god string) []Boon {
	var out []Boon
	for _, b := range c.Boons {
		if b.God == god {
			out = append(out, b)
		}
	}
	return out
}
