package catalog

// Slot identifies which core ability a boon occupies. The original data
// inferred this from name substrings ("Strike", "Flourish", ...); here it is
// an explicit field on every catalog entry.
type Slot string

const (
	SlotAttack  Slot = "attack"
	SlotSpecial Slot = "special"
	SlotDash    Slot = "dash"
	SlotCast    Slot = "cast"
	SlotCall    Slot = "call"
	SlotUtility Slot = "utility"
)

// Tier is a display-weighting rank (S best, D worst).
type Tier string

// God is an Olympian (or Chaos) who offers boons.
type God struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	CoreSlots   []Slot `yaml:"coreSlots"`
}

// Aspect is a weapon variant altering its base stats.
type Aspect struct {
	Name        string  `yaml:"name"`
	Multiplier  float64 `yaml:"multiplier"`  // damage multiplier vs. base
	SpeedFactor float64 `yaml:"speedFactor"` // attack-rate multiplier vs. base
	Strategy    string  `yaml:"strategy"`
}

// Weapon is one of the six Infernal Arms. BaseSpeed is the interval between
// attacks in seconds; attacks per second is its inverse.
type Weapon struct {
	Name       string   `yaml:"name"`
	BaseAttack float64  `yaml:"baseAttack"`
	BaseSpeed  float64  `yaml:"baseSpeed"`
	Focus      Slot     `yaml:"focus"`
	Aspects    []Aspect `yaml:"aspects"`
}

// Boon is a single god-granted ability.
type Boon struct {
	Name          string   `yaml:"name"`
	God           string   `yaml:"god"`
	Slot          Slot     `yaml:"slot"`
	Description   string   `yaml:"description"`
	Tags          []string `yaml:"tags,omitempty"`
	StatusEffect  string   `yaml:"statusEffect,omitempty"`
	Tier          Tier     `yaml:"tier"`
	WeaponSynergy []string `yaml:"weaponSynergy,omitempty"`
}

// Prerequisite names one boon from one god that must be held.
type Prerequisite struct {
	God  string `yaml:"god"`
	Boon string `yaml:"boon"`
}

// DuoBoon unlocks when boons from both of its gods are held.
type DuoBoon struct {
	Name          string         `yaml:"name"`
	Gods          []string       `yaml:"gods"`
	Description   string         `yaml:"description"`
	Prerequisites []Prerequisite `yaml:"prerequisites"`
	Tier          Tier           `yaml:"tier"`
}

// LegendaryBoon is a single-god ability behind one prerequisite boon.
type LegendaryBoon struct {
	Name          string         `yaml:"name"`
	God           string         `yaml:"god"`
	Description   string         `yaml:"description"`
	Prerequisites []Prerequisite `yaml:"prerequisites"`
	Tier          Tier           `yaml:"tier"`
}

// MirrorTalent is a permanent Mirror of Night upgrade.
type MirrorTalent struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	MaxRank     int    `yaml:"maxRank"`
	Alternative string `yaml:"alternative,omitempty"`
}

// Region is one biome of the underworld. BossRoom is the absolute room number
// at which its boss is fought.
type Region struct {
	Name     string `yaml:"name"`
	BossRoom int    `yaml:"bossRoom"`
	Boss     string `yaml:"boss"`
}
