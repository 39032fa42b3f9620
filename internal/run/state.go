// Package run holds the mutable state of one in-progress escape attempt. All
// mutation goes through methods that enforce the state invariants; scoring
// code only ever reads.
package run

import (
	"fmt"

	"hadeshelper/internal/catalog"
)

const (
	// MaxBoonLevel is the pom upgrade ceiling.
	MaxBoonLevel = 10
	// MaxDeathDefiances matches the fully ranked Mirror talent.
	MaxDeathDefiances = 3

	defaultHealth = 100
)

// State is the player's current run. Acquired boons keep insertion order;
// rankings that break ties by acquisition order depend on it.
type State struct {
	Weapon string
	Aspect string
	Gods   []string
	Boons  []string
	Levels map[string]int

	Hammers        int
	CurrentHealth  int
	MaxHealth      int
	Gold           int
	Region         string
	Room           int
	DeathDefiances int
	Heat           int

	Log RoomLog

	cat *catalog.Catalog
	rev uint64
}

// New starts a fresh run in the first region of the catalog's table.
func New(cat *catalog.Catalog) *State {
	region := ""
	if len(cat.Regions) > 0 {
		region = cat.Regions[0].Name
	}
	return &State{
		Levels:         map[string]int{},
		CurrentHealth:  defaultHealth,
		MaxHealth:      defaultHealth,
		Region:         region,
		Room:           1,
		DeathDefiances: MaxDeathDefiances,
		cat:            cat,
	}
}

// Catalog returns the catalog this run was created against.
func (s *State) Catalog() *catalog.Catalog { return s.cat }

// Revision counts mutations; any cached derivation of this state is stale
// once it changes.
func (s *State) Revision() uint64 { return s.rev }

func (s *State) touch() { s.rev++ }

// GodSelected reports whether the god is part of the build.
func (s *State) GodSelected(name string) bool {
	for _, g := range s.Gods {
		if g == name {
			return true
		}
	}
	return false
}

// HasBoon reports whether the boon has been acquired.
func (s *State) HasBoon(name string) bool {
	for _, b := range s.Boons {
		if b == name {
			return true
		}
	}
	return false
}

// SelectGod adds a god to the build. Adding twice is a no-op.
func (s *State) SelectGod(name string) error {
	if _, ok := s.cat.GodByName(name); !ok {
		return fmt.Errorf("unknown god %q", name)
	}
	if s.GodSelected(name) {
		return nil
	}
	s.Gods = append(s.Gods, name)
	s.touch()
	return nil
}

// RemoveGod drops a god and every acquired boon that belongs to them, keeping
// the boon/god invariant intact.
func (s *State) RemoveGod(name string) error {
	if !s.GodSelected(name) {
		return fmt.Errorf("god %q not selected", name)
	}
	kept := s.Gods[:0]
	for _, g := range s.Gods {
		if g != name {
			kept = append(kept, g)
		}
	}
	s.Gods = kept
	boons := s.Boons[:0]
	for _, b := range s.Boons {
		bd, ok := s.cat.BoonByName(b)
		if ok && bd.God == name {
			delete(s.Levels, b)
			continue
		}
		boons = append(boons, b)
	}
	s.Boons = boons
	s.touch()
	return nil
}

// AddBoon acquires a boon at level 1. The boon's god must already be
// selected; a boon can never reference a god outside the build.
func (s *State) AddBoon(name string) error {
	bd, ok := s.cat.BoonByName(name)
	if !ok {
		return fmt.Errorf("unknown boon %q", name)
	}
	if !s.GodSelected(bd.God) {
		return fmt.Errorf("boon %q requires %s, who is not in the build", name, bd.God)
	}
	if s.HasBoon(name) {
		return fmt.Errorf("boon %q already acquired", name)
	}
	s.Boons = append(s.Boons, name)
	s.Levels[name] = 1
	s.touch()
	return nil
}

// RemoveBoon forgets an acquired boon.
func (s *State) RemoveBoon(name string) error {
	if !s.HasBoon(name) {
		return fmt.Errorf("boon %q not acquired", name)
	}
	kept := s.Boons[:0]
	for _, b := range s.Boons {
		if b != name {
			kept = append(kept, b)
		}
	}
	s.Boons = kept
	delete(s.Levels, name)
	s.touch()
	return nil
}

// SelectWeapon picks a weapon and clears any aspect from another weapon.
func (s *State) SelectWeapon(name string) error {
	if _, ok := s.cat.WeaponByName(name); !ok {
		return fmt.Errorf("unknown weapon %q", name)
	}
	s.Weapon = name
	if s.Aspect != "" {
		if _, ok := s.cat.AspectOf(name, s.Aspect); !ok {
			s.Aspect = ""
		}
	}
	s.touch()
	return nil
}

// SelectAspect picks an aspect belonging to the selected weapon.
func (s *State) SelectAspect(name string) error {
	if s.Weapon == "" {
		return fmt.Errorf("select a weapon before an aspect")
	}
	if _, ok := s.cat.AspectOf(s.Weapon, name); !ok {
		return fmt.Errorf("aspect %q does not belong to %s", name, s.Weapon)
	}
	s.Aspect = name
	s.touch()
	return nil
}

// SetHealth updates current and maximum HP. Rejected edits leave the
// previous values in place.
func (s *State) SetHealth(current, maximum int) error {
	if current < 0 || maximum < 0 {
		return fmt.Errorf("health must be non-negative")
	}
	if current > maximum {
		return fmt.Errorf("current health %d exceeds maximum %d", current, maximum)
	}
	s.CurrentHealth = current
	s.MaxHealth = maximum
	s.touch()
	return nil
}

// SetGold updates the obol count.
func (s *State) SetGold(gold int) error {
	if gold < 0 {
		return fmt.Errorf("gold must be non-negative")
	}
	s.Gold = gold
	s.touch()
	return nil
}

// SetHeat updates the pact heat level.
func (s *State) SetHeat(heat int) error {
	if heat < 0 {
		return fmt.Errorf("heat must be non-negative")
	}
	s.Heat = heat
	s.touch()
	return nil
}

// AdvanceRoom increments the room counter and returns the new number.
func (s *State) AdvanceRoom() int {
	s.Room++
	s.touch()
	return s.Room
}

// SetRoom jumps to a room number. Room numbers never move backwards within
// a run.
func (s *State) SetRoom(room int) error {
	if room < s.Room {
		return fmt.Errorf("room number cannot decrease (%d -> %d)", s.Room, room)
	}
	s.Room = room
	s.touch()
	return nil
}

// SetRegion moves the run to a region from the catalog table.
func (s *State) SetRegion(name string) error {
	if _, ok := s.cat.RegionByName(name); !ok {
		return fmt.Errorf("unknown region %q", name)
	}
	s.Region = name
	s.touch()
	return nil
}

// AddHammer records a Daedalus Hammer pickup.
func (s *State) AddHammer() {
	s.Hammers++
	s.touch()
}

// ApplyPom raises an acquired boon's level by one, up to MaxBoonLevel.
func (s *State) ApplyPom(boon string) error {
	if !s.HasBoon(boon) {
		return fmt.Errorf("boon %q not acquired", boon)
	}
	lvl := s.BoonLevel(boon)
	if lvl >= MaxBoonLevel {
		return fmt.Errorf("boon %q already at level %d", boon, MaxBoonLevel)
	}
	s.Levels[boon] = lvl + 1
	s.touch()
	return nil
}

// UseDeathDefiance spends one revive.
func (s *State) UseDeathDefiance() error {
	if s.DeathDefiances <= 0 {
		return fmt.Errorf("no death defiances remaining")
	}
	s.DeathDefiances--
	s.touch()
	return nil
}

// RecordRoom appends an entry to the room-by-room log.
func (s *State) RecordRoom(entry RoomEntry) {
	entry.Number = s.Room
	entry.Region = s.Region
	s.Log.Rooms = append(s.Log.Rooms, entry)
	s.touch()
}

// BoonLevel returns a boon's upgrade level, defaulting to 1.
func (s *State) BoonLevel(name string) int {
	if lvl, ok := s.Levels[name]; ok {
		return lvl
	}
	return 1
}

// AverageBoonLevel is the mean upgrade level across acquired boons, or 1 for
// an empty build.
func (s *State) AverageBoonLevel() float64 {
	if len(s.Boons) == 0 {
		return 1
	}
	sum := 0
	for _, b := range s.Boons {
		sum += s.BoonLevel(b)
	}
	return float64(sum) / float64(len(s.Boons))
}

// HealthPercent is current HP as a percentage of maximum, 0 when maximum
// is 0.
func (s *State) HealthPercent() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return float64(s.CurrentHealth) / float64(s.MaxHealth) * 100
}

// HasSlot reports whether any acquired boon fills the given core slot.
func (s *State) HasSlot(slot catalog.Slot) bool {
	for _, b := range s.Boons {
		if bd, ok := s.cat.BoonByName(b); ok && bd.Slot == slot {
			return true
		}
	}
	return false
}

// RoomsUntilBoss is the distance to the current region's boss room.
func (s *State) RoomsUntilBoss() int {
	return s.cat.RoomsUntilBoss(s.Region, s.Room)
}
