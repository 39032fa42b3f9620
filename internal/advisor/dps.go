package advisor

import (
	"fmt"
	"hash/fnv"
	"sort"

	"hadeshelper/internal/catalog"
	"hadeshelper/internal/run"
)

// DPSEstimate is the theoretical sustained damage of a build.
type DPSEstimate struct {
	DPS              float64 `json:"dps"`
	BaseDamage       float64 `json:"base_damage"`
	Multiplier       float64 `json:"multiplier"`
	AttacksPerSecond float64 `json:"attacks_per_second"`
	CritChance       float64 `json:"crit_chance"`
	Rating           string  `json:"rating"`
}

// EstimateDPS computes theoretical DPS for the current build. Results are
// memoized by a fingerprint of the inputs, so repeated calls against an
// unchanged build are free.
func (a *Advisor) EstimateDPS(st *run.State) DPSEstimate {
	key := a.dpsFingerprint(st)
	a.mu.Lock()
	if est, ok := a.dps[key]; ok {
		a.mu.Unlock()
		return est
	}
	a.mu.Unlock()

	est := a.computeDPS(st)

	a.mu.Lock()
	a.dps[key] = est
	a.mu.Unlock()
	return est
}

// dpsFingerprint hashes every input the DPS formula reads. Boons are hashed
// in sorted order with their levels so the fingerprint does not depend on
// acquisition order.
func (a *Advisor) dpsFingerprint(st *run.State) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d|", st.Weapon, st.Aspect, st.Hammers)
	boons := make([]string, len(st.Boons))
	copy(boons, st.Boons)
	sort.Strings(boons)
	for _, b := range boons {
		fmt.Fprintf(h, "%s=%d|", b, st.BoonLevel(b))
	}
	return h.Sum64()
}

func (a *Advisor) computeDPS(st *run.State) DPSEstimate {
	weapon, ok := a.cat.WeaponByName(st.Weapon)
	if !ok {
		return DPSEstimate{Rating: "No weapon"}
	}

	aspectMult, speedFactor := 1.0, 1.0
	if st.Aspect != "" {
		if asp, ok := a.cat.AspectOf(st.Weapon, st.Aspect); ok {
			aspectMult = asp.Multiplier
			speedFactor = asp.SpeedFactor
		}
	}

	mult := 1.0
	crit := 0.0
	for _, name := range st.Boons {
		boon, ok := a.cat.BoonByName(name)
		if !ok {
			continue
		}
		levelScale := 1 + float64(st.BoonLevel(name)-1)*0.02
		switch boon.Slot {
		case catalog.SlotAttack:
			mult += 0.4 * levelScale
		case catalog.SlotSpecial:
			mult += 0.6 * levelScale
		case catalog.SlotCast:
			mult += 0.2 * levelScale
		}
		if hasTag(boon.Tags, "crit_chance") {
			crit += 0.15
		}
	}
	mult += 0.2 * float64(st.Hammers)

	aps := 0.0
	if weapon.BaseSpeed > 0 {
		aps = 1 / weapon.BaseSpeed
	}
	aps *= speedFactor

	base := weapon.BaseAttack * aspectMult
	dps := base * mult * aps * (1 + crit*2)

	return DPSEstimate{
		DPS:              dps,
		BaseDamage:       base,
		Multiplier:       mult,
		AttacksPerSecond: aps,
		CritChance:       crit,
		Rating:           dpsRating(dps),
	}
}

func dpsRating(dps float64) string {
	switch {
	case dps >= 150:
		return "God-tier"
	case dps >= 100:
		return "Excellent"
	case dps >= 70:
		return "Strong"
	case dps >= 40:
		return "Decent"
	case dps > 0:
		return "Developing"
	default:
		return "No build"
	}
}

// DPSRecommendations names the cheapest moves that would raise the estimate.
func (a *Advisor) DPSRecommendations(st *run.State) []string {
	var out []string
	if st.Weapon == "" {
		return []string{"select a weapon to unlock damage estimates"}
	}
	if !st.HasSlot(catalog.SlotAttack) {
		out = append(out, "an attack boon is the biggest missing multiplier")
	}
	if !st.HasSlot(catalog.SlotSpecial) {
		out = append(out, "a special boon adds the largest per-boon multiplier")
	}
	if st.Hammers == 0 {
		out = append(out, "a Daedalus Hammer adds a flat 20% to the multiplier")
	}
	est := a.EstimateDPS(st)
	if est.CritChance == 0 {
		out = append(out, "no critical chance in the build; Artemis boons double up on damage")
	}
	if st.Aspect == "" {
		out = append(out, "pick a weapon aspect for its damage and speed bonuses")
	}
	return out
}
