package advisor

import (
	"fmt"

	"hadeshelper/internal/catalog"
	"hadeshelper/internal/run"
)

// Sub-score caps. The total is the sum of the four capped parts, so it can
// never exceed 100.
const (
	offenseCap     = 40
	defenseCap     = 25
	utilityCap     = 20
	consistencyCap = 15
)

// Strength is the overall build score with its capped sub-scores.
type Strength struct {
	Total       int      `json:"total"`
	Offense     int      `json:"offense"`
	Defense     int      `json:"defense"`
	Utility     int      `json:"utility"`
	Consistency int      `json:"consistency"`
	Rating      string   `json:"rating"`
	Breakdown   []string `json:"breakdown"`
}

// BuildStrength scores the current build 0-100.
func (a *Advisor) BuildStrength(st *run.State) Strength {
	var out Strength

	// Offense
	offense := 0
	if st.HasSlot(catalog.SlotAttack) {
		offense += 12
		out.Breakdown = append(out.Breakdown, "attack boon acquired")
	} else {
		out.Breakdown = append(out.Breakdown, "missing attack boon")
	}
	if st.HasSlot(catalog.SlotSpecial) {
		offense += 10
		out.Breakdown = append(out.Breakdown, "special boon acquired")
	}
	if st.HasSlot(catalog.SlotCast) {
		offense += 8
	}
	if st.Hammers >= 1 {
		offense += 5 * st.Hammers
		out.Breakdown = append(out.Breakdown, fmt.Sprintf("%d hammer upgrade(s) held", st.Hammers))
	} else {
		out.Breakdown = append(out.Breakdown, "no Daedalus Hammer yet")
	}
	duos := a.readyDuoCount(st)
	offense += duos * 3
	offense += a.readyLegendaryCount(st) * 2
	if duos > 0 {
		out.Breakdown = append(out.Breakdown, fmt.Sprintf("%d duo boon(s) online", duos))
	}
	out.Offense = min(offense, offenseCap)

	// Defense
	defense := 0
	if st.HasSlot(catalog.SlotDash) {
		defense += 8
		out.Breakdown = append(out.Breakdown, "dash boon acquired")
	} else {
		out.Breakdown = append(out.Breakdown, "no dash boon")
	}
	if st.HasSlot(catalog.SlotCall) {
		defense += 7
		out.Breakdown = append(out.Breakdown, "call boon acquired")
	}
	switch hp := st.HealthPercent(); {
	case hp >= 80:
		defense += 10
	case hp >= 60:
		defense += 7
	case hp >= 40:
		defense += 4
	default:
		defense += 2
		out.Breakdown = append(out.Breakdown, "low health")
	}
	out.Defense = min(defense, defenseCap)

	// Utility
	utility := min(len(st.Gods)*3, 12)
	utility += min(len(st.Boons), 8)
	out.Utility = min(utility, utilityCap)

	// Consistency
	consistency := min(int((st.AverageBoonLevel()-1)*3), 10)
	if a.hasGodSynergy(st) {
		consistency += 5
		out.Breakdown = append(out.Breakdown, "strong boon synergy")
	}
	out.Consistency = min(consistency, consistencyCap)

	out.Total = out.Offense + out.Defense + out.Utility + out.Consistency
	out.Rating = strengthRating(out.Total)
	return out
}

func strengthRating(total int) string {
	switch {
	case total >= 85:
		return "Godlike"
	case total >= 70:
		return "Excellent"
	case total >= 55:
		return "Strong"
	case total >= 40:
		return "Decent"
	default:
		return "Developing"
	}
}

// hasGodSynergy matches the fixed god-pair rules, or any single god covering
// both the attack and special slots.
func (a *Advisor) hasGodSynergy(st *run.State) bool {
	pairs := [][2]string{
		{"Zeus", "Poseidon"},
		{"Artemis", "Aphrodite"},
		{"Ares", "Athena"},
	}
	for _, p := range pairs {
		if st.GodSelected(p[0]) && st.GodSelected(p[1]) {
			return true
		}
	}
	for _, god := range st.Gods {
		hasAttack, hasSpecial := false, false
		for _, name := range st.Boons {
			b, ok := a.cat.BoonByName(name)
			if !ok || b.God != god {
				continue
			}
			switch b.Slot {
			case catalog.SlotAttack:
				hasAttack = true
			case catalog.SlotSpecial:
				hasSpecial = true
			}
		}
		if hasAttack && hasSpecial {
			return true
		}
	}
	return false
}
