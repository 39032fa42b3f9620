package advisor

import (
	"fmt"
	"sort"

	"hadeshelper/internal/catalog"
	"hadeshelper/internal/run"
)

// BoonRecommendation ranks one not-yet-acquired boon.
type BoonRecommendation struct {
	Boon    string   `json:"boon"`
	God     string   `json:"god"`
	Score   int      `json:"score"`
	Tier    string   `json:"tier"`
	Reasons []string `json:"reasons"`
}

// RecommendFromGod ranks the god's unacquired boons for the current build and
// returns the top five.
func (a *Advisor) RecommendFromGod(st *run.State, god string) []BoonRecommendation {
	var out []BoonRecommendation
	for _, boon := range a.cat.BoonsOf(god) {
		if st.HasBoon(boon.Name) {
			continue
		}
		r := BoonRecommendation{Boon: boon.Name, God: god, Score: 50}

		if len(st.Boons) < 2 && (boon.Slot == catalog.SlotAttack || boon.Slot == catalog.SlotSpecial) {
			r.Score += 40
			r.Reasons = append(r.Reasons, "critical early boon")
		}
		if !st.HasSlot(catalog.SlotAttack) && (boon.Slot == catalog.SlotAttack || boon.Slot == catalog.SlotCast) {
			r.Score += 30
			r.Reasons = append(r.Reasons, "build is missing attack damage")
		}
		if weapon, ok := a.cat.WeaponByName(st.Weapon); ok && boon.Slot == weapon.Focus {
			r.Score += 20
			r.Reasons = append(r.Reasons, fmt.Sprintf("matches the %s's focus", weapon.Name))
		}
		if st.Weapon != "" && hasString(boon.WeaponSynergy, st.Weapon) {
			r.Score += 20
			r.Reasons = append(r.Reasons, "known weapon synergy")
		}
		for _, duo := range a.AnalyzeBoon(boon.Name, st).PotentialDuos {
			if duo.Ready {
				r.Score += 50
				r.Reasons = append(r.Reasons, "completes "+duo.Name)
			}
		}

		r.Score = min(r.Score, 100)
		r.Tier = recommendationTier(r.Score)
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// SmartChoice is the verdict over a set of offered boons.
type SmartChoice struct {
	Recommended string         `json:"recommended"`
	Score       int            `json:"score"`
	Reason      string         `json:"reason"`
	AllScores   map[string]int `json:"all_scores"`
}

// BestOffered scores each offered boon against the current situation and
// picks the highest. Offered order breaks ties.
func (a *Advisor) BestOffered(st *run.State, offered []string) SmartChoice {
	out := SmartChoice{AllScores: map[string]int{}}
	best := -1
	for _, name := range offered {
		score := a.scoreBoonForSituation(st, name)
		out.AllScores[name] = score
		if score > best {
			best = score
			out.Recommended = name
			out.Score = score
		}
	}
	if out.Recommended != "" {
		out.Reason = a.explainChoice(st, out.Recommended)
	}
	return out
}

// scoreBoonForSituation rates a single boon 0-100 for the current run:
// missing core slots first, then survival, boss proximity, duo progress,
// weapon fit, and game phase. Unknown boons score zero.
func (a *Advisor) scoreBoonForSituation(st *run.State, name string) int {
	boon, ok := a.cat.BoonByName(name)
	if !ok {
		return 0
	}
	score := 50

	switch {
	case boon.Slot == catalog.SlotAttack && !st.HasSlot(catalog.SlotAttack):
		score += 50
	case boon.Slot == catalog.SlotCast && !st.HasSlot(catalog.SlotCast):
		score += 50
	case boon.Slot == catalog.SlotSpecial && !st.HasSlot(catalog.SlotSpecial):
		score += 45
	case boon.Slot == catalog.SlotDash && !st.HasSlot(catalog.SlotDash):
		score += 40
	}

	if st.HealthPercent() < 40 && (boon.Slot == catalog.SlotDash || hasTag(boon.Tags, "deflect")) {
		score += 30
	}

	if st.RoomsUntilBoss() <= 3 {
		switch boon.Slot {
		case catalog.SlotAttack, catalog.SlotSpecial, catalog.SlotCast:
			score += 25
		}
	}

	for _, duo := range a.AnalyzeBoon(name, st).PotentialDuos {
		if duo.Ready {
			score += 60
		} else if duo.Progress >= 70 {
			score += 30
		}
	}

	if st.Weapon != "" && hasString(boon.WeaponSynergy, st.Weapon) {
		score += 20
	}

	switch count := len(st.Boons); {
	case count < 3:
		if boon.Slot == catalog.SlotAttack || boon.Slot == catalog.SlotSpecial {
			score += 20
		}
	case count <= 7:
		if st.GodSelected(boon.God) {
			score += 15
		}
	default:
		if boon.Tier == "S" {
			score += 20
		}
	}

	return min(score, 100)
}

func (a *Advisor) explainChoice(st *run.State, name string) string {
	boon, ok := a.cat.BoonByName(name)
	if !ok {
		return "unknown boon"
	}
	if boon.Slot == catalog.SlotAttack && !st.HasSlot(catalog.SlotAttack) {
		return "fills the empty attack slot"
	}
	if st.HealthPercent() < 40 && (boon.Slot == catalog.SlotDash || hasTag(boon.Tags, "deflect")) {
		return "defensive pick while health is low"
	}
	for _, duo := range a.AnalyzeBoon(name, st).PotentialDuos {
		if duo.Ready {
			return "completes the " + duo.Name + " duo boon"
		}
	}
	if rooms := st.RoomsUntilBoss(); rooms <= 3 {
		return fmt.Sprintf("damage boost with the boss %d room(s) away", rooms)
	}
	if st.Weapon != "" {
		return "good fit for the " + st.Weapon
	}
	return "solid pick for the current build"
}

func recommendationTier(score int) string {
	switch {
	case score >= 90:
		return "S"
	case score >= 70:
		return "A"
	case score >= 50:
		return "B"
	default:
		return "C"
	}
}

func hasString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
