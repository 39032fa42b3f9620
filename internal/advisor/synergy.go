package advisor

import (
	"sort"

	"hadeshelper/internal/run"
)

// DuoProgress is the state of one duo or legendary boon's prerequisites.
type DuoProgress struct {
	Name        string   `json:"name"`
	Gods        []string `json:"gods"`
	Description string   `json:"description"`
	Progress    float64  `json:"progress"`
	Acquired    []string `json:"acquired"`
	Missing     []string `json:"missing"`
	Ready       bool     `json:"ready"`
}

// DuoProgress reports prerequisite progress for every duo boon whose gods are
// all in the build. Duos missing a god are omitted entirely rather than shown
// at 0%: a duo you cannot roll is noise, not progress. Sorted by progress,
// descending, stable.
func (a *Advisor) DuoProgress(st *run.State) []DuoProgress {
	var out []DuoProgress
	for _, duo := range a.cat.DuoBoons {
		haveGods := true
		for _, g := range duo.Gods {
			if !st.GodSelected(g) {
				haveGods = false
				break
			}
		}
		if !haveGods {
			continue
		}
		p := DuoProgress{Name: duo.Name, Gods: duo.Gods, Description: duo.Description}
		for _, pre := range duo.Prerequisites {
			if st.HasBoon(pre.Boon) {
				p.Acquired = append(p.Acquired, pre.Boon)
			} else {
				p.Missing = append(p.Missing, pre.Boon)
			}
		}
		total := len(duo.Prerequisites)
		if total > 0 {
			p.Progress = float64(len(p.Acquired)) / float64(total) * 100
		}
		p.Ready = len(p.Missing) == 0
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Progress > out[j].Progress })
	return out
}

// LegendaryProgress applies the duo rule to legendary boons, which need only
// their single god in the build.
func (a *Advisor) LegendaryProgress(st *run.State) []DuoProgress {
	var out []DuoProgress
	for _, leg := range a.cat.LegendaryBoons {
		if !st.GodSelected(leg.God) {
			continue
		}
		p := DuoProgress{Name: leg.Name, Gods: []string{leg.God}, Description: leg.Description}
		for _, pre := range leg.Prerequisites {
			if st.HasBoon(pre.Boon) {
				p.Acquired = append(p.Acquired, pre.Boon)
			} else {
				p.Missing = append(p.Missing, pre.Boon)
			}
		}
		total := len(leg.Prerequisites)
		if total > 0 {
			p.Progress = float64(len(p.Acquired)) / float64(total) * 100
		}
		p.Ready = len(p.Missing) == 0
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Progress > out[j].Progress })
	return out
}

func (a *Advisor) readyDuoCount(st *run.State) int {
	count := 0
	for _, p := range a.DuoProgress(st) {
		if p.Ready {
			count++
		}
	}
	return count
}

func (a *Advisor) readyLegendaryCount(st *run.State) int {
	count := 0
	for _, p := range a.LegendaryProgress(st) {
		if p.Ready {
			count++
		}
	}
	return count
}

// BoonSynergy is the synergy report for one boon in the context of a build.
type BoonSynergy struct {
	Strong        []string      `json:"strong"`
	Weak          []string      `json:"weak"`
	PotentialDuos []DuoProgress `json:"potential_duos"`
	Score         int           `json:"score"`
}

// AnalyzeBoon reports what a boon combines with: duo and legendary boons it
// is a prerequisite of, duos it could still complete given the build's gods,
// and known anti-synergies (knockback interrupting Doom).
func (a *Advisor) AnalyzeBoon(name string, st *run.State) BoonSynergy {
	var out BoonSynergy
	boon, ok := a.cat.BoonByName(name)
	if !ok {
		return out
	}

	for _, duo := range a.cat.DuoBoons {
		isPrereq := false
		for _, pre := range duo.Prerequisites {
			if pre.Boon == name {
				isPrereq = true
				break
			}
		}
		if !isPrereq {
			continue
		}
		out.Strong = append(out.Strong, duo.Name)

		// A potential duo: the partner god is already in the build.
		partnerIn := false
		for _, g := range duo.Gods {
			if g != boon.God && st.GodSelected(g) {
				partnerIn = true
			}
		}
		if !partnerIn {
			continue
		}
		p := DuoProgress{Name: duo.Name, Gods: duo.Gods, Description: duo.Description}
		for _, pre := range duo.Prerequisites {
			held := st.HasBoon(pre.Boon) || pre.Boon == name
			if held {
				p.Acquired = append(p.Acquired, pre.Boon)
			} else {
				p.Missing = append(p.Missing, pre.Boon)
			}
		}
		if total := len(duo.Prerequisites); total > 0 {
			p.Progress = float64(len(p.Acquired)) / float64(total) * 100
		}
		p.Ready = len(p.Missing) == 0
		out.PotentialDuos = append(out.PotentialDuos, p)
	}

	for _, leg := range a.cat.LegendaryBoons {
		for _, pre := range leg.Prerequisites {
			if pre.Boon == name {
				out.Strong = append(out.Strong, leg.Name)
			}
		}
	}

	// Knockback scatters foes before Doom can tick.
	if hasTag(boon.Tags, "knockback") && a.buildHasStatus(st, "Doom") {
		out.Weak = append(out.Weak, "knockback interrupts Doom")
	}
	if boon.StatusEffect == "Doom" && a.buildHasTag(st, "knockback") {
		out.Weak = append(out.Weak, "Doom is interrupted by knockback boons")
	}

	score := len(out.Strong)*10 + len(out.PotentialDuos)*25 - len(out.Weak)*15
	if score < 0 {
		score = 0
	}
	out.Score = score
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (a *Advisor) buildHasStatus(st *run.State, status string) bool {
	for _, name := range st.Boons {
		if b, ok := a.cat.BoonByName(name); ok && b.StatusEffect == status {
			return true
		}
	}
	return false
}

func (a *Advisor) buildHasTag(st *run.State, tag string) bool {
	for _, name := range st.Boons {
		if b, ok := a.cat.BoonByName(name); ok && hasTag(b.Tags, tag) {
			return true
		}
	}
	return false
}

// biomeRate is the chance a room offers a god boon, per region.
var biomeRates = map[string]float64{
	"Tartarus":       0.45,
	"Asphodel":       0.40,
	"Elysium":        0.35,
	"Temple of Styx": 0.25,
}

// DuoForecast estimates how likely a duo boon still is this run.
type DuoForecast struct {
	Name               string   `json:"name"`
	Probability        float64  `json:"probability"`
	MissingGods        []string `json:"missing_gods"`
	RoomsRemaining     int      `json:"rooms_remaining"`
	ExpectedGodRooms   float64  `json:"expected_god_rooms"`
	MissingPrereqCount int      `json:"missing_prereq_count"`
}

// ForecastDuo estimates the odds of completing one duo boon given the rooms
// left in the region and its god-room rate. A rough planning number, capped
// at 80%.
func (a *Advisor) ForecastDuo(st *run.State, duoName string) (DuoForecast, bool) {
	for _, duo := range a.cat.DuoBoons {
		if duo.Name != duoName {
			continue
		}
		out := DuoForecast{Name: duo.Name}
		for _, g := range duo.Gods {
			if !st.GodSelected(g) {
				out.MissingGods = append(out.MissingGods, g)
			}
		}
		for _, pre := range duo.Prerequisites {
			if !st.HasBoon(pre.Boon) {
				out.MissingPrereqCount++
			}
		}
		rate, ok := biomeRates[st.Region]
		if !ok {
			rate = biomeRates["Tartarus"]
		}
		out.RoomsRemaining = st.RoomsUntilBoss()
		out.ExpectedGodRooms = float64(out.RoomsRemaining) * rate
		p := out.ExpectedGodRooms / 10
		if p > 0.8 {
			p = 0.8
		}
		out.Probability = p
		return out, true
	}
	return DuoForecast{}, false
}
