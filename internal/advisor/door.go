package advisor

import (
	"fmt"
	"sort"

	"hadeshelper/internal/run"
)

// DoorKind names a chamber reward type.
type DoorKind string

const (
	DoorBoon     DoorKind = "God Boon"
	DoorPom      DoorKind = "Pom of Power"
	DoorHeart    DoorKind = "Centaur Heart"
	DoorHammer   DoorKind = "Daedalus Hammer"
	DoorGold     DoorKind = "Gold"
	DoorChaos    DoorKind = "Chaos Gate"
	DoorShop     DoorKind = "Shop"
	DoorFountain DoorKind = "Fountain"
	DoorTrial    DoorKind = "Trial of the Gods"
	DoorErebus   DoorKind = "Erebus Gate"
	DoorResource DoorKind = "Resource"
)

// DoorOption is one offered exit: a reward kind plus, for boon doors, the
// offering god.
type DoorOption struct {
	Kind DoorKind `json:"kind"`
	God  string   `json:"god,omitempty"`
	Boon string   `json:"boon,omitempty"`
}

// DoorAnalysis is the scored verdict on one door.
type DoorAnalysis struct {
	Kind           DoorKind `json:"kind"`
	God            string   `json:"god,omitempty"`
	Score          int      `json:"score"`
	Priority       string   `json:"priority"`
	Recommendation string   `json:"recommendation"`
	Reasons        []string `json:"reasons"`
}

// AnalyzeDoor scores a single door. Every kind has its own additive rule;
// there is no shared formula across kinds.
func (a *Advisor) AnalyzeDoor(st *run.State, door DoorOption) DoorAnalysis {
	out := DoorAnalysis{Kind: door.Kind, God: door.God}
	score := 50

	switch door.Kind {
	case DoorBoon:
		if duo := a.duoPotential(st, door.God); duo > 0 {
			score += duo
			if duo >= 40 {
				out.Reasons = append(out.Reasons, "can complete a duo boon")
			} else {
				out.Reasons = append(out.Reasons, fmt.Sprintf("progress toward duo (+%d)", duo))
			}
		}
		if leg := a.legendaryPotential(st, door.God); leg > 0 {
			score += leg
			out.Reasons = append(out.Reasons, "progress toward legendary")
		}
		if !st.GodSelected(door.God) {
			score += 15
			out.Reasons = append(out.Reasons, "new god for build variety")
		}
		if st.Room <= 8 && len(st.Boons) < 3 {
			score += 20
			out.Reasons = append(out.Reasons, "early game, need core boons")
		}
		if st.Region == "Tartarus" {
			score += 10
			out.Reasons = append(out.Reasons, "Tartarus, prioritize boons")
		}

	case DoorPom:
		if len(st.Boons) >= 3 {
			score += 20
			out.Reasons = append(out.Reasons, "good boon count for upgrade")
		} else {
			score -= 20
			out.Reasons = append(out.Reasons, "not enough boons yet")
		}

	case DoorHeart:
		switch hp := st.HealthPercent(); {
		case hp < 40:
			score += 50
			out.Reasons = append(out.Reasons, "critical, very low HP")
		case hp < 60:
			score += 30
			out.Reasons = append(out.Reasons, "low HP, strongly consider")
		case hp < 80:
			score += 15
			out.Reasons = append(out.Reasons, "HP could be better")
		default:
			score -= 10
			out.Reasons = append(out.Reasons, "HP is fine, skip for better rewards")
		}

	case DoorHammer:
		switch {
		case st.Hammers == 0:
			score += 45
			out.Reasons = append(out.Reasons, "first hammer, high priority")
		case st.Hammers == 1:
			score += 30
			out.Reasons = append(out.Reasons, "second hammer, good boost")
		default:
			score = 0
			out.Reasons = append(out.Reasons, "already holding two hammers")
		}

	case DoorGold:
		if st.Gold < 100 {
			score += 15
			out.Reasons = append(out.Reasons, "low gold, could use some")
		} else if st.Gold > 300 {
			score -= 20
			out.Reasons = append(out.Reasons, "already have plenty of gold")
		}

	case DoorChaos:
		switch {
		case st.HealthPercent() < 50:
			score -= 40
			out.Reasons = append(out.Reasons, "risky, low HP for the curse")
		case st.RoomsUntilBoss() <= 2:
			score -= 30
			out.Reasons = append(out.Reasons, "risky, boss approaching")
		default:
			score += 25
			out.Reasons = append(out.Reasons, "good risk/reward timing")
		}

	case DoorShop:
		if st.Gold > 200 {
			score += 20
			out.Reasons = append(out.Reasons, "good gold for shopping")
		} else {
			score -= 10
			out.Reasons = append(out.Reasons, "not much gold to spend")
		}

	case DoorFountain:
		if st.HealthPercent() < 70 {
			score += 35
			out.Reasons = append(out.Reasons, "good HP recovery opportunity")
		}

	case DoorTrial:
		switch {
		case len(st.Boons) >= 2 && st.HealthPercent() >= 60:
			score = 65
			out.Reasons = append(out.Reasons, "duo boon potential")
		case st.HealthPercent() < 50:
			score = 35
			out.Reasons = append(out.Reasons, "risky, tough fight on low HP")
		default:
			score = 55
			out.Reasons = append(out.Reasons, "can get rare boons")
		}

	case DoorErebus:
		if st.HealthPercent() >= 70 && st.DeathDefiances >= 2 {
			score = 60
			out.Reasons = append(out.Reasons, "Chthonic Key plus a manageable challenge")
		} else {
			score = 25
			out.Reasons = append(out.Reasons, "too risky for current state")
		}

	case DoorResource:
		score = 35
		out.Reasons = append(out.Reasons, "minor resource benefit")
		if len(st.Boons) < 3 {
			score = 25
			out.Reasons = append(out.Reasons, "need boons more than resources")
		}

	default:
		out.Reasons = append(out.Reasons, "unknown door kind")
	}

	out.Score = score
	out.Priority = doorPriority(score)
	out.Recommendation = doorRecommendation(score)
	return out
}

// CompareDoors scores every offered door and ranks them best first. The sort
// is stable, so equal scores keep the offered order.
func (a *Advisor) CompareDoors(st *run.State, doors []DoorOption) []DoorAnalysis {
	out := make([]DoorAnalysis, 0, len(doors))
	for _, d := range doors {
		out = append(out, a.AnalyzeDoor(st, d))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// duoPotential measures how much a boon from this god moves the build toward
// a duo: 50 when one prerequisite away, 25 when two, capped at 60 across all
// candidate duos.
func (a *Advisor) duoPotential(st *run.State, god string) int {
	score := 0
	for _, duo := range a.cat.DuoBoons {
		inDuo := false
		for _, g := range duo.Gods {
			if g == god {
				inDuo = true
			}
		}
		if !inDuo {
			continue
		}
		othersSelected := true
		for _, g := range duo.Gods {
			if g != god && !st.GodSelected(g) {
				othersSelected = false
			}
		}
		if !othersSelected {
			continue
		}
		missing := 0
		for _, pre := range duo.Prerequisites {
			if !st.HasBoon(pre.Boon) {
				missing++
			}
		}
		switch missing {
		case 1:
			score += 50
		case 2:
			score += 25
		}
	}
	return min(score, 60)
}

func (a *Advisor) legendaryPotential(st *run.State, god string) int {
	score := 0
	for _, leg := range a.cat.LegendaryBoons {
		if leg.God != god {
			continue
		}
		missing := 0
		for _, pre := range leg.Prerequisites {
			if !st.HasBoon(pre.Boon) {
				missing++
			}
		}
		if missing <= 1 {
			score += 30
		}
	}
	return score
}

func doorPriority(score int) string {
	switch {
	case score >= 90:
		return "Take this"
	case score >= 75:
		return "Excellent"
	case score >= 60:
		return "Strong"
	case score >= 40:
		return "Consider"
	case score >= 25:
		return "Weak"
	default:
		return "Skip"
	}
}

func doorRecommendation(score int) string {
	switch {
	case score >= 90:
		return "take this now"
	case score >= 75:
		return "excellent choice"
	case score >= 60:
		return "strong option"
	case score >= 40:
		return "consider it"
	case score >= 25:
		return "only if nothing better"
	default:
		return "skip if possible"
	}
}
