package advisor

import (
	"fmt"

	"hadeshelper/internal/run"
)

// BossReadiness is the pre-fight assessment for the current region's boss.
type BossReadiness struct {
	Boss            string   `json:"boss"`
	RoomsUntil      int      `json:"rooms_until"`
	Score           int      `json:"score"`
	Ready           bool     `json:"ready"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// BossReadiness scores how prepared the build is for the upcoming boss. More
// than three rooms out it returns a stub: the fight is too far away for the
// assessment to mean anything.
func (a *Advisor) BossReadiness(st *run.State) BossReadiness {
	out := BossReadiness{RoomsUntil: st.RoomsUntilBoss()}
	if region, ok := a.cat.RegionByName(st.Region); ok {
		out.Boss = region.Boss
	}
	if out.RoomsUntil > 3 {
		return out
	}

	score := 0
	switch hp := st.HealthPercent(); {
	case hp >= 80:
		score += 30
	case hp >= 60:
		score += 20
		out.Warnings = append(out.Warnings, "health below 80%, consider healing before the fight")
	default:
		score += 10
		out.Warnings = append(out.Warnings, "health critically low for a boss fight")
		out.Recommendations = append(out.Recommendations, "take a fountain or Centaur Heart if offered")
	}

	strength := a.BuildStrength(st)
	score += strength.Offense * 35 / offenseCap
	score += strength.Defense * 25 / defenseCap
	if strength.Offense < offenseCap/2 {
		out.Warnings = append(out.Warnings, "offense is underdeveloped")
		out.Recommendations = append(out.Recommendations, "prioritize attack and special boons")
	}
	if strength.Defense < defenseCap/2 {
		out.Warnings = append(out.Warnings, "defense is underdeveloped")
		out.Recommendations = append(out.Recommendations, "a dash boon helps survive boss patterns")
	}

	switch {
	case len(st.Boons) >= 6:
		score += 10
	case len(st.Boons) >= 4:
		score += 7
		out.Warnings = append(out.Warnings, "build is a little thin")
	default:
		score += 4
		out.Warnings = append(out.Warnings, fmt.Sprintf("only %d boon(s) acquired", len(st.Boons)))
	}

	if score > 100 {
		score = 100
	}
	out.Score = score
	out.Ready = score >= 70
	return out
}
