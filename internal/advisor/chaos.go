package advisor

import (
	"strings"

	"hadeshelper/internal/run"
)

// dangerKeywords flag curse texts that touch survivability or damage output.
var dangerKeywords = []string{"damage", "hp", "health", "move speed", "attack speed"}

// ChaosRisk is the verdict on entering a Chaos Gate.
type ChaosRisk struct {
	Score      int      `json:"score"`
	Level      string   `json:"level"`
	ShouldTake bool     `json:"should_take"`
	Warnings   []string `json:"warnings"`
	Benefits   []string `json:"benefits"`
}

// ChaosGateRisk scores the danger of taking a Chaos Gate now, given the curse
// and blessing on offer. Risk accumulates from low health, boss proximity, a
// weak build, and curse text that hits survivability.
func (a *Advisor) ChaosGateRisk(st *run.State, curse, blessing string) ChaosRisk {
	var out ChaosRisk
	risk := 0

	switch hp := st.HealthPercent(); {
	case hp < 40:
		risk += 40
		out.Warnings = append(out.Warnings, "health is critically low for a curse")
	case hp < 60:
		risk += 25
		out.Warnings = append(out.Warnings, "health is low; the entry damage hurts")
	case hp < 80:
		risk += 10
	}

	switch rooms := st.RoomsUntilBoss(); {
	case rooms <= 2:
		risk += 35
		out.Warnings = append(out.Warnings, "boss fight imminent; the curse will still be active")
	case rooms <= 4:
		risk += 20
		out.Warnings = append(out.Warnings, "boss approaching")
	case rooms <= 6:
		risk += 10
	}

	if a.BuildStrength(st).Total < 40 {
		risk += 15
		out.Warnings = append(out.Warnings, "build is too weak to absorb a setback")
	}

	lower := strings.ToLower(curse)
	for _, kw := range dangerKeywords {
		if strings.Contains(lower, kw) {
			risk += 15
			out.Warnings = append(out.Warnings, "curse affects "+kw)
			break
		}
	}

	if risk > 100 {
		risk = 100
	}
	out.Score = risk

	switch {
	case risk >= 70:
		out.Level = "EXTREME"
	case risk >= 50:
		out.Level = "HIGH"
	case risk >= 30:
		out.Level = "MEDIUM"
	default:
		out.Level = "LOW"
	}
	out.ShouldTake = risk < 50

	if blessing != "" {
		out.Benefits = append(out.Benefits, "blessing: "+blessing)
	}
	out.Benefits = append(out.Benefits, "Chaos blessings outscale most Olympian boons once the curse expires")
	if st.RoomsUntilBoss() > 6 {
		out.Benefits = append(out.Benefits, "plenty of rooms to work off the curse before the boss")
	}
	return out
}
