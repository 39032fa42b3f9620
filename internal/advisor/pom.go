package advisor

import (
	"sort"

	"hadeshelper/internal/catalog"
	"hadeshelper/internal/run"
)

// PomChoice ranks one upgradeable boon for the next Pom of Power.
type PomChoice struct {
	Boon    string   `json:"boon"`
	Level   int      `json:"level"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// PomPriority ranks every acquired boon still below the upgrade ceiling by
// how much a pom would help. Ties keep acquisition order.
func (a *Advisor) PomPriority(st *run.State) []PomChoice {
	var out []PomChoice
	for _, name := range st.Boons {
		boon, ok := a.cat.BoonByName(name)
		if !ok {
			continue
		}
		level := st.BoonLevel(name)
		if level >= run.MaxBoonLevel {
			continue
		}

		c := PomChoice{Boon: name, Level: level, Score: 50}
		switch boon.Slot {
		case catalog.SlotAttack:
			c.Score += 30
			c.Reasons = append(c.Reasons, "attack boon scales your main damage")
		case catalog.SlotSpecial:
			c.Score += 25
			c.Reasons = append(c.Reasons, "special boon is a core damage source")
		case catalog.SlotCast:
			c.Score += 20
			c.Reasons = append(c.Reasons, "cast boon benefits from levels")
		}
		if a.cat.IsDuoPrerequisite(name) {
			c.Score += 15
			c.Reasons = append(c.Reasons, "prerequisite for a duo boon")
		}
		switch {
		case level <= 3:
			c.Score += 15
			c.Reasons = append(c.Reasons, "early levels give the biggest gains")
		case level <= 6:
			c.Score += 8
			c.Reasons = append(c.Reasons, "mid levels still worthwhile")
		}
		switch boon.Tier {
		case "S":
			c.Score += 10
			c.Reasons = append(c.Reasons, "top-tier boon")
		case "A":
			c.Score += 5
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
