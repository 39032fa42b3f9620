package advisor

// PactRank is one Pact of Punishment condition with the rank to set.
type PactRank struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// HeatStrategy is a concrete pact configuration for a target heat level.
type HeatStrategy struct {
	Target     int        `json:"target"`
	Total      int        `json:"total"`
	Config     []PactRank `json:"config"`
	Difficulty string     `json:"difficulty"`
	Tips       []string   `json:"tips"`
}

// pactOrder ranks pact conditions from least to most disruptive; rank counts
// double as heat. Filled greedily in this order until the target is met.
var pactOrder = []PactRank{
	{Name: "Hard Labor", Rank: 5},
	{Name: "Lasting Consequences", Rank: 4},
	{Name: "Convenience Fee", Rank: 2},
	{Name: "Jury Summons", Rank: 3},
	{Name: "Middle Management", Rank: 1},
	{Name: "Extreme Measures", Rank: 4},
	{Name: "Heightened Security", Rank: 1},
	{Name: "Routine Inspection", Rank: 4},
	{Name: "Damage Control", Rank: 2},
	{Name: "Approval Process", Rank: 2},
	{Name: "Tight Deadline", Rank: 3},
	{Name: "Underworld Customs", Rank: 1},
	{Name: "Forced Overtime", Rank: 2},
}

// PlanHeat builds a pact configuration reaching the target heat, preferring
// the least disruptive conditions first. Targets beyond the table's capacity
// max everything out.
func (a *Advisor) PlanHeat(target int) HeatStrategy {
	if target < 0 {
		target = 0
	}
	out := HeatStrategy{Target: target}
	remaining := target
	for _, pact := range pactOrder {
		if remaining <= 0 {
			break
		}
		rank := min(pact.Rank, remaining)
		out.Config = append(out.Config, PactRank{Name: pact.Name, Rank: rank})
		out.Total += rank
		remaining -= rank
	}

	switch {
	case target <= 8:
		out.Difficulty = "EASY"
		out.Tips = []string{
			"perfect for learning the pact conditions",
			"focus on core mechanics",
		}
	case target <= 16:
		out.Difficulty = "MEDIUM"
		out.Tips = []string{
			"play aggressively; longer fights cost more health",
			"pick up defensive boons early",
		}
	default:
		out.Difficulty = "HARD"
		out.Tips = []string{
			"duo boons are effectively mandatory",
			"a defensive dash is required",
			"expect Extreme Measures boss phases",
		}
	}
	return out
}
