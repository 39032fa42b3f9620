package advisor

// KeepsakeChoice pairs a region with the keepsake to equip entering it.
type KeepsakeChoice struct {
	Region   string `json:"region"`
	Keepsake string `json:"keepsake"`
	Reason   string `json:"reason"`
}

// PlanKeepsakes lays out a keepsake per region for the given heat level. The
// plan swaps toward survivability as heat rises.
func (a *Advisor) PlanKeepsakes(heat int) []KeepsakeChoice {
	var out []KeepsakeChoice

	if heat >= 16 {
		out = append(out, KeepsakeChoice{
			Region:   "Tartarus",
			Keepsake: "Lucky Tooth",
			Reason:   "high heat; the extra revive earns its slot",
		})
	} else {
		out = append(out, KeepsakeChoice{
			Region:   "Tartarus",
			Keepsake: "Thunder Signet",
			Reason:   "a Zeus attack boon is a strong foundation",
		})
	}

	out = append(out, KeepsakeChoice{
		Region:   "Asphodel",
		Keepsake: "Pom Blossom",
		Reason:   "strengthen the core boons",
	})

	if heat >= 20 {
		out = append(out, KeepsakeChoice{
			Region:   "Elysium",
			Keepsake: "Evergreen Acorn",
			Reason:   "five negated boss hits",
		})
	} else {
		out = append(out, KeepsakeChoice{
			Region:   "Elysium",
			Keepsake: "Pom Blossom",
			Reason:   "build power spike before Theseus",
		})
	}

	out = append(out, KeepsakeChoice{
		Region:   "Temple of Styx",
		Keepsake: "Evergreen Acorn",
		Reason:   "final boss protection",
	})
	return out
}
