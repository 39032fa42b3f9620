package advisor

import (
	"fmt"

	"hadeshelper/internal/catalog"
	"hadeshelper/internal/run"
)

// Priority labels for advice entries, strongest first.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityNormal   = "NORMAL"
	PriorityLow      = "LOW"
)

// ImmediatePriority is the single most pressing thing to do right now.
type ImmediatePriority struct {
	Text     string `json:"text"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// DoorSuggestion is a standing preference for a reward kind.
type DoorSuggestion struct {
	Kind     DoorKind `json:"kind"`
	Priority string   `json:"priority"`
	Reason   string   `json:"reason"`
}

// Advice is the full context-aware recommendation set pushed to clients.
type Advice struct {
	Immediate       ImmediatePriority `json:"immediate"`
	DoorSuggestions []DoorSuggestion  `json:"door_suggestions"`
	Warnings        []string          `json:"warnings"`
	Strength        Strength          `json:"strength"`
	DPS             DPSEstimate       `json:"dps"`
	Duos            []DuoProgress     `json:"duos"`
	Boss            BossReadiness     `json:"boss"`
}

// Advise bundles every always-on recommendation for the current state.
func (a *Advisor) Advise(st *run.State) Advice {
	return Advice{
		Immediate:       a.ImmediatePriority(st),
		DoorSuggestions: a.DoorSuggestions(st),
		Warnings:        a.Warnings(st),
		Strength:        a.BuildStrength(st),
		DPS:             a.EstimateDPS(st),
		Duos:            a.DuoProgress(st),
		Boss:            a.BossReadiness(st),
	}
}

// ImmediatePriority picks the most urgent concern, checked in severity order:
// critical health, missing foundation, missing attack, boss proximity, then
// synergy building.
func (a *Advisor) ImmediatePriority(st *run.State) ImmediatePriority {
	if st.HealthPercent() < 30 {
		return ImmediatePriority{
			Text:     "Critical HP",
			Action:   "prioritize healing as soon as possible",
			Priority: PriorityCritical,
		}
	}
	if len(st.Boons) < 2 {
		return ImmediatePriority{
			Text:     "Get core boons",
			Action:   "focus on attack and special boons",
			Priority: PriorityHigh,
		}
	}
	if !st.HasSlot(catalog.SlotAttack) {
		return ImmediatePriority{
			Text:     "Need an attack boon",
			Action:   "take an attack boon at the next opportunity",
			Priority: PriorityHigh,
		}
	}
	if rooms := st.RoomsUntilBoss(); rooms <= 3 {
		return ImmediatePriority{
			Text:     fmt.Sprintf("Boss in %d room(s)", rooms),
			Action:   "prepare for the boss fight",
			Priority: PriorityHigh,
		}
	}
	if count := len(st.Boons); count >= 3 && count <= 6 {
		return ImmediatePriority{
			Text:     "Build synergies",
			Action:   "focus on duo boon paths",
			Priority: PriorityNormal,
		}
	}
	return ImmediatePriority{
		Text:     "Looking good",
		Action:   "keep building",
		Priority: PriorityNormal,
	}
}

// DoorSuggestions lists standing reward preferences for the current state.
func (a *Advisor) DoorSuggestions(st *run.State) []DoorSuggestion {
	out := []DoorSuggestion{
		{Kind: DoorHammer, Priority: PriorityCritical, Reason: "hammers are almost always the strongest pick"},
	}
	if hp := st.HealthPercent(); hp < 60 {
		out = append(out, DoorSuggestion{
			Kind:     DoorHeart,
			Priority: PriorityHigh,
			Reason:   fmt.Sprintf("HP at %d%%", int(hp)),
		})
	}
	if len(st.Boons) < 5 {
		out = append(out, DoorSuggestion{Kind: DoorBoon, Priority: PriorityHigh, Reason: "build the foundation"})
	} else {
		out = append(out, DoorSuggestion{Kind: DoorPom, Priority: PriorityNormal, Reason: "scale existing boons"})
	}
	return out
}

// Warnings lists conditions the player should not ignore.
func (a *Advisor) Warnings(st *run.State) []string {
	var out []string
	if st.HealthPercent() < 40 && st.DeathDefiances == 0 {
		out = append(out, "low HP with no Death Defiances left")
	}
	if len(st.Boons) < 3 && st.Room > 8 {
		out = append(out, "behind on boons for this depth")
	}
	return out
}
