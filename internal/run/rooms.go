package run

// RoomEntry is one chamber of the room-by-room log. Number and Region are
// stamped from the run state when the entry is recorded.
type RoomEntry struct {
	Number        int      `json:"room_number"`
	Region        string   `json:"region"`
	Kind          string   `json:"kind"`
	RewardOffered string   `json:"reward_offered,omitempty"`
	RewardChosen  string   `json:"reward_chosen,omitempty"`
	GodsOffered   []string `json:"gods_offered,omitempty"`
	GodChosen     string   `json:"god_chosen,omitempty"`
	BoonChosen    string   `json:"boon_chosen,omitempty"`
	RerollUsed    bool     `json:"reroll_used,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// RoomLog is the ordered chamber history of one run.
type RoomLog struct {
	Rooms []RoomEntry `json:"rooms"`
}

// TimelineEntry is one boon pick placed on the room timeline.
type TimelineEntry struct {
	Room   int    `json:"room"`
	Region string `json:"region"`
	God    string `json:"god"`
	Boon   string `json:"boon"`
}

// BoonTimeline lists every boon choice in room order.
func (l *RoomLog) BoonTimeline() []TimelineEntry {
	var out []TimelineEntry
	for _, r := range l.Rooms {
		if r.BoonChosen == "" {
			continue
		}
		out = append(out, TimelineEntry{
			Room:   r.Number,
			Region: r.Region,
			God:    r.GodChosen,
			Boon:   r.BoonChosen,
		})
	}
	return out
}

// GodEncounterOrder returns gods in first-encounter order.
func (l *RoomLog) GodEncounterOrder() []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range l.Rooms {
		if r.GodChosen == "" || seen[r.GodChosen] {
			continue
		}
		seen[r.GodChosen] = true
		out = append(out, r.GodChosen)
	}
	return out
}

// KindSummary counts rooms by kind.
func (l *RoomLog) KindSummary() map[string]int {
	out := map[string]int{}
	for _, r := range l.Rooms {
		out[r.Kind]++
	}
	return out
}
