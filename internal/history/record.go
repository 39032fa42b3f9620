// Package history persists completed runs to a flat JSON log and answers
// aggregate queries over it. The log is small (hundreds of runs), so every
// query is a plain linear scan.
package history

import (
	"time"

	"hadeshelper/internal/run"
)

// Record is one completed run as stored on disk. Optional keys missing from
// older files get defaults via normalize, applied identically on load and
// append so a record round-trips unchanged.
type Record struct {
	Weapon      string       `json:"weapon"`
	Aspect      string       `json:"aspect,omitempty"`
	Gods        []string     `json:"gods"`
	Boons       []string     `json:"boons"`
	BuildScore  int          `json:"build_score"`
	Victory     bool         `json:"victory"`
	BossReached string       `json:"boss_reached,omitempty"`
	HeatLevel   int          `json:"heat_level"`
	Timestamp   string       `json:"timestamp"`
	RunNumber   int          `json:"run_number"`
	Rooms       *run.RoomLog `json:"room_progression,omitempty"`
}

func (r *Record) normalize() {
	if r.Weapon == "" {
		r.Weapon = "Unknown"
	}
	if r.Gods == nil {
		r.Gods = []string{}
	}
	if r.Boons == nil {
		r.Boons = []string{}
	}
	if r.BuildScore < 0 {
		r.BuildScore = 0
	}
}

// Time parses the record timestamp, zero time if unparseable.
func (r *Record) Time() time.Time {
	t, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
