package history

import (
	"sort"
	"strings"
)

// WeaponStats aggregates runs for one weapon.
type WeaponStats struct {
	Runs      int            `json:"runs"`
	Wins      int            `json:"wins"`
	Defeats   int            `json:"defeats"`
	WinRate   float64        `json:"win_rate"`
	AvgScore  float64        `json:"avg_score"`
	AvgHeat   float64        `json:"avg_heat"`
	BestScore int            `json:"best_score"`
	Aspects   map[string]int `json:"aspects_used"`
}

// GodStats aggregates runs that included one god.
type GodStats struct {
	Runs     int     `json:"runs"`
	Wins     int     `json:"wins"`
	Defeats  int     `json:"defeats"`
	WinRate  float64 `json:"win_rate"`
	AvgScore float64 `json:"avg_score"`
}

// ComboStats aggregates a god combination (first three gods, sorted).
type ComboStats struct {
	Combo   string  `json:"combo"`
	Runs    int     `json:"runs"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// BoonCount pairs a boon with how often it appeared.
type BoonCount struct {
	Boon  string `json:"boon"`
	Count int    `json:"count"`
}

// Streaks summarizes win/loss runs of the log. Current is positive for an
// active win streak, negative for an active loss streak.
type Streaks struct {
	Current   int `json:"current_streak"`
	BestWin   int `json:"best_win_streak"`
	WorstLoss int `json:"worst_loss_streak"`
}

// Summary is the overall progression roll-up.
type Summary struct {
	TotalRuns     int     `json:"total_runs"`
	Victories     int     `json:"victories"`
	Defeats       int     `json:"defeats"`
	WinRate       float64 `json:"win_rate"`
	AvgBuildScore float64 `json:"avg_build_score"`
	AvgHeat       float64 `json:"avg_heat"`
	BestRun       *Record `json:"best_run,omitempty"`
	Streaks       Streaks `json:"streaks"`
}

// Wins counts victories.
func (s *Store) Wins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	wins := 0
	for _, r := range s.runs {
		if r.Victory {
			wins++
		}
	}
	return wins
}

// WinRate is the victory percentage, 0.0 for an empty log.
func (s *Store) WinRate() float64 {
	total := s.Len()
	if total == 0 {
		return 0.0
	}
	return float64(s.Wins()) / float64(total) * 100
}

// AvgBuildScore is the mean build score, 0.0 for an empty log.
func (s *Store) AvgBuildScore() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.runs) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range s.runs {
		sum += r.BuildScore
	}
	return float64(sum) / float64(len(s.runs))
}

// AvgHeat is the mean heat level attempted, 0.0 for an empty log.
func (s *Store) AvgHeat() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.runs) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range s.runs {
		sum += r.HeatLevel
	}
	return float64(sum) / float64(len(s.runs))
}

// WeaponStats aggregates the log per weapon.
func (s *Store) WeaponStats() map[string]WeaponStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := map[string]*WeaponStats{}
	scoreSums := map[string]int{}
	heatSums := map[string]int{}
	for _, r := range s.runs {
		ws, ok := totals[r.Weapon]
		if !ok {
			ws = &WeaponStats{Aspects: map[string]int{}}
			totals[r.Weapon] = ws
		}
		ws.Runs++
		scoreSums[r.Weapon] += r.BuildScore
		heatSums[r.Weapon] += r.HeatLevel
		aspect := r.Aspect
		if aspect == "" {
			aspect = "Unknown"
		}
		ws.Aspects[aspect]++
		if r.Victory {
			ws.Wins++
		} else {
			ws.Defeats++
		}
		if r.BuildScore > ws.BestScore {
			ws.BestScore = r.BuildScore
		}
	}

	out := make(map[string]WeaponStats, len(totals))
	for weapon, ws := range totals {
		ws.WinRate = float64(ws.Wins) / float64(ws.Runs) * 100
		ws.AvgScore = float64(scoreSums[weapon]) / float64(ws.Runs)
		ws.AvgHeat = float64(heatSums[weapon]) / float64(ws.Runs)
		out[weapon] = *ws
	}
	return out
}

// BestWeapon is the weapon with the highest win rate over at least three
// runs; ok is false when nothing qualifies.
func (s *Store) BestWeapon() (weapon string, winRate float64, ok bool) {
	stats := s.WeaponStats()
	names := make([]string, 0, len(stats))
	for w := range stats {
		names = append(names, w)
	}
	sort.Strings(names)
	for _, w := range names {
		ws := stats[w]
		if ws.Runs < 3 {
			continue
		}
		if !ok || ws.WinRate > winRate {
			weapon, winRate, ok = w, ws.WinRate, true
		}
	}
	return weapon, winRate, ok
}

// GodStats aggregates the log per god.
func (s *Store) GodStats() map[string]GodStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := map[string]*GodStats{}
	scoreSums := map[string]int{}
	for _, r := range s.runs {
		for _, god := range r.Gods {
			gs, ok := totals[god]
			if !ok {
				gs = &GodStats{}
				totals[god] = gs
			}
			gs.Runs++
			scoreSums[god] += r.BuildScore
			if r.Victory {
				gs.Wins++
			} else {
				gs.Defeats++
			}
		}
	}

	out := make(map[string]GodStats, len(totals))
	for god, gs := range totals {
		gs.WinRate = float64(gs.Wins) / float64(gs.Runs) * 100
		gs.AvgScore = float64(scoreSums[god]) / float64(gs.Runs)
		out[god] = *gs
	}
	return out
}

// GodComboStats ranks god combinations with at least minRuns appearances. A
// combination is the run's first three gods, sorted alphabetically; runs with
// fewer than two gods are skipped. Sorted by win rate, then run count.
func (s *Store) GodComboStats(minRuns int) []ComboStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	type tally struct{ runs, wins int }
	combos := map[string]*tally{}
	for _, r := range s.runs {
		if len(r.Gods) < 2 {
			continue
		}
		gods := make([]string, len(r.Gods))
		copy(gods, r.Gods)
		sort.Strings(gods)
		if len(gods) > 3 {
			gods = gods[:3]
		}
		key := strings.Join(gods, " + ")
		t, ok := combos[key]
		if !ok {
			t = &tally{}
			combos[key] = t
		}
		t.runs++
		if r.Victory {
			t.wins++
		}
	}

	var out []ComboStats
	for combo, t := range combos {
		if t.runs < minRuns {
			continue
		}
		out = append(out, ComboStats{
			Combo:   combo,
			Runs:    t.runs,
			Wins:    t.wins,
			WinRate: float64(t.wins) / float64(t.runs) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		if out[i].Runs != out[j].Runs {
			return out[i].Runs > out[j].Runs
		}
		return out[i].Combo < out[j].Combo
	})
	return out
}

// MostUsedBoons ranks boons by appearance count, most used first, limited to
// limit entries. Names break count ties.
func (s *Store) MostUsedBoons(limit int) []BoonCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int{}
	for _, r := range s.runs {
		for _, boon := range r.Boons {
			counts[boon]++
		}
	}
	out := make([]BoonCount, 0, len(counts))
	for boon, n := range counts {
		out = append(out, BoonCount{Boon: boon, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Boon < out[j].Boon
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BoonWinRates maps boons used in at least three runs to their win rate.
func (s *Store) BoonWinRates() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	type tally struct{ runs, wins int }
	boons := map[string]*tally{}
	for _, r := range s.runs {
		for _, boon := range r.Boons {
			t, ok := boons[boon]
			if !ok {
				t = &tally{}
				boons[boon] = t
			}
			t.runs++
			if r.Victory {
				t.wins++
			}
		}
	}
	out := map[string]float64{}
	for boon, t := range boons {
		if t.runs >= 3 {
			out[boon] = float64(t.wins) / float64(t.runs) * 100
		}
	}
	return out
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := min(limit, len(s.runs))
	out := make([]Record, 0, n)
	for i := len(s.runs) - 1; i >= len(s.runs)-n; i-- {
		out = append(out, s.runs[i])
	}
	return out
}

// BestRun is the run with the highest build score, nil for an empty log.
// Earlier runs win score ties.
func (s *Store) BestRun() *Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best *Record
	for i := range s.runs {
		if best == nil || s.runs[i].BuildScore > best.BuildScore {
			best = &s.runs[i]
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// RunsByWeapon filters the log to one weapon.
func (s *Store) RunsByWeapon(weapon string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Record
	for _, r := range s.runs {
		if r.Weapon == weapon {
			out = append(out, r)
		}
	}
	return out
}

// RunsByGod filters the log to runs that included the god.
func (s *Store) RunsByGod(god string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Record
	for _, r := range s.runs {
		for _, g := range r.Gods {
			if g == god {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// StreakData computes the current streak and the best win / worst loss
// streaks over the whole log.
func (s *Store) StreakData() Streaks {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out Streaks
	winRun, lossRun := 0, 0
	for _, r := range s.runs {
		if r.Victory {
			winRun++
			lossRun = 0
			out.Current = winRun
		} else {
			lossRun++
			winRun = 0
			out.Current = -lossRun
		}
		out.BestWin = max(out.BestWin, winRun)
		out.WorstLoss = max(out.WorstLoss, lossRun)
	}
	return out
}

// ProgressionSummary is the overall roll-up used by the dashboard.
func (s *Store) ProgressionSummary() Summary {
	return Summary{
		TotalRuns:     s.Len(),
		Victories:     s.Wins(),
		Defeats:       s.Len() - s.Wins(),
		WinRate:       s.WinRate(),
		AvgBuildScore: s.AvgBuildScore(),
		AvgHeat:       s.AvgHeat(),
		BestRun:       s.BestRun(),
		Streaks:       s.StreakData(),
	}
}

// RoomStatistics aggregates room choices across all recorded runs.
type RoomStatistics struct {
	TotalRooms     int            `json:"total_rooms_cleared"`
	RewardChoices  map[string]int `json:"reward_preferences"`
	GodEncounters  map[string]int `json:"god_encounter_frequency"`
	RerollsUsed    int            `json:"reroll_usage"`
	AvgRoomsPerRun float64        `json:"avg_rooms_per_run"`
}

// RoomStats scans the room progressions of every run.
func (s *Store) RoomStats() RoomStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := RoomStatistics{
		RewardChoices: map[string]int{},
		GodEncounters: map[string]int{},
	}
	for _, r := range s.runs {
		if r.Rooms == nil {
			continue
		}
		out.TotalRooms += len(r.Rooms.Rooms)
		for _, room := range r.Rooms.Rooms {
			if room.RewardChosen != "" {
				out.RewardChoices[room.RewardChosen]++
			}
			if room.GodChosen != "" {
				out.GodEncounters[room.GodChosen]++
			}
			if room.RerollUsed {
				out.RerollsUsed++
			}
		}
	}
	if len(s.runs) > 0 {
		out.AvgRoomsPerRun = float64(out.TotalRooms) / float64(len(s.runs))
	}
	return out
}

// BoonPattern summarizes when one boon tends to be picked up.
type BoonPattern struct {
	TimesTaken int     `json:"times_taken"`
	AvgRoom    float64 `json:"avg_room_number"`
	Earliest   int     `json:"earliest"`
	Latest     int     `json:"latest"`
}

// BoonAcquisitionPatterns maps each boon seen in room timelines to its
// pickup-room pattern.
func (s *Store) BoonAcquisitionPatterns() map[string]BoonPattern {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := map[string][]int{}
	for _, r := range s.runs {
		if r.Rooms == nil {
			continue
		}
		for _, entry := range r.Rooms.BoonTimeline() {
			rooms[entry.Boon] = append(rooms[entry.Boon], entry.Room)
		}
	}
	out := make(map[string]BoonPattern, len(rooms))
	for boon, picks := range rooms {
		p := BoonPattern{TimesTaken: len(picks), Earliest: picks[0], Latest: picks[0]}
		sum := 0
		for _, room := range picks {
			sum += room
			p.Earliest = min(p.Earliest, room)
			p.Latest = max(p.Latest, room)
		}
		p.AvgRoom = float64(sum) / float64(len(picks))
		out[boon] = p
	}
	return out
}
