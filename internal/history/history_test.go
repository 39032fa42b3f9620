package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"hadeshelper/internal/run"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := Open(filepath.Join(t.TempDir(), "runs.json"))
	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		stamp = stamp.Add(time.Hour)
		return stamp
	}
	return s
}

func addRun(t *testing.T, s *Store, rec Record) int {
	t.Helper()
	n, err := s.Add(rec)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return n
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "nope.json"))
	if s.Len() != 0 {
		t.Errorf("expected empty log, got %d runs", s.Len())
	}
	if s.WinRate() != 0.0 {
		t.Errorf("empty WinRate = %v, want 0.0", s.WinRate())
	}
	if s.BestRun() != nil {
		t.Error("empty BestRun must be nil")
	}
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if s := Open(path); s.Len() != 0 {
		t.Errorf("corrupt file must yield an empty log, got %d runs", s.Len())
	}
}

func TestAdd_NumbersAndPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.json")
	s := Open(path)
	s.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	n := addRun(t, s, Record{Weapon: "Stygian Blade", Victory: true, BuildScore: 70})
	if n != 1 {
		t.Errorf("first run number = %d, want 1", n)
	}
	if n = addRun(t, s, Record{Weapon: "Adamant Rail"}); n != 2 {
		t.Errorf("second run number = %d, want 2", n)
	}

	reopened := Open(path)
	if reopened.Len() != 2 {
		t.Fatalf("reopened log has %d runs, want 2", reopened.Len())
	}
	got := reopened.Runs()[0]
	if got.Weapon != "Stygian Blade" || !got.Victory || got.RunNumber != 1 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", got.Timestamp, err)
	}
}

func TestRecord_DefaultsAppliedBothWays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	raw := []byte(`[{"victory": true, "run_number": 1, "timestamp": "2026-08-01T12:00:00Z"}]`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	s := Open(path)
	loaded := s.Runs()[0]
	if loaded.Weapon != "Unknown" {
		t.Errorf("missing weapon should default to Unknown, got %q", loaded.Weapon)
	}
	if loaded.Gods == nil || loaded.Boons == nil {
		t.Error("missing lists should default to empty, not nil")
	}

	// A record serialized and parsed back equals the normalized original.
	data, err := json.Marshal(loaded)
	if err != nil {
		t.Fatal(err)
	}
	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	back.normalize()
	if !reflect.DeepEqual(loaded, back) {
		t.Errorf("round trip changed the record:\n%+v\n%+v", loaded, back)
	}
}

func TestAdd_WriteFailureKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "sub", "runs.json")) // parent dir missing
	s.now = time.Now

	if _, err := s.Add(Record{Weapon: "Eternal Spear"}); err == nil {
		t.Fatal("expected a write error for a missing directory")
	}
	if s.Len() != 1 {
		t.Errorf("failed save must keep the in-memory append, got %d runs", s.Len())
	}
}

func TestStreakData(t *testing.T) {
	s := testStore(t)
	for _, v := range []bool{true, false, true} {
		addRun(t, s, Record{Victory: v})
	}

	got := s.StreakData()
	want := Streaks{Current: 1, BestWin: 1, WorstLoss: 1}
	if got != want {
		t.Errorf("StreakData = %+v, want %+v", got, want)
	}

	addRun(t, s, Record{Victory: false})
	addRun(t, s, Record{Victory: false})
	got = s.StreakData()
	if got.Current != -2 || got.WorstLoss != 2 {
		t.Errorf("after two losses: %+v", got)
	}
}

func TestWeaponStats(t *testing.T) {
	s := testStore(t)
	addRun(t, s, Record{Weapon: "Stygian Blade", Aspect: "Nemesis", Victory: true, BuildScore: 80, HeatLevel: 8})
	addRun(t, s, Record{Weapon: "Stygian Blade", Aspect: "Zagreus", Victory: false, BuildScore: 60, HeatLevel: 0})
	addRun(t, s, Record{Weapon: "Adamant Rail", Victory: true, BuildScore: 90})

	stats := s.WeaponStats()
	blade := stats["Stygian Blade"]
	if blade.Runs != 2 || blade.Wins != 1 || blade.Defeats != 1 {
		t.Errorf("blade counts: %+v", blade)
	}
	if blade.WinRate != 50 || blade.AvgScore != 70 || blade.AvgHeat != 4 {
		t.Errorf("blade averages: %+v", blade)
	}
	if blade.BestScore != 80 {
		t.Errorf("blade best score = %d, want 80", blade.BestScore)
	}
	if blade.Aspects["Nemesis"] != 1 || blade.Aspects["Zagreus"] != 1 {
		t.Errorf("blade aspects: %v", blade.Aspects)
	}
	if rail := stats["Adamant Rail"]; rail.Aspects["Unknown"] != 1 {
		t.Errorf("missing aspect should count as Unknown: %v", rail.Aspects)
	}
}

func TestBestWeapon_RequiresThreeRuns(t *testing.T) {
	s := testStore(t)
	addRun(t, s, Record{Weapon: "Twin Fists", Victory: true})
	addRun(t, s, Record{Weapon: "Twin Fists", Victory: true})

	if _, _, ok := s.BestWeapon(); ok {
		t.Error("two runs must not qualify")
	}

	addRun(t, s, Record{Weapon: "Twin Fists", Victory: false})
	weapon, rate, ok := s.BestWeapon()
	if !ok || weapon != "Twin Fists" {
		t.Fatalf("BestWeapon = %q, %v", weapon, ok)
	}
	if rate < 66 || rate > 67 {
		t.Errorf("win rate = %v, want about 66.7", rate)
	}
}

func TestGodComboStats(t *testing.T) {
	s := testStore(t)
	addRun(t, s, Record{Gods: []string{"Poseidon", "Zeus"}, Victory: true})
	addRun(t, s, Record{Gods: []string{"Zeus", "Poseidon"}, Victory: false})
	addRun(t, s, Record{Gods: []string{"Artemis"}, Victory: true}) // single god, skipped
	addRun(t, s, Record{Gods: []string{"Demeter", "Chaos", "Ares", "Zeus"}, Victory: true})

	combos := s.GodComboStats(2)
	if len(combos) != 1 {
		t.Fatalf("expected one qualifying combo, got %v", combos)
	}
	c := combos[0]
	if c.Combo != "Poseidon + Zeus" {
		t.Errorf("combo key must sort gods: %q", c.Combo)
	}
	if c.Runs != 2 || c.Wins != 1 || c.WinRate != 50 {
		t.Errorf("combo stats: %+v", c)
	}

	// Four gods collapse to the first three after sorting.
	all := s.GodComboStats(1)
	found := false
	for _, c := range all {
		if c.Combo == "Ares + Chaos + Demeter" {
			found = true
		}
	}
	if !found {
		t.Errorf("four-god run should become a three-god combo, got %v", all)
	}
}

func TestBoonAggregates(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 3; i++ {
		addRun(t, s, Record{Boons: []string{"Lightning Strike", "Tidal Dash"}, Victory: i < 2})
	}
	addRun(t, s, Record{Boons: []string{"Divine Dash"}, Victory: false})

	top := s.MostUsedBoons(2)
	if len(top) != 2 || top[0].Count != 3 {
		t.Fatalf("MostUsedBoons: %v", top)
	}

	rates := s.BoonWinRates()
	if _, ok := rates["Divine Dash"]; ok {
		t.Error("a boon used once must not get a win rate")
	}
	got, ok := rates["Lightning Strike"]
	if !ok || got < 66 || got > 67 {
		t.Errorf("Lightning Strike win rate = %v, %v", got, ok)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	s := testStore(t)
	for _, w := range []string{"A", "B", "C"} {
		addRun(t, s, Record{Weapon: w})
	}
	recent := s.RecentRuns(2)
	if len(recent) != 2 || recent[0].Weapon != "C" || recent[1].Weapon != "B" {
		t.Errorf("RecentRuns = %+v", recent)
	}
}

func TestBestRunPrefersEarlierOnTies(t *testing.T) {
	s := testStore(t)
	addRun(t, s, Record{Weapon: "First", BuildScore: 80})
	addRun(t, s, Record{Weapon: "Second", BuildScore: 80})

	best := s.BestRun()
	if best == nil || best.Weapon != "First" {
		t.Errorf("BestRun = %+v, want the earlier of equal scores", best)
	}
}

func TestRoomStats(t *testing.T) {
	s := testStore(t)
	addRun(t, s, Record{Rooms: &run.RoomLog{Rooms: []run.RoomEntry{
		{Number: 1, Kind: "Combat", RewardChosen: "Boon", GodChosen: "Zeus", BoonChosen: "Lightning Strike"},
		{Number: 2, Kind: "Combat", RewardChosen: "Gold", RerollUsed: true},
	}}})
	addRun(t, s, Record{Rooms: &run.RoomLog{Rooms: []run.RoomEntry{
		{Number: 1, Kind: "Shop"},
		{Number: 5, Kind: "Combat", GodChosen: "Zeus", BoonChosen: "Lightning Strike"},
	}}})

	rs := s.RoomStats()
	if rs.TotalRooms != 4 || rs.RerollsUsed != 1 {
		t.Errorf("RoomStats = %+v", rs)
	}
	if rs.GodEncounters["Zeus"] != 2 || rs.RewardChoices["Boon"] != 1 {
		t.Errorf("RoomStats maps: %+v", rs)
	}
	if rs.AvgRoomsPerRun != 2 {
		t.Errorf("AvgRoomsPerRun = %v, want 2", rs.AvgRoomsPerRun)
	}

	patterns := s.BoonAcquisitionPatterns()
	p := patterns["Lightning Strike"]
	if p.TimesTaken != 2 || p.Earliest != 1 || p.Latest != 5 || p.AvgRoom != 3 {
		t.Errorf("pattern = %+v", p)
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	s := testStore(t)
	addRun(t, s, Record{Weapon: "Stygian Blade", Victory: true})

	exported := filepath.Join(dir, "export.json")
	if err := s.Export(exported); err != nil {
		t.Fatalf("Export: %v", err)
	}

	other := Open(filepath.Join(dir, "other.json"))
	other.now = time.Now
	if _, err := other.Add(Record{Weapon: "Adamant Rail"}); err != nil {
		t.Fatal(err)
	}
	if err := other.Import(exported); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if other.Len() != 2 {
		t.Fatalf("after import: %d runs, want 2", other.Len())
	}
	if got := other.Runs()[1]; got.RunNumber != 2 {
		t.Errorf("imported run must be renumbered, got %d", got.RunNumber)
	}
}

func TestReport(t *testing.T) {
	s := testStore(t)
	addRun(t, s, Record{Weapon: "Stygian Blade", Gods: []string{"Zeus"}, Victory: true, BuildScore: 75, HeatLevel: 4})
	addRun(t, s, Record{Weapon: "Adamant Rail", Victory: false, BuildScore: 40})

	pdf, err := s.Report("Escape Log")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
	if string(pdf[:4]) != "%PDF" {
		t.Errorf("output does not look like a PDF: %q", pdf[:4])
	}
}
