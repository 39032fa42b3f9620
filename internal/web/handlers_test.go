package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"hadeshelper/internal/advisor"
	"hadeshelper/internal/builds"
	"hadeshelper/internal/catalog"
	"hadeshelper/internal/history"
	"hadeshelper/internal/run"
	"hadeshelper/internal/session"
)

type testClient struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	dir := t.TempDir()
	templates, err := builds.NewDir(filepath.Join(dir, "templates"))
	if err != nil {
		t.Fatal(err)
	}
	s := &Server{
		Advisor:   advisor.New(cat),
		Store:     session.NewMemoryStore[*run.State](),
		History:   history.Open(filepath.Join(dir, "runs.json")),
		Templates: templates,
	}
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &testClient{t: t, srv: srv, client: &http.Client{Jar: jar}}
}

// do sends a JSON request and decodes the JSON response into out (skipped
// when out is nil). It fails the test unless the status matches.
func (c *testClient) do(method, path string, body, out any, wantStatus int) {
	c.t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatal(err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, c.srv.URL+path, reqBody)
	if err != nil {
		c.t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		c.t.Fatalf("%s %s: status %d, want %d", method, path, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
}

func TestGetRun_Defaults(t *testing.T) {
	c := newTestClient(t)

	var view StateView
	c.do("GET", "/api/run", nil, &view, http.StatusOK)
	if view.Region != "Tartarus" || view.Room != 1 {
		t.Errorf("fresh run = %+v", view)
	}
	if view.CurrentHealth != 100 || view.DeathDefiances != 3 {
		t.Errorf("fresh run health/defiances = %+v", view)
	}
}

func TestSessionPersistsAcrossRequests(t *testing.T) {
	c := newTestClient(t)

	var view StateView
	c.do("POST", "/api/run/gods", map[string]string{"name": "Zeus"}, &view, http.StatusOK)
	if len(view.Gods) != 1 {
		t.Fatalf("gods = %v", view.Gods)
	}

	c.do("GET", "/api/run", nil, &view, http.StatusOK)
	if len(view.Gods) != 1 || view.Gods[0] != "Zeus" {
		t.Errorf("state did not survive the next request: %v", view.Gods)
	}
}

func TestWeaponAspectFlow(t *testing.T) {
	c := newTestClient(t)

	var view StateView
	c.do("POST", "/api/run/weapon", map[string]string{"name": "Stygian Blade"}, &view, http.StatusOK)
	c.do("POST", "/api/run/aspect", map[string]string{"name": "Nemesis"}, &view, http.StatusOK)
	if view.Weapon != "Stygian Blade" || view.Aspect != "Nemesis" {
		t.Errorf("weapon/aspect = %s/%s", view.Weapon, view.Aspect)
	}

	var errResp map[string]string
	c.do("POST", "/api/run/aspect", map[string]string{"name": "Lucifer"}, &errResp, http.StatusBadRequest)
	if errResp["error"] == "" {
		t.Error("expected an error message for a foreign aspect")
	}

	// The rejected edit left the previous aspect in place.
	c.do("GET", "/api/run", nil, &view, http.StatusOK)
	if view.Aspect != "Nemesis" {
		t.Errorf("aspect after rejected edit = %q, want Nemesis", view.Aspect)
	}
}

func TestBoonRequiresGod(t *testing.T) {
	c := newTestClient(t)

	c.do("POST", "/api/run/boons", map[string]string{"name": "Lightning Strike"}, nil, http.StatusBadRequest)
	c.do("POST", "/api/run/gods", map[string]string{"name": "Zeus"}, nil, http.StatusOK)

	var view StateView
	c.do("POST", "/api/run/boons", map[string]string{"name": "Lightning Strike"}, &view, http.StatusOK)
	if len(view.Boons) != 1 {
		t.Errorf("boons = %v", view.Boons)
	}
	c.do("POST", "/api/run/boons", map[string]string{"name": "Lightning Strike"}, nil, http.StatusBadRequest)
}

func TestDoorsEndpoint(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/run/health", map[string]int{"current": 20, "max": 100}, nil, http.StatusOK)

	var ranked []advisor.DoorAnalysis
	body := map[string]any{"doors": []map[string]string{
		{"kind": "Gold"},
		{"kind": "Centaur Heart"},
	}}
	c.do("POST", "/api/doors", body, &ranked, http.StatusOK)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked doors, got %d", len(ranked))
	}
	if ranked[0].Kind != advisor.DoorHeart {
		t.Errorf("heart should rank first at 20%% HP, got %s", ranked[0].Kind)
	}

	c.do("POST", "/api/doors", map[string]any{"doors": []string{}}, nil, http.StatusBadRequest)
}

func TestChaosEndpoint(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/run/region", map[string]string{"name": "Temple of Styx"}, nil, http.StatusOK)
	c.do("POST", "/api/run/room", map[string]int{"room": 44}, nil, http.StatusOK)
	c.do("POST", "/api/run/health", map[string]int{"current": 20, "max": 100}, nil, http.StatusOK)

	var risk advisor.ChaosRisk
	c.do("POST", "/api/chaos", map[string]string{"curse": "take damage"}, &risk, http.StatusOK)
	if risk.Level != "EXTREME" || risk.ShouldTake {
		t.Errorf("risk = %+v", risk)
	}
}

func TestCompleteRunRecordsAndResets(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/run/weapon", map[string]string{"name": "Adamant Rail"}, nil, http.StatusOK)
	c.do("POST", "/api/run/gods", map[string]string{"name": "Zeus"}, nil, http.StatusOK)
	c.do("POST", "/api/run/boons", map[string]string{"name": "Lightning Strike"}, nil, http.StatusOK)

	var result struct {
		RunNumber int    `json:"run_number"`
		SaveError string `json:"save_error"`
	}
	c.do("POST", "/api/run/complete", map[string]any{"victory": true, "boss_reached": "Hades"}, &result, http.StatusOK)
	if result.RunNumber != 1 || result.SaveError != "" {
		t.Errorf("complete = %+v", result)
	}

	var view StateView
	c.do("GET", "/api/run", nil, &view, http.StatusOK)
	if view.Weapon != "" || len(view.Boons) != 0 {
		t.Errorf("run must reset after completion: %+v", view)
	}

	var recent []history.Record
	c.do("GET", "/api/history", nil, &recent, http.StatusOK)
	if len(recent) != 1 || recent[0].Weapon != "Adamant Rail" || !recent[0].Victory {
		t.Errorf("history = %+v", recent)
	}
}

func TestHistorySummaryEmpty(t *testing.T) {
	c := newTestClient(t)

	var summary history.Summary
	c.do("GET", "/api/history/summary", nil, &summary, http.StatusOK)
	if summary.TotalRuns != 0 || summary.WinRate != 0.0 || summary.BestRun != nil {
		t.Errorf("empty summary = %+v", summary)
	}
}

func TestTemplatesFlow(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/run/weapon", map[string]string{"name": "Twin Fists"}, nil, http.StatusOK)
	c.do("POST", "/api/run/gods", map[string]string{"name": "Artemis"}, nil, http.StatusOK)
	c.do("POST", "/api/run/boons", map[string]string{"name": "Deadly Strike"}, nil, http.StatusOK)

	c.do("POST", "/api/templates", map[string]string{"name": "fists"}, nil, http.StatusOK)

	var names []string
	c.do("GET", "/api/templates", nil, &names, http.StatusOK)
	if len(names) != 1 || names[0] != "fists" {
		t.Fatalf("templates = %v", names)
	}

	c.do("POST", "/api/run/reset", nil, nil, http.StatusOK)

	var view StateView
	c.do("POST", "/api/templates/apply", map[string]string{"name": "fists"}, &view, http.StatusOK)
	if view.Weapon != "Twin Fists" || len(view.Boons) != 1 {
		t.Errorf("applied template = %+v", view)
	}

	c.do("DELETE", "/api/templates", map[string]string{"name": "fists"}, nil, http.StatusOK)
	c.do("POST", "/api/templates/apply", map[string]string{"name": "fists"}, nil, http.StatusNotFound)
}

func TestAdviceEndpoint(t *testing.T) {
	c := newTestClient(t)

	var advice advisor.Advice
	c.do("GET", "/api/advice", nil, &advice, http.StatusOK)
	if advice.Immediate.Priority != advisor.PriorityHigh {
		t.Errorf("fresh run advice = %+v", advice.Immediate)
	}
	if len(advice.DoorSuggestions) == 0 {
		t.Error("expected standing door suggestions")
	}
}

func TestHeatPlanEndpoint(t *testing.T) {
	c := newTestClient(t)

	var plan advisor.HeatStrategy
	c.do("GET", "/api/heat/plan?target=12", nil, &plan, http.StatusOK)
	if plan.Total != 12 || plan.Difficulty != "MEDIUM" {
		t.Errorf("plan = %+v", plan)
	}
	c.do("GET", "/api/heat/plan?target=-1", nil, nil, http.StatusBadRequest)
}

func TestHistoryReportEndpoint(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/run/complete", map[string]any{"victory": false}, nil, http.StatusOK)

	resp, err := c.client.Get(c.srv.URL + "/api/history/report")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
}

func TestPomEndpointOrdering(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/run/gods", map[string]string{"name": "Poseidon"}, nil, http.StatusOK)
	c.do("POST", "/api/run/boons", map[string]string{"name": "Tidal Dash"}, nil, http.StatusOK)
	c.do("POST", "/api/run/gods", map[string]string{"name": "Zeus"}, nil, http.StatusOK)
	c.do("POST", "/api/run/boons", map[string]string{"name": "Lightning Strike"}, nil, http.StatusOK)

	var ranked []advisor.PomChoice
	c.do("GET", "/api/poms", nil, &ranked, http.StatusOK)
	if len(ranked) != 2 || ranked[0].Boon != "Lightning Strike" {
		t.Errorf("pom ranking = %+v", ranked)
	}
}

func TestRecommendRequiresGod(t *testing.T) {
	c := newTestClient(t)
	c.do("POST", "/api/boons/recommend", map[string]string{}, nil, http.StatusBadRequest)

	var recs []advisor.BoonRecommendation
	c.do("POST", "/api/boons/recommend", map[string]string{"god": "Zeus"}, &recs, http.StatusOK)
	if len(recs) == 0 {
		t.Error("expected recommendations for Zeus")
	}
	for _, r := range recs {
		if r.God != "Zeus" {
			t.Errorf("recommendation from wrong god: %+v", r)
		}
	}
}

func TestRevisionAdvancesPerMutation(t *testing.T) {
	c := newTestClient(t)

	var before, after StateView
	c.do("GET", "/api/run", nil, &before, http.StatusOK)
	c.do("POST", "/api/run/room/advance", nil, &after, http.StatusOK)
	if after.Revision <= before.Revision {
		t.Errorf("revision %d -> %d, want an increase", before.Revision, after.Revision)
	}
	if after.Room != before.Room+1 {
		t.Errorf("room %d -> %d", before.Room, after.Room)
	}
}
