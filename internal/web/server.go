// Package web is the HTTP JSON API over the run tracker and scoring engine.
// Each browser session owns one in-progress run, identified by a cookie;
// every state mutation pushes refreshed advice to websocket subscribers.
package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"hadeshelper/internal/advisor"
	"hadeshelper/internal/builds"
	"hadeshelper/internal/history"
	"hadeshelper/internal/run"
	"hadeshelper/internal/session"
)

type Server struct {
	Advisor   *advisor.Advisor
	Store     session.Store[*run.State]
	History   *history.Store
	Templates *builds.Dir
	Hub       *Hub
}

const cookieName = "hadeshelper_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/run", s.handleGetRun)
	mux.HandleFunc("POST /api/run/reset", s.handleResetRun)
	mux.HandleFunc("POST /api/run/weapon", s.handleSelectWeapon)
	mux.HandleFunc("POST /api/run/aspect", s.handleSelectAspect)
	mux.HandleFunc("POST /api/run/gods", s.handleSelectGod)
	mux.HandleFunc("DELETE /api/run/gods", s.handleRemoveGod)
	mux.HandleFunc("POST /api/run/boons", s.handleAddBoon)
	mux.HandleFunc("DELETE /api/run/boons", s.handleRemoveBoon)
	mux.HandleFunc("POST /api/run/pom", s.handlePom)
	mux.HandleFunc("POST /api/run/hammer", s.handleHammer)
	mux.HandleFunc("POST /api/run/health", s.handleSetHealth)
	mux.HandleFunc("POST /api/run/gold", s.handleSetGold)
	mux.HandleFunc("POST /api/run/heat", s.handleSetHeat)
	mux.HandleFunc("POST /api/run/room/advance", s.handleAdvanceRoom)
	mux.HandleFunc("POST /api/run/room", s.handleSetRoom)
	mux.HandleFunc("POST /api/run/region", s.handleSetRegion)
	mux.HandleFunc("POST /api/run/room/record", s.handleRecordRoom)
	mux.HandleFunc("POST /api/run/death-defiance", s.handleDeathDefiance)
	mux.HandleFunc("POST /api/run/complete", s.handleCompleteRun)

	mux.HandleFunc("GET /api/advice", s.handleAdvice)
	mux.HandleFunc("GET /api/strength", s.handleStrength)
	mux.HandleFunc("GET /api/dps", s.handleDPS)
	mux.HandleFunc("GET /api/duos", s.handleDuos)
	mux.HandleFunc("GET /api/boss", s.handleBoss)
	mux.HandleFunc("GET /api/poms", s.handlePomPriority)
	mux.HandleFunc("POST /api/doors", s.handleDoors)
	mux.HandleFunc("POST /api/chaos", s.handleChaos)
	mux.HandleFunc("POST /api/boons/recommend", s.handleRecommend)
	mux.HandleFunc("POST /api/boons/choose", s.handleChoose)
	mux.HandleFunc("GET /api/heat/plan", s.handleHeatPlan)
	mux.HandleFunc("GET /api/keepsakes", s.handleKeepsakes)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)

	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/history/summary", s.handleHistorySummary)
	mux.HandleFunc("GET /api/history/weapons", s.handleHistoryWeapons)
	mux.HandleFunc("GET /api/history/gods", s.handleHistoryGods)
	mux.HandleFunc("GET /api/history/combos", s.handleHistoryCombos)
	mux.HandleFunc("GET /api/history/boons", s.handleHistoryBoons)
	mux.HandleFunc("GET /api/history/rooms", s.handleHistoryRooms)
	mux.HandleFunc("GET /api/history/report", s.handleHistoryReport)

	mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	mux.HandleFunc("POST /api/templates", s.handleSaveTemplate)
	mux.HandleFunc("POST /api/templates/apply", s.handleApplyTemplate)
	mux.HandleFunc("DELETE /api/templates", s.handleDeleteTemplate)

	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// getOrCreateRun resolves the session's run, creating both on first contact.
func (s *Server) getOrCreateRun(ctx context.Context, w http.ResponseWriter, r *http.Request) (*run.State, string) {
	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		st := run.New(s.Advisor.Catalog())
		_ = s.Store.Put(ctx, id, st)
		return st, id
	}

	st, ok, _ := s.Store.Get(ctx, id)
	if !ok {
		st = run.New(s.Advisor.Catalog())
		_ = s.Store.Put(ctx, id, st)
	}
	return st, id
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// stateChanged persists the run and pushes refreshed advice to subscribers.
func (s *Server) stateChanged(ctx context.Context, id string, st *run.State) {
	_ = s.Store.Put(ctx, id, st)
	if s.Hub != nil {
		s.Hub.Send("advice", s.Advisor.Advise(st))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: encoding response: %v", err)
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
