package web

import (
	"net/http"
	"strconv"

	"hadeshelper/internal/builds"
	"hadeshelper/internal/history"
	"hadeshelper/internal/run"
)

// handleCompleteRun records the session's run in the history log and starts
// a fresh one. The run number is returned even when the save failed; the
// record is still in memory in that case.
func (s *Server) handleCompleteRun(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Victory     bool   `json:"victory"`
		BossReached string `json:"boss_reached"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	ctx := r.Context()
	st, id := s.getOrCreateRun(ctx, w, r)

	rec := history.Record{
		Weapon:      st.Weapon,
		Aspect:      st.Aspect,
		Gods:        append([]string{}, st.Gods...),
		Boons:       append([]string{}, st.Boons...),
		BuildScore:  s.Advisor.BuildStrength(st).Total,
		Victory:     req.Victory,
		BossReached: req.BossReached,
		HeatLevel:   st.Heat,
	}
	if len(st.Log.Rooms) > 0 {
		logCopy := st.Log
		rec.Rooms = &logCopy
	}

	number, err := s.History.Add(rec)
	saveError := ""
	if err != nil {
		saveError = err.Error()
	}

	fresh := run.New(s.Advisor.Catalog())
	s.stateChanged(ctx, id, fresh)

	writeJSON(w, http.StatusOK, struct {
		RunNumber int    `json:"run_number"`
		SaveError string `json:"save_error,omitempty"`
	}{number, saveError})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, s.History.RecentRuns(limit))
}

func (s *Server) handleHistorySummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.History.ProgressionSummary())
}

func (s *Server) handleHistoryWeapons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.History.WeaponStats())
}

func (s *Server) handleHistoryGods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.History.GodStats())
}

func (s *Server) handleHistoryCombos(w http.ResponseWriter, r *http.Request) {
	minRuns := 2
	if v := r.URL.Query().Get("min_runs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "min_runs must be a positive integer")
			return
		}
		minRuns = n
	}
	writeJSON(w, http.StatusOK, s.History.GodComboStats(minRuns))
}

func (s *Server) handleHistoryBoons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		MostUsed []history.BoonCount `json:"most_used"`
		WinRates map[string]float64  `json:"win_rates"`
	}{s.History.MostUsedBoons(10), s.History.BoonWinRates()})
}

func (s *Server) handleHistoryRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Rooms    history.RoomStatistics         `json:"rooms"`
		Patterns map[string]history.BoonPattern `json:"boon_patterns"`
	}{s.History.RoomStats(), s.History.BoonAcquisitionPatterns()})
}

func (s *Server) handleHistoryReport(w http.ResponseWriter, r *http.Request) {
	pdf, err := s.History.Report("Escape Log")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="escape-log.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		return
	}
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := s.Templates.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	if err := s.Templates.Save(builds.FromState(req.Name, st)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"saved": req.Name})
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	tpl, err := s.Templates.Load(req.Name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	ctx := r.Context()
	_, id := s.getOrCreateRun(ctx, w, r)
	st := run.New(s.Advisor.Catalog())
	tpl.Apply(st)
	s.stateChanged(ctx, id, st)
	writeJSON(w, http.StatusOK, stateView(st))
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	if err := s.Templates.Delete(req.Name); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": req.Name})
}
