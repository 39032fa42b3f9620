package web

import (
	"net/http"
	"strconv"

	"hadeshelper/internal/advisor"
)

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.Advise(st))
}

func (s *Server) handleStrength(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.BuildStrength(st))
}

func (s *Server) handleDPS(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, struct {
		Estimate        advisor.DPSEstimate `json:"estimate"`
		Recommendations []string            `json:"recommendations"`
	}{s.Advisor.EstimateDPS(st), s.Advisor.DPSRecommendations(st)})
}

func (s *Server) handleDuos(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, struct {
		Duos        []advisor.DuoProgress `json:"duos"`
		Legendaries []advisor.DuoProgress `json:"legendaries"`
	}{s.Advisor.DuoProgress(st), s.Advisor.LegendaryProgress(st)})
}

func (s *Server) handleBoss(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.BossReadiness(st))
}

func (s *Server) handlePomPriority(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.PomPriority(st))
}

func (s *Server) handleDoors(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Doors []advisor.DoorOption `json:"doors"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if len(req.Doors) == 0 {
		writeError(w, http.StatusBadRequest, "no doors offered")
		return
	}
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.CompareDoors(st, req.Doors))
}

func (s *Server) handleChaos(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Curse    string `json:"curse"`
		Blessing string `json:"blessing"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.ChaosGateRisk(st, req.Curse, req.Blessing))
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		God string `json:"god"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.God == "" {
		writeError(w, http.StatusBadRequest, "god is required")
		return
	}
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.RecommendFromGod(st, req.God))
}

func (s *Server) handleChoose(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Offered []string `json:"offered"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if len(req.Offered) == 0 {
		writeError(w, http.StatusBadRequest, "no boons offered")
		return
	}
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.BestOffered(st, req.Offered))
}

func (s *Server) handleHeatPlan(w http.ResponseWriter, r *http.Request) {
	target := 0
	if v := r.URL.Query().Get("target"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "target must be a non-negative integer")
			return
		}
		target = n
	} else {
		st, _ := s.getOrCreateRun(r.Context(), w, r)
		target = st.Heat
	}
	writeJSON(w, http.StatusOK, s.Advisor.PlanHeat(target))
}

func (s *Server) handleKeepsakes(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, s.Advisor.PlanKeepsakes(st.Heat))
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Advisor.Catalog())
}
