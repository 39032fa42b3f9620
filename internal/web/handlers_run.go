package web

import (
	"net/http"

	"hadeshelper/internal/run"
)

type nameRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	st, _ := s.getOrCreateRun(r.Context(), w, r)
	writeJSON(w, http.StatusOK, stateView(st))
}

func (s *Server) handleResetRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, id := s.getOrCreateRun(ctx, w, r)
	st := run.New(s.Advisor.Catalog())
	s.stateChanged(ctx, id, st)
	writeJSON(w, http.StatusOK, stateView(st))
}

// mutate runs one state mutation and answers with the updated state, turning
// a rejected edit into a 400 with the reason. The previous valid state is
// always preserved on rejection.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(st *run.State) error) {
	ctx := r.Context()
	st, id := s.getOrCreateRun(ctx, w, r)
	if err := fn(st); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.stateChanged(ctx, id, st)
	writeJSON(w, http.StatusOK, stateView(st))
}

func (s *Server) handleSelectWeapon(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SelectWeapon(req.Name) })
}

func (s *Server) handleSelectAspect(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SelectAspect(req.Name) })
}

func (s *Server) handleSelectGod(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SelectGod(req.Name) })
}

func (s *Server) handleRemoveGod(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.RemoveGod(req.Name) })
}

func (s *Server) handleAddBoon(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.AddBoon(req.Name) })
}

func (s *Server) handleRemoveBoon(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.RemoveBoon(req.Name) })
}

func (s *Server) handlePom(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.ApplyPom(req.Name) })
}

func (s *Server) handleHammer(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(st *run.State) error {
		st.AddHammer()
		return nil
	})
}

func (s *Server) handleSetHealth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Current int `json:"current"`
		Max     int `json:"max"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SetHealth(req.Current, req.Max) })
}

func (s *Server) handleSetGold(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Gold int `json:"gold"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SetGold(req.Gold) })
}

func (s *Server) handleSetHeat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Heat int `json:"heat"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SetHeat(req.Heat) })
}

func (s *Server) handleAdvanceRoom(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(st *run.State) error {
		st.AdvanceRoom()
		return nil
	})
}

func (s *Server) handleSetRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Room int `json:"room"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SetRoom(req.Room) })
}

func (s *Server) handleSetRegion(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !readJSON(w, r, &req) {
		return
	}
	s.mutate(w, r, func(st *run.State) error { return st.SetRegion(req.Name) })
}

func (s *Server) handleRecordRoom(w http.ResponseWriter, r *http.Request) {
	var entry run.RoomEntry
	if !readJSON(w, r, &entry) {
		return
	}
	s.mutate(w, r, func(st *run.State) error {
		st.RecordRoom(entry)
		return nil
	})
}

func (s *Server) handleDeathDefiance(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(st *run.State) error { return st.UseDeathDefiance() })
}
