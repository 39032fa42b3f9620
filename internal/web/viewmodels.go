package web

import "hadeshelper/internal/run"

// StateView is the JSON shape of a run state.
type StateView struct {
	Weapon         string         `json:"weapon"`
	Aspect         string         `json:"aspect"`
	Gods           []string       `json:"gods"`
	Boons          []string       `json:"boons"`
	Levels         map[string]int `json:"levels"`
	Hammers        int            `json:"hammers"`
	CurrentHealth  int            `json:"current_health"`
	MaxHealth      int            `json:"max_health"`
	Gold           int            `json:"gold"`
	Region         string         `json:"region"`
	Room           int            `json:"room"`
	DeathDefiances int            `json:"death_defiances"`
	Heat           int            `json:"heat"`
	RoomsUntilBoss int            `json:"rooms_until_boss"`
	Revision       uint64         `json:"revision"`
	RoomLog        run.RoomLog    `json:"room_log"`
}

func stateView(st *run.State) StateView {
	gods := st.Gods
	if gods == nil {
		gods = []string{}
	}
	boons := st.Boons
	if boons == nil {
		boons = []string{}
	}
	return StateView{
		Weapon:         st.Weapon,
		Aspect:         st.Aspect,
		Gods:           gods,
		Boons:          boons,
		Levels:         st.Levels,
		Hammers:        st.Hammers,
		CurrentHealth:  st.CurrentHealth,
		MaxHealth:      st.MaxHealth,
		Gold:           st.Gold,
		Region:         st.Region,
		Room:           st.Room,
		DeathDefiances: st.DeathDefiances,
		Heat:           st.Heat,
		RoomsUntilBoss: st.RoomsUntilBoss(),
		Revision:       st.Revision(),
		RoomLog:        st.Log,
	}
}
