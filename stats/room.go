package stats

import (
	"github.com/notaneet/roomstats/model"
)

// RoomStats utilization of one room. DaysUsed is filled when the fold is done.
type RoomStats struct {
	DaysUsed    int `json:"daysUsed"`
	LiveCount   int `json:"liveCount"`
	DryRunCount int `json:"dryRunCount"`
	LiveMin     int `json:"liveMin"`
	DryRunMin   int `json:"dryRunMin"`

	days map[string]bool
}

func (s *RoomStats) add(p model.Program) {
	s.days[p.DateKey()] = true

	for _, session := range p.Sessions {
		switch {
		case session.Type() == model.SessionDryRun:
			s.DryRunCount++
			s.DryRunMin += session.Duration()
		case session.Type().CountsAsLive():
			s.LiveCount++
			s.LiveMin += session.Duration()
		}
		// maintenance is neither
	}
}

// RoomTable stats of every header room, Rooms keeps the header order
type RoomTable struct {
	Rooms []string              `json:"rooms"`
	Stats map[string]*RoomStats `json:"stats"`
}

// Get stats of a room, zero stats for unknown rooms
func (t *RoomTable) Get(room string) RoomStats {
	if s, ok := t.Stats[room]; ok {
		return *s
	}
	return RoomStats{}
}

// GetRoomStats folds programs into per-room stats. Every room in rooms is
// reported, even without events. A program in a room outside rooms means the
// grid and the header disagree, which aborts the fold.
func GetRoomStats(rooms []string, programs []model.Program) (*RoomTable, error) {
	t := &RoomTable{Stats: make(map[string]*RoomStats, len(rooms))}
	for _, room := range rooms {
		if _, ok := t.Stats[room]; ok {
			continue
		}
		t.Rooms = append(t.Rooms, room)
		t.Stats[room] = &RoomStats{days: map[string]bool{}}
	}

	for _, p := range programs {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		s, ok := t.Stats[p.Room]
		if !ok {
			return nil, model.Invariant("room %q not found", p.Room)
		}
		s.add(p)
	}

	for _, s := range t.Stats {
		s.DaysUsed = len(s.days)
		s.days = nil
	}
	return t, nil
}
