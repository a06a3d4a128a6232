package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/parser"
)

var day1 = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
var day2 = day1.AddDate(0, 0, 1)

func session(t *testing.T, start, end string, typ model.SessionType) model.Session {
	t.Helper()
	s, err := model.NewSession(start, end, typ)
	require.NoError(t, err)
	return s
}

func program(t *testing.T, date time.Time, room string, c model.Classification, sessions ...model.Session) model.Program {
	t.Helper()
	p, err := model.NewProgram(date, room, c.Type, sessions, c)
	require.NoError(t, err)
	return p
}

var satsang = model.Classification{Type: "Satsang", Language: "English", Region: "India"}

func TestGetRoomStats(t *testing.T) {
	programs := []model.Program{
		program(t, day1, "Hall", satsang,
			session(t, "9:00", "10:00", model.SessionLive),
			session(t, "10:00", "10:30", model.SessionDryRun)),
		program(t, day1, "Hall", satsang,
			session(t, "18:00", "19:30", model.SessionTranslation),
			session(t, "19:30", "23:30", model.SessionMaintenance)),
		program(t, day2, "Hall", satsang,
			session(t, "23:00", "1:00", model.SessionLive)),
		program(t, day2, "Studio", satsang),
	}

	rooms, err := GetRoomStats([]string{"Hall", "Studio", "Terrace", "Hall"}, programs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hall", "Studio", "Terrace"}, rooms.Rooms)

	hall := rooms.Get("Hall")
	assert.Equal(t, 2, hall.DaysUsed)
	assert.Equal(t, 3, hall.LiveCount)
	assert.Equal(t, 1, hall.DryRunCount)
	assert.Equal(t, 60+90+120, hall.LiveMin)
	assert.Equal(t, 30, hall.DryRunMin)

	// a title without sessions still marks the day
	studio := rooms.Get("Studio")
	assert.Equal(t, RoomStats{DaysUsed: 1}, studio)

	assert.Equal(t, RoomStats{}, rooms.Get("Terrace"))
}

func TestGetRoomStatsUnknownRoom(t *testing.T) {
	programs := []model.Program{program(t, day1, "Basement", satsang)}
	_, err := GetRoomStats([]string{"Hall"}, programs)
	assert.ErrorIs(t, err, model.ErrInvariantViolation)
}

func TestGetRoomStatsInvalidProgram(t *testing.T) {
	_, err := GetRoomStats([]string{"Hall"}, []model.Program{{Room: "Hall", Type: "Satsang", Language: "English", Region: "India", Sessions: []model.Session{}}})
	assert.ErrorIs(t, err, model.ErrInvariantViolation)

	_, err = GetRoomStats([]string{"Hall"}, []model.Program{{Date: day1, Room: "Hall", Type: "Satsang", Language: "English", Region: "India"}})
	assert.ErrorIs(t, err, model.ErrInvariantViolation)
}

func TestGetProgramStats(t *testing.T) {
	hindi := model.Classification{Type: "Step 7", Language: "Hindi", Region: "India"}
	russian := model.Classification{Type: "Other", Language: "Russian", Region: "Europe"}

	programs := []model.Program{
		program(t, day1, "Hall", hindi, session(t, "6:00", "7:00", model.SessionLive)),
		program(t, day1, "Hall", satsang, session(t, "9:00", "10:00", model.SessionLive)),
		// dry run only: minutes but no count
		program(t, day1, "Hall", hindi, session(t, "7:00", "7:30", model.SessionDryRun)),
		// translation does not make a program live
		program(t, day1, "Hall", hindi, session(t, "8:00", "8:45", model.SessionTranslation)),
		program(t, day1, "Hall", russian,
			session(t, "10:00", "11:00", model.SessionMaintenance),
			session(t, "11:00", "12:00", model.SessionLive)),
	}

	s, err := GetProgramStats(config.Regions, programs)
	require.NoError(t, err)
	assert.Equal(t, config.Regions, s.Regions)
	assert.Equal(t, []string{"Hindi", "English"}, s.Languages("India"))
	assert.Equal(t, []string{"Russian"}, s.Languages("Europe"))
	assert.Empty(t, s.Languages("APAC"))

	b, ok := s.Bucket("India", "Hindi", "Step 7")
	require.True(t, ok)
	assert.Equal(t, ProgramBucket{Count: 1, Min: 60 + 30 + 45}, b)

	b, ok = s.Bucket("Europe", "Russian", "Other")
	require.True(t, ok)
	assert.Equal(t, ProgramBucket{Count: 1, Min: 120}, b)

	_, ok = s.Bucket("India", "Hindi", "Satsang")
	assert.False(t, ok)
}

func TestGetProgramStatsInvariants(t *testing.T) {
	_, err := GetProgramStats(config.Regions, []model.Program{{Date: day1, Room: "Hall", Type: "Satsang", Language: "English"}})
	assert.ErrorIs(t, err, model.ErrInvariantViolation)

	mars := model.Classification{Type: "Satsang", Language: "English", Region: "Mars"}
	_, err = GetProgramStats(config.Regions, []model.Program{program(t, day1, "Hall", mars)})
	assert.ErrorIs(t, err, model.ErrInvariantViolation)
}

func TestProgramStatsJSON(t *testing.T) {
	s, err := GetProgramStats(config.Regions, []model.Program{
		program(t, day1, "Hall", satsang, session(t, "9:00", "10:00", model.SessionLive)),
	})
	require.NoError(t, err)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"India":{"English":{"Satsang":{"count":1,"min":60}}},"Europe":{},"APAC":{},"PS":{}}`, string(b))
}

func TestGetStats(t *testing.T) {
	p, err := parser.NewParser(nil, config.DefaultTaxonomy())
	require.NoError(t, err)

	grid := model.Grid{
		{"", "Hall - Projector", "Studio"},
		{"2024-02-29", "Satsang\n9:00 - 10:00"},
		{"2024-03-01", "Satsang\n9:00 - 10:00"},
		{"2024-03-02", "Satsang\n9:00 - 10:00\n&\nSatsang\n19:00 - 20:00"},
	}

	s, err := GetStats(p, grid, day1, day2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hall", "Studio"}, s.Rooms.Rooms)
	assert.Equal(t, RoomStats{DaysUsed: 2, LiveCount: 3, LiveMin: 180}, s.Rooms.Get("Hall"))
	assert.Equal(t, RoomStats{}, s.Rooms.Get("Studio"))

	b, ok := s.Programs.Bucket("India", "English", "Satsang")
	require.True(t, ok)
	assert.Equal(t, ProgramBucket{Count: 3, Min: 180}, b)

	again, err := GetStats(p, grid, day1, day2)
	require.NoError(t, err)
	assert.Equal(t, s, again)
	assert.Len(t, grid, 4)
}
