package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/roomstats/model"
)

func TestNewSession(t *testing.T) {
	s, err := model.NewSession("9:00", "10:30", model.SessionLive)
	require.NoError(t, err)
	assert.Equal(t, 540, s.Start())
	assert.Equal(t, 630, s.End())
	assert.Equal(t, model.SessionLive, s.Type())
	assert.Equal(t, 90, s.Duration())
}

func TestSessionOvernight(t *testing.T) {
	s, err := model.NewSession("23:30", "00:15", model.SessionDryRun)
	require.NoError(t, err)
	assert.Equal(t, 1410, s.Start())
	assert.Equal(t, 15, s.End())
	assert.Equal(t, 45, s.Duration())

	same, err := model.NewSession("8:00", "8:00", model.SessionLive)
	require.NoError(t, err)
	assert.Equal(t, 0, same.Duration())
}

func TestSessionDurationProperty(t *testing.T) {
	for start := 0; start < model.MinutesPerDay; start += 37 {
		for end := 0; end < model.MinutesPerDay; end += 41 {
			s, err := model.NewSession(clock(start), clock(end), model.SessionLive)
			require.NoError(t, err)
			want := ((end-start)%model.MinutesPerDay + model.MinutesPerDay) % model.MinutesPerDay
			require.Equal(t, want, s.Duration(), "%s-%s", clock(start), clock(end))
		}
	}
}

func TestNewSessionInvalidTime(t *testing.T) {
	_, err := model.NewSession("abc", "10:00", model.SessionLive)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidTimeFormat)
	assert.ErrorIs(t, err, model.ErrParseFailure)

	var tfErr *model.InvalidTimeFormatError
	require.True(t, errors.As(err, &tfErr))
	assert.Equal(t, "abc", tfErr.Start)
	assert.Equal(t, "10:00", tfErr.End)

	_, err = model.NewSession("9:00", "ten", model.SessionLive)
	require.True(t, errors.As(err, &tfErr))
	assert.Equal(t, "ten", tfErr.End)
}

func TestNewSessionUnknownType(t *testing.T) {
	_, err := model.NewSession("9:00", "10:00", model.SessionType("rehearsal"))
	assert.ErrorIs(t, err, model.ErrInvariantViolation)
}

func TestSessionTypeCountsAsLive(t *testing.T) {
	assert.True(t, model.SessionLive.CountsAsLive())
	assert.True(t, model.SessionTranslation.CountsAsLive())
	assert.False(t, model.SessionDryRun.CountsAsLive())
	assert.False(t, model.SessionMaintenance.CountsAsLive())
}

func TestSessionMarshalJSON(t *testing.T) {
	s, err := model.NewSession("23:00", "1:00", model.SessionTranslation)
	require.NoError(t, err)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":1380,"end":60,"type":"translation","duration":120}`, string(b))
}

func clock(minutes int) string {
	h, m := minutes/60, minutes%60
	return string(rune('0'+h/10)) + string(rune('0'+h%10)) + ":" + string(rune('0'+m/10)) + string(rune('0'+m%10))
}
