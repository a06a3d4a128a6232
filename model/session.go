package model

import (
	"encoding/json"
	"fmt"
)

// MinutesPerDay is used to wrap sessions that run past midnight
const MinutesPerDay = 24 * 60

// SessionType of a timed line inside an event block
type SessionType string

const (
	SessionLive        SessionType = "live"
	SessionDryRun      SessionType = "dryrun"
	SessionMaintenance SessionType = "maintenance"
	SessionTranslation SessionType = "translation"
)

// Valid reports whether t is one of the known session types
func (t SessionType) Valid() bool {
	switch t {
	case SessionLive, SessionDryRun, SessionMaintenance, SessionTranslation:
		return true
	}
	return false
}

// CountsAsLive live and translation sessions are both billed as live room time
func (t SessionType) CountsAsLive() bool {
	return t == SessionLive || t == SessionTranslation
}

// Session one timed interval of an event block, in minutes since midnight
type Session struct {
	start int
	end   int
	typ   SessionType
}

// NewSession build a session from two raw clock tokens
func NewSession(startToken, endToken string, typ SessionType) (Session, error) {
	if !typ.Valid() {
		return Session{}, Invariant("unknown session type %q", typ)
	}

	sh, sm, err := ParseClockTime(startToken)
	if err != nil {
		return Session{}, &InvalidTimeFormatError{Start: startToken, End: endToken, Err: err}
	}
	eh, em, err := ParseClockTime(endToken)
	if err != nil {
		return Session{}, &InvalidTimeFormatError{Start: startToken, End: endToken, Err: err}
	}

	return Session{start: sh*60 + sm, end: eh*60 + em, typ: typ}, nil
}

func (s Session) Start() int        { return s.start }
func (s Session) End() int          { return s.end }
func (s Session) Type() SessionType { return s.typ }

// Duration in minutes, wrapping past midnight when End is before Start
func (s Session) Duration() int {
	d := s.end - s.start
	if d < 0 {
		d += MinutesPerDay
	}
	return d
}

func (s Session) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d %s", s.start/60, s.start%60, s.end/60, s.end%60, s.typ)
}

// MarshalJSON keeps sessions readable in debug dumps
func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start    int         `json:"start"`
		End      int         `json:"end"`
		Type     SessionType `json:"type"`
		Duration int         `json:"duration"`
	}{s.start, s.end, s.typ, s.Duration()})
}
