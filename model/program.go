package model

import (
	"strings"
	"time"
)

// DateLayout used for day keys and for dates written back into grids
const DateLayout = "2006-01-02"

// Program one classified event block of a calendar cell
type Program struct {
	Date     time.Time `json:"date"`     // Day of the grid row
	Room     string    `json:"room"`     // Canonical room name
	Title    string    `json:"title"`    // First non-time line of the block, may be empty
	Sessions []Session `json:"sessions"` // Time lines in text order

	Type     string `json:"type"`     // Program type from the taxonomy
	Language string `json:"language"` // Language from the taxonomy
	Region   string `json:"region"`   // Region from the region cascade
}

// Classification is what a classifier derives from a block title
type Classification struct {
	Type     string
	Language string
	Region   string
}

// NewProgram builds a validated record. room is canonicalized.
func NewProgram(date time.Time, room, title string, sessions []Session, c Classification) (Program, error) {
	p := Program{
		Date:     Day(date),
		Room:     CanonicalRoom(room),
		Title:    title,
		Sessions: sessions,
		Type:     c.Type,
		Language: c.Language,
		Region:   c.Region,
	}
	if p.Sessions == nil {
		p.Sessions = []Session{}
	}
	if err := p.Validate(); err != nil {
		return Program{}, err
	}
	return p, nil
}

// Validate checks the fields every aggregator relies on
func (p Program) Validate() error {
	switch {
	case p.Date.IsZero():
		return Invariant("program %q has no date", p.Title)
	case p.Room == "":
		return Invariant("program %q has no room", p.Title)
	case p.Sessions == nil:
		return Invariant("program %q has no session list", p.Title)
	case p.Type == "" || p.Language == "" || p.Region == "":
		return Invariant("program %q is not classified (type=%q lang=%q region=%q)", p.Title, p.Type, p.Language, p.Region)
	}
	return nil
}

// DateKey identifies the day of the record
func (p Program) DateKey() string {
	return p.Date.Format(DateLayout)
}

// HasLiveSession only strictly live sessions count, translation does not
func (p Program) HasLiveSession() bool {
	for _, s := range p.Sessions {
		if s.Type() == SessionLive {
			return true
		}
	}
	return false
}

// CanonicalRoom "Hall A - Projector" -> "Hall A"
func CanonicalRoom(header string) string {
	return strings.TrimSpace(strings.SplitN(header, " - ", 2)[0])
}

// Day truncates t to midnight in its own location
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
