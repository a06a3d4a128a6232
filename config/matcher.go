package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notaneet/roomstats/utils"
)

// Matcher accepts a value when MatchRaw is empty, when a value equals one of
// MatchRaw, or when it matches an entry written as "~regexp".
type Matcher struct {
	MatchRaw utils.StringEnum
	Regexp   []*regexp.Regexp

	compiled bool
}

// Compile prepares the "~" entries, Match compiles lazily otherwise
func (m *Matcher) Compile() error {
	m.Regexp = nil
	for _, s := range m.MatchRaw {
		if !strings.HasPrefix(s, "~") {
			continue
		}
		re, err := regexp.Compile(s[1:])
		if err != nil {
			return fmt.Errorf("matcher %q: %w", s, err)
		}
		m.Regexp = append(m.Regexp, re)
	}
	m.compiled = true
	return nil
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}
	if !m.compiled {
		if err := m.Compile(); err != nil {
			return false
		}
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		}
	}
	for _, re := range m.Regexp {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}
