package stats

import (
	"encoding/json"

	"github.com/notaneet/roomstats/model"
	"github.com/notaneet/roomstats/utils"
)

// ProgramKey region -> language -> program type, flattened
type ProgramKey struct {
	Region   string
	Language string
	Type     string
}

// ProgramBucket Count is the number of programs with a live session,
// Min the minutes of all their sessions whatever the type
type ProgramBucket struct {
	Count int `json:"count"`
	Min   int `json:"min"`
}

type ProgramStats struct {
	Regions []string

	// first seen order of languages per region
	languages map[string][]string
	buckets   map[ProgramKey]*ProgramBucket
}

func newProgramStats(regions []string) *ProgramStats {
	s := &ProgramStats{
		languages: make(map[string][]string, len(regions)),
		buckets:   map[ProgramKey]*ProgramBucket{},
	}
	for _, r := range regions {
		if _, ok := s.languages[r]; ok {
			continue
		}
		s.Regions = append(s.Regions, r)
		s.languages[r] = []string{}
	}
	return s
}

// Languages that have at least one bucket in region, in the order they appeared
func (s *ProgramStats) Languages(region string) []string {
	return s.languages[region]
}

// Bucket ok is false when nothing was folded into the key
func (s *ProgramStats) Bucket(region, language, typ string) (ProgramBucket, bool) {
	b, ok := s.buckets[ProgramKey{Region: region, Language: language, Type: typ}]
	if !ok {
		return ProgramBucket{}, false
	}
	return *b, true
}

// bucket creates the language and the bucket on first access
func (s *ProgramStats) bucket(key ProgramKey) *ProgramBucket {
	b, ok := s.buckets[key]
	if ok {
		return b
	}

	if utils.IndexOf(s.languages[key.Region], key.Language) < 0 {
		s.languages[key.Region] = append(s.languages[key.Region], key.Language)
	}

	b = &ProgramBucket{}
	s.buckets[key] = b
	return b
}

// MarshalJSON nested region -> language -> type view, used by debug dumps
func (s *ProgramStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.nested())
}

func (s *ProgramStats) nested() map[string]map[string]map[string]ProgramBucket {
	out := make(map[string]map[string]map[string]ProgramBucket, len(s.Regions))
	for _, r := range s.Regions {
		out[r] = map[string]map[string]ProgramBucket{}
	}
	for k, b := range s.buckets {
		if out[k.Region][k.Language] == nil {
			out[k.Region][k.Language] = map[string]ProgramBucket{}
		}
		out[k.Region][k.Language][k.Type] = *b
	}
	return out
}

// GetProgramStats folds programs into region/language/type buckets
func GetProgramStats(regions []string, programs []model.Program) (*ProgramStats, error) {
	s := newProgramStats(regions)

	for _, p := range programs {
		if p.Region == "" || p.Type == "" || p.Language == "" {
			return nil, model.Invariant("program %q is not classified (type=%q lang=%q region=%q)", p.Title, p.Type, p.Language, p.Region)
		}
		if _, ok := s.languages[p.Region]; !ok {
			return nil, model.Invariant("region %q not found", p.Region)
		}

		b := s.bucket(ProgramKey{Region: p.Region, Language: p.Language, Type: p.Type})
		if p.HasLiveSession() {
			b.Count++
		}
		for _, session := range p.Sessions {
			b.Min += session.Duration()
		}
	}
	return s, nil
}
