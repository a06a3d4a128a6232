package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Region names. The region cascade refers to them directly, so they are not configurable.
const (
	RegionIndia  = "India"
	RegionEurope = "Europe"
	RegionAPAC   = "APAC"
	RegionPS     = "PS"
)

// Regions every stats table is seeded with, in report order
var Regions = []string{RegionIndia, RegionEurope, RegionAPAC, RegionPS}

// ProgramType named program and how many live sessions one instance of it spans
type ProgramType struct {
	Name     string `yaml:"name"`
	Sessions int    `yaml:"sessions"`
}

// SessionPatterns case-insensitive regexps that retype a time line
type SessionPatterns struct {
	DryRun      string `yaml:"dry_run"`
	Maintenance string `yaml:"maintenance"`
	Translation string `yaml:"translation"`
}

// Taxonomy the fixed ordered keyword lists used by the classifier.
// Order is significant everywhere: the first match wins.
type Taxonomy struct {
	// Programs in match order. DefaultProgram is appended when missing.
	Programs        []ProgramType `yaml:"programs"`
	DefaultProgram  string        `yaml:"default_program"`
	SpecialProjects []string      `yaml:"special_projects"`

	Languages       []string `yaml:"languages"`
	DefaultLanguage string   `yaml:"default_language"`

	APACLanguages   []string `yaml:"apac_languages"`
	EuropeLanguages []string `yaml:"europe_languages"`

	LanguageMinLength int `yaml:"language_min_length"`
	APACMinLength     int `yaml:"apac_min_length"`
	EuropeMinLength   int `yaml:"europe_min_length"`

	Patterns SessionPatterns `yaml:"session_patterns"`
}

var specialProjects = []string{
	"Hara Hara Mahadev",
	"Nirvana Shatakam",
	"Kalaripayattu",
	"Guru Paduka Stotram",
}

// DefaultTaxonomy the full program list, including the special projects
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Programs: []ProgramType{
			{Name: "Step 7", Sessions: 5},
			{Name: "7 Day", Sessions: 7},
			{Name: "Satsang", Sessions: 1},
			{Name: "Hara Hara Mahadev", Sessions: 4},
			{Name: "Nirvana Shatakam", Sessions: 6},
			{Name: "Kalaripayattu", Sessions: 9},
			{Name: "Guru Paduka Stotram", Sessions: 7},
			{Name: "Other", Sessions: 1},
		},
		DefaultProgram:  "Other",
		SpecialProjects: append([]string(nil), specialProjects...),
		Languages: []string{
			"English", "Hindi", "Tamil", "Telugu", "Kannada", "Marathi", "Malayalam", "Bangla",
			"Russian", "Spanish", "German", "Mandarin", "French", "Italian", "Arabic",
		},
		DefaultLanguage:   "English",
		APACLanguages:     []string{"Spanish"},
		EuropeLanguages:   []string{"Russian", "German", "Italian", "French", "Arabic"},
		LanguageMinLength: 3,
		APACMinLength:     4,
		EuropeMinLength:   2,
		Patterns: SessionPatterns{
			DryRun:      `dry[-\s]?run|test|mic check|setup`,
			Maintenance: `maintenance`,
			Translation: `translation`,
		},
	}
}

// Normalize fills zero values from DefaultTaxonomy so partial files still work
func (t *Taxonomy) Normalize() {
	d := DefaultTaxonomy()
	if len(t.Programs) == 0 {
		t.Programs = d.Programs
	}
	if t.DefaultProgram == "" {
		t.DefaultProgram = d.DefaultProgram
	}
	if t.SpecialProjects == nil {
		t.SpecialProjects = d.SpecialProjects
	}
	if len(t.Languages) == 0 {
		t.Languages = d.Languages
	}
	if t.DefaultLanguage == "" {
		t.DefaultLanguage = d.DefaultLanguage
	}
	if t.APACLanguages == nil {
		t.APACLanguages = d.APACLanguages
	}
	if t.EuropeLanguages == nil {
		t.EuropeLanguages = d.EuropeLanguages
	}
	if t.LanguageMinLength <= 0 {
		t.LanguageMinLength = d.LanguageMinLength
	}
	if t.APACMinLength <= 0 {
		t.APACMinLength = d.APACMinLength
	}
	if t.EuropeMinLength <= 0 {
		t.EuropeMinLength = d.EuropeMinLength
	}
	if t.Patterns.DryRun == "" {
		t.Patterns.DryRun = d.Patterns.DryRun
	}
	if t.Patterns.Maintenance == "" {
		t.Patterns.Maintenance = d.Patterns.Maintenance
	}
	if t.Patterns.Translation == "" {
		t.Patterns.Translation = d.Patterns.Translation
	}

	// The default program is always the last column
	for i, p := range t.Programs {
		if p.Name == t.DefaultProgram {
			if i != len(t.Programs)-1 {
				t.Programs = append(append(t.Programs[:i:i], t.Programs[i+1:]...), p)
			}
			return
		}
	}
	t.Programs = append(t.Programs, ProgramType{Name: t.DefaultProgram, Sessions: 1})
}

// Validate rejects taxonomies the classifier cannot work with
func (t *Taxonomy) Validate() error {
	seen := map[string]bool{}
	for _, p := range t.Programs {
		if p.Name == "" {
			return errors.New("taxonomy: program with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("taxonomy: duplicate program %q", p.Name)
		}
		if p.Sessions <= 0 {
			return fmt.Errorf("taxonomy: program %q needs a positive session count", p.Name)
		}
		seen[p.Name] = true
	}
	if !seen[t.DefaultProgram] {
		return fmt.Errorf("taxonomy: default program %q is not listed", t.DefaultProgram)
	}
	for _, sp := range t.SpecialProjects {
		if !seen[sp] {
			return fmt.Errorf("taxonomy: special project %q is not a program", sp)
		}
	}

	langs := map[string]bool{}
	for _, l := range t.Languages {
		if langs[l] {
			return fmt.Errorf("taxonomy: duplicate language %q", l)
		}
		langs[l] = true
	}
	if !langs[t.DefaultLanguage] {
		return fmt.Errorf("taxonomy: default language %q is not listed", t.DefaultLanguage)
	}

	for name, expr := range map[string]string{
		"dry_run":     t.Patterns.DryRun,
		"maintenance": t.Patterns.Maintenance,
		"translation": t.Patterns.Translation,
	} {
		if _, err := regexp.Compile(expr); err != nil {
			return fmt.Errorf("taxonomy: session pattern %s: %w", name, err)
		}
	}
	return nil
}

// ProgramNames report column order
func (t *Taxonomy) ProgramNames() []string {
	names := make([]string, len(t.Programs))
	for i, p := range t.Programs {
		names[i] = p.Name
	}
	return names
}

// SessionsPerProgram expected live sessions of one instance, 1 for unknown types
func (t *Taxonomy) SessionsPerProgram(name string) int {
	for _, p := range t.Programs {
		if p.Name == name {
			return p.Sessions
		}
	}
	return 1
}

// LoadTaxonomy reads a YAML taxonomy. An empty path yields DefaultTaxonomy.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	if path == "" {
		return DefaultTaxonomy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	t.Normalize()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
