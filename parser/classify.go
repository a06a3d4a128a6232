package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
)

type programMatcher struct {
	name string
	re   *regexp.Regexp
}

// Classifier maps block titles and time lines onto the taxonomy.
// It is built once and never changes afterwards.
type Classifier struct {
	tax *config.Taxonomy

	programs []programMatcher
	special  map[string]bool
	apac     map[string]bool
	europe   map[string]bool

	dryRunRE      *regexp.Regexp
	maintenanceRE *regexp.Regexp
	translationRE *regexp.Regexp
}

func NewClassifier(tax *config.Taxonomy) (*Classifier, error) {
	if tax == nil {
		tax = config.DefaultTaxonomy()
	}
	if err := tax.Validate(); err != nil {
		return nil, err
	}

	c := &Classifier{
		tax:     tax,
		special: toSet(tax.SpecialProjects),
		apac:    toSet(tax.APACLanguages),
		europe:  toSet(tax.EuropeLanguages),
	}
	for _, p := range tax.Programs {
		c.programs = append(c.programs, programMatcher{name: p.Name, re: keywordRE(p.Name)})
	}

	var err error
	if c.dryRunRE, err = regexp.Compile("(?i)" + tax.Patterns.DryRun); err != nil {
		return nil, fmt.Errorf("dry run pattern: %w", err)
	}
	if c.maintenanceRE, err = regexp.Compile("(?i)" + tax.Patterns.Maintenance); err != nil {
		return nil, fmt.Errorf("maintenance pattern: %w", err)
	}
	if c.translationRE, err = regexp.Compile("(?i)" + tax.Patterns.Translation); err != nil {
		return nil, fmt.Errorf("translation pattern: %w", err)
	}
	return c, nil
}

// keywordRE word boundary before the keyword, trailing letters allowed ("Satsangs")
func keywordRE(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\w*\b`)
}

// ContainsKeyword reports whether keyword starts a word of text
func ContainsKeyword(text, keyword string) bool {
	return keywordRE(keyword).MatchString(text)
}

// ContainsKeywordPrefix reports whether some whitespace separated word of text,
// at least minLength runes long, is a prefix of keyword. "Rus" hits "Russian".
func ContainsKeywordPrefix(text, keyword string, minLength int) bool {
	key := strings.ToLower(keyword)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) >= minLength && strings.HasPrefix(key, word) {
			return true
		}
	}
	return false
}

// Program first taxonomy entry found in title
func (c *Classifier) Program(title string) string {
	for _, p := range c.programs {
		if p.re.MatchString(title) {
			return p.name
		}
	}
	return c.tax.DefaultProgram
}

// Language first language abbreviated by a word of title
func (c *Classifier) Language(title string) string {
	for _, lang := range c.tax.Languages {
		if ContainsKeywordPrefix(title, lang, c.tax.LanguageMinLength) {
			return lang
		}
	}
	return c.tax.DefaultLanguage
}

// Region cascade, the first rule that holds wins
func (c *Classifier) Region(title, language, program string) string {
	switch {
	case ContainsKeywordPrefix(title, config.RegionAPAC, c.tax.APACMinLength):
		return config.RegionAPAC
	case ContainsKeywordPrefix(title, config.RegionEurope, c.tax.EuropeMinLength):
		return config.RegionEurope
	case c.apac[language]:
		return config.RegionAPAC
	case c.europe[language]:
		return config.RegionEurope
	case c.special[program]:
		return config.RegionPS
	default:
		return config.RegionIndia
	}
}

// Classify derives type, language and region from a block title
func (c *Classifier) Classify(title string) model.Classification {
	program := c.Program(title)
	language := c.Language(title)
	return model.Classification{
		Type:     program,
		Language: language,
		Region:   c.Region(title, language, program),
	}
}

// SessionType of a time line. Both the line and its block title are looked at;
// maintenance beats dry run, translation applies only when neither does.
func (c *Classifier) SessionType(line, title string) model.SessionType {
	match := func(re *regexp.Regexp) bool {
		return re.MatchString(line) || re.MatchString(title)
	}

	switch {
	case match(c.maintenanceRE):
		return model.SessionMaintenance
	case match(c.dryRunRE):
		return model.SessionDryRun
	case match(c.translationRE):
		return model.SessionTranslation
	default:
		return model.SessionLive
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
