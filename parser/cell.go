package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/notaneet/roomstats/config"
	"github.com/notaneet/roomstats/model"
)

var lineBreakRE = regexp.MustCompile(`\r?\n`)

// Parser turns calendar cells into classified programs
type Parser struct {
	classifier *Classifier
	splitMode  config.SplitMode
	rooms      *config.Matcher
}

// NewParser cfg may be nil, then every room is kept and cells are split on marker lines
func NewParser(cfg *config.ParserConfig, tax *config.Taxonomy) (*Parser, error) {
	classifier, err := NewClassifier(tax)
	if err != nil {
		return nil, err
	}

	p := &Parser{classifier: classifier, splitMode: config.SplitMarker, rooms: &config.Matcher{}}
	if cfg != nil {
		switch cfg.SplitMode {
		case "":
		case config.SplitMarker, config.SplitBlank:
			p.splitMode = cfg.SplitMode
		default:
			return nil, fmt.Errorf("unknown split mode %q", cfg.SplitMode)
		}
		p.rooms = &cfg.RoomMatcher
	}
	return p, nil
}

// isSeparator blank lines always end a block, marker sheets also write a lone "&"
func (p *Parser) isSeparator(line string) bool {
	return line == "" || (p.splitMode == config.SplitMarker && line == "&")
}

// SplitBlocks cuts a cell into event blocks of trimmed, non-empty lines
func (p *Parser) SplitBlocks(text string) [][]string {
	var (
		blocks [][]string
		block  []string
	)
	for _, line := range lineBreakRE.Split(text, -1) {
		line = strings.TrimSpace(line)
		if p.isSeparator(line) {
			if len(block) > 0 {
				blocks = append(blocks, block)
				block = nil
			}
			continue
		}
		block = append(block, line)
	}
	if len(block) > 0 {
		blocks = append(blocks, block)
	}
	return blocks
}

// ParseCell parses every event block of one cell. A time line that cannot be
// turned into a session fails the whole cell.
func (p *Parser) ParseCell(text string, date time.Time, room string) ([]model.Program, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var programs []model.Program
	for _, lines := range p.SplitBlocks(text) {
		prog, ok, err := p.parseBlock(lines, date, room)
		if err != nil {
			return nil, err
		}
		if ok {
			programs = append(programs, prog)
		}
	}
	return programs, nil
}

func (p *Parser) parseBlock(lines []string, date time.Time, room string) (model.Program, bool, error) {
	// Title is the first line that is not a time line
	title := ""
	for _, line := range lines {
		if _, _, isTime := model.ParseTimeRange(line); !isTime {
			title = line
			break
		}
	}

	sessions := []model.Session{}
	for _, line := range lines {
		start, end, isTime := model.ParseTimeRange(line)
		if !isTime {
			continue
		}
		s, err := model.NewSession(start, end, p.classifier.SessionType(line, title))
		if err != nil {
			return model.Program{}, false, fmt.Errorf("line %q: %w", line, err)
		}
		sessions = append(sessions, s)
	}

	if title == "" && len(sessions) == 0 {
		return model.Program{}, false, nil
	}

	prog, err := model.NewProgram(date, room, title, sessions, p.classifier.Classify(title))
	if err != nil {
		return model.Program{}, false, err
	}
	return prog, true, nil
}
