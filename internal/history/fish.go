package history

import (
	"fmt"
	"io"
	"strings"
)

const (
	fishCmdPrefix  = "- cmd: "
	fishPathPrefix = "  path: "
)

// FishParser implements Parser for fish history files.
type FishParser struct{}

// NewFishParser creates a new FishParser.
func NewFishParser() *FishParser {
	return &FishParser{}
}

// Parse reads fish history records.
//
// Example:
//
//	- cmd: git status
//	  when: 1616420000
//	  path: /home/user/project
//	- cmd: ls
//	  when: 1616420100
//
// A record is emitted when the next "- cmd:" line or a blank line is seen, or
// at end of input. Lines other than cmd and path are ignored.
func (p *FishParser) Parse(r io.Reader) ([]Item, error) {
	var state fishState
	scanner := newScanner(r)

	for scanner.Scan() {
		state.step(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading fish history: %w", err)
	}

	return state.finish(), nil
}

// fishState carries the record being assembled across lines.
type fishState struct {
	items   []Item
	pending *Item
}

func (s *fishState) step(line string) {
	switch {
	case strings.HasPrefix(line, fishCmdPrefix):
		s.flush()
		s.pending = &Item{Command: strings.TrimSpace(strings.TrimPrefix(line, fishCmdPrefix))}
	case strings.HasPrefix(line, fishPathPrefix):
		// A path with no open record has nothing to attach to.
		if s.pending != nil {
			s.pending.Path = strings.TrimSpace(strings.TrimPrefix(line, fishPathPrefix))
		}
	case strings.TrimSpace(line) == "":
		s.flush()
	}
}

func (s *fishState) flush() {
	if s.pending != nil && s.pending.Command != "" {
		s.items = append(s.items, *s.pending)
	}
	s.pending = nil
}

func (s *fishState) finish() []Item {
	s.flush()
	return s.items
}
