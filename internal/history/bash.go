package history

import (
	"fmt"
	"io"
	"strings"
)

// BashParser implements Parser for bash history files.
type BashParser struct{}

// NewBashParser creates a new BashParser.
func NewBashParser() *BashParser {
	return &BashParser{}
}

// Parse reads bash history: one command per line, no metadata.
//
// Example:
//
//	ls -la
//	git status
//
// Lines are trimmed and blank lines are skipped.
func (p *BashParser) Parse(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := newScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items = append(items, Item{Command: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading bash history: %w", err)
	}

	return items, nil
}
