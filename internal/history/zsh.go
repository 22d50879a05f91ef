package history

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// extendedMarker matches the EXTENDED_HISTORY prefix ": <timestamp>:<elapsed>;".
var extendedMarker = regexp.MustCompile(`^:\s*\d+:\d+;`)

// ZshParser implements Parser for zsh history files.
type ZshParser struct{}

// NewZshParser creates a new ZshParser.
func NewZshParser() *ZshParser {
	return &ZshParser{}
}

// Parse reads zsh history, one command per line.
//
// Lines written with EXTENDED_HISTORY carry a metadata prefix:
//
//	: 1616420000:0;ls -la
//	: 1616420100:1;git status
//
// The prefix is removed before the line is trimmed. Lines that are empty after
// stripping are skipped.
func (p *ZshParser) Parse(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := newScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(stripZshMetadata(scanner.Text()))
		if line == "" {
			continue
		}
		items = append(items, Item{Command: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading zsh history: %w", err)
	}

	return items, nil
}

// stripZshMetadata removes a leading metadata marker from a zsh history line.
// A full extended-history marker is removed as a unit; otherwise any leading
// run of digits, ':' and ';' is dropped.
func stripZshMetadata(line string) string {
	if loc := extendedMarker.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	return strings.TrimLeft(line, ":;0123456789")
}
