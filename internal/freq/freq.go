// Package freq counts commands while keeping the order in which each was
// first seen, so ties always resolve to the earliest command.
package freq

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Entry is a command and the number of times it occurred.
type Entry struct {
	Command string `json:"cmd" yaml:"cmd"`
	Count   int    `json:"count" yaml:"count"`
}

// Rank counts cmds and returns one Entry per distinct command, highest count
// first. Commands with equal counts keep first-encountered order.
func Rank(cmds []string) []Entry {
	if len(cmds) == 0 {
		return []Entry{}
	}

	counts := lo.CountValues(cmds)
	entries := lo.Map(lo.Uniq(cmds), func(cmd string, _ int) Entry {
		return Entry{Command: cmd, Count: counts[cmd]}
	})

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries
}

// MostCommon returns the most frequent command in cmds. It reports false when
// cmds is empty.
func MostCommon(cmds []string) (Entry, bool) {
	ranked := Rank(cmds)
	if len(ranked) == 0 {
		return Entry{}, false
	}
	return ranked[0], true
}
