// Package stats ranks the commands in a shell history.
package stats

import (
	"github.com/chazuruo/soon/internal/freq"
	"github.com/chazuruo/soon/internal/history"
	"github.com/samber/lo"
)

// DefaultTop is the number of rows shown when no limit is configured.
const DefaultTop = 10

// Top returns the n most used commands in items, cd commands included.
// A non-positive n means DefaultTop.
func Top(items []history.Item, n int) []freq.Entry {
	if n <= 0 {
		n = DefaultTop
	}

	cmds := lo.Map(items, func(item history.Item, _ int) string {
		return item.Command
	})
	ranked := freq.Rank(cmds)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
