package predict

import (
	"strings"

	"github.com/chazuruo/soon/internal/history"
)

// DirIndex maps a directory name to the commands run immediately after
// changing into it, in history order.
type DirIndex map[string][]string

// BuildIndex scans items in order and attributes each first non-cd command
// following a cd to that cd's target directory.
//
// A cd followed by another cd is replaced; only the last target before a
// non-cd command is credited. Targets are keyed by their last path component,
// so "cd ~/src/foo" and "cd foo" share the key "foo".
func BuildIndex(items []history.Item) DirIndex {
	var b indexBuilder
	b.index = DirIndex{}
	for _, item := range items {
		b.step(item.Command)
	}
	return b.index
}

type indexBuilder struct {
	index   DirIndex
	pending string
	open    bool
}

func (b *indexBuilder) step(cmd string) {
	if isCd(cmd) {
		b.pending = dirKey(strings.TrimSpace(strings.TrimPrefix(cmd, cdPrefix)))
		b.open = true
		return
	}
	if !b.open {
		return
	}
	if b.pending != "" {
		b.index[b.pending] = append(b.index[b.pending], cmd)
	}
	b.pending = ""
	b.open = false
}
