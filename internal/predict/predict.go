// Package predict suggests the next shell command from history.
//
// Suggestions come from two sources. The directory index records, for each
// directory entered with "cd", the commands run right after arriving there.
// When the current directory has an entry, its most frequent command wins.
// Otherwise the most frequent non-cd command across the whole history is used.
package predict

import (
	"path/filepath"
	"strings"

	"github.com/chazuruo/soon/internal/freq"
	"github.com/chazuruo/soon/internal/history"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// cdPrefix marks a directory change. Matching is literal.
const cdPrefix = "cd "

// Source says where a Suggestion came from.
type Source string

const (
	SourceDirectory Source = "directory"
	SourceGlobal    Source = "global"
)

// Suggestion is the predicted next command.
type Suggestion struct {
	Command string `json:"cmd" yaml:"cmd"`
	Source  Source `json:"source" yaml:"source"`
	// Count is how many times Command occurred in the ranked set.
	Count int `json:"count" yaml:"count"`
}

// Config holds configuration for creating a Predictor.
type Config struct {
	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Predictor picks a next command from parsed history.
type Predictor struct {
	logger *zap.Logger
}

// NewPredictor creates a new Predictor with the given configuration.
func NewPredictor(cfg Config) *Predictor {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{logger: logger}
}

// Predict returns the most likely next command for a user in cwd.
// It reports false when history holds no command other than cd.
func (p *Predictor) Predict(items []history.Item, cwd string) (Suggestion, bool) {
	index := BuildIndex(items)
	key := dirKey(cwd)

	if cmds, ok := index[key]; ok && key != "" {
		if top, ok := freq.MostCommon(cmds); ok {
			p.logger.Debug("directory suggestion",
				zap.String("dir", key),
				zap.Int("candidates", len(cmds)),
				zap.String("cmd", top.Command))
			return Suggestion{Command: top.Command, Source: SourceDirectory, Count: top.Count}, true
		}
	}

	cmds := lo.FilterMap(items, func(item history.Item, _ int) (string, bool) {
		return item.Command, !isCd(item.Command)
	})
	top, ok := freq.MostCommon(cmds)
	if !ok {
		p.logger.Debug("no suggestion", zap.Int("items", len(items)))
		return Suggestion{}, false
	}

	p.logger.Debug("global suggestion",
		zap.String("dir", key),
		zap.String("cmd", top.Command),
		zap.Int("count", top.Count))
	return Suggestion{Command: top.Command, Source: SourceGlobal, Count: top.Count}, true
}

func isCd(cmd string) bool {
	return strings.HasPrefix(cmd, cdPrefix)
}

// dirKey returns the last path component of dir, or "" when dir has none.
func dirKey(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	switch base := filepath.Base(dir); base {
	case ".", "..", string(filepath.Separator):
		return ""
	default:
		return base
	}
}
