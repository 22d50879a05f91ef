// Package app provides high-level application logic for soon commands.
//
// Each operation resolves history for a shell and hands it to the core
// packages. Operations return plain output structs; rendering is left to the
// command layer.
package app

import (
	"github.com/chazuruo/soon/internal/errors"
	"github.com/chazuruo/soon/internal/freq"
	"github.com/chazuruo/soon/internal/history"
	"github.com/chazuruo/soon/internal/predict"
	"github.com/chazuruo/soon/internal/stats"
	"go.uber.org/zap"
)

// HistoryLoader reads parsed history for a shell.
// *history.Loader is the production implementation.
type HistoryLoader interface {
	Path(shell history.Shell) (string, bool)
	Load(shell history.Shell) []history.Item
}

// Options configures a Service.
type Options struct {
	// Loader reads shell history. Required.
	Loader HistoryLoader

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Service runs soon's history-backed operations.
type Service struct {
	loader    HistoryLoader
	predictor *predict.Predictor
	logger    *zap.Logger
}

// New creates a Service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:    opts.Loader,
		predictor: predict.NewPredictor(predict.Config{Logger: logger}),
		logger:    logger,
	}
}

// NowOutput contains the result of a prediction.
type NowOutput struct {
	Shell string `json:"shell" yaml:"shell"`
	Cwd   string `json:"cwd" yaml:"cwd"`
	// Suggestion is nil when history holds nothing to suggest.
	Suggestion *predict.Suggestion `json:"suggestion" yaml:"suggestion"`
}

// Now predicts the next command for a user of shell working in cwd.
func (s *Service) Now(shell history.Shell, cwd string) (*NowOutput, error) {
	items, err := s.load("now", shell)
	if err != nil {
		return nil, err
	}

	out := &NowOutput{Shell: shell.String(), Cwd: cwd}
	if suggestion, ok := s.predictor.Predict(items, cwd); ok {
		out.Suggestion = &suggestion
	}
	return out, nil
}

// StatsOutput contains the most used commands.
type StatsOutput struct {
	Shell    string       `json:"shell" yaml:"shell"`
	Total    int          `json:"total" yaml:"total"`
	Top      int          `json:"top" yaml:"top"`
	Commands []freq.Entry `json:"commands" yaml:"commands"`
}

// Stats ranks the n most used commands in the history of shell.
func (s *Service) Stats(shell history.Shell, n int) (*StatsOutput, error) {
	items, err := s.load("stats", shell)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = stats.DefaultTop
	}

	return &StatsOutput{
		Shell:    shell.String(),
		Total:    len(items),
		Top:      n,
		Commands: stats.Top(items, n),
	}, nil
}

// WhichOutput describes the resolved shell.
type WhichOutput struct {
	Shell       string `json:"shell" yaml:"shell"`
	HistoryPath string `json:"history_path,omitempty" yaml:"history_path,omitempty"`
}

// Which reports the resolved shell and the history file soon would read.
// It never touches the file and succeeds for unknown shells.
func (s *Service) Which(shell history.Shell) *WhichOutput {
	out := &WhichOutput{Shell: shell.String()}
	if path, ok := s.loader.Path(shell); ok {
		out.HistoryPath = path
	}
	return out
}

// load rejects an unknown shell before any history I/O and treats an empty
// history as an error.
func (s *Service) load(op string, shell history.Shell) ([]history.Item, error) {
	if shell == history.ShellUnknown || shell == "" {
		return nil, &errors.ShellError{Op: op, Err: errors.ErrUnknownShell}
	}

	items := s.loader.Load(shell)
	if len(items) == 0 {
		s.logger.Debug("history is empty", zap.String("op", op), zap.String("shell", shell.String()))
		return nil, &errors.ShellError{Op: op, Shell: shell.String(), Err: errors.ErrEmptyHistory}
	}
	return items, nil
}
