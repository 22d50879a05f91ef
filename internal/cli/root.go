package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chazuruo/soon/internal/app"
	"github.com/chazuruo/soon/internal/config"
	"github.com/chazuruo/soon/internal/errors"
	"github.com/chazuruo/soon/internal/history"
	"github.com/chazuruo/soon/internal/upgrade"
)

// Process exit codes. soon update adds its own, see upgrade.Exit*.
const (
	exitOK      = 0
	exitFailure = 1
)

// Command annotations read by the shell guard and config loading.
const (
	annotationNoShell        = "soon/no-shell"
	annotationConfigOptional = "soon/config-optional"
)

// Env is the process environment a command tree runs against.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	// LookupEnv reads environment variables such as $SHELL.
	LookupEnv func(key string) (string, bool)

	// Home is the user's home directory. Empty if it could not be resolved.
	Home string

	// Cwd is the current working directory.
	Cwd string

	// Loader replaces the history file loader. Nil reads real history files.
	Loader app.HistoryLoader

	// UpdateBaseURL replaces the GitHub API root used by soon update.
	UpdateBaseURL string

	// HTTPClient is used by soon update. Nil means http.DefaultClient.
	HTTPClient *http.Client
}

// OSEnv returns an Env backed by the running process.
func OSEnv() Env {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return Env{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		Home:      home,
		Cwd:       cwd,
	}
}

func (e Env) getenv(key string) string {
	if e.LookupEnv == nil {
		return ""
	}
	v, _ := e.LookupEnv(key)
	return v
}

// BuildInfo identifies the running binary. Set at build time using ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Session is the state shared by one invocation's commands. Its fields are
// filled in by the root command's pre-run hook before any command runs.
type Session struct {
	env   Env
	build BuildInfo
	opts  GlobalOptions

	cfg        *config.Config
	configPath string
	format     string
	logger     *zap.Logger
	shell      history.Shell
	svc        *app.Service
}

// NewSession creates a Session for env.
func NewSession(env Env, build BuildInfo) *Session {
	if env.Stdout == nil {
		env.Stdout = io.Discard
	}
	if env.Stderr == nil {
		env.Stderr = io.Discard
	}
	return &Session{env: env, build: build, logger: zap.NewNop()}
}

// Execute runs soon with args and returns the process exit code.
func Execute(args []string, env Env, build BuildInfo) int {
	s := NewSession(env, build)
	root := NewRootCommand(s)
	root.SetArgs(args)
	root.SetOut(s.env.Stdout)
	root.SetErr(s.env.Stderr)

	err := root.ExecuteContext(context.Background())
	_ = s.logger.Sync()
	return s.report(err)
}

// NewRootCommand creates the soon command tree bound to s.
func NewRootCommand(s *Session) *cobra.Command {
	root := &cobra.Command{
		Use:   "soon",
		Short: "Predict your next shell command",
		Long: `soon reads your shell history and suggests the command you are most
likely to run next.

Commands run right after you cd into a directory are remembered for that
directory name. When the current directory has such commands, the most
frequent one is suggested; otherwise soon falls back to your most used
command overall.

Run without a subcommand, soon behaves like "soon now".`,
		Example: `  soon                 # suggest the next command
  soon stats --top 5   # five most used commands
  soon --shell fish    # read fish history regardless of $SHELL
  soon which           # show the detected shell`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(s)
		},
	}

	AddGlobalFlags(root, &s.opts)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(NewNowCommand(s))
	root.AddCommand(NewStatsCommand(s))
	root.AddCommand(NewWhichCommand(s))
	root.AddCommand(NewLearnCommand(s))
	root.AddCommand(NewUpdateCommand(s))
	root.AddCommand(NewVersionCommand(s))
	root.AddCommand(NewConfigCommand(s))

	return root
}

// setup loads configuration, builds the logger, resolves the shell and
// rejects an unknown shell for commands that need history.
func (s *Session) setup(cmd *cobra.Command) error {
	cfg, err := s.loadConfig(cmd)
	if err != nil {
		return err
	}
	s.cfg = cfg

	s.format = s.opts.Format
	if s.format == "" {
		s.format = cfg.Format
	}
	if err := config.ValidateFormat(s.format); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalid, err)
	}

	level, _ := zapcore.ParseLevel(cfg.LogLevel)
	if s.opts.Verbose {
		level = zapcore.DebugLevel
	}
	s.logger = newLogger(s.env.Stderr, level)

	override := s.opts.Shell
	if override == "" {
		override = cfg.Shell
	}
	s.shell = history.DetectShell(override, s.env.getenv("SHELL"))
	s.logger.Debug("resolved shell",
		zap.String("shell", s.shell.String()),
		zap.String("override", override),
		zap.String("config", s.configPath))

	s.svc = app.New(app.Options{Loader: s.historyLoader(), Logger: s.logger})

	if s.shell == history.ShellUnknown && requiresShell(cmd) {
		return &errors.ShellError{Op: cmd.Name(), Err: errors.ErrUnknownShell}
	}
	return nil
}

func (s *Session) configEnv() config.Env {
	env := config.Env{Home: s.env.Home, LookupEnv: s.env.LookupEnv}
	if env.LookupEnv == nil {
		env.LookupEnv = func(string) (string, bool) { return "", false }
	}
	return env
}

func (s *Session) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	env := s.configEnv()

	var (
		cfg *config.Config
		err error
	)
	if s.opts.ConfigPath == "" {
		s.configPath = config.DetectConfigPath(env)
		cfg, err = config.LoadWithDefaults(env)
	} else {
		s.configPath = s.opts.ConfigPath
		cfg, err = config.Load(s.opts.ConfigPath, env)
	}

	// Commands that write the config must work when the current one is
	// missing or broken.
	if err != nil && cmd.Annotations[annotationConfigOptional] == "true" {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

func (s *Session) historyLoader() app.HistoryLoader {
	if s.env.Loader != nil {
		return s.env.Loader
	}
	loader := history.NewLoader(s.env.Home, s.logger)
	for shell, path := range s.cfg.HistoryPaths() {
		loader.Paths[history.Shell(shell)] = path
	}
	return loader
}

// requiresShell reports whether cmd needs a known shell to run.
func requiresShell(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
		if c.Annotations[annotationNoShell] == "true" {
			return false
		}
	}
	return true
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// report prints err for the user and maps it to an exit code.
func (s *Session) report(err error) int {
	if err == nil {
		return exitOK
	}

	st := newStyles(s.env.Stderr)
	w := s.env.Stderr

	var ue *upgrade.UpgradeError
	if stderrors.As(err, &ue) {
		if ue.Code != upgrade.ExitAlreadyLatest {
			msg := ue.Message
			if ue.Cause != nil {
				msg = fmt.Sprintf("%s: %v", ue.Message, ue.Cause)
			}
			fmt.Fprintln(w, st.failure.Render("⚠️ "+msg))
		}
		return ue.Code
	}

	switch {
	case errors.IsUnknownShell(err):
		fmt.Fprintln(w, st.failure.Render("⚠️ Unknown shell. Please specify with --shell."))
	case errors.IsEmptyHistory(err):
		shell := s.shell.String()
		if se, ok := errors.AsShellError(err); ok && se.Shell != "" {
			shell = se.Shell
		}
		fmt.Fprintln(w, st.failure.Render(fmt.Sprintf("⚠️ Failed to load history for %s.", shell)))
	case errors.IsAlreadyExists(err):
		fmt.Fprintln(w, st.failure.Render(fmt.Sprintf("Error: %v (use --force to overwrite)", err)))
	default:
		fmt.Fprintln(w, st.failure.Render(fmt.Sprintf("Error: %v", err)))
	}
	return exitFailure
}
