package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazuruo/soon/internal/history"
	"github.com/chazuruo/soon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	home := t.TempDir()
	testutil.WriteHistory(t, home, ".bash_history", "ls\ngit status\n")
	testutil.WriteHistory(t, home, ".zsh_history", ": 1700000000:0;make\n")
	testutil.WriteHistory(t, home, ".local/share/fish/fish_history", "- cmd: pwd\n  path: /tmp\n")

	loader := history.NewLoader(home, nil)

	assert.Equal(t, []history.Item{{Command: "ls"}, {Command: "git status"}}, loader.Load(history.ShellBash))
	assert.Equal(t, []history.Item{{Command: "make"}}, loader.Load(history.ShellZsh))
	assert.Equal(t, []history.Item{{Command: "pwd", Path: "/tmp"}}, loader.Load(history.ShellFish))
}

func TestLoader_LoadDegradesToEmpty(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name   string
		loader *history.Loader
		shell  history.Shell
	}{
		{"missing file", history.NewLoader(home, nil), history.ShellBash},
		{"unknown shell", history.NewLoader(home, nil), history.ShellUnknown},
		{"unsupported shell", history.NewLoader(home, nil), history.Shell("tcsh")},
		{"no home", history.NewLoader("", nil), history.ShellZsh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := tt.loader.Load(tt.shell)
			require.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestLoader_LoadDirectoryInsteadOfFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".bash_history"), 0755))

	assert.Empty(t, history.NewLoader(home, nil).Load(history.ShellBash))
}

func TestLoader_PathOverride(t *testing.T) {
	home := t.TempDir()
	custom := testutil.WriteHistory(t, t.TempDir(), "hist", "cargo build\n")

	loader := history.NewLoader(home, nil)
	loader.Paths[history.ShellBash] = custom

	path, ok := loader.Path(history.ShellBash)
	require.True(t, ok)
	assert.Equal(t, custom, path)
	assert.Equal(t, []history.Item{{Command: "cargo build"}}, loader.Load(history.ShellBash))

	// Overrides apply per shell.
	path, ok = loader.Path(history.ShellZsh)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, ".zsh_history"), path)
}
