package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBashParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Item
	}{
		{
			name:    "one command per line",
			content: "git status\ngit log --oneline\nls -la\n",
			want: []Item{
				{Command: "git status"},
				{Command: "git log --oneline"},
				{Command: "ls -la"},
			},
		},
		{
			name:    "trims and skips blank lines",
			content: "  make test  \n\n   \n\tcd /tmp\n",
			want: []Item{
				{Command: "make test"},
				{Command: "cd /tmp"},
			},
		},
		{
			name:    "no trailing newline",
			content: "echo hi",
			want:    []Item{{Command: "echo hi"}},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBashParser().Parse(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZshParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Item
	}{
		{
			name:    "extended history marker",
			content: ": 1700000000:0;ls -la\n",
			want:    []Item{{Command: "ls -la"}},
		},
		{
			name:    "marker without space",
			content: ":1616420000:0;git status\n",
			want:    []Item{{Command: "git status"}},
		},
		{
			name:    "plain lines",
			content: "git status\nmake build\n",
			want: []Item{
				{Command: "git status"},
				{Command: "make build"},
			},
		},
		{
			name:    "bare metadata is dropped",
			content: ": 1700000000:0;\n;;::12\ngo test ./...\n",
			want:    []Item{{Command: "go test ./..."}},
		},
		{
			name:    "command text after marker is trimmed",
			content: ": 1700000000:3;   npm test   \n",
			want:    []Item{{Command: "npm test"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewZshParser().Parse(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, item := range got {
				assert.Empty(t, item.Path, "zsh history never records a path")
			}
		})
	}
}

func TestStripZshMetadata(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{": 1700000000:0;ls -la", "ls -la"},
		{":1700000000:12;make", "make"},
		{"1700000000:0;pwd", "pwd"},
		{"git status", "git status"},
		{"  git status", "  git status"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, stripZshMetadata(tt.line))
		})
	}
}

func TestFishParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Item
	}{
		{
			name:    "record with path",
			content: "- cmd: git status\n  path: /home/u/proj\n\n",
			want:    []Item{{Command: "git status", Path: "/home/u/proj"}},
		},
		{
			name: "records flushed by next cmd",
			content: `- cmd: ls
  when: 1616420000
- cmd: make build
  when: 1616420100
  path: /srv/app
- cmd: exit
`,
			want: []Item{
				{Command: "ls"},
				{Command: "make build", Path: "/srv/app"},
				{Command: "exit"},
			},
		},
		{
			name:    "pending command flushed at end of input",
			content: "- cmd: npm test\n  path: /code/web",
			want:    []Item{{Command: "npm test", Path: "/code/web"}},
		},
		{
			name:    "path without command is dropped",
			content: "  path: /orphan\n- cmd: ls\n",
			want:    []Item{{Command: "ls"}},
		},
		{
			name:    "path after blank line is dropped",
			content: "- cmd: ls\n\n  path: /late\n",
			want:    []Item{{Command: "ls"}},
		},
		{
			name:    "values are trimmed",
			content: "- cmd:   go vet ./...  \n  path:  /repo  \n",
			want:    []Item{{Command: "go vet ./...", Path: "/repo"}},
		},
		{
			name:    "empty command is dropped",
			content: "- cmd:  \n  path: /tmp\n- cmd: pwd\n",
			want:    []Item{{Command: "pwd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFishParser().Parse(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	content := ": 1700000000:0;ls -la\ncd foo\n\nnpm test\n: 1700000001:0;npm test\n"

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellFish} {
		t.Run(shell.String(), func(t *testing.T) {
			first, err := NewParser(shell).Parse(strings.NewReader(content))
			require.NoError(t, err)
			second, err := NewParser(shell).Parse(strings.NewReader(content))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestParser_LineTooLong(t *testing.T) {
	content := strings.Repeat("x", maxLineSize+1)
	_, err := NewBashParser().Parse(strings.NewReader(content))
	assert.Error(t, err)
}

func TestNewParser(t *testing.T) {
	tests := []struct {
		shell Shell
		want  Parser
	}{
		{ShellBash, &BashParser{}},
		{ShellZsh, &ZshParser{}},
		{ShellFish, &FishParser{}},
		{Shell("tcsh"), &BashParser{}},
	}

	for _, tt := range tests {
		t.Run(tt.shell.String(), func(t *testing.T) {
			assert.IsType(t, tt.want, NewParser(tt.shell))
		})
	}
}
