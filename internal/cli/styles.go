package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to one writer so color is only emitted to terminals.
type styles struct {
	title      lipgloss.Style
	suggestion lipgloss.Style
	notice     lipgloss.Style
	failure    lipgloss.Style
	header     lipgloss.Style
	shell      lipgloss.Style
	muted      lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:      r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		suggestion: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		notice:     r.NewStyle().Foreground(lipgloss.Color("3")),
		failure:    r.NewStyle().Foreground(lipgloss.Color("1")),
		header:     r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		shell:      r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		muted:      r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
