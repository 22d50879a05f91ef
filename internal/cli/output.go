package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/chazuruo/soon/internal/config"
)

// maxCommandWidth is the widest command shown in the stats table, in cells.
const maxCommandWidth = 38

// writeStructured encodes v to w as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// truncateCommand shortens cmd to maxCommandWidth display cells.
func truncateCommand(cmd string) string {
	return runewidth.Truncate(cmd, maxCommandWidth, "…")
}
