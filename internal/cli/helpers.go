// Package cli contains the shared plumbing behind the weft commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/weft/internal/logging"
)

// CreateLogger configures the application logger. Logs always go to
// Stderr so they never mix into rendered output on Stdout; without debug
// mode the CLI stays silent.
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// LoadContextFile reads a YAML (or JSON) context file into plain data.
func LoadContextFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse context file: %w", err)
	}
	return data, nil
}

// StdoutIsTerminal reports whether Stdout is attached to a terminal.
// Pretty output is only offered on terminals; pipes get raw bytes.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
