package cli

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewPrettyRenderer returns a function that renders markdown output for
// the terminal using glamour. When the terminal offers no color profile
// the output passes through untouched.
func NewPrettyRenderer() func(string) (string, error) {
	if termenv.ColorProfile() == termenv.Ascii {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
