package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"resprune/internal/adapters/tui/styles"
)

// helpBar renders bindings as "key desc • key desc"
func helpBar(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKey.Render(h.Key)+" "+styles.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// status styles a one-line status message; empty stays empty
func status(message string, isError bool) string {
	switch {
	case message == "":
		return ""
	case isError:
		return styles.ErrorText.Render(message)
	default:
		return styles.Success.Render(message)
	}
}

// screen accumulates the lines of a view
type screen struct {
	lines []string
}

func (s *screen) title(text string) {
	s.lines = append(s.lines, styles.Title.Render(text), "")
}

func (s *screen) add(lines ...string) {
	s.lines = append(s.lines, lines...)
}

func (s *screen) muted(text string) {
	s.add(styles.MutedText.Render(text))
}

func (s *screen) String() string {
	return styles.App.Render(strings.Join(s.lines, "\n"))
}
