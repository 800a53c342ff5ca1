package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"resprune/internal/domain"
)

func TestFormatSummary(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	got := FormatSummary("drawable", 12, domain.Count{Groups: 3, Files: 5, Bytes: 3 * 1048576 / 2})
	want := "drawable    total 12 delete 3 5 space 1.50 MB"
	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}
}
