package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Arlandrian/HexicClone/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "SCORE 15", core.ColorBrightWhite)
	s.SetColor(1, 1, 'o', core.ColorRed)
	s.SetColor(5, 1, 'o', core.ColorRed)
	s.SetColor(9, 1, '@', core.ColorOrange)
	s.SetColor(2, 2, 'x', core.Color(200))

	got := RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen =\n%q\nwant\n%q", got, s.String())
	}
	if n := strings.Count(got, "\n"); n != 2 {
		t.Errorf("expected 2 line breaks, got %d", n)
	}
}

func TestCellStyleUnknownColor(t *testing.T) {
	if got := cellStyle(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render plain, got %q", got)
	}
}
