package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Arlandrian/HexicClone/internal/core"
)

// palette holds the ANSI color index of each core.Color, indexed by value.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for c, code := range palette {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func cellStyle(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns the screen buffer into terminal output.
//
// Cells are written in runs of one color. Blank cells take the color of the
// run they sit in, so the gaps of the hex board don't break runs apart.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		color, colored := core.ColorDefault, false
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(cellStyle(color).Render(string(run)))
				run = run[:0]
			}
		}

		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' && (!colored || cell.Color != color) {
				if colored {
					flush()
				}
				color, colored = cell.Color, true
			}
			run = append(run, cell.Rune)
		}
		flush()
	}
	return sb.String()
}
