package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/simplelines/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:     "9",
	core.ColorGreen:   "10",
	core.ColorYellow:  "11",
	core.ColorBlue:    "12",
	core.ColorMagenta: "213",
	core.ColorCyan:    "117",
	core.ColorWhite:   "15",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
	core.ColorDim:     "238",
}

// Palette holds the styles for one output. SSH sessions get their own so
// color detection follows the client terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
	help   lipgloss.Style
}

// NewPalette builds the styles with renderer r.
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
		help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for c, code := range colorCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// DefaultPalette styles for the process's own terminal.
func DefaultPalette() *Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Render converts a Screen buffer to a styled string. Runs of cells with the
// same color share one style to keep escape sequences short.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// Help styles the key help line.
func (p *Palette) Help(text string) string {
	return p.help.Render(text)
}

// RenderScreen renders s with the default palette.
func RenderScreen(s *core.Screen) string {
	return DefaultPalette().Render(s)
}
