package lines

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/simplelines/internal/core"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

const (
	cellWidth = 2  // Screen columns per grid cell
	hudHeight = 3  // Title, stats and timer rows
	sideWidth = 12 // Next/current piece column
	sideGap   = 2
)

// layout holds the screen placement of the board.
type layout struct {
	boardX, boardY int // Top-left of the board box
	boardW, boardH int
	sideX          int
	totalW         int
}

func (g *Game) layout() (layout, bool) {
	size := g.grid.Size()
	l := layout{
		boardW: size*cellWidth + 2,
		boardH: size + 2,
	}
	l.totalW = l.boardW + sideGap + sideWidth
	if g.screenW < l.totalW || g.screenH < hudHeight+l.boardH+1 {
		return l, false
	}
	l.boardX = (g.screenW - l.totalW) / 2
	l.boardY = hudHeight
	l.sideX = l.boardX + l.boardW + sideGap
	return l, true
}

// cellOrigin returns the screen position of a grid cell's left column.
func (l layout) cellOrigin(p lcore.Point, size int) (int, int) {
	return l.boardX + 1 + p.Col*cellWidth, l.boardY + 1 + (size - 1 - p.Row)
}

// inner returns the screen area covered by grid cells, inside the border.
func (l layout) inner(size int) core.Rect {
	return core.NewRect(l.boardX+1, l.boardY+1, size*cellWidth, size)
}

// CellAt maps a screen position to a grid cell. ok is false when the
// position is outside the board.
func (g *Game) CellAt(x, y int) (lcore.Point, bool) {
	l, fits := g.layout()
	if !fits {
		return lcore.Pt(-1, -1), false
	}
	size := g.grid.Size()
	inner := l.inner(size)
	if !inner.Contains(x, y) {
		return lcore.Pt(-1, -1), false
	}
	return lcore.Pt((x-inner.X)/cellWidth, size-1-(y-inner.Y)), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := g.layout()
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderSide(dst, l)
	g.renderStatus(dst, l)
	g.renderPanels(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	y := g.screenH / 2
	dst.DrawText((g.screenW-len(msg))/2, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((g.screenW-len(hint))/2, y+1, hint)
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	title := "SIMPLELINES"
	dst.DrawTextColored(l.boardX+(l.totalW-len(title))/2, 0, title, core.ColorCyan)

	info := fmt.Sprintf("Lines %d  Score %d  Level %d", g.stats.TotalLines, g.stats.Score, g.stats.Level)
	dst.DrawText(l.boardX, 1, info)

	// Timer bar spans the board width.
	inner := l.boardW - 2
	filled := int(g.timer.fraction()*float64(inner) + 0.5)
	color := core.ColorGreen
	switch f := g.timer.fraction(); {
	case f <= 0.25:
		color = core.ColorRed
	case f <= 0.5:
		color = core.ColorYellow
	}
	dst.Set(l.boardX, 2, '[')
	dst.DrawTextColored(l.boardX+1, 2, strings.Repeat("█", filled), color)
	dst.DrawTextColored(l.boardX+1+filled, 2, strings.Repeat("░", inner-filled), core.ColorDim)
	dst.Set(l.boardX+l.boardW-1, 2, ']')
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	size := g.grid.Size()
	dst.DrawBox(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH))

	for row := range size {
		for col := range size {
			p := lcore.Pt(col, row)
			x, y := l.cellOrigin(p, size)
			if b, ok := g.grid.BlockAt(p); ok {
				dst.DrawTextColored(x, y, "██", b.Color)
			} else {
				dst.DrawTextColored(x, y, " ·", core.ColorDim)
			}
		}
	}

	if !g.hasPreview {
		return
	}
	glyph := "▒▒"
	if g.bomb {
		glyph = "**"
	}
	for _, p := range g.preview {
		x, y := l.cellOrigin(p, size)
		dst.DrawTextColored(x, y, glyph, g.piece.Color())
	}
}

func (g *Game) renderSide(dst *core.Screen, l layout) {
	dst.DrawText(l.sideX, l.boardY, "NEXT")
	drawMiniPiece(dst, l.sideX, l.boardY+1, g.next)

	label := "PIECE"
	if g.bomb {
		label = "BOMB!"
	}
	color := core.ColorDefault
	if g.bomb {
		color = core.ColorRed
	}
	dst.DrawTextColored(l.sideX, l.boardY+5, label, color)
	drawMiniPiece(dst, l.sideX, l.boardY+6, g.piece)
}

// drawMiniPiece draws a piece with its top-left bounding corner at (x, y).
func drawMiniPiece(dst *core.Screen, x, y int, p lcore.Piece) {
	lo, hi := p.Bounds()
	for _, c := range p.Cells() {
		dst.DrawTextColored(x+(c.Col-lo.Col)*cellWidth, y+(hi.Row-c.Row), "██", p.Color())
	}
}

func (g *Game) renderStatus(dst *core.Screen, l layout) {
	y := l.boardY + l.boardH
	var msg string
	switch {
	case g.bomb && g.state == StateWait:
		msg = "Bomb! Drop it to blast a hole"
	case g.state == StatePause:
		msg = "Paused"
	case g.state == StateOver && !g.panels[AnimIntro]:
		msg = "Game over"
	}
	if msg != "" {
		dst.DrawText(l.boardX, y, msg)
	}
}

func (g *Game) renderPanels(dst *core.Screen, l layout) {
	centerX := l.boardX + l.boardW/2
	centerY := l.boardY + l.boardH/2

	switch {
	case g.panels[AnimIntro]:
		drawOverlay(dst, centerX, centerY, "SIMPLELINES", "", "Drop pieces, clear lines", "Press Enter to play")
	case g.panels[AnimGameOver]:
		rows := append([]string{"GAME OVER"}, statsLines(g.finalStats)...)
		drawOverlay(dst, centerX, centerY, append(rows, "", "R to replay")...)
	case g.state == StatePause || g.panels[AnimPause]:
		rows := append([]string{"PAUSED"}, statsLines(g.pauseStats)...)
		drawOverlay(dst, centerX, centerY, append(rows, "", "P resume  Q quit")...)
	}
}

func statsLines(s Stats) []string {
	return []string{
		fmt.Sprintf("Lines   %6d", s.TotalLines),
		fmt.Sprintf("Singles %6d", s.Singles),
		fmt.Sprintf("Doubles %6d", s.Doubles),
		fmt.Sprintf("Triples %6d", s.Triples),
		fmt.Sprintf("Quads   %6d", s.Quads),
		fmt.Sprintf("Score   %6d", s.Score),
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
