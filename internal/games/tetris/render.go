package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	hudHeight  = 2 // score line + separator
	cellWidth  = 2 // terminal columns per board cell
	previewGap = 2
	previewW   = 4*cellWidth + 4
	previewH   = 4 + 2

	blockRune = '█'
)

// titleLines is the title screen text, top to bottom.
var titleLines = []string{
	"T E T R I S",
	"",
	"Press ENTER to play",
	"",
	"Controls",
	"←/A  move left     →/D  move right",
	"↓/S  faster        ↑/W  rotate",
	"H    horizontal flip",
	"G    vertical flip",
	"P    pause         Q    quit",
}

// layout holds the screen rectangles for the well and the next preview.
type layout struct {
	well    core.Rect
	preview core.Rect
}

// computeLayout centers the well and preview below the HUD.
func (g *Game) computeLayout(screenW int) layout {
	wellW := g.cfg.Cols*cellWidth + 2
	wellH := g.cfg.Rows + 2
	totalW := wellW + previewGap + previewW

	x := max(0, (screenW-totalW)/2)
	well := core.NewRect(x, hudHeight, wellW, wellH)
	preview := core.NewRect(well.Right()+previewGap, hudHeight, previewW, previewH)
	return layout{well: well, preview: preview}
}

// fits reports whether the layout is fully visible on dst.
func (l layout) fits(dst *core.Screen) bool {
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	return screen.Contains(l.preview.Right()-1, l.preview.Bottom()-1) &&
		screen.Contains(l.well.Right()-1, l.well.Bottom()-1)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseTitle || g.eng == nil {
		g.renderTitle(dst)
		return
	}

	g.renderHUD(dst)

	l := g.computeLayout(dst.Width())
	if !l.fits(dst) {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWell(dst, l.well)
	g.renderPreview(dst, l.preview)

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst,
			"Game Over!",
			fmt.Sprintf("Score: %d", g.eng.Score()),
			"Press ENTER to play again",
			"Press ESC to exit",
		)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderTitle draws the title screen centered on dst.
func (g *Game) renderTitle(dst *core.Screen) {
	top := max(0, (dst.Height()-len(titleLines))/2)
	for i, line := range titleLines {
		if i == 0 {
			x := (dst.Width() - len([]rune(line))) / 2
			dst.DrawTextColored(x, top+i, line, core.ColorBrightCyan)
			continue
		}
		dst.DrawTextCentered(top+i, line)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris - Score: %d  Pieces: %d", g.eng.Score(), g.eng.Locked())
	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderWell draws the border, the locked cells and the falling piece.
func (g *Game) renderWell(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)

	originX, originY := r.X+1, r.Y+1
	for y := range g.eng.Rows() {
		for x := range g.eng.Cols() {
			if c := g.eng.Cell(x, y); c.Filled {
				drawBlock(dst, originX+x*cellWidth, originY+y, c.Color)
			}
		}
	}

	cur := g.eng.Current()
	for _, p := range cur.Cells() {
		// Cells above the top row are not drawn.
		if p.Y < 0 {
			continue
		}
		drawBlock(dst, originX+p.X*cellWidth, originY+p.Y, cur.Color)
	}
}

// renderPreview draws the next piece in its own box.
func (g *Game) renderPreview(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	dst.DrawText(r.X+2, r.Y, " Next ")

	next := g.eng.Next()
	w, h := next.Shape.Width()*cellWidth, next.Shape.Height()
	cx, cy := r.Center()
	originX, originY := cx-w/2, cy-h/2
	for _, p := range next.Shape.Blocks() {
		drawBlock(dst, originX+p.X*cellWidth, originY+p.Y, next.Color)
	}
}

// drawBlock fills one board cell.
func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, blockRune, c)
	}
}

// renderOverlay draws a centered box with one message per line.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}

// pieceString renders a piece's shape for debug logs.
func pieceString(p engine.Piece) string {
	return fmt.Sprintf("%s %s @(%d,%d)", p.Shape, p.Color, p.Anchor.X, p.Anchor.Y)
}
