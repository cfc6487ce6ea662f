// Package render paints the game onto a screen.Screen.
package render

import (
	"fmt"
	"strings"

	"github.com/fchimpan/gh-kusa-snake/internal/game"
	"github.com/fchimpan/gh-kusa-snake/internal/screen"
)

const (
	GlyphBorder = '#'
	GlyphHead   = '@'
	GlyphFood   = '$'
	GlyphBody   = 'o'
	GlyphBlank  = ' '
)

// HelpText is printed beside the bottom border.
const HelpText = "WASD move | X quit"

// sideCol is where the score and help text start, right of the board.
const sideCol = game.Width + 2

// Rows and Cols size a screen that fits the board plus its side text.
const (
	Rows = game.Height
	Cols = game.Width + game.TermMarginCols
)

// Draw paints one frame of st. It does not modify st.
func Draw(scr screen.Screen, st *game.State) {
	scr.Clear()

	for x := 0; x < game.Width; x++ {
		scr.DrawChar(0, x, GlyphBorder)
	}
	scr.DrawText(0, sideCol, fmt.Sprintf("Score: %d", st.Score))

	head := st.Head()
	for y := 1; y < game.Height-1; y++ {
		scr.DrawChar(y, 0, GlyphBorder)
		scr.DrawChar(y, game.Width-1, GlyphBorder)
		for x := 1; x < game.Width-1; x++ {
			scr.DrawChar(y, x, cellGlyph(st, head, game.Cell{X: x, Y: y}))
		}
	}

	for x := 0; x < game.Width; x++ {
		scr.DrawChar(game.Height-1, x, GlyphBorder)
	}
	scr.DrawText(game.Height-1, sideCol, HelpText)

	scr.Refresh()
}

// cellGlyph resolves overlaps as head > food > body > blank.
func cellGlyph(st *game.State, head, c game.Cell) rune {
	if c == head {
		return GlyphHead
	}
	if c == st.Food {
		return GlyphFood
	}
	for _, seg := range st.Snake[1:] {
		if seg == c {
			return GlyphBody
		}
	}
	return GlyphBlank
}

// Rect is a block of cells in screen coordinates.
type Rect struct {
	Row, Col   int
	Rows, Cols int
}

func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Rows && col >= r.Col && col < r.Col+r.Cols
}

var splashLines = []string{
	"--- Terminal Snake ---",
	"Steer with W/A/S/D",
	"Press any key to start...",
}

// Splash shows the title and controls until the first key press and returns
// the area the text covers.
func Splash(scr screen.Screen) Rect {
	scr.Clear()
	row := game.Height / 2
	col := game.Width/2 - 10
	width := 0
	for i, l := range splashLines {
		scr.DrawText(row+i, col, l)
		width = max(width, len(l))
	}
	scr.Refresh()
	return Rect{Row: row, Col: col, Rows: len(splashLines), Cols: width}
}

// GameOver boxes the final result over whatever frame is already drawn and
// returns the area the box covers.
func GameOver(scr screen.Screen, st *game.State) Rect {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score: %d", st.Score),
		"snake " + st.Reason.String(),
		"press any key to exit",
	}

	innerW := 0
	for _, l := range lines {
		innerW = max(innerW, len(l))
	}
	boxW := innerW + 4
	boxH := len(lines) + 2
	x0 := (game.Width - boxW) / 2
	y0 := (game.Height - boxH) / 2

	edge := "+" + strings.Repeat("-", boxW-2) + "+"
	scr.DrawText(y0, x0, edge)
	for i, l := range lines {
		pad := innerW - len(l)
		text := strings.Repeat(" ", pad/2) + l + strings.Repeat(" ", pad-pad/2)
		scr.DrawText(y0+1+i, x0, "| "+text+" |")
	}
	scr.DrawText(y0+boxH-1, x0, edge)

	scr.Refresh()
	return Rect{Row: y0, Col: x0, Rows: boxH, Cols: boxW}
}
