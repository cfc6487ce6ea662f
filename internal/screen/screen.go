// Package screen is the terminal surface the renderer draws on. The real
// terminal is owned by bubbletea; Canvas collects a frame of cells that the
// TUI hands back as its view.
package screen

// Screen is the cell-level drawing surface used by the renderer.
type Screen interface {
	DrawChar(row, col int, glyph rune)
	DrawText(row, col int, s string)
	Clear()
	Refresh()
	Size() (rows, cols int)
}
