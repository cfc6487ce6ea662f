package screen

import (
	"bytes"
)

// Canvas is a flat row-major cell buffer implementing Screen. Drawing goes to
// a back buffer; Refresh publishes it as the visible frame.
type Canvas struct {
	rows  int
	cols  int
	back  []rune // flat: row*cols + col
	front []rune

	buf bytes.Buffer
}

func NewCanvas(rows, cols int) *Canvas {
	c := &Canvas{}
	c.Resize(rows, cols)
	return c
}

func (c *Canvas) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		c.rows, c.cols = 0, 0
		c.back, c.front = nil, nil
		return
	}
	n := rows * cols
	if c.rows == rows && c.cols == cols && len(c.back) == n {
		return
	}
	c.rows = rows
	c.cols = cols
	c.back = make([]rune, n)
	c.front = make([]rune, n)
	fill(c.back, ' ')
	fill(c.front, ' ')
}

func (c *Canvas) Size() (rows, cols int) {
	return c.rows, c.cols
}

func (c *Canvas) Clear() {
	fill(c.back, ' ')
}

// DrawChar ignores cells outside the canvas.
func (c *Canvas) DrawChar(row, col int, glyph rune) {
	if row < 0 || col < 0 || row >= c.rows || col >= c.cols {
		return
	}
	c.back[row*c.cols+col] = glyph
}

// DrawText writes s left to right from (row, col), clipping at the edge.
func (c *Canvas) DrawText(row, col int, s string) {
	for _, r := range s {
		c.DrawChar(row, col, r)
		col++
	}
}

func (c *Canvas) Refresh() {
	copy(c.front, c.back)
}

// At returns the glyph of the last refreshed frame.
func (c *Canvas) At(row, col int) rune {
	if row < 0 || col < 0 || row >= c.rows || col >= c.cols {
		return ' '
	}
	return c.front[row*c.cols+col]
}

// Row returns one line of the last refreshed frame.
func (c *Canvas) Row(row int) string {
	if row < 0 || row >= c.rows {
		return ""
	}
	off := row * c.cols
	return string(c.front[off : off+c.cols])
}

// Render flushes the last refreshed frame as text. style maps each cell to its
// printed form; nil prints glyphs as they are.
func (c *Canvas) Render(style func(row, col int, r rune) string) string {
	c.buf.Reset()
	for row := 0; row < c.rows; row++ {
		off := row * c.cols
		for col := 0; col < c.cols; col++ {
			r := c.front[off+col]
			if style != nil {
				c.buf.WriteString(style(row, col, r))
			} else {
				c.buf.WriteRune(r)
			}
		}
		c.buf.WriteByte('\n')
	}
	return c.buf.String()
}

func fill(cells []rune, r rune) {
	for i := range cells {
		cells[i] = r
	}
}
