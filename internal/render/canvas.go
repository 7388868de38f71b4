package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone selects the style of a canvas cell. Zero is the frame tone; tile
// tones are log2 of the tile value.
type Tone uint8

// cell is a single canvas character.
type cell struct {
	r    rune
	tone Tone
}

// Canvas is a 2D character buffer. Drawing is plain rune placement; styles
// are applied only when the canvas is turned into a string.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Set places a rune. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, tone Tone) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, tone: tone}
}

// Get returns the rune at (x, y), or a space out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x].r
}

// DrawText writes text horizontally starting at (x, y), clipped at the edge.
func (c *Canvas) DrawText(x, y int, text string, tone Tone) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, tone)
		i++
	}
}

// Fill paints a horizontal run of n cells.
func (c *Canvas) Fill(x, y, n int, r rune, tone Tone) {
	for i := 0; i < n; i++ {
		c.Set(x+i, y, r, tone)
	}
}

// String returns the canvas without styling, rows joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range c.cells[y] {
			sb.WriteRune(cl.r)
		}
	}
	return sb.String()
}

// Styled returns the canvas with each tone's style applied.
// Adjacent cells with the same tone are rendered as one run.
func (c *Canvas) Styled(styleFor func(Tone) lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}

		row := c.cells[y]
		x := 0
		for x < len(row) {
			tone := row[x].tone

			var run strings.Builder
			for x < len(row) && row[x].tone == tone {
				run.WriteRune(row[x].r)
				x++
			}
			sb.WriteString(styleFor(tone).Render(run.String()))
		}
	}
	return sb.String()
}
