// Package render turns boards into terminal strings: a box-drawn grid with
// per-value tile colours, a plain variant for logs, and the score HUD.
package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// minInnerWidth fits "2048" with a space either side.
const minInnerWidth = 6

// Layout is the character geometry of a rendered board.
type Layout struct {
	Size   int
	Inner  int // characters between vertical borders
	Width  int
	Height int
}

// LayoutFor computes the geometry for board b.
func LayoutFor(b engine.Board) Layout {
	inner := len(strconv.Itoa(b.MaxTile())) + 2
	if inner < minInnerWidth {
		inner = minInnerWidth
	}
	n := b.Size()
	return Layout{
		Size:   n,
		Inner:  inner,
		Width:  n*(inner+1) + 1,
		Height: n*2 + 1,
	}
}

// Draw paints board b onto a fresh canvas.
func Draw(b engine.Board) *Canvas {
	l := LayoutFor(b)
	c := NewCanvas(l.Width, l.Height)
	cw := l.Inner + 1

	for y := 0; y <= l.Size; y++ {
		py := y * 2
		for x := 0; x <= l.Size; x++ {
			px := x * cw
			c.Set(px, py, corner(x, y, l.Size), 0)
			if x < l.Size {
				c.Fill(px+1, py, l.Inner, '─', 0)
			}
			if y < l.Size {
				c.Set(px, py+1, '│', 0)
			}
		}
	}

	for y := 0; y < l.Size; y++ {
		for x := 0; x < l.Size; x++ {
			val := b[y][x]
			if val == 0 {
				continue
			}

			tone := toneFor(val)
			cellX := x*cw + 1
			cellY := y*2 + 1
			c.Fill(cellX, cellY, l.Inner, ' ', tone)

			valStr := strconv.Itoa(val)
			padLeft := (l.Inner - len(valStr)) / 2
			c.DrawText(cellX+padLeft, cellY, valStr, tone)
		}
	}

	return c
}

func corner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// Board renders b with tile colours.
func Board(b engine.Board) string {
	return Draw(b).Styled(styleFor)
}

// Plain renders b without any styling.
func Plain(b engine.Board) string {
	return Draw(b).String()
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// HUD renders the score line and, once the session is over, a status line.
func HUD(score, best int, status engine.Status) string {
	line := fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("Score"), valueStyle.Render(strconv.Itoa(score)),
		labelStyle.Render("Best"), valueStyle.Render(strconv.Itoa(best)),
	)
	if status != engine.StatusNoMovesAvailable {
		return line
	}
	return line + "\n" + overStyle.Render("GAME OVER") + labelStyle.Render(fmt.Sprintf(" score %d", score))
}

// Summary renders a one-line plain description of a finished board.
func Summary(score, maxTile, moves int) string {
	return fmt.Sprintf("score %d  max tile %d  moves %d", score, maxTile, moves)
}
