package render

import (
	"math/bits"

	"github.com/charmbracelet/lipgloss"
)

// frameStyle draws grid lines.
var frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// tileStyles is indexed by log2 of the tile value. Tiles past the end use
// the last entry.
var tileStyles = []lipgloss.Style{
	frameStyle,        // frame / empty
	tile("0", "255"),  // 2
	tile("0", "223"),  // 4
	tile("15", "215"), // 8
	tile("15", "209"), // 16
	tile("15", "203"), // 32
	tile("15", "196"), // 64
	tile("0", "229"),  // 128
	tile("0", "228"),  // 256
	tile("0", "227"),  // 512
	tile("0", "226"),  // 1024
	tile("0", "220"),  // 2048
	tile("15", "129"), // 4096
	tile("15", "93"),  // 8192
	tile("15", "57"),  // 16384+
}

func tile(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))
}

// toneFor maps a tile value to its tone.
func toneFor(value int) Tone {
	if value <= 0 {
		return 0
	}
	return Tone(bits.Len(uint(value)) - 1)
}

// styleFor returns the style for a tone.
func styleFor(t Tone) lipgloss.Style {
	if int(t) >= len(tileStyles) {
		return tileStyles[len(tileStyles)-1]
	}
	return tileStyles[t]
}
