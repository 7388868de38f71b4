package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions returns all four move directions in a fixed order.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "L" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("engine: direction %q: %w", s, ErrInvalidArgument)
}
