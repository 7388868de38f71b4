package engine

import "errors"

var (
	// ErrInvalidConfiguration is returned when a session or board is requested
	// with a size below MinSize or with malformed rows.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidArgument is returned for a direction outside the four moves.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTile is returned when a board holds a value that is neither 0
	// nor a power of two >= 2.
	ErrInvalidTile = errors.New("invalid tile value")

	// ErrSessionOver is returned by Step once no moves are available.
	ErrSessionOver = errors.New("session over")
)
