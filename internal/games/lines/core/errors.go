package core

import "errors"

// Sentinel errors returned by the engine core. Callers wrap them with
// fmt.Errorf("...: %w") and test them with errors.Is.
var (
	// ErrOutOfBounds is returned for grid coordinates outside [0,size).
	// Coordinates are never clamped.
	ErrOutOfBounds = errors.New("lines: coordinate out of bounds")

	// ErrOccupied is returned when placing a block on an occupied cell.
	ErrOccupied = errors.New("lines: cell already occupied")

	// ErrIllegalPlacement is returned when the resolver cannot find four legal
	// cells for the piece. A partial placement must never be attempted.
	ErrIllegalPlacement = errors.New("lines: no legal placement")

	// ErrInvalidSize is returned when a grid is constructed with a non-positive size.
	ErrInvalidSize = errors.New("lines: invalid grid size")

	// ErrInvalidAnchor is returned for an anchor index outside 0..3.
	ErrInvalidAnchor = errors.New("lines: invalid anchor index")
)
