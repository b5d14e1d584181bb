package world

import "errors"

// ErrGridSaturated reports that a fresh start could not find an unoccupied
// cell. It is recoverable: the world is left unchanged and the caller can
// stop generating or retry after widening the bounds.
var ErrGridSaturated = errors.New("grid saturated: no unoccupied cell found")

// ErrInvalidDirectionPair reports an elbow whose incoming and outgoing
// directions are not perpendicular. Random growth can never produce this;
// seeing it means a caller bug, so treat it as fatal.
var ErrInvalidDirectionPair = errors.New("invalid direction pair: elbow directions must be perpendicular")
