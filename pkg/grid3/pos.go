package grid3

import (
	"fmt"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

// Pos is a cell position on the lattice. Coordinates are unsigned on
// purpose: stepping below zero wraps to a huge value that can never pass
// a Bounds check, so downward motion off the lattice needs no signed
// special casing.
type Pos struct {
	X uint32
	Y uint32
	Z uint32
}

// deltas for stepping one cell in each direction. Negative moves rely on
// the uint32 wrap: adding MaxUint32 subtracts one mod 2^32.
var deltas = [NumDirections]Pos{
	XPos: {1, 0, 0},
	YPos: {0, 1, 0},
	ZPos: {0, 0, 1},
	XNeg: {^uint32(0), 0, 0},
	YNeg: {0, ^uint32(0), 0},
	ZNeg: {0, 0, ^uint32(0)},
}

// Step returns the cell one step from p in direction d.
func (p Pos) Step(d Direction) Pos {
	dl := deltas[d]
	return Pos{p.X + dl.X, p.Y + dl.Y, p.Z + dl.Z}
}

// Vec3 converts the cell position to a float vector.
func (p Pos) Vec3() math32.Vector3 {
	return math32.Vec3(float32(p.X), float32(p.Y), float32(p.Z))
}

// String formats the position as "(x, y, z)".
func (p Pos) String() string { return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z) }

// Bounds is the exclusive upper corner of a lattice volume anchored at the
// origin: a position is inside when every coordinate is strictly below the
// corresponding extent.
type Bounds struct {
	X uint32
	Y uint32
	Z uint32
}

// Contains reports whether p lies inside the volume.
func (b Bounds) Contains(p Pos) bool {
	return p.X < b.X && p.Y < b.Y && p.Z < b.Z
}

// Volume returns the number of cells in the volume.
func (b Bounds) Volume() uint64 {
	return uint64(b.X) * uint64(b.Y) * uint64(b.Z)
}

// RandomPos draws a uniformly random position inside the volume, sampling
// the X, then Y, then Z extent. All extents must be positive.
func (b Bounds) RandomPos(rng randx.Rand) Pos {
	return Pos{
		X: uint32(rng.Intn(int(b.X))),
		Y: uint32(rng.Intn(int(b.Y))),
		Z: uint32(rng.Intn(int(b.Z))),
	}
}

// String formats the bounds as "XxYxZ".
func (b Bounds) String() string { return fmt.Sprintf("%dx%dx%d", b.X, b.Y, b.Z) }
