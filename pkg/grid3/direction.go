package grid3

import (
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

// Axis identifies one of the three lattice axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Direction is one of the six unit directions along the lattice axes.
// The constant order is the draw order used by RandomDirection, so a
// seeded generator always maps the same draw to the same direction.
type Direction uint8

const (
	XPos Direction = iota
	YPos
	ZPos
	XNeg
	YNeg
	ZNeg
)

// NumDirections is the number of distinct lattice directions.
const NumDirections = 6

// Directions lists all six directions in constant order.
var Directions = [NumDirections]Direction{XPos, YPos, ZPos, XNeg, YNeg, ZNeg}

// perpendiculars holds, per direction, the four directions orthogonal to it.
// The order is fixed: RandomPerpendicular indexes into it, so seeded draws
// stay reproducible.
var perpendiculars = [NumDirections][4]Direction{
	XPos: {YPos, YNeg, ZPos, ZNeg},
	YPos: {XPos, XNeg, ZPos, ZNeg},
	ZPos: {YPos, YNeg, XPos, XNeg},
	XNeg: {YPos, YNeg, ZPos, ZNeg},
	YNeg: {XPos, XNeg, ZPos, ZNeg},
	ZNeg: {YPos, YNeg, XPos, XNeg},
}

// vectors maps each direction to its float unit vector.
var vectors = [NumDirections]math32.Vector3{
	XPos: math32.Vec3(1, 0, 0),
	YPos: math32.Vec3(0, 1, 0),
	ZPos: math32.Vec3(0, 0, 1),
	XNeg: math32.Vec3(-1, 0, 0),
	YNeg: math32.Vec3(0, -1, 0),
	ZNeg: math32.Vec3(0, 0, -1),
}

// Axis returns the axis this direction runs along.
func (d Direction) Axis() Axis { return Axis(d % 3) }

// IsNegative reports whether the direction points down its axis.
func (d Direction) IsNegative() bool { return d >= XNeg }

// Opposite returns the direction pointing the other way along the same axis.
func (d Direction) Opposite() Direction { return (d + 3) % NumDirections }

// IsPerpendicular reports whether d and o run along different axes.
func (d Direction) IsPerpendicular(o Direction) bool { return d.Axis() != o.Axis() }

// Perpendiculars returns the four directions orthogonal to d, in fixed order.
func (d Direction) Perpendiculars() [4]Direction { return perpendiculars[d] }

// Vector returns the unit vector for d.
func (d Direction) Vector() math32.Vector3 { return vectors[d] }

// String returns a signed axis label such as "+X" or "-Z".
func (d Direction) String() string {
	switch d {
	case XPos:
		return "+X"
	case YPos:
		return "+Y"
	case ZPos:
		return "+Z"
	case XNeg:
		return "-X"
	case YNeg:
		return "-Y"
	case ZNeg:
		return "-Z"
	default:
		return "Unknown"
	}
}

// RandomDirection draws a uniformly random direction from rng.
func RandomDirection(rng randx.Rand) Direction {
	return Directions[rng.Intn(NumDirections)]
}

// RandomPerpendicular draws one of the four directions orthogonal to d.
func (d Direction) RandomPerpendicular(rng randx.Rand) Direction {
	return perpendiculars[d][rng.Intn(len(perpendiculars[d]))]
}
