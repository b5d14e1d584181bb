package world

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/gravitas-games/pipeworks/pkg/grid3"
)

// Mesh orientation is resolved through lookup tables rather than ad hoc
// branching. The canonical straight mesh runs along the Y axis; a straight
// segment therefore needs one of three rotations, picked by its axis (a
// cylinder is symmetric under axis flip). The canonical elbow mesh is
// oriented by composing a base rotation for the outgoing direction with a
// spin about the outgoing axis picked by the incoming direction.

var quatIdentity = math32.NewQuat(0, 0, 0, 1)

// straightRotations maps a segment axis to the rotation taking the
// canonical Y-aligned tube onto that axis.
var straightRotations = [3]math32.Quat{
	grid3.AxisX: math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(-90)),
	grid3.AxisY: quatIdentity,
	grid3.AxisZ: math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(90)),
}

// elbowEntry orients the elbow mesh for one outgoing direction: the mesh
// is first spun about `axis` (the positive end of the outgoing axis) by
// the angle `deg` selects for the incoming direction, then `base` carries
// it onto the outgoing direction.
type elbowEntry struct {
	base math32.Quat
	axis math32.Vector3
	deg  [grid3.NumDirections]float32
}

// elbowTable is exhaustive over the 6 outgoing directions; each deg row
// is defined only for the 4 perpendicular incoming directions, which
// ElbowRotation guarantees before the lookup.
var elbowTable = [grid3.NumDirections]elbowEntry{
	grid3.XPos: {
		base: quatIdentity,
		axis: math32.Vec3(1, 0, 0),
		deg: [grid3.NumDirections]float32{
			grid3.YNeg: 0, grid3.ZNeg: 90, grid3.YPos: 180, grid3.ZPos: -90,
		},
	},
	grid3.XNeg: {
		base: math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90)),
		axis: math32.Vec3(1, 0, 0),
		deg: [grid3.NumDirections]float32{
			grid3.YNeg: 0, grid3.ZNeg: 90, grid3.YPos: 180, grid3.ZPos: -90,
		},
	},
	grid3.YPos: {
		base: quatIdentity,
		axis: math32.Vec3(0, 1, 0),
		deg: [grid3.NumDirections]float32{
			grid3.XNeg: 0, grid3.ZNeg: -90, grid3.XPos: 180, grid3.ZPos: 90,
		},
	},
	grid3.YNeg: {
		base: math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(180)),
		axis: math32.Vec3(0, 1, 0),
		deg: [grid3.NumDirections]float32{
			grid3.XNeg: 0, grid3.ZNeg: -90, grid3.XPos: 180, grid3.ZPos: 90,
		},
	},
	grid3.ZPos: {
		base: math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(90)),
		axis: math32.Vec3(0, 0, 1),
		deg: [grid3.NumDirections]float32{
			grid3.XNeg: 0, grid3.YNeg: 90, grid3.XPos: 180, grid3.YPos: -90,
		},
	},
	grid3.ZNeg: {
		base: math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(-90)),
		axis: math32.Vec3(0, 0, 1),
		deg: [grid3.NumDirections]float32{
			grid3.XNeg: 0, grid3.YNeg: 90, grid3.XPos: 180, grid3.YPos: -90,
		},
	},
}

// StraightRotation returns the rotation for a straight segment running
// along the axis of d. Opposite directions share a rotation.
func StraightRotation(d grid3.Direction) math32.Quat {
	return straightRotations[d.Axis()]
}

// ElbowRotation returns the rotation for an elbow receiving flow moving
// in incoming and sending it out through outgoing. The pair must be
// perpendicular; anything else is a caller bug and fails loudly.
func ElbowRotation(incoming, outgoing grid3.Direction) (math32.Quat, error) {
	if !incoming.IsPerpendicular(outgoing) {
		return math32.Quat{}, fmt.Errorf("elbow from %v to %v: %w", incoming, outgoing, ErrInvalidDirectionPair)
	}
	e := elbowTable[outgoing]
	spin := math32.NewQuatAxisAngle(e.axis, math32.DegToRad(e.deg[incoming]))
	return e.base.Mul(spin), nil
}
