package models

import "cogentcore.org/core/math32"

// PipeType selects which mesh an instance belongs to
type PipeType uint8

const (
	// PipeStraight is the straight tube segment, modeled along +Y
	PipeStraight PipeType = iota
	// PipeElbow is the 90-degree corner joining two perpendicular faces
	PipeElbow
)

// NumPipeTypes is the number of distinct pipe meshes
const NumPipeTypes = 2

// String returns the lowercase mesh name used on the wire
func (t PipeType) String() string {
	switch t {
	case PipeStraight:
		return "straight"
	case PipeElbow:
		return "elbow"
	default:
		return "unknown"
	}
}

// Valid reports whether t names a known pipe mesh
func (t PipeType) Valid() bool { return t < NumPipeTypes }

// Instance is one render-ready placement: where a segment sits, how its
// mesh is rotated, and the color of the run it belongs to. Renderers
// consume these records as-is; nothing here refers back to the grid.
type Instance struct {
	Position [3]float32 `json:"position"` // cell coordinates as floats
	Rotation [4]float32 `json:"rotation"` // unit quaternion, x y z w order
	Color    [3]float32 `json:"color"`    // rgb, each in [0, 1]
}

// NewInstance builds an instance from math32 values
func NewInstance(pos math32.Vector3, rot math32.Quat, color math32.Vector3) Instance {
	return Instance{
		Position: [3]float32{pos.X, pos.Y, pos.Z},
		Rotation: [4]float32{rot.X, rot.Y, rot.Z, rot.W},
		Color:    [3]float32{color.X, color.Y, color.Z},
	}
}

// Pos returns the position as a vector
func (in Instance) Pos() math32.Vector3 {
	return math32.Vec3(in.Position[0], in.Position[1], in.Position[2])
}

// Quat returns the rotation as a quaternion
func (in Instance) Quat() math32.Quat {
	return math32.NewQuat(in.Rotation[0], in.Rotation[1], in.Rotation[2], in.Rotation[3])
}
