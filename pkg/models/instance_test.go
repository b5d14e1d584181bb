package models

import (
	"encoding/json"
	"testing"

	"cogentcore.org/core/math32"
)

func TestPipeTypeNames(t *testing.T) {
	if PipeStraight.String() != "straight" || PipeElbow.String() != "elbow" {
		t.Fatalf("unexpected pipe type names: %v, %v", PipeStraight, PipeElbow)
	}
	if !PipeStraight.Valid() || !PipeElbow.Valid() {
		t.Fatalf("known pipe types must be valid")
	}
	if PipeType(7).Valid() {
		t.Fatalf("unknown pipe type must be invalid")
	}
}

func TestInstanceWireShape(t *testing.T) {
	in := NewInstance(math32.Vec3(1, 2, 3), math32.NewQuat(0, 0, 0, 1), math32.Vec3(1, 0, 0))
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"position":[1,2,3],"rotation":[0,0,0,1],"color":[1,0,0]}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestInstanceAccessors(t *testing.T) {
	rot := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90))
	in := NewInstance(math32.Vec3(4, 5, 6), rot, math32.Vec3(0.25, 0.5, 0.75))
	if p := in.Pos(); p.X != 4 || p.Y != 5 || p.Z != 6 {
		t.Fatalf("expected position (4, 5, 6), got %v", p)
	}
	if q := in.Quat(); q != rot {
		t.Fatalf("expected rotation %v back, got %v", rot, q)
	}
	if in.Color != [3]float32{0.25, 0.5, 0.75} {
		t.Fatalf("unexpected color %v", in.Color)
	}
}
