package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Axes of the game world. Z is up and karts face +Y in local space.
var (
	Right   = rl.Vector3{X: 1, Y: 0, Z: 0}
	Forward = rl.Vector3{X: 0, Y: 1, Z: 0}
	Up      = rl.Vector3{X: 0, Y: 0, Z: 1}
)

// Transform is a rigid pose plus scale. A zero Rotation is treated as identity
// so a zero Transform is a valid origin pose.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

func NewTransform(position rl.Vector3, rotation rl.Quaternion) Transform {
	return Transform{
		Position: position,
		Rotation: rotation,
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// IdentityTransform returns a transform at the origin with no rotation.
func IdentityTransform() Transform {
	return NewTransform(rl.Vector3Zero(), rl.QuaternionIdentity())
}

// Orientation returns the rotation, substituting identity for the zero quaternion.
func (t Transform) Orientation() rl.Quaternion {
	if t.Rotation == (rl.Quaternion{}) {
		return rl.QuaternionIdentity()
	}
	return t.Rotation
}

func (t Transform) scale() rl.Vector3 {
	if t.Scale == (rl.Vector3{}) {
		return rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return t.Scale
}

// Rotate applies only the rotation to a direction vector.
func (t Transform) Rotate(v rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(v, t.Orientation())
}

// Apply maps a local point into the space this transform is expressed in.
func (t Transform) Apply(p rl.Vector3) rl.Vector3 {
	s := t.scale()
	scaled := rl.Vector3{X: p.X * s.X, Y: p.Y * s.Y, Z: p.Z * s.Z}
	return rl.Vector3Add(t.Position, t.Rotate(scaled))
}

// Mul composes t with a child transform o, like btTransform's operator*.
func (t Transform) Mul(o Transform) Transform {
	ps, cs := t.scale(), o.scale()
	return Transform{
		Position: t.Apply(o.Position),
		Rotation: rl.QuaternionNormalize(rl.QuaternionMultiply(t.Orientation(), o.Orientation())),
		Scale:    rl.Vector3{X: ps.X * cs.X, Y: ps.Y * cs.Y, Z: ps.Z * cs.Z},
	}
}

// Basis returns the rotation as a matrix.
func (t Transform) Basis() rl.Matrix {
	return rl.QuaternionToMatrix(t.Orientation())
}

// ForwardDir is the local forward axis expressed in world space.
func (t Transform) ForwardDir() rl.Vector3 {
	return t.Rotate(Forward)
}
