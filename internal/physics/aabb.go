package physics

import (
	"math"

	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	min := dx1
	result := rl.Vector3{X: dx1}

	if dx2 < min {
		min = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dy1 < min {
		min = dy1
		result = rl.Vector3{Y: dy1}
	}
	if dy2 < min {
		min = dy2
		result = rl.Vector3{Y: -dy2}
	}
	if dz1 < min {
		min = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < min {
		result = rl.Vector3{Z: -dz2}
	}

	return result
}

// BoxShape is a collision box described by its half extents.
type BoxShape struct {
	HalfExtents rl.Vector3
}

// NewBoxShape builds a box from its full per-axis size.
func NewBoxShape(size rl.Vector3) *BoxShape {
	return &BoxShape{HalfExtents: rl.Vector3Scale(size, 0.5)}
}

// Bounds returns the world-space AABB enclosing the box posed at t.
func (s *BoxShape) Bounds(t engine.Transform) AABB {
	m := t.Basis()
	h := s.HalfExtents
	// Extent of a rotated box along each world axis is |R| * h.
	ext := rl.Vector3{
		X: abs(m.M0)*h.X + abs(m.M4)*h.Y + abs(m.M8)*h.Z,
		Y: abs(m.M1)*h.X + abs(m.M5)*h.Y + abs(m.M9)*h.Z,
		Z: abs(m.M2)*h.X + abs(m.M6)*h.Y + abs(m.M10)*h.Z,
	}
	return AABB{
		Min: rl.Vector3Subtract(t.Position, ext),
		Max: rl.Vector3Add(t.Position, ext),
	}
}

func abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
