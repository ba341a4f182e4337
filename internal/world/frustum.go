package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	viewNear float32 = 0.1
	viewFar  float32 = 1000
)

// Frustum is the six clip planes of a camera, used to skip track triangles
// and bodies that are off screen.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0 with a unit normal pointing inwards.
type plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of camera for a viewport with the given
// aspect ratio (Gribb/Hartmann plane extraction).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, viewNear, viewFar)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, viewNear, viewFar)
	}
	m := rl.MatrixMultiply(view, proj)

	// Clip-space rows of the combined matrix.
	row := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}
	combine := func(r int, sign float32) plane {
		return normalizePlane(plane{
			normal: rl.Vector3{
				X: row[3][0] + sign*row[r][0],
				Y: row[3][1] + sign*row[r][1],
				Z: row[3][2] + sign*row[r][2],
			},
			distance: row[3][3] + sign*row[r][3],
		})
	}

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		f.planes[2*axis] = combine(axis, 1)
		f.planes[2*axis+1] = combine(axis, -1)
	}
	return f
}

func normalizePlane(p plane) plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
