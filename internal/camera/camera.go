package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Angles are in degrees and all vectors
// are in raylib's Y-up view frame.
type OrbitCamera struct {
	Target   rl.Vector3
	Distance float32
	Yaw      float32
	Pitch    float32

	MinDistance float32
	MaxDistance float32
	LookSpeed   float32 // degrees per pixel of mouse drag
	ZoomSpeed   float32 // distance per wheel notch
	KeySpeed    float32 // degrees per second for arrow keys
}

func New(target rl.Vector3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         -135.0,
		Pitch:       35.0,
		MinDistance: 3,
		MaxDistance: 400,
		LookSpeed:   0.3,
		ZoomSpeed:   4,
		KeySpeed:    90,
	}
}

// Orbit turns the camera around the target.
func (c *OrbitCamera) Orbit(dyaw, dpitch float32) {
	c.Yaw = float32(math.Remainder(float64(c.Yaw+dyaw), 360))
	c.Pitch = rl.Clamp(c.Pitch+dpitch, -89, 89)
}

// Zoom moves the camera towards the target for positive d.
func (c *OrbitCamera) Zoom(d float32) {
	c.Distance = rl.Clamp(c.Distance-d, c.MinDistance, c.MaxDistance)
}

// Update applies mouse and keyboard input: right drag orbits, the wheel
// zooms and the arrow keys orbit.
func (c *OrbitCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		c.Orbit(d.X*c.LookSpeed, d.Y*c.LookSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel * c.ZoomSpeed)
	}

	step := c.KeySpeed * deltaTime
	var dyaw, dpitch float32
	if rl.IsKeyDown(rl.KeyLeft) {
		dyaw -= step
	}
	if rl.IsKeyDown(rl.KeyRight) {
		dyaw += step
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dpitch += step
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dpitch -= step
	}
	c.Orbit(dyaw, dpitch)
}

// Position is where the eye sits for the current angles.
func (c *OrbitCamera) Position() rl.Vector3 {
	yaw := float64(c.Yaw) * math.Pi / 180
	pitch := float64(c.Pitch) * math.Pi / 180
	offset := rl.Vector3{
		X: float32(math.Cos(pitch) * math.Cos(yaw)),
		Y: float32(math.Sin(pitch)),
		Z: float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
