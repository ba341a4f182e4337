package flyable

import (
	"math"

	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Heading is the yaw of a world-space forward vector. Facing +Y is zero.
func Heading(forward rl.Vector3) float32 {
	return float32(math.Atan2(float64(-forward.X), float64(forward.Y)))
}

// TerrainPitch returns the pitch that makes a projectile heading along
// heading follow a surface with the given normal.
func TerrainPitch(normal rl.Vector3, heading float32) float32 {
	length := rl.Vector3Length(normal)
	if length == 0 {
		return 0
	}
	x := -float32(math.Sin(float64(heading)))
	y := float32(math.Cos(float64(heading)))
	cos := (normal.X*x + normal.Y*y) / length
	cos = rl.Clamp(cos, -1, 1)
	return float32(math.Acos(float64(cos)) - math.Pi/2)
}

// LaunchRotation is the rotation for (pitch, 0, heading), applied X first then Z.
func LaunchRotation(pitch, heading float32) rl.Quaternion {
	return rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(engine.Up, heading),
		rl.QuaternionFromAxisAngle(engine.Right, pitch),
	)
}

// LaunchTransform places a projectile at owner's origin with owner's heading
// and the pitch of the terrain under the owner, then moves it by offset in
// that frame. Without a surface the launch is flat.
func LaunchTransform(owner engine.Transform, sensor TerrainSensor, offset rl.Vector3) engine.Transform {
	heading := Heading(owner.ForwardDir())

	var pitch float32
	sensor.Update(owner.Position)
	if _, ok := sensor.HoT(); ok {
		pitch = TerrainPitch(sensor.Normal(), heading)
	}

	base := engine.NewTransform(owner.Position, LaunchRotation(pitch, heading))
	return base.Mul(engine.NewTransform(offset, rl.QuaternionIdentity()))
}
