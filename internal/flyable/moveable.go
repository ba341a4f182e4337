package flyable

import (
	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// placeModel mirrors the body pose and velocity into the visual node.
func (f *Flyable) placeModel() {
	body := f.mustBody()
	f.curr = body.WorldTransform()
	f.velocity = body.LinearVelocity()
	f.node.SetWorldTransform(f.curr)
}

func (f *Flyable) moveableUpdate(dt float32) {
	f.age += dt
	f.placeModel()
}

// Transform is the pose mirrored from the body at the end of the last update.
func (f *Flyable) Transform() engine.Transform { return f.curr }

// Position is the mirrored position. After an explosion it is the effect spawn point.
func (f *Flyable) Position() rl.Vector3 { return f.curr.Position }

func (f *Flyable) Velocity() rl.Vector3 { return f.velocity }

// Age is the time in flight in seconds.
func (f *Flyable) Age() float32 { return f.age }
