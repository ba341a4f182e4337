package kart

import (
	"math"
	"testing"

	"kartflight/internal/engine"
	"kartflight/internal/flyable"
	"kartflight/internal/physics"
	"kartflight/internal/track"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ flyable.Kart = (*Kart)(nil)

func TestNew_SettlesOnTerrain(t *testing.T) {
	flat := track.NewFlat("flat", 50, 2)

	k := New("k0", flat, rl.Vector3{X: 1, Y: 2, Z: -30}, 0, zerolog.Nop())

	assert.InDelta(t, 2+Size.Z/2, k.Position().Z, 1e-5)
	assert.InDelta(t, 0, k.Pitch(), 1e-6)
	assert.Equal(t, k.WorldTransform(), k.Body().WorldTransform())
	assert.Equal(t, k.WorldTransform().Position, k.Node().WorldPosition())
	assert.True(t, k.Node().HasTag("kart"))

	owner, ok := k.Body().UserData.(flyable.Kart)
	require.True(t, ok)
	assert.Same(t, k, owner)
}

func TestUpdate_DrivesForward(t *testing.T) {
	flat := track.NewFlat("flat", 50, 0)
	// facing -X
	k := New("k0", flat, rl.Vector3{}, math.Pi/2, zerolog.Nop())
	k.Speed = 10

	k.Update(0.5)

	assert.InDelta(t, -5, k.Position().X, 1e-4)
	assert.InDelta(t, 0, k.Position().Y, 1e-4)
	assert.InDelta(t, -5, k.Body().Position().X, 1e-4)
	assert.InDelta(t, math.Pi/2, flyable.Heading(k.WorldTransform().ForwardDir()), 1e-4)
}

func TestUpdate_TurnsAtTrackEdge(t *testing.T) {
	flat := track.NewFlat("flat", 10, 0)
	k := New("k0", flat, rl.Vector3{Y: 9.5}, 0, zerolog.Nop())
	k.Speed = 10

	k.Update(0.1)

	assert.InDelta(t, 9.5, k.Position().Y, 1e-4)
	assert.InDelta(t, math.Pi, math.Abs(float64(k.Heading())), 1e-4)

	k.Update(0.1)
	assert.InDelta(t, 8.5, k.Position().Y, 1e-4)
}

func TestUpdate_FollowsRampPitch(t *testing.T) {
	const slope = 0.2
	ramp := track.NewHeightfield("ramp", rl.Vector2{X: -20, Y: -20}, 10, 10, 4, track.Ramp(slope))
	k := New("k0", ramp, rl.Vector3{}, 0, zerolog.Nop())
	k.Speed = 5

	k.Update(0.2)

	assert.InDelta(t, slope, k.Pitch(), 1e-4)
	assert.InDelta(t, float32(math.Tan(slope))*k.Position().Y+Size.Z/2, k.Position().Z, 1e-4)
	assert.Greater(t, k.WorldTransform().ForwardDir().Z, float32(0))
}

func TestHandleExplosion(t *testing.T) {
	flat := track.NewFlat("flat", 50, 0)
	k := New("k0", flat, rl.Vector3{}, 0, zerolog.Nop())
	k.Speed = 10

	var got []Explosion
	k.OnExplosion.AddListener(func(e Explosion) { got = append(got, e) })

	k.HandleExplosion(rl.Vector3{X: 40}, false)
	assert.Empty(t, got)
	assert.False(t, k.Stunned())

	k.HandleExplosion(rl.Vector3{X: 2}, false)
	assert.Equal(t, 1, k.Splashes())
	assert.True(t, k.Stunned())

	k.HandleExplosion(rl.Vector3{X: 40}, true)
	assert.Equal(t, 1, k.DirectHits())

	require.Len(t, got, 2)
	assert.False(t, got[0].Direct)
	assert.True(t, got[1].Direct)
	assert.Same(t, k, got[1].Kart)
}

func TestStunnedKartStandsStill(t *testing.T) {
	flat := track.NewFlat("flat", 50, 0)
	k := New("k0", flat, rl.Vector3{}, 0, zerolog.Nop())
	k.Speed = 10

	k.HandleExplosion(k.Position(), true)
	start := k.Position()

	k.Update(1)
	assert.Equal(t, start, k.Position())
	assert.True(t, k.Stunned())

	k.Update(1)
	assert.False(t, k.Stunned())

	k.Update(0.1)
	assert.NotEqual(t, start, k.Position())
}

func TestBodyIsKinematic(t *testing.T) {
	flat := track.NewFlat("flat", 50, 0)
	w := physics.NewWorld(zerolog.Nop())
	k := New("k0", flat, rl.Vector3{}, 0, zerolog.Nop())
	w.AddBody(k.Body())

	before := k.Body().Position()
	w.Step(0.5)

	assert.False(t, k.Body().IsDynamic())
	assert.Equal(t, before, k.Body().Position())
}

func TestWorldTransform_UsesLaunchRotation(t *testing.T) {
	flat := track.NewFlat("flat", 50, 0)
	k := New("k0", flat, rl.Vector3{}, 1, zerolog.Nop())

	fwd := k.WorldTransform().ForwardDir()
	want := rl.Vector3RotateByQuaternion(engine.Forward, flyable.LaunchRotation(0, 1))
	assert.InDelta(t, want.X, fwd.X, 1e-6)
	assert.InDelta(t, want.Y, fwd.Y, 1e-6)
}
