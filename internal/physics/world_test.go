package physics

import (
	"testing"

	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	entered []*Body
	exited  []*Body
	onEnter func(other *Body)
}

func (r *recorder) OnContactEnter(other *Body) {
	r.entered = append(r.entered, other)
	if r.onEnter != nil {
		r.onEnter(other)
	}
}

func (r *recorder) OnContactExit(other *Body) {
	r.exited = append(r.exited, other)
}

func boxAt(mass float32, x, y, z float32) *Body {
	return NewBody(mass, engine.NewTransform(rl.Vector3{X: x, Y: y, Z: z}, rl.QuaternionIdentity()),
		NewBoxShape(rl.Vector3{X: 1, Y: 1, Z: 1}))
}

func TestAddBodyCopiesWorldGravity(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	b := boxAt(1, 0, 0, 0)

	w.AddBody(b)
	w.AddBody(b)

	assert.Equal(t, DefaultGravity, b.Gravity())
	assert.Len(t, w.Bodies(), 1)
	assert.NotZero(t, b.ID())
	assert.True(t, b.InWorld())

	w.RemoveBody(b)
	w.RemoveBody(b)
	assert.False(t, w.Contains(b))
	assert.Empty(t, w.Bodies())
}

func TestStepIntegratesVelocityAndForce(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	b := boxAt(2, 0, 0, 10)
	w.AddBody(b)
	b.SetGravity(rl.Vector3Zero())
	b.SetLinearVelocity(rl.Vector3{X: 0, Y: 4, Z: 0})
	b.ApplyCentralForce(rl.Vector3{X: 0, Y: 0, Z: 2})

	w.Step(0.5)

	// a = F/m = 1, so vz = 0.5 after the step.
	assert.InDelta(t, 0.5, b.LinearVelocity().Z, 1e-5)
	assert.InDelta(t, 2.0, b.Position().Y, 1e-5)
	assert.InDelta(t, 10.25, b.Position().Z, 1e-5)
	assert.Equal(t, rl.Vector3Zero(), b.Force(), "force accumulator is cleared every step")
}

func TestStaticBodiesDoNotMove(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	b := boxAt(0, 1, 2, 3)
	w.AddBody(b)
	b.SetLinearVelocity(rl.Vector3{X: 5})

	w.Step(1)

	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, b.Position())
}

func TestAngularFactorZeroFreezesRotation(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	b := boxAt(1, 0, 0, 0)
	w.AddBody(b)
	b.SetGravity(rl.Vector3Zero())
	b.SetAngularVelocity(rl.Vector3{Z: 3})
	b.SetAngularFactor(0)
	b.SetAngularVelocity(rl.Vector3{Z: 3})

	w.Step(1)

	fwd := b.WorldTransform().ForwardDir()
	assert.InDelta(t, 1.0, fwd.Y, 1e-5)
}

func TestContactEnterAndExit(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	a := boxAt(1, 0, 0, 0)
	b := boxAt(0, 0.5, 0, 0)
	a.SetCollisionFlags(NoContactResponse)
	ra, rb := &recorder{}, &recorder{}
	a.SetContactHandler(ra)
	b.SetContactHandler(rb)
	w.AddBody(a)
	w.AddBody(b)
	a.SetGravity(rl.Vector3Zero())

	w.Step(0.01)
	w.Step(0.01)

	require.Len(t, ra.entered, 1, "enter fires once while the contact persists")
	assert.Same(t, b, ra.entered[0])
	require.Len(t, rb.entered, 1)
	assert.Same(t, a, rb.entered[0])
	assert.InDelta(t, 0, a.Position().X, 1e-5, "no contact response means no push")

	a.SetWorldTransform(engine.NewTransform(rl.Vector3{X: 20}, rl.QuaternionIdentity()))
	w.Step(0.01)

	assert.Len(t, ra.exited, 1)
	assert.Len(t, rb.exited, 1)
}

func TestContactResponseSeparatesDynamicFromStatic(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	floor := NewBody(0, engine.IdentityTransform(), NewBoxShape(rl.Vector3{X: 10, Y: 10, Z: 1}))
	crate := boxAt(1, 0, 0, 0.8)
	w.AddBody(floor)
	w.AddBody(crate)
	crate.SetGravity(rl.Vector3Zero())
	crate.SetLinearVelocity(rl.Vector3{Z: -1})

	w.Step(0.01)

	assert.GreaterOrEqual(t, crate.Position().Z, float32(0.999))
	assert.GreaterOrEqual(t, crate.LinearVelocity().Z, float32(0))
	assert.Equal(t, rl.Vector3Zero(), floor.Position())
}

func TestCallbackRemovingBodySuppressesLaterCallbacks(t *testing.T) {
	w := NewWorld(zerolog.Nop())
	rocket := boxAt(1, 0, 0, 0)
	kart := boxAt(0, 0.6, 0, 0)
	other := boxAt(0, -0.6, 0, 0)
	rocket.SetCollisionFlags(NoContactResponse)

	rr := &recorder{}
	rr.onEnter = func(*Body) { w.RemoveBody(rocket) }
	rocket.SetContactHandler(rr)
	rk, ro := &recorder{}, &recorder{}
	kart.SetContactHandler(rk)
	other.SetContactHandler(ro)

	w.AddBody(rocket)
	w.AddBody(kart)
	w.AddBody(other)
	rocket.SetGravity(rl.Vector3Zero())

	w.Step(0.01)

	assert.Len(t, rr.entered, 1, "the removed rocket sees only its first contact")
	assert.Empty(t, rk.entered, "callbacks to the partner of a removed body are skipped")
	assert.Empty(t, ro.entered)
	assert.False(t, rocket.InWorld())
}

func TestBoxBoundsFollowRotation(t *testing.T) {
	s := NewBoxShape(rl.Vector3{X: 2, Y: 4, Z: 2})
	tr := engine.NewTransform(rl.Vector3Zero(), rl.QuaternionFromAxisAngle(engine.Up, 3.14159265/2))

	box := s.Bounds(tr)

	assert.InDelta(t, 2.0, box.Max.X, 1e-4)
	assert.InDelta(t, 1.0, box.Max.Y, 1e-4)
}

func TestAABBResolvePicksSmallestAxis(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{X: 0.9}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromCenter(rl.Vector3Zero(), rl.Vector3{X: 1, Y: 1, Z: 1})

	push := a.Resolve(b)

	assert.InDelta(t, 0.1, push.X, 1e-5)
	assert.Zero(t, push.Y)
	assert.Zero(t, push.Z)
}
