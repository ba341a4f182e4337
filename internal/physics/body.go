package physics

import (
	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionFlags alter how a body takes part in contacts.
type CollisionFlags uint8

const (
	// NoContactResponse bodies report contacts but are never pushed apart.
	NoContactResponse CollisionFlags = 1 << iota
	// KinematicObject bodies are moved by game code, not by integration.
	KinematicObject
)

// ContactHandler receives a callback when its body starts touching another.
type ContactHandler interface {
	OnContactEnter(other *Body)
}

// ContactExitHandler is optionally implemented to learn when a contact ends.
type ContactExitHandler interface {
	OnContactExit(other *Body)
}

// Body is a rigid body handle. Mass zero means static.
type Body struct {
	id              uint64
	transform       engine.Transform
	linearVelocity  rl.Vector3
	angularVelocity rl.Vector3 // radians per second around each world axis
	gravity         rl.Vector3
	force           rl.Vector3
	mass            float32
	angularFactor   float32
	flags           CollisionFlags
	shape           *BoxShape
	handler         ContactHandler
	world           *World

	// UserData points back at the game object owning the body.
	UserData any
}

func NewBody(mass float32, transform engine.Transform, shape *BoxShape) *Body {
	return &Body{
		transform:     transform,
		mass:          mass,
		angularFactor: 1,
		shape:         shape,
	}
}

// ID is assigned when the body is first added to a world.
func (b *Body) ID() uint64 { return b.id }

func (b *Body) WorldTransform() engine.Transform { return b.transform }

func (b *Body) SetWorldTransform(t engine.Transform) { b.transform = t }

func (b *Body) Position() rl.Vector3 { return b.transform.Position }

func (b *Body) LinearVelocity() rl.Vector3 { return b.linearVelocity }

func (b *Body) SetLinearVelocity(v rl.Vector3) { b.linearVelocity = v }

func (b *Body) AngularVelocity() rl.Vector3 { return b.angularVelocity }

func (b *Body) SetAngularVelocity(v rl.Vector3) { b.angularVelocity = v }

func (b *Body) AngularFactor() float32 { return b.angularFactor }

// SetAngularFactor scales angular motion; zero freezes rotation entirely.
func (b *Body) SetAngularFactor(f float32) {
	b.angularFactor = f
	if f == 0 {
		b.angularVelocity = rl.Vector3Zero()
	}
}

func (b *Body) Gravity() rl.Vector3 { return b.gravity }

func (b *Body) SetGravity(g rl.Vector3) { b.gravity = g }

func (b *Body) CollisionFlags() CollisionFlags { return b.flags }

func (b *Body) SetCollisionFlags(f CollisionFlags) { b.flags = f }

// HasContactResponse reports whether overlaps push this body.
func (b *Body) HasContactResponse() bool { return b.flags&NoContactResponse == 0 }

func (b *Body) Mass() float32 { return b.mass }

func (b *Body) Shape() *BoxShape { return b.shape }

// IsDynamic reports whether the world integrates this body.
func (b *Body) IsDynamic() bool {
	return b.mass != 0 && b.flags&KinematicObject == 0
}

// ApplyCentralForce accumulates a force applied at the next step.
func (b *Body) ApplyCentralForce(f rl.Vector3) {
	b.force = rl.Vector3Add(b.force, f)
}

// Force returns the force accumulated for the next step.
func (b *Body) Force() rl.Vector3 { return b.force }

func (b *Body) SetContactHandler(h ContactHandler) { b.handler = h }

// InWorld reports whether the body is currently simulated.
func (b *Body) InWorld() bool { return b.world != nil }

// Bounds returns the world AABB of the body's shape.
func (b *Body) Bounds() AABB {
	if b.shape == nil {
		return AABB{Min: b.transform.Position, Max: b.transform.Position}
	}
	return b.shape.Bounds(b.transform)
}
