package flyable

import (
	"fmt"
	"math"

	"kartflight/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the flight controller state.
type State int

const (
	Cruise State = iota
	Low
	High
	Exploded
)

func (s State) String() string {
	switch s {
	case Cruise:
		return "cruise"
	case Low:
		return "low"
	case High:
		return "high"
	case Exploded:
		return "exploded"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Classify maps a height above terrain to exactly one of Low, High or Cruise.
// Low wins when the band is inverted.
func Classify(hat, minHeight, maxHeight float32) State {
	if hat < minHeight {
		return Low
	}
	if hat > maxHeight {
		return High
	}
	return Cruise
}

// Behavior is the altitude correction of one projectile kind.
type Behavior interface {
	TooLow(f *Flyable, dt float32)
	TooHigh(f *Flyable, dt float32)
	RightHeight(f *Flyable, dt float32)
}

// Guided behaviors also steer once per frame after altitude correction.
type Guided interface {
	Guide(f *Flyable, dt float32)
}

// BehaviorFor returns the behavior of kind.
func BehaviorFor(kind config.Kind) (Behavior, error) {
	switch kind {
	case config.Missile:
		return missile{}, nil
	case config.Homing:
		return homing{}, nil
	case config.Spark:
		return spark{}, nil
	}
	return nil, fmt.Errorf("%s: %w", kind, config.ErrUnknownKind)
}

// missile changes its climb rate directly and follows the slope in the band.
type missile struct{}

func (missile) TooLow(f *Flyable, dt float32)  { addVerticalVelocity(f, f.forceUpDown*dt) }
func (missile) TooHigh(f *Flyable, dt float32) { addVerticalVelocity(f, -f.forceUpDown*dt) }

// RightHeight moves the climb rate toward the slope rate, at most
// forceUpDown per second.
func (missile) RightHeight(f *Flyable, dt float32) {
	v := f.mustBody().LinearVelocity()
	step := f.forceUpDown * dt
	addVerticalVelocity(f, rl.Clamp(f.slopeRate(v)-v.Z, -step, step))
}

func addVerticalVelocity(f *Flyable, dvz float32) {
	body := f.mustBody()
	v := body.LinearVelocity()
	v.Z += dvz
	body.SetLinearVelocity(v)
}

// homingDamping scales the force that pulls a homing projectile back onto
// the slope while in the band.
const homingDamping float32 = 0.5

// homing corrects altitude with forces and chases the closest kart.
type homing struct{}

func (homing) TooLow(f *Flyable, dt float32) {
	f.mustBody().ApplyCentralForce(rl.Vector3{Z: f.forceUpDown})
}

func (homing) TooHigh(f *Flyable, dt float32) {
	f.mustBody().ApplyCentralForce(rl.Vector3{Z: -f.forceUpDown})
}

// RightHeight damps vertical motion relative to the slope.
func (homing) RightHeight(f *Flyable, dt float32) {
	body := f.mustBody()
	v := body.LinearVelocity()
	body.ApplyCentralForce(rl.Vector3{Z: (f.slopeRate(v) - v.Z) * f.forceUpDown * homingDamping})
}

func (homing) Guide(f *Flyable, dt float32) {
	target, dist, delta := f.ClosestKart()
	if target == nil || dist > f.maxDistance {
		return
	}
	body := f.mustBody()
	body.SetLinearVelocity(Steerer{TurnRate: f.turnRate}.Steer(body.LinearVelocity(), delta, dt))
	f.radarBeep(target, dist)
}

// spark pushes with a force proportional to its mass. In the band it
// matches the slope as far as that force allows.
type spark struct{}

func (spark) TooLow(f *Flyable, dt float32) {
	f.mustBody().ApplyCentralForce(rl.Vector3{Z: f.forceUpDown * f.mass})
}

func (spark) TooHigh(f *Flyable, dt float32) {
	f.mustBody().ApplyCentralForce(rl.Vector3{Z: -f.forceUpDown * f.mass})
}

func (spark) RightHeight(f *Flyable, dt float32) {
	if dt <= 0 {
		return
	}
	body := f.mustBody()
	v := body.LinearVelocity()
	accel := rl.Clamp((f.slopeRate(v)-v.Z)/dt, -f.forceUpDown, f.forceUpDown)
	body.ApplyCentralForce(rl.Vector3{Z: accel * f.mass})
}

// SlopeRate is the vertical speed that keeps a body with velocity v at a
// constant height above a plane with the given upward normal.
func SlopeRate(normal, v rl.Vector3) float32 {
	if normal.Z <= 0 {
		return 0
	}
	return -(normal.X*v.X + normal.Y*v.Y) / normal.Z
}

// Steerer turns the horizontal part of a velocity toward a target at a
// bounded rate. Speed and vertical velocity are kept.
type Steerer struct {
	TurnRate float32 // radians per second
}

func (s Steerer) Steer(v, toTarget rl.Vector3, dt float32) rl.Vector3 {
	if (v.X == 0 && v.Y == 0) || (toTarget.X == 0 && toTarget.Y == 0) {
		return v
	}
	current := math.Atan2(float64(v.Y), float64(v.X))
	wanted := math.Atan2(float64(toTarget.Y), float64(toTarget.X))
	diff := math.Remainder(wanted-current, 2*math.Pi)

	limit := float64(s.TurnRate * dt)
	diff = math.Max(-limit, math.Min(limit, diff))

	speed := math.Hypot(float64(v.X), float64(v.Y))
	angle := current + diff
	return rl.Vector3{
		X: float32(speed * math.Cos(angle)),
		Y: float32(speed * math.Sin(angle)),
		Z: v.Z,
	}
}
