// Package kart implements the competitors that launch and receive projectiles.
package kart

import (
	"math"

	"kartflight/internal/engine"
	"kartflight/internal/flyable"
	"kartflight/internal/physics"
	"kartflight/internal/track"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	// SplashRadius is how close a non-direct explosion must be to shake a kart.
	SplashRadius float32 = 5
	// DirectHitStun and SplashStun are the times a kart stands still after an explosion.
	DirectHitStun float32 = 1.5
	SplashStun    float32 = 0.5

	// spawnProbe is how far above the requested spawn point terrain is searched.
	spawnProbe float32 = 1000
)

// Size is the collision box of every kart. The box rests on the terrain.
var Size = rl.Vector3{X: 1.2, Y: 2, Z: 1.4}

// Explosion describes one explosion as seen by a kart.
type Explosion struct {
	Kart     *Kart
	Pos      rl.Vector3
	Direct   bool
	Distance float32
}

// Kart drives around the track at constant speed, turning at TurnRate.
// Its body is kinematic so projectiles can hit it but nothing pushes it.
type Kart struct {
	Name     string
	Speed    float32 // metres per second
	TurnRate float32 // radians per second, positive turns left

	position rl.Vector3
	heading  float32
	pitch    float32
	stun     float32

	sensor *track.TerrainInfo
	body   *physics.Body
	node   *engine.GameObject
	log    zerolog.Logger

	directHits int
	splashes   int

	OnExplosion engine.EventWithArg[Explosion]
}

// New places a kart on t at pos facing heading. The kart settles onto the
// terrain immediately.
func New(name string, t *track.Track, pos rl.Vector3, heading float32, log zerolog.Logger) *Kart {
	k := &Kart{
		Name:     name,
		position: pos,
		heading:  heading,
		sensor:   track.NewTerrainInfo(t),
		log:      log.With().Str("component", "kart").Str("kart", name).Logger(),
	}
	k.settle(spawnProbe)

	k.body = physics.NewBody(1, k.WorldTransform(), physics.NewBoxShape(Size))
	k.body.SetCollisionFlags(physics.KinematicObject)
	k.body.UserData = flyable.Kart(k)

	k.node = engine.NewGameObject(name)
	k.node.Tags = append(k.node.Tags, "kart")
	k.node.Transform = k.WorldTransform()
	return k
}

// Body is the kinematic collision body. It is added to the physics world by the caller.
func (k *Kart) Body() *physics.Body { return k.body }

// Node is the visual node. It is added to the scene by the caller.
func (k *Kart) Node() *engine.GameObject { return k.node }

// WorldTransform is the current pose: heading about Z, then terrain pitch.
func (k *Kart) WorldTransform() engine.Transform {
	return engine.NewTransform(k.position, flyable.LaunchRotation(k.pitch, k.heading))
}

func (k *Kart) Position() rl.Vector3 { return k.position }
func (k *Kart) Heading() float32     { return k.heading }
func (k *Kart) Pitch() float32       { return k.pitch }

// Stunned reports whether the kart is recovering from an explosion.
func (k *Kart) Stunned() bool { return k.stun > 0 }

func (k *Kart) DirectHits() int { return k.directHits }
func (k *Kart) Splashes() int   { return k.splashes }

// Update drives the kart for one frame. A kart about to leave the track
// turns around instead.
func (k *Kart) Update(dt float32) {
	if k.stun > 0 {
		k.stun = max(0, k.stun-dt)
		k.sync()
		return
	}

	k.heading = wrap(k.heading + k.TurnRate*dt)
	fwd := rl.Vector3{
		X: -float32(math.Sin(float64(k.heading))),
		Y: float32(math.Cos(float64(k.heading))),
	}
	prev := k.position
	k.position = rl.Vector3Add(k.position, rl.Vector3Scale(fwd, k.Speed*dt))
	if !k.settle(Size.Z) {
		k.position = prev
		k.heading = wrap(k.heading + math.Pi)
		k.settle(Size.Z)
		k.log.Debug().Msg("turned at track edge")
	}
	k.sync()
}

// settle snaps the kart onto the highest terrain at most lift above it and
// pitches it along the slope. It reports false when there is no terrain.
func (k *Kart) settle(lift float32) bool {
	probe := k.position
	probe.Z += lift
	k.sensor.Update(probe)
	hot, ok := k.sensor.HoT()
	if !ok {
		return false
	}
	k.position.Z = hot + Size.Z/2
	k.pitch = flyable.TerrainPitch(k.sensor.Normal(), k.heading)
	return true
}

func (k *Kart) sync() {
	t := k.WorldTransform()
	k.body.SetWorldTransform(t)
	k.node.SetWorldTransform(t)
}

// HandleExplosion reacts to an explosion anywhere on the track.
func (k *Kart) HandleExplosion(pos rl.Vector3, direct bool) {
	dist := rl.Vector3Distance(pos, k.position)
	switch {
	case direct:
		k.directHits++
		k.stun = DirectHitStun
		k.log.Info().Float32("distance", dist).Msg("direct hit")
	case dist < SplashRadius:
		k.splashes++
		k.stun = max(k.stun, SplashStun)
		k.log.Debug().Float32("distance", dist).Msg("caught in splash")
	default:
		return
	}
	k.OnExplosion.Invoke(Explosion{Kart: k, Pos: pos, Direct: direct, Distance: dist})
}

func wrap(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

func (k *Kart) String() string { return k.Name }
