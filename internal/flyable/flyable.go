package flyable

import (
	"kartflight/internal/config"
	"kartflight/internal/engine"
	"kartflight/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NeverBeeped is the radar timestamp before the first beep.
const NeverBeeped float32 = -1

// ExplosionLift raises the recorded position so the effect spawns above the impact.
const ExplosionLift float32 = 1.2

// RadarBeep is emitted by guided projectiles while a target is in range.
type RadarBeep struct {
	Flyable  *Flyable
	Target   Kart
	Distance float32
}

// Flyable is a projectile launched by a kart. It flies at a height band
// above the terrain until it hits a kart or leaves the track.
type Flyable struct {
	id       string
	kind     config.Kind
	env      *Env
	owner    Kart
	sensor   TerrainSensor
	behavior Behavior
	log      zerolog.Logger

	speed       float32
	extent      rl.Vector3
	minHeight   float32
	maxHeight   float32
	forceUpDown float32
	mass        float32

	maxDistance   float32
	turnRate      float32
	radarInterval float32

	shape    *physics.BoxShape
	body     *physics.Body
	node     *engine.GameObject
	attached bool

	exploded        bool
	hasHitSomething bool
	outOfBounds     bool
	victim          Kart
	lastRadarBeep   float32
	age             float32
	state           State

	curr     engine.Transform
	velocity rl.Vector3

	OnRadarBeep engine.EventWithArg[RadarBeep]
}

// New creates a projectile of kind owned by owner and adds its visual node
// to the scene. The tunables are copied so later catalog edits never reach
// a live projectile.
func New(env *Env, owner Kart, kind config.Kind) (*Flyable, error) {
	cfg, err := env.Catalog.Get(kind)
	if err != nil {
		return nil, err
	}
	behavior, err := BehaviorFor(kind)
	if err != nil {
		return nil, err
	}

	f := &Flyable{
		id:            uuid.NewString(),
		kind:          kind,
		env:           env,
		owner:         owner,
		behavior:      behavior,
		speed:         cfg.Speed,
		extent:        cfg.Extent,
		minHeight:     cfg.MinHeight,
		maxHeight:     cfg.MaxHeight,
		forceUpDown:   cfg.ForceUpDown,
		maxDistance:   cfg.MaxDistance,
		turnRate:      cfg.TurnRate,
		radarInterval: cfg.RadarInterval,
		mass:          1,
		lastRadarBeep: NeverBeeped,
		curr:          engine.IdentityTransform(),
	}
	f.log = env.Logger.With().
		Str("component", "flyable").
		Str("flyable", f.id).
		Str("kind", kind.String()).
		Logger()
	f.sensor = env.Terrain.NewSensor()

	f.node = engine.NewGameObject(kind.String())
	f.node.Tags = append(f.node.Tags, "flyable")
	f.node.AddChild(cfg.Model.Instantiate())
	env.Scene.AddGameObject(f.node)
	f.attached = true

	return f, nil
}

// SetMass changes the mass used by CreatePhysics. Zero makes the body static.
func (f *Flyable) SetMass(m float32) {
	f.mass = m
}

// CreatePhysics computes the launch transform from the owner and the terrain
// under it, then adds a body moving with velocity, given in the launch frame.
func (f *Flyable) CreatePhysics(offset, velocity rl.Vector3) {
	trans := LaunchTransform(f.owner.WorldTransform(), f.sensor, offset)

	f.shape = physics.NewBoxShape(f.extent)
	f.body = physics.NewBody(f.mass, trans, f.shape)
	f.body.UserData = f
	f.body.SetContactHandler(f)
	f.env.Physics.AddBody(f.body)

	f.body.SetGravity(rl.Vector3Zero())

	v := trans.Rotate(velocity)
	if f.mass != 0 {
		f.body.SetLinearVelocity(v)
		f.body.SetAngularFactor(0)
	}
	f.body.SetCollisionFlags(physics.NoContactResponse)

	f.placeModel()

	f.log.Debug().
		Float32("x", trans.Position.X).
		Float32("y", trans.Position.Y).
		Float32("z", trans.Position.Z).
		Msg("launched")
}

// Update runs the flight controller for one frame.
func (f *Flyable) Update(dt float32) {
	if f.exploded {
		return
	}

	pos := f.mustBody().Position()
	f.sensor.Update(pos)
	hot, ok := f.sensor.HoT()
	if !ok {
		f.outOfBounds = true
		f.Explode(nil)
		return
	}

	f.state = Classify(pos.Z-hot, f.minHeight, f.maxHeight)
	switch f.state {
	case Low:
		f.behavior.TooLow(f, dt)
	case High:
		f.behavior.TooHigh(f, dt)
	default:
		f.behavior.RightHeight(f, dt)
	}
	if g, ok := f.behavior.(Guided); ok {
		g.Guide(f, dt)
	}

	f.moveableUpdate(dt)
}

// Explode terminates the projectile once. Every kart is told about the
// explosion and victim, if any, is told it was hit directly.
func (f *Flyable) Explode(victim Kart) {
	if f.exploded {
		return
	}

	f.hasHitSomething = true
	f.victim = victim
	f.curr.Position.Z += ExplosionLift
	pos := f.curr.Position

	f.env.Effects.NotifyExplosion(pos)

	f.detachNode()
	if f.body != nil {
		f.env.Physics.RemoveBody(f.body)
	}
	// set after teardown, before the fan-out can re-enter
	f.exploded = true
	f.state = Exploded

	f.log.Debug().Bool("direct", victim != nil).Bool("outOfBounds", f.outOfBounds).Msg("exploded")

	for _, k := range f.env.Karts.Karts() {
		k.HandleExplosion(pos, k == victim)
	}
}

// OnContactEnter explodes the projectile when it touches a kart other than its owner.
func (f *Flyable) OnContactEnter(other *physics.Body) {
	if f.exploded {
		return
	}
	k, ok := other.UserData.(Kart)
	if !ok || k == f.owner {
		return
	}
	f.Explode(k)
}

// Close releases the body, shape and visual node. It is safe to call more
// than once and on projectiles that never exploded.
func (f *Flyable) Close() {
	if f.body != nil {
		if f.body.InWorld() {
			f.env.Physics.RemoveBody(f.body)
		}
		f.body.SetContactHandler(nil)
		f.body.UserData = nil
		f.body = nil
	}
	f.shape = nil
	f.detachNode()
}

func (f *Flyable) detachNode() {
	if !f.attached {
		return
	}
	f.env.Scene.RemoveGameObject(f.node)
	f.node.RemoveAllChildren()
	f.attached = false
}

func (f *Flyable) mustBody() *physics.Body {
	if f.body == nil {
		panic("flyable: physics body used before CreatePhysics or after Close")
	}
	return f.body
}

// slopeRate is SlopeRate under the last sensed surface.
func (f *Flyable) slopeRate(v rl.Vector3) float32 {
	return SlopeRate(f.sensor.Normal(), v)
}

func (f *Flyable) radarBeep(target Kart, dist float32) {
	if f.lastRadarBeep != NeverBeeped && f.age-f.lastRadarBeep < f.radarInterval {
		return
	}
	f.lastRadarBeep = f.age
	f.OnRadarBeep.Invoke(RadarBeep{Flyable: f, Target: target, Distance: dist})
}

func (f *Flyable) ID() string            { return f.id }
func (f *Flyable) Kind() config.Kind     { return f.kind }
func (f *Flyable) Owner() Kart           { return f.owner }
func (f *Flyable) State() State          { return f.state }
func (f *Flyable) Exploded() bool        { return f.exploded }
func (f *Flyable) HasHitSomething() bool { return f.hasHitSomething }

// Victim is the kart hit directly, or nil.
func (f *Flyable) Victim() Kart { return f.victim }

// OutOfBounds reports whether the projectile exploded for lack of terrain.
func (f *Flyable) OutOfBounds() bool { return f.outOfBounds }

func (f *Flyable) Speed() float32       { return f.speed }
func (f *Flyable) Extent() rl.Vector3   { return f.extent }
func (f *Flyable) MinHeight() float32   { return f.minHeight }
func (f *Flyable) MaxHeight() float32   { return f.maxHeight }
func (f *Flyable) ForceUpDown() float32 { return f.forceUpDown }
func (f *Flyable) Mass() float32        { return f.mass }

// LastRadarBeep is the age at the last radar beep, or NeverBeeped.
func (f *Flyable) LastRadarBeep() float32 { return f.lastRadarBeep }

// Body panics before CreatePhysics.
func (f *Flyable) Body() *physics.Body { return f.mustBody() }

func (f *Flyable) Node() *engine.GameObject { return f.node }
