// Package projectile launches flyables for karts, steps them every frame and
// turns their explosions into effects, journal records and metrics.
package projectile

import (
	"context"
	"fmt"
	"math"
	"time"

	"kartflight/internal/config"
	"kartflight/internal/engine"
	"kartflight/internal/flyable"
	"kartflight/internal/storage"
	"kartflight/internal/telemetry"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ownerClearance is the gap between the owner's origin and the back of a
// freshly launched projectile.
const ownerClearance float32 = 1.2

// Journal stores launch and explosion records.
type Journal interface {
	RecordLaunch(ctx context.Context, rec *storage.LaunchRecord) error
	RecordExplosion(ctx context.Context, rec *storage.ExplosionRecord) error
}

type Option func(*Manager)

// WithJournal records every launch and explosion to j.
func WithJournal(j Journal) Option {
	return func(m *Manager) { m.journal = j }
}

// WithMetrics counts launches and explosions on mt.
func WithMetrics(mt *telemetry.Metrics) Option {
	return func(m *Manager) { m.metrics = mt }
}

// Manager owns the live projectiles of a race.
type Manager struct {
	env     *flyable.Env
	scene   *engine.Scene
	journal Journal
	metrics *telemetry.Metrics
	log     zerolog.Logger

	active     []*flyable.Flyable
	explosions int
	radarBeeps int

	OnExplosion engine.EventWithArg[rl.Vector3]
	OnRadarBeep engine.EventWithArg[flyable.RadarBeep]
}

// NewManager installs the manager as env's effects coordinator. Explosion
// effects are added to scene.
func NewManager(env *flyable.Env, scene *engine.Scene, opts ...Option) *Manager {
	m := &Manager{
		env:   env,
		scene: scene,
		log:   env.Logger.With().Str("component", "projectiles").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	env.Effects = m
	return m
}

// Launch fires a projectile of kind from owner straight ahead at the kind's speed.
func (m *Manager) Launch(owner flyable.Kart, kind config.Kind) (*flyable.Flyable, error) {
	f, err := flyable.New(m.env, owner, kind)
	if err != nil {
		return nil, fmt.Errorf("launching %s: %w", kind, err)
	}
	offset := rl.Vector3{Y: ownerClearance + f.Extent().Y/2}
	f.CreatePhysics(offset, rl.Vector3{Y: f.Speed()})
	f.OnRadarBeep.AddListener(m.radarBeep)
	m.active = append(m.active, f)

	ctx := context.Background()
	m.metrics.Launched(ctx, kind.String())
	if m.journal != nil {
		t := f.Transform()
		fwd := t.ForwardDir()
		rec := &storage.LaunchRecord{
			Time:      time.Now().UTC(),
			FlyableID: f.ID(),
			Kind:      kind.String(),
			Owner:     kartName(owner),
			X:         t.Position.X,
			Y:         t.Position.Y,
			Z:         t.Position.Z,
			Heading:   flyable.Heading(fwd),
			Pitch:     pitchOf(fwd),
			Speed:     f.Speed(),
		}
		if err := m.journal.RecordLaunch(ctx, rec); err != nil {
			m.log.Error().Err(err).Msg("Failed to journal launch")
		}
	}
	return f, nil
}

// Update steps every live projectile in launch order, then retires the ones
// that exploded during this frame or the physics step before it.
func (m *Manager) Update(dt float32) {
	for _, f := range m.active {
		f.Update(dt)
	}

	kept := m.active[:0]
	for _, f := range m.active {
		if !f.Exploded() {
			kept = append(kept, f)
			continue
		}
		m.retire(f)
	}
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
}

func (m *Manager) retire(f *flyable.Flyable) {
	ctx := context.Background()
	kind := f.Kind().String()

	m.metrics.Exploded(ctx, kind)
	if f.Victim() != nil {
		m.metrics.DirectHit(ctx, kind)
	}
	if f.OutOfBounds() {
		m.metrics.OutOfBounds(ctx, kind)
	}

	if m.journal != nil {
		pos := f.Position()
		rec := &storage.ExplosionRecord{
			Time:        time.Now().UTC(),
			FlyableID:   f.ID(),
			Kind:        kind,
			Owner:       kartName(f.Owner()),
			Victim:      kartName(f.Victim()),
			OutOfBounds: f.OutOfBounds(),
			X:           pos.X,
			Y:           pos.Y,
			Z:           pos.Z,
			Age:         f.Age(),
		}
		if err := m.journal.RecordExplosion(ctx, rec); err != nil {
			m.log.Error().Err(err).Msg("Failed to journal explosion")
		}
	}

	f.OnRadarBeep.RemoveAllListeners()
	f.Close()
}

// NotifyExplosion spawns an explosion effect at pos.
func (m *Manager) NotifyExplosion(pos rl.Vector3) {
	m.explosions++

	g := engine.NewGameObject("explosion")
	g.Tags = append(g.Tags, "effect")
	g.Transform.Position = pos
	g.AddComponent(&Explosion{Duration: effectDuration, MaxRadius: effectRadius})
	m.scene.AddGameObject(g)

	m.log.Debug().Float32("x", pos.X).Float32("y", pos.Y).Float32("z", pos.Z).Msg("explosion")
	m.OnExplosion.Invoke(pos)
}

func (m *Manager) radarBeep(b flyable.RadarBeep) {
	m.radarBeeps++
	m.OnRadarBeep.Invoke(b)
}

// Active returns the live projectiles in launch order.
func (m *Manager) Active() []*flyable.Flyable {
	return m.active
}

// Explosions counts the effects spawned so far.
func (m *Manager) Explosions() int { return m.explosions }

func (m *Manager) RadarBeeps() int { return m.radarBeeps }

// Close releases every live projectile without exploding it.
func (m *Manager) Close() {
	for _, f := range m.active {
		f.OnRadarBeep.RemoveAllListeners()
		f.Close()
	}
	m.active = nil
}

func kartName(k flyable.Kart) string {
	if k == nil {
		return ""
	}
	if s, ok := k.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%p", k)
}

// pitchOf is the elevation of a unit direction.
func pitchOf(dir rl.Vector3) float32 {
	return float32(math.Asin(float64(rl.Clamp(dir.Z, -1, 1))))
}
