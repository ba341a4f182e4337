// Package world ties a track, the karts on it and their projectiles into a
// single frame-stepped race.
package world

import (
	"fmt"

	"kartflight/internal/config"
	"kartflight/internal/engine"
	"kartflight/internal/flyable"
	"kartflight/internal/kart"
	"kartflight/internal/physics"
	"kartflight/internal/projectile"
	"kartflight/internal/telemetry"
	"kartflight/internal/track"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Options configures New. Track and Catalog are required.
type Options struct {
	Track   *track.Track
	Catalog *config.Catalog
	Journal projectile.Journal
	Metrics *telemetry.Metrics
	Logger  zerolog.Logger
}

// World is one race. It is not safe for concurrent use.
type World struct {
	Scene       *engine.Scene
	Physics     *physics.World
	Track       *track.Track
	Catalog     *config.Catalog
	Projectiles *projectile.Manager

	env   *flyable.Env
	karts []*kart.Kart
	frame uint64
	time  float32
	base  zerolog.Logger
	log   zerolog.Logger

	launched   int
	nextFire   int
	directHits int
}

func New(opts Options) *World {
	w := &World{
		Scene:   engine.NewScene(opts.Track.Name),
		Physics: physics.NewWorld(opts.Logger),
		Track:   opts.Track,
		Catalog: opts.Catalog,
		base:    opts.Logger,
		log:     opts.Logger.With().Str("component", "world").Logger(),
	}
	w.env = &flyable.Env{
		Catalog: opts.Catalog,
		Physics: w.Physics,
		Scene:   w.Scene,
		Terrain: flyable.TerrainFunc(w.newSensor),
		Karts:   flyable.KartList{},
		Logger:  opts.Logger,
	}

	var mopts []projectile.Option
	if opts.Journal != nil {
		mopts = append(mopts, projectile.WithJournal(opts.Journal))
	}
	if opts.Metrics != nil {
		mopts = append(mopts, projectile.WithMetrics(opts.Metrics))
	}
	w.Projectiles = projectile.NewManager(w.env, w.Scene, mopts...)

	w.log.Info().Str("track", opts.Track.Name).Int("triangles", len(opts.Track.Triangles())).Msg("World created")
	return w
}

func (w *World) newSensor() flyable.TerrainSensor {
	return track.NewTerrainInfo(w.Track)
}

// AddKart places a new kart on the track and registers it with physics, the
// scene and every projectile's target list.
func (w *World) AddKart(name string, pos rl.Vector3, heading float32) *kart.Kart {
	k := kart.New(name, w.Track, pos, heading, w.base)
	k.OnExplosion.AddListener(w.kartHit)
	w.karts = append(w.karts, k)
	w.Physics.AddBody(k.Body())
	w.Scene.AddGameObject(k.Node())

	list := make(flyable.KartList, len(w.karts))
	for i, k := range w.karts {
		list[i] = k
	}
	w.env.Karts = list
	return k
}

func (w *World) kartHit(e kart.Explosion) {
	if e.Direct {
		w.directHits++
	}
}

// Karts returns the karts in the order they were added.
func (w *World) Karts() []*kart.Kart {
	return w.karts
}

// Fire launches a projectile of kind from k.
func (w *World) Fire(k *kart.Kart, kind config.Kind) (*flyable.Flyable, error) {
	f, err := w.Projectiles.Launch(k, kind)
	if err != nil {
		return nil, err
	}
	w.launched++
	w.log.Debug().Str("kart", k.Name).Str("kind", kind.String()).Str("flyable", f.ID()).Msg("fired")
	return f, nil
}

// FireNext fires from the karts in turn, cycling through the kinds the
// catalog knows about.
func (w *World) FireNext() (*flyable.Flyable, error) {
	if len(w.karts) == 0 {
		return nil, fmt.Errorf("no karts to fire from")
	}
	var kinds []config.Kind
	for _, kind := range config.Kinds() {
		if w.Catalog.Has(kind) {
			kinds = append(kinds, kind)
		}
	}
	if len(kinds) == 0 {
		return nil, config.ErrUnknownKind
	}
	n := w.nextFire
	w.nextFire++
	return w.Fire(w.karts[n%len(w.karts)], kinds[n%len(kinds)])
}

// Step advances the race by dt: karts drive, physics moves bodies and
// reports contacts, projectiles fly and retire, then effects age.
func (w *World) Step(dt float32) {
	for _, k := range w.karts {
		k.Update(dt)
	}
	w.Physics.Step(dt)
	w.Projectiles.Update(dt)
	w.Scene.Update(dt)

	w.frame++
	w.time += dt
}

func (w *World) Frame() uint64 { return w.frame }

// Time is the simulated time in seconds.
func (w *World) Time() float32 { return w.time }

// Summary counts what happened in the race so far.
type Summary struct {
	Frames     uint64  `json:"frames"`
	Time       float32 `json:"time"`
	Karts      int     `json:"karts"`
	Launched   int     `json:"launched"`
	Active     int     `json:"active"`
	Explosions int     `json:"explosions"`
	DirectHits int     `json:"directHits"`
	Splashes   int     `json:"splashes"`
	RadarBeeps int     `json:"radarBeeps"`
}

func (w *World) Summary() Summary {
	s := Summary{
		Frames:     w.frame,
		Time:       w.time,
		Karts:      len(w.karts),
		Launched:   w.launched,
		Active:     len(w.Projectiles.Active()),
		Explosions: w.Projectiles.Explosions(),
		DirectHits: w.directHits,
		RadarBeeps: w.Projectiles.RadarBeeps(),
	}
	for _, k := range w.karts {
		s.Splashes += k.Splashes()
	}
	return s
}

// Close releases live projectiles and removes every body from physics.
func (w *World) Close() {
	w.Projectiles.Close()
	for _, k := range w.karts {
		k.OnExplosion.RemoveAllListeners()
		w.Physics.RemoveBody(k.Body())
		w.Scene.RemoveGameObject(k.Node())
	}
	w.log.Info().Uint64("frames", w.frame).Int("launched", w.launched).Msg("World closed")
}
