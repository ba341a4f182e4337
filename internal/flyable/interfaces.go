package flyable

import (
	"kartflight/internal/config"
	"kartflight/internal/engine"
	"kartflight/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

//go:generate go tool mockgen -destination=./mocks/flyable_mock.go -package=mocks . Kart,TerrainSensor,Effects

// Kart is a competitor that can launch projectiles and be hit by them.
type Kart interface {
	WorldTransform() engine.Transform
	HandleExplosion(pos rl.Vector3, direct bool)
}

// TerrainSensor samples the surface below a position.
type TerrainSensor interface {
	Update(pos rl.Vector3)
	// HoT returns the height of terrain, or false when there is no surface.
	HoT() (float32, bool)
	Normal() rl.Vector3
}

// Terrain hands out sensors, one per projectile.
type Terrain interface {
	NewSensor() TerrainSensor
}

// TerrainFunc adapts a function to Terrain.
type TerrainFunc func() TerrainSensor

func (fn TerrainFunc) NewSensor() TerrainSensor { return fn() }

// PhysicsService is the body management part of the physics world.
type PhysicsService interface {
	AddBody(b *physics.Body)
	RemoveBody(b *physics.Body)
}

// SceneGraph holds the rendered nodes.
type SceneGraph interface {
	AddGameObject(g *engine.GameObject)
	RemoveGameObject(g *engine.GameObject)
}

// Effects spawns explosion effects. Calls are fire-and-forget.
type Effects interface {
	NotifyExplosion(pos rl.Vector3)
}

// KartSource lists every kart in the race, owner included.
type KartSource interface {
	Karts() []Kart
}

// KartList is a fixed KartSource.
type KartList []Kart

func (l KartList) Karts() []Kart { return l }

// Env is the race context shared by all projectiles.
type Env struct {
	Catalog *config.Catalog
	Physics PhysicsService
	Scene   SceneGraph
	Terrain Terrain
	Karts   KartSource
	Effects Effects
	Logger  zerolog.Logger
}
