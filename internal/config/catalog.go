package config

import (
	"errors"
	"fmt"

	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrUnknownKind        = errors.New("projectile kind not initialized")
	ErrAlreadyInitialized = errors.New("projectile kind already initialized")
)

// Data file keys.
const (
	KeySpeed         = "speed"
	KeyMinHeight     = "min-height"
	KeyMaxHeight     = "max-height"
	KeyForceUpDown   = "force-updown"
	KeyMaxDistance   = "max-distance"
	KeyTurnRate      = "turn-rate"
	KeyRadarInterval = "radar-interval"
)

// ProjectileTypeConfig holds the tunables shared by every instance of a kind.
type ProjectileTypeConfig struct {
	Kind        Kind
	Speed       float32
	MinHeight   float32
	MaxHeight   float32
	ForceUpDown float32
	Extent      rl.Vector3
	Model       *engine.Prefab

	// Homing only.
	MaxDistance   float32
	TurnRate      float32 // radians per second
	RadarInterval float32 // seconds between radar beeps
}

// Defaults returns the built-in tunables. min-height defaults above
// max-height; data files are expected to override one of them.
func Defaults(kind Kind) ProjectileTypeConfig {
	return ProjectileTypeConfig{
		Kind:          kind,
		Speed:         25,
		MaxHeight:     1,
		MinHeight:     3,
		ForceUpDown:   15,
		MaxDistance:   50,
		TurnRate:      2,
		RadarInterval: 0.5,
	}
}

// Catalog is the per-kind table. It is filled during setup; flight code only
// reads it, and only through the copies Get returns.
type Catalog struct {
	types map[Kind]*ProjectileTypeConfig
}

func NewCatalog() *Catalog {
	return &Catalog{types: make(map[Kind]*ProjectileTypeConfig)}
}

// Init fills the entry for kind from src over the defaults and records the
// shared visual model. Each kind may be initialized once.
func (c *Catalog) Init(kind Kind, src Source, model *engine.Prefab) (ProjectileTypeConfig, error) {
	if _, ok := c.types[kind]; ok {
		return ProjectileTypeConfig{}, fmt.Errorf("%s: %w", kind, ErrAlreadyInitialized)
	}
	if model == nil {
		return ProjectileTypeConfig{}, fmt.Errorf("%s: visual model is required", kind)
	}

	cfg := Defaults(kind)
	if src != nil {
		apply(src, &cfg)
	}
	cfg.Extent = model.Size()
	cfg.Model = model

	c.types[kind] = &cfg
	return cfg, nil
}

func apply(src Source, cfg *ProjectileTypeConfig) {
	override(src, KeySpeed, &cfg.Speed)
	override(src, KeyMinHeight, &cfg.MinHeight)
	override(src, KeyMaxHeight, &cfg.MaxHeight)
	override(src, KeyForceUpDown, &cfg.ForceUpDown)
	override(src, KeyMaxDistance, &cfg.MaxDistance)
	override(src, KeyTurnRate, &cfg.TurnRate)
	override(src, KeyRadarInterval, &cfg.RadarInterval)
}

func override(src Source, key string, dst *float32) {
	if v, ok := src.Float(key); ok {
		*dst = v
	}
}

// Get returns a copy of the entry for kind.
func (c *Catalog) Get(kind Kind) (ProjectileTypeConfig, error) {
	cfg, ok := c.types[kind]
	if !ok {
		return ProjectileTypeConfig{}, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
	return *cfg, nil
}

// Has reports whether kind was initialized.
func (c *Catalog) Has(kind Kind) bool {
	_, ok := c.types[kind]
	return ok
}

// Retune applies src over the current entry for kind. Projectiles already in
// flight keep the values they copied at construction.
func (c *Catalog) Retune(kind Kind, src Source) (ProjectileTypeConfig, error) {
	cfg, ok := c.types[kind]
	if !ok {
		return ProjectileTypeConfig{}, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
	apply(src, cfg)
	return *cfg, nil
}
