package world

import (
	"fmt"
	"math"

	"kartflight/internal/config"
	"kartflight/internal/engine"
	"kartflight/internal/track"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const gridSpacing float32 = 4

// TrackParams selects and sizes a generated track.
type TrackParams struct {
	Kind       string // flat, ramp or hills
	HalfSize   float32
	Amplitude  float32 // hills only
	Wavelength float32 // hills only
	Slope      float32 // ramp only, radians
}

// BuildTrack generates the track described by p.
func BuildTrack(p TrackParams) (*track.Track, error) {
	if p.HalfSize <= 0 {
		return nil, fmt.Errorf("track half size must be positive, got %v", p.HalfSize)
	}
	origin := rl.Vector2{X: -p.HalfSize, Y: -p.HalfSize}
	cells := int(math.Ceil(float64(2 * p.HalfSize / gridSpacing)))

	switch p.Kind {
	case "flat":
		return track.NewFlat("flat", p.HalfSize, 0), nil
	case "ramp":
		slope := p.Slope
		if slope == 0 {
			slope = 0.1
		}
		return track.NewHeightfield("ramp", origin, cells, cells, gridSpacing, track.Ramp(slope)), nil
	case "hills":
		if p.Wavelength <= 0 {
			return nil, fmt.Errorf("hills wavelength must be positive, got %v", p.Wavelength)
		}
		return track.NewHeightfield("hills", origin, cells, cells, gridSpacing, track.Hills(p.Amplitude, p.Wavelength)), nil
	}
	return nil, fmt.Errorf("unknown track kind %q", p.Kind)
}

// Models returns the visual model of every projectile kind.
func Models() map[config.Kind]*engine.Prefab {
	return map[config.Kind]*engine.Prefab{
		config.Missile: engine.NewBoxPrefab("missile", rl.Vector3{X: 0.4, Y: 1.5, Z: 0.4}, rl.Red),
		config.Homing:  engine.NewBoxPrefab("homing", rl.Vector3{X: 0.5, Y: 1.2, Z: 0.5}, rl.Orange),
		config.Spark:   engine.NewBoxPrefab("spark", rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}, rl.Yellow),
	}
}

// builtin keeps every kind low enough to hit a kart.
var builtin = map[config.Kind]config.MapSource{
	config.Missile: {
		config.KeySpeed:     25,
		config.KeyMinHeight: 0.4,
		config.KeyMaxHeight: 1.0,
	},
	config.Homing: {
		config.KeySpeed:         20,
		config.KeyMinHeight:     0.5,
		config.KeyMaxHeight:     1.2,
		config.KeyMaxDistance:   50,
		config.KeyTurnRate:      2,
		config.KeyRadarInterval: 0.5,
	},
	config.Spark: {
		config.KeySpeed:       18,
		config.KeyMinHeight:   0.3,
		config.KeyMaxHeight:   0.8,
		config.KeyForceUpDown: 10,
	},
}

// NewCatalog initializes every kind from the projectile data file at path,
// or from the built-in table when path is empty.
func NewCatalog(path string) (*config.Catalog, error) {
	catalog := config.NewCatalog()
	models := Models()
	if path != "" {
		if err := config.LoadProjectiles(path, catalog, models); err != nil {
			return nil, err
		}
		return catalog, nil
	}
	for _, kind := range config.Kinds() {
		if _, err := catalog.Init(kind, builtin[kind], models[kind]); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// SpawnRing places n karts evenly on a circle of the given radius around the
// origin. Each drives counter-clockwise along the circle at speed.
func (w *World) SpawnRing(n int, radius, speed float32) {
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pos := rl.Vector3{
			X: radius * float32(math.Cos(a)),
			Y: radius * float32(math.Sin(a)),
		}
		k := w.AddKart(fmt.Sprintf("kart-%d", i+1), pos, float32(a))
		k.Speed = speed
		if radius > 0 {
			k.TurnRate = speed / radius
		}
	}
}
