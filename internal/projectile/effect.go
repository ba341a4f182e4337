package projectile

import (
	"kartflight/internal/engine"
)

const (
	effectDuration float32 = 0.8
	effectRadius   float32 = 3
)

// Explosion is the effect left where a projectile went off. It expires on
// its own and the scene drops it.
type Explosion struct {
	engine.BaseComponent
	Duration  float32
	MaxRadius float32
	age       float32
}

func (e *Explosion) Update(deltaTime float32) {
	e.age += deltaTime
}

func (e *Explosion) Expired() bool {
	return e.age >= e.Duration
}

// Progress runs from 0 at spawn to 1 at expiry.
func (e *Explosion) Progress() float32 {
	if e.Duration <= 0 {
		return 1
	}
	return min(e.age/e.Duration, 1)
}

// Radius grows with progress.
func (e *Explosion) Radius() float32 {
	return e.MaxRadius * e.Progress()
}
