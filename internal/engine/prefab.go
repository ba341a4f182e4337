package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Prefab is a shared visual model. One Prefab is referenced by every
// instance of a projectile kind and is never owned by an instance.
type Prefab struct {
	Name   string
	Bounds rl.BoundingBox
	Tint   rl.Color
}

// NewBoxPrefab builds a prefab whose bounds are a box of the given size centred on the origin.
func NewBoxPrefab(name string, size rl.Vector3, tint rl.Color) *Prefab {
	half := rl.Vector3Scale(size, 0.5)
	return &Prefab{
		Name:   name,
		Bounds: rl.NewBoundingBox(rl.Vector3Negate(half), half),
		Tint:   tint,
	}
}

// Size returns the per-axis span of the bounds.
func (p *Prefab) Size() rl.Vector3 {
	return rl.Vector3Subtract(p.Bounds.Max, p.Bounds.Min)
}

// Instantiate creates a fresh node that renders this prefab.
func (p *Prefab) Instantiate() *GameObject {
	g := NewGameObject(p.Name)
	g.Tags = append(g.Tags, "model")
	g.AddComponent(&ModelInstance{Prefab: p})
	return g
}

// ModelInstance marks a node as drawing a Prefab.
type ModelInstance struct {
	BaseComponent
	Prefab *Prefab
}
