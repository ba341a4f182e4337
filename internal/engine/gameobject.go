package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

// GameObject is a node of the visual scene graph. Its Transform is local to
// its Parent, or world space when it has none.
type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  IdentityTransform(),
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	for _, child := range g.Children {
		child.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Expired reports whether any component of g has finished its life.
func (g *GameObject) Expired() bool {
	for _, c := range g.components {
		if e, ok := c.(Expirer); ok && e.Expired() {
			return true
		}
	}
	return false
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			last := len(g.Children) - 1
			copy(g.Children[i:], g.Children[i+1:])
			g.Children[last] = nil
			g.Children = g.Children[:last]
			child.Parent = nil
			return
		}
	}
}

// RemoveAllChildren detaches every child of g.
func (g *GameObject) RemoveAllChildren() {
	for _, c := range g.Children {
		c.Parent = nil
	}
	g.Children = nil
}

// SetWorldTransform places g so that its world pose equals t.
func (g *GameObject) SetWorldTransform(t Transform) {
	if g.Parent == nil {
		g.Transform = t
		return
	}
	parent := g.Parent.WorldTransform()
	inv := rl.QuaternionInvert(parent.Orientation())
	local := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(t.Position, parent.Position), inv)
	ps := parent.scale()
	g.Transform = Transform{
		Position: rl.Vector3{X: local.X / ps.X, Y: local.Y / ps.Y, Z: local.Z / ps.Z},
		Rotation: rl.QuaternionMultiply(inv, t.Orientation()),
		Scale:    t.Scale,
	}
}

// WorldTransform composes the local transforms from the root down to g.
func (g *GameObject) WorldTransform() Transform {
	if g.Parent == nil {
		return g.Transform
	}
	return g.Parent.WorldTransform().Mul(g.Transform)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	return g.WorldTransform().Position
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	return g.WorldTransform().Orientation()
}
