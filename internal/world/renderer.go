package world

import (
	"kartflight/internal/engine"
	"kartflight/internal/kart"
	"kartflight/internal/projectile"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ToView maps the Z-up simulation frame to raylib's Y-up view frame.
func ToView(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Z, Z: -v.Y}
}

// Renderer draws a World with raylib immediate-mode primitives. Draw must be
// called between BeginMode3D and EndMode3D.
type Renderer struct {
	TrackColor rl.Color
	EdgeColor  rl.Color
	KartColor  rl.Color
	HitColor   rl.Color

	// Culled counts the objects skipped by the last Draw.
	Culled int

	frustum Frustum
}

func NewRenderer() *Renderer {
	return &Renderer{
		TrackColor: rl.NewColor(90, 120, 80, 255),
		EdgeColor:  rl.NewColor(60, 80, 55, 255),
		KartColor:  rl.SkyBlue,
		HitColor:   rl.Magenta,
	}
}

func (r *Renderer) Draw(w *World, camera rl.Camera3D, aspect float32) {
	r.frustum = ExtractFrustum(camera, aspect)
	r.Culled = 0

	r.drawTrack(w)
	for _, k := range w.Karts() {
		r.drawKart(k)
	}
	for _, g := range w.Scene.GameObjects {
		switch {
		case g.HasTag("flyable"):
			r.drawModels(g)
		case g.HasTag("effect"):
			r.drawEffect(g)
		}
	}
}

func (r *Renderer) drawTrack(w *World) {
	for _, tri := range w.Track.Triangles() {
		a, b, c := ToView(tri.A), ToView(tri.B), ToView(tri.C)
		center := rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(a, b), c), 1.0/3)
		radius := max(rl.Vector3Distance(center, a), rl.Vector3Distance(center, b), rl.Vector3Distance(center, c))
		if !r.frustum.ContainsSphere(center, radius) {
			r.Culled++
			continue
		}
		// Either winding may face the camera.
		rl.DrawTriangle3D(a, b, c, r.TrackColor)
		rl.DrawTriangle3D(a, c, b, r.TrackColor)
		rl.DrawLine3D(a, b, r.EdgeColor)
		rl.DrawLine3D(b, c, r.EdgeColor)
	}
}

func (r *Renderer) drawKart(k *kart.Kart) {
	color := r.KartColor
	if k.Stunned() {
		color = r.HitColor
	}
	t := k.WorldTransform()
	if !r.visible(t.Position, kart.Size) {
		return
	}
	r.drawBox(t, kart.Size, color)

	nose := t.Apply(rl.Vector3{Y: kart.Size.Y})
	rl.DrawLine3D(ToView(t.Position), ToView(nose), rl.White)
}

// drawModels draws every prefab instance under g.
func (r *Renderer) drawModels(g *engine.GameObject) {
	if m := engine.GetComponent[*engine.ModelInstance](g); m != nil {
		t := g.WorldTransform()
		size := m.Prefab.Size()
		if r.visible(t.Position, size) {
			r.drawBox(t, size, m.Prefab.Tint)
		}
	}
	for _, child := range g.Children {
		r.drawModels(child)
	}
}

func (r *Renderer) drawEffect(g *engine.GameObject) {
	e := engine.GetComponent[*projectile.Explosion](g)
	if e == nil {
		return
	}
	pos := ToView(g.Transform.Position)
	radius := max(e.Radius(), 0.1)
	if !r.frustum.ContainsSphere(pos, radius) {
		r.Culled++
		return
	}
	rl.DrawSphereWires(pos, radius, 8, 8, rl.Fade(rl.Orange, 1-e.Progress()))
}

func (r *Renderer) visible(pos, size rl.Vector3) bool {
	if r.frustum.ContainsSphere(ToView(pos), rl.Vector3Length(size)/2) {
		return true
	}
	r.Culled++
	return false
}

// drawBox draws the edges of a box of the given size posed by t.
func (r *Renderer) drawBox(t engine.Transform, size rl.Vector3, color rl.Color) {
	half := rl.Vector3Scale(size, 0.5)
	var corners [8]rl.Vector3
	for i := range corners {
		local := half
		if i&1 != 0 {
			local.X = -local.X
		}
		if i&2 != 0 {
			local.Y = -local.Y
		}
		if i&4 != 0 {
			local.Z = -local.Z
		}
		corners[i] = ToView(t.Apply(local))
	}
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				rl.DrawLine3D(corners[i], corners[j], color)
			}
		}
	}
}
