// Package track holds the drivable terrain and the height-above-terrain sensor
// used by karts and flyables.
package track

import (
	"math"

	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NoHit is the stored height when no surface lies beneath a query point.
const NoHit float32 = -99999.9

// ProbeLift raises the start of every downward query so a point resting
// exactly on the surface still finds it.
const ProbeLift float32 = 0.5

const cellSize = 4.0

// Triangle is one terrain face with a precomputed upward normal.
type Triangle struct {
	A, B, C rl.Vector3
	Normal  rl.Vector3
}

func NewTriangle(a, b, c rl.Vector3) Triangle {
	n := rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a)))
	if n.Z < 0 {
		n = rl.Vector3Negate(n)
	}
	return Triangle{A: a, B: b, C: c, Normal: n}
}

// heightAt returns the surface height of t above (x, y) if the point projects inside it.
func (t *Triangle) heightAt(x, y float32) (float32, bool) {
	const eps = 1e-5
	v0x, v0y := t.B.X-t.A.X, t.B.Y-t.A.Y
	v1x, v1y := t.C.X-t.A.X, t.C.Y-t.A.Y
	v2x, v2y := x-t.A.X, y-t.A.Y

	d := v0x*v1y - v1x*v0y
	if float32(math.Abs(float64(d))) < eps {
		// vertical wall, never under anything
		return 0, false
	}
	u := (v2x*v1y - v1x*v2y) / d
	v := (v0x*v2y - v2x*v0y) / d
	if u < -eps || v < -eps || u+v > 1+eps {
		return 0, false
	}
	return t.A.Z + u*(t.B.Z-t.A.Z) + v*(t.C.Z-t.A.Z), true
}

type cellKey struct {
	X, Y int
}

func toCell(x, y float32) cellKey {
	return cellKey{
		X: int(math.Floor(float64(x / cellSize))),
		Y: int(math.Floor(float64(y / cellSize))),
	}
}

// Track is a static triangle soup bucketed on a 2D grid for vertical queries.
type Track struct {
	Name      string
	triangles []Triangle
	cells     map[cellKey][]int
}

func New(name string, triangles []Triangle) *Track {
	t := &Track{
		Name:      name,
		triangles: triangles,
		cells:     make(map[cellKey][]int),
	}
	for i, tri := range triangles {
		lo := toCell(min(tri.A.X, tri.B.X, tri.C.X), min(tri.A.Y, tri.B.Y, tri.C.Y))
		hi := toCell(max(tri.A.X, tri.B.X, tri.C.X), max(tri.A.Y, tri.B.Y, tri.C.Y))
		for cx := lo.X; cx <= hi.X; cx++ {
			for cy := lo.Y; cy <= hi.Y; cy++ {
				k := cellKey{cx, cy}
				t.cells[k] = append(t.cells[k], i)
			}
		}
	}
	return t
}

func (t *Track) Triangles() []Triangle {
	return t.triangles
}

// TerrainAt finds the highest surface at or below pos (plus ProbeLift).
func (t *Track) TerrainAt(pos rl.Vector3) (height float32, normal rl.Vector3, ok bool) {
	top := pos.Z + ProbeLift
	height = NoHit
	for _, i := range t.cells[toCell(pos.X, pos.Y)] {
		tri := &t.triangles[i]
		h, inside := tri.heightAt(pos.X, pos.Y)
		if !inside || h > top || h <= height {
			continue
		}
		height, normal, ok = h, tri.Normal, true
	}
	if !ok {
		return NoHit, engine.Up, false
	}
	return height, normal, true
}

// NewFlat builds a square plane of the given half size at height z.
func NewFlat(name string, halfSize, z float32) *Track {
	a := rl.Vector3{X: -halfSize, Y: -halfSize, Z: z}
	b := rl.Vector3{X: halfSize, Y: -halfSize, Z: z}
	c := rl.Vector3{X: halfSize, Y: halfSize, Z: z}
	d := rl.Vector3{X: -halfSize, Y: halfSize, Z: z}
	return New(name, []Triangle{NewTriangle(a, b, c), NewTriangle(a, c, d)})
}

// HeightFunc gives the terrain height for a grid vertex.
type HeightFunc func(x, y float32) float32

// NewHeightfield samples height on a cols x rows grid of quads starting at
// origin (x, y) with the given spacing.
func NewHeightfield(name string, origin rl.Vector2, cols, rows int, spacing float32, height HeightFunc) *Track {
	vertex := func(i, j int) rl.Vector3 {
		x := origin.X + float32(i)*spacing
		y := origin.Y + float32(j)*spacing
		return rl.Vector3{X: x, Y: y, Z: height(x, y)}
	}
	tris := make([]Triangle, 0, cols*rows*2)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			a, b := vertex(i, j), vertex(i+1, j)
			c, d := vertex(i+1, j+1), vertex(i, j+1)
			tris = append(tris, NewTriangle(a, b, c), NewTriangle(a, c, d))
		}
	}
	return New(name, tris)
}

// Ramp returns a HeightFunc rising along +Y with the given slope angle in radians.
func Ramp(slope float32) HeightFunc {
	rise := float32(math.Tan(float64(slope)))
	return func(x, y float32) float32 { return y * rise }
}

// Hills returns a rolling HeightFunc.
func Hills(amplitude, wavelength float32) HeightFunc {
	k := 2 * math.Pi / float64(wavelength)
	return func(x, y float32) float32 {
		return amplitude * float32(math.Sin(float64(x)*k)*math.Cos(float64(y)*k))
	}
}
