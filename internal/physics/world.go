package physics

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - bodies within same or neighboring cells are checked
const CellSize = 5.0

// CellKey addresses one cell of the broad-phase grid.
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// ContactPair holds two touching bodies, lower ID first.
type ContactPair struct {
	A, B *Body
}

type pairKey struct {
	a, b uint64
}

func makePair(a, b *Body) ContactPair {
	if a.id > b.id {
		return ContactPair{A: b, B: a}
	}
	return ContactPair{A: a, B: b}
}

func (p ContactPair) key() pairKey {
	return pairKey{p.A.id, p.B.id}
}

// DefaultGravity pulls along -Z.
var DefaultGravity = rl.Vector3{X: 0, Y: 0, Z: -9.81}

// World simulates bodies in a fixed, insertion-ordered sequence.
type World struct {
	Gravity rl.Vector3

	bodies []*Body
	grid   map[CellKey][]*Body
	nextID uint64

	// contacts from the previous step, used to detect enter/exit
	active map[pairKey]ContactPair

	log             zerolog.Logger
	lastLoggedCount int
}

func NewWorld(log zerolog.Logger) *World {
	return &World{
		Gravity: DefaultGravity,
		bodies:  make([]*Body, 0),
		grid:    make(map[CellKey][]*Body),
		active:  make(map[pairKey]ContactPair),
		log:     log.With().Str("component", "physics").Logger(),
	}
}

// AddBody starts simulating b. Like most engines the world gravity is copied
// onto the body, so callers wanting custom gravity set it afterwards.
func (w *World) AddBody(b *Body) {
	if b.world == w {
		return
	}
	if b.world != nil {
		b.world.RemoveBody(b)
	}
	if b.id == 0 {
		w.nextID++
		b.id = w.nextID
	}
	b.world = w
	b.gravity = w.Gravity
	w.bodies = append(w.bodies, b)

	if n := len(w.bodies); n%100 == 0 && n != w.lastLoggedCount {
		w.lastLoggedCount = n
		w.log.Debug().Int("bodies", n).Msg("body count")
	}
}

// RemoveBody stops simulating b. Removing a body that is not in the world is a no-op.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	for i, obj := range w.bodies {
		if obj == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
	for k, p := range w.active {
		if p.A == b || p.B == b {
			delete(w.active, k)
		}
	}
}

func (w *World) Contains(b *Body) bool {
	return b != nil && b.world == w
}

// Bodies returns the simulated bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step integrates every dynamic body, resolves overlaps and dispatches
// contact callbacks. Callbacks may remove bodies.
func (w *World) Step(deltaTime float32) {
	for _, b := range w.bodies {
		if !b.IsDynamic() {
			b.force = rl.Vector3Zero()
			continue
		}
		accel := rl.Vector3Add(b.gravity, rl.Vector3Scale(b.force, 1/b.mass))
		b.linearVelocity = rl.Vector3Add(b.linearVelocity, rl.Vector3Scale(accel, deltaTime))
		b.transform.Position = rl.Vector3Add(b.transform.Position, rl.Vector3Scale(b.linearVelocity, deltaTime))
		b.force = rl.Vector3Zero()

		omega := rl.Vector3Scale(b.angularVelocity, b.angularFactor)
		if angle := rl.Vector3Length(omega) * deltaTime; angle > 0 {
			spin := rl.QuaternionFromAxisAngle(rl.Vector3Normalize(omega), angle)
			b.transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(spin, b.transform.Orientation()))
		}
	}

	current := w.detectContacts()
	for _, p := range current {
		w.respond(p)
	}
	w.dispatch(current)
}

// detectContacts runs the spatial-hash broad phase followed by an AABB test.
func (w *World) detectContacts() []ContactPair {
	for k := range w.grid {
		delete(w.grid, k)
	}
	bounds := make(map[*Body]AABB, len(w.bodies))
	for _, b := range w.bodies {
		box := b.Bounds()
		bounds[b] = box
		cell := posToCell(box.Center())
		w.grid[cell] = append(w.grid[cell], b)
	}

	seen := make(map[pairKey]bool)
	var pairs []ContactPair
	for _, b := range w.bodies {
		cell := posToCell(bounds[b].Center())
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, other := range w.grid[CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}] {
						if other == b {
							continue
						}
						p := makePair(b, other)
						if seen[p.key()] {
							continue
						}
						seen[p.key()] = true
						if bounds[b].Intersects(bounds[other]) {
							pairs = append(pairs, p)
						}
					}
				}
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A.id != pairs[j].A.id {
			return pairs[i].A.id < pairs[j].A.id
		}
		return pairs[i].B.id < pairs[j].B.id
	})
	return pairs
}

// respond separates two overlapping bodies unless either opted out of contact response.
func (w *World) respond(p ContactPair) {
	a, b := p.A, p.B
	if !a.HasContactResponse() || !b.HasContactResponse() {
		return
	}
	if !a.IsDynamic() && !b.IsDynamic() {
		return
	}
	push := a.Bounds().Resolve(b.Bounds())
	if push == rl.Vector3Zero() {
		return
	}

	var ratioA, ratioB float32
	switch {
	case !a.IsDynamic():
		ratioA, ratioB = 0, 1
	case !b.IsDynamic():
		ratioA, ratioB = 1, 0
	default:
		total := a.mass + b.mass
		ratioA, ratioB = b.mass/total, a.mass/total
	}
	a.transform.Position = rl.Vector3Add(a.transform.Position, rl.Vector3Scale(push, ratioA))
	b.transform.Position = rl.Vector3Subtract(b.transform.Position, rl.Vector3Scale(push, ratioB))

	// Cancel the approaching velocity component along the push axis.
	n := rl.Vector3Normalize(push)
	if a.IsDynamic() {
		if vn := rl.Vector3DotProduct(a.linearVelocity, n); vn < 0 {
			a.linearVelocity = rl.Vector3Subtract(a.linearVelocity, rl.Vector3Scale(n, vn))
		}
	}
	if b.IsDynamic() {
		if vn := rl.Vector3DotProduct(b.linearVelocity, n); vn > 0 {
			b.linearVelocity = rl.Vector3Subtract(b.linearVelocity, rl.Vector3Scale(n, vn))
		}
	}
}

// dispatch sends enter callbacks for new pairs and exit callbacks for ended ones.
func (w *World) dispatch(current []ContactPair) {
	next := make(map[pairKey]ContactPair, len(current))
	var entered []ContactPair
	for _, p := range current {
		next[p.key()] = p
		if _, ok := w.active[p.key()]; !ok {
			entered = append(entered, p)
		}
	}
	var exited []ContactPair
	for k, p := range w.active {
		if _, ok := next[k]; !ok {
			exited = append(exited, p)
		}
	}
	sort.Slice(exited, func(i, j int) bool {
		return exited[i].key().a < exited[j].key().a ||
			(exited[i].key().a == exited[j].key().a && exited[i].key().b < exited[j].key().b)
	})
	w.active = next

	for _, p := range entered {
		notifyEnter(p.A, p.B)
		notifyEnter(p.B, p.A)
	}
	for _, p := range exited {
		notifyExit(p.A, p.B)
		notifyExit(p.B, p.A)
	}
}

// notifyEnter skips bodies removed by an earlier callback in the same step.
func notifyEnter(self, other *Body) {
	if self.handler == nil || self.world == nil || other.world == nil {
		return
	}
	self.handler.OnContactEnter(other)
}

func notifyExit(self, other *Body) {
	if self.handler == nil {
		return
	}
	if h, ok := self.handler.(ContactExitHandler); ok {
		h.OnContactExit(other)
	}
}
