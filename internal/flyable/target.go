package flyable

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NoTargetDistance is returned by ClosestKart when no kart qualifies.
const NoTargetDistance float32 = 99999.9

// ClosestKart returns the nearest kart other than the owner, its distance and
// the vector from the projectile to it. Without a candidate the kart is nil
// and the distance is NoTargetDistance.
func (f *Flyable) ClosestKart() (Kart, float32, rl.Vector3) {
	pos := f.mustBody().Position()

	var (
		best      Kart
		bestDelta rl.Vector3
	)
	bestDist2 := NoTargetDistance * NoTargetDistance
	for _, k := range f.env.Karts.Karts() {
		if k == f.owner {
			continue
		}
		delta := rl.Vector3Subtract(k.WorldTransform().Position, pos)
		if d2 := rl.Vector3LengthSqr(delta); d2 < bestDist2 {
			best, bestDist2, bestDelta = k, d2, delta
		}
	}
	if best == nil {
		return nil, NoTargetDistance, rl.Vector3{}
	}
	return best, float32(math.Sqrt(float64(bestDist2))), bestDelta
}
