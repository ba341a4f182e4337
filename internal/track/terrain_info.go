package track

import (
	"kartflight/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TerrainInfo caches the result of the last terrain query for one object.
type TerrainInfo struct {
	track  *Track
	hot    float32
	normal rl.Vector3
}

func NewTerrainInfo(t *Track) *TerrainInfo {
	return &TerrainInfo{track: t, hot: NoHit, normal: engine.Up}
}

// Update queries the terrain below pos.
func (ti *TerrainInfo) Update(pos rl.Vector3) {
	ti.hot, ti.normal, _ = ti.track.TerrainAt(pos)
}

// HoT returns the height of terrain from the last Update; false means no surface.
func (ti *TerrainInfo) HoT() (float32, bool) {
	return ti.hot, ti.hot != NoHit
}

func (ti *TerrainInfo) Normal() rl.Vector3 {
	return ti.normal
}
