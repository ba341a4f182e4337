package flyable

import (
	"testing"

	"kartflight/internal/config"
	"kartflight/internal/engine"
	"kartflight/internal/flyable/mocks"
	"kartflight/internal/physics"
	"kartflight/internal/track"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	_ Kart          = (*mocks.MockKart)(nil)
	_ TerrainSensor = (*mocks.MockTerrainSensor)(nil)
	_ Effects       = (*mocks.MockEffects)(nil)
	_ Terrain       = TerrainFunc(nil)
	_ KartSource    = KartList(nil)
	_ TerrainSensor = (*track.TerrainInfo)(nil)
)

type harness struct {
	ctrl    *gomock.Controller
	env     *Env
	world   *physics.World
	scene   *engine.Scene
	effects *mocks.MockEffects
}

// newHarness builds an environment over a flat track at z=0 with every kind
// loaded from src.
func newHarness(t *testing.T, src config.MapSource) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	catalog := config.NewCatalog()
	model := engine.NewBoxPrefab("rocket", rl.Vector3{X: 0.4, Y: 1.2, Z: 0.4}, rl.Red)
	for _, k := range config.Kinds() {
		_, err := catalog.Init(k, src, model)
		require.NoError(t, err)
	}

	flat := track.NewFlat("flat", 100, 0)
	h := &harness{
		ctrl:    ctrl,
		world:   physics.NewWorld(zerolog.Nop()),
		scene:   engine.NewScene("test"),
		effects: mocks.NewMockEffects(ctrl),
	}
	h.env = &Env{
		Catalog: catalog,
		Physics: h.world,
		Scene:   h.scene,
		Terrain: TerrainFunc(func() TerrainSensor { return track.NewTerrainInfo(flat) }),
		Karts:   KartList{},
		Effects: h.effects,
		Logger:  zerolog.Nop(),
	}
	return h
}

// kartAt returns a mock kart facing heading radians at pos.
func (h *harness) kartAt(pos rl.Vector3, heading float32) *mocks.MockKart {
	k := mocks.NewMockKart(h.ctrl)
	k.EXPECT().WorldTransform().Return(engine.NewTransform(pos, rl.QuaternionFromAxisAngle(engine.Up, heading))).AnyTimes()
	return k
}

func (h *harness) setKarts(karts ...Kart) {
	h.env.Karts = KartList(karts)
}

// launch creates and launches a flyable from owner at offset (0,1,0.5)
// moving forward at speed.
func (h *harness) launch(t *testing.T, owner Kart, kind config.Kind, speed float32) *Flyable {
	t.Helper()
	f, err := New(h.env, owner, kind)
	require.NoError(t, err)
	f.CreatePhysics(rl.Vector3{Y: 1, Z: 0.5}, rl.Vector3{Y: speed})
	return f
}

// moveTo teleports the flyable body.
func moveTo(f *Flyable, pos rl.Vector3) {
	t := f.Body().WorldTransform()
	t.Position = pos
	f.Body().SetWorldTransform(t)
}
