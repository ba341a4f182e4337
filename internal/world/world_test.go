package world

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"kartflight/internal/config"
	"kartflight/internal/storage"
	"kartflight/internal/telemetry"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame float32 = 1.0 / 60

func newFlatWorld(t *testing.T, halfSize float32, opts Options) *World {
	t.Helper()
	return newWorld(t, TrackParams{Kind: "flat", HalfSize: halfSize}, opts)
}

func newWorld(t *testing.T, params TrackParams, opts Options) *World {
	t.Helper()
	tr, err := BuildTrack(params)
	require.NoError(t, err)
	catalog, err := NewCatalog("")
	require.NoError(t, err)

	opts.Track = tr
	opts.Catalog = catalog
	opts.Logger = zerolog.Nop()
	w := New(opts)
	t.Cleanup(w.Close)
	return w
}

func runUntilQuiet(w *World, maxFrames int) {
	for i := 0; i < maxFrames && len(w.Projectiles.Active()) > 0; i++ {
		w.Step(frame)
	}
}

func TestBuildTrack(t *testing.T) {
	for _, kind := range []string{"flat", "ramp", "hills"} {
		t.Run(kind, func(t *testing.T) {
			tr, err := BuildTrack(TrackParams{Kind: kind, HalfSize: 20, Amplitude: 2, Wavelength: 30})
			require.NoError(t, err)
			assert.Equal(t, kind, tr.Name)

			_, _, ok := tr.TerrainAt(rl.Vector3{X: 3, Y: -4, Z: 50})
			assert.True(t, ok)
			_, _, ok = tr.TerrainAt(rl.Vector3{X: 30, Y: 0, Z: 50})
			assert.False(t, ok, "outside the half size")
		})
	}
}

func TestBuildTrack_Errors(t *testing.T) {
	_, err := BuildTrack(TrackParams{Kind: "loop", HalfSize: 10})
	assert.ErrorContains(t, err, "unknown track kind")

	_, err = BuildTrack(TrackParams{Kind: "flat"})
	assert.ErrorContains(t, err, "half size")

	_, err = BuildTrack(TrackParams{Kind: "hills", HalfSize: 10})
	assert.ErrorContains(t, err, "wavelength")
}

func TestNewCatalog_Builtin(t *testing.T) {
	catalog, err := NewCatalog("")
	require.NoError(t, err)

	for _, kind := range config.Kinds() {
		cfg, err := catalog.Get(kind)
		require.NoError(t, err, kind.String())
		assert.Less(t, cfg.MinHeight, cfg.MaxHeight, kind.String())
		assert.Less(t, cfg.MaxHeight, float32(1.4), "%s flies low enough to hit a kart", kind)
	}

	missile, err := catalog.Get(config.Missile)
	require.NoError(t, err)
	assert.Equal(t, float32(0.4), missile.MinHeight)
	assert.Equal(t, float32(1.0), missile.MaxHeight)
	assert.Equal(t, float32(15), missile.ForceUpDown, "unset keys keep the defaults")
	assert.InDelta(t, 1.5, missile.Extent.Y, 1e-6)
}

func TestNewCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projectiles.toml")
	data := "[homing]\nspeed = 30\nmin-height = 0.6\nmax-height = 1.1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	catalog, err := NewCatalog(path)
	require.NoError(t, err)

	homing, err := catalog.Get(config.Homing)
	require.NoError(t, err)
	assert.Equal(t, float32(30), homing.Speed)
	assert.Equal(t, float32(0.6), homing.MinHeight)

	spark, err := catalog.Get(config.Spark)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(config.Spark).MinHeight, spark.MinHeight)

	_, err = NewCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSpawnRing(t *testing.T) {
	w := newFlatWorld(t, 50, Options{})
	w.SpawnRing(4, 10, 5)

	karts := w.Karts()
	require.Len(t, karts, 4)
	assert.Len(t, w.Physics.Bodies(), 4)
	assert.Len(t, w.Scene.FindByTag("kart"), 4)

	for _, k := range karts {
		pos := k.Position()
		assert.InDelta(t, 10, rl.Vector2Length(rl.Vector2{X: pos.X, Y: pos.Y}), 1e-4)
		assert.InDelta(t, 0.7, pos.Z, 1e-4)
		assert.InDelta(t, 0.5, k.TurnRate, 1e-6)
	}
	assert.Equal(t, "kart-1", karts[0].Name)
	assert.InDelta(t, 10, karts[0].Position().X, 1e-4)

	for i := 0; i < 60; i++ {
		w.Step(frame)
	}
	for _, k := range karts {
		pos := k.Position()
		assert.InDelta(t, 10, rl.Vector2Length(rl.Vector2{X: pos.X, Y: pos.Y}), 0.1, "%s stays on the circle", k.Name)
	}
	assert.Equal(t, uint64(60), w.Frame())
	assert.InDelta(t, 1, w.Time(), 1e-4)
}

func TestStep_DirectHit(t *testing.T) {
	j, err := storage.Open("", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	metrics, err := telemetry.New()
	require.NoError(t, err)

	w := newFlatWorld(t, 50, Options{Journal: j, Metrics: metrics})
	shooter := w.AddKart("shooter", rl.Vector3{}, 0)
	victim := w.AddKart("victim", rl.Vector3{Y: 8}, 0)

	_, err = w.Fire(shooter, config.Missile)
	require.NoError(t, err)
	runUntilQuiet(w, 60)

	s := w.Summary()
	assert.Equal(t, 1, s.Launched)
	assert.Equal(t, 0, s.Active)
	assert.Equal(t, 1, s.Explosions)
	assert.Equal(t, 1, s.DirectHits)
	assert.Equal(t, 1, victim.DirectHits())
	assert.True(t, victim.Stunned())
	assert.Len(t, w.Physics.Bodies(), 2)

	hits, err := j.DirectHits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits)
}

func TestStep_OutOfBounds(t *testing.T) {
	w := newFlatWorld(t, 6, Options{})
	shooter := w.AddKart("shooter", rl.Vector3{}, 0)

	f, err := w.Fire(shooter, config.Spark)
	require.NoError(t, err)
	runUntilQuiet(w, 120)

	assert.True(t, f.OutOfBounds())
	s := w.Summary()
	assert.Equal(t, 1, s.Explosions)
	assert.Equal(t, 0, s.DirectHits)
	assert.Equal(t, 0, s.Splashes)
}

func TestStep_FollowsSlopedTerrain(t *testing.T) {
	tracks := []TrackParams{
		{Kind: "ramp", HalfSize: 100, Slope: 0.2},
		{Kind: "ramp", HalfSize: 100, Slope: 0.1},
		{Kind: "hills", HalfSize: 100, Amplitude: 2, Wavelength: 60},
	}
	const tolerance float32 = 0.5

	for _, params := range tracks {
		for _, kind := range config.Kinds() {
			t.Run(fmt.Sprintf("%s-%v/%s", params.Kind, params.Slope, kind), func(t *testing.T) {
				w := newWorld(t, params, Options{})
				// up the ramp, and across the crests and troughs of the hills
				shooter := w.AddKart("shooter", rl.Vector3{X: 16, Y: -38}, 0)
				f, err := w.Fire(shooter, kind)
				require.NoError(t, err)

				for w.Time() < 2.5 {
					w.Step(frame)
					require.False(t, f.Exploded(), "exploded after %.2fs, out of bounds %v", w.Time(), f.OutOfBounds())

					pos := f.Position()
					hot, _, ok := w.Track.TerrainAt(pos)
					require.True(t, ok)
					hat := pos.Z - hot
					assert.GreaterOrEqual(t, hat, f.MinHeight()-tolerance, "at %.2fs", w.Time())
					assert.LessOrEqual(t, hat, f.MaxHeight()+tolerance, "at %.2fs", w.Time())
				}
				assert.Greater(t, f.Position().Y, float32(0), "flew forward")
			})
		}
	}
}

func TestFireNext_CyclesKartsAndKinds(t *testing.T) {
	w := newFlatWorld(t, 50, Options{})
	a := w.AddKart("a", rl.Vector3{X: -10}, 0)
	b := w.AddKart("b", rl.Vector3{X: 10}, 0)

	want := []struct {
		owner any
		kind  config.Kind
	}{
		{a, config.Missile},
		{b, config.Homing},
		{a, config.Spark},
		{b, config.Missile},
	}
	for _, tt := range want {
		f, err := w.FireNext()
		require.NoError(t, err)
		assert.Same(t, tt.owner, f.Owner())
		assert.Equal(t, tt.kind, f.Kind())
	}
	assert.Equal(t, 4, w.Summary().Launched)
}

func TestFireNext_NoKarts(t *testing.T) {
	w := newFlatWorld(t, 50, Options{})
	_, err := w.FireNext()
	assert.Error(t, err)
}

func TestClose_ReleasesEverything(t *testing.T) {
	w := newFlatWorld(t, 50, Options{})
	k := w.AddKart("solo", rl.Vector3{}, 0)
	_, err := w.Fire(k, config.Homing)
	require.NoError(t, err)
	require.Len(t, w.Physics.Bodies(), 2)

	w.Close()
	assert.Empty(t, w.Physics.Bodies())
	assert.Empty(t, w.Projectiles.Active())
	assert.Empty(t, w.Scene.FindByTag("flyable"))
	assert.Empty(t, w.Scene.FindByTag("kart"))
}

func TestSnapshot_SaveAndLoad(t *testing.T) {
	w := newFlatWorld(t, 50, Options{})
	k := w.AddKart("solo", rl.Vector3{}, 0)
	f, err := w.Fire(k, config.Homing)
	require.NoError(t, err)
	w.Step(frame)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, w.SaveSnapshot(path))

	s, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Frame)
	require.Len(t, s.Karts, 1)
	assert.Equal(t, "solo", s.Karts[0].Name)
	require.Len(t, s.Flyables, 1)
	assert.Equal(t, f.ID(), s.Flyables[0].ID)
	assert.Equal(t, "homing", s.Flyables[0].Kind)
	assert.Equal(t, 1, s.Summary.Launched)

	_, err = LoadSnapshot(filepath.Join(t.TempDir(), "none.json"))
	assert.ErrorContains(t, err, "read snapshot")
}

func TestSnapshot_Effects(t *testing.T) {
	w := newFlatWorld(t, 50, Options{})
	w.Projectiles.NotifyExplosion(rl.Vector3{X: 1, Y: 2, Z: 3})
	w.Step(frame)

	s := w.Snapshot()
	require.Len(t, s.Effects, 1)
	assert.Equal(t, [3]float32{1, 2, 3}, s.Effects[0].Position)
	assert.Greater(t, s.Effects[0].Radius, float32(0))
}
