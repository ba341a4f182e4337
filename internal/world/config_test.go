package world

import (
	"os"
	"path/filepath"
	"testing"

	"kartflight/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, config.Load(t.TempDir()))

	w, err := FromConfig(Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(w.Close)

	assert.Equal(t, "hills", w.Track.Name)
	assert.Len(t, w.Karts(), 4)
	assert.True(t, w.Catalog.Has(config.Homing))

	w.Step(0.016)
	_, err = w.FireNext()
	require.NoError(t, err)
	assert.Len(t, w.Projectiles.Active(), 1)
}

func TestFromConfig_File(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	data := "[track]\nkind = \"flat\"\nhalfSize = 40\n\n[sim]\nkarts = 2\nringRadius = 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kartflight.toml"), []byte(data), 0644))
	require.NoError(t, config.Load(dir))

	w, err := FromConfig(Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(w.Close)

	assert.Equal(t, "flat", w.Track.Name)
	assert.Len(t, w.Karts(), 2)
}

func TestFromConfig_BadTrack(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, config.Load(t.TempDir()))
	viper.Set("track.kind", "moebius")

	_, err := FromConfig(Options{Logger: zerolog.Nop()})
	assert.ErrorContains(t, err, "unknown track kind")
}
