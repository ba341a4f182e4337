package world

import (
	"kartflight/internal/config"
)

// FromConfig builds the track, the projectile catalog and the starting ring
// of karts from the loaded application config. It overrides opts.Track and
// opts.Catalog.
func FromConfig(opts Options) (*World, error) {
	tr, err := BuildTrack(TrackParams{
		Kind:       config.GetString("track.kind"),
		HalfSize:   config.GetFloat("track.halfSize"),
		Amplitude:  config.GetFloat("track.amplitude"),
		Wavelength: config.GetFloat("track.wavelength"),
		Slope:      config.GetFloat("track.slope"),
	})
	if err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(config.GetString("projectiles.file"))
	if err != nil {
		return nil, err
	}

	opts.Track = tr
	opts.Catalog = catalog
	w := New(opts)
	w.SpawnRing(config.GetInt("sim.karts"), config.GetFloat("sim.ringRadius"), config.GetFloat("sim.kartSpeed"))
	return w, nil
}
