// Command kartflight runs a headless race: karts circle the track and fire
// projectiles at a fixed cadence, then a summary is printed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kartflight/internal/config"
	"kartflight/internal/logging"
	"kartflight/internal/storage"
	"kartflight/internal/telemetry"
	"kartflight/internal/world"

	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory holding kartflight.toml")
	snapshot := flag.String("snapshot", "", "write the final race state to this JSON file")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.NewConsole(os.Stderr, config.GetString("logLevel"))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log, *snapshot); err != nil {
		log.Fatal().Err(err).Msg("Race failed")
	}
}

func run(ctx context.Context, log zerolog.Logger, snapshot string) error {
	opts := world.Options{Logger: log}

	if config.GetBool("journal.enabled") {
		j, err := storage.Open(config.GetString("journal.path"), log)
		if err != nil {
			return err
		}
		defer j.Close()
		opts.Journal = j
	}

	metrics, err := telemetry.New()
	if err != nil {
		return err
	}
	opts.Metrics = metrics

	w, err := world.FromConfig(opts)
	if err != nil {
		return err
	}
	defer w.Close()

	frames := config.GetInt("sim.frames")
	dt := float32(config.GetDuration("sim.timestep").Seconds())
	fireEvery := config.GetInt("sim.fireEvery")
	log.Info().
		Int("frames", frames).
		Float32("timestep", dt).
		Int("karts", len(w.Karts())).
		Str("track", w.Track.Name).
		Msg("Race started")

	for i := 0; i < frames; i++ {
		if ctx.Err() != nil {
			log.Warn().Int("frame", i).Msg("Race interrupted")
			break
		}
		if fireEvery > 0 && i%fireEvery == 0 {
			if _, err := w.FireNext(); err != nil {
				log.Error().Err(err).Msg("Failed to fire")
			}
		}
		w.Step(dt)
	}

	if snapshot != "" {
		if err := w.SaveSnapshot(snapshot); err != nil {
			return err
		}
		log.Info().Str("path", snapshot).Msg("Snapshot written")
	}

	s := w.Summary()
	log.Info().
		Uint64("frames", s.Frames).
		Float32("time", s.Time).
		Int("launched", s.Launched).
		Int("explosions", s.Explosions).
		Int("directHits", s.DirectHits).
		Int("splashes", s.Splashes).
		Int("radarBeeps", s.RadarBeeps).
		Int("active", s.Active).
		Msg("Race finished")

	for _, k := range w.Karts() {
		fmt.Printf("%-8s hits taken %2d  splashes %2d\n", k.Name, k.DirectHits(), k.Splashes())
	}
	return nil
}
