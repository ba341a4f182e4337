// Command flightviewer opens a window on a running race.
package main

import (
	"flag"
	"fmt"
	"os"

	"kartflight/internal/audio"
	"kartflight/internal/config"
	"kartflight/internal/game"
	"kartflight/internal/logging"
	"kartflight/internal/world"
)

func main() {
	configDir := flag.String("config", ".", "directory holding kartflight.toml")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.NewConsole(os.Stderr, config.GetString("logLevel"))

	w, err := world.FromConfig(world.Options{Logger: log})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build race")
	}
	defer w.Close()

	g := game.New(w, log)
	g.FireEvery = config.GetFloat("viewer.fireEvery")

	paths := map[audio.Cue]string{
		audio.Explosion: config.GetString("audio.explosion"),
		audio.RadarBeep: config.GetString("audio.beep"),
	}
	if paths[audio.Explosion] != "" || paths[audio.RadarBeep] != "" {
		sounds, err := audio.LoadSounds(paths)
		if err != nil {
			log.Warn().Err(err).Msg("Audio disabled")
		} else {
			defer sounds.Close()
			g.SetSound(audio.NewMixer(sounds))
		}
	}

	g.Run()
}
