package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ConfigName is the file Load looks for, without extension.
const ConfigName = "kartflight"

// Load sets default values and reads kartflight.{toml,yaml,json} from
// configDir if one exists. A missing file leaves the defaults in place.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("projectiles.file", "")

	viper.SetDefault("track.kind", "hills")
	viper.SetDefault("track.halfSize", 120.0)
	viper.SetDefault("track.amplitude", 2.0)
	viper.SetDefault("track.wavelength", 60.0)
	viper.SetDefault("track.slope", 0.1)

	viper.SetDefault("sim.frames", 600)
	viper.SetDefault("sim.timestep", "16ms")
	viper.SetDefault("sim.karts", 4)
	viper.SetDefault("sim.kartSpeed", 12.0)
	viper.SetDefault("sim.ringRadius", 30.0)
	viper.SetDefault("sim.fireEvery", 90)

	viper.SetDefault("viewer.fireEvery", 1.5)
	viper.SetDefault("audio.explosion", "")
	viper.SetDefault("audio.beep", "")

	viper.SetDefault("journal.enabled", false)
	viper.SetDefault("journal.path", "")

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat returns a float config value.
func GetFloat(key string) float32 {
	return float32(viper.GetFloat64(key))
}

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
