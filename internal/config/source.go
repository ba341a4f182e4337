package config

import (
	"fmt"
	"strings"

	"kartflight/internal/engine"

	"github.com/spf13/viper"
)

// Source is a key/value lookup for projectile tunables.
type Source interface {
	Float(key string) (float32, bool)
}

// MapSource serves tunables from memory.
type MapSource map[string]float32

func (m MapSource) Float(key string) (float32, bool) {
	v, ok := m[key]
	return v, ok
}

// ViperSource serves tunables from one section of a viper tree.
type ViperSource struct {
	v *viper.Viper
}

func NewViperSource(v *viper.Viper) ViperSource {
	return ViperSource{v: v}
}

func (s ViperSource) Float(key string) (float32, bool) {
	if s.v == nil || !s.v.IsSet(key) {
		return 0, false
	}
	return float32(s.v.GetFloat64(key)), true
}

// LoadProjectiles reads a data file with one section per kind and initializes
// every kind that has a model. Kinds without a section get the defaults.
func LoadProjectiles(path string, catalog *Catalog, models map[Kind]*engine.Prefab) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading projectile file: %w", err)
	}

	for _, section := range v.AllKeys() {
		name, _, _ := strings.Cut(section, ".")
		if _, err := ParseKind(name); err != nil {
			return err
		}
	}

	for _, kind := range Kinds() {
		model, ok := models[kind]
		if !ok {
			continue
		}
		var src Source = MapSource{}
		if sub := v.Sub(kind.String()); sub != nil {
			src = NewViperSource(sub)
		}
		if _, err := catalog.Init(kind, src, model); err != nil {
			return err
		}
	}
	return nil
}
