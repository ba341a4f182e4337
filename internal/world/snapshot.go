package world

import (
	"encoding/json"
	"fmt"
	"os"

	"kartflight/internal/engine"
	"kartflight/internal/projectile"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Snapshot is the race state at one frame, written as JSON by the CLI.
type Snapshot struct {
	Frame    uint64         `json:"frame"`
	Time     float32        `json:"time"`
	Karts    []KartState    `json:"karts"`
	Flyables []FlyableState `json:"flyables"`
	Effects  []EffectState  `json:"effects,omitempty"`
	Summary  Summary        `json:"summary"`
}

type KartState struct {
	Name       string     `json:"name"`
	Position   [3]float32 `json:"position"`
	Heading    float32    `json:"heading"`
	Pitch      float32    `json:"pitch"`
	Stunned    bool       `json:"stunned,omitempty"`
	DirectHits int        `json:"directHits"`
	Splashes   int        `json:"splashes"`
}

type FlyableState struct {
	ID       string     `json:"id"`
	Kind     string     `json:"kind"`
	State    string     `json:"state"`
	Position [3]float32 `json:"position"`
	Velocity [3]float32 `json:"velocity"`
	Age      float32    `json:"age"`
}

type EffectState struct {
	Position [3]float32 `json:"position"`
	Radius   float32    `json:"radius"`
}

func vec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Snapshot captures the current frame.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:   w.frame,
		Time:    w.time,
		Summary: w.Summary(),
	}
	for _, k := range w.karts {
		s.Karts = append(s.Karts, KartState{
			Name:       k.Name,
			Position:   vec(k.Position()),
			Heading:    k.Heading(),
			Pitch:      k.Pitch(),
			Stunned:    k.Stunned(),
			DirectHits: k.DirectHits(),
			Splashes:   k.Splashes(),
		})
	}
	for _, f := range w.Projectiles.Active() {
		s.Flyables = append(s.Flyables, FlyableState{
			ID:       f.ID(),
			Kind:     f.Kind().String(),
			State:    f.State().String(),
			Position: vec(f.Position()),
			Velocity: vec(f.Velocity()),
			Age:      f.Age(),
		})
	}
	for _, g := range w.Scene.FindByTag("effect") {
		if e := engine.GetComponent[*projectile.Explosion](g); e != nil {
			s.Effects = append(s.Effects, EffectState{Position: vec(g.Transform.Position), Radius: e.Radius()})
		}
	}
	return s
}

// SaveSnapshot writes the current frame to path as indented JSON.
func (w *World) SaveSnapshot(path string) error {
	data, err := json.MarshalIndent(w.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a file written by SaveSnapshot.
func LoadSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse snapshot: %w", err)
	}
	return s, nil
}
