// Package audio plays positional sound cues for explosions and radar beeps.
package audio

import (
	"fmt"
	"math"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cue names a sound the race can trigger.
type Cue int

const (
	Explosion Cue = iota
	RadarBeep
)

func (c Cue) String() string {
	switch c {
	case Explosion:
		return "explosion"
	case RadarBeep:
		return "radar-beep"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Listener is the ear position and orientation.
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener normalizes forward and derives the right vector from up.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	if fwdLen := rl.Vector3Length(forward); fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	right := rl.Vector3CrossProduct(l.Forward, up)
	if rightLen := rl.Vector3Length(right); rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// Spatialize returns the volume and pan (0 left, 0.5 centre, 1 right) of a
// sound at pos. Volume falls off linearly to zero at maxDistance and sounds
// behind the listener are quieter.
func (l Listener) Spatialize(pos rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, l.Position)
	distance := rl.Vector3Length(toSource)
	if distance >= maxDistance {
		return 0, 0.5
	}
	volume *= 1 - distance/maxDistance
	if distance <= 0.001 {
		return volume, 0.5
	}

	direction := rl.Vector3Scale(toSource, 1.0/distance)
	pan := rl.Clamp(0.5+rl.Vector3DotProduct(direction, l.Right)*0.5, 0, 1)
	if frontDot := rl.Vector3DotProduct(direction, l.Forward); frontDot < 0 {
		volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
	}
	return volume, pan
}

// Backend plays a cue at a given volume and pan.
type Backend interface {
	Play(c Cue, volume, pan float32)
}

// Mixer places cues relative to the listener and hands them to a Backend.
type Mixer struct {
	mu       sync.Mutex
	listener Listener
	backend  Backend
	played   int

	Volume      float32
	MaxDistance float32
}

func NewMixer(b Backend) *Mixer {
	return &Mixer{
		listener:    NewListener(rl.Vector3{}, rl.Vector3{Z: -1}, rl.Vector3{Y: 1}),
		backend:     b,
		Volume:      1.0,
		MaxDistance: 80.0,
	}
}

func (m *Mixer) SetListener(pos, forward, up rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = NewListener(pos, forward, up)
}

// Play triggers c at pos. Cues out of earshot are dropped.
func (m *Mixer) Play(c Cue, pos rl.Vector3) {
	m.mu.Lock()
	defer m.mu.Unlock()

	volume, pan := m.listener.Spatialize(pos, m.Volume, m.MaxDistance)
	if volume <= 0 {
		return
	}
	m.played++
	m.backend.Play(c, volume, pan)
}

// Played counts the cues handed to the backend.
func (m *Mixer) Played() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played
}
