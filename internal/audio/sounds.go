package audio

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sounds is the raylib Backend. It owns the audio device.
type Sounds struct {
	sounds map[Cue]rl.Sound
}

// LoadSounds opens the audio device and loads one file per cue. Cues
// without a path stay silent.
func LoadSounds(paths map[Cue]string) (*Sounds, error) {
	rl.InitAudioDevice()
	s := &Sounds{sounds: make(map[Cue]rl.Sound)}
	for cue, path := range paths {
		if path == "" {
			continue
		}
		sound := rl.LoadSound(path)
		if !rl.IsSoundValid(sound) {
			s.Close()
			return nil, fmt.Errorf("loading %s sound %q failed", cue, path)
		}
		s.sounds[cue] = sound
	}
	return s, nil
}

func (s *Sounds) Play(c Cue, volume, pan float32) {
	sound, ok := s.sounds[c]
	if !ok {
		return
	}
	rl.SetSoundVolume(sound, volume)
	rl.SetSoundPan(sound, pan)
	rl.PlaySound(sound)
}

func (s *Sounds) Close() {
	for _, sound := range s.sounds {
		rl.UnloadSound(sound)
	}
	s.sounds = nil
	rl.CloseAudioDevice()
}
