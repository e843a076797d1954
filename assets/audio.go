package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/kokaton/musou/config"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // 16-bit little-endian stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}
	def, ok := cfg.Sound.Tones[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = SynthesizeTone(def, l.context.SampleRate())
	return true
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, bool) {
	if !l.PreloadSFX(id) {
		return nil, false
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), true
}

// SynthesizeTone renders a frequency sweep with a linear decay envelope as
// 16-bit little-endian stereo PCM.
func SynthesizeTone(def cfg.ToneDef, sampleRate int) []byte {
	n := int(def.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	noise := rand.New(rand.NewPCG(uint64(def.StartHz), uint64(n)))

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := def.StartHz + (def.EndHz-def.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if def.Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		if def.Noise > 0 {
			v = v*(1-def.Noise) + (noise.Float64()*2-1)*def.Noise
		}
		v *= def.Volume * (1 - t)

		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
