package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBeam
	SoundExplosion
	SoundPowerUp
	SoundDenied
	SoundShieldBlock
	SoundGameOver
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneDef describes a synthesized sound effect: a square/sine sweep with a
// linear decay envelope.
type ToneDef struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Square  bool
	Noise   float64 // 0..1 mix of white noise
	Volume  float64
}

// SoundConfig maps sound IDs to their synthesized definitions
type SoundConfig struct {
	Tones map[SoundID]ToneDef
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneDef{
			SoundBeam:        {StartHz: 1400, EndHz: 600, Seconds: 0.08, Square: true, Volume: 0.3},
			SoundExplosion:   {StartHz: 120, EndHz: 40, Seconds: 0.35, Noise: 0.8, Volume: 0.6},
			SoundPowerUp:     {StartHz: 400, EndHz: 1200, Seconds: 0.25, Volume: 0.5},
			SoundDenied:      {StartHz: 180, EndHz: 160, Seconds: 0.12, Square: true, Volume: 0.3},
			SoundShieldBlock: {StartHz: 900, EndHz: 900, Seconds: 0.05, Volume: 0.3},
			SoundGameOver:    {StartHz: 600, EndHz: 90, Seconds: 1.2, Square: true, Volume: 0.5},
		},
	}
}
