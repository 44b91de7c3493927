package procedural

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
)

// SampleRate is the rate every clip is rendered at.
const SampleRate = 44100

// Synthesize renders a named procedural clip as 16 bit little endian
// stereo PCM at SampleRate.
func Synthesize(clip string) ([]byte, error) {
	switch clip {
	case "footstep":
		return Footstep(), nil
	default:
		return nil, fmt.Errorf("unknown procedural clip %q", clip)
	}
}

const (
	footstepLength = 0.42
	footstepThud   = 0.09
	footstepPitch  = 85.0
)

// Footstep renders one step: a low decaying thump with a short burst of
// filtered noise on top, followed by silence so that replaying the clip
// keeps a walking cadence.
func Footstep() []byte {
	frames := int(footstepLength * SampleRate)
	thud := int(footstepThud * SampleRate)
	rng := rand.New(rand.NewPCG(0x5eed, 0xf007))

	out := make([]byte, frames*4)
	var noise float64
	for i := 0; i < thud; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 45)
		noise = 0.8*noise + 0.2*(rng.Float64()*2-1)
		v := env * (0.7*math.Sin(2*math.Pi*footstepPitch*t) + 0.5*noise)
		s := int16(clampUnit(v) * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
