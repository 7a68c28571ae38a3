package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"go-layer-dive/internal/defs"
)

// Sweep is a sine tone gliding between two frequencies with a short
// attack and a linear release.
type Sweep struct {
	sr      beep.SampleRate
	def     defs.SoundDefinition
	pos     int
	samples int
	phase   float64
}

func NewSweep(sr beep.SampleRate, def defs.SoundDefinition) *Sweep {
	return &Sweep{
		sr:      sr,
		def:     def,
		samples: sr.N(def.Duration),
	}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.samples {
		return 0, false
	}
	attack := s.sr.N(5 * time.Millisecond)
	for i := range samples {
		if s.pos >= s.samples {
			return i, true
		}
		p := float64(s.pos) / float64(s.samples)
		freq := s.def.FromHz + (s.def.ToHz-s.def.FromHz)*p
		s.phase += 2 * math.Pi * freq / float64(s.sr)

		env := 1 - p
		if s.pos < attack {
			env *= float64(s.pos) / float64(attack)
		}
		v := math.Sin(s.phase) * env * s.def.Volume
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error {
	return nil
}

// Len is the total number of samples the sweep produces.
func (s *Sweep) Len() int {
	return s.samples
}
