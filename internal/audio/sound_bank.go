// internal/audio/sound_bank.go
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-layer-dive/internal/defs"
)

const sampleRate = beep.SampleRate(44100)

// SoundBank synthesises the effects listed in defs.SoundBank and plays them
// through one shared mixer.
type SoundBank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	defs        map[defs.SoundID]defs.SoundDefinition
	lastPlayed  map[defs.SoundID]time.Time
	now         func() time.Time
	initialized bool
}

func NewSoundBank(definitions map[defs.SoundID]defs.SoundDefinition) *SoundBank {
	return &SoundBank{
		mixer:      &beep.Mixer{},
		defs:       definitions,
		lastPlayed: make(map[defs.SoundID]time.Time),
		now:        time.Now,
	}
}

// Initialize opens the speaker. Without it PlaySound is a no-op.
func (b *SoundBank) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (b *SoundBank) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// PlaySound is fire-and-forget. Repeats inside the cooldown are dropped.
func (b *SoundBank) PlaySound(id defs.SoundID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	streamer, ok := b.prepare(id)
	if !ok {
		return
	}
	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

// prepare builds the streamer for id and records the play time.
func (b *SoundBank) prepare(id defs.SoundID) (beep.Streamer, bool) {
	def, ok := b.defs[id]
	if !ok {
		log.Printf("SoundBank: no definition for sound %s", id)
		return nil, false
	}
	now := b.now()
	if last, ok := b.lastPlayed[id]; ok && now.Sub(last) < def.Cooldown {
		return nil, false
	}
	b.lastPlayed[id] = now
	return NewSweep(sampleRate, def), true
}

// Silent satisfies the sound interface without producing audio.
type Silent struct{}

func (Silent) PlaySound(defs.SoundID) {}
