package termview

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate     = beep.SampleRate(44100)
	splashTone     = 660
	splashLength   = 40 * time.Millisecond
	splashCooldown = 150 * time.Millisecond
)

// Splash plays a short tone when droplets land. Playback is rate limited and
// silently disabled when the speaker cannot be opened.
type Splash struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	last        time.Time
	now         func() time.Time
	play        func() error
}

// NewSplash returns a splash player. Call Init before Play has any effect.
func NewSplash(enabled bool) *Splash {
	s := &Splash{enabled: enabled, now: time.Now}
	s.play = s.playTone
	return s
}

// Init opens the speaker.
func (s *Splash) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	s.initialized = true
	return nil
}

// Enabled reports whether splashes are audible.
func (s *Splash) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Toggle flips the enabled state and returns the new one.
func (s *Splash) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = !s.enabled
	return s.enabled
}

// Play emits one splash unless disabled, uninitialised or within the
// cooldown of the previous one. It reports whether a tone was started.
func (s *Splash) Play() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || !s.initialized {
		return false
	}
	now := s.now()
	if !s.last.IsZero() && now.Sub(s.last) < splashCooldown {
		return false
	}
	if err := s.play(); err != nil {
		return false
	}
	s.last = now
	return true
}

func (s *Splash) playTone() error {
	sine, err := generators.SineTone(sampleRate, splashTone)
	if err != nil {
		return err
	}
	speaker.Play(beep.Take(sampleRate.N(splashLength), sine))
	return nil
}

// Close releases the speaker.
func (s *Splash) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
