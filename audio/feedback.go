package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const feedbackSampleRate = beep.SampleRate(44100)

// Feedback plays short placement cues for the preview tool
type Feedback struct {
	enabled bool
}

// NewFeedback initializes the speaker. Failure is non-fatal: the
// preview runs silent and the returned instance swallows all cues.
func NewFeedback() *Feedback {
	if err := speaker.Init(feedbackSampleRate, feedbackSampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
		return &Feedback{}
	}
	return &Feedback{enabled: true}
}

// Enabled reports whether the speaker initialized
func (f *Feedback) Enabled() bool {
	return f.enabled
}

// PlacementTick plays a short high tick for one placed object
func (f *Feedback) PlacementTick() {
	f.tone(880, 40*time.Millisecond)
}

// SkipBuzz plays a lower buzz when objects were skipped
func (f *Feedback) SkipBuzz() {
	f.tone(220, 120*time.Millisecond)
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.enabled {
		return
	}

	sine, err := generators.SineTone(feedbackSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(feedbackSampleRate.N(d), sine))
}
