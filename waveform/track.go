package waveform

import (
	"math"
	"time"

	"github.com/avtools/soundwaves/common"
)

const pcm16Max = 32767

// Track is an immutable mono audio signal with samples normalized to
// [-1, 1].
type Track struct {
	samples []float64
	rate    int
}

func NewTrack(samples []float64, sampleRate int) (*Track, error) {
	if len(samples) == 0 || sampleRate <= 0 {
		return nil, common.ErrInvalidAudio
	}
	return &Track{samples: samples, rate: sampleRate}, nil
}

// NewTrackFromPCM16 normalizes raw 16-bit signed samples by the maximum
// representable magnitude.
func NewTrackFromPCM16(samples []int16, sampleRate int) (*Track, error) {
	norm := make([]float64, len(samples))
	for i, s := range samples {
		norm[i] = float64(s) / pcm16Max
	}
	return NewTrack(norm, sampleRate)
}

func (t *Track) SampleRate() int {
	return t.rate
}

func (t *Track) NumSamples() int {
	return len(t.samples)
}

func (t *Track) Duration() time.Duration {
	return time.Duration(float64(len(t.samples)) / float64(t.rate) * float64(time.Second))
}

// SignedSampleAt returns the sample value in [-1, 1] nearest to the given
// timestamp. Timestamps outside the track clamp to the first or last
// sample, since video may run longer than audio.
func (t *Track) SignedSampleAt(seconds float64) float64 {
	idx := int(math.Round(seconds * float64(t.rate)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.samples)-1 {
		idx = len(t.samples) - 1
	}
	s := t.samples[idx]
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return s
}

// SampleAt returns the normalized amplitude in [0, 1] at the given
// timestamp.
func (t *Track) SampleAt(seconds float64) float64 {
	return math.Abs(t.SignedSampleAt(seconds))
}
