// bandpass.go
package adpcm

import (
	"math"

	"github.com/its4ff/go-adpcm/internal/dsp"
)

// Default bandpass parameters: the telephone voice band at the ring
// microphone's sample rate.
const (
	DefaultSampleRate = 16000 // Hz
	DefaultLowHz      = 300   // lower passband corner
	DefaultHighHz     = 3400  // upper passband corner
)

// BandpassFilter attenuates frequencies outside a fixed passband. It is a
// cascade of one high-pass and one low-pass Butterworth biquad section, so
// it is linear and time-invariant. Filter history carries across Process
// calls; use Reset (or the one-shot Bandpass) for independent buffers.
type BandpassFilter struct {
	hp dsp.Biquad
	lp dsp.Biquad
}

// NewBandpassFilter designs a bandpass filter for the given sample rate and
// passband corners, all in Hz. The corners must satisfy
// 0 < low < high < rate/2.
func NewBandpassFilter(sampleRate, lowHz, highHz float64) (*BandpassFilter, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if lowHz <= 0 || highHz <= lowHz || highHz >= sampleRate/2 {
		return nil, ErrInvalidPassband
	}
	return &BandpassFilter{
		hp: dsp.HighPass(sampleRate, lowHz, dsp.ButterworthQ),
		lp: dsp.LowPass(sampleRate, highHz, dsp.ButterworthQ),
	}, nil
}

// Process filters pcm and returns a new slice of the same length. Output
// samples are rounded and saturated into the 16-bit range.
func (f *BandpassFilter) Process(pcm []int16) []int16 {
	out := make([]int16, len(pcm))
	for i, s := range pcm {
		v := f.lp.Step(f.hp.Step(float64(s)))
		out[i] = clamp16(int(math.Round(v)))
	}
	return out
}

// Reset clears the filter history.
func (f *BandpassFilter) Reset() {
	f.hp.Reset()
	f.lp.Reset()
}

// Bandpass applies the default voice-band filter (300-3400 Hz at 16 kHz)
// to pcm with fresh filter state, so separate calls are independent.
func Bandpass(pcm []int16) []int16 {
	f, _ := NewBandpassFilter(DefaultSampleRate, DefaultLowHz, DefaultHighHz)
	return f.Process(pcm)
}
