// Package dsp implements the second-order IIR filter sections used for
// voice-band filtering.
package dsp

import (
	"math"
	"math/cmplx"
)

// ButterworthQ is the quality factor of a maximally flat (Butterworth)
// second-order section: 1/sqrt(2).
const ButterworthQ = 0.7071067811865476

// Biquad is a single second-order IIR section in direct form II transposed.
// Coefficients are normalized so a0 = 1. The zero value outputs silence;
// construct sections with LowPass, HighPass or BandPass.
type Biquad struct {
	b0, b1, b2 float64 // feedforward
	a1, a2     float64 // feedback
	z1, z2     float64 // state
}

// LowPass designs a low-pass section with the given cutoff, using the RBJ
// Audio EQ Cookbook formulas. DC gain is exactly 1.
func LowPass(sampleRate, cutoffHz, q float64) Biquad {
	w0 := 2 * math.Pi * cutoffHz / sampleRate
	cosw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	return normalize(
		(1-cosw)/2, 1-cosw, (1-cosw)/2,
		1+alpha, -2*cosw, 1-alpha,
	)
}

// HighPass designs a high-pass section with the given cutoff. DC gain is
// exactly 0.
func HighPass(sampleRate, cutoffHz, q float64) Biquad {
	w0 := 2 * math.Pi * cutoffHz / sampleRate
	cosw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	return normalize(
		(1+cosw)/2, -(1 + cosw), (1+cosw)/2,
		1+alpha, -2*cosw, 1-alpha,
	)
}

// BandPass designs a band-pass section with unit peak gain at centerHz.
func BandPass(sampleRate, centerHz, q float64) Biquad {
	w0 := 2 * math.Pi * centerHz / sampleRate
	cosw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	return normalize(
		alpha, 0, -alpha,
		1+alpha, -2*cosw, 1-alpha,
	)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Biquad {
	return Biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// Step processes one sample through the section.
func (f *Biquad) Step(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// Process filters buf in place.
func (f *Biquad) Process(buf []float64) {
	for i, x := range buf {
		buf[i] = f.Step(x)
	}
}

// Reset clears the filter state without touching the coefficients.
func (f *Biquad) Reset() {
	f.z1 = 0
	f.z2 = 0
}

// Gain returns the section's magnitude response at the given frequency.
// Useful for verifying a design against its passband contract.
func (f *Biquad) Gain(sampleRate, freqHz float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	z := complex(math.Cos(w), math.Sin(w))
	num := complex(f.b0, 0) + complex(f.b1, 0)/z + complex(f.b2, 0)/(z*z)
	den := complex(1, 0) + complex(f.a1, 0)/z + complex(f.a2, 0)/(z*z)
	return cmplx.Abs(num / den)
}
