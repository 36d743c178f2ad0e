// adpcm.go
package adpcm

// State holds the per-stream codec state: the running predicted sample and
// the current index into the step-size table. The zero value is the seed
// state shared by encoder and decoder; both sides must start from it (or
// from identical copies) for the streams to stay in sync.
//
// A State is local to one stream. Independent streams with independent
// States may be processed in parallel.
type State struct {
	predictor int16 // running estimate of the next sample
	stepIndex int   // index into stepTable
}

// Reset returns the state to the seed values.
func (s *State) Reset() {
	*s = State{}
}

// Predictor returns the current predicted sample value.
func (s *State) Predictor() int16 {
	return s.predictor
}

// StepIndex returns the current step-size table index.
func (s *State) StepIndex() int {
	return s.stepIndex
}

// clamp16 saturates v into the 16-bit signed sample range.
func clamp16(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// clampIndex saturates i into the valid step-table index range.
func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > maxStepIndex {
		return maxStepIndex
	}
	return i
}

// encodeStep quantizes one sample against the current predictor and step
// size, advances the state, and returns the 4-bit code (sign bit 8, three
// magnitude bits). The predictor is advanced by the same reconstructed
// delta the decoder will compute, so the two sides track each other.
func (s *State) encodeStep(sample int16) uint8 {
	step := stepTable[s.stepIndex]

	diff := int(sample) - int(s.predictor)
	var code int
	if diff < 0 {
		code = 8
		diff = -diff
	}

	// Successive approximation against step, step/2, step/4. delta
	// accumulates the dequantized difference the decoder will see.
	delta := step >> 3
	if diff >= step {
		code |= 4
		diff -= step
		delta += step
	}
	if diff >= step>>1 {
		code |= 2
		diff -= step >> 1
		delta += step >> 1
	}
	if diff >= step>>2 {
		code |= 1
		delta += step >> 2
	}

	if code&8 != 0 {
		s.predictor = clamp16(int(s.predictor) - delta)
	} else {
		s.predictor = clamp16(int(s.predictor) + delta)
	}
	s.stepIndex = clampIndex(s.stepIndex + indexTable[code])

	return uint8(code)
}

// decodeStep dequantizes one 4-bit code, advances the state, and returns
// the reconstructed sample. Mirrors encodeStep exactly.
func (s *State) decodeStep(code uint8) int16 {
	code &= 0x0F
	step := stepTable[s.stepIndex]

	delta := step >> 3
	if code&4 != 0 {
		delta += step
	}
	if code&2 != 0 {
		delta += step >> 1
	}
	if code&1 != 0 {
		delta += step >> 2
	}

	if code&8 != 0 {
		s.predictor = clamp16(int(s.predictor) - delta)
	} else {
		s.predictor = clamp16(int(s.predictor) + delta)
	}
	s.stepIndex = clampIndex(s.stepIndex + indexTable[code])

	return s.predictor
}
