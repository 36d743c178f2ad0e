// encode.go
package adpcm

// EncodedLen returns the number of packed ADPCM bytes produced by encoding
// n PCM samples: one byte per sample pair, plus a partial byte for an odd
// final sample.
func EncodedLen(n int) int {
	return (n + 1) / 2
}

// Encode compresses pcm into packed ADPCM bytes using freshly seeded codec
// state, so identical input always produces identical output.
//
// Returns ErrNilBuffer for a nil slice and ErrEmptyInput for an empty one.
func Encode(pcm []int16) ([]byte, error) {
	if pcm == nil {
		return nil, ErrNilBuffer
	}
	if len(pcm) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]byte, EncodedLen(len(pcm)))
	var s State
	encodeInto(&s, dst, pcm)
	return dst, nil
}

// EncodeTo compresses pcm into the caller-allocated dst, which must hold at
// least EncodedLen(len(pcm)) bytes. It returns the number of bytes written.
func EncodeTo(dst []byte, pcm []int16) (int, error) {
	if pcm == nil {
		return 0, ErrNilBuffer
	}
	if len(pcm) == 0 {
		return 0, ErrEmptyInput
	}
	n := EncodedLen(len(pcm))
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	var s State
	encodeInto(&s, dst[:n], pcm)
	return n, nil
}

// encodeInto packs two 4-bit codes per output byte, low nibble first. An
// odd final sample goes in the low nibble of a final partial byte with the
// high nibble zero. dst must have exactly EncodedLen(len(pcm)) bytes.
func encodeInto(s *State, dst []byte, pcm []int16) {
	for i := 0; i+1 < len(pcm); i += 2 {
		lo := s.encodeStep(pcm[i])
		hi := s.encodeStep(pcm[i+1])
		dst[i/2] = lo | hi<<4
	}
	if len(pcm)%2 != 0 {
		dst[len(dst)-1] = s.encodeStep(pcm[len(pcm)-1])
	}
}
