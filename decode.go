// decode.go
package adpcm

// DecodedLen returns the number of PCM samples produced by decoding n packed
// ADPCM bytes. Every byte carries two codes, including a partial final byte
// written by the odd-length encode convention.
func DecodedLen(n int) int {
	return 2 * n
}

// Decode reconstructs PCM samples from packed ADPCM bytes using freshly
// seeded codec state. The result always holds DecodedLen(len(data)) samples.
//
// Returns ErrNilBuffer for a nil slice and ErrEmptyInput for an empty one.
func Decode(data []byte) ([]int16, error) {
	if data == nil {
		return nil, ErrNilBuffer
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	dst := make([]int16, DecodedLen(len(data)))
	var s State
	decodeInto(&s, dst, data)
	return dst, nil
}

// DecodeTo reconstructs PCM samples into the caller-allocated dst, which
// must hold at least DecodedLen(len(data)) samples. It returns the number
// of samples written.
func DecodeTo(dst []int16, data []byte) (int, error) {
	if data == nil {
		return 0, ErrNilBuffer
	}
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	n := DecodedLen(len(data))
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	var s State
	decodeInto(&s, dst[:n], data)
	return n, nil
}

// decodeInto unpacks two codes per input byte, low nibble first. dst must
// have exactly DecodedLen(len(data)) samples.
func decodeInto(s *State, dst []int16, data []byte) {
	for i, b := range data {
		dst[2*i] = s.decodeStep(b & 0x0F)
		dst[2*i+1] = s.decodeStep(b >> 4)
	}
}
