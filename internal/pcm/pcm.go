// Package pcm converts between 16-bit signed samples and the little-endian
// byte layout used on the wire and in files.
package pcm

import (
	"encoding/binary"
	"errors"
)

// BytesPerSample is the byte width of one 16-bit PCM sample.
const BytesPerSample = 2

// ErrOddLength reports a byte buffer that does not divide into whole
// samples.
var ErrOddLength = errors.New("pcm: byte count is not a multiple of 2")

// Bytes encodes samples as little-endian 16-bit PCM.
func Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(s))
	}
	return out
}

// Samples decodes little-endian 16-bit PCM bytes. The byte count must be a
// multiple of BytesPerSample.
func Samples(b []byte) ([]int16, error) {
	if len(b)%BytesPerSample != 0 {
		return nil, ErrOddLength
	}
	out := make([]int16, len(b)/BytesPerSample)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*BytesPerSample:]))
	}
	return out, nil
}
