// stream.go
package adpcm

import (
	"encoding/binary"
	"io"

	"github.com/its4ff/go-adpcm/internal/pcm"
)

// Encoder compresses little-endian 16-bit PCM written to it and writes the
// packed ADPCM bytes to dst. Codec state persists across Write calls, so a
// transport may deliver audio in arbitrary chunks; a sample or code split
// across chunk boundaries is buffered internally.
type Encoder struct {
	dst   io.Writer
	state State

	pending     uint8 // encoded low nibble awaiting its pair
	havePending bool
	part        byte // dangling low byte of a split sample
	havePart    bool
}

// NewEncoder returns an Encoder writing packed ADPCM to dst.
func NewEncoder(dst io.Writer) *Encoder {
	return &Encoder{dst: dst}
}

// Reset reseeds the codec state and drops any buffered partial sample or
// nibble, so the Encoder can start a new independent stream.
func (e *Encoder) Reset() {
	e.state.Reset()
	e.pending = 0
	e.havePending = false
	e.part = 0
	e.havePart = false
}

// Write encodes b, interpreted as little-endian 16-bit PCM bytes, and
// writes the resulting ADPCM bytes to dst. It returns the number of ADPCM
// bytes written. An odd trailing input byte is buffered until the next
// Write completes the sample.
func (e *Encoder) Write(b []byte) (int, error) {
	out := make([]byte, 0, len(b)/4+1)

	for len(b) > 0 {
		var sample int16
		switch {
		case e.havePart:
			sample = int16(uint16(e.part) | uint16(b[0])<<8)
			e.havePart = false
			b = b[1:]
		case len(b) == 1:
			e.part = b[0]
			e.havePart = true
			b = nil
			continue
		default:
			sample = int16(binary.LittleEndian.Uint16(b))
			b = b[2:]
		}

		code := e.state.encodeStep(sample)
		if e.havePending {
			e.havePending = false
			out = append(out, e.pending|code<<4)
		} else {
			e.pending = code
			e.havePending = true
		}
	}

	if len(out) == 0 {
		return 0, nil
	}
	return e.dst.Write(out)
}

// Flush writes any buffered half byte to dst as a final partial byte, per
// the odd-length packing convention. It returns the number of bytes
// written. Flushing with half a sample still buffered (an odd total byte
// count written so far) reports ErrOddLength.
func (e *Encoder) Flush() (int, error) {
	if e.havePart {
		return 0, ErrOddLength
	}
	if !e.havePending {
		return 0, nil
	}
	e.havePending = false
	return e.dst.Write([]byte{e.pending})
}

// Decoder decompresses packed ADPCM bytes written to it and writes
// little-endian 16-bit PCM to dst. Codec state persists across Write calls.
type Decoder struct {
	dst   io.Writer
	state State
}

// NewDecoder returns a Decoder writing little-endian PCM to dst.
func NewDecoder(dst io.Writer) *Decoder {
	return &Decoder{dst: dst}
}

// Reset reseeds the codec state so the Decoder can start a new stream.
func (d *Decoder) Reset() {
	d.state.Reset()
}

// Write decodes b and writes the reconstructed PCM bytes to dst. It returns
// the number of PCM bytes written.
func (d *Decoder) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	samples := make([]int16, DecodedLen(len(b)))
	decodeInto(&d.state, samples, b)
	return d.dst.Write(pcm.Bytes(samples))
}
