// Package adpcm provides a pure Go IMA ADPCM audio codec for 16-bit PCM,
// together with the voice-band filtering used by ring-wearable microphones.
//
// The codec compresses each 16-bit sample into a 4-bit code by quantizing the
// difference between the sample and a running predictor against an adaptive
// step size; two codes pack into one byte, giving 4:1 compression. The byte
// stream carries no header or framing: framing is the transport's concern.
//
// # Basic Usage
//
// One-shot conversion of whole buffers:
//
//	data, err := adpcm.Encode(pcm)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := adpcm.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each one-shot call starts from freshly seeded codec state, so the same
// input always yields the same output.
//
// # Streaming
//
// Encoder and Decoder carry codec state across Write calls, so a transport
// may deliver audio in arbitrary chunks:
//
//	enc := adpcm.NewEncoder(conn)
//	enc.Write(pcmBytes) // little-endian 16-bit PCM
//	enc.Flush()
//
// # Decode Boundary
//
// ToPCM decodes into an owned, pooled buffer whose ownership transfers to
// the caller. Release it exactly once with Free, or take the storage out of
// the pool's reach with Detach:
//
//	buf, err := adpcm.ToPCM(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer buf.Free()
//	play(buf.Samples())
//
// # Conventions
//
// The quantizer uses the standard IMA/DVI-4 step-size and index-adaptation
// tables. Codes pack low nibble first; an odd final sample occupies the low
// nibble of a final partial byte with the high nibble zero. Encoder and
// decoder both seed the predictor to 0 and the step index to 0; the two
// sides must be seeded identically or they drift apart unrecoverably.
//
// # Thread Safety
//
// Package-level functions keep no shared state and are safe to call
// concurrently. Encoder, Decoder, State, BandpassFilter and PCMBuffer
// instances are NOT safe for concurrent use; give each goroutine its own.
package adpcm
