// buffer.go
package adpcm

import (
	"sync"

	"github.com/its4ff/go-adpcm/internal/pcm"
)

// PCMBuffer owns decoded PCM storage handed to the caller by ToPCM. The
// storage comes from an internal pool; release it exactly once with Free,
// or take it out of the pool's reach with Detach before handing the slice
// across a foreign boundary.
type PCMBuffer struct {
	samples  []int16
	released bool
}

var pcmPool = sync.Pool{
	New: func() any { return &PCMBuffer{} },
}

// ToPCM decodes packed ADPCM bytes into an owned PCM buffer. Ownership of
// the returned buffer transfers to the caller. Nil or empty input fails
// without touching the pool.
func ToPCM(adpcm []byte) (*PCMBuffer, error) {
	if adpcm == nil {
		return nil, ErrNilBuffer
	}
	if len(adpcm) == 0 {
		return nil, ErrEmptyInput
	}

	buf := pcmPool.Get().(*PCMBuffer)
	buf.released = false

	n := DecodedLen(len(adpcm))
	if cap(buf.samples) < n {
		buf.samples = make([]int16, n)
	} else {
		buf.samples = buf.samples[:n]
	}

	var s State
	decodeInto(&s, buf.samples, adpcm)
	return buf, nil
}

// Len returns the number of samples held, or 0 after release.
func (b *PCMBuffer) Len() int {
	if b.released {
		return 0
	}
	return len(b.samples)
}

// Samples returns the decoded samples. The slice is only valid until Free;
// after release it returns nil.
func (b *PCMBuffer) Samples() []int16 {
	if b.released {
		return nil
	}
	return b.samples
}

// Bytes returns the decoded samples as little-endian 16-bit PCM bytes in a
// freshly allocated slice, or nil after release.
func (b *PCMBuffer) Bytes() []byte {
	if b.released {
		return nil
	}
	return pcm.Bytes(b.samples)
}

// Free returns the buffer's storage to the pool. The buffer and any slice
// obtained from Samples must not be used afterwards. A second Free reports
// ErrBufferReleased instead of corrupting the pool.
func (b *PCMBuffer) Free() error {
	if b.released {
		return ErrBufferReleased
	}
	b.released = true
	pcmPool.Put(b)
	return nil
}

// Detach removes the sample storage from the buffer and marks it released,
// so the slice survives the buffer and never returns to the pool. Use this
// when handing the samples across an ownership boundary. Returns nil if the
// buffer was already released.
func (b *PCMBuffer) Detach() []int16 {
	if b.released {
		return nil
	}
	s := b.samples
	b.samples = nil
	b.released = true
	return s
}
