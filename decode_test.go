package adpcm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodedLen(t *testing.T) {
	tests := []struct {
		bytes int
		want  int
	}{
		{0, 0},
		{1, 2},
		{4, 8},
		{512, 1024},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodedLen(tt.bytes), "DecodedLen(%d)", tt.bytes)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.Equal(t, ErrNilBuffer, err)

	_, err = Decode([]byte{})
	assert.Equal(t, ErrEmptyInput, err)
}

func TestDecodeKnownBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []int16
	}{
		// Code 0 from the seed state reconstructs step>>3 = 0.
		{"silence", []byte{0x00}, []int16{0, 0}},
		// Code 7 reconstructs 7+3+1 = 11 and grows the step to 16; the
		// following code 0 adds 16>>3 = 2.
		{"step_up", []byte{0x07}, []int16{11, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLengthContract(t *testing.T) {
	for _, m := range []int{1, 2, 3, 5, 64, 513} {
		data := make([]byte, m)
		for i := range data {
			data[i] = byte(i * 31)
		}
		pcm, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, 2*m, len(pcm), "m=%d", m)
	}
}

func TestDecodeTo(t *testing.T) {
	data := []byte{0x17, 0x2f, 0x80}

	want, err := Decode(data)
	require.NoError(t, err)

	dst := make([]int16, 8)
	n, err := DecodeTo(dst, data)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)
	assert.Equal(t, want, dst[:n])
}

func TestDecodeToErrors(t *testing.T) {
	n, err := DecodeTo(make([]int16, 3), []byte{1, 2})
	assert.Equal(t, ErrShortBuffer, err)
	assert.Zero(t, n)

	n, err = DecodeTo(make([]int16, 4), nil)
	assert.Equal(t, ErrNilBuffer, err)
	assert.Zero(t, n)
}

// TestRoundTripSine checks the lossy round-trip bound on a voice-like
// signal: once the quantizer has adapted, the reconstruction stays within a
// small fraction of full scale.
func TestRoundTripSine(t *testing.T) {
	const (
		n      = 1024
		amp    = 8000.0
		freq   = 200.0
		rate   = 16000.0
		warmup = 64
	)

	pcm := make([]int16, n)
	for i := range pcm {
		pcm[i] = int16(amp * math.Sin(2*math.Pi*freq*float64(i)/rate))
	}

	data, err := Encode(pcm)
	require.NoError(t, err)
	require.Len(t, data, n/2)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, n)

	maxErr := 0
	for i := warmup; i < n; i++ {
		e := int(decoded[i]) - int(pcm[i])
		if e < 0 {
			e = -e
		}
		if e > maxErr {
			maxErr = e
		}
	}
	assert.LessOrEqual(t, maxErr, 1024, "per-sample error after adaptation")
}

// TestRoundTripScenario pins the 8-sample reference sequence: it must pack
// into 4 bytes and reconstruct to 8 samples that settle onto the input once
// the quantizer catches up.
func TestRoundTripScenario(t *testing.T) {
	pcm := []int16{0, 100, 200, 100, 0, -100, -200, -100}

	data, err := Encode(pcm)
	require.NoError(t, err)
	require.Len(t, data, 4)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, 8)

	for i, want := range pcm {
		e := int(decoded[i]) - int(want)
		if e < 0 {
			e = -e
		}
		assert.LessOrEqual(t, e, 512, "sample %d", i)
		if i >= 4 {
			assert.LessOrEqual(t, e, 64, "settled sample %d", i)
		}
	}
}

func TestSaturation(t *testing.T) {
	t.Run("full_scale_positive", func(t *testing.T) {
		pcm := make([]int16, 200)
		for i := range pcm {
			pcm[i] = 32767
		}
		data, err := Encode(pcm)
		require.NoError(t, err)
		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, decoded[len(decoded)-1], int16(30000),
			"predictor must converge towards full scale without wrapping")
	})

	t.Run("full_scale_negative", func(t *testing.T) {
		pcm := make([]int16, 200)
		for i := range pcm {
			pcm[i] = -32768
		}
		data, err := Encode(pcm)
		require.NoError(t, err)
		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.LessOrEqual(t, decoded[len(decoded)-1], int16(-30000))
	})

	t.Run("adversarial_alternation", func(t *testing.T) {
		// Worst case for predictor overflow: full-range swings every
		// sample. The clamped update must never wrap.
		pcm := make([]int16, 500)
		for i := range pcm {
			if i%2 == 0 {
				pcm[i] = 32767
			} else {
				pcm[i] = -32768
			}
		}
		data, err := Encode(pcm)
		require.NoError(t, err)
		_, err = Decode(data)
		require.NoError(t, err)
	})
}
