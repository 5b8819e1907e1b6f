package bitio

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocompress/arcode"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	bits := []int{1, 0, 1, 1, 0, 0, 0, 1, 1, 1}

	for _, b := range bits {
		w.WriteBit(b)
	}

	require.NoError(t, w.Close())

	r := NewReader(&buf)

	for i, want := range bits {
		got := r.ReadBit()
		require.Equal(t, want, got, "bit %d", i)
	}
}

func TestReaderEOSAfterExhausted(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteBit(1)
	require.NoError(t, w.Close())

	r := NewReader(&buf)

	for i := 0; i < 8; i++ {
		require.NotEqual(t, arcode.EOS, r.ReadBit())
	}

	require.Equal(t, arcode.EOS, r.ReadBit())
}

func TestReadBitNoEOFErrorsOnExhaustion(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadBitNoEOF()
	require.Error(t, err)

	var codecErr *arcode.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, arcode.UnexpectedEof, codecErr.Kind)
}

func TestWriteBitPanicsAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Close())

	require.Panics(t, func() { w.WriteBit(1) })
}

func TestRandomBitStreamRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 10000
	bits := make([]int, n)

	for i := range bits {
		bits[i] = rng.Intn(2)
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)

	for _, b := range bits {
		w.WriteBit(b)
	}

	require.NoError(t, w.Close())

	r := NewReader(&buf)

	for i, want := range bits {
		require.Equal(t, want, r.ReadBit(), "bit %d", i)
	}
}
