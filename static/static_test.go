package static

import (
	"bytes"
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, data []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	_, err := Compress(NewBytesReopener(data), &compressed, 32)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	_, err = Decompress(bytes.NewReader(compressed.Bytes()), &decompressed, 32)
	require.NoError(t, err)

	return decompressed.Bytes()
}

func TestRoundTripRandom4096(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]byte, 4096)
	rng.Read(data)

	require.Equal(t, data, roundTrip(t, data))
}

func TestRoundTripEmptyHasFullZeroHeader(t *testing.T) {
	var compressed bytes.Buffer
	_, err := Compress(NewBytesReopener(nil), &compressed, 32)
	require.NoError(t, err)

	// 256 * 32 header bits = 1024 bytes, plus a coded body for the lone
	// EOF symbol, zero-padded to a byte boundary.
	require.GreaterOrEqual(t, compressed.Len(), 1024)

	var decompressed bytes.Buffer
	n, err := Decompress(bytes.NewReader(compressed.Bytes()), &decompressed, 32)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
	require.Empty(t, decompressed.Bytes())
}

func TestRoundTripSingleByte(t *testing.T) {
	require.Equal(t, []byte{0x41}, roundTrip(t, []byte{0x41}))
}

func TestLargeUniformInputCompresses(t *testing.T) {
	data := bytes.Repeat([]byte{0x00}, 100*1024)

	var compressed bytes.Buffer
	_, err := Compress(NewBytesReopener(data), &compressed, 32)
	require.NoError(t, err)

	require.Less(t, compressed.Len(), len(data))
	require.Equal(t, data, roundTrip(t, data))
}

func TestFileReopenerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/input.bin"
	data := []byte("the quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var compressed bytes.Buffer
	_, err := Compress(NewFileReopener(path), &compressed, 32)
	require.NoError(t, err)

	var decompressed bytes.Buffer
	_, err = Decompress(bytes.NewReader(compressed.Bytes()), &decompressed, 32)
	require.NoError(t, err)
	require.Equal(t, data, decompressed.Bytes())
}
