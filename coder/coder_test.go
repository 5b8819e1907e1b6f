package coder

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocompress/arcode"
	"github.com/gocompress/arcode/bitio"
	"github.com/gocompress/arcode/freq"
)

func encodeSymbols(t *testing.T, stateBits uint, symbols []int, table func() arcode.FrequencyTable) []byte {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	enc, err := NewEncoderWithStateBits(bw, stateBits)
	require.NoError(t, err)

	f := table()

	for _, s := range symbols {
		require.NoError(t, enc.Write(f, s))

		if m, ok := f.(arcode.MutableFrequencyTable); ok {
			m.Increment(s)
		}
	}

	enc.Finish()
	require.NoError(t, bw.Close())
	return buf.Bytes()
}

func decodeSymbols(t *testing.T, stateBits uint, data []byte, n int, table func() arcode.FrequencyTable) []int {
	br := bitio.NewReader(bytes.NewReader(data))
	dec, err := NewDecoderWithStateBits(br, stateBits)
	require.NoError(t, err)

	f := table()
	out := make([]int, n)

	for i := 0; i < n; i++ {
		sym, err := dec.Read(f)
		require.NoError(t, err)
		out[i] = sym

		if m, ok := f.(arcode.MutableFrequencyTable); ok {
			m.Increment(sym)
		}
	}

	return out
}

func TestEncodeDecodeRoundTripFlatTable(t *testing.T) {
	symbols := []int{3, 1, 4, 1, 5, 9, 2, 6, 0, 0, 0, 7}

	newTable := func() arcode.FrequencyTable {
		f, err := freq.NewFlat(10)
		require.NoError(t, err)
		return f
	}

	data := encodeSymbols(t, DefaultStateBits, symbols, newTable)
	got := decodeSymbols(t, DefaultStateBits, data, len(symbols), newTable)
	require.Equal(t, symbols, got)
}

func TestEncodeDecodeRoundTripAdaptiveTable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	symbols := make([]int, 500)

	for i := range symbols {
		symbols[i] = rng.Intn(257)
	}

	newTable := func() arcode.FrequencyTable {
		seed, err := freq.NewFlat(257)
		require.NoError(t, err)
		s, err := freq.NewSimpleFromTable(seed)
		require.NoError(t, err)
		return s
	}

	data := encodeSymbols(t, DefaultStateBits, symbols, newTable)
	got := decodeSymbols(t, DefaultStateBits, data, len(symbols), newTable)
	require.Equal(t, symbols, got)
}

func TestEncodeDecodeRoundTripSmallStateBits(t *testing.T) {
	symbols := []int{0, 1, 2, 3, 2, 1, 0, 3, 3, 3, 1}

	newTable := func() arcode.FrequencyTable {
		f, err := freq.NewFlat(4)
		require.NoError(t, err)
		return f
	}

	data := encodeSymbols(t, 8, symbols, newTable)
	got := decodeSymbols(t, 8, data, len(symbols), newTable)
	require.Equal(t, symbols, got)
}

func TestWriteRejectsZeroFrequencySymbol(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	enc, err := NewEncoder(bw)
	require.NoError(t, err)

	f, err := freq.NewSimple([]uint64{1, 0, 1})
	require.NoError(t, err)

	err = enc.Write(f, 1)
	require.Error(t, err)

	var codecErr *arcode.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, arcode.InvalidSymbol, codecErr.Kind)
}

func TestWriteRejectsTotalExceedingMaximum(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	enc, err := NewEncoderWithStateBits(bw, 4)
	require.NoError(t, err)

	require.Equal(t, uint64(4+2), enc.MaximumTotal())

	f, err := freq.NewFlat(100)
	require.NoError(t, err)

	err = enc.Write(f, 0)
	require.Error(t, err)

	var codecErr *arcode.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, arcode.TotalTooLarge, codecErr.Kind)
}

func TestUpdateForcesUnderflowStraddle(t *testing.T) {
	// 6-bit state: fullRange=64, halfRange=32, quarterRange=16. A
	// frequency table with Low=5, High=10, Total=18 (the maximum this
	// width allows) narrows [0,63] to [17,34] for symbol 1: low sits
	// just above quarterRange while high sits just above halfRange,
	// straddling the mid-quarter boundary without the top bits ever
	// agreeing. That forces update() into the E3 loop (coder/state.go)
	// before any E1/E2 shift fires.
	f, err := freq.NewSimple([]uint64{5, 5, 8})
	require.NoError(t, err)

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	enc, err := NewEncoderWithStateBits(bw, 6)
	require.NoError(t, err)

	require.NoError(t, enc.Write(f, 1))
	require.Equal(t, uint64(4), enc.state.low)
	require.Equal(t, uint64(37), enc.state.high)
	require.Equal(t, uint64(1), enc.underflowPending)

	enc.Finish()
	require.NoError(t, bw.Close())

	br := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	dec, err := NewDecoderWithStateBits(br, 6)
	require.NoError(t, err)

	decodeTable, err := freq.NewSimple([]uint64{5, 5, 8})
	require.NoError(t, err)

	symbol, err := dec.Read(decodeTable)
	require.NoError(t, err)
	require.Equal(t, 1, symbol)
}

func TestNewEncoderRejectsOutOfRangeStateBits(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	_, err := NewEncoderWithStateBits(bw, 0)
	require.Error(t, err)

	_, err = NewEncoderWithStateBits(bw, 33)
	require.Error(t, err)
}
