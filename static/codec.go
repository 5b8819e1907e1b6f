/*
Copyright 2024 The arcode Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
// Package static implements the static front-end (component F, spec.md
// §6): a two-pass compressor that measures the exact frequency of every
// byte value up front, writes that table as a 256-entry big-endian
// header, then arithmetic-codes the body against the now-fixed model.
// Grounded on original_source/python/arithmetic-compress.py's
// get_frequencies/compress pair, restyled in kanzi-go's idiom of a
// Compress/Decompress function pair over io.Reader/io.Writer (see
// v2/io/CompressedStream.go for the teacher's closest analogue).
package static

import (
	"io"

	"github.com/gocompress/arcode"
	"github.com/gocompress/arcode/bitio"
	"github.com/gocompress/arcode/coder"
	"github.com/gocompress/arcode/freq"
)

// SymbolLimit is the static front-end's alphabet size: 256 byte values
// plus one reserved end-of-stream symbol.
const SymbolLimit = 257

// EOFSymbol is the reserved end-of-stream marker, matching ppm's
// convention of placing it one past the last real byte value.
const EOFSymbol = 256

// Compress reads all of src, measures the frequency of each byte value,
// writes the 256-entry big-endian frequency header followed by the
// arithmetic-coded body to dst, and returns the number of input bytes
// processed. src is read twice (once to measure, once to encode), per
// spec.md §6's two-pass contract; callers whose source isn't cheaply
// re-readable should buffer it themselves before calling Compress.
func Compress(src Reopener, dst io.Writer, stateBits uint) (int64, error) {
	counts := make([]uint64, 256)
	var total int64
	var blockFreqs [256]int

	measureStream, err := src.Open()

	if err != nil {
		return 0, arcode.WrapError(arcode.Io, "static: opening source for measurement pass", err)
	}

	buf := make([]byte, 32*1024)

	for {
		n, rerr := measureStream.Read(buf)

		if n > 0 {
			arcode.ComputeHistogram(buf[:n], blockFreqs[:])

			for i, c := range blockFreqs {
				counts[i] += uint64(c)
			}
		}

		total += int64(n)

		if rerr == io.EOF {
			break
		}

		if rerr != nil {
			return 0, arcode.WrapError(arcode.Io, "static: reading source for measurement pass", rerr)
		}
	}

	if c, ok := measureStream.(io.Closer); ok {
		c.Close()
	}

	bw := bitio.NewWriter(dst)

	for _, count := range counts {
		writeUint32(bw, uint32(count))
	}

	freqs := make([]uint64, SymbolLimit)
	copy(freqs, counts)
	freqs[EOFSymbol] = 1

	table, err := freq.NewSimple(freqs)

	if err != nil {
		return 0, err
	}

	enc, err := coder.NewEncoderWithStateBits(bw, stateBits)

	if err != nil {
		return 0, err
	}

	encodeStream, err := src.Open()

	if err != nil {
		return 0, arcode.WrapError(arcode.Io, "static: opening source for encode pass", err)
	}

	for {
		n, rerr := encodeStream.Read(buf)

		for i := 0; i < n; i++ {
			if err := enc.Write(table, int(buf[i])); err != nil {
				return 0, err
			}
		}

		if rerr == io.EOF {
			break
		}

		if rerr != nil {
			return 0, arcode.WrapError(arcode.Io, "static: reading source for encode pass", rerr)
		}
	}

	if c, ok := encodeStream.(io.Closer); ok {
		c.Close()
	}

	if err := enc.Write(table, EOFSymbol); err != nil {
		return 0, err
	}

	enc.Finish()

	if err := bw.Close(); err != nil {
		return 0, arcode.WrapError(arcode.Io, "static: flushing output", err)
	}

	return total, nil
}

// Decompress reads a static-format header plus body from src and writes
// the recovered bytes to dst until the EOF symbol is decoded.
func Decompress(src io.Reader, dst io.Writer, stateBits uint) (int64, error) {
	br := bitio.NewReader(src)

	freqs := make([]uint64, SymbolLimit)

	for i := 0; i < 256; i++ {
		v, err := readUint32(br)

		if err != nil {
			return 0, err
		}

		freqs[i] = uint64(v)
	}

	freqs[EOFSymbol] = 1

	table, err := freq.NewSimple(freqs)

	if err != nil {
		return 0, err
	}

	dec, err := coder.NewDecoderWithStateBits(br, stateBits)

	if err != nil {
		return 0, err
	}

	var written int64

	for {
		symbol, err := dec.Read(table)

		if err != nil {
			return written, err
		}

		if symbol == EOFSymbol {
			break
		}

		if _, err := dst.Write([]byte{byte(symbol)}); err != nil {
			return written, arcode.WrapError(arcode.Io, "static: writing decoded output", err)
		}

		written++
	}

	return written, nil
}

// Reopener is the minimal capability static.Compress needs from its
// source: the ability to restart reading from the beginning, since the
// frequency-measurement pass and the encode pass both read the whole
// input. *os.File and bytes.Reader-backed sources typically satisfy this
// via a small adapter; see NewFileReopener.
type Reopener interface {
	Open() (io.Reader, error)
}

func writeUint32(bw arcode.BitWriter, v uint32) {
	for i := 0; i < 32; i++ {
		bw.WriteBit(int((v >> (31 - uint(i))) & 1))
	}
}

func readUint32(br arcode.BitReader) (uint32, error) {
	var v uint32

	for i := 0; i < 32; i++ {
		bit, err := br.ReadBitNoEOF()

		if err != nil {
			return 0, err
		}

		v = (v << 1) | uint32(bit)
	}

	return v, nil
}
