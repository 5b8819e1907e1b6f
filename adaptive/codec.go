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
// Package adaptive implements the adaptive order-0 front-end (spec.md
// §6): a single mutable FrequencyTable, seeded uniform and incremented
// after every symbol, shared verbatim by encoder and decoder so both
// sides derive the same model from the symbols coded so far. Grounded
// on original_source/python/adaptive-arithmetic-compress.py's compress loop
// ("enc.write(freqs, symbol); freqs.increment(symbol)").
package adaptive

import (
	"io"

	"github.com/gocompress/arcode"
	"github.com/gocompress/arcode/bitio"
	"github.com/gocompress/arcode/coder"
	"github.com/gocompress/arcode/freq"
)

// SymbolLimit is the adaptive front-end's alphabet size: 256 byte values
// plus one reserved end-of-stream symbol.
const SymbolLimit = 257

// EOFSymbol is the reserved end-of-stream marker.
const EOFSymbol = 256

// Compress arithmetic-codes every byte of src to dst under a uniform
// table that is incremented after each symbol, then writes the EOF
// symbol and flushes.
func Compress(src io.Reader, dst io.Writer, stateBits uint) (int64, error) {
	seed, err := freq.NewFlat(SymbolLimit)

	if err != nil {
		return 0, err
	}

	table, err := freq.NewSimpleFromTable(seed)

	if err != nil {
		return 0, err
	}

	bw := bitio.NewWriter(dst)
	enc, err := coder.NewEncoderWithStateBits(bw, stateBits)

	if err != nil {
		return 0, err
	}

	var total int64
	buf := make([]byte, 32*1024)

	for {
		n, rerr := src.Read(buf)

		for i := 0; i < n; i++ {
			symbol := int(buf[i])

			if err := enc.Write(table, symbol); err != nil {
				return total, err
			}

			table.Increment(symbol)
		}

		total += int64(n)

		if rerr == io.EOF {
			break
		}

		if rerr != nil {
			return total, arcode.WrapError(arcode.Io, "adaptive: reading source", rerr)
		}
	}

	if err := enc.Write(table, EOFSymbol); err != nil {
		return total, err
	}

	enc.Finish()

	if err := bw.Close(); err != nil {
		return total, arcode.WrapError(arcode.Io, "adaptive: flushing output", err)
	}

	return total, nil
}

// Decompress recovers bytes from src (a stream written by Compress with
// the same stateBits) and writes them to dst until the EOF symbol is
// decoded.
func Decompress(src io.Reader, dst io.Writer, stateBits uint) (int64, error) {
	seed, err := freq.NewFlat(SymbolLimit)

	if err != nil {
		return 0, err
	}

	table, err := freq.NewSimpleFromTable(seed)

	if err != nil {
		return 0, err
	}

	br := bitio.NewReader(src)
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
			return written, arcode.WrapError(arcode.Io, "adaptive: writing decoded output", err)
		}

		table.Increment(symbol)
		written++
	}

	return written, nil
}
