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
// Package arcode defines the shared interfaces and error taxonomy used by
// the bitio, freq, coder, ppm, adaptive and static packages: a reference
// arithmetic-coding codec built around a single shared integer range
// state machine.
package arcode

// BitReader reads a big-endian stream of bits from an underlying byte
// source. The total number of bits read is always a multiple of 8; the
// end of stream always falls on a byte boundary.
type BitReader interface {
	// ReadBit returns 0 or 1 if a bit is available, or EOS if the end of
	// the underlying stream has been reached. EOS is returned on every
	// subsequent call once reached; it is never an error by itself.
	ReadBit() int

	// ReadBitNoEOF is like ReadBit but treats EOS as an UnexpectedEof
	// CodecError instead of returning the EOS sentinel.
	ReadBitNoEOF() (int, error)

	// Close releases the underlying stream. Further reads are undefined.
	Close() error
}

// EOS is the sentinel returned by BitReader.ReadBit once the underlying
// byte source is exhausted. It is distinct from the bit values 0 and 1.
const EOS = -1

// BitWriter writes a big-endian stream of bits to an underlying byte
// sink.
type BitWriter interface {
	// WriteBit appends the least significant bit of b (must be 0 or 1)
	// to the stream, flushing a full byte to the sink once 8 bits have
	// accumulated.
	WriteBit(b int)

	// Close pads the current byte with zero bits up to a byte boundary,
	// flushes it, and closes the underlying sink. Callers must call this
	// exactly once, after any trailing Encoder.Finish.
	Close() error
}

// FrequencyTable represents symbols in [0, Limit()) each with a
// non-negative integer frequency, and answers cumulative-frequency
// queries over them. Implementations: Flat (immutable, every symbol
// weight 1), Simple (mutable array with a lazily rebuilt cumulative
// cache), and Checked (a validating wrapper around either).
//
// Invariants that must hold after every mutation:
//
//	Low(0) == 0
//	High(limit-1) == Total()
//	Low and High are monotone non-decreasing in the symbol argument
type FrequencyTable interface {
	// Limit returns the number of symbols, which is at least 1.
	Limit() int

	// Get returns the frequency of the given symbol, a value >= 0.
	Get(symbol int) uint64

	// Total returns the sum of all symbol frequencies.
	Total() uint64

	// Low returns the sum of frequencies of all symbols strictly below
	// the given symbol.
	Low(symbol int) uint64

	// High returns Low(symbol) + Get(symbol).
	High(symbol int) uint64
}

// MutableFrequencyTable is a FrequencyTable whose symbol frequencies can
// be changed after construction.
type MutableFrequencyTable interface {
	FrequencyTable

	// Set assigns the frequency of the given symbol. freq must be >= 0.
	Set(symbol int, freq uint64)

	// Increment adds 1 to the frequency of the given symbol.
	Increment(symbol int)
}
