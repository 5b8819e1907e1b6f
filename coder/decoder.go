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
package coder

import (
	"github.com/gocompress/arcode"
	"github.com/gocompress/arcode/freq"
)

// Decoder recovers symbols from a BitReader written by an Encoder over
// the same sequence of frequency tables.
type Decoder struct {
	state *state
	br    arcode.BitReader
	code  uint64
	debug bool
}

// NewDecoder creates a Decoder over br using the default state bit
// width (coder.DefaultStateBits). The first numStateBits bits of br are
// consumed immediately to prime the code window.
func NewDecoder(br arcode.BitReader) (*Decoder, error) {
	return NewDecoderWithStateBits(br, DefaultStateBits)
}

// NewDecoderWithStateBits is like NewDecoder but overrides
// num_state_bits. It must match the value the Encoder used.
func NewDecoderWithStateBits(br arcode.BitReader, numStateBits uint) (*Decoder, error) {
	if br == nil {
		return nil, arcode.NewError(arcode.InvalidArgument, "coder: nil bit reader")
	}

	s, err := newState(numStateBits)

	if err != nil {
		return nil, err
	}

	this := &Decoder{state: s, br: br, debug: true}

	for i := uint(0); i < numStateBits; i++ {
		this.code = (this.code << 1) | uint64(this.readCodeBit())
	}

	return this, nil
}

// Read recovers the symbol whose [Low,High) interval under freqs
// contains the current scaled code value, then narrows range state the
// same way Encoder.Write did when it encoded the symbol.
func (this *Decoder) Read(freqs arcode.FrequencyTable) (int, error) {
	if this.debug {
		freqs = freq.NewChecked(freqs)
	}

	total := freqs.Total()

	if total > this.state.maximumTotal {
		return 0, arcode.NewError(arcode.TotalTooLarge, "coder: frequency table total exceeds maximum")
	}

	rng := this.state.high - this.state.low + 1
	offset := this.code - this.state.low
	value := ((offset + 1) * total - 1) / rng

	if value >= total {
		arcode.Panic(arcode.ContractViolation, "coder: scaled value out of range")
	}

	symbol := this.findSymbol(freqs, value)

	if err := this.state.update(freqs, symbol, this); err != nil {
		return 0, err
	}

	if this.code < this.state.low || this.code > this.state.high {
		arcode.Panic(arcode.ContractViolation, "coder: code fell outside [low,high] after update")
	}

	return symbol, nil
}

// findSymbol binary-searches for the symbol whose [Low,High) interval
// contains value, per spec.md §4.D's decode step.
func (this *Decoder) findSymbol(freqs arcode.FrequencyTable, value uint64) int {
	lo, hi := 0, freqs.Limit()

	for lo+1 < hi {
		mid := (lo + hi) >> 1

		if freqs.Low(mid) > value {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo
}

func (this *Decoder) shift() {
	this.code = ((this.code << 1) & this.state.stateMask) | uint64(this.readCodeBit())
}

func (this *Decoder) underflow() {
	bit := this.readCodeBit()
	this.code = (this.code & this.state.halfRange) | ((this.code << 1) & (this.state.stateMask >> 1)) | uint64(bit)
}

// readCodeBit reads one bit from the underlying stream, substituting 0
// once the stream is exhausted (EOS) rather than erroring: the trailing
// "1" bit written by Encoder.Finish plus the fixed window width make the
// exact tail length unnecessary for correct decoding, matching the
// teacher source's read_code_bit.
func (this *Decoder) readCodeBit() int {
	bit := this.br.ReadBit()

	if bit == arcode.EOS {
		return 0
	}

	return bit
}
