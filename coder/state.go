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
// Package coder implements the shared arithmetic-coding state machine
// (components C and D): the integer range-narrowing update() with its
// E1/E2/E3 renormalization, and the Encoder/Decoder concretes built on
// top of it. Ported from the teacher source's
// original_source/python/arithmeticcoding.py (ArithmeticCoderBase /
// ArithmeticEncoder / ArithmeticDecoder), restyled after kanzi-go's
// entropy codec pairs (RangeCodec.go, FPAQCodec.go).
package coder

import "github.com/gocompress/arcode"

// DefaultStateBits is the default num_state_bits used when a caller
// doesn't override it (spec.md §6, "num_state_bits: ... default 32").
const DefaultStateBits = 32

// renormalizer is implemented by Encoder and Decoder: the two points
// where update() defers to concrete behavior.
type renormalizer interface {
	shift()
	underflow()
}

// state holds the configuration and mutable low/high range shared by
// Encoder and Decoder, per spec.md §3.
type state struct {
	numStateBits uint
	fullRange    uint64
	halfRange    uint64
	quarterRange uint64
	minimumRange uint64
	maximumTotal uint64
	stateMask    uint64

	low  uint64
	high uint64
}

func newState(numStateBits uint) (*state, error) {
	if numStateBits < 1 || numStateBits > 32 {
		return nil, arcode.NewError(arcode.InvalidArgument,
			"coder: num_state_bits must be in [1,32] for 64-bit multiply-based arithmetic")
	}

	fullRange := uint64(1) << numStateBits
	s := &state{
		numStateBits: numStateBits,
		fullRange:    fullRange,
		halfRange:    fullRange >> 1,
		quarterRange: fullRange >> 2,
		stateMask:    fullRange - 1,
	}
	s.minimumRange = s.quarterRange + 2
	s.maximumTotal = s.minimumRange
	s.low = 0
	s.high = s.stateMask
	return s, nil
}

// MaximumTotal returns the largest FrequencyTable.Total() this state can
// code against without violating the minimum-range invariant.
func (this *state) MaximumTotal() uint64 {
	return this.maximumTotal
}

// update narrows [low, high] to the subinterval assigned to symbol by
// freqs, calling r.shift()/r.underflow() at each renormalization step. It
// implements spec.md §4.C verbatim.
func (this *state) update(freqs arcode.FrequencyTable, symbol int, r renormalizer) error {
	low := this.low
	high := this.high

	if low >= high || (low&this.stateMask) != low || (high&this.stateMask) != high {
		arcode.Panic(arcode.ContractViolation, "coder: low/high out of range")
	}

	rng := high - low + 1

	if rng < this.minimumRange || rng > this.fullRange {
		arcode.Panic(arcode.ContractViolation, "coder: range out of range")
	}

	total := freqs.Total()

	if total > this.maximumTotal {
		return arcode.NewError(arcode.TotalTooLarge, "coder: frequency table total exceeds maximum")
	}

	symLow := freqs.Low(symbol)
	symHigh := freqs.High(symbol)

	if symLow == symHigh {
		return arcode.NewError(arcode.InvalidSymbol, "coder: symbol has zero frequency")
	}

	newLow := low + symLow*rng/total
	newHigh := low + symHigh*rng/total - 1
	this.low = newLow
	this.high = newHigh

	// E1/E2: shared top bit.
	for ((this.low ^ this.high) & this.halfRange) == 0 {
		r.shift()
		this.low = (this.low << 1) & this.stateMask
		this.high = ((this.high << 1) & this.stateMask) | 1
	}

	// E3: underflow straddle.
	for (this.low &^ this.high & this.quarterRange) != 0 {
		r.underflow()
		this.low = (this.low << 1) & (this.stateMask >> 1)
		this.high = ((this.high<<1)&(this.stateMask>>1) | this.halfRange | 1)
	}

	return nil
}
