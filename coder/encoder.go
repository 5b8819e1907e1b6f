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

// Encoder encodes symbols under caller-supplied frequency tables into a
// BitWriter, sharing its range-narrowing logic with Decoder via state.
type Encoder struct {
	state            *state
	bw               arcode.BitWriter
	underflowPending uint64
	debug            bool
}

// NewEncoder creates an Encoder over bw using the default state bit
// width (coder.DefaultStateBits).
func NewEncoder(bw arcode.BitWriter) (*Encoder, error) {
	return NewEncoderWithStateBits(bw, DefaultStateBits)
}

// NewEncoderWithStateBits is like NewEncoder but overrides
// num_state_bits.
func NewEncoderWithStateBits(bw arcode.BitWriter, numStateBits uint) (*Encoder, error) {
	if bw == nil {
		return nil, arcode.NewError(arcode.InvalidArgument, "coder: nil bit writer")
	}

	s, err := newState(numStateBits)

	if err != nil {
		return nil, err
	}

	return &Encoder{state: s, bw: bw, debug: true}, nil
}

// MaximumTotal returns the largest Total() this encoder's frequency
// tables may have.
func (this *Encoder) MaximumTotal() uint64 {
	return this.state.MaximumTotal()
}

// Write encodes symbol under freqs, updating range state and writing any
// bits this narrowing produces. In debug mode (the default) freqs is
// wrapped in a Checked table that re-verifies spec.md §3's invariants.
func (this *Encoder) Write(freqs arcode.FrequencyTable, symbol int) error {
	if this.debug {
		freqs = freq.NewChecked(freqs)
	}

	return this.state.update(freqs, symbol, this)
}

// Finish writes a single "1" bit, guaranteeing the decoder's code window
// lands strictly inside the final [low, high] regardless of truncation
// of the stream after this point. It must be called exactly once, before
// the BitWriter is closed.
func (this *Encoder) Finish() {
	this.bw.WriteBit(1)
}

func (this *Encoder) shift() {
	bit := int(this.state.low >> (this.state.numStateBits - 1))
	this.bw.WriteBit(bit)

	for i := uint64(0); i < this.underflowPending; i++ {
		this.bw.WriteBit(bit ^ 1)
	}

	this.underflowPending = 0
}

func (this *Encoder) underflow() {
	this.underflowPending++
}
