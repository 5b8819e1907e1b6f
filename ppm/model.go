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
// Package ppm implements prediction by partial matching (component E):
// a context trie of FrequencyTables over a bounded history window, with
// escape-symbol fallback down to an order -1 flat table. Ported from the
// teacher source's original_source/python/ppmmodel.py, restyled after
// kanzi-go's model/context types (constructors validating arguments,
// `this` receivers).
package ppm

import (
	"github.com/gocompress/arcode"
	"github.com/gocompress/arcode/freq"
)

// SymbolLimit is the byte-oriented PPM alphabet size used by the
// ppm-compress/ppm-decompress commands: 256 byte values plus one
// reserved end-of-stream symbol.
const SymbolLimit = 257

// EOFSymbol is the reserved end-of-stream marker, reused as the escape
// symbol: every trie context starts with frequency 1 for it (its escape
// count), and the encoder always codes it as an escape in each trie
// context, so it reaches the order -1 table, where it decodes as EOF.
const EOFSymbol = 256

// EscapeSymbol is an alias for EOFSymbol: the teacher source models
// "escape to the next lower order" and "end of stream" with the same
// reserved symbol value.
const EscapeSymbol = EOFSymbol

// Context is one node of the PPM trie: a frequency table over every
// symbol observed after this node's history suffix, plus (for orders
// below model_order) one child slot per symbol for the next-longer
// suffix.
type Context struct {
	Frequencies *freq.Simple
	Subcontexts []*Context // nil when this node is at the maximum order
}

func newContext(symbolLimit int, hasSubcontexts bool) (*Context, error) {
	freqs, err := freq.NewSimple(make([]uint64, symbolLimit))

	if err != nil {
		return nil, err
	}

	c := &Context{Frequencies: freqs}

	if hasSubcontexts {
		c.Subcontexts = make([]*Context, symbolLimit)
	}

	return c, nil
}

// Model holds the PPM trie and the order -1 fallback table shared by an
// encoder and a decoder working over the same input.
type Model struct {
	Order        int
	SymbolLimit  int
	EscapeSymbol int
	RootContext  *Context // nil when Order == -1
	OrderMinus1  *freq.Flat
}

// NewModel builds a fresh Model. order must be >= -1 (order -1 means "no
// context modeling, flat distribution over every symbol"). escapeSymbol
// must be a valid symbol below symbolLimit; by convention it is the
// highest symbol value. The ppm commands pass EscapeSymbol, which is the
// same value (256) as EOFSymbol, matching the reference implementation.
func NewModel(order, symbolLimit, escapeSymbol int) (*Model, error) {
	if order < -1 {
		return nil, arcode.NewError(arcode.InvalidArgument, "ppm: order must be >= -1")
	}

	if symbolLimit <= 0 {
		return nil, arcode.NewError(arcode.InvalidArgument, "ppm: symbol limit must be positive")
	}

	if escapeSymbol < 0 || escapeSymbol >= symbolLimit {
		return nil, arcode.NewError(arcode.InvalidArgument, "ppm: escape symbol out of range")
	}

	orderMinus1, err := freq.NewFlat(symbolLimit)

	if err != nil {
		return nil, err
	}

	this := &Model{
		Order:        order,
		SymbolLimit:  symbolLimit,
		EscapeSymbol: escapeSymbol,
		OrderMinus1:  orderMinus1,
	}

	if order >= 0 {
		root, err := newContext(symbolLimit, order >= 1)

		if err != nil {
			return nil, err
		}

		root.Frequencies.Increment(escapeSymbol)
		this.RootContext = root
	}

	return this, nil
}

// IncrementContexts updates every order-k context (0 <= k <= len(history))
// whose suffix matches the tail of history, walking from the root once
// per order rather than caching partial descents from a single deepest
// walk. This is the resolved form of the reference implementation's
// increment_contexts: both strategies visit the same set of contexts,
// but walking from root per order keeps each context lookup independent
// of the others, which is what the reference does and what this port
// preserves.
func (this *Model) IncrementContexts(history []int, symbol int) error {
	if this.Order == -1 {
		return nil
	}

	if len(history) > this.Order {
		return arcode.NewError(arcode.InvalidArgument, "ppm: history longer than model order")
	}

	if symbol < 0 || symbol >= this.SymbolLimit {
		return arcode.NewError(arcode.InvalidArgument, "ppm: symbol out of range")
	}

	for order := 0; order <= len(history); order++ {
		ctx := this.RootContext
		depth := 0

		for _, sym := range history[len(history)-order:] {
			if ctx.Subcontexts == nil {
				arcode.Panic(arcode.ContractViolation, "ppm: context missing subcontexts slice at depth %d", depth)
			}

			if ctx.Subcontexts[sym] == nil {
				child, err := newContext(this.SymbolLimit, depth+1 < this.Order)

				if err != nil {
					return err
				}

				child.Frequencies.Increment(this.EscapeSymbol)
				ctx.Subcontexts[sym] = child
			}

			ctx = ctx.Subcontexts[sym]
			depth++
		}

		ctx.Frequencies.Increment(symbol)
	}

	return nil
}
