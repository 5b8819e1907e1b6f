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
package freq

import "github.com/gocompress/arcode"

// Simple is a mutable FrequencyTable backed by a plain frequency array.
// The number of symbols is fixed at construction. Cumulative queries
// (Low/High) are served from a prefix-sum cache that Increment/Set mark
// stale; the cache is rebuilt lazily, in full, on the next cumulative
// query — O(1) increments amortize to O(limit) per encode/decode call,
// per spec.md §4.B. A Fenwick tree would avoid the O(limit) rebuild but
// isn't needed at this module's sizes (limit <= 257).
type Simple struct {
	frequencies []uint64
	total       uint64
	cumul       []uint64 // nil when stale
}

// NewSimple builds a Simple table from an initial slice of frequencies,
// one entry per symbol, at least one symbol, none negative (frequencies
// here are unsigned, so "negative" reduces to "none" — callers pass
// uint64 frequencies directly).
func NewSimple(freqs []uint64) (*Simple, error) {
	if len(freqs) < 1 {
		return nil, arcode.NewError(arcode.InvalidArgument, "freq: at least one symbol needed")
	}

	this := &Simple{frequencies: append([]uint64(nil), freqs...)}

	for _, f := range this.frequencies {
		this.total += f
	}

	return this, nil
}

// NewSimpleFromTable copies an existing FrequencyTable into a new,
// independently mutable Simple table.
func NewSimpleFromTable(src arcode.FrequencyTable) (*Simple, error) {
	limit := src.Limit()
	freqs := make([]uint64, limit)

	for i := 0; i < limit; i++ {
		freqs[i] = src.Get(i)
	}

	return NewSimple(freqs)
}

func (this *Simple) Limit() int { return len(this.frequencies) }

func (this *Simple) checkSymbol(symbol int) {
	if symbol < 0 || symbol >= len(this.frequencies) {
		arcode.Panic(arcode.InvalidArgument, "freq: symbol %d out of range [0,%d)", symbol, len(this.frequencies))
	}
}

func (this *Simple) Get(symbol int) uint64 {
	this.checkSymbol(symbol)
	return this.frequencies[symbol]
}

func (this *Simple) Total() uint64 { return this.total }

// Set assigns the frequency of the given symbol, invalidating the
// cumulative cache.
func (this *Simple) Set(symbol int, freqVal uint64) {
	this.checkSymbol(symbol)
	this.total = this.total - this.frequencies[symbol] + freqVal
	this.frequencies[symbol] = freqVal
	this.cumul = nil
}

// Increment adds 1 to the frequency of the given symbol in O(1),
// invalidating the cumulative cache.
func (this *Simple) Increment(symbol int) {
	this.checkSymbol(symbol)
	this.total++
	this.frequencies[symbol]++
	this.cumul = nil
}

func (this *Simple) Low(symbol int) uint64 {
	this.checkSymbol(symbol)
	this.ensureCumulative()
	return this.cumul[symbol]
}

func (this *Simple) High(symbol int) uint64 {
	this.checkSymbol(symbol)
	this.ensureCumulative()
	return this.cumul[symbol+1]
}

func (this *Simple) ensureCumulative() {
	if this.cumul != nil {
		return
	}

	cumul := make([]uint64, len(this.frequencies)+1)
	var sum uint64

	for i, f := range this.frequencies {
		sum += f
		cumul[i+1] = sum
	}

	this.cumul = cumul
}
