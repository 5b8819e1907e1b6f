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

// Checked wraps another FrequencyTable and verifies, on every Low/High
// call, that 0 <= low <= high <= Total() for the queried symbol, and on
// every Limit call, that the limit is positive, panicking with a
// ContractViolation CodecError the moment a check fails. Get and Total
// are passed through unchecked, and the table-wide invariants
// (Low(0) == 0, High(limit-1) == Total(), High(s) == Low(s+1)) are not
// verified. Used by coder.Encoder and coder.Decoder, whose debug flag is
// always set, and directly by tests exercising a frequency table
// implementation.
type Checked struct {
	inner arcode.FrequencyTable
}

// NewChecked wraps inner. If inner already is a *Checked, it is returned
// unwrapped to avoid double-checking.
func NewChecked(inner arcode.FrequencyTable) *Checked {
	if c, ok := inner.(*Checked); ok {
		return c
	}

	return &Checked{inner: inner}
}

func (this *Checked) Limit() int {
	limit := this.inner.Limit()

	if limit <= 0 {
		arcode.Panic(arcode.ContractViolation, "freq: non-positive symbol limit %d", limit)
	}

	return limit
}

func (this *Checked) Get(symbol int) uint64 {
	f := this.inner.Get(symbol)
	return f
}

func (this *Checked) Total() uint64 {
	return this.inner.Total()
}

func (this *Checked) Low(symbol int) uint64 {
	low := this.inner.Low(symbol)
	high := this.inner.High(symbol)
	this.checkRange(low, high)
	return low
}

func (this *Checked) High(symbol int) uint64 {
	low := this.inner.Low(symbol)
	high := this.inner.High(symbol)
	this.checkRange(low, high)
	return high
}

func (this *Checked) checkRange(low, high uint64) {
	total := this.inner.Total()

	if !(low <= high && high <= total) {
		arcode.Panic(arcode.ContractViolation, "freq: cumulative frequency out of range: low=%d high=%d total=%d", low, high, total)
	}
}

// Set delegates to inner if it is a MutableFrequencyTable, else panics
// with InvalidArgument (the table is immutable, e.g. Flat).
func (this *Checked) Set(symbol int, freqVal uint64) {
	m, ok := this.inner.(arcode.MutableFrequencyTable)

	if !ok {
		arcode.Panic(arcode.InvalidArgument, "freq: Set unsupported on immutable table")
	}

	m.Set(symbol, freqVal)
}

// Increment delegates to inner if it is a MutableFrequencyTable, else
// panics with InvalidArgument.
func (this *Checked) Increment(symbol int) {
	m, ok := this.inner.(arcode.MutableFrequencyTable)

	if !ok {
		arcode.Panic(arcode.InvalidArgument, "freq: Increment unsupported on immutable table")
	}

	m.Increment(symbol)
}
