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
// Package freq implements the FrequencyTable abstraction (component B):
// Flat, Simple and Checked tables, ported from the teacher's reference
// source (original_source/python/arithmeticcoding.py's FlatFrequencyTable
// / SimpleFrequencyTable / CheckedFrequencyTable) into kanzi-go's
// constructor-returns-(*T,error) idiom.
package freq

import "github.com/gocompress/arcode"

// Flat is an immutable FrequencyTable where every symbol has frequency 1.
// Useful as a fallback model when no statistics are available (the PPM
// order -1 context uses one).
type Flat struct {
	limit int
}

// NewFlat creates a Flat table over numSymbols symbols, numSymbols >= 1.
func NewFlat(numSymbols int) (*Flat, error) {
	if numSymbols < 1 {
		return nil, arcode.NewError(arcode.InvalidArgument, "freq: number of symbols must be positive")
	}

	return &Flat{limit: numSymbols}, nil
}

func (this *Flat) Limit() int { return this.limit }

func (this *Flat) checkSymbol(symbol int) {
	if symbol < 0 || symbol >= this.limit {
		arcode.Panic(arcode.InvalidArgument, "freq: symbol %d out of range [0,%d)", symbol, this.limit)
	}
}

func (this *Flat) Get(symbol int) uint64 {
	this.checkSymbol(symbol)
	return 1
}

func (this *Flat) Total() uint64 { return uint64(this.limit) }

func (this *Flat) Low(symbol int) uint64 {
	this.checkSymbol(symbol)
	return uint64(symbol)
}

func (this *Flat) High(symbol int) uint64 {
	this.checkSymbol(symbol)
	return uint64(symbol + 1)
}
