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
package ppm

import "github.com/gocompress/arcode/coder"

// History is the fixed-size FIFO window of recently coded symbols that
// Encoder and Decoder feed to Model.IncrementContexts, per spec.md
// §4.D's "history window" invariant: len(history) never exceeds
// model.Order.
type History struct {
	order int
	buf   []int
}

func newHistory(order int) *History {
	if order < 1 {
		return &History{order: order}
	}

	return &History{order: order, buf: make([]int, 0, order)}
}

func (this *History) push(symbol int) {
	if this.order < 1 {
		return
	}

	if len(this.buf) == this.order {
		copy(this.buf, this.buf[1:])
		this.buf = this.buf[:len(this.buf)-1]
	}

	this.buf = append(this.buf, symbol)
}

// Encoder drives a coder.Encoder under a Model's context trie, escaping
// down through orders until a context with a nonzero frequency for the
// symbol is found (or falling back to the order -1 flat table).
type Encoder struct {
	model   *Model
	enc     *coder.Encoder
	history *History
}

// NewEncoder builds a ppm.Encoder writing through enc under model.
func NewEncoder(model *Model, enc *coder.Encoder) *Encoder {
	return &Encoder{model: model, enc: enc, history: newHistory(model.Order)}
}

// EncodeSymbol encodes symbol (which may be model.EscapeSymbol acting as
// an end-of-stream marker) and then folds it into the context trie via
// IncrementContexts, advancing the history window.
func (this *Encoder) EncodeSymbol(symbol int) error {
	if err := this.encodeSymbol(symbol); err != nil {
		return err
	}

	if err := this.model.IncrementContexts(this.history.buf, symbol); err != nil {
		return err
	}

	if this.model.Order >= 1 {
		this.history.push(symbol)
	}

	return nil
}

// Finish writes the trailing escape sentinel (the EOF symbol, by
// convention the same value as model.EscapeSymbol) and flushes the
// underlying arithmetic coder.
func (this *Encoder) Finish(eofSymbol int) error {
	if err := this.encodeSymbol(eofSymbol); err != nil {
		return err
	}

	this.enc.Finish()
	return nil
}

func (this *Encoder) encodeSymbol(symbol int) error {
	if this.model.Order == -1 {
		return this.enc.Write(this.model.OrderMinus1, symbol)
	}

	history := this.history.buf

	for order := len(history); order >= 0; order-- {
		ctx := this.model.RootContext
		ok := true

		for _, sym := range history[len(history)-order:] {
			if ctx.Subcontexts == nil || ctx.Subcontexts[sym] == nil {
				ok = false
				break
			}

			ctx = ctx.Subcontexts[sym]
		}

		if !ok {
			continue
		}

		if symbol != this.model.EscapeSymbol && ctx.Frequencies.Get(symbol) > 0 {
			return this.enc.Write(ctx.Frequencies, symbol)
		}

		if err := this.enc.Write(ctx.Frequencies, this.model.EscapeSymbol); err != nil {
			return err
		}
	}

	return this.enc.Write(this.model.OrderMinus1, symbol)
}

// Decoder mirrors Encoder: it walks the same escape protocol, reading
// from a coder.Decoder, until it recovers a non-escape symbol (or the
// order -1 table's symbol, which may legitimately be the EOF marker).
type Decoder struct {
	model   *Model
	dec     *coder.Decoder
	history *History
}

// NewDecoder builds a ppm.Decoder reading through dec under model.
func NewDecoder(model *Model, dec *coder.Decoder) *Decoder {
	return &Decoder{model: model, dec: dec, history: newHistory(model.Order)}
}

// DecodeSymbol recovers the next symbol (which may be EOFSymbol) and
// folds it into the context trie the same way EncodeSymbol did when it
// was written.
func (this *Decoder) DecodeSymbol() (int, error) {
	symbol, err := this.decodeSymbol()

	if err != nil {
		return 0, err
	}

	if err := this.model.IncrementContexts(this.history.buf, symbol); err != nil {
		return 0, err
	}

	if this.model.Order >= 1 {
		this.history.push(symbol)
	}

	return symbol, nil
}

func (this *Decoder) decodeSymbol() (int, error) {
	if this.model.Order == -1 {
		return this.dec.Read(this.model.OrderMinus1)
	}

	history := this.history.buf

	for order := len(history); order >= 0; order-- {
		ctx := this.model.RootContext
		ok := true

		for _, sym := range history[len(history)-order:] {
			if ctx.Subcontexts == nil || ctx.Subcontexts[sym] == nil {
				ok = false
				break
			}

			ctx = ctx.Subcontexts[sym]
		}

		if !ok {
			continue
		}

		symbol, err := this.dec.Read(ctx.Frequencies)

		if err != nil {
			return 0, err
		}

		if symbol != this.model.EscapeSymbol {
			return symbol, nil
		}

		// Escape: fall through to the next lower order.
	}

	symbol, err := this.dec.Read(this.model.OrderMinus1)

	if err != nil {
		return 0, err
	}

	return symbol, nil
}
