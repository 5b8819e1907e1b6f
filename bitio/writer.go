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
package bitio

import (
	"io"

	"github.com/gocompress/arcode"
)

// Writer is the default implementation of arcode.BitWriter.
type Writer struct {
	dst      io.Writer
	closed   bool
	current  byte // accumulator for the in-progress byte
	fillBits uint // number of bits already accumulated, 0..7
	writeBuf [1]byte
}

// NewWriter creates a BitWriter writing to dst.
func NewWriter(dst io.Writer) *Writer {
	if dst == nil {
		arcode.Panic(arcode.InvalidArgument, "bitio: nil writer")
	}

	return &Writer{dst: dst}
}

// WriteBit appends the least significant bit of b to the stream.
func (this *Writer) WriteBit(b int) {
	if this.closed {
		arcode.Panic(arcode.ContractViolation, "bitio: write to closed writer")
	}

	this.current = (this.current << 1) | byte(b&1)
	this.fillBits++

	if this.fillBits == 8 {
		this.flushByte()
	}
}

func (this *Writer) flushByte() {
	this.writeBuf[0] = this.current

	if _, err := this.dst.Write(this.writeBuf[:]); err != nil {
		panic(arcode.WrapError(arcode.Io, "bitio: write failed", err))
	}

	this.current = 0
	this.fillBits = 0
}

// Close pads the current byte with zero bits up to a byte boundary,
// flushes it, and closes dst if it is an io.Closer. Must be called
// exactly once.
func (this *Writer) Close() error {
	if this.closed {
		return nil
	}

	for this.fillBits != 0 {
		this.WriteBit(0)
	}

	this.closed = true

	if c, ok := this.dst.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
