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
// Package bitio implements the big-endian BitReader/BitWriter boundary
// (component A of the codec design): a one-byte latch plus a 0..7
// residual-bit counter over an underlying io.Reader/io.Writer, styled
// after the teacher's bitstream.DefaultInputBitStream /
// DefaultOutputBitStream but simplified to the single-bit-at-a-time
// contract this codec's Encoder/Decoder core depends on.
package bitio

import (
	"io"

	"github.com/gocompress/arcode"
)

// Reader is the default implementation of arcode.BitReader.
type Reader struct {
	src      io.Reader
	closed   bool
	eof      bool
	current  byte // one-byte latch
	remBits  uint // number of unread bits left in current, 0..7
	readBuf  [1]byte
}

// NewReader creates a BitReader reading from src.
func NewReader(src io.Reader) *Reader {
	if src == nil {
		arcode.Panic(arcode.InvalidArgument, "bitio: nil reader")
	}

	return &Reader{src: src}
}

// ReadBit returns the next bit (0 or 1), or arcode.EOS once the
// underlying source is exhausted. Once EOS is reached it is returned on
// every subsequent call, never blocking again on the underlying reader.
func (this *Reader) ReadBit() int {
	if this.closed {
		arcode.Panic(arcode.ContractViolation, "bitio: read from closed reader")
	}

	if this.eof {
		return arcode.EOS
	}

	if this.remBits == 0 {
		n, err := this.src.Read(this.readBuf[:])

		if n == 0 {
			if err != nil && err != io.EOF {
				panic(arcode.WrapError(arcode.Io, "bitio: read failed", err))
			}

			this.eof = true
			return arcode.EOS
		}

		this.current = this.readBuf[0]
		this.remBits = 8
	}

	this.remBits--
	return int(this.current>>this.remBits) & 1
}

// ReadBitNoEOF is like ReadBit but surfaces end-of-stream as an
// UnexpectedEof CodecError instead of the EOS sentinel.
func (this *Reader) ReadBitNoEOF() (int, error) {
	bit := this.ReadBit()

	if bit == arcode.EOS {
		return 0, arcode.NewError(arcode.UnexpectedEof, "bitio: unexpected end of stream")
	}

	return bit, nil
}

// Close marks the reader unusable for further reads. If the underlying
// source is an io.Closer, it is closed too.
func (this *Reader) Close() error {
	if this.closed {
		return nil
	}

	this.closed = true

	if c, ok := this.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
