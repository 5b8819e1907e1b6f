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
package static

import (
	"bytes"
	"io"
	"os"

	"github.com/gocompress/arcode"
)

// FileReopener adapts a file path into a Reopener by opening it fresh
// on every call, matching the reference implementation's two independent
// `open(inputfile, "rb")` calls in get_frequencies and compress.
type FileReopener struct {
	Path string
}

// NewFileReopener builds a Reopener over the file at path.
func NewFileReopener(path string) *FileReopener {
	return &FileReopener{Path: path}
}

func (this *FileReopener) Open() (io.Reader, error) {
	f, err := os.Open(this.Path)

	if err != nil {
		return nil, arcode.WrapError(arcode.Io, "static: opening "+this.Path, err)
	}

	return f, nil
}

// BytesReopener adapts an in-memory buffer into a Reopener: each Open
// call returns a fresh *bytes.Reader over the same backing slice, so the
// "two-pass" contract holds without re-reading from disk.
type BytesReopener struct {
	Data []byte
}

// NewBytesReopener builds a Reopener over data.
func NewBytesReopener(data []byte) *BytesReopener {
	return &BytesReopener{Data: data}
}

func (this *BytesReopener) Open() (io.Reader, error) {
	return bytes.NewReader(this.Data), nil
}
