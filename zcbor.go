// Copyright 2024 Oyvind Ronningstad
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zcbor renders decoded CBOR as indented, human-readable text for
// debugging and test-failure investigation.
//
// The core is a recursive element walker: given one decoded element it
// prints the element's header bytes, a decoded description, and its full
// subtree, handling definite- and indefinite-length containers, tag chains,
// and speculative re-interpretation of byte-string payloads as nested
// messages. The package also provides line-by-line hex comparison of raw
// buffers and a name for every decoder error code.
//
// Rendering never fails: decode errors encountered mid-traversal are printed
// and the affected subtree is abandoned. A Printer holds per-line state and
// supports one traversal at a time; separate Printers are independent.
package zcbor

import (
	"bytes"
	"fmt"
	"io"
)

// Dump decodes the first element of data and renders its full subtree to w.
// A failed decode renders the error code and also returns it as an error for
// callers that want to act on it.
func Dump(w io.Writer, data []byte, opts ...PrinterOptionFunc) error {
	p := NewPrinter(w, opts...)
	rd := NewReader(data)
	elem, ok := rd.NextElement()
	if !ok {
		p.PrintError(rd.LastError())
		return fmt.Errorf("decode element: %s", rd.LastError())
	}
	p.Print(elem)
	return nil
}

// DumpString renders the first element of data into a string.
func DumpString(data []byte, opts ...PrinterOptionFunc) string {
	var buf bytes.Buffer
	_ = Dump(&buf, data, opts...)
	return buf.String()
}
