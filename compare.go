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

package zcbor

import (
	"bytes"
)

// CompareLines renders one row of a buffer comparison: a's hex bytes, b's
// hex bytes, then 0/1 markers where 1 marks a differing position, followed
// by a blank line. Intended for rows of at most 16 bytes.
func (p *Printer) CompareLines(a, b []byte) {
	for _, x := range a {
		p.printf("%x ", x)
	}
	p.newline()
	for _, x := range b {
		p.printf("%x ", x)
	}
	p.newline()
	for j := 0; j < min(len(a), len(b)); j++ {
		marker := 0
		if a[j] != b[j] {
			marker = 1
		}
		p.printf("%x ", marker)
	}
	p.newline()
	p.newline()
}

// CompareStrings renders every 16-byte row of a and b over [0,size), each
// preceded by a row-index/byte-offset header line.
func (p *Printer) CompareStrings(a, b []byte, size int) {
	size = min(size, len(a), len(b))
	for off, row := 0, 0; off < size; off, row = off+bytesPerLine, row+1 {
		n := min(bytesPerLine, size-off)
		p.printf("line %d (char %d)", row, off)
		p.newline()
		p.CompareLines(a[off:off+n], b[off:off+n])
	}
	p.newline()
}

// CompareStringsDiff is CompareStrings restricted to rows whose bytes
// differ. Identical buffers produce no output at all.
func (p *Printer) CompareStringsDiff(a, b []byte, size int) {
	size = min(size, len(a), len(b))
	printed := false
	for off, row := 0, 0; off < size; off, row = off+bytesPerLine, row+1 {
		n := min(bytesPerLine, size-off)
		if bytes.Equal(a[off:off+n], b[off:off+n]) {
			continue
		}
		p.printf("line %d (char %d)", row, off)
		p.newline()
		p.CompareLines(a[off:off+n], b[off:off+n])
		printed = true
	}
	if printed {
		p.newline()
	}
}
