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
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	bytesPerLine = 16

	// Matches the decoder's default nesting limit
	defaultMaxDepth = 256
)

// Printer renders decoded elements as indented human-readable text. It owns
// the per-line indent state, so a single Printer supports one traversal at
// a time; independent Printers do not share state.
type Printer struct {
	w           io.Writer
	style       *Style
	innerDecode bool
	maxDepth    int
	// set once the indent has been emitted for the current line
	indentPrinted bool
}

// NewPrinter returns a Printer writing to w, using the plain style unless
// overridden by options.
func NewPrinter(w io.Writer, opts ...PrinterOptionFunc) *Printer {
	p := &Printer{
		w:           w,
		style:       PlainStyle(),
		innerDecode: true,
		maxDepth:    defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders elem and its full subtree at indent level 0. Decode failures
// inside the subtree are rendered as text and never propagated.
func (p *Printer) Print(elem *Element) {
	p.print(elem, 0)
}

// PrintError renders one line naming the given error code.
func (p *Printer) PrintError(code ErrorCode) {
	p.printf("%s", code)
	p.newline()
}

func (p *Printer) print(elem *Element, indentLen int) {
	if indentLen >= p.maxDepth {
		p.indent(indentLen)
		p.printf("nesting too deep")
		p.newline()
		return
	}
	rd := NewReader(elem.Raw)
	for {
		tag, ok := rd.DecodeTag()
		if !ok {
			break
		}
		p.printTag(tag, indentLen)
	}
	p.printValue(elem, indentLen)

	switch elem.Type {
	case MajorTypeBytes:
		p.printBytesPayload(elem, indentLen+1)
	case MajorTypeText:
		p.printTextPayload(elem, indentLen+1)
	case MajorTypeList, MajorTypeMap:
		p.printChildren(elem, indentLen)
	}
}

// printValue renders the header byte, any extended header bytes as hex, and
// the parenthesized decoded description.
func (p *Printer) printValue(e *Element, indentLen int) {
	p.indent(indentLen)
	hdr := e.Header()
	p.printf("%s", p.style.Header("0x%02x ", hdr[0]))
	if len(hdr) > 1 {
		var sb strings.Builder
		sb.WriteString("0x")
		for _, b := range hdr[1:] {
			fmt.Fprintf(&sb, "%02x ", b)
		}
		p.printf("%s", p.style.Value("%s", sb.String()))
	}
	p.printf("%s", p.style.Desc("(%s)", describe(e)))
	p.newline()
}

func (p *Printer) printTag(tag uint64, indentLen int) {
	p.indent(indentLen)
	p.printf("%s", p.style.Tag("0x%02x ", tag))
}

// printBytesPayload hex-dumps a byte-string payload, then speculatively
// re-decodes it as a nested element. The nested rendering is committed only
// when a single decode consumes the payload exactly to its end; the decode
// runs on a disposable Reader so the outer traversal is never disturbed.
func (p *Printer) printBytesPayload(e *Element, indentLen int) {
	if e.Indefinite {
		return
	}
	payload := e.Payload()
	if len(payload) == 0 {
		return
	}
	p.printStr(payload, indentLen)
	p.newline()
	if !p.innerDecode {
		return
	}
	sub := NewReader(payload)
	if inner, ok := sub.NextElement(); ok && sub.Position() == len(payload) {
		p.print(inner, indentLen)
	}
}

// printTextPayload renders the payload as one quoted literal. Embedded line
// breaks re-emit the indent so the literal stays visually aligned.
func (p *Printer) printTextPayload(e *Element, indentLen int) {
	payload := e.Payload()[:e.Value]
	p.indent(indentLen)
	p.printf("\"")
	start := 0
	for i := 0; i < len(payload); i++ {
		if payload[i] == '\n' {
			p.printf("%s", payload[start:i])
			start = i + 1
			p.newline()
			p.indent(indentLen)
		}
	}
	p.printf("%s\"", payload[start:])
	p.newline()
}

// printChildren walks the children of a list or map element. The walk stops
// at the first decode failure, distinguishing clean exhaustion from a hard
// error; only a cleanly exhausted indefinite-length container gets the
// explicit end marker.
func (p *Printer) printChildren(e *Element, indentLen int) {
	rd := e.Children()
	for rd.Remaining() > 0 {
		child, ok := rd.NextElement()
		if !ok {
			if rd.AtEnd() {
				p.printf("End of array.")
			} else {
				p.printf("Could not print (%s)", rd.LastError())
			}
			p.newline()
			break
		}
		p.print(child, indentLen+1)
	}
	if e.Indefinite && rd.AtEnd() {
		p.printEnd(e.Type, indentLen)
	}
}

func (p *Printer) printEnd(majorType MajorType, indentLen int) {
	p.indent(indentLen)
	p.printf("%s", p.style.Header("0x%02x ", cborBreak))
	p.printf("%s", p.style.Desc("(%s end)", majorType))
	p.newline()
}

// printStr hex-dumps data 16 bytes per line, each line prefixed with "0x"
// and indented.
func (p *Printer) printStr(data []byte, indentLen int) {
	for i, b := range data {
		if i%bytesPerLine == 0 {
			if i > 0 {
				p.newline()
			}
			p.indent(indentLen)
			p.printf("0x")
		}
		p.printf("%02x ", b)
	}
}

// indent emits the indent marker for the current line. Idempotent within a
// line: only the first call after a newline emits anything.
func (p *Printer) indent(indentLen int) {
	if p.indentPrinted {
		return
	}
	for i := 0; i < indentLen; i++ {
		io.WriteString(p.w, p.style.Indent)
	}
	p.indentPrinted = true
}

func (p *Printer) newline() {
	io.WriteString(p.w, "\n")
	p.indentPrinted = false
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func describe(e *Element) string {
	switch e.Type {
	case MajorTypeUint:
		return strconv.FormatUint(e.Value, 10)
	case MajorTypeNint:
		return strconv.FormatInt(e.NegValue, 10)
	case MajorTypeBytes, MajorTypeText, MajorTypeList, MajorTypeMap:
		if e.Indefinite {
			return e.Type.String()
		}
		return fmt.Sprintf("%s<%d>", e.Type, e.Value)
	case MajorTypeSimple:
		return describeSimple(e)
	default:
		return e.Type.String()
	}
}

func describeSimple(e *Element) string {
	switch e.Special {
	case SpecialFalse:
		return "false"
	case SpecialTrue:
		return "true"
	case SpecialNil:
		return "nil"
	case SpecialUndefined:
		return "undefined"
	case SpecialSimple:
		return fmt.Sprintf("simple<%d>", e.Value)
	default:
		return strconv.FormatFloat(e.Float, 'f', 6, 64)
	}
}
