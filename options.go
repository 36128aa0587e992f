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

type PrinterOptionFunc func(*Printer)

// WithStyle sets the render style.
func WithStyle(style *Style) PrinterOptionFunc {
	return func(p *Printer) {
		p.style = style
	}
}

// WithPretty selects the color-coded pretty style when true, the plain style
// when false.
func WithPretty(pretty bool) PrinterOptionFunc {
	return func(p *Printer) {
		if pretty {
			p.style = PrettyStyle()
		} else {
			p.style = PlainStyle()
		}
	}
}

// WithInnerDecode enables or disables the speculative re-interpretation of
// byte-string payloads as nested CBOR (enabled by default).
func WithInnerDecode(innerDecode bool) PrinterOptionFunc {
	return func(p *Printer) {
		p.innerDecode = innerDecode
	}
}

// WithMaxDepth sets the nesting depth at which rendering reports
// "nesting too deep" instead of descending further.
func WithMaxDepth(maxDepth int) PrinterOptionFunc {
	return func(p *Printer) {
		p.maxDepth = maxDepth
	}
}
