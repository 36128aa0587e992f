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

	"github.com/fatih/color"
)

// SprintfFunc formats one output span, optionally wrapping it in terminal
// color codes.
type SprintfFunc func(format string, a ...any) string

// Style controls how rendered output looks: the indent marker and the wrap
// functions for each span kind. A Style is chosen when the Printer is
// constructed and stays fixed for the traversal.
type Style struct {
	// Indent is emitted once per indent level at the start of a line
	Indent string
	// Header wraps the header byte of an element
	Header SprintfFunc
	// Value wraps the extended header bytes holding the encoded value
	Value SprintfFunc
	// Desc wraps the parenthesized decoded description
	Desc SprintfFunc
	// Tag wraps tag values
	Tag SprintfFunc
}

// PlainStyle returns the ASCII-only style with no color codes.
func PlainStyle() *Style {
	return &Style{
		Indent: "| ",
		Header: fmt.Sprintf,
		Value:  fmt.Sprintf,
		Desc:   fmt.Sprintf,
		Tag:    fmt.Sprintf,
	}
}

// PrettyStyle returns a style that color-codes each span: header bytes red,
// encoded value bytes blue, descriptions green, tags yellow, with a reset
// after each span. Colors are force-enabled so output is identical whether
// or not the sink is a terminal.
func PrettyStyle() *Style {
	return &Style{
		Indent: "| ",
		Header: colorSprintf(color.FgRed),
		Value:  colorSprintf(color.FgBlue),
		Desc:   colorSprintf(color.FgGreen),
		Tag:    colorSprintf(color.FgYellow),
	}
}

func colorSprintf(attr color.Attribute) SprintfFunc {
	c := color.New(attr)
	c.EnableColor()
	return c.SprintfFunc()
}
