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

// MajorType is the CBOR major type from the top 3 bits of a header byte.
type MajorType uint8

const (
	MajorTypeUint MajorType = iota
	MajorTypeNint
	MajorTypeBytes
	MajorTypeText
	MajorTypeList
	MajorTypeMap
	MajorTypeTag
	MajorTypeSimple
)

const (
	// Only the top 3 bits of the header byte select the major type
	cborTypeMask  uint8 = 0xe0
	cborTypeShift       = 5

	// Additional-info values selecting extended length encodings
	addlOneByte    uint8 = 24
	addlTwoBytes   uint8 = 25
	addlFourBytes  uint8 = 26
	addlEightBytes uint8 = 27
	addlIndefinite uint8 = 31

	// Max value able to be stored in the header byte itself
	maxInlineValue uint8 = 23

	// End marker for indefinite-length containers
	cborBreak uint8 = 0xff
)

// Simple values from RFC 8949 section 3.3
const (
	simpleValueFalse     = 20
	simpleValueTrue      = 21
	simpleValueNil       = 22
	simpleValueUndefined = 23
)

var majorTypeNames = map[MajorType]string{
	MajorTypeUint:   "uint",
	MajorTypeNint:   "nint",
	MajorTypeBytes:  "bstr",
	MajorTypeText:   "tstr",
	MajorTypeList:   "list",
	MajorTypeMap:    "map",
	MajorTypeTag:    "tag",
	MajorTypeSimple: "simple",
}

func (m MajorType) String() string {
	if name, ok := majorTypeNames[m]; ok {
		return name
	}
	return "unknown"
}

// SpecialValue identifies the subtype of a simple/float (major type 7) element.
type SpecialValue uint8

const (
	SpecialNone SpecialValue = iota
	SpecialFalse
	SpecialTrue
	SpecialNil
	SpecialUndefined
	SpecialSimple
	SpecialFloat16
	SpecialFloat32
	SpecialFloat64
)

// Element is a single decoded CBOR data item along with its raw encoding.
// The raw span covers any leading tags, the header, and the entire payload
// (including all nested content and any trailing break marker). Elements are
// only valid as long as the buffer they were decoded from.
type Element struct {
	Type MajorType
	// Raw is the full encoded span for the element
	Raw []byte
	// HeaderOff is the offset of the header byte within Raw, past any tags
	HeaderOff int
	// HeaderLen is the number of header bytes, including the header byte itself
	HeaderLen int
	// Value is the decoded unsigned value: an integer for uint, the raw
	// (unsigned) value for nint, a length for strings, a declared entry
	// count for containers (zero if indefinite), or a simple value number
	Value uint64
	// NegValue is the signed interpretation for nint elements
	NegValue int64
	// Indefinite marks a container or string with indefinite-length encoding
	Indefinite bool
	// Special is set for simple/float elements
	Special SpecialValue
	// Float is the decoded floating-point value for float16/32/64 elements
	Float float64
}

// Header returns the encoded header bytes (header byte plus any extended
// length or value bytes).
func (e *Element) Header() []byte {
	return e.Raw[e.HeaderOff : e.HeaderOff+e.HeaderLen]
}

// Payload returns the encoded bytes following the header: string content or
// container children, plus the break marker for indefinite lengths.
func (e *Element) Payload() []byte {
	return e.Raw[e.HeaderOff+e.HeaderLen:]
}
