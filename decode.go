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
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Element budget for containers without a declared count
const largeElemCount = math.MaxUint64

// Reader decodes CBOR elements sequentially from a byte buffer. It tracks a
// cursor, the number of elements remaining in the current container, and the
// most recent decode failure. A Reader is not safe for concurrent use.
type Reader struct {
	data       []byte
	pos        int
	end        int
	remaining  uint64
	indefinite bool
	err        ErrorCode
}

// NewReader returns a Reader positioned at the start of data with an
// unbounded element budget.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, end: len(data), remaining: largeElemCount}
}

// Children returns a Reader positioned at the first child of a list or map
// element. The element budget is the declared count, doubled for maps since
// keys and values decode as separate elements, or unbounded for
// indefinite-length containers.
func (e *Element) Children() *Reader {
	r := &Reader{
		data:      e.Raw,
		pos:       e.HeaderOff + e.HeaderLen,
		end:       len(e.Raw),
		remaining: e.Value,
	}
	switch {
	case e.Indefinite:
		r.remaining = largeElemCount
		r.indefinite = true
	case e.Type == MajorTypeMap:
		r.remaining = e.Value * 2
	}
	return r
}

// Remaining returns the number of elements left in the current container's
// budget.
func (r *Reader) Remaining() uint64 {
	return r.remaining
}

// Position returns the current cursor offset within the underlying buffer.
func (r *Reader) Position() int {
	return r.pos
}

// AtEnd reports whether the current container's source has reached its
// declared end: an exhausted element budget for definite lengths, or the
// cursor sitting on the break marker for indefinite lengths.
func (r *Reader) AtEnd() bool {
	if r.indefinite {
		return r.pos < r.end && r.data[r.pos] == cborBreak
	}
	return r.remaining == 0
}

// LastError returns the code for the most recent decode failure, or Success
// if no decode has failed.
func (r *Reader) LastError() ErrorCode {
	return r.err
}

// NextElement decodes the next element at the cursor, consuming its entire
// encoded span including nested content. It returns false on failure, with
// the cause available via LastError. Hitting the break marker of an
// indefinite-length container fails the decode but leaves AtEnd reporting
// true.
func (r *Reader) NextElement() (*Element, bool) {
	if r.remaining == 0 {
		return r.fail(ErrLowElemCount)
	}
	if r.indefinite && r.pos < r.end && r.data[r.pos] == cborBreak {
		return r.fail(ErrWrongType)
	}
	start := r.pos
	pos := r.pos
	// Fold any leading tags into the element span
	var h header
	for {
		var code ErrorCode
		h, code = r.parseHeader(pos)
		if code != Success {
			return r.fail(code)
		}
		if h.isBreak {
			return r.fail(ErrWrongType)
		}
		if h.major != MajorTypeTag {
			break
		}
		pos += h.hlen
	}
	end, code := r.skipElement(pos)
	if code != Success {
		return r.fail(code)
	}
	elem := &Element{
		Type:       h.major,
		Raw:        r.data[start:end],
		HeaderOff:  pos - start,
		HeaderLen:  h.hlen,
		Value:      h.value,
		Indefinite: h.indefinite,
	}
	switch h.major {
	case MajorTypeNint:
		elem.NegValue = -1 - int64(h.value)
	case MajorTypeSimple:
		if code := decodeSpecial(elem, r.data[pos]&^cborTypeMask, h.value); code != Success {
			return r.fail(code)
		}
	}
	r.pos = end
	r.remaining--
	return elem, true
}

// DecodeTag consumes a single leading tag if one is present at the cursor.
// A failed probe has no side effects: the cursor does not move and no error
// is recorded.
func (r *Reader) DecodeTag() (uint64, bool) {
	h, code := r.parseHeader(r.pos)
	if code != Success || h.major != MajorTypeTag || h.indefinite {
		return 0, false
	}
	r.pos += h.hlen
	return h.value, true
}

func (r *Reader) fail(code ErrorCode) (*Element, bool) {
	r.err = code
	return nil, false
}

type header struct {
	major      MajorType
	value      uint64
	hlen       int
	indefinite bool
	isBreak    bool
}

// parseHeader decodes the element header at pos without moving the cursor.
func (r *Reader) parseHeader(pos int) (header, ErrorCode) {
	if pos >= r.end {
		return header{}, ErrNoPayload
	}
	b := r.data[pos]
	h := header{major: MajorType(b >> cborTypeShift), hlen: 1}
	addl := b &^ cborTypeMask
	switch {
	case addl <= maxInlineValue:
		h.value = uint64(addl)
	case addl == addlOneByte:
		if pos+2 > r.end {
			return header{}, ErrNoPayload
		}
		h.value = uint64(r.data[pos+1])
		h.hlen = 2
	case addl == addlTwoBytes:
		if pos+3 > r.end {
			return header{}, ErrNoPayload
		}
		h.value = uint64(binary.BigEndian.Uint16(r.data[pos+1:]))
		h.hlen = 3
	case addl == addlFourBytes:
		if pos+5 > r.end {
			return header{}, ErrNoPayload
		}
		h.value = uint64(binary.BigEndian.Uint32(r.data[pos+1:]))
		h.hlen = 5
	case addl == addlEightBytes:
		if pos+9 > r.end {
			return header{}, ErrNoPayload
		}
		h.value = binary.BigEndian.Uint64(r.data[pos+1:])
		h.hlen = 9
	case addl == addlIndefinite:
		switch h.major {
		case MajorTypeBytes, MajorTypeText, MajorTypeList, MajorTypeMap:
			h.indefinite = true
		case MajorTypeSimple:
			h.isBreak = true
		default:
			return header{}, ErrInvalidValueEncoding
		}
	default:
		// Reserved additional-info values 28-30
		return header{}, ErrInvalidValueEncoding
	}
	return h, Success
}

// skipElement returns the offset just past the element starting at pos,
// walking through nested content and trailing break markers.
func (r *Reader) skipElement(pos int) (int, ErrorCode) {
	h, code := r.parseHeader(pos)
	if code != Success {
		return 0, code
	}
	if h.isBreak {
		return 0, ErrWrongType
	}
	pos += h.hlen
	switch h.major {
	case MajorTypeTag:
		return r.skipElement(pos)
	case MajorTypeBytes, MajorTypeText:
		if h.indefinite {
			for {
				if pos >= r.end {
					return 0, ErrNoPayload
				}
				if r.data[pos] == cborBreak {
					return pos + 1, Success
				}
				ch, code := r.parseHeader(pos)
				if code != Success {
					return 0, code
				}
				// Chunks must be definite strings of the same major type
				if ch.major != h.major || ch.indefinite {
					return 0, ErrWrongType
				}
				if ch.value > uint64(r.end-pos-ch.hlen) {
					return 0, ErrNoPayload
				}
				pos += ch.hlen + int(ch.value)
			}
		}
		if h.value > uint64(r.end-pos) {
			return 0, ErrNoPayload
		}
		return pos + int(h.value), Success
	case MajorTypeList, MajorTypeMap:
		if h.indefinite {
			for {
				if pos >= r.end {
					return 0, ErrNoPayload
				}
				if r.data[pos] == cborBreak {
					return pos + 1, Success
				}
				next, code := r.skipElement(pos)
				if code != Success {
					return 0, code
				}
				pos = next
			}
		}
		count := h.value
		if h.major == MajorTypeMap {
			if count > math.MaxUint64/2 {
				return 0, ErrHighElemCount
			}
			count *= 2
		}
		for i := uint64(0); i < count; i++ {
			next, code := r.skipElement(pos)
			if code != Success {
				return 0, code
			}
			pos = next
		}
		return pos, Success
	default:
		return pos, Success
	}
}

func decodeSpecial(elem *Element, addl uint8, value uint64) ErrorCode {
	switch {
	case addl <= maxInlineValue || addl == addlOneByte:
		switch value {
		case simpleValueFalse:
			elem.Special = SpecialFalse
		case simpleValueTrue:
			elem.Special = SpecialTrue
		case simpleValueNil:
			elem.Special = SpecialNil
		case simpleValueUndefined:
			elem.Special = SpecialUndefined
		default:
			elem.Special = SpecialSimple
		}
	case addl == addlTwoBytes:
		elem.Special = SpecialFloat16
		elem.Float = float64(float16.Frombits(uint16(value)).Float32())
	case addl == addlFourBytes:
		elem.Special = SpecialFloat32
		elem.Float = float64(math.Float32frombits(uint32(value)))
	case addl == addlEightBytes:
		elem.Special = SpecialFloat64
		elem.Float = math.Float64frombits(value)
	default:
		return ErrInvalidValueEncoding
	}
	return Success
}
