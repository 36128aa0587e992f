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

package zcbor_test

import (
	"testing"

	"github.com/oyvindronningstad/zcbor"
	"github.com/oyvindronningstad/zcbor/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderNextElement(t *testing.T) {
	testDefs := []struct {
		cborHex            string
		expectedType       zcbor.MajorType
		expectedValue      uint64
		expectedNegValue   int64
		expectedIndefinite bool
		expectedSpecial    zcbor.SpecialValue
		expectedFloat      float64
		expectedHeaderOff  int
		expectedHeaderLen  int
	}{
		// 5
		{
			cborHex:           "05",
			expectedType:      zcbor.MajorTypeUint,
			expectedValue:     5,
			expectedHeaderLen: 1,
		},
		// 1000
		{
			cborHex:           "1903e8",
			expectedType:      zcbor.MajorTypeUint,
			expectedValue:     1000,
			expectedHeaderLen: 3,
		},
		// -1
		{
			cborHex:          "20",
			expectedType:     zcbor.MajorTypeNint,
			expectedNegValue: -1,
			// NegValue is derived from the raw value 0
			expectedHeaderLen: 1,
		},
		// -500
		{
			cborHex:           "3901f3",
			expectedType:      zcbor.MajorTypeNint,
			expectedValue:     499,
			expectedNegValue:  -500,
			expectedHeaderLen: 3,
		},
		// h'010203'
		{
			cborHex:           "43010203",
			expectedType:      zcbor.MajorTypeBytes,
			expectedValue:     3,
			expectedHeaderLen: 1,
		},
		// "foo"
		{
			cborHex:           "63666f6f",
			expectedType:      zcbor.MajorTypeText,
			expectedValue:     3,
			expectedHeaderLen: 1,
		},
		// [1, 2, 3]
		{
			cborHex:           "83010203",
			expectedType:      zcbor.MajorTypeList,
			expectedValue:     3,
			expectedHeaderLen: 1,
		},
		// {1: 2, 3: 4}
		{
			cborHex:           "a201020304",
			expectedType:      zcbor.MajorTypeMap,
			expectedValue:     2,
			expectedHeaderLen: 1,
		},
		// [_ 1, 2]
		{
			cborHex:            "9f0102ff",
			expectedType:       zcbor.MajorTypeList,
			expectedIndefinite: true,
			expectedHeaderLen:  1,
		},
		// (_ h'01')
		{
			cborHex:            "5f4101ff",
			expectedType:       zcbor.MajorTypeBytes,
			expectedIndefinite: true,
			expectedHeaderLen:  1,
		},
		// 1(42): tag folded into the element span
		{
			cborHex:           "c1182a",
			expectedType:      zcbor.MajorTypeUint,
			expectedValue:     42,
			expectedHeaderOff: 1,
			expectedHeaderLen: 2,
		},
		// false
		{
			cborHex:           "f4",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     20,
			expectedSpecial:   zcbor.SpecialFalse,
			expectedHeaderLen: 1,
		},
		// true
		{
			cborHex:           "f5",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     21,
			expectedSpecial:   zcbor.SpecialTrue,
			expectedHeaderLen: 1,
		},
		// null
		{
			cborHex:           "f6",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     22,
			expectedSpecial:   zcbor.SpecialNil,
			expectedHeaderLen: 1,
		},
		// undefined
		{
			cborHex:           "f7",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     23,
			expectedSpecial:   zcbor.SpecialUndefined,
			expectedHeaderLen: 1,
		},
		// simple(16)
		{
			cborHex:           "f0",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     16,
			expectedSpecial:   zcbor.SpecialSimple,
			expectedHeaderLen: 1,
		},
		// simple(32)
		{
			cborHex:           "f820",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     32,
			expectedSpecial:   zcbor.SpecialSimple,
			expectedHeaderLen: 2,
		},
		// 1.5 as float16
		{
			cborHex:           "f93e00",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     0x3e00,
			expectedSpecial:   zcbor.SpecialFloat16,
			expectedFloat:     1.5,
			expectedHeaderLen: 3,
		},
		// 1.5 as float32
		{
			cborHex:           "fa3fc00000",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     0x3fc00000,
			expectedSpecial:   zcbor.SpecialFloat32,
			expectedFloat:     1.5,
			expectedHeaderLen: 5,
		},
		// 1.5 as float64
		{
			cborHex:           "fb3ff8000000000000",
			expectedType:      zcbor.MajorTypeSimple,
			expectedValue:     0x3ff8000000000000,
			expectedSpecial:   zcbor.SpecialFloat64,
			expectedFloat:     1.5,
			expectedHeaderLen: 9,
		},
	}
	for _, testDef := range testDefs {
		data := test.DecodeHexString(testDef.cborHex)
		rd := zcbor.NewReader(data)
		elem, ok := rd.NextElement()
		require.True(t, ok, "decode %s failed: %s", testDef.cborHex, rd.LastError())
		assert.Equal(t, testDef.expectedType, elem.Type, testDef.cborHex)
		assert.Equal(t, testDef.expectedValue, elem.Value, testDef.cborHex)
		assert.Equal(t, testDef.expectedNegValue, elem.NegValue, testDef.cborHex)
		assert.Equal(t, testDef.expectedIndefinite, elem.Indefinite, testDef.cborHex)
		assert.Equal(t, testDef.expectedSpecial, elem.Special, testDef.cborHex)
		assert.Equal(t, testDef.expectedFloat, elem.Float, testDef.cborHex)
		assert.Equal(t, testDef.expectedHeaderOff, elem.HeaderOff, testDef.cborHex)
		assert.Equal(t, testDef.expectedHeaderLen, elem.HeaderLen, testDef.cborHex)
		// The element's raw span always covers the whole encoding
		assert.Equal(t, data, elem.Raw, testDef.cborHex)
		assert.Equal(t, len(data), rd.Position(), testDef.cborHex)
	}
}

func TestReaderNextElementErrors(t *testing.T) {
	testDefs := []struct {
		cborHex       string
		expectedError zcbor.ErrorCode
	}{
		// Empty input
		{"", zcbor.ErrNoPayload},
		// Truncated extended header
		{"19", zcbor.ErrNoPayload},
		// Byte string longer than its payload
		{"4301", zcbor.ErrNoPayload},
		// List declaring a missing child
		{"81", zcbor.ErrNoPayload},
		// Reserved additional-info value 28
		{"1c", zcbor.ErrInvalidValueEncoding},
		// Indefinite-length uint is not a thing
		{"1f", zcbor.ErrInvalidValueEncoding},
		// Lone break marker
		{"ff", zcbor.ErrWrongType},
	}
	for _, testDef := range testDefs {
		rd := zcbor.NewReader(test.DecodeHexString(testDef.cborHex))
		elem, ok := rd.NextElement()
		assert.False(t, ok, testDef.cborHex)
		assert.Nil(t, elem, testDef.cborHex)
		assert.Equal(t, testDef.expectedError, rd.LastError(), testDef.cborHex)
	}
}

func TestReaderChildrenDefinite(t *testing.T) {
	// {1: 2, 3: 4} issues exactly 2k child decodes
	elem := decodeOne(t, "a201020304")
	rd := elem.Children()
	assert.Equal(t, uint64(4), rd.Remaining())
	for i := 0; i < 4; i++ {
		_, ok := rd.NextElement()
		require.True(t, ok, "child %d", i)
	}
	assert.True(t, rd.AtEnd())
	// The budget is enforced once exhausted
	_, ok := rd.NextElement()
	assert.False(t, ok)
	assert.Equal(t, zcbor.ErrLowElemCount, rd.LastError())
}

func TestReaderChildrenIndefinite(t *testing.T) {
	// [_ 1, 2, 3]
	elem := decodeOne(t, "9f010203ff")
	rd := elem.Children()
	var children int
	for rd.Remaining() > 0 {
		_, ok := rd.NextElement()
		if !ok {
			break
		}
		children++
	}
	assert.Equal(t, 3, children)
	// The break marker reports clean exhaustion, not a hard error
	assert.True(t, rd.AtEnd())
}

func TestReaderDecodeTag(t *testing.T) {
	// 1(2(5))
	rd := zcbor.NewReader(test.DecodeHexString("c1c205"))
	tag, ok := rd.DecodeTag()
	require.True(t, ok)
	assert.Equal(t, uint64(1), tag)
	tag, ok = rd.DecodeTag()
	require.True(t, ok)
	assert.Equal(t, uint64(2), tag)
	// No more tags; the probe must not move the cursor or record an error
	before := rd.Position()
	_, ok = rd.DecodeTag()
	assert.False(t, ok)
	assert.Equal(t, before, rd.Position())
	assert.Equal(t, zcbor.Success, rd.LastError())
	elem, ok := rd.NextElement()
	require.True(t, ok)
	assert.Equal(t, uint64(5), elem.Value)
}

func decodeOne(t *testing.T, cborHex string) *zcbor.Element {
	t.Helper()
	rd := zcbor.NewReader(test.DecodeHexString(cborHex))
	elem, ok := rd.NextElement()
	require.True(t, ok, "decode %s failed: %s", cborHex, rd.LastError())
	return elem
}
