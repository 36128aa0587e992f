package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	_cbor "github.com/fxamacker/cbor/v2"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// MustEncode is a helper function for tests that encodes a value as CBOR with
// a known-good encoder. It doesn't return an error value, which makes it
// usable inline.
func MustEncode(value any) []byte {
	data, err := _cbor.Marshal(value)
	if err != nil {
		panic(fmt.Sprintf("error encoding CBOR: %s", err))
	}
	return data
}
