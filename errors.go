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

// ErrorCode identifies a decode failure. The set of codes is closed and
// matches the errors the decoder can report; values outside the set render
// as ErrUnknown.
type ErrorCode int

const (
	Success ErrorCode = iota
	ErrNoBackupMem
	ErrNoBackupActive
	ErrLowElemCount
	ErrHighElemCount
	ErrIntSize
	ErrFloatSize
	ErrAdditionalInval
	ErrNoPayload
	ErrPayloadNotConsumed
	ErrWrongType
	ErrWrongValue
	ErrWrongRange
	ErrIterations
	ErrAssertion
	ErrPayloadOutdated
	ErrElemNotFound
	ErrMapMisaligned
	ErrElemsNotProcessed
	ErrNotAtEnd
	ErrMapFlagsNotAvailable
	ErrInvalidValueEncoding
)

var errorNames = map[ErrorCode]string{
	Success:                 "Success",
	ErrNoBackupMem:          "ErrNoBackupMem",
	ErrNoBackupActive:       "ErrNoBackupActive",
	ErrLowElemCount:         "ErrLowElemCount",
	ErrHighElemCount:        "ErrHighElemCount",
	ErrIntSize:              "ErrIntSize",
	ErrFloatSize:            "ErrFloatSize",
	ErrAdditionalInval:      "ErrAdditionalInval",
	ErrNoPayload:            "ErrNoPayload",
	ErrPayloadNotConsumed:   "ErrPayloadNotConsumed",
	ErrWrongType:            "ErrWrongType",
	ErrWrongValue:           "ErrWrongValue",
	ErrWrongRange:           "ErrWrongRange",
	ErrIterations:           "ErrIterations",
	ErrAssertion:            "ErrAssertion",
	ErrPayloadOutdated:      "ErrPayloadOutdated",
	ErrElemNotFound:         "ErrElemNotFound",
	ErrMapMisaligned:        "ErrMapMisaligned",
	ErrElemsNotProcessed:    "ErrElemsNotProcessed",
	ErrNotAtEnd:             "ErrNotAtEnd",
	ErrMapFlagsNotAvailable: "ErrMapFlagsNotAvailable",
	ErrInvalidValueEncoding: "ErrInvalidValueEncoding",
}

// String returns the name for the error code. It never returns an empty
// string: codes outside the known set map to "ErrUnknown".
func (e ErrorCode) String() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return "ErrUnknown"
}
