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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/oyvindronningstad/zcbor"
)

type cmdFlags struct {
	flagset *flag.FlagSet
	hexData string
	plain   bool
	noInner bool
	diag    bool
	compare string
}

func newCmdFlags() *cmdFlags {
	f := &cmdFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.hexData,
		"hex",
		"",
		"hex-encoded CBOR to render (instead of reading a file)",
	)
	f.flagset.BoolVar(&f.plain, "plain", false, "disable colored output")
	f.flagset.BoolVar(
		&f.noInner,
		"no-inner",
		false,
		"disable speculative decode of byte-string payloads",
	)
	f.flagset.BoolVar(
		&f.diag,
		"diag",
		false,
		"also print RFC 8949 diagnostic notation",
	)
	f.flagset.StringVar(
		&f.compare,
		"compare",
		"",
		"file to byte-compare against the input instead of rendering",
	)
	return f
}

func main() {
	f := newCmdFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	data := inputData(f)

	if f.compare != "" {
		other, err := os.ReadFile(f.compare)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %s\n", f.compare, err)
			os.Exit(1)
		}
		if len(other) != len(data) {
			fmt.Fprintf(
				os.Stderr,
				"length mismatch: %d vs %d bytes, comparing common prefix\n",
				len(data),
				len(other),
			)
		}
		p := zcbor.NewPrinter(os.Stdout)
		p.CompareStringsDiff(data, other, len(data))
		return
	}

	opts := []zcbor.PrinterOptionFunc{
		zcbor.WithPretty(!f.plain),
		zcbor.WithInnerDecode(!f.noInner),
	}
	if err := zcbor.Dump(os.Stdout, data, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	if f.diag {
		notation, err := _cbor.Diagnose(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "diagnostic notation: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(notation)
	}
}

func inputData(f *cmdFlags) []byte {
	if f.hexData != "" {
		data, err := hex.DecodeString(strings.TrimSpace(f.hexData))
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to decode hex: %s\n", err)
			os.Exit(1)
		}
		return data
	}
	if f.flagset.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "no input: provide a file argument or -hex\n")
		os.Exit(1)
	}
	data, err := os.ReadFile(f.flagset.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %s\n", f.flagset.Arg(0), err)
		os.Exit(1)
	}
	return data
}
