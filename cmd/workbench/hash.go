// Copyright 2026 Blink Labs Software
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
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/workbench/encoding"
	"github.com/blinklabs-io/workbench/hashes"
	"github.com/blinklabs-io/workbench/workbench"
)

type hashFlags struct {
	flagset  *flag.FlagSet
	encoding string
}

func newHashFlags() *hashFlags {
	f := &hashFlags{
		flagset: flag.NewFlagSet("hash", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.encoding,
		"encoding",
		"",
		"input encoding (hex, base64 or utf8), detected when not set",
	)
	return f
}

func runHash(f *globalFlags) {
	hashFlags := newHashFlags()
	err := hashFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}

	tool := workbench.NewHashes()
	if hashFlags.encoding != "" {
		enc, err := encoding.FromString(hashFlags.encoding)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		if err := tool.Update(workbench.EncodingSelected{Encoding: enc}); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	if err := tool.Update(workbench.TextChanged{Text: inputText(hashFlags.flagset.Args())}); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	printView(tool.View())
}

type blake2bFlags struct {
	flagset *flag.FlagSet
	length  int
}

func newBlake2bFlags() *blake2bFlags {
	f := &blake2bFlags{
		flagset: flag.NewFlagSet("blake2b", flag.ExitOnError),
	}
	f.flagset.IntVar(&f.length, "length", hashes.Blake2b256Length, "digest length in bits (224 or 256)")
	return f
}

func runBlake2b(f *globalFlags) {
	blake2bFlags := newBlake2bFlags()
	err := blake2bFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}

	tool := workbench.NewBlake2b()
	if err := tool.Update(workbench.LengthSelected{Bits: blake2bFlags.length}); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if err := tool.Update(workbench.TextChanged{Text: inputText(blake2bFlags.flagset.Args())}); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if tool.Hash() == "" {
		fmt.Printf("ERROR: input is not valid hex\n")
		os.Exit(1)
	}
	printView(tool.View())
}

func printView(view workbench.View) {
	fmt.Print(view.String())
	if view.Warning != "" {
		os.Exit(1)
	}
}
