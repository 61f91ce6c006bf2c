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
	"io"
	"log/slog"
	"os"
	"strings"
)

type globalFlags struct {
	flagset *flag.FlagSet
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		),
	)

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "tx":
			runTx(f)
		case "hash":
			runHash(f)
		case "blake2b":
			runBlake2b(f)
		case "sign":
			runSign(f)
		case "watch":
			runWatch(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (tx, hash, blake2b, sign or watch)\n")
		os.Exit(1)
	}
}

// inputText returns the joined arguments, or stdin when there are none
func inputText(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Printf("ERROR: failed to read stdin: %s\n", err)
		os.Exit(1)
	}
	return strings.TrimRight(string(data), "\r\n")
}
