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
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/workbench/ledger"
)

type txFlags struct {
	flagset *flag.FlagSet
	json    bool
	file    string
}

func newTxFlags() *txFlags {
	f := &txFlags{
		flagset: flag.NewFlagSet("tx", flag.ExitOnError),
	}
	f.flagset.BoolVar(&f.json, "json", false, "output a JSON summary instead of the rendered view")
	f.flagset.StringVar(&f.file, "file", "", "read hex transaction text from a file")
	return f
}

func runTx(f *globalFlags) {
	txFlags := newTxFlags()
	err := txFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}

	var text string
	if txFlags.file != "" {
		data, err := os.ReadFile(txFlags.file)
		if err != nil {
			fmt.Printf("ERROR: failed to read file: %s\n", err)
			os.Exit(1)
		}
		text = string(data)
	} else {
		text = inputText(txFlags.flagset.Args())
	}

	tx, err := ledger.DecodeHexTransaction(text)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	if txFlags.json {
		out, err := json.MarshalIndent(ledger.Summarize(tx), "", "  ")
		if err != nil {
			fmt.Printf("ERROR: failed to encode summary: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	for _, line := range ledger.Render(tx) {
		fmt.Println(line)
	}
}
