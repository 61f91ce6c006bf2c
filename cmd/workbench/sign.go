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
	"github.com/blinklabs-io/workbench/workbench"
)

type signFlags struct {
	flagset  *flag.FlagSet
	key      string
	encoding string
	generate bool
}

func newSignFlags() *signFlags {
	f := &signFlags{
		flagset: flag.NewFlagSet("sign", flag.ExitOnError),
	}
	f.flagset.StringVar(&f.key, "key", "", "private key (32-byte key or 64-byte extended Ed25519 key)")
	f.flagset.StringVar(
		&f.encoding,
		"encoding",
		"",
		"message encoding (hex, base64 or utf8), detected when not set",
	)
	f.flagset.BoolVar(&f.generate, "generate", false, "sign with a newly generated key")
	return f
}

func runSign(f *globalFlags) {
	signFlags := newSignFlags()
	err := signFlags.flagset.Parse(f.flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if signFlags.key == "" && !signFlags.generate {
		fmt.Printf("ERROR: you must specify -key or -generate\n")
		os.Exit(1)
	}

	msgs := []workbench.Message{}
	if signFlags.encoding != "" {
		enc, err := encoding.FromString(signFlags.encoding)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		msgs = append(msgs, workbench.EncodingSelected{Encoding: enc})
	}
	msgs = append(msgs, workbench.TextChanged{Text: inputText(signFlags.flagset.Args())})
	if signFlags.generate {
		msgs = append(msgs, workbench.GenerateKey{})
	} else {
		msgs = append(msgs, workbench.KeyChanged{Key: signFlags.key})
	}

	tool := workbench.NewSignatures()
	for _, msg := range msgs {
		if err := tool.Update(msg); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	if signFlags.generate {
		fmt.Printf("private key: %s\n", tool.Key())
	}
	printView(tool.View())
}
