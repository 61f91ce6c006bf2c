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

package workbench

import (
	"errors"

	"github.com/blinklabs-io/workbench/encoding"
	"github.com/blinklabs-io/workbench/hashes"
)

const warningEmptyString = "Empty String"

// Hashes shows every supported digest of a text input
type Hashes struct {
	text     string
	encoding encoding.Encoding
	detected encoding.Encoding
	digests  *hashes.Digests
	warning  string
}

func NewHashes() *Hashes {
	return &Hashes{}
}

func (h *Hashes) Name() string {
	return ToolKindHashes.String()
}

func (h *Hashes) Update(msg Message) error {
	switch m := msg.(type) {
	case TextChanged:
		h.text = m.Text
	case EncodingSelected:
		h.encoding = m.Encoding
	default:
		return unsupported(h, msg)
	}
	h.recompute()
	return nil
}

func (h *Hashes) recompute() {
	h.digests = nil
	h.warning = ""
	if h.text == "" {
		h.detected = encoding.EncodingUnknown
		h.warning = warningEmptyString
		return
	}
	data, enc, err := decodeInput(h.text, h.encoding)
	h.detected = enc
	if err != nil {
		h.warning = inputWarning(err)
		return
	}
	digests := hashes.Compute(data)
	h.digests = &digests
}

// Digests returns the current digests, or nil when the input could not be hashed
func (h *Hashes) Digests() *hashes.Digests {
	return h.digests
}

// Encoding returns the encoding used for the current text
func (h *Hashes) Encoding() encoding.Encoding {
	return h.detected
}

func (h *Hashes) View() View {
	view := View{
		Title:   h.Name(),
		Warning: h.warning,
	}
	if h.detected != encoding.EncodingUnknown {
		view.Lines = append(view.Lines, Line{Label: "encoding", Value: h.detected.String()})
	}
	if h.digests != nil {
		view.Lines = append(
			view.Lines,
			Line{Label: "blake2b_224", Value: h.digests.Blake2b224},
			Line{Label: "blake2b_256", Value: h.digests.Blake2b256},
			Line{Label: "sha512", Value: h.digests.Sha512},
			Line{Label: "sha256", Value: h.digests.Sha256},
		)
	}
	return view
}

// decodeInput decodes text with enc, or with the detected encoding when enc is unset
func decodeInput(text string, enc encoding.Encoding) ([]byte, encoding.Encoding, error) {
	if enc == encoding.EncodingUnknown {
		return encoding.DecodeAuto(text)
	}
	data, err := encoding.Decode(text, enc)
	return data, enc, err
}

func inputWarning(err error) string {
	var decodeErr *encoding.DecodeError
	if !errors.As(err, &decodeErr) {
		return err.Error()
	}
	switch decodeErr.Encoding {
	case encoding.EncodingHex:
		return "Invalid hex: " + decodeErr.Err.Error()
	case encoding.EncodingBase64:
		return "Invalid base64: " + decodeErr.Err.Error()
	default:
		return err.Error()
	}
}
