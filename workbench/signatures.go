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
	"encoding/hex"
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/blinklabs-io/workbench/encoding"
	"github.com/blinklabs-io/workbench/signatures"
)

const warningInvalidKeyLength = "Invalid private key length.."

// Signatures signs a message with a private key using every supported scheme. The
// selected encoding applies to the message
type Signatures struct {
	message  string
	key      string
	encoding encoding.Encoding
	result   *signatures.Result
	warning  string
}

func NewSignatures() *Signatures {
	return &Signatures{}
}

func (s *Signatures) Name() string {
	return ToolKindSignatures.String()
}

func (s *Signatures) Update(msg Message) error {
	switch m := msg.(type) {
	case TextChanged:
		s.message = m.Text
	case KeyChanged:
		s.key = m.Key
	case EncodingSelected:
		s.encoding = m.Encoding
	case GenerateKey:
		key, err := signatures.GenerateKey()
		if err != nil {
			return err
		}
		s.key = hex.EncodeToString(key)
	default:
		return unsupported(s, msg)
	}
	s.recompute()
	return nil
}

// Key returns the private key text
func (s *Signatures) Key() string {
	return s.key
}

// Result returns the signatures for the current inputs, or nil if nothing was signed
func (s *Signatures) Result() *signatures.Result {
	return s.result
}

func (s *Signatures) recompute() {
	s.result = nil
	s.warning = ""
	if s.message == "" || s.key == "" {
		s.warning = warningEmptyString
		return
	}
	msg, _, err := decodeInput(s.message, s.encoding)
	if err != nil {
		s.warning = inputWarning(err)
		return
	}
	// Keys are always detected so that generated hex keys work with any message encoding
	key, _, err := decodeInput(s.key, encoding.EncodingUnknown)
	if err != nil {
		s.warning = inputWarning(err)
		return
	}
	result, err := signatures.Sign(key, msg)
	if result.Ed25519Signature != "" || result.EcdsaSignature != "" || result.SchnorrSignature != "" {
		s.result = result
	}
	if err != nil {
		s.warning = signWarning(err)
	}
}

func signWarning(err error) string {
	if errors.Is(err, signatures.ErrInvalidKeyLength) {
		return warningInvalidKeyLength
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return strings.Join(
			lo.Map(merr.WrappedErrors(), func(e error, _ int) string {
				return e.Error()
			}),
			"; ",
		)
	}
	return err.Error()
}

func (s *Signatures) View() View {
	view := View{
		Title:   s.Name(),
		Warning: s.warning,
	}
	if s.result == nil {
		return view
	}
	view.Lines = []Line{
		{Label: "ed25519_pub", Value: s.result.Ed25519PublicKey},
		{Label: "ed25519_sig", Value: s.result.Ed25519Signature},
		{Label: "ecdsa_secp256k1_pub", Value: s.result.EcdsaPublicKey},
		{Label: "ecdsa_secp256k1_sig", Value: s.result.EcdsaSignature},
		{Label: "schnorr_secp256k1_pub", Value: s.result.SchnorrPublicKey},
		{Label: "schnorr_secp256k1", Value: s.result.SchnorrSignature},
	}
	return view
}
