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

package signatures

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrInvalidKeyLength = errors.New("invalid private key length")
	ErrInvalidKey       = errors.New("invalid private key")
	ErrVerifyFailed     = errors.New("signature failed self-verification")
)

// Result holds the hex encoded keys and signatures for one message
type Result struct {
	Ed25519PublicKey string `json:"ed25519_pub"`
	Ed25519Signature string `json:"ed25519_sig"`
	EcdsaPublicKey   string `json:"ecdsa_secp256k1_pub"`
	EcdsaSignature   string `json:"ecdsa_secp256k1_sig"`
	SchnorrPublicKey string `json:"schnorr_secp256k1_pub"`
	SchnorrSignature string `json:"schnorr_secp256k1"`
}

type scheme struct {
	name   string
	sign   func([]byte, []byte) ([]byte, []byte, error)
	verify func([]byte, []byte, []byte) bool
	store  func(*Result, string, string)
}

var schemes = []scheme{
	{
		name:   "ed25519",
		sign:   SignEd25519,
		verify: VerifyEd25519,
		store: func(r *Result, pub string, sig string) {
			r.Ed25519PublicKey, r.Ed25519Signature = pub, sig
		},
	},
	{
		name:   "ecdsa_secp256k1",
		sign:   SignEcdsa,
		verify: VerifyEcdsa,
		store: func(r *Result, pub string, sig string) {
			r.EcdsaPublicKey, r.EcdsaSignature = pub, sig
		},
	},
	{
		name:   "schnorr_secp256k1",
		sign:   SignSchnorr,
		verify: VerifySchnorr,
		store: func(r *Result, pub string, sig string) {
			r.SchnorrPublicKey, r.SchnorrSignature = pub, sig
		},
	},
}

// Sign signs msg with every scheme the key supports and checks each signature against
// its own public key. Schemes that fail leave their fields empty; the returned result is
// never nil and the error collects one entry per failed scheme
func Sign(key []byte, msg []byte) (*Result, error) {
	ret := &Result{}
	var errs *multierror.Error
	for _, s := range schemes {
		pubKey, sig, err := s.sign(key, msg)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.name, err))
			continue
		}
		if !s.verify(pubKey, msg, sig) {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.name, ErrVerifyFailed))
			continue
		}
		s.store(ret, hex.EncodeToString(pubKey), hex.EncodeToString(sig))
	}
	return ret, errs.ErrorOrNil()
}
