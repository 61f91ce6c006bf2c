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
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const Secp256k1KeySize = 32

func secp256k1PrivateKey(key []byte) (*secp256k1.PrivateKey, error) {
	if len(key) != Secp256k1KeySize {
		return nil, fmt.Errorf(
			"%w: secp256k1 needs %d bytes, got %d",
			ErrInvalidKeyLength,
			Secp256k1KeySize,
			len(key),
		)
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(key); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: secp256k1 scalar out of range", ErrInvalidKey)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// SignEcdsa signs the SHA-256 digest of msg. It returns the compressed public key and
// a DER signature
func SignEcdsa(key []byte, msg []byte) ([]byte, []byte, error) {
	privKey, err := secp256k1PrivateKey(key)
	if err != nil {
		return nil, nil, err
	}
	digest := sha256.Sum256(msg)
	sig := ecdsa.Sign(privKey, digest[:])
	return privKey.PubKey().SerializeCompressed(), sig.Serialize(), nil
}

func VerifyEcdsa(pubKey []byte, msg []byte, sig []byte) bool {
	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	parsedSig, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(msg)
	return parsedSig.Verify(digest[:], pub)
}

// SignSchnorr produces a BIP-340 signature over the SHA-256 digest of msg. It returns
// the x-only public key and the 64-byte signature
func SignSchnorr(key []byte, msg []byte) ([]byte, []byte, error) {
	privKey, err := secp256k1PrivateKey(key)
	if err != nil {
		return nil, nil, err
	}
	digest := sha256.Sum256(msg)
	sig, err := schnorr.Sign(privKey, digest[:])
	if err != nil {
		return nil, nil, err
	}
	return schnorr.SerializePubKey(privKey.PubKey()), sig.Serialize(), nil
}

func VerifySchnorr(pubKey []byte, msg []byte, sig []byte) bool {
	pub, err := schnorr.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	parsedSig, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(msg)
	return parsedSig.Verify(digest[:], pub)
}

// GenerateKey returns a random 32-byte key that is valid for every scheme
func GenerateKey() ([]byte, error) {
	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return privKey.Serialize(), nil
}
