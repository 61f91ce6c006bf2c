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
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	Ed25519SeedSize        = ed25519.SeedSize
	Ed25519ExtendedKeySize = 64
)

// SignEd25519 signs msg and returns the public key and signature. The key is either a
// 32-byte seed or a 64-byte extended key
func SignEd25519(key []byte, msg []byte) ([]byte, []byte, error) {
	switch len(key) {
	case Ed25519SeedSize:
		privKey := ed25519.NewKeyFromSeed(key)
		pubKey := privKey.Public().(ed25519.PublicKey)
		return []byte(pubKey), ed25519.Sign(privKey, msg), nil
	case Ed25519ExtendedKeySize:
		return signEd25519Extended(key, msg)
	default:
		return nil, nil, fmt.Errorf(
			"%w: ed25519 needs %d or %d bytes, got %d",
			ErrInvalidKeyLength,
			Ed25519SeedSize,
			Ed25519ExtendedKeySize,
			len(key),
		)
	}
}

// Ed25519PublicKey derives the public key without signing anything
func Ed25519PublicKey(key []byte) ([]byte, error) {
	pubKey, _, err := SignEd25519(key, nil)
	return pubKey, err
}

// signEd25519Extended is RFC 8032 signing with the seed hash step skipped: the first
// half of the key is the secret scalar and the second half is the nonce prefix
func signEd25519Extended(key []byte, msg []byte) ([]byte, []byte, error) {
	secret, err := edwards25519.NewScalar().SetBytesWithClamping(key[:32])
	if err != nil {
		return nil, nil, err
	}
	pubKey := (&edwards25519.Point{}).ScalarBaseMult(secret).Bytes()

	// #nosec G401 -- SHA-512 is mandated by RFC 8032
	h := sha512.New()
	h.Write(key[32:])
	h.Write(msg)
	nonce, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, nil, err
	}
	R := (&edwards25519.Point{}).ScalarBaseMult(nonce).Bytes()

	h.Reset()
	h.Write(R)
	h.Write(pubKey)
	h.Write(msg)
	challenge, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, nil, err
	}
	S := edwards25519.NewScalar().MultiplyAdd(challenge, secret, nonce)

	sig := make([]byte, 0, ed25519.SignatureSize)
	sig = append(sig, R...)
	sig = append(sig, S.Bytes()...)
	return pubKey, sig, nil
}

func VerifyEd25519(pubKey []byte, msg []byte, sig []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig)
}
