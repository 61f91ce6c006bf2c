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

package signatures_test

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/workbench/internal/test"
	"github.com/blinklabs-io/workbench/signatures"
)

// RFC 8032 section 7.1, test 1
const (
	rfc8032Seed   = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfc8032PubKey = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfc8032Sig    = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func TestSignEd25519Seed(t *testing.T) {
	pubKey, sig, err := signatures.SignEd25519(test.DecodeHexString(rfc8032Seed), nil)
	require.NoError(t, err)
	assert.Equal(t, rfc8032PubKey, hex.EncodeToString(pubKey))
	assert.Equal(t, rfc8032Sig, hex.EncodeToString(sig))
	assert.True(t, signatures.VerifyEd25519(pubKey, nil, sig))
	assert.False(t, signatures.VerifyEd25519(pubKey, []byte("x"), sig))
}

func TestSignEd25519Extended(t *testing.T) {
	// Expanding a seed with SHA-512 gives the extended key that signs identically
	seed := test.DecodeHexString(rfc8032Seed)
	extended := sha512.Sum512(seed)
	msg := []byte("extended key message")

	pubKey, sig, err := signatures.SignEd25519(extended[:], msg)
	require.NoError(t, err)
	assert.Equal(t, rfc8032PubKey, hex.EncodeToString(pubKey))
	assert.Equal(t, ed25519.Sign(ed25519.NewKeyFromSeed(seed), msg), sig)
	assert.True(t, signatures.VerifyEd25519(pubKey, msg, sig))
}

func TestSignEd25519BadLength(t *testing.T) {
	_, _, err := signatures.SignEd25519(make([]byte, 31), nil)
	assert.ErrorIs(t, err, signatures.ErrInvalidKeyLength)
	_, err = signatures.Ed25519PublicKey(make([]byte, 33))
	assert.ErrorIs(t, err, signatures.ErrInvalidKeyLength)
}

func TestSignEcdsa(t *testing.T) {
	key, err := signatures.GenerateKey()
	require.NoError(t, err)
	msg := []byte("hello")
	pubKey, sig, err := signatures.SignEcdsa(key, msg)
	require.NoError(t, err)
	assert.Len(t, pubKey, 33)
	assert.True(t, signatures.VerifyEcdsa(pubKey, msg, sig))
	assert.False(t, signatures.VerifyEcdsa(pubKey, []byte("other"), sig))
	// RFC 6979 nonces make the signature deterministic
	_, sig2, err := signatures.SignEcdsa(key, msg)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)
}

func TestSignSchnorr(t *testing.T) {
	key, err := signatures.GenerateKey()
	require.NoError(t, err)
	msg := []byte("hello")
	pubKey, sig, err := signatures.SignSchnorr(key, msg)
	require.NoError(t, err)
	assert.Len(t, pubKey, 32)
	assert.Len(t, sig, 64)
	assert.True(t, signatures.VerifySchnorr(pubKey, msg, sig))
	assert.False(t, signatures.VerifySchnorr(pubKey, []byte("other"), sig))
}

func TestSecp256k1InvalidKeys(t *testing.T) {
	testDefs := []struct {
		name     string
		key      []byte
		expected error
	}{
		{name: "Short", key: make([]byte, 16), expected: signatures.ErrInvalidKeyLength},
		{name: "Zero", key: make([]byte, 32), expected: signatures.ErrInvalidKey},
		{
			name:     "Overflow",
			key:      test.DecodeHexString("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
			expected: signatures.ErrInvalidKey,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, _, err := signatures.SignEcdsa(testDef.key, nil)
			assert.ErrorIs(t, err, testDef.expected)
			_, _, err = signatures.SignSchnorr(testDef.key, nil)
			assert.ErrorIs(t, err, testDef.expected)
		})
	}
}

func TestSignAll(t *testing.T) {
	result, err := signatures.Sign(test.DecodeHexString(rfc8032Seed), []byte("msg"))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Ed25519Signature)
	assert.NotEmpty(t, result.EcdsaPublicKey)
	assert.NotEmpty(t, result.EcdsaSignature)
	assert.NotEmpty(t, result.SchnorrPublicKey)
	assert.NotEmpty(t, result.SchnorrSignature)
}

func TestSignAllExtendedKey(t *testing.T) {
	result, err := signatures.Sign(make([]byte, 64), []byte("msg"))
	require.Error(t, err)
	assert.NotEmpty(t, result.Ed25519Signature)
	assert.Empty(t, result.EcdsaSignature)
	assert.Empty(t, result.SchnorrSignature)
	assert.ErrorIs(t, err, signatures.ErrInvalidKeyLength)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.WrappedErrors(), 2)
}
