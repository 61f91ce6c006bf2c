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

// Package hashes computes the digests shown by the hash tools as hex strings.
package hashes

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/workbench/ledger/common"
)

const (
	Blake2b224Length = 224
	Blake2b256Length = 256
)

var ErrInvalidLength = errors.New("invalid blake2b length")

// Digests holds every digest of the same input
type Digests struct {
	Blake2b224 string `json:"blake2b_224"`
	Blake2b256 string `json:"blake2b_256"`
	Sha512     string `json:"sha512"`
	Sha256     string `json:"sha256"`
}

func Compute(data []byte) Digests {
	sha512Sum := sha512.Sum512(data)
	sha256Sum := sha256.Sum256(data)
	return Digests{
		Blake2b224: common.Blake2b224Hash(data).String(),
		Blake2b256: common.Blake2b256Hash(data).String(),
		Sha512:     hex.EncodeToString(sha512Sum[:]),
		Sha256:     hex.EncodeToString(sha256Sum[:]),
	}
}

// Blake2b returns the hex digest for a length in bits, either 224 or 256
func Blake2b(data []byte, length int) (string, error) {
	switch length {
	case Blake2b224Length:
		return common.Blake2b224Hash(data).String(), nil
	case Blake2b256Length:
		return common.Blake2b256Hash(data).String(), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
}

// Blake2bHex decodes hex input and hashes it
func Blake2bHex(text string, length int) (string, error) {
	data, err := hex.DecodeString(text)
	if err != nil {
		return "", err
	}
	return Blake2b(data, length)
}
