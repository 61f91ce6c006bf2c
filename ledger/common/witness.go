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

package common

import (
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
)

const (
	VkeySize      = 32
	SignatureSize = 64
	ChainCodeSize = 32
)

type VkeyWitness struct {
	cbor.StructAsArray
	Vkey      []byte
	Signature []byte
}

func (w *VkeyWitness) UnmarshalCBOR(data []byte) error {
	type tVkeyWitness VkeyWitness
	var tmp tVkeyWitness
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	if len(tmp.Vkey) != VkeySize {
		return fmt.Errorf("invalid vkey length: %d", len(tmp.Vkey))
	}
	if len(tmp.Signature) != SignatureSize {
		return fmt.Errorf("invalid signature length: %d", len(tmp.Signature))
	}
	*w = VkeyWitness(tmp)
	return nil
}

type BootstrapWitness struct {
	cbor.StructAsArray
	PublicKey  []byte
	Signature  []byte
	ChainCode  []byte
	Attributes []byte
}

func (w *BootstrapWitness) UnmarshalCBOR(data []byte) error {
	type tBootstrapWitness BootstrapWitness
	var tmp tBootstrapWitness
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	if len(tmp.PublicKey) != VkeySize {
		return fmt.Errorf("invalid public key length: %d", len(tmp.PublicKey))
	}
	if len(tmp.Signature) != SignatureSize {
		return fmt.Errorf("invalid signature length: %d", len(tmp.Signature))
	}
	if len(tmp.ChainCode) != ChainCodeSize {
		return fmt.Errorf("invalid chain code length: %d", len(tmp.ChainCode))
	}
	*w = BootstrapWitness(tmp)
	return nil
}
