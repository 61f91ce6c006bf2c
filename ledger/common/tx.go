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
	"errors"
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
)

const maxAssetNameLength = 32

// Transaction is implemented by the transaction type of every era
type Transaction interface {
	Hash() Blake2b256
	Fee() uint64
	Inputs() []TransactionInput
	Outputs() []TransactionOutput
	Cbor() []byte
}

type TransactionInput interface {
	Id() Blake2b256
	Index() uint32
	String() string
}

type TransactionOutput interface {
	Address() Address
	Amount() uint64
	Assets() MultiAsset[uint64]
}

// ShelleyTransactionInput is the [txid, index] input used by every era after Byron
type ShelleyTransactionInput struct {
	cbor.StructAsArray
	TxId        Blake2b256
	OutputIndex uint32
}

func NewShelleyTransactionInput(txId Blake2b256, index uint32) ShelleyTransactionInput {
	return ShelleyTransactionInput{
		TxId:        txId,
		OutputIndex: index,
	}
}

func (i ShelleyTransactionInput) Id() Blake2b256 {
	return i.TxId
}

func (i ShelleyTransactionInput) Index() uint32 {
	return i.OutputIndex
}

func (i ShelleyTransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId.String(), i.OutputIndex)
}

// InputsToInterface converts a slice of concrete inputs to the TransactionInput interface
func InputsToInterface[T TransactionInput](inputs []T) []TransactionInput {
	ret := make([]TransactionInput, 0, len(inputs))
	for _, input := range inputs {
		ret = append(ret, input)
	}
	return ret
}

// OutputsToInterface converts a slice of concrete outputs to the TransactionOutput interface
func OutputsToInterface[T TransactionOutput](outputs []T) []TransactionOutput {
	ret := make([]TransactionOutput, 0, len(outputs))
	for _, output := range outputs {
		ret = append(ret, output)
	}
	return ret
}

type MultiAssetAmount interface {
	~uint64 | ~int64
}

// MultiAsset maps policy IDs to asset names and amounts. Outputs use unsigned amounts,
// while minting allows negative amounts for burns
type MultiAsset[T MultiAssetAmount] map[PolicyId]map[cbor.ByteString]T

func (m *MultiAsset[T]) UnmarshalCBOR(data []byte) error {
	tmp := map[PolicyId]map[cbor.ByteString]T{}
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	for policyId, assets := range tmp {
		for assetName := range assets {
			if len(assetName.Bytes()) > maxAssetNameLength {
				return fmt.Errorf(
					"asset name too long for policy %s: %d bytes",
					policyId.String(),
					len(assetName.Bytes()),
				)
			}
		}
	}
	*m = MultiAsset[T](tmp)
	return nil
}

// Count returns the total number of distinct assets across all policies
func (m MultiAsset[T]) Count() int {
	ret := 0
	for _, assets := range m {
		ret += len(assets)
	}
	return ret
}

// Value is either a plain coin amount or [coin, multiasset]
type Value struct {
	Coin   uint64
	Assets MultiAsset[uint64]
}

func (v *Value) UnmarshalCBOR(data []byte) error {
	majorType, err := cbor.MajorType(data)
	if err != nil {
		return err
	}
	switch majorType {
	case cbor.CborTypeUint:
		var coin uint64
		if _, err := cbor.Decode(data, &coin); err != nil {
			return err
		}
		v.Coin = coin
		v.Assets = nil
	case cbor.CborTypeArray:
		var tmp struct {
			cbor.StructAsArray
			Coin   uint64
			Assets MultiAsset[uint64]
		}
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		v.Coin = tmp.Coin
		v.Assets = tmp.Assets
	default:
		return fmt.Errorf("unexpected CBOR major type for value: 0x%x", majorType)
	}
	return nil
}

func (v Value) MarshalCBOR() ([]byte, error) {
	if len(v.Assets) == 0 {
		return cbor.Encode(v.Coin)
	}
	return cbor.Encode([]any{v.Coin, v.Assets})
}

// Certificate keeps the certificate type and its original CBOR. The set of valid
// types depends on the era
type Certificate struct {
	cbor.DecodeStoreCbor
	Type int
}

func (c *Certificate) UnmarshalCBOR(data []byte) error {
	certType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return fmt.Errorf("failed to decode certificate type: %w", err)
	}
	c.Type = certType
	c.SetCbor(data)
	return nil
}

var ErrUnsupportedCertificate = errors.New("unsupported certificate type")

// CheckCertificateTypes returns an error for the first certificate whose type is not allowed
func CheckCertificateTypes(certs []Certificate, allowed func(int) bool) error {
	for idx, cert := range certs {
		if !allowed(cert.Type) {
			return fmt.Errorf(
				"%w: certificate %d has type %d",
				ErrUnsupportedCertificate,
				idx,
				cert.Type,
			)
		}
	}
	return nil
}

// ProtocolParameterUpdate is the pre-Conway update proposal: a map of genesis key hash
// to proposed parameters, and the epoch the update applies in
type ProtocolParameterUpdate struct {
	cbor.StructAsArray
	ProtocolParamUpdates map[Blake2b224]cbor.RawMessage
	Epoch                uint64
}

// AuxiliaryData holds transaction metadata in any of its historical shapes: a plain
// metadata map, [metadata, scripts], or the tag 259 map used since Alonzo
type AuxiliaryData struct {
	cbor.DecodeStoreCbor
	metadata map[uint64]cbor.RawMessage
}

func (a *AuxiliaryData) UnmarshalCBOR(data []byte) error {
	majorType, err := cbor.MajorType(data)
	if err != nil {
		return err
	}
	switch majorType {
	case cbor.CborTypeMap:
		if _, err := cbor.Decode(data, &a.metadata); err != nil {
			return fmt.Errorf("invalid metadata: %w", err)
		}
	case cbor.CborTypeArray:
		var tmp struct {
			cbor.StructAsArray
			Metadata map[uint64]cbor.RawMessage
			Scripts  []cbor.RawMessage
		}
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return fmt.Errorf("invalid auxiliary data: %w", err)
		}
		a.metadata = tmp.Metadata
	case cbor.CborTypeTag:
		var tmpTag cbor.RawTag
		if _, err := cbor.Decode(data, &tmpTag); err != nil {
			return err
		}
		if tmpTag.Number != cbor.CborTagMap {
			return fmt.Errorf("unexpected auxiliary data tag %d", tmpTag.Number)
		}
		var tmp struct {
			Metadata      map[uint64]cbor.RawMessage `cbor:"0,keyasint,omitempty"`
			NativeScripts []cbor.RawMessage          `cbor:"1,keyasint,omitempty"`
			PlutusV1      []cbor.RawMessage          `cbor:"2,keyasint,omitempty"`
			PlutusV2      []cbor.RawMessage          `cbor:"3,keyasint,omitempty"`
			PlutusV3      []cbor.RawMessage          `cbor:"4,keyasint,omitempty"`
		}
		if _, err := cbor.Decode(tmpTag.Content, &tmp); err != nil {
			return fmt.Errorf("invalid auxiliary data: %w", err)
		}
		a.metadata = tmp.Metadata
	default:
		return fmt.Errorf(
			"unexpected CBOR major type for auxiliary data: 0x%x",
			majorType,
		)
	}
	a.SetCbor(data)
	return nil
}

// Metadata returns the raw metadata values keyed by label
func (a *AuxiliaryData) Metadata() map[uint64]cbor.RawMessage {
	return a.metadata
}
