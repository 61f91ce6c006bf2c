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

// Package alonzo decodes transactions from the Alonzo family of eras. The Shelley,
// Allegra and Mary transaction shapes are accepted as well, since they are structural
// subsets of the Alonzo one
package alonzo

import (
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/blinklabs-io/workbench/ledger/common"
)

const (
	EraIdShelley   = 1
	EraNameShelley = "Shelley"
	EraIdAllegra   = 2
	EraNameAllegra = "Allegra"
	EraIdMary      = 3
	EraNameMary    = "Mary"
	EraIdAlonzo    = 4
	EraNameAlonzo  = "Alonzo"

	// Highest certificate type defined before Conway (genesis key delegation and MIR)
	MaxCertificateType = 6
)

var (
	EraShelley = common.Era{Id: EraIdShelley, Name: EraNameShelley}
	EraAllegra = common.Era{Id: EraIdAllegra, Name: EraNameAllegra}
	EraMary    = common.Era{Id: EraIdMary, Name: EraNameMary}
	EraAlonzo  = common.Era{Id: EraIdAlonzo, Name: EraNameAlonzo}
)

func init() {
	common.RegisterEra(EraShelley)
	common.RegisterEra(EraAllegra)
	common.RegisterEra(EraMary)
	common.RegisterEra(EraAlonzo)
}

// Body keys 0-9, 11 and 13-15
var alonzoBodyKeys = append(
	append(common.KeyRange(0, 9), 11),
	common.KeyRange(13, 15)...,
)

// CertificateAllowed reports whether a certificate type exists in this era family
func CertificateAllowed(certType int) bool {
	return certType >= 0 && certType <= MaxCertificateType
}

type AlonzoTransactionBody struct {
	common.TransactionBodyBase
	TxInputs                cbor.ArraySet[common.ShelleyTransactionInput] `cbor:"0,keyasint"`
	TxOutputs               []AlonzoTransactionOutput                     `cbor:"1,keyasint"`
	TxFee                   uint64                                        `cbor:"2,keyasint"`
	Ttl                     uint64                                        `cbor:"3,keyasint,omitempty"`
	TxCertificates          []common.Certificate                          `cbor:"4,keyasint,omitempty"`
	TxWithdrawals           map[cbor.ByteString]uint64                    `cbor:"5,keyasint,omitempty"`
	Update                  *common.ProtocolParameterUpdate               `cbor:"6,keyasint,omitempty"`
	TxAuxDataHash           *common.Blake2b256                            `cbor:"7,keyasint,omitempty"`
	TxValidityIntervalStart uint64                                        `cbor:"8,keyasint,omitempty"`
	TxMint                  common.MultiAsset[int64]                      `cbor:"9,keyasint,omitempty"`
	TxScriptDataHash        *common.Blake2b256                            `cbor:"11,keyasint,omitempty"`
	TxCollateral            cbor.ArraySet[common.ShelleyTransactionInput] `cbor:"13,keyasint,omitempty"`
	TxRequiredSigners       cbor.ArraySet[common.Blake2b224]              `cbor:"14,keyasint,omitempty"`
	NetworkId               *uint8                                        `cbor:"15,keyasint,omitempty"`
}

func (b *AlonzoTransactionBody) UnmarshalCBOR(cborData []byte) error {
	if err := common.CheckMapKeys(
		cborData,
		alonzoBodyKeys,
		common.RequiredTransactionBodyKeys,
	); err != nil {
		return err
	}
	type tAlonzoTransactionBody AlonzoTransactionBody
	var tmp tAlonzoTransactionBody
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	if err := common.CheckCertificateTypes(tmp.TxCertificates, CertificateAllowed); err != nil {
		return err
	}
	*b = AlonzoTransactionBody(tmp)
	b.SetCbor(cborData)
	return nil
}

func (b *AlonzoTransactionBody) Inputs() []common.TransactionInput {
	return common.InputsToInterface(b.TxInputs)
}

func (b *AlonzoTransactionBody) Outputs() []common.TransactionOutput {
	return common.OutputsToInterface(b.TxOutputs)
}

func (b *AlonzoTransactionBody) Fee() uint64 {
	return b.TxFee
}

func (b *AlonzoTransactionBody) TTL() uint64 {
	return b.Ttl
}

func (b *AlonzoTransactionBody) Certificates() []common.Certificate {
	return b.TxCertificates
}

// AlonzoTransactionOutput is the array form of an output: [address, value] with an
// optional datum hash
type AlonzoTransactionOutput struct {
	cbor.DecodeStoreCbor
	OutputAddress   common.Address
	OutputAmount    common.Value
	OutputDatumHash *common.DatumHash
}

func (o *AlonzoTransactionOutput) UnmarshalCBOR(cborData []byte) error {
	majorType, err := cbor.MajorType(cborData)
	if err != nil {
		return err
	}
	if majorType != cbor.CborTypeArray {
		return fmt.Errorf(
			"expected CBOR array for output, found major type 0x%x",
			majorType,
		)
	}
	listLen, err := cbor.ListLength(cborData)
	if err != nil {
		return err
	}
	switch listLen {
	case 2:
		var tmp struct {
			cbor.StructAsArray
			Address common.Address
			Amount  common.Value
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		o.OutputAddress = tmp.Address
		o.OutputAmount = tmp.Amount
		o.OutputDatumHash = nil
	case 3:
		var tmp struct {
			cbor.StructAsArray
			Address   common.Address
			Amount    common.Value
			DatumHash common.DatumHash
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		o.OutputAddress = tmp.Address
		o.OutputAmount = tmp.Amount
		o.OutputDatumHash = &tmp.DatumHash
	default:
		return fmt.Errorf("unexpected output length: %d", listLen)
	}
	o.SetCbor(cborData)
	return nil
}

func (o AlonzoTransactionOutput) Address() common.Address {
	return o.OutputAddress
}

func (o AlonzoTransactionOutput) Amount() uint64 {
	return o.OutputAmount.Coin
}

func (o AlonzoTransactionOutput) Assets() common.MultiAsset[uint64] {
	return o.OutputAmount.Assets
}

func (o AlonzoTransactionOutput) DatumHash() *common.DatumHash {
	return o.OutputDatumHash
}

type AlonzoTransactionWitnessSet struct {
	cbor.DecodeStoreCbor
	VkeyWitnesses      cbor.ArraySet[common.VkeyWitness]      `cbor:"0,keyasint,omitempty"`
	WsNativeScripts    []cbor.RawMessage                      `cbor:"1,keyasint,omitempty"`
	BootstrapWitnesses cbor.ArraySet[common.BootstrapWitness] `cbor:"2,keyasint,omitempty"`
	WsPlutusV1Scripts  [][]byte                               `cbor:"3,keyasint,omitempty"`
	WsPlutusData       []cbor.RawMessage                      `cbor:"4,keyasint,omitempty"`
	WsRedeemers        []cbor.RawMessage                      `cbor:"5,keyasint,omitempty"`
}

func (w *AlonzoTransactionWitnessSet) UnmarshalCBOR(cborData []byte) error {
	type tAlonzoTransactionWitnessSet AlonzoTransactionWitnessSet
	var tmp tAlonzoTransactionWitnessSet
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	*w = AlonzoTransactionWitnessSet(tmp)
	w.SetCbor(cborData)
	return nil
}

func (w AlonzoTransactionWitnessSet) Vkey() []common.VkeyWitness {
	return w.VkeyWitnesses
}

func (w AlonzoTransactionWitnessSet) Bootstrap() []common.BootstrapWitness {
	return w.BootstrapWitnesses
}

// AlonzoTransaction is [body, witnesses, is_valid, auxiliary data]. The 3 element form
// without is_valid is the Shelley through Mary layout
type AlonzoTransaction struct {
	cbor.DecodeStoreCbor
	Body       AlonzoTransactionBody
	WitnessSet AlonzoTransactionWitnessSet
	TxIsValid  bool
	TxMetadata *common.AuxiliaryData
	preAlonzo  bool
}

func (t *AlonzoTransaction) UnmarshalCBOR(cborData []byte) error {
	majorType, err := cbor.MajorType(cborData)
	if err != nil {
		return err
	}
	if majorType != cbor.CborTypeArray {
		return fmt.Errorf(
			"expected CBOR array for transaction, found major type 0x%x",
			majorType,
		)
	}
	listLen, err := cbor.ListLength(cborData)
	if err != nil {
		return err
	}
	switch listLen {
	case 3:
		var tmp struct {
			cbor.StructAsArray
			Body       AlonzoTransactionBody
			WitnessSet AlonzoTransactionWitnessSet
			TxMetadata *common.AuxiliaryData
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		t.Body = tmp.Body
		t.WitnessSet = tmp.WitnessSet
		t.TxMetadata = tmp.TxMetadata
		// Script validation did not exist yet
		t.TxIsValid = true
		t.preAlonzo = true
	case 4:
		var tmp struct {
			cbor.StructAsArray
			Body       AlonzoTransactionBody
			WitnessSet AlonzoTransactionWitnessSet
			TxIsValid  bool
			TxMetadata *common.AuxiliaryData
		}
		if _, err := cbor.Decode(cborData, &tmp); err != nil {
			return err
		}
		t.Body = tmp.Body
		t.WitnessSet = tmp.WitnessSet
		t.TxIsValid = tmp.TxIsValid
		t.TxMetadata = tmp.TxMetadata
		t.preAlonzo = false
	default:
		return fmt.Errorf("unexpected transaction length: %d", listLen)
	}
	t.SetCbor(cborData)
	return nil
}

func (t AlonzoTransaction) Hash() common.Blake2b256 {
	return t.Body.Hash()
}

func (t AlonzoTransaction) Inputs() []common.TransactionInput {
	return t.Body.Inputs()
}

func (t AlonzoTransaction) Outputs() []common.TransactionOutput {
	return t.Body.Outputs()
}

func (t AlonzoTransaction) Fee() uint64 {
	return t.Body.Fee()
}

func (t AlonzoTransaction) IsValid() bool {
	return t.TxIsValid
}

func (t AlonzoTransaction) Metadata() *common.AuxiliaryData {
	return t.TxMetadata
}

// PreAlonzo reports whether the transaction used the 3 element Shelley through Mary layout
func (t AlonzoTransaction) PreAlonzo() bool {
	return t.preAlonzo
}

// NewAlonzoTransactionFromCbor decodes a complete Alonzo family transaction. Trailing
// data after the transaction is an error
func NewAlonzoTransactionFromCbor(data []byte) (*AlonzoTransaction, error) {
	var alonzoTx AlonzoTransaction
	if err := cbor.DecodeFull(data, &alonzoTx); err != nil {
		return nil, fmt.Errorf("decode Alonzo transaction error: %w", err)
	}
	return &alonzoTx, nil
}
