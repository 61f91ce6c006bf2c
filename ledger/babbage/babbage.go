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

package babbage

import (
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/blinklabs-io/workbench/ledger/alonzo"
	"github.com/blinklabs-io/workbench/ledger/common"
)

const (
	EraIdBabbage   = 5
	EraNameBabbage = "Babbage"
)

var EraBabbage = common.Era{
	Id:   EraIdBabbage,
	Name: EraNameBabbage,
}

func init() {
	common.RegisterEra(EraBabbage)
}

// Body keys 0-9, 11 and 13-18
var babbageBodyKeys = append(
	append(common.KeyRange(0, 9), 11),
	common.KeyRange(13, 18)...,
)

type BabbageTransactionBody struct {
	common.TransactionBodyBase
	TxInputs                cbor.ArraySet[common.ShelleyTransactionInput] `cbor:"0,keyasint"`
	TxOutputs               []BabbageTransactionOutput                    `cbor:"1,keyasint"`
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
	TxCollateralReturn      *BabbageTransactionOutput                     `cbor:"16,keyasint,omitempty"`
	TxTotalCollateral       uint64                                        `cbor:"17,keyasint,omitempty"`
	TxReferenceInputs       cbor.ArraySet[common.ShelleyTransactionInput] `cbor:"18,keyasint,omitempty"`
}

func (b *BabbageTransactionBody) UnmarshalCBOR(cborData []byte) error {
	if err := common.CheckMapKeys(
		cborData,
		babbageBodyKeys,
		common.RequiredTransactionBodyKeys,
	); err != nil {
		return err
	}
	type tBabbageTransactionBody BabbageTransactionBody
	var tmp tBabbageTransactionBody
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	// Babbage did not add any certificate types
	if err := common.CheckCertificateTypes(tmp.TxCertificates, alonzo.CertificateAllowed); err != nil {
		return err
	}
	*b = BabbageTransactionBody(tmp)
	b.SetCbor(cborData)
	return nil
}

func (b *BabbageTransactionBody) Inputs() []common.TransactionInput {
	return common.InputsToInterface(b.TxInputs)
}

func (b *BabbageTransactionBody) Outputs() []common.TransactionOutput {
	return common.OutputsToInterface(b.TxOutputs)
}

func (b *BabbageTransactionBody) Fee() uint64 {
	return b.TxFee
}

func (b *BabbageTransactionBody) ReferenceInputs() []common.TransactionInput {
	return common.InputsToInterface(b.TxReferenceInputs)
}

const (
	DatumOptionTypeHash = 0
	DatumOptionTypeData = 1
)

type BabbageTransactionOutputDatumOption struct {
	hash *common.DatumHash
	data cbor.RawMessage
}

func (d *BabbageTransactionOutputDatumOption) UnmarshalCBOR(data []byte) error {
	datumOptionType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	switch datumOptionType {
	case DatumOptionTypeHash:
		var tmpDatumHash struct {
			cbor.StructAsArray
			Type int
			Hash common.DatumHash
		}
		if _, err := cbor.Decode(data, &tmpDatumHash); err != nil {
			return err
		}
		d.hash = &(tmpDatumHash.Hash)
	case DatumOptionTypeData:
		var tmpDatumData struct {
			cbor.StructAsArray
			Type     int
			DataCbor cbor.WrappedCbor
		}
		if _, err := cbor.Decode(data, &tmpDatumData); err != nil {
			return err
		}
		d.data = cbor.RawMessage(tmpDatumData.DataCbor.Bytes())
	default:
		return fmt.Errorf("unsupported datum option type: %d", datumOptionType)
	}
	return nil
}

// Hash returns the datum hash, or nil for an inline datum
func (d *BabbageTransactionOutputDatumOption) Hash() *common.DatumHash {
	return d.hash
}

// Data returns the inline datum CBOR, or nil for a datum hash
func (d *BabbageTransactionOutputDatumOption) Data() cbor.RawMessage {
	return d.data
}

// BabbageTransactionOutput accepts both the legacy array output and the map output
// introduced in Babbage
type BabbageTransactionOutput struct {
	cbor.DecodeStoreCbor
	OutputAddress common.Address                       `cbor:"0,keyasint"`
	OutputAmount  common.Value                         `cbor:"1,keyasint"`
	DatumOption   *BabbageTransactionOutputDatumOption `cbor:"2,keyasint,omitempty"`
	ScriptRef     *cbor.WrappedCbor                    `cbor:"3,keyasint,omitempty"`
	legacyOutput  bool
}

func (o *BabbageTransactionOutput) UnmarshalCBOR(cborData []byte) error {
	majorType, err := cbor.MajorType(cborData)
	if err != nil {
		return err
	}
	switch majorType {
	case cbor.CborTypeArray:
		var tmpOutput alonzo.AlonzoTransactionOutput
		if _, err := cbor.Decode(cborData, &tmpOutput); err != nil {
			return err
		}
		o.OutputAddress = tmpOutput.OutputAddress
		o.OutputAmount = tmpOutput.OutputAmount
		o.DatumOption = nil
		if tmpOutput.OutputDatumHash != nil {
			o.DatumOption = &BabbageTransactionOutputDatumOption{
				hash: tmpOutput.OutputDatumHash,
			}
		}
		o.legacyOutput = true
	case cbor.CborTypeMap:
		if err := common.CheckMapKeys(
			cborData,
			common.KeyRange(0, 3),
			[]uint64{0, 1},
		); err != nil {
			return err
		}
		if err := cbor.DecodeGeneric(cborData, o); err != nil {
			return err
		}
		o.legacyOutput = false
	default:
		return fmt.Errorf(
			"unexpected CBOR major type for output: 0x%x",
			majorType,
		)
	}
	o.SetCbor(cborData)
	return nil
}

func (o BabbageTransactionOutput) Address() common.Address {
	return o.OutputAddress
}

func (o BabbageTransactionOutput) Amount() uint64 {
	return o.OutputAmount.Coin
}

func (o BabbageTransactionOutput) Assets() common.MultiAsset[uint64] {
	return o.OutputAmount.Assets
}

// Legacy reports whether the output used the pre-Babbage array form
func (o BabbageTransactionOutput) Legacy() bool {
	return o.legacyOutput
}

type BabbageTransactionWitnessSet struct {
	cbor.DecodeStoreCbor
	VkeyWitnesses      cbor.ArraySet[common.VkeyWitness]      `cbor:"0,keyasint,omitempty"`
	WsNativeScripts    []cbor.RawMessage                      `cbor:"1,keyasint,omitempty"`
	BootstrapWitnesses cbor.ArraySet[common.BootstrapWitness] `cbor:"2,keyasint,omitempty"`
	WsPlutusV1Scripts  [][]byte                               `cbor:"3,keyasint,omitempty"`
	WsPlutusData       []cbor.RawMessage                      `cbor:"4,keyasint,omitempty"`
	WsRedeemers        []cbor.RawMessage                      `cbor:"5,keyasint,omitempty"`
	WsPlutusV2Scripts  [][]byte                               `cbor:"6,keyasint,omitempty"`
}

func (w *BabbageTransactionWitnessSet) UnmarshalCBOR(cborData []byte) error {
	type tBabbageTransactionWitnessSet BabbageTransactionWitnessSet
	var tmp tBabbageTransactionWitnessSet
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	*w = BabbageTransactionWitnessSet(tmp)
	w.SetCbor(cborData)
	return nil
}

type BabbageTransaction struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Body       BabbageTransactionBody
	WitnessSet BabbageTransactionWitnessSet
	TxIsValid  bool
	TxMetadata *common.AuxiliaryData
}

func (t *BabbageTransaction) UnmarshalCBOR(cborData []byte) error {
	type tBabbageTransaction BabbageTransaction
	var tmp tBabbageTransaction
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	*t = BabbageTransaction(tmp)
	t.SetCbor(cborData)
	return nil
}

func (t BabbageTransaction) Hash() common.Blake2b256 {
	return t.Body.Hash()
}

func (t BabbageTransaction) Inputs() []common.TransactionInput {
	return t.Body.Inputs()
}

func (t BabbageTransaction) Outputs() []common.TransactionOutput {
	return t.Body.Outputs()
}

func (t BabbageTransaction) Fee() uint64 {
	return t.Body.Fee()
}

func (t BabbageTransaction) IsValid() bool {
	return t.TxIsValid
}

func (t BabbageTransaction) Metadata() *common.AuxiliaryData {
	return t.TxMetadata
}

func NewBabbageTransactionFromCbor(data []byte) (*BabbageTransaction, error) {
	var babbageTx BabbageTransaction
	if err := cbor.DecodeFull(data, &babbageTx); err != nil {
		return nil, fmt.Errorf("decode Babbage transaction error: %w", err)
	}
	return &babbageTx, nil
}
