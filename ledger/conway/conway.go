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

package conway

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/blinklabs-io/workbench/ledger/babbage"
	"github.com/blinklabs-io/workbench/ledger/common"
)

const (
	EraIdConway   = 6
	EraNameConway = "Conway"
)

var EraConway = common.Era{
	Id:   EraIdConway,
	Name: EraNameConway,
}

func init() {
	common.RegisterEra(EraConway)
}

// Body keys 0-5, 7-9, 11 and 13-22. The update proposal (6) was replaced by governance
// proposals
var conwayBodyKeys = append(
	append(
		append(common.KeyRange(0, 5), common.KeyRange(7, 9)...),
		11,
	),
	common.KeyRange(13, 22)...,
)

// CertificateAllowed reports whether a certificate type exists in Conway. Genesis key
// delegation (5) and MIR (6) were removed, and types 7-18 cover the new registration,
// delegation and governance certificates
func CertificateAllowed(certType int) bool {
	switch {
	case certType >= 0 && certType <= 4:
		return true
	case certType >= 7 && certType <= 18:
		return true
	}
	return false
}

var ErrEmptyInputSet = errors.New("transaction has no inputs")

// ConwayVotingProcedures keeps the voter to votes map as raw CBOR
type ConwayVotingProcedures struct {
	cbor.DecodeStoreCbor
}

func (v *ConwayVotingProcedures) UnmarshalCBOR(cborData []byte) error {
	majorType, err := cbor.MajorType(cborData)
	if err != nil {
		return err
	}
	if majorType != cbor.CborTypeMap {
		return fmt.Errorf(
			"expected CBOR map for voting procedures, found major type 0x%x",
			majorType,
		)
	}
	v.SetCbor(cborData)
	return nil
}

type ConwayTransactionBody struct {
	common.TransactionBodyBase
	TxInputs                cbor.SetType[common.ShelleyTransactionInput] `cbor:"0,keyasint"`
	TxOutputs               []babbage.BabbageTransactionOutput           `cbor:"1,keyasint"`
	TxFee                   uint64                                       `cbor:"2,keyasint"`
	Ttl                     uint64                                       `cbor:"3,keyasint,omitempty"`
	TxCertificates          cbor.SetType[common.Certificate]             `cbor:"4,keyasint,omitempty"`
	TxWithdrawals           map[cbor.ByteString]uint64                   `cbor:"5,keyasint,omitempty"`
	TxAuxDataHash           *common.Blake2b256                           `cbor:"7,keyasint,omitempty"`
	TxValidityIntervalStart uint64                                       `cbor:"8,keyasint,omitempty"`
	TxMint                  common.MultiAsset[int64]                     `cbor:"9,keyasint,omitempty"`
	TxScriptDataHash        *common.Blake2b256                           `cbor:"11,keyasint,omitempty"`
	TxCollateral            cbor.SetType[common.ShelleyTransactionInput] `cbor:"13,keyasint,omitempty"`
	TxRequiredSigners       cbor.SetType[common.Blake2b224]              `cbor:"14,keyasint,omitempty"`
	NetworkId               *uint8                                       `cbor:"15,keyasint,omitempty"`
	TxCollateralReturn      *babbage.BabbageTransactionOutput            `cbor:"16,keyasint,omitempty"`
	TxTotalCollateral       uint64                                       `cbor:"17,keyasint,omitempty"`
	TxReferenceInputs       cbor.SetType[common.ShelleyTransactionInput] `cbor:"18,keyasint,omitempty"`
	TxVotingProcedures      *ConwayVotingProcedures                      `cbor:"19,keyasint,omitempty"`
	TxProposalProcedures    cbor.SetType[cbor.RawMessage]                `cbor:"20,keyasint,omitempty"`
	TxCurrentTreasuryValue  uint64                                       `cbor:"21,keyasint,omitempty"`
	TxDonation              *uint64                                      `cbor:"22,keyasint,omitempty"`
}

func (b *ConwayTransactionBody) UnmarshalCBOR(cborData []byte) error {
	if err := common.CheckMapKeys(
		cborData,
		conwayBodyKeys,
		common.RequiredTransactionBodyKeys,
	); err != nil {
		return err
	}
	type tConwayTransactionBody ConwayTransactionBody
	var tmp tConwayTransactionBody
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	if tmp.TxInputs.Len() == 0 {
		return ErrEmptyInputSet
	}
	if err := common.CheckCertificateTypes(tmp.TxCertificates.Items(), CertificateAllowed); err != nil {
		return err
	}
	// The donation is a positive coin when present
	if tmp.TxDonation != nil && *tmp.TxDonation == 0 {
		return errors.New("treasury donation must be positive")
	}
	*b = ConwayTransactionBody(tmp)
	b.SetCbor(cborData)
	return nil
}

func (b *ConwayTransactionBody) Inputs() []common.TransactionInput {
	return common.InputsToInterface(b.TxInputs.Items())
}

func (b *ConwayTransactionBody) Outputs() []common.TransactionOutput {
	return common.OutputsToInterface(b.TxOutputs)
}

func (b *ConwayTransactionBody) Fee() uint64 {
	return b.TxFee
}

func (b *ConwayTransactionBody) Certificates() []common.Certificate {
	return b.TxCertificates.Items()
}

func (b *ConwayTransactionBody) ReferenceInputs() []common.TransactionInput {
	return common.InputsToInterface(b.TxReferenceInputs.Items())
}

type ConwayTransactionWitnessSet struct {
	cbor.DecodeStoreCbor
	VkeyWitnesses      cbor.SetType[common.VkeyWitness]      `cbor:"0,keyasint,omitempty"`
	WsNativeScripts    cbor.SetType[cbor.RawMessage]         `cbor:"1,keyasint,omitempty"`
	BootstrapWitnesses cbor.SetType[common.BootstrapWitness] `cbor:"2,keyasint,omitempty"`
	WsPlutusV1Scripts  cbor.SetType[[]byte]                  `cbor:"3,keyasint,omitempty"`
	WsPlutusData       cbor.SetType[cbor.RawMessage]         `cbor:"4,keyasint,omitempty"`
	// Redeemers may be the legacy array or the map keyed by [tag, index]
	WsRedeemers       cbor.RawMessage      `cbor:"5,keyasint,omitempty"`
	WsPlutusV2Scripts cbor.SetType[[]byte] `cbor:"6,keyasint,omitempty"`
	WsPlutusV3Scripts cbor.SetType[[]byte] `cbor:"7,keyasint,omitempty"`
}

func (w *ConwayTransactionWitnessSet) UnmarshalCBOR(cborData []byte) error {
	type tConwayTransactionWitnessSet ConwayTransactionWitnessSet
	var tmp tConwayTransactionWitnessSet
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	*w = ConwayTransactionWitnessSet(tmp)
	w.SetCbor(cborData)
	return nil
}

func (w ConwayTransactionWitnessSet) Vkey() []common.VkeyWitness {
	return w.VkeyWitnesses.Items()
}

type ConwayTransaction struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	Body       ConwayTransactionBody
	WitnessSet ConwayTransactionWitnessSet
	TxIsValid  bool
	TxMetadata *common.AuxiliaryData
}

func (t *ConwayTransaction) UnmarshalCBOR(cborData []byte) error {
	type tConwayTransaction ConwayTransaction
	var tmp tConwayTransaction
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	*t = ConwayTransaction(tmp)
	t.SetCbor(cborData)
	return nil
}

func (t ConwayTransaction) Hash() common.Blake2b256 {
	return t.Body.Hash()
}

func (t ConwayTransaction) Inputs() []common.TransactionInput {
	return t.Body.Inputs()
}

func (t ConwayTransaction) Outputs() []common.TransactionOutput {
	return t.Body.Outputs()
}

func (t ConwayTransaction) Fee() uint64 {
	return t.Body.Fee()
}

func (t ConwayTransaction) IsValid() bool {
	return t.TxIsValid
}

func (t ConwayTransaction) Metadata() *common.AuxiliaryData {
	return t.TxMetadata
}

func NewConwayTransactionFromCbor(data []byte) (*ConwayTransaction, error) {
	var conwayTx ConwayTransaction
	if err := cbor.DecodeFull(data, &conwayTx); err != nil {
		return nil, fmt.Errorf("decode Conway transaction error: %w", err)
	}
	return &conwayTx, nil
}
