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

package byron

import (
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/blinklabs-io/workbench/ledger/common"
)

const (
	EraIdByron   = 0
	EraNameByron = "Byron"

	ByronTransactionInputTypeUtxo = 0
)

var EraByron = common.Era{
	Id:   EraIdByron,
	Name: EraNameByron,
}

func init() {
	common.RegisterEra(EraByron)
}

// ByronTransactionInput is [0, #6.24(bytes .cbor [txid, index])]
type ByronTransactionInput struct {
	cbor.StructAsArray
	TxId        common.Blake2b256
	OutputIndex uint32
}

func (i *ByronTransactionInput) UnmarshalCBOR(data []byte) error {
	id, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	if id != ByronTransactionInputTypeUtxo {
		return fmt.Errorf("unsupported Byron input type: %d", id)
	}
	var tmpData struct {
		cbor.StructAsArray
		Id   int
		Cbor cbor.WrappedCbor
	}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	return cbor.DecodeGeneric(tmpData.Cbor.Bytes(), i)
}

func (i ByronTransactionInput) Id() common.Blake2b256 {
	return i.TxId
}

func (i ByronTransactionInput) Index() uint32 {
	return i.OutputIndex
}

func (i ByronTransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId.String(), i.OutputIndex)
}

type ByronTransactionOutput struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	OutputAddress common.Address
	OutputAmount  uint64
}

func (o *ByronTransactionOutput) UnmarshalCBOR(data []byte) error {
	var tmpData struct {
		cbor.StructAsArray
		Address common.Address
		Amount  uint64
	}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	if !tmpData.Address.IsByron() {
		return fmt.Errorf(
			"%w: Byron output with address type 0b%04b",
			common.ErrInvalidAddress,
			tmpData.Address.Type(),
		)
	}
	o.OutputAddress = tmpData.Address
	o.OutputAmount = tmpData.Amount
	o.SetCbor(data)
	return nil
}

func (o ByronTransactionOutput) Address() common.Address {
	return o.OutputAddress
}

func (o ByronTransactionOutput) Amount() uint64 {
	return o.OutputAmount
}

func (o ByronTransactionOutput) Assets() common.MultiAsset[uint64] {
	return nil
}

// ByronTransaction is [inputs, outputs, attributes]
type ByronTransaction struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	TxInputs   []ByronTransactionInput
	TxOutputs  []ByronTransactionOutput
	Attributes cbor.RawMessage
	witnesses  []cbor.RawMessage
}

func (t *ByronTransaction) UnmarshalCBOR(data []byte) error {
	type tByronTransaction ByronTransaction
	var tmp tByronTransaction
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	majorType, err := cbor.MajorType(tmp.Attributes)
	if err != nil {
		return err
	}
	if majorType != cbor.CborTypeMap {
		return fmt.Errorf(
			"expected CBOR map for Byron transaction attributes, found major type 0x%x",
			majorType,
		)
	}
	*t = ByronTransaction(tmp)
	t.SetCbor(data)
	return nil
}

// Hash returns the transaction ID. Byron has no separate body, so it covers the whole transaction
func (t ByronTransaction) Hash() common.Blake2b256 {
	return common.Blake2b256Hash(t.Cbor())
}

func (t ByronTransaction) Inputs() []common.TransactionInput {
	return common.InputsToInterface(t.TxInputs)
}

func (t ByronTransaction) Outputs() []common.TransactionOutput {
	return common.OutputsToInterface(t.TxOutputs)
}

// Fee always returns 0. The Byron fee is implicit and needs the spent outputs to compute
func (t ByronTransaction) Fee() uint64 {
	return 0
}

// Witnesses returns the raw witnesses when the transaction was decoded from a TxAux
func (t ByronTransaction) Witnesses() []cbor.RawMessage {
	return t.witnesses
}

type byronTxAux struct {
	cbor.StructAsArray
	Tx        ByronTransaction
	Witnesses []cbor.RawMessage
}

// NewByronTransactionFromCbor decodes either a bare Byron transaction or a TxAux
// ([transaction, witnesses]) as it appears in block bodies
func NewByronTransactionFromCbor(data []byte) (*ByronTransaction, error) {
	majorType, err := cbor.MajorType(data)
	if err != nil {
		return nil, fmt.Errorf("decode Byron transaction error: %w", err)
	}
	if majorType != cbor.CborTypeArray {
		return nil, fmt.Errorf(
			"decode Byron transaction error: expected CBOR array, found major type 0x%x",
			majorType,
		)
	}
	listLen, err := cbor.ListLength(data)
	if err != nil {
		return nil, fmt.Errorf("decode Byron transaction error: %w", err)
	}
	switch listLen {
	case 3:
		var byronTx ByronTransaction
		if err := cbor.DecodeFull(data, &byronTx); err != nil {
			return nil, fmt.Errorf("decode Byron transaction error: %w", err)
		}
		return &byronTx, nil
	case 2:
		var txAux byronTxAux
		if err := cbor.DecodeFull(data, &txAux); err != nil {
			return nil, fmt.Errorf("decode Byron transaction error: %w", err)
		}
		txAux.Tx.witnesses = txAux.Witnesses
		return &txAux.Tx, nil
	default:
		return nil, fmt.Errorf(
			"decode Byron transaction error: unexpected list length %d",
			listLen,
		)
	}
}
