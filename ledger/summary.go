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

package ledger

import (
	"github.com/blinklabs-io/workbench/ledger/common"

	"github.com/samber/lo"
)

// TransactionSummary is an era-independent view of a decoded transaction, meant for JSON output
type TransactionSummary struct {
	Kind    string          `json:"kind"`
	Era     string          `json:"era"`
	Id      string          `json:"id"`
	Fee     uint64          `json:"fee"`
	Size    int             `json:"size"`
	Inputs  []InputSummary  `json:"inputs"`
	Outputs []OutputSummary `json:"outputs"`
}

type InputSummary struct {
	TxId  string `json:"txId"`
	Index uint32 `json:"index"`
}

type OutputSummary struct {
	Address  string `json:"address"`
	Network  string `json:"network"`
	Lovelace uint64 `json:"lovelace"`
	Assets   int    `json:"assets,omitempty"`
}

// Summarize builds a TransactionSummary. Byron fees are reported as 0 since they are implicit.
// A transaction with no populated variant only reports its kind
func Summarize(tx *MultiEraTransaction) TransactionSummary {
	inner := tx.Transaction()
	if inner == nil {
		return TransactionSummary{
			Kind:    tx.Kind().String(),
			Inputs:  []InputSummary{},
			Outputs: []OutputSummary{},
		}
	}
	return TransactionSummary{
		Kind: tx.Kind().String(),
		Era:  tx.EraName(),
		Id:   inner.Hash().String(),
		Fee:  inner.Fee(),
		Size: len(inner.Cbor()),
		Inputs: lo.Map(inner.Inputs(), func(input common.TransactionInput, _ int) InputSummary {
			return InputSummary{
				TxId:  input.Id().String(),
				Index: input.Index(),
			}
		}),
		Outputs: lo.Map(inner.Outputs(), func(output common.TransactionOutput, _ int) OutputSummary {
			return OutputSummary{
				Address:  output.Address().String(),
				Network:  output.Address().Network().Name,
				Lovelace: output.Amount(),
				Assets:   output.Assets().Count(),
			}
		}),
	}
}
