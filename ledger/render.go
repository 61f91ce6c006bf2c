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
	"fmt"

	"github.com/blinklabs-io/workbench/cbor"
	"github.com/blinklabs-io/workbench/ledger/common"

	"github.com/samber/lo"
)

// Render returns the display lines for a decoded transaction. The first line is the
// variant label. Conway transactions get their inputs and output addresses listed, while
// the other variants are shown as a raw CBOR diagnostic dump. A transaction with no
// populated variant renders as its label alone
func Render(tx *MultiEraTransaction) []string {
	lines := []string{tx.Kind().String()}
	if tx.Transaction() == nil {
		return lines
	}
	switch tx.Kind() {
	case TxKindConway:
		inputs := tx.Conway().Body.Inputs()
		lines = append(lines, fmt.Sprintf("total inputs = %d", len(inputs)))
		for _, input := range inputs {
			lines = append(
				lines,
				fmt.Sprintf("index = %d", input.Index()),
				fmt.Sprintf("hash  = %s", input.Id().String()),
			)
		}
		outputs := tx.Conway().Body.Outputs()
		lines = append(lines, fmt.Sprintf("total outputs = %d", len(outputs)))
		// Legacy and post-Alonzo outputs render the same way
		lines = append(
			lines,
			lo.Map(outputs, func(output common.TransactionOutput, _ int) string {
				return "address = " + output.Address().String()
			})...,
		)
		return lines
	case TxKindAlonzoCompatible:
		lines = append(lines, "Era: "+tx.EraName())
	}
	return append(lines, rawDump(tx.Cbor()))
}

func rawDump(data []byte) string {
	diag, err := cbor.Diagnose(data)
	if err != nil {
		return fmt.Sprintf("raw dump unavailable: %s", err)
	}
	return diag
}
