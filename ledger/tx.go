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

	"github.com/blinklabs-io/workbench/ledger/alonzo"
	"github.com/blinklabs-io/workbench/ledger/babbage"
	"github.com/blinklabs-io/workbench/ledger/byron"
	"github.com/blinklabs-io/workbench/ledger/common"
	"github.com/blinklabs-io/workbench/ledger/conway"
)

// TxKind identifies the populated variant of a MultiEraTransaction
type TxKind int

const (
	TxKindConway TxKind = iota + 1
	TxKindBabbage
	TxKindAlonzoCompatible
	TxKindByron
)

func (k TxKind) String() string {
	switch k {
	case TxKindConway:
		return "Conway"
	case TxKindBabbage:
		return "Babbage"
	case TxKindAlonzoCompatible:
		return "Alonzo Compatible"
	case TxKindByron:
		return "Byron"
	default:
		return fmt.Sprintf("TxKind(%d)", int(k))
	}
}

// MultiEraTransaction holds exactly one decoded transaction variant. Values are only
// built by the decoder and are not modified afterward
type MultiEraTransaction struct {
	kind    TxKind
	era     common.Era
	conway  *conway.ConwayTransaction
	babbage *babbage.BabbageTransaction
	alonzo  *alonzo.AlonzoTransaction
	byron   *byron.ByronTransaction
}

func newConwayVariant(tx *conway.ConwayTransaction) *MultiEraTransaction {
	return &MultiEraTransaction{kind: TxKindConway, era: conway.EraConway, conway: tx}
}

func newBabbageVariant(tx *babbage.BabbageTransaction) *MultiEraTransaction {
	return &MultiEraTransaction{kind: TxKindBabbage, era: babbage.EraBabbage, babbage: tx}
}

// The Alonzo family schema can't tell Shelley, Allegra, Mary and Alonzo apart, so the era
// tag is always Alonzo
func newAlonzoVariant(tx *alonzo.AlonzoTransaction) *MultiEraTransaction {
	return &MultiEraTransaction{kind: TxKindAlonzoCompatible, era: alonzo.EraAlonzo, alonzo: tx}
}

func newByronVariant(tx *byron.ByronTransaction) *MultiEraTransaction {
	return &MultiEraTransaction{kind: TxKindByron, era: byron.EraByron, byron: tx}
}

func (t *MultiEraTransaction) Kind() TxKind {
	return t.kind
}

// Era returns the era tag for the variant
func (t *MultiEraTransaction) Era() common.Era {
	return t.era
}

func (t *MultiEraTransaction) EraName() string {
	return t.era.Name
}

// Conway returns the Conway transaction, or nil for other variants
func (t *MultiEraTransaction) Conway() *conway.ConwayTransaction {
	return t.conway
}

// Babbage returns the Babbage transaction, or nil for other variants
func (t *MultiEraTransaction) Babbage() *babbage.BabbageTransaction {
	return t.babbage
}

// Alonzo returns the Alonzo family transaction, or nil for other variants
func (t *MultiEraTransaction) Alonzo() *alonzo.AlonzoTransaction {
	return t.alonzo
}

// Byron returns the Byron transaction, or nil for other variants
func (t *MultiEraTransaction) Byron() *byron.ByronTransaction {
	return t.byron
}

// Transaction returns the populated variant through the era-independent interface
func (t *MultiEraTransaction) Transaction() common.Transaction {
	switch t.kind {
	case TxKindConway:
		return t.conway
	case TxKindBabbage:
		return t.babbage
	case TxKindAlonzoCompatible:
		return t.alonzo
	case TxKindByron:
		return t.byron
	default:
		return nil
	}
}

// Hash returns the transaction id, or the zero hash when no variant is populated
func (t *MultiEraTransaction) Hash() common.Blake2b256 {
	inner := t.Transaction()
	if inner == nil {
		return common.Blake2b256{}
	}
	return inner.Hash()
}

// Cbor returns the original transaction bytes, or nil when no variant is populated
func (t *MultiEraTransaction) Cbor() []byte {
	inner := t.Transaction()
	if inner == nil {
		return nil
	}
	return inner.Cbor()
}
