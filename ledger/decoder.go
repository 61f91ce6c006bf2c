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
	"slices"

	"github.com/blinklabs-io/workbench/ledger/alonzo"
	"github.com/blinklabs-io/workbench/ledger/babbage"
	"github.com/blinklabs-io/workbench/ledger/byron"
	"github.com/blinklabs-io/workbench/ledger/conway"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

var defaultDecodeOrder = []TxKind{
	TxKindConway,
	TxKindBabbage,
	TxKindAlonzoCompatible,
	TxKindByron,
}

// DefaultDecodeOrder returns the priority list used by DecodeTransaction, newest era first
func DefaultDecodeOrder() []TxKind {
	return slices.Clone(defaultDecodeOrder)
}

type decodeFunc func([]byte) (*MultiEraTransaction, error)

var schemas = map[TxKind]decodeFunc{
	TxKindConway: func(data []byte) (*MultiEraTransaction, error) {
		tx, err := conway.NewConwayTransactionFromCbor(data)
		if err != nil {
			return nil, err
		}
		return newConwayVariant(tx), nil
	},
	TxKindBabbage: func(data []byte) (*MultiEraTransaction, error) {
		tx, err := babbage.NewBabbageTransactionFromCbor(data)
		if err != nil {
			return nil, err
		}
		return newBabbageVariant(tx), nil
	},
	TxKindAlonzoCompatible: func(data []byte) (*MultiEraTransaction, error) {
		tx, err := alonzo.NewAlonzoTransactionFromCbor(data)
		if err != nil {
			return nil, err
		}
		return newAlonzoVariant(tx), nil
	},
	TxKindByron: func(data []byte) (*MultiEraTransaction, error) {
		tx, err := byron.NewByronTransactionFromCbor(data)
		if err != nil {
			return nil, err
		}
		return newByronVariant(tx), nil
	},
}

// Decoder tries a list of era schemas in order. The zero value is not usable; use NewDecoder
type Decoder struct {
	order []TxKind
}

type DecoderOptionFunc func(*Decoder)

// WithDecodeOrder replaces the schema priority list. Unknown kinds are dropped and a
// repeated kind keeps only its first position
func WithDecodeOrder(order ...TxKind) DecoderOptionFunc {
	return func(d *Decoder) {
		d.order = lo.Filter(lo.Uniq(order), func(kind TxKind, _ int) bool {
			_, ok := schemas[kind]
			return ok
		})
	}
}

func NewDecoder(opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		order: DefaultDecodeOrder(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Order returns a copy of the schema priority list
func (d *Decoder) Order() []TxKind {
	return slices.Clone(d.order)
}

// Decode returns the first schema in the priority list that structurally accepts data.
// If none do, the error is an *UnknownEncodingError
func (d *Decoder) Decode(data []byte) (*MultiEraTransaction, error) {
	var attempts *multierror.Error
	for _, kind := range d.order {
		decode, ok := schemas[kind]
		if !ok {
			continue
		}
		tx, err := decode(data)
		if err == nil {
			return tx, nil
		}
		attempts = multierror.Append(attempts, fmt.Errorf("%s: %w", kind, err))
	}
	return nil, &UnknownEncodingError{attempts: attempts}
}

var defaultDecoder = NewDecoder()

// DecodeTransaction decodes data using the default priority order
func DecodeTransaction(data []byte) (*MultiEraTransaction, error) {
	return defaultDecoder.Decode(data)
}
