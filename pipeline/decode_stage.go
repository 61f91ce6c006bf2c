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

package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/blinklabs-io/workbench/ledger"
)

// ErrNilStage is returned when a nil stage is passed to a worker pool.
var ErrNilStage = errors.New("pipeline: nil stage")

// DecodeStage runs the multi-era decoder on each item
type DecodeStage struct {
	decoder *ledger.Decoder
}

// NewDecodeStage creates a DecodeStage. A nil decoder uses the default decode order
func NewDecodeStage(decoder *ledger.Decoder) *DecodeStage {
	if decoder == nil {
		decoder = ledger.NewDecoder()
	}
	return &DecodeStage{
		decoder: decoder,
	}
}

func (s *DecodeStage) Name() string {
	return "decode"
}

// Process decodes the item and stores the transaction or the error on it.
func (s *DecodeStage) Process(ctx context.Context, item *TxItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	start := time.Now()
	var tx *ledger.MultiEraTransaction
	var err error
	if item.IsHex() {
		tx, err = s.decoder.DecodeHex(item.HexText())
	} else {
		tx, err = s.decoder.Decode(item.RawCbor())
	}
	duration := time.Since(start)

	if err != nil {
		item.SetDecodeError(err, duration)
		return err
	}

	item.SetTransaction(tx, duration)
	return nil
}
