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
	"sync"
	"time"

	"github.com/blinklabs-io/workbench/ledger"
)

// TxItem represents one decode request as it moves through the pipeline.
// It is thread-safe and tracks the result of each stage.
type TxItem struct {
	// Immutable fields (set at construction, never modified)
	rawCbor        []byte
	hexText        string
	isHex          bool
	sequenceNumber uint64
	receivedAt     time.Time

	// Mutable fields protected by mutex
	mu sync.RWMutex

	// Decode stage results
	tx             *ledger.MultiEraTransaction
	decodeError    error
	decodeDuration time.Duration

	// Latest stage results
	applied    bool
	superseded bool
}

// NewTxItem creates a TxItem for raw transaction bytes. The slice is copied so the
// caller can reuse it.
func NewTxItem(rawCbor []byte, seq uint64) *TxItem {
	cbor := make([]byte, len(rawCbor))
	copy(cbor, rawCbor)
	return &TxItem{
		rawCbor:        cbor,
		sequenceNumber: seq,
		receivedAt:     time.Now(),
	}
}

// NewHexTxItem creates a TxItem for user-entered hex text. The text is hex-decoded by
// the decode stage, so hex errors are reported like any other decode result.
func NewHexTxItem(text string, seq uint64) *TxItem {
	return &TxItem{
		hexText:        text,
		isHex:          true,
		sequenceNumber: seq,
		receivedAt:     time.Now(),
	}
}

// RawCbor returns the raw transaction bytes. It is nil for hex items.
// The returned slice should not be modified.
func (i *TxItem) RawCbor() []byte {
	return i.rawCbor
}

func (i *TxItem) HexText() string {
	return i.hexText
}

// IsHex returns true if the item was submitted as hex text
func (i *TxItem) IsHex() bool {
	return i.isHex
}

func (i *TxItem) SequenceNumber() uint64 {
	return i.sequenceNumber
}

// ReceivedAt returns the time when this item was submitted.
func (i *TxItem) ReceivedAt() time.Time {
	return i.receivedAt
}

// Transaction returns the decoded transaction, or nil if not yet decoded or decode failed.
func (i *TxItem) Transaction() *ledger.MultiEraTransaction {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tx
}

func (i *TxItem) SetTransaction(tx *ledger.MultiEraTransaction, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tx = tx
	i.decodeError = nil
	i.decodeDuration = duration
}

// DecodeError returns the decode error, if any.
func (i *TxItem) DecodeError() error {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.decodeError
}

func (i *TxItem) SetDecodeError(err error, duration time.Duration) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tx = nil
	i.decodeError = err
	i.decodeDuration = duration
}

// DecodeDuration returns the time spent in the decode stage.
func (i *TxItem) DecodeDuration() time.Duration {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.decodeDuration
}

// IsDecoded returns true if the transaction has been successfully decoded.
func (i *TxItem) IsDecoded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tx != nil
}

func (i *TxItem) SetApplied() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.applied = true
	i.superseded = false
}

// IsApplied returns true if the item's result was written to the latest slot.
func (i *TxItem) IsApplied() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.applied
}

func (i *TxItem) SetSuperseded() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.applied = false
	i.superseded = true
}

// IsSuperseded returns true if a newer submission existed when the item finished decoding.
func (i *TxItem) IsSuperseded() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.superseded
}

// Result returns a snapshot of the decode outcome
func (i *TxItem) Result() *Result {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return &Result{
		SequenceNumber: i.sequenceNumber,
		Transaction:    i.tx,
		Err:            i.decodeError,
		DecodeDuration: i.decodeDuration,
	}
}

// TotalDuration returns the total processing time from submission to now.
func (i *TxItem) TotalDuration() time.Duration {
	return time.Since(i.receivedAt)
}

// Result is the outcome of one decode request. Exactly one of Transaction and Err is set.
type Result struct {
	SequenceNumber uint64
	Transaction    *ledger.MultiEraTransaction
	Err            error
	DecodeDuration time.Duration
}
