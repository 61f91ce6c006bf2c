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
	"time"
)

// Stage represents a processing stage in the pipeline.
type Stage interface {
	// Name returns the name of the stage for logging and metrics.
	Name() string
	// Process processes a single item. Returns an error if processing fails.
	Process(ctx context.Context, item *TxItem) error
}

// StageFunc adapts a function to the Stage interface.
type StageFunc struct {
	name string
	fn   func(ctx context.Context, item *TxItem) error
}

func NewStageFunc(name string, fn func(ctx context.Context, item *TxItem) error) *StageFunc {
	return &StageFunc{
		name: name,
		fn:   fn,
	}
}

func (s *StageFunc) Name() string {
	return s.name
}

func (s *StageFunc) Process(ctx context.Context, item *TxItem) error {
	return s.fn(ctx, item)
}

// Pipeline is implemented by DecodePipeline.
type Pipeline interface {
	// Start starts the pipeline processing.
	Start(ctx context.Context) error
	// Submit submits raw transaction bytes and returns the assigned sequence number.
	Submit(ctx context.Context, rawCbor []byte) (uint64, error)
	// SubmitHex submits hex text and returns the assigned sequence number.
	SubmitHex(ctx context.Context, text string) (uint64, error)
	// Latest returns the most recently applied result, or nil.
	Latest() *Result
	// Stop gracefully stops the pipeline.
	Stop() error
	// WaitForDrain waits for all submitted items to be processed.
	WaitForDrain(ctx context.Context) error
	// Stats returns the current pipeline statistics.
	Stats() PipelineStats
}

// PipelineStats contains statistics about pipeline processing.
type PipelineStats struct {
	// Submitted is the total number of items submitted to the pipeline.
	Submitted uint64
	// Decoded is the total number of items successfully decoded.
	Decoded uint64
	// DecodeErrors is the total number of items that failed to decode.
	DecodeErrors uint64
	// Applied is the total number of results written to the latest slot.
	Applied uint64
	// Superseded is the total number of results dropped because a newer submission existed.
	Superseded uint64

	// CurrentQueueDepth is the current number of items waiting in the pipeline.
	CurrentQueueDepth int
	// PeakQueueDepth is the maximum queue depth observed.
	PeakQueueDepth int

	// LastApplyTime is the time the last result was applied.
	LastApplyTime time.Time
	// StartTime is when the pipeline was started.
	StartTime time.Time
}
