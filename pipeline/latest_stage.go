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
	"log/slog"
	"sync"
	"sync/atomic"
)

// ApplyFunc is called with each result written to the latest slot. It runs on the
// latest stage goroutine, so it should not block for long.
type ApplyFunc func(*Result)

// LatestStage keeps a single "latest result" slot. An item is only applied if its
// sequence number is the most recent one accepted at the time it reaches the stage, so a
// slow decode of stale input can never overwrite the result of a newer submission.
//
// Thread-safety: Process must be called from a single goroutine. The
// LatestStageRunner provides this guarantee. Latest may be called from anywhere.
type LatestStage struct {
	applyFunc      ApplyFunc
	latestAccepted func() uint64
	logger         *slog.Logger
	slot           atomic.Pointer[Result]
}

// NewLatestStage creates a LatestStage. latestAccepted must return the highest sequence
// number that was successfully queued, so a failed newer submission never hides an
// accepted one.
func NewLatestStage(latestAccepted func() uint64, applyFunc ApplyFunc, logger *slog.Logger) *LatestStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &LatestStage{
		applyFunc:      applyFunc,
		latestAccepted: latestAccepted,
		logger:         logger,
	}
}

// Name returns the stage name.
func (s *LatestStage) Name() string {
	return "latest"
}

// Process applies the item if it is still the latest submission and marks it
// superseded otherwise. Dropping a stale item is not an error.
func (s *LatestStage) Process(ctx context.Context, item *TxItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	seq := item.SequenceNumber()
	if latest := s.latestAccepted(); seq < latest {
		item.SetSuperseded()
		s.logger.Debug(
			"dropping superseded decode result",
			"component", "pipeline",
			"sequence", seq,
			"latest", latest,
		)
		return nil
	}
	if current := s.slot.Load(); current != nil && current.SequenceNumber >= seq {
		item.SetSuperseded()
		return nil
	}

	result := item.Result()
	s.slot.Store(result)
	item.SetApplied()
	if s.applyFunc != nil {
		s.applyFunc(result)
	}
	return nil
}

// Latest returns the most recently applied result, or nil if nothing has been applied.
func (s *LatestStage) Latest() *Result {
	return s.slot.Load()
}

// LatestStageRunner runs the latest stage as a single goroutine.
type LatestStageRunner struct {
	stage   *LatestStage
	input   <-chan *TxItem
	metrics *PipelineMetrics
	done    chan struct{}
	running bool
	mu      sync.Mutex
}

// NewLatestStageRunner creates a new runner for the latest stage.
func NewLatestStageRunner(stage *LatestStage, input <-chan *TxItem) *LatestStageRunner {
	return &LatestStageRunner{
		stage: stage,
		input: input,
		done:  make(chan struct{}),
	}
}

// SetMetrics sets the metrics collector for the runner.
// Must be called before Start() to avoid data races.
func (r *LatestStageRunner) SetMetrics(metrics *PipelineMetrics) {
	r.metrics = metrics
}

// Start starts the runner.
func (r *LatestStageRunner) Start(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.done = make(chan struct{})
	r.mu.Unlock()

	go r.run(ctx)
}

// Stop waits for the runner to complete. The runner will exit when the context
// passed to Start is cancelled or the input channel is closed. This method blocks
// until completion; it does not signal the runner to stop.
func (r *LatestStageRunner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	done := r.done
	r.mu.Unlock()

	<-done
}

func (r *LatestStageRunner) run(ctx context.Context) {
	defer func() {
		r.mu.Lock()
		r.running = false
		close(r.done)
		r.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-r.input:
			if !ok {
				return
			}
			if err := r.stage.Process(ctx, item); err != nil {
				return
			}
			if r.metrics != nil {
				if item.IsApplied() {
					r.metrics.RecordApply()
				} else {
					r.metrics.RecordSuperseded()
				}
			}
		}
	}
}
