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
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blinklabs-io/workbench/ledger"
)

// ErrPipelineStopped is returned when trying to submit to a stopped pipeline.
var ErrPipelineStopped = errors.New("pipeline is stopped")

// ErrPipelineNotStarted is returned when trying to use a pipeline that hasn't been started.
var ErrPipelineNotStarted = errors.New("pipeline not started")

// DecodePipeline decodes transactions on a worker pool and keeps the result of the most
// recent submission. Every submission gets a sequence number; results that come back
// after a newer submission was made are dropped instead of applied.
type DecodePipeline struct {
	config PipelineConfig
	logger *slog.Logger

	// Stages
	decodeStage *DecodeStage
	latestStage *LatestStage

	// Worker pool and runner
	decodePool   *StageWorkerPool
	latestRunner *LatestStageRunner

	// Channels
	submitChan  chan *TxItem
	decodedChan chan *TxItem

	// Metrics
	metrics *PipelineMetrics

	// State
	sequenceCounter atomic.Uint64
	latestAccepted  atomic.Uint64 // highest sequence number that reached the queue
	ctx             context.Context
	cancel          context.CancelFunc
	started         atomic.Bool
	stopped         atomic.Bool
	wg              sync.WaitGroup
	mu              sync.Mutex   // protects Start/Stop
	submitMu        sync.RWMutex // protects Submit against concurrent Stop
}

// NewDecodePipeline creates a new DecodePipeline using functional options.
//
// Example:
//
//	p := NewDecodePipeline(
//	    WithDecodeWorkers(4),
//	    WithApplyFunc(func(result *Result) { ... }),
//	)
func NewDecodePipeline(opts ...PipelineOption) *DecodePipeline {
	config := DefaultPipelineConfig()
	for _, opt := range opts {
		opt(&config)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := &DecodePipeline{
		config:  config,
		logger:  logger,
		metrics: NewPipelineMetrics(),
	}
	p.latestStage = NewLatestStage(p.LatestSequence, config.ApplyFunc, logger)
	return p
}

// Start starts the pipeline processing.
func (p *DecodePipeline) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped.Load() {
		return ErrPipelineStopped
	}

	if p.started.Load() {
		return nil // Already started
	}

	// Create cancellable context
	p.ctx, p.cancel = context.WithCancel(ctx)

	// Create channels
	bufSize := p.config.BufferSize
	p.submitChan = make(chan *TxItem, bufSize)
	p.decodedChan = make(chan *TxItem, bufSize)

	p.decodeStage = NewDecodeStage(
		ledger.NewDecoder(ledger.WithDecodeOrder(p.config.DecodeOrder...)),
	)
	p.decodePool = NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:         p.decodeStage,
		NumWorkers:    p.config.DecodeWorkers,
		Input:         p.submitChan,
		Output:        p.decodedChan,
		RecordMetrics: DecodeMetricsRecorder(p.metrics),
	})
	p.latestRunner = NewLatestStageRunner(p.latestStage, p.decodedChan)
	p.latestRunner.SetMetrics(p.metrics)

	// Note: p.ctx is derived from the passed ctx via context.WithCancel above
	p.decodePool.Start(p.ctx)   //nolint:contextcheck
	p.latestRunner.Start(p.ctx) //nolint:contextcheck

	p.wg.Add(1)
	go p.metricsCollector()

	p.started.Store(true)
	p.logger.Debug(
		"decode pipeline started",
		"component", "pipeline",
		"workers", p.config.DecodeWorkers,
	)
	return nil
}

// Submit submits raw transaction bytes for decoding and returns the sequence number
// assigned to them. This method is safe to call concurrently with Stop().
func (p *DecodePipeline) Submit(ctx context.Context, rawCbor []byte) (uint64, error) {
	return p.submit(ctx, func(seq uint64) *TxItem {
		return NewTxItem(rawCbor, seq)
	})
}

// SubmitHex submits hex text for decoding and returns the sequence number assigned to it.
func (p *DecodePipeline) SubmitHex(ctx context.Context, text string) (uint64, error) {
	return p.submit(ctx, func(seq uint64) *TxItem {
		return NewHexTxItem(text, seq)
	})
}

func (p *DecodePipeline) submit(ctx context.Context, newItem func(uint64) *TxItem) (uint64, error) {
	if !p.started.Load() {
		return 0, ErrPipelineNotStarted
	}

	// RLock allows concurrent submits while preventing races with Stop(), which
	// closes submitChan
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.stopped.Load() {
		return 0, ErrPipelineStopped
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// Sequence numbers start at 1 so that 0 can mean "nothing submitted". A number whose
	// send fails is skipped, it never becomes the latest accepted submission
	item := newItem(p.sequenceCounter.Add(1))

	select {
	case p.submitChan <- item:
		p.markAccepted(item.SequenceNumber())
		p.metrics.RecordSubmit()
		return item.SequenceNumber(), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-p.ctx.Done():
		return 0, ErrPipelineStopped
	}
}

// markAccepted raises the latest accepted sequence number to seq. Concurrent submits can
// finish their sends out of order
func (p *DecodePipeline) markAccepted(seq uint64) {
	for {
		current := p.latestAccepted.Load()
		if seq <= current || p.latestAccepted.CompareAndSwap(current, seq) {
			return
		}
	}
}

// LatestSequence returns the highest sequence number of a submission that was accepted
// into the pipeline. Submissions that failed are not counted.
func (p *DecodePipeline) LatestSequence() uint64 {
	return p.latestAccepted.Load()
}

// Latest returns the most recently applied result, or nil if nothing has been applied.
func (p *DecodePipeline) Latest() *Result {
	return p.latestStage.Latest()
}

// Stop gracefully stops the pipeline. Items still in flight are discarded.
func (p *DecodePipeline) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started.Load() || p.stopped.Load() {
		return nil
	}

	// Cancel context FIRST to unblock any Submit() calls waiting on channel send.
	p.cancel()

	p.submitMu.Lock()
	p.stopped.Store(true)
	close(p.submitChan)
	p.submitMu.Unlock()

	// Wait for decode workers to finish
	p.decodePool.Stop()
	close(p.decodedChan)

	p.latestRunner.Stop()

	// Wait for metrics collector
	p.wg.Wait()

	p.logger.Debug("decode pipeline stopped", "component", "pipeline")
	return nil
}

// Stats returns the current pipeline statistics.
func (p *DecodePipeline) Stats() PipelineStats {
	return p.metrics.Stats()
}

// PendingCount returns the number of submitted items that haven't reached the latest stage yet.
func (p *DecodePipeline) PendingCount() int {
	if !p.started.Load() {
		return 0
	}
	// Completed can briefly run ahead of Submitted, which is recorded after the send
	submitted := p.metrics.Stats().Submitted
	completed := p.metrics.Completed()
	if completed >= submitted {
		return 0
	}
	return int(submitted - completed)
}

// WaitForDrain blocks until all currently submitted items have been processed
// or the context is cancelled.
func (p *DecodePipeline) WaitForDrain(ctx context.Context) error {
	if !p.started.Load() {
		return ErrPipelineNotStarted
	}

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		if p.PendingCount() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// metricsCollector samples the queue depth.
func (p *DecodePipeline) metricsCollector() {
	defer p.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.metrics.UpdateQueueDepth(len(p.submitChan) + len(p.decodedChan))
		}
	}
}
