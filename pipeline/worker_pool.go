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
	"sync/atomic"

	"github.com/sourcegraph/conc"
)

// MetricsRecorder is a function that records metrics for a processed item.
type MetricsRecorder func(item *TxItem, err error)

// StageWorkerPool runs a stage with a fixed number of workers. Items are forwarded to
// the output even when the stage fails, so later stages see every submission.
type StageWorkerPool struct {
	stage         Stage
	numWorkers    int
	input         <-chan *TxItem
	output        chan<- *TxItem
	errors        chan<- error
	recordMetrics MetricsRecorder
	wg            conc.WaitGroup
	started       atomic.Bool
}

// StageWorkerPoolConfig holds configuration for creating a StageWorkerPool.
type StageWorkerPoolConfig struct {
	// Stage is the processing stage to use (required, panics if nil).
	Stage Stage
	// NumWorkers is the number of parallel workers; defaults to 1 if <= 0.
	NumWorkers int
	// Input is the channel to receive items from.
	Input <-chan *TxItem
	// Output is the channel to send processed items to.
	Output chan<- *TxItem
	// Errors is the channel to send errors to; may be nil.
	Errors chan<- error
	// RecordMetrics is called after processing to record metrics.
	// If nil, no metrics are recorded.
	RecordMetrics MetricsRecorder
}

func NewStageWorkerPool(config StageWorkerPoolConfig) *StageWorkerPool {
	if config.Stage == nil {
		panic(ErrNilStage)
	}
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &StageWorkerPool{
		stage:         config.Stage,
		numWorkers:    numWorkers,
		input:         config.Input,
		output:        config.Output,
		errors:        config.Errors,
		recordMetrics: config.RecordMetrics,
	}
}

// Start starts the worker goroutines.
func (p *StageWorkerPool) Start(ctx context.Context) {
	if p.started.Swap(true) {
		return // Already started
	}
	for range p.numWorkers {
		p.wg.Go(func() {
			p.worker(ctx)
		})
	}
}

// Stop waits for all workers to finish. A panic in a worker is re-raised here.
func (p *StageWorkerPool) Stop() {
	p.wg.Wait()
}

func (p *StageWorkerPool) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-p.input:
			if !ok {
				return
			}

			err := p.stage.Process(ctx, item)

			// Record metrics only for actual processing attempts (not context cancellation)
			if p.recordMetrics != nil &&
				!errors.Is(err, context.Canceled) &&
				!errors.Is(err, context.DeadlineExceeded) {
				p.recordMetrics(item, err)
			}

			if err != nil && p.errors != nil {
				select {
				case p.errors <- err:
				case <-ctx.Done():
					return
				}
			}

			// Forward to next stage (even on error, since a failed decode is still a result)
			select {
			case p.output <- item:
			case <-ctx.Done():
				return
			}
		}
	}
}

// DecodeMetricsRecorder returns a MetricsRecorder for decode stage metrics.
func DecodeMetricsRecorder(metrics *PipelineMetrics) MetricsRecorder {
	if metrics == nil {
		return nil
	}
	return func(item *TxItem, err error) {
		metrics.RecordDecode(item.DecodeDuration(), err)
	}
}
