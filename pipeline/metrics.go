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
	"sync/atomic"
	"time"
)

// PipelineMetrics tracks metrics for the entire pipeline.
type PipelineMetrics struct {
	// Counters (atomic)
	submitted    atomic.Uint64
	decoded      atomic.Uint64
	decodeErrors atomic.Uint64
	applied      atomic.Uint64
	superseded   atomic.Uint64

	// Queue tracking (requires mutex)
	mu                sync.RWMutex
	currentQueueDepth int
	peakQueueDepth    int

	// Timing
	lastApplyTime time.Time
	startTime     time.Time
}

// NewPipelineMetrics creates a new PipelineMetrics.
func NewPipelineMetrics() *PipelineMetrics {
	return &PipelineMetrics{
		startTime: time.Now(),
	}
}

// RecordSubmit increments the submitted counter.
func (m *PipelineMetrics) RecordSubmit() {
	m.submitted.Add(1)
}

// RecordDecode records a decode result.
func (m *PipelineMetrics) RecordDecode(duration time.Duration, err error) {
	if err != nil {
		m.decodeErrors.Add(1)
	} else {
		m.decoded.Add(1)
	}
}

// RecordApply records a result written to the latest slot.
func (m *PipelineMetrics) RecordApply() {
	m.applied.Add(1)
	m.mu.Lock()
	m.lastApplyTime = time.Now()
	m.mu.Unlock()
}

// RecordSuperseded records a result dropped in favor of a newer submission.
func (m *PipelineMetrics) RecordSuperseded() {
	m.superseded.Add(1)
}

// Completed returns the number of items that have left the pipeline, applied or not.
func (m *PipelineMetrics) Completed() uint64 {
	return m.applied.Load() + m.superseded.Load()
}

// UpdateQueueDepth updates the current queue depth and tracks the peak.
func (m *PipelineMetrics) UpdateQueueDepth(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentQueueDepth = depth
	if depth > m.peakQueueDepth {
		m.peakQueueDepth = depth
	}
}

// Stats returns a snapshot of the current metrics.
func (m *PipelineMetrics) Stats() PipelineStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return PipelineStats{
		Submitted:         m.submitted.Load(),
		Decoded:           m.decoded.Load(),
		DecodeErrors:      m.decodeErrors.Load(),
		Applied:           m.applied.Load(),
		Superseded:        m.superseded.Load(),
		CurrentQueueDepth: m.currentQueueDepth,
		PeakQueueDepth:    m.peakQueueDepth,
		LastApplyTime:     m.lastApplyTime,
		StartTime:         m.startTime,
	}
}

// Reset resets all metrics.
func (m *PipelineMetrics) Reset() {
	m.submitted.Store(0)
	m.decoded.Store(0)
	m.decodeErrors.Store(0)
	m.applied.Store(0)
	m.superseded.Store(0)

	m.mu.Lock()
	m.currentQueueDepth = 0
	m.peakQueueDepth = 0
	m.lastApplyTime = time.Time{}
	m.startTime = time.Now()
	m.mu.Unlock()
}
