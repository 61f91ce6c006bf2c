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
	"log/slog"
	"runtime"

	"github.com/blinklabs-io/workbench/ledger"
)

// PipelineConfig holds configuration for a DecodePipeline.
type PipelineConfig struct {
	// DecodeWorkers is the number of parallel decode workers.
	DecodeWorkers int
	// BufferSize is the buffer size for inter-stage channels.
	BufferSize int
	// DecodeOrder is the era schema priority list passed to the decoder.
	DecodeOrder []ledger.TxKind
	// ApplyFunc is called for each result written to the latest slot.
	ApplyFunc ApplyFunc
	// Logger receives debug output about superseded results.
	Logger *slog.Logger
}

// DefaultPipelineConfig returns a PipelineConfig with sensible defaults.
func DefaultPipelineConfig() PipelineConfig {
	decodeWorkers := max(runtime.NumCPU()/4, 2)
	return PipelineConfig{
		DecodeWorkers: decodeWorkers,
		BufferSize:    64,
		DecodeOrder:   ledger.DefaultDecodeOrder(),
	}
}

// PipelineOption is a functional option for configuring a DecodePipeline.
type PipelineOption func(*PipelineConfig)

// WithConfig replaces the entire configuration.
//
// Note: Options applied after WithConfig will still override the config values.
func WithConfig(config PipelineConfig) PipelineOption {
	return func(c *PipelineConfig) {
		*c = config
	}
}

// WithDecodeWorkers sets the number of parallel decode workers.
func WithDecodeWorkers(n int) PipelineOption {
	return func(c *PipelineConfig) {
		if n > 0 {
			c.DecodeWorkers = n
		}
	}
}

// WithBufferSize sets the buffer size for inter-stage channels.
func WithBufferSize(size int) PipelineOption {
	return func(c *PipelineConfig) {
		if size > 0 {
			c.BufferSize = size
		}
	}
}

// WithDecodeOrder sets the era schema priority list.
func WithDecodeOrder(order ...ledger.TxKind) PipelineOption {
	return func(c *PipelineConfig) {
		c.DecodeOrder = order
	}
}

// WithApplyFunc sets the function called for each applied result.
// A nil function is ignored.
func WithApplyFunc(fn ApplyFunc) PipelineOption {
	return func(c *PipelineConfig) {
		if fn != nil {
			c.ApplyFunc = fn
		}
	}
}

// WithLogger specifies the logger. A nil logger falls back to slog.Default()
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(c *PipelineConfig) {
		c.Logger = logger
	}
}
