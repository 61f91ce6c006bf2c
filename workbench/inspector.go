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

package workbench

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/lo"

	"github.com/blinklabs-io/workbench/ledger"
	"github.com/blinklabs-io/workbench/pipeline"
)

const nothingToDecode = "nothing to decode"

// Inspector decodes hex transaction text in the background. Each edit is submitted to
// a decode pipeline and only the result of the most recent edit is ever shown
type Inspector struct {
	pipeline *pipeline.DecodePipeline
	mu       sync.Mutex
	text     string
}

// NewInspector starts the decode pipeline backing the inspector. The pipeline runs until
// Close is called or ctx is done
func NewInspector(ctx context.Context, opts ...pipeline.PipelineOption) (*Inspector, error) {
	p := pipeline.NewDecodePipeline(opts...)
	if err := p.Start(ctx); err != nil {
		return nil, err
	}
	return &Inspector{pipeline: p}, nil
}

func (i *Inspector) Name() string {
	return ToolKindInspector.String()
}

func (i *Inspector) Update(msg Message) error {
	switch m := msg.(type) {
	case TextChanged:
		i.mu.Lock()
		i.text = m.Text
		i.mu.Unlock()
		_, err := i.pipeline.SubmitHex(context.Background(), m.Text)
		return err
	default:
		return unsupported(i, msg)
	}
}

// Text returns the last submitted text
func (i *Inspector) Text() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.text
}

// Result returns the latest applied decode result, or nil before the first one
func (i *Inspector) Result() *pipeline.Result {
	return i.pipeline.Latest()
}

// Transaction returns the currently decoded transaction, or nil if the latest text did
// not decode
func (i *Inspector) Transaction() *ledger.MultiEraTransaction {
	result := i.pipeline.Latest()
	if result == nil || result.Err != nil {
		return nil
	}
	return result.Transaction
}

// Err returns the decode error of the latest result
func (i *Inspector) Err() error {
	result := i.pipeline.Latest()
	if result == nil {
		return nil
	}
	return result.Err
}

// Wait blocks until the most recent submission has been decoded and applied
func (i *Inspector) Wait(ctx context.Context) error {
	return i.pipeline.WaitForDrain(ctx)
}

func (i *Inspector) Stats() pipeline.PipelineStats {
	return i.pipeline.Stats()
}

func (i *Inspector) View() View {
	view := View{Title: i.Name()}
	result := i.pipeline.Latest()
	if result == nil || result.Err != nil || result.Transaction == nil {
		view.Lines = []Line{{Value: nothingToDecode}}
		if result != nil && result.Err != nil {
			view.Warning = decodeErrorKind(result.Err)
		}
		return view
	}
	view.Lines = lo.Map(ledger.Render(result.Transaction), func(s string, _ int) Line {
		return Line{Value: s}
	})
	return view
}

func (i *Inspector) Close() error {
	return i.pipeline.Stop()
}

func decodeErrorKind(err error) string {
	switch {
	case errors.Is(err, ledger.ErrHexDecode):
		return ledger.ErrHexDecode.Error()
	case errors.Is(err, ledger.ErrUnknownEncoding):
		return ledger.ErrUnknownEncoding.Error()
	default:
		return err.Error()
	}
}
