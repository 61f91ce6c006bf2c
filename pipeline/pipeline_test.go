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
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/blinklabs-io/workbench/internal/test"
	"github.com/blinklabs-io/workbench/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func getValidTxCbor() []byte {
	return test.DecodeHexString(test.ConwayTxHex)
}

// getInvalidTxCbor returns bytes that no era schema accepts
func getInvalidTxCbor() []byte {
	return []byte{0x85, 0x00, 0x01, 0x02}
}

// ============================================================================
// TxItem tests
// ============================================================================

func TestTxItem_NewTxItem(t *testing.T) {
	rawCbor := getValidTxCbor()
	item := NewTxItem(rawCbor, 42)

	assert.Equal(t, rawCbor, item.RawCbor())
	assert.Equal(t, uint64(42), item.SequenceNumber())
	assert.False(t, item.IsHex())
	assert.False(t, item.ReceivedAt().IsZero())
	assert.False(t, item.IsDecoded())
	assert.False(t, item.IsApplied())
	assert.False(t, item.IsSuperseded())

	// The item owns a copy of the input
	rawCbor[0] = 0x00
	assert.Equal(t, byte(0x84), item.RawCbor()[0])
}

func TestTxItem_NewHexTxItem(t *testing.T) {
	item := NewHexTxItem(" abcd ", 7)
	assert.True(t, item.IsHex())
	assert.Equal(t, " abcd ", item.HexText())
	assert.Nil(t, item.RawCbor())
	assert.Equal(t, uint64(7), item.SequenceNumber())
}

func TestTxItem_SetTransaction_SetDecodeError(t *testing.T) {
	item := NewTxItem(getValidTxCbor(), 1)
	tx, err := ledger.DecodeTransaction(item.RawCbor())
	require.NoError(t, err)

	item.SetTransaction(tx, 5*time.Millisecond)
	assert.True(t, item.IsDecoded())
	assert.Same(t, tx, item.Transaction())
	assert.NoError(t, item.DecodeError())
	assert.Equal(t, 5*time.Millisecond, item.DecodeDuration())

	decodeErr := errors.New("decode failed")
	item.SetDecodeError(decodeErr, time.Millisecond)
	assert.False(t, item.IsDecoded())
	assert.Nil(t, item.Transaction())
	assert.Equal(t, decodeErr, item.DecodeError())

	result := item.Result()
	assert.Equal(t, uint64(1), result.SequenceNumber)
	assert.Nil(t, result.Transaction)
	assert.Equal(t, decodeErr, result.Err)
}

func TestTxItem_SetApplied_SetSuperseded(t *testing.T) {
	item := NewTxItem(getValidTxCbor(), 1)
	item.SetSuperseded()
	assert.True(t, item.IsSuperseded())
	assert.False(t, item.IsApplied())
	item.SetApplied()
	assert.True(t, item.IsApplied())
	assert.False(t, item.IsSuperseded())
}

func TestTxItem_ThreadSafety(t *testing.T) {
	item := NewTxItem(getValidTxCbor(), 1)
	tx, err := ledger.DecodeTransaction(item.RawCbor())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				item.SetTransaction(tx, time.Millisecond)
			} else {
				item.SetDecodeError(errors.New("test"), time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			_ = item.IsDecoded()
			_ = item.Transaction()
			_ = item.DecodeError()
			_ = item.Result()
		}()
	}
	wg.Wait()
}

// ============================================================================
// DecodeStage tests
// ============================================================================

func TestDecodeStage_Name(t *testing.T) {
	assert.Equal(t, "decode", NewDecodeStage(nil).Name())
}

func TestDecodeStage_Process(t *testing.T) {
	testDefs := []struct {
		name         string
		item         *TxItem
		expectedKind ledger.TxKind
		expectedErr  error
	}{
		{
			name:         "RawConway",
			item:         NewTxItem(getValidTxCbor(), 1),
			expectedKind: ledger.TxKindConway,
		},
		{
			name:         "HexByron",
			item:         NewHexTxItem(test.ByronTxHex+"\n", 1),
			expectedKind: ledger.TxKindByron,
		},
		{
			name:        "UnknownEncoding",
			item:        NewTxItem(getInvalidTxCbor(), 1),
			expectedErr: ledger.ErrUnknownEncoding,
		},
		{
			name:        "Empty",
			item:        NewTxItem(nil, 1),
			expectedErr: ledger.ErrUnknownEncoding,
		},
		{
			name:        "InvalidHex",
			item:        NewHexTxItem("not hex!!", 1),
			expectedErr: ledger.ErrHexDecode,
		},
	}
	stage := NewDecodeStage(nil)
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			err := stage.Process(context.Background(), testDef.item)
			if testDef.expectedErr != nil {
				require.ErrorIs(t, err, testDef.expectedErr)
				assert.False(t, testDef.item.IsDecoded())
				assert.ErrorIs(t, testDef.item.DecodeError(), testDef.expectedErr)
				return
			}
			require.NoError(t, err)
			require.True(t, testDef.item.IsDecoded())
			assert.Equal(t, testDef.expectedKind, testDef.item.Transaction().Kind())
		})
	}
}

func TestDecodeStage_DecodeOrder(t *testing.T) {
	stage := NewDecodeStage(
		ledger.NewDecoder(ledger.WithDecodeOrder(ledger.TxKindAlonzoCompatible, ledger.TxKindBabbage)),
	)
	item := NewHexTxItem(test.BabbageTxHex, 1)
	require.NoError(t, stage.Process(context.Background(), item))
	assert.Equal(t, ledger.TxKindAlonzoCompatible, item.Transaction().Kind())
}

func TestDecodeStage_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	item := NewTxItem(getValidTxCbor(), 1)
	err := NewDecodeStage(nil).Process(ctx, item)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, item.IsDecoded())
}

// ============================================================================
// StageWorkerPool tests
// ============================================================================

func TestStageWorkerPool_NilStagePanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrNilStage, func() {
		NewStageWorkerPool(StageWorkerPoolConfig{})
	})
}

func TestStageWorkerPool_NumWorkersValidation(t *testing.T) {
	for _, numWorkers := range []int{-1, 0, 1, 4} {
		pool := NewStageWorkerPool(StageWorkerPoolConfig{
			Stage:      NewDecodeStage(nil),
			NumWorkers: numWorkers,
		})
		assert.Equal(t, max(numWorkers, 1), pool.numWorkers)
	}
}

func TestStageWorkerPool_ItemsFlowThrough(t *testing.T) {
	defer goleak.VerifyNone(t)

	const numItems = 20
	input := make(chan *TxItem, numItems)
	output := make(chan *TxItem, numItems)
	errs := make(chan error, numItems)
	metrics := NewPipelineMetrics()

	pool := NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:         NewDecodeStage(nil),
		NumWorkers:    4,
		Input:         input,
		Output:        output,
		Errors:        errs,
		RecordMetrics: DecodeMetricsRecorder(metrics),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool.Start(ctx)

	for i := range numItems {
		if i%4 == 0 {
			input <- NewTxItem(getInvalidTxCbor(), uint64(i+1))
		} else {
			input <- NewTxItem(getValidTxCbor(), uint64(i+1))
		}
	}
	close(input)
	pool.Stop()
	close(output)
	close(errs)

	// Failed items are still forwarded
	seen := map[uint64]bool{}
	for item := range output {
		seen[item.SequenceNumber()] = true
	}
	assert.Len(t, seen, numItems)
	var errCount int
	for err := range errs {
		assert.ErrorIs(t, err, ledger.ErrUnknownEncoding)
		errCount++
	}
	assert.Equal(t, numItems/4, errCount)

	stats := metrics.Stats()
	assert.Equal(t, uint64(numItems-numItems/4), stats.Decoded)
	assert.Equal(t, uint64(numItems/4), stats.DecodeErrors)
}

func TestStageWorkerPool_CleanShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	input := make(chan *TxItem)
	output := make(chan *TxItem)
	pool := NewStageWorkerPool(StageWorkerPoolConfig{
		Stage:      NewDecodeStage(nil),
		NumWorkers: 3,
		Input:      input,
		Output:     output,
	})
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	// Starting twice does not add workers
	pool.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker pool did not stop")
	}
}

func TestStageFunc_NameAndProcess(t *testing.T) {
	var called atomic.Bool
	stage := NewStageFunc("custom", func(ctx context.Context, item *TxItem) error {
		called.Store(true)
		return nil
	})
	assert.Equal(t, "custom", stage.Name())
	require.NoError(t, stage.Process(context.Background(), NewTxItem(nil, 1)))
	assert.True(t, called.Load())
}

// ============================================================================
// LatestStage tests
// ============================================================================

func decodedItem(t *testing.T, seq uint64) *TxItem {
	t.Helper()
	item := NewTxItem(getValidTxCbor(), seq)
	require.NoError(t, NewDecodeStage(nil).Process(context.Background(), item))
	return item
}

func TestLatestStage_Name(t *testing.T) {
	assert.Equal(t, "latest", NewLatestStage(func() uint64 { return 0 }, nil, nil).Name())
}

func TestLatestStage_AppliesLatest(t *testing.T) {
	var applied []*Result
	stage := NewLatestStage(
		func() uint64 { return 3 },
		func(result *Result) { applied = append(applied, result) },
		nil,
	)
	assert.Nil(t, stage.Latest())

	item := decodedItem(t, 3)
	require.NoError(t, stage.Process(context.Background(), item))
	assert.True(t, item.IsApplied())
	require.NotNil(t, stage.Latest())
	assert.Equal(t, uint64(3), stage.Latest().SequenceNumber)
	assert.Equal(t, ledger.TxKindConway, stage.Latest().Transaction.Kind())
	require.Len(t, applied, 1)
	assert.Same(t, stage.Latest(), applied[0])
}

func TestLatestStage_DropsSuperseded(t *testing.T) {
	var latestAccepted atomic.Uint64
	var applyCount atomic.Int32
	stage := NewLatestStage(
		latestAccepted.Load,
		func(*Result) { applyCount.Add(1) },
		nil,
	)
	ctx := context.Background()

	// Item 1 finishes after item 2 was submitted
	latestAccepted.Store(2)
	stale := decodedItem(t, 1)
	require.NoError(t, stage.Process(ctx, stale))
	assert.True(t, stale.IsSuperseded())
	assert.Nil(t, stage.Latest())

	current := decodedItem(t, 2)
	require.NoError(t, stage.Process(ctx, current))
	assert.True(t, current.IsApplied())

	// A duplicate or older sequence never replaces the slot
	again := decodedItem(t, 2)
	require.NoError(t, stage.Process(ctx, again))
	assert.True(t, again.IsSuperseded())
	assert.Same(t, current.Transaction(), stage.Latest().Transaction)
	assert.Equal(t, int32(1), applyCount.Load())
}

func TestLatestStage_AppliesDecodeErrors(t *testing.T) {
	stage := NewLatestStage(func() uint64 { return 2 }, nil, nil)
	ctx := context.Background()

	require.NoError(t, stage.Process(ctx, decodedItem(t, 1)))
	failed := NewTxItem(getInvalidTxCbor(), 2)
	_ = NewDecodeStage(nil).Process(ctx, failed)
	require.NoError(t, stage.Process(ctx, failed))

	// A failed decode of the newest input clears the previous transaction
	latest := stage.Latest()
	require.NotNil(t, latest)
	assert.Nil(t, latest.Transaction)
	assert.ErrorIs(t, latest.Err, ledger.ErrUnknownEncoding)
}

func TestLatestStageRunner_OutOfOrderCompletion(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	var appliedOrder []uint64
	stage := NewLatestStage(
		func() uint64 { return 5 },
		func(result *Result) {
			mu.Lock()
			appliedOrder = append(appliedOrder, result.SequenceNumber)
			mu.Unlock()
		},
		nil,
	)
	input := make(chan *TxItem, 5)
	metrics := NewPipelineMetrics()
	runner := NewLatestStageRunner(stage, input)
	runner.SetMetrics(metrics)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runner.Start(ctx)

	// Completion order differs from submission order
	for _, seq := range []uint64{2, 5, 1, 4, 3} {
		input <- decodedItem(t, seq)
	}
	close(input)
	runner.Stop()

	assert.Equal(t, []uint64{5}, appliedOrder)
	assert.Equal(t, uint64(5), stage.Latest().SequenceNumber)
	stats := metrics.Stats()
	assert.Equal(t, uint64(1), stats.Applied)
	assert.Equal(t, uint64(4), stats.Superseded)
	assert.Equal(t, uint64(5), metrics.Completed())
}

// ============================================================================
// DecodePipeline tests
// ============================================================================

func TestDecodePipeline_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewDecodePipeline(WithDecodeWorkers(2))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, p.Start(ctx))
	// Starting twice is a no-op
	require.NoError(t, p.Start(ctx))

	seq, err := p.Submit(ctx, getValidTxCbor())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)

	require.NoError(t, p.Stop())
	// Stopping twice is a no-op
	require.NoError(t, p.Stop())

	_, err = p.Submit(ctx, getValidTxCbor())
	assert.ErrorIs(t, err, ErrPipelineStopped)
	assert.ErrorIs(t, p.Start(ctx), ErrPipelineStopped)
}

func TestDecodePipeline_NotStarted(t *testing.T) {
	p := NewDecodePipeline()
	_, err := p.Submit(context.Background(), getValidTxCbor())
	assert.ErrorIs(t, err, ErrPipelineNotStarted)
	_, err = p.SubmitHex(context.Background(), test.ConwayTxHex)
	assert.ErrorIs(t, err, ErrPipelineNotStarted)
	assert.ErrorIs(t, p.WaitForDrain(context.Background()), ErrPipelineNotStarted)
	assert.Equal(t, 0, p.PendingCount())
	assert.Nil(t, p.Latest())
	assert.NoError(t, p.Stop())
}

func TestDecodePipeline_SubmitAndLatest(t *testing.T) {
	defer goleak.VerifyNone(t)

	results := make(chan *Result, 10)
	p := NewDecodePipeline(
		WithDecodeWorkers(1),
		WithApplyFunc(func(result *Result) {
			results <- result
		}),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Start(ctx))
	defer func() {
		require.NoError(t, p.Stop())
	}()

	testDefs := []struct {
		name         string
		text         string
		expectedKind ledger.TxKind
		expectedErr  error
	}{
		{name: "Conway", text: test.ConwayTxHex, expectedKind: ledger.TxKindConway},
		{name: "Shelley", text: test.ShelleyTxHex, expectedKind: ledger.TxKindAlonzoCompatible},
		{name: "InvalidHex", text: "not hex!!", expectedErr: ledger.ErrHexDecode},
		{name: "UnknownEncoding", text: "deadbeef", expectedErr: ledger.ErrUnknownEncoding},
		{name: "Byron", text: test.ByronTxHex, expectedKind: ledger.TxKindByron},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			seq, err := p.SubmitHex(ctx, testDef.text)
			require.NoError(t, err)
			require.NoError(t, p.WaitForDrain(ctx))
			latest := p.Latest()
			require.NotNil(t, latest)
			assert.Equal(t, seq, latest.SequenceNumber)
			assert.Equal(t, seq, p.LatestSequence())
			if testDef.expectedErr != nil {
				assert.Nil(t, latest.Transaction)
				assert.ErrorIs(t, latest.Err, testDef.expectedErr)
			} else {
				require.NoError(t, latest.Err)
				assert.Equal(t, testDef.expectedKind, latest.Transaction.Kind())
			}
			select {
			case result := <-results:
				assert.Same(t, latest, result)
			case <-time.After(time.Second):
				t.Fatal("apply function was not called")
			}
		})
	}

	stats := p.Stats()
	assert.Equal(t, uint64(len(testDefs)), stats.Submitted)
	assert.Equal(t, uint64(len(testDefs)), stats.Applied)
	assert.Equal(t, uint64(3), stats.Decoded)
	assert.Equal(t, uint64(2), stats.DecodeErrors)
	assert.False(t, stats.LastApplyTime.IsZero())
}

func TestDecodePipeline_FailedSubmitKeepsAcceptedResult(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewDecodePipeline(WithDecodeWorkers(1))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Start(ctx))
	defer func() {
		require.NoError(t, p.Stop())
	}()

	seq, err := p.SubmitHex(ctx, test.ConwayTxHex)
	require.NoError(t, err)

	cancelledCtx, cancelSubmit := context.WithCancel(context.Background())
	cancelSubmit()
	_, err = p.SubmitHex(cancelledCtx, test.ByronTxHex)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, p.WaitForDrain(ctx))
	assert.Equal(t, seq, p.LatestSequence())
	latest := p.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, seq, latest.SequenceNumber)
	require.NoError(t, latest.Err)
	assert.Equal(t, ledger.TxKindConway, latest.Transaction.Kind())
	stats := p.Stats()
	assert.Equal(t, uint64(1), stats.Submitted)
	assert.Equal(t, uint64(1), stats.Applied)
	assert.Equal(t, uint64(0), stats.Superseded)
}

func TestDecodePipeline_BlockedSubmitKeepsAcceptedResult(t *testing.T) {
	defer goleak.VerifyNone(t)

	// Applies block until the gate opens, so the queues fill up and a later submit
	// times out after its sequence number was taken
	gate := make(chan struct{})
	p := NewDecodePipeline(
		WithDecodeWorkers(1),
		WithBufferSize(1),
		WithApplyFunc(func(*Result) {
			<-gate
		}),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Start(ctx))
	defer func() {
		require.NoError(t, p.Stop())
	}()

	var lastAccepted uint64
	var submitErr error
	for range 100 {
		submitCtx, cancelSubmit := context.WithTimeout(ctx, 20*time.Millisecond)
		seq, err := p.SubmitHex(submitCtx, test.ConwayTxHex)
		cancelSubmit()
		if err != nil {
			submitErr = err
			break
		}
		lastAccepted = seq
	}
	close(gate)
	require.ErrorIs(t, submitErr, context.DeadlineExceeded)
	require.NotZero(t, lastAccepted)

	require.NoError(t, p.WaitForDrain(ctx))
	assert.Equal(t, lastAccepted, p.LatestSequence())
	latest := p.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, lastAccepted, latest.SequenceNumber)
	stats := p.Stats()
	assert.Equal(t, lastAccepted, stats.Submitted)
	assert.Equal(t, stats.Submitted, stats.Applied+stats.Superseded)
}

func TestDecodePipeline_LatestWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	var appliedOrder []uint64
	p := NewDecodePipeline(
		WithDecodeWorkers(8),
		WithBufferSize(4),
		WithApplyFunc(func(result *Result) {
			mu.Lock()
			appliedOrder = append(appliedOrder, result.SequenceNumber)
			mu.Unlock()
		}),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, p.Start(ctx))

	inputs := []string{test.ConwayTxHex, test.BabbageTxHex, test.ShelleyTxHex, test.ByronTxHex}
	var lastSeq uint64
	for i := range 200 {
		seq, err := p.SubmitHex(ctx, inputs[i%len(inputs)])
		require.NoError(t, err)
		assert.Greater(t, seq, lastSeq)
		lastSeq = seq
	}
	require.NoError(t, p.WaitForDrain(ctx))

	latest := p.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, lastSeq, latest.SequenceNumber)
	// Item 200 is the Byron fixture
	assert.Equal(t, ledger.TxKindByron, latest.Transaction.Kind())

	stats := p.Stats()
	assert.Equal(t, uint64(200), stats.Submitted)
	assert.Equal(t, stats.Submitted, stats.Applied+stats.Superseded)
	assert.Equal(t, 0, p.PendingCount())

	require.NoError(t, p.Stop())

	// Applied results only ever move forward
	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, appliedOrder)
	for i := 1; i < len(appliedOrder); i++ {
		assert.Greater(t, appliedOrder[i], appliedOrder[i-1])
	}
	assert.Equal(t, lastSeq, appliedOrder[len(appliedOrder)-1])
}

func TestDecodePipeline_ConcurrentSubmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewDecodePipeline(WithDecodeWorkers(4))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, p.Start(ctx))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				if _, err := p.Submit(ctx, getValidTxCbor()); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()
	require.NoError(t, p.WaitForDrain(ctx))

	assert.Equal(t, uint64(100), p.LatestSequence())
	assert.Equal(t, uint64(100), p.Latest().SequenceNumber)
	require.NoError(t, p.Stop())
}

func TestDecodePipeline_SubmitStopRaceCondition(t *testing.T) {
	defer goleak.VerifyNone(t)

	for iteration := range 50 {
		p := NewDecodePipeline(WithDecodeWorkers(2), WithBufferSize(1))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		require.NoError(t, p.Start(ctx))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 10 {
				_, err := p.Submit(ctx, getValidTxCbor())
				if err != nil && !errors.Is(err, ErrPipelineStopped) && !errors.Is(err, context.Canceled) {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
		go func() {
			defer wg.Done()
			time.Sleep(time.Duration(iteration%5) * time.Microsecond)
			_ = p.Stop()
		}()
		wg.Wait()
		cancel()
	}
}

func TestDecodePipeline_WaitForDrainContextCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	// The apply function blocks, so the pipeline never drains
	block := make(chan struct{})
	p := NewDecodePipeline(
		WithDecodeWorkers(1),
		WithApplyFunc(func(*Result) {
			<-block
		}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, p.Start(ctx))

	_, err := p.Submit(ctx, getValidTxCbor())
	require.NoError(t, err)

	waitCtx, waitCancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer waitCancel()
	assert.ErrorIs(t, p.WaitForDrain(waitCtx), context.DeadlineExceeded)

	close(block)
	require.NoError(t, p.Stop())
}
