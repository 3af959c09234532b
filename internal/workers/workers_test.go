// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker counts Run calls and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
	err  error
}

func (c *countingWorker) Run(ctx context.Context) error {
	c.runs.Add(1)
	if c.err != nil {
		return c.err
	}
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := New(w1, w2, w3)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, ws.Run(ctx))
	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_New_SkipsNil(t *testing.T) {
	ws := New(&countingWorker{}, nil)
	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &countingWorker{}
	ws := New(blocking, &countingWorker{err: boom})

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after a worker failed")
	}
}
