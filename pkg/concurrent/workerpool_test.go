// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package concurrent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_Run(t *testing.T) {
	ctx := context.Background()
	pool := NewWorkerPool(2)

	var counter int64
	functions := []func() error{
		func() error {
			atomic.AddInt64(&counter, 1)
			time.Sleep(10 * time.Millisecond) // Simulate work
			return nil
		},
		func() error {
			atomic.AddInt64(&counter, 2)
			time.Sleep(10 * time.Millisecond)
			return nil
		},
		func() error {
			atomic.AddInt64(&counter, 3)
			time.Sleep(10 * time.Millisecond)
			return nil
		},
	}

	err := pool.Run(ctx, functions...)
	require.NoError(t, err)
	assert.Equal(t, int64(6), atomic.LoadInt64(&counter))
}

func TestWorkerPool_Run_WithError(t *testing.T) {
	ctx := context.Background()
	pool := NewWorkerPool(1)

	expectedError := errors.New("job failed")
	var executedFunc3 bool
	var mu sync.Mutex

	functions := []func() error{
		func() error {
			return expectedError
		},
		func() error {
			time.Sleep(5 * time.Millisecond)
			return nil
		},
		func() error {
			mu.Lock()
			executedFunc3 = true
			mu.Unlock()
			return nil
		},
	}

	err := pool.Run(ctx, functions...)

	require.Error(t, err)
	assert.Equal(t, expectedError, err)

	// With one worker, the failure cancels the queued work behind it.
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, executedFunc3, "queued work should not run after a failure")
}

func TestWorkerPool_Run_EmptyFunctions(t *testing.T) {
	ctx := context.Background()
	pool := NewWorkerPool(2)

	err := pool.Run(ctx)
	require.NoError(t, err)
}

func TestWorkerPool_RunAll_ExecutesAllFunctions(t *testing.T) {
	ctx := context.Background()
	pool := NewWorkerPool(2)

	var executed int64
	errorFunc1 := errors.New("func1 failed")
	errorFunc3 := errors.New("func3 failed")

	functions := []func() error{
		func() error {
			atomic.AddInt64(&executed, 1)
			return errorFunc1
		},
		func() error {
			atomic.AddInt64(&executed, 1)
			return nil
		},
		func() error {
			atomic.AddInt64(&executed, 1)
			return errorFunc3
		},
	}

	errs := pool.RunAll(ctx, functions...)

	// Every function ran despite the failures.
	assert.Equal(t, int64(3), atomic.LoadInt64(&executed))
	require.Len(t, errs, 2)
	assert.Contains(t, errs, errorFunc1)
	assert.Contains(t, errs, errorFunc3)
}

func TestWorkerPool_RunAll_EmptyFunctions(t *testing.T) {
	ctx := context.Background()
	pool := NewWorkerPool(2)

	errs := pool.RunAll(ctx)
	assert.Nil(t, errs)
}

func TestNewWorkerPool_MinimumWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	assert.Equal(t, 1, pool.workerCount)

	pool = NewWorkerPool(-5)
	assert.Equal(t, 1, pool.workerCount)
}
