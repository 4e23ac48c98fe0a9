package payapi

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_Await(t *testing.T) {
	future := Async(func() (*Payment, error) {
		return &Payment{Resource: Resource{ID: "tr_WDqYK6vllg"}}, nil
	})

	payment, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", payment.ID)
}

func TestAsync_AwaitError(t *testing.T) {
	boom := fmt.Errorf("getting payment: %w", &APIError{Status: 404})

	future := Async(func() (*Payment, error) {
		return nil, boom
	})

	payment, err := future.Await(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, payment)
	assert.True(t, IsNotFound(err))
}

// A callback and an await of the same future observe the identical outcome,
// and the callback fires exactly once, before the future settles.
func TestAsync_CallbackAndAwaitAgree(t *testing.T) {
	var calls atomic.Int32

	var callbackValue *Payment

	var callbackErr error

	future := Async(func() (*Payment, error) {
		return &Payment{Resource: Resource{ID: "tr_WDqYK6vllg"}}, nil
	}, func(value *Payment, err error) {
		calls.Add(1)
		callbackValue = value
		callbackErr = err
	})

	awaited, err := future.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Same(t, awaited, callbackValue)
	assert.NoError(t, callbackErr)

	// Awaiting again returns the settled value without re-running anything.
	again, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Same(t, awaited, again)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAsync_AwaitContextCancellation(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	future := Async(func() (*Payment, error) {
		<-release

		return nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := future.Await(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFuture_Done(t *testing.T) {
	future := Async(func() (int, error) {
		return 42, nil
	})

	select {
	case <-future.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not settle")
	}

	value, err := future.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}
