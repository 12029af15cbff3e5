package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFetchTabQueryHandler_Handle(t *testing.T) {
	t.Run("should merge every status of the tab in order", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockDeliveryReader)
		reader.On("ListByStatus", mock.Anything, delivery.StatusAccepted).
			Return([]delivery.Delivery{mustDelivery(t, 1, delivery.StatusAccepted, "a")}, nil)
		reader.On("ListByStatus", mock.Anything, delivery.StatusPickedUp).
			Return([]delivery.Delivery{mustDelivery(t, 2, delivery.StatusPickedUp, "b")}, nil)
		reader.On("ListByStatus", mock.Anything, delivery.StatusInDelivery).
			Return([]delivery.Delivery{mustDelivery(t, 3, delivery.StatusInDelivery, "c")}, nil)

		query, err := queries.NewFetchTabQuery(delivery.TabOngoing)
		require.NoError(t, err)

		got, err := queries.NewFetchTabQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(got))
		reader.AssertNumberOfCalls(t, "ListByStatus", 3)
	})

	t.Run("should keep the last record for a duplicate identity at its first position", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockDeliveryReader)
		reader.On("ListByStatus", mock.Anything, delivery.StatusPending).
			Return([]delivery.Delivery{
				mustDelivery(t, 7, delivery.StatusPending, "old"),
				mustDelivery(t, 8, delivery.StatusPending, "other"),
			}, nil)
		reader.On("ListByStatus", mock.Anything, delivery.StatusAssigned).
			Return([]delivery.Delivery{mustDelivery(t, 7, delivery.StatusAssigned, "new")}, nil)

		query, err := queries.NewFetchTabQuery(delivery.TabWaiting)
		require.NoError(t, err)

		got, err := queries.NewFetchTabQueryHandler(reader).Handle(ctx, query)

		require.NoError(t, err)
		require.Equal(t, []int64{7, 8}, ids(got))
		assert.Equal(t, "new", got[0].Details().StoreName)
		assert.Equal(t, delivery.StepRequested, got[0].Step())
	})

	t.Run("should fail the whole batch when one call fails", func(t *testing.T) {
		ctx := t.Context()
		boom := errors.New("boom")
		reader := new(MockDeliveryReader)
		reader.On("ListByStatus", mock.Anything, delivery.StatusDelivered).
			Return([]delivery.Delivery{mustDelivery(t, 1, delivery.StatusDelivered, "a")}, nil)
		reader.On("ListByStatus", mock.Anything, delivery.StatusCancelled).
			Return(nil, boom)

		query, err := queries.NewFetchTabQuery(delivery.TabDone)
		require.NoError(t, err)

		got, err := queries.NewFetchTabQueryHandler(reader).Handle(ctx, query)

		require.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})

	t.Run("should issue the calls concurrently", func(t *testing.T) {
		ctx := t.Context()
		var wg sync.WaitGroup
		wg.Add(2)
		barrier := func(mock.Arguments) {
			wg.Done()
			wg.Wait()
		}
		reader := new(MockDeliveryReader)
		reader.On("ListByStatus", mock.Anything, delivery.StatusPending).
			Run(barrier).Return([]delivery.Delivery{}, nil)
		reader.On("ListByStatus", mock.Anything, delivery.StatusAssigned).
			Run(barrier).Return([]delivery.Delivery{}, nil)

		query, err := queries.NewFetchTabQuery(delivery.TabWaiting)
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() {
			_, handleErr := queries.NewFetchTabQueryHandler(reader).Handle(ctx, query)
			done <- handleErr
		}()

		select {
		case err = <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("status calls were not issued concurrently")
		}
	})

	t.Run("should cancel sibling calls after a failure", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockDeliveryReader)
		reader.On("ListByStatus", mock.Anything, delivery.StatusAccepted).
			Return(nil, errors.New("unavailable"))
		for _, status := range []delivery.Status{delivery.StatusPickedUp, delivery.StatusInDelivery} {
			reader.On("ListByStatus", mock.Anything, status).
				Run(func(args mock.Arguments) {
					callCtx := args.Get(0).(context.Context)
					select {
					case <-callCtx.Done():
					case <-time.After(2 * time.Second):
					}
				}).
				Return([]delivery.Delivery{}, nil)
		}

		query, err := queries.NewFetchTabQuery(delivery.TabOngoing)
		require.NoError(t, err)

		started := time.Now()
		_, err = queries.NewFetchTabQueryHandler(reader).Handle(ctx, query)

		require.Error(t, err)
		assert.Less(t, time.Since(started), time.Second)
	})

	t.Run("should reject a zero-value query", func(t *testing.T) {
		reader := new(MockDeliveryReader)

		_, err := queries.NewFetchTabQueryHandler(reader).Handle(t.Context(), queries.FetchTabQuery{})

		require.ErrorIs(t, err, queries.ErrFetchTabQueryIsNotConstructed)
		reader.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
	})
}

func TestMerge(t *testing.T) {
	t.Run("should return an empty slice for no input", func(t *testing.T) {
		got := queries.Merge()

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("should order by first appearance across batches", func(t *testing.T) {
		got := queries.Merge(
			[]delivery.Delivery{mustDelivery(t, 3, delivery.StatusAccepted, "")},
			[]delivery.Delivery{
				mustDelivery(t, 1, delivery.StatusAccepted, ""),
				mustDelivery(t, 3, delivery.StatusPickedUp, ""),
			},
		)

		assert.Equal(t, []int64{3, 1}, ids(got))
		assert.Equal(t, delivery.StatusPickedUp, got[0].Status())
	})
}
