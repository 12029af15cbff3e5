package queries_test

import (
	"context"
	"testing"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryReader struct{ mock.Mock }

func (m *MockDeliveryReader) ListMine(ctx context.Context) ([]delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryReader) ListByStatus(ctx context.Context, status delivery.Status) ([]delivery.Delivery, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryReader) Get(ctx context.Context, id kernel.DeliveryID) (delivery.Delivery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryReader) Coordinates(ctx context.Context, id kernel.DeliveryID) (delivery.Coordinates, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(delivery.Coordinates), args.Error(1)
}

func mustID(t *testing.T, n int64) kernel.DeliveryID {
	t.Helper()
	id, err := kernel.NewDeliveryID(n)
	require.NoError(t, err)
	return id
}

func mustDelivery(t *testing.T, n int64, status delivery.Status, storeName string) delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(mustID(t, n), status, delivery.Details{StoreName: storeName})
	require.NoError(t, err)
	return d
}

func ids(list []delivery.Delivery) []int64 {
	out := make([]int64, 0, len(list))
	for _, d := range list {
		out = append(out, d.ID().Int64())
	}
	return out
}
