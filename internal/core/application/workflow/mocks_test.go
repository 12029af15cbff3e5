package workflow_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rider/internal/core/application/usecases/commands"
	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTabFetcher struct{ mock.Mock }

func (m *MockTabFetcher) Handle(ctx context.Context, query queries.FetchTabQuery) ([]delivery.Delivery, error) {
	args := m.Called(ctx, query.Tab())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.Delivery), args.Error(1)
}

type MockDetailLoader struct{ mock.Mock }

func (m *MockDetailLoader) Handle(ctx context.Context, query queries.GetDeliveryQuery) (queries.DeliveryView, error) {
	args := m.Called(ctx, query.ID())
	return args.Get(0).(queries.DeliveryView), args.Error(1)
}

type MockActionInvoker struct{ mock.Mock }

func (m *MockActionInvoker) Handle(ctx context.Context, command commands.InvokeActionCommand) delivery.ActionResult {
	args := m.Called(ctx, command.Kind(), command.ID())
	return args.Get(0).(delivery.ActionResult)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDelivery(t *testing.T, n int64, status delivery.Status) delivery.Delivery {
	t.Helper()
	id, err := kernel.NewDeliveryID(n)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(id, status, delivery.Details{})
	require.NoError(t, err)
	return d
}

func viewOf(t *testing.T, n int64, status delivery.Status) queries.DeliveryView {
	t.Helper()
	return queries.NewDeliveryView(mustDelivery(t, n, status))
}

func workflowView() queries.DeliveryView {
	return queries.DeliveryView{}
}
