// Package workflow holds the per-view state of a rider session: the worklist
// with its fetch intent token and the transition controller with its
// per-delivery acting flags.
//
// A view is the server-side counterpart of one open rider screen. Everything
// in it is in-memory and is dropped when the view is torn down; the backend
// remains the only authority on delivery state.
package workflow

import (
	"context"

	"rider/internal/core/application/usecases/commands"
	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/domain/model/delivery"
)

// TabFetcher loads the merged deliveries of a tab.
type TabFetcher interface {
	Handle(ctx context.Context, query queries.FetchTabQuery) ([]delivery.Delivery, error)
}

// DetailLoader loads one delivery with its projected step.
type DetailLoader interface {
	Handle(ctx context.Context, query queries.GetDeliveryQuery) (queries.DeliveryView, error)
}

// ActionInvoker performs one backend action.
type ActionInvoker interface {
	Handle(ctx context.Context, command commands.InvokeActionCommand) delivery.ActionResult
}
