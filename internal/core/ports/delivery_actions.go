package ports

import (
	"context"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
)

// DeliveryActionGateway performs one state-changing backend operation.
//
// Implementations issue exactly one request per call and never retry: the
// operations are non-idempotent real-world events and an ambiguous failure
// must not be replayed blindly.
type DeliveryActionGateway interface {
	// Perform returns the backend's confirmation message (possibly empty) or an
	// error describing the transport or server failure.
	Perform(ctx context.Context, kind delivery.ActionKind, id kernel.DeliveryID) (string, error)
}
