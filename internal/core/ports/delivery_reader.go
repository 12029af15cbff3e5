// Package ports defines the contracts between the rider workflow and the
// delivery backend. The backend is the only authority on delivery state;
// these interfaces read its records and request its state changes.
package ports

import (
	"context"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
)

// DeliveryReader reads the authenticated rider's deliveries.
type DeliveryReader interface {
	// ListMine returns every delivery assigned to the rider.
	ListMine(ctx context.Context) ([]delivery.Delivery, error)

	// ListByStatus returns the rider's deliveries in exactly one status.
	// The backend accepts a single status filter per call.
	ListByStatus(ctx context.Context, status delivery.Status) ([]delivery.Delivery, error)

	// Get returns one delivery. A missing delivery yields errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.DeliveryID) (delivery.Delivery, error)

	// Coordinates returns the store and drop-off positions of a delivery.
	Coordinates(ctx context.Context, id kernel.DeliveryID) (delivery.Coordinates, error)
}
