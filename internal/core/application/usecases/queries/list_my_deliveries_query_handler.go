package queries

import (
	"context"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/ports"
)

// ListMyDeliveriesQueryHandler returns the rider's deliveries deduplicated by
// identifier, in the order the backend sent them.
type ListMyDeliveriesQueryHandler struct {
	reader ports.DeliveryReader
}

func NewListMyDeliveriesQueryHandler(reader ports.DeliveryReader) ListMyDeliveriesQueryHandler {
	return ListMyDeliveriesQueryHandler{reader: reader}
}

func (h ListMyDeliveriesQueryHandler) Handle(ctx context.Context, query ListMyDeliveriesQuery) ([]delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	list, err := h.reader.ListMine(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(list), nil
}
