package queries

import (
	"context"

	"rider/internal/core/ports"
)

// GetDeliveryQueryHandler loads a delivery detail.
// A missing delivery yields errs.ErrObjectNotFound.
type GetDeliveryQueryHandler struct {
	reader ports.DeliveryReader
}

func NewGetDeliveryQueryHandler(reader ports.DeliveryReader) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{reader: reader}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}
	d, err := h.reader.Get(ctx, query.ID())
	if err != nil {
		return DeliveryView{}, err
	}
	return NewDeliveryView(d), nil
}
