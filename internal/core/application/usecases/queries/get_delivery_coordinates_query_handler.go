package queries

import (
	"context"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/ports"
)

type GetDeliveryCoordinatesQueryHandler struct {
	reader ports.DeliveryReader
}

func NewGetDeliveryCoordinatesQueryHandler(reader ports.DeliveryReader) GetDeliveryCoordinatesQueryHandler {
	return GetDeliveryCoordinatesQueryHandler{reader: reader}
}

func (h GetDeliveryCoordinatesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryCoordinatesQuery,
) (delivery.Coordinates, error) {
	if err := query.Validate(); err != nil {
		return delivery.Coordinates{}, err
	}
	return h.reader.Coordinates(ctx, query.ID())
}
