package queries

import (
	"errors"

	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/guard"
)

var ErrGetDeliveryCoordinatesQueryIsNotConstructed = errors.New(
	"GetDeliveryCoordinatesQuery must be created via NewGetDeliveryCoordinatesQuery constructor",
)

// GetDeliveryCoordinatesQuery retrieves the store and drop-off markers of a delivery.
type GetDeliveryCoordinatesQuery struct {
	id    kernel.DeliveryID
	guard guard.ConstructorGuard
}

func NewGetDeliveryCoordinatesQuery(id kernel.DeliveryID) (GetDeliveryCoordinatesQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDeliveryCoordinatesQuery{}, err
	}
	return GetDeliveryCoordinatesQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryCoordinatesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryCoordinatesQueryIsNotConstructed)
}

func (q GetDeliveryCoordinatesQuery) ID() kernel.DeliveryID {
	return q.id
}
