package delivery

import (
	"errors"

	"rider/internal/core/domain/model/kernel"
)

// Coordinates are the pickup (store) and drop-off positions of a delivery.
type Coordinates struct {
	DeliveryID kernel.DeliveryID
	Store      kernel.GeoPoint
	Dropoff    kernel.GeoPoint
}

// NewCoordinates validates raw latitude/longitude pairs for both markers.
func NewCoordinates(id kernel.DeliveryID, storeLat, storeLng, dropoffLat, dropoffLng float64) (Coordinates, error) {
	store, storeErr := kernel.NewGeoPoint(storeLat, storeLng)
	dropoff, dropoffErr := kernel.NewGeoPoint(dropoffLat, dropoffLng)
	if err := errors.Join(id.Validate(), storeErr, dropoffErr); err != nil {
		return Coordinates{}, err
	}
	return Coordinates{DeliveryID: id, Store: store, Dropoff: dropoff}, nil
}
