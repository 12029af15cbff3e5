// Package kernel provides the value objects shared by the rider workflow:
//
//   - DeliveryID: the backend's positive numeric delivery identifier
//   - GeoPoint: a validated latitude/longitude pair
//   - ViewID: a random identifier for one open rider view (screen session)
//
// Each value object is immutable. Zero values are invalid and fail Validate,
// so values coming from the wire must go through a constructor.
package kernel
