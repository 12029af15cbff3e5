// Package servers holds the HTTP contract of the rider gateway: the embedded
// OpenAPI document, its wire types and the echo routing glue that binds path
// parameters before handing over to a ServerInterface.
package servers

import "time"

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// View defines model for View.
type View struct {
	ViewId string `json:"viewId"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	Id             int64    `json:"id"`
	Status         string   `json:"status"`
	Step           string   `json:"step"`
	Label          string   `json:"label"`
	Actions        []string `json:"actions"`
	StoreName      string   `json:"storeName"`
	StoreAddress   string   `json:"storeAddress"`
	DropoffAddress string   `json:"dropoffAddress"`
	Fee            *int64   `json:"fee,omitempty"`
	RequestMemo    string   `json:"requestMemo,omitempty"`
	Acting         bool     `json:"acting"`
}

// Tab defines model for Tab.
type Tab struct {
	Tab        string     `json:"tab"`
	Label      string     `json:"label"`
	Deliveries []Delivery `json:"deliveries"`
	LoadedAt   *time.Time `json:"loadedAt,omitempty"`
}

// LatLng defines model for LatLng.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Coordinates defines model for Coordinates.
type Coordinates struct {
	DeliveryId int64  `json:"deliveryId"`
	Store      LatLng `json:"store"`
	Dropoff    LatLng `json:"dropoff"`
}

// Next defines model for Next.
type Next struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// ActionResult defines model for ActionResult.
type ActionResult struct {
	Ok       bool      `json:"ok"`
	Message  string    `json:"message"`
	Reason   string    `json:"reason,omitempty"`
	Step     string    `json:"step,omitempty"`
	Next     *Next     `json:"next,omitempty"`
	Delivery *Delivery `json:"delivery,omitempty"`
}

// Step defines model for Step.
type Step struct {
	Status  string   `json:"status"`
	Step    string   `json:"step"`
	Label   string   `json:"label"`
	Actions []string `json:"actions"`
}
