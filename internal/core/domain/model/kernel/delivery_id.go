package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"rider/internal/pkg/errs"
)

// DeliveryID identifies one delivery on the backend. Valid identifiers are positive.
type DeliveryID int64

// NewDeliveryID returns id as a DeliveryID or a validation error when it is not positive.
func NewDeliveryID(id int64) (DeliveryID, error) {
	d := DeliveryID(id)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// ParseDeliveryID parses a decimal identifier as it appears in URLs or JSON strings.
//
// Example:
//
//	id, err := kernel.ParseDeliveryID("42")
//	// id == 42, err == nil
func ParseDeliveryID(s string) (DeliveryID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewValueIsRequiredError("deliveryId")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("deliveryId", err)
	}
	return NewDeliveryID(n)
}

// Validate reports whether the identifier can be sent to the backend.
func (d DeliveryID) Validate() error {
	if d == 0 {
		return errs.NewValueIsRequiredError("deliveryId")
	}
	if d < 0 {
		return errs.NewValueIsOutOfRangeError("deliveryId", int64(d), 1, "max int64")
	}
	return nil
}

// Int64 returns the raw identifier.
func (d DeliveryID) Int64() int64 {
	return int64(d)
}

func (d DeliveryID) String() string {
	return fmt.Sprintf("%d", int64(d))
}
