package delivery

import (
	"fmt"
	"strings"

	"rider/internal/pkg/errs"
)

// Status is the lifecycle value the backend attaches to a delivery.
//
// Backend order (monotonic):
//
//	PENDING ──> ASSIGNED ──> ACCEPTED ──> PICKED_UP ──> IN_DELIVERY ──> DELIVERED
//	   │            │            │             │              │
//	   └────────────┴────────────┴─────────────┴──────────────┴──────> CANCELLED
//
// The zero value is the absent status; it is not valid but still projects to StepWaiting.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusAssigned   Status = "ASSIGNED"
	StatusAccepted   Status = "ACCEPTED"
	StatusPickedUp   Status = "PICKED_UP"
	StatusInDelivery Status = "IN_DELIVERY"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses returns every known status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAssigned,
		StatusAccepted,
		StatusPickedUp,
		StatusInDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// StatusFromWire trims a raw wire value. The result may be unknown; callers that
// need a known status use Validate, callers that only display it use Project.
func StatusFromWire(raw string) Status {
	return Status(strings.TrimSpace(raw))
}

// ParseStatus converts a query/filter value (case-insensitive) into a known status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate reports whether s is one of the backend statuses.
func (s Status) Validate() error {
	if s.IsKnown() {
		return nil
	}
	if s == "" {
		return errs.NewValueIsRequiredError("orderDeliveryStatus")
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"orderDeliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", string(s)),
	)
}

func (s Status) IsKnown() bool {
	for _, known := range AllStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition can follow s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}
