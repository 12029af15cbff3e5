package delivery

import (
	"errors"

	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/errs"
	"rider/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError("delivery must be created via NewDelivery")

// Details holds the descriptive attributes of a delivery after field-alias resolution.
type Details struct {
	StoreName      string
	StoreAddress   string
	DropoffAddress string
	// Fee is nil when the backend sent no fee under any known name.
	Fee         *int64
	RequestMemo string
}

// Delivery is a read replica of a backend delivery record. It is never mutated
// locally; a newer state only arrives through a re-fetch.
//
// The status is kept as received, even when unknown, so that Step can apply
// the fail-open projection.
type Delivery struct {
	id      kernel.DeliveryID
	status  Status
	details Details
	guard   guard.ConstructorGuard
}

// NewDelivery builds a delivery from resolved backend fields. Only the identifier
// is mandatory: a delivery without identity cannot be deduplicated or acted on.
func NewDelivery(id kernel.DeliveryID, status Status, details Details) (Delivery, error) {
	if err := id.Validate(); err != nil {
		return Delivery{}, err
	}
	if details.Fee != nil {
		fee := *details.Fee
		details.Fee = &fee
	}
	return Delivery{
		id:      id,
		status:  status,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (d Delivery) Validate() error {
	return errors.Join(d.guard.Validate(ErrDeliveryIsNotConstructed), d.id.Validate())
}

func (d Delivery) ID() kernel.DeliveryID {
	return d.id
}

func (d Delivery) Status() Status {
	return d.status
}

func (d Delivery) Details() Details {
	out := d.details
	if d.details.Fee != nil {
		fee := *d.details.Fee
		out.Fee = &fee
	}
	return out
}

// Step projects the delivery's status.
func (d Delivery) Step() Step {
	return Project(d.status)
}

// Config returns the label and legal actions for the delivery's current step.
func (d Delivery) Config() StepConfig {
	return ConfigFor(d.Step())
}

// Allows reports whether kind is legal for the delivery right now.
func (d Delivery) Allows(kind ActionKind) bool {
	return Allows(d.Step(), kind)
}
