package queries

import (
	"errors"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves one delivery together with its projected step.
type GetDeliveryQuery struct {
	id    kernel.DeliveryID
	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(id kernel.DeliveryID) (GetDeliveryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) ID() kernel.DeliveryID {
	return q.id
}

// DeliveryView is the read model of a delivery as the rider sees it: the
// backend record plus the step, label and actions derived from its status.
type DeliveryView struct {
	Delivery delivery.Delivery
	Step     delivery.Step
	Label    string
	Actions  []delivery.ActionKind
}

// NewDeliveryView derives the presentation fields from the step table.
func NewDeliveryView(d delivery.Delivery) DeliveryView {
	cfg := d.Config()
	return DeliveryView{
		Delivery: d,
		Step:     d.Step(),
		Label:    cfg.Label,
		Actions:  cfg.Actions,
	}
}
