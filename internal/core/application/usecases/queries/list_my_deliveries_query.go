package queries

import (
	"errors"

	"rider/internal/pkg/guard"
)

var ErrListMyDeliveriesQueryIsNotConstructed = errors.New(
	"ListMyDeliveriesQuery must be created via NewListMyDeliveriesQuery constructor",
)

// ListMyDeliveriesQuery retrieves every delivery assigned to the rider,
// regardless of status. This is a parameterless query.
type ListMyDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListMyDeliveriesQuery() ListMyDeliveriesQuery {
	return ListMyDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListMyDeliveriesQueryIsNotConstructed)
}
