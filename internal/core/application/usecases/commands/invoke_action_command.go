// Package commands contains the operations that change delivery state on the
// backend. Implements the Command pattern for write operations in the CQRS
// architecture. Every command maps to exactly one backend request.
package commands

import (
	"errors"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/guard"
)

var ErrInvokeActionCommandIsNotConstructed = errors.New(
	"InvokeActionCommand must be created via NewInvokeActionCommand constructor",
)

// InvokeActionCommand requests one rider action on one delivery.
//
// Example:
//
//	cmd, err := NewInvokeActionCommand(delivery.ActionAccept, id)
//	if err != nil {
//	    return err
//	}
//	result := handler.Handle(ctx, cmd)
//	if !result.OK {
//	    log.Printf("accept failed: %s", result.Message)
//	}
type InvokeActionCommand struct {
	kind  delivery.ActionKind
	id    kernel.DeliveryID
	guard guard.ConstructorGuard
}

// NewInvokeActionCommand validates the action kind and the delivery identifier.
// Both errors are reported together.
func NewInvokeActionCommand(kind delivery.ActionKind, id kernel.DeliveryID) (InvokeActionCommand, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return InvokeActionCommand{}, err
	}
	return InvokeActionCommand{
		kind:  kind,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c InvokeActionCommand) Validate() error {
	return c.guard.Validate(ErrInvokeActionCommandIsNotConstructed)
}

func (c InvokeActionCommand) Kind() delivery.ActionKind {
	return c.kind
}

func (c InvokeActionCommand) ID() kernel.DeliveryID {
	return c.id
}
