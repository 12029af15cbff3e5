package commands

import (
	"context"
	"errors"
	"log/slog"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/core/ports"
	"rider/internal/pkg/errs"
)

// InvalidRequestMessage is reported when a command is rejected before any
// backend request is made.
const InvalidRequestMessage = "유효하지 않은 배달 요청입니다."

// InvokeActionCommandHandler performs rider actions against the backend and
// folds every outcome into a delivery.ActionResult.
//
// It never returns an error and never lets a panic escape: callers branch on
// ActionResult.OK only. Requests are never retried.
//
// Example:
//
//	handler := NewInvokeActionCommandHandler(gateway, logger)
//	result := handler.Invoke(ctx, delivery.ActionPickupComplete, 42)
//	fmt.Println(result.OK, result.Message)
type InvokeActionCommandHandler struct {
	gateway ports.DeliveryActionGateway
	logger  *slog.Logger
}

func NewInvokeActionCommandHandler(gateway ports.DeliveryActionGateway, logger *slog.Logger) InvokeActionCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return InvokeActionCommandHandler{
		gateway: gateway,
		logger:  logger.With("component", "InvokeActionCommandHandler"),
	}
}

// Invoke builds the command from raw inputs and handles it. Invalid input
// fails without a network call.
func (h InvokeActionCommandHandler) Invoke(ctx context.Context, kind delivery.ActionKind, id int64) delivery.ActionResult {
	cmd, err := NewInvokeActionCommand(kind, kernel.DeliveryID(id))
	if err != nil {
		h.logger.WarnContext(ctx, "rejected action input", "action", string(kind), "delivery_id", id, "error", err)
		return delivery.Failed(InvalidRequestMessage)
	}
	return h.Handle(ctx, cmd)
}

// Handle issues exactly one backend request for the command.
func (h InvokeActionCommandHandler) Handle(ctx context.Context, command InvokeActionCommand) (result delivery.ActionResult) {
	if err := command.Validate(); err != nil {
		return delivery.Failed(InvalidRequestMessage)
	}

	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(ctx, "action panicked",
				"action", command.Kind().String(), "delivery_id", command.ID().Int64(), "panic", r)
			result = delivery.Failed(delivery.DefaultFailureMessage)
		}
	}()

	message, err := h.gateway.Perform(ctx, command.Kind(), command.ID())
	if err != nil {
		h.logger.WarnContext(ctx, "action failed",
			"action", command.Kind().String(), "delivery_id", command.ID().Int64(), "error", err)
		return delivery.Failed(FailureMessage(err))
	}
	return delivery.Succeeded(message)
}

// FailureMessage picks the text shown for a failed action: the server's own
// message when it sent one. Backend failures without one (transport errors,
// undecodable answers, bare rejections) get DefaultFailureMessage so that
// internal addresses never reach the rider. Other errors keep their text.
func FailureMessage(err error) string {
	if err == nil {
		return delivery.DefaultFailureMessage
	}
	var remote *errs.RemoteError
	if errors.As(err, &remote) {
		if remote.Message != "" {
			return remote.Message
		}
		return delivery.DefaultFailureMessage
	}
	return err.Error()
}
