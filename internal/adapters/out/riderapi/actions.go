package riderapi

import (
	"context"
	"net/http"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/core/ports"
	"rider/internal/pkg/errs"
)

var _ ports.DeliveryActionGateway = (*Client)(nil)

type actorBody struct {
	DelivererID int64 `json:"delivererId"`
}

// Perform implements ports.DeliveryActionGateway. It sends one POST and never
// retries.
//
// Any 2xx answer means the backend applied the action, so the body is read
// for a message only: a body that is not an envelope yields an empty message,
// not an error.
func (c *Client) Perform(ctx context.Context, kind delivery.ActionKind, id kernel.DeliveryID) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}
	if err := id.Validate(); err != nil {
		return "", err
	}

	var body any
	if c.actorID != 0 {
		body = actorBody{DelivererID: c.actorID}
	}
	resp, err := c.send(ctx, http.MethodPost, nil, body, "api", "v1", "deliveries", id.String(), kind.Operation())
	if err != nil {
		return "", err
	}

	var env envelope
	if err = decodeEnvelope(resp.body, &env); err != nil {
		c.logger.DebugContext(ctx, "action answer is not an envelope", "op", resp.op, "status", resp.status, "error", err)
		env = envelope{}
	}
	if !resp.ok() || (env.Success != nil && !*env.Success) {
		return "", errs.NewRemoteRejectedError(resp.op, resp.status, env.Message)
	}
	c.logger.InfoContext(ctx, "delivery action performed", "action", kind.String(), "delivery_id", id.Int64())
	return env.Message, nil
}
