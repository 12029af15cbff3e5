package riderapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/core/ports"
	"rider/internal/pkg/errs"
)

var _ ports.DeliveryReader = (*Client)(nil)

// ListMine implements ports.DeliveryReader.
func (c *Client) ListMine(ctx context.Context) ([]delivery.Delivery, error) {
	env, err := c.call(ctx, http.MethodGet, nil, nil, "api", "v1", "rider", "deliveries")
	if err != nil {
		return nil, err
	}
	return c.deliveries(ctx, "list deliveries", env)
}

// ListByStatus implements ports.DeliveryReader.
func (c *Client) ListByStatus(ctx context.Context, status delivery.Status) ([]delivery.Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	query := url.Values{"orderDeliveryStatus": []string{status.String()}}
	env, err := c.call(ctx, http.MethodGet, query, nil, "api", "v1", "rider", "deliveries", "status")
	if err != nil {
		return nil, err
	}
	return c.deliveries(ctx, "list deliveries by status", env)
}

// Get implements ports.DeliveryReader.
func (c *Client) Get(ctx context.Context, id kernel.DeliveryID) (delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return delivery.Delivery{}, err
	}
	env, err := c.call(ctx, http.MethodGet, nil, nil, "api", "v1", "rider", "deliveries", id.String())
	if err != nil {
		return delivery.Delivery{}, notFound(id, err)
	}
	if !env.hasData() {
		return delivery.Delivery{}, errs.NewObjectNotFoundError("deliveryId", id.String())
	}

	rec, err := decodeRecord(env.Data)
	if err != nil {
		return delivery.Delivery{}, errs.NewRemoteMalformedError("get delivery", http.StatusOK, err)
	}
	// the detail endpoint may omit the identifier; the path is authoritative then
	if _, ok := rec.first(idAliases); !ok {
		rec["deliveryId"] = id.Int64()
	}
	d, err := rec.toDomain()
	if err != nil {
		return delivery.Delivery{}, errs.NewRemoteMalformedError("get delivery", http.StatusOK, err)
	}
	return d, nil
}

// Coordinates implements ports.DeliveryReader.
func (c *Client) Coordinates(ctx context.Context, id kernel.DeliveryID) (delivery.Coordinates, error) {
	if err := id.Validate(); err != nil {
		return delivery.Coordinates{}, err
	}
	env, err := c.call(ctx, http.MethodGet, nil, nil, "api", "v1", "rider", "deliveries", id.String(), "coordinates")
	if err != nil {
		return delivery.Coordinates{}, notFound(id, err)
	}
	if !env.hasData() {
		return delivery.Coordinates{}, errs.NewObjectNotFoundError("deliveryId", id.String())
	}

	rec, err := decodeRecord(env.Data)
	if err != nil {
		return delivery.Coordinates{}, errs.NewRemoteMalformedError("get coordinates", http.StatusOK, err)
	}
	coords, err := rec.toCoordinates(id)
	if err != nil {
		return delivery.Coordinates{}, errs.NewRemoteMalformedError("get coordinates", http.StatusOK, err)
	}
	return coords, nil
}

// deliveries converts a list payload. Records without a usable identifier are
// dropped and logged; they cannot be deduplicated or acted on.
func (c *Client) deliveries(ctx context.Context, op string, env envelope) ([]delivery.Delivery, error) {
	if !env.hasData() {
		return []delivery.Delivery{}, nil
	}
	items, err := decodeRecords(env.Data)
	if err != nil {
		return nil, errs.NewRemoteMalformedError(op, http.StatusOK, err)
	}

	out := make([]delivery.Delivery, 0, len(items))
	for i, item := range items {
		rec, err := decodeRecord(item)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping undecodable record", "op", op, "index", i, "error", err)
			continue
		}
		d, err := rec.toDomain()
		if err != nil {
			c.logger.WarnContext(ctx, "skipping record without identity", "op", op, "index", i, "error", err)
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// notFound turns a 404 rejection into errs.ObjectNotFoundError.
func notFound(id kernel.DeliveryID, err error) error {
	var remote *errs.RemoteError
	if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundErrorWithCause("deliveryId", id.String(), err)
	}
	return err
}
