package queries

import (
	"context"
	"fmt"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// FetchTabQueryHandler issues one ListByStatus call per status of the tab,
// all at once, and merges the answers.
//
// The batch is atomic: if any call fails the handler returns that error and
// no deliveries, so a tab is never shown half-loaded.
//
// Example:
//
//	handler := NewFetchTabQueryHandler(reader)
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("load tab: %w", err)
//	}
type FetchTabQueryHandler struct {
	reader ports.DeliveryReader
}

func NewFetchTabQueryHandler(reader ports.DeliveryReader) FetchTabQueryHandler {
	return FetchTabQueryHandler{reader: reader}
}

// Handle fetches, flattens and deduplicates the tab's deliveries.
// Duplicates are resolved by identifier: the last-seen record wins while the
// position of its first occurrence is kept.
func (h FetchTabQueryHandler) Handle(ctx context.Context, query FetchTabQuery) ([]delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.Tab().Statuses()
	batches := make([][]delivery.Delivery, len(statuses))

	g, gctx := errgroup.WithContext(ctx)
	for i, status := range statuses {
		g.Go(func() error {
			list, err := h.reader.ListByStatus(gctx, status)
			if err != nil {
				return fmt.Errorf("list %s deliveries: %w", status, err)
			}
			batches[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(batches...), nil
}

// Merge flattens batches in order and removes duplicate identities.
func Merge(batches ...[]delivery.Delivery) []delivery.Delivery {
	index := make(map[kernel.DeliveryID]int)
	merged := make([]delivery.Delivery, 0)
	for _, batch := range batches {
		for _, d := range batch {
			if pos, seen := index[d.ID()]; seen {
				merged[pos] = d
				continue
			}
			index[d.ID()] = len(merged)
			merged = append(merged, d)
		}
	}
	return merged
}
