// Package queries contains read operations against the delivery backend.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never change backend state and may be issued any number of times.
package queries

import (
	"errors"

	"rider/internal/core/domain/model/delivery"
	"rider/internal/pkg/guard"
)

var ErrFetchTabQueryIsNotConstructed = errors.New(
	"FetchTabQuery must be created via NewFetchTabQuery constructor",
)

// FetchTabQuery assembles the worklist of one tab from the per-status lists
// the backend serves.
//
// Example:
//
//	query, err := NewFetchTabQuery(delivery.TabOngoing)
//	if err != nil {
//	    return err
//	}
//	deliveries, err := handler.Handle(ctx, query)
type FetchTabQuery struct {
	tab   delivery.Tab
	guard guard.ConstructorGuard
}

// NewFetchTabQuery validates the tab and creates the query.
func NewFetchTabQuery(tab delivery.Tab) (FetchTabQuery, error) {
	if err := tab.Validate(); err != nil {
		return FetchTabQuery{}, err
	}
	return FetchTabQuery{tab: tab, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q FetchTabQuery) Validate() error {
	return q.guard.Validate(ErrFetchTabQueryIsNotConstructed)
}

func (q FetchTabQuery) Tab() delivery.Tab {
	return q.tab
}
