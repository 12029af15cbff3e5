package http

import (
	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/application/workflow"
	"rider/internal/core/domain/model/delivery"
	"rider/internal/generated/servers"
)

func toDelivery(d delivery.Delivery, acting bool) servers.Delivery {
	return toDeliveryView(queries.NewDeliveryView(d), acting)
}

func toDeliveryView(v queries.DeliveryView, acting bool) servers.Delivery {
	details := v.Delivery.Details()
	return servers.Delivery{
		Id:             v.Delivery.ID().Int64(),
		Status:         v.Delivery.Status().String(),
		Step:           v.Step.String(),
		Label:          v.Label,
		Actions:        actionNames(v.Actions),
		StoreName:      details.StoreName,
		StoreAddress:   details.StoreAddress,
		DropoffAddress: details.DropoffAddress,
		Fee:            details.Fee,
		RequestMemo:    details.RequestMemo,
		Acting:         acting,
	}
}

func toDeliveries(list []delivery.Delivery, controller *workflow.Controller) []servers.Delivery {
	out := make([]servers.Delivery, len(list))
	for i, d := range list {
		out[i] = toDelivery(d, controller.IsActing(d.ID()))
	}
	return out
}

func toTab(snapshot workflow.Snapshot, controller *workflow.Controller) servers.Tab {
	tab := servers.Tab{
		Tab:        snapshot.Tab.String(),
		Label:      snapshot.Tab.Label(),
		Deliveries: toDeliveries(snapshot.Deliveries, controller),
	}
	if !snapshot.LoadedAt.IsZero() {
		loadedAt := snapshot.LoadedAt
		tab.LoadedAt = &loadedAt
	}
	return tab
}

func toCoordinates(c delivery.Coordinates) servers.Coordinates {
	return servers.Coordinates{
		DeliveryId: c.DeliveryID.Int64(),
		Store:      servers.LatLng{Lat: c.Store.Lat(), Lng: c.Store.Lng()},
		Dropoff:    servers.LatLng{Lat: c.Dropoff.Lat(), Lng: c.Dropoff.Lng()},
	}
}

func toActionResult(o workflow.Outcome, controller *workflow.Controller) servers.ActionResult {
	res := servers.ActionResult{
		Ok:      o.Result.OK,
		Message: o.Result.Message,
		Reason:  string(o.Reason),
		Step:    o.Step.String(),
	}
	if o.Next != nil {
		res.Next = &servers.Next{Kind: string(o.Next.Kind), Path: o.Next.Path}
	}
	if o.Detail != nil {
		d := toDeliveryView(*o.Detail, controller.IsActing(o.Detail.Delivery.ID()))
		res.Delivery = &d
	}
	return res
}

func actionNames(kinds []delivery.ActionKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}
