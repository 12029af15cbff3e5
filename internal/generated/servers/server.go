package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (POST /api/v1/views)
	OpenView(ctx echo.Context) error
	// (DELETE /api/v1/views/{viewId})
	CloseView(ctx echo.Context, viewId string) error
	// (GET /api/v1/views/{viewId}/tabs/{tab})
	GetTab(ctx echo.Context, viewId string, tab string) error
	// (GET /api/v1/views/{viewId}/deliveries)
	ListDeliveries(ctx echo.Context, viewId string) error
	// (GET /api/v1/views/{viewId}/requests/latest)
	GetLatestRequest(ctx echo.Context, viewId string) error
	// (GET /api/v1/views/{viewId}/deliveries/{deliveryId})
	GetDelivery(ctx echo.Context, viewId string, deliveryId int64) error
	// (GET /api/v1/views/{viewId}/deliveries/{deliveryId}/coordinates)
	GetDeliveryCoordinates(ctx echo.Context, viewId string, deliveryId int64) error
	// (POST /api/v1/views/{viewId}/deliveries/{deliveryId}/actions/{action})
	InvokeAction(ctx echo.Context, viewId string, deliveryId int64, action string) error
	// (GET /api/v1/steps/{status})
	GetStep(ctx echo.Context, status string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) OpenView(ctx echo.Context) error {
	return w.Handler.OpenView(ctx)
}

func (w *ServerInterfaceWrapper) CloseView(ctx echo.Context) error {
	viewId, err := bindViewID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CloseView(ctx, viewId)
}

func (w *ServerInterfaceWrapper) GetTab(ctx echo.Context) error {
	viewId, err := bindViewID(ctx)
	if err != nil {
		return err
	}
	var tab string
	if err = bindPath(ctx, "tab", &tab); err != nil {
		return err
	}
	return w.Handler.GetTab(ctx, viewId, tab)
}

func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	viewId, err := bindViewID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListDeliveries(ctx, viewId)
}

func (w *ServerInterfaceWrapper) GetLatestRequest(ctx echo.Context) error {
	viewId, err := bindViewID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetLatestRequest(ctx, viewId)
}

func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	viewId, deliveryId, err := bindDelivery(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDelivery(ctx, viewId, deliveryId)
}

func (w *ServerInterfaceWrapper) GetDeliveryCoordinates(ctx echo.Context) error {
	viewId, deliveryId, err := bindDelivery(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDeliveryCoordinates(ctx, viewId, deliveryId)
}

func (w *ServerInterfaceWrapper) InvokeAction(ctx echo.Context) error {
	viewId, deliveryId, err := bindDelivery(ctx)
	if err != nil {
		return err
	}
	var action string
	if err = bindPath(ctx, "action", &action); err != nil {
		return err
	}
	return w.Handler.InvokeAction(ctx, viewId, deliveryId, action)
}

func (w *ServerInterfaceWrapper) GetStep(ctx echo.Context) error {
	var status string
	if err := bindPath(ctx, "status", &status); err != nil {
		return err
	}
	return w.Handler.GetStep(ctx, status)
}

func bindPath(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindViewID(ctx echo.Context) (string, error) {
	var viewId string
	err := bindPath(ctx, "viewId", &viewId)
	return viewId, err
}

func bindDelivery(ctx echo.Context) (string, int64, error) {
	viewId, err := bindViewID(ctx)
	if err != nil {
		return "", 0, err
	}
	var deliveryId int64
	if err = bindPath(ctx, "deliveryId", &deliveryId); err != nil {
		return "", 0, err
	}
	return viewId, deliveryId, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.POST(baseURL+"/api/v1/views", wrapper.OpenView)
	router.DELETE(baseURL+"/api/v1/views/:viewId", wrapper.CloseView)
	router.GET(baseURL+"/api/v1/views/:viewId/tabs/:tab", wrapper.GetTab)
	router.GET(baseURL+"/api/v1/views/:viewId/deliveries", wrapper.ListDeliveries)
	router.GET(baseURL+"/api/v1/views/:viewId/requests/latest", wrapper.GetLatestRequest)
	router.GET(baseURL+"/api/v1/views/:viewId/deliveries/:deliveryId", wrapper.GetDelivery)
	router.GET(baseURL+"/api/v1/views/:viewId/deliveries/:deliveryId/coordinates", wrapper.GetDeliveryCoordinates)
	router.POST(baseURL+"/api/v1/views/:viewId/deliveries/:deliveryId/actions/:action", wrapper.InvokeAction)
	router.GET(baseURL+"/api/v1/steps/:status", wrapper.GetStep)
}
