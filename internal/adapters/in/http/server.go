package http

import (
	"log/slog"
	"net/http"
	"strings"

	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/application/workflow"
	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers, the open views and the query handlers.
type Server struct {
	views *workflow.Registry

	// Query handlers
	getDeliveryHandler            queries.GetDeliveryQueryHandler
	getDeliveryCoordinatesHandler queries.GetDeliveryCoordinatesQueryHandler
	listMyDeliveriesHandler       queries.ListMyDeliveriesQueryHandler
	fetchTabHandler               queries.FetchTabQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the view registry and query handlers.
func NewServer(
	views *workflow.Registry,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getDeliveryCoordinatesHandler queries.GetDeliveryCoordinatesQueryHandler,
	listMyDeliveriesHandler queries.ListMyDeliveriesQueryHandler,
	fetchTabHandler queries.FetchTabQueryHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		views:                         views,
		getDeliveryHandler:            getDeliveryHandler,
		getDeliveryCoordinatesHandler: getDeliveryCoordinatesHandler,
		listMyDeliveriesHandler:       listMyDeliveriesHandler,
		fetchTabHandler:               fetchTabHandler,
		logger:                        logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenView handles POST /api/v1/views - opens a view bound to the caller's token.
func (s *Server) OpenView(ctx echo.Context) error {
	token := strings.TrimSpace(strings.TrimPrefix(ctx.Request().Header.Get(echo.HeaderAuthorization), "Bearer "))
	view := s.views.Open(token)
	return ctx.JSON(http.StatusCreated, servers.View{ViewId: view.ID().String()})
}

// CloseView handles DELETE /api/v1/views/{viewId} - resets acting flags and the intent token.
func (s *Server) CloseView(ctx echo.Context, viewId string) error {
	id, err := kernel.ViewIDFromString(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.views.Close(id); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetTab handles GET /api/v1/views/{viewId}/tabs/{tab} - loads a tab through
// the view's worklist. A load overtaken by a newer one answers 409.
func (s *Server) GetTab(ctx echo.Context, viewId string, tab string) error {
	view, err := s.view(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	t, err := delivery.ParseTab(tab)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := view.Worklist().Load(view.Bind(ctx.Request().Context()), t)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTab(snapshot, view.Controller()))
}

// ListDeliveries handles GET /api/v1/views/{viewId}/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context, viewId string) error {
	view, err := s.view(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	list, err := s.listMyDeliveriesHandler.Handle(view.Bind(ctx.Request().Context()), queries.NewListMyDeliveriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveries(list, view.Controller()))
}

// GetLatestRequest handles GET /api/v1/views/{viewId}/requests/latest.
func (s *Server) GetLatestRequest(ctx echo.Context, viewId string) error {
	view, err := s.view(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewFetchTabQuery(delivery.TabRequests)
	if err != nil {
		return s.fail(ctx, err)
	}
	list, err := s.fetchTabHandler.Handle(view.Bind(ctx.Request().Context()), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	latest, ok := delivery.LatestRequest(list)
	if !ok {
		return ctx.NoContent(http.StatusNoContent)
	}
	return ctx.JSON(http.StatusOK, toDelivery(latest, view.Controller().IsActing(latest.ID())))
}

// GetDelivery handles GET /api/v1/views/{viewId}/deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, viewId string, deliveryId int64) error {
	view, err := s.view(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetDeliveryQuery(kernel.DeliveryID(deliveryId))
	if err != nil {
		return s.fail(ctx, err)
	}
	detail, err := s.getDeliveryHandler.Handle(view.Bind(ctx.Request().Context()), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryView(detail, view.Controller().IsActing(query.ID())))
}

// GetDeliveryCoordinates handles GET /api/v1/views/{viewId}/deliveries/{deliveryId}/coordinates.
func (s *Server) GetDeliveryCoordinates(ctx echo.Context, viewId string, deliveryId int64) error {
	view, err := s.view(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetDeliveryCoordinatesQuery(kernel.DeliveryID(deliveryId))
	if err != nil {
		return s.fail(ctx, err)
	}
	coords, err := s.getDeliveryCoordinatesHandler.Handle(view.Bind(ctx.Request().Context()), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCoordinates(coords))
}

// InvokeAction handles POST /api/v1/views/{viewId}/deliveries/{deliveryId}/actions/{action}.
// Gating rejections answer 409, invalid input 422 and backend failures 502;
// the body is an ActionResult in every case.
func (s *Server) InvokeAction(ctx echo.Context, viewId string, deliveryId int64, action string) error {
	view, err := s.view(viewId)
	if err != nil {
		return s.fail(ctx, err)
	}
	kind, err := delivery.ParseActionKind(action)
	if err != nil {
		kind = delivery.ActionKind(action)
	}

	outcome := view.Controller().Dispatch(view.Bind(ctx.Request().Context()), kernel.DeliveryID(deliveryId), kind)
	return ctx.JSON(statusOfOutcome(outcome), toActionResult(outcome, view.Controller()))
}

// GetStep handles GET /api/v1/steps/{status} - projects a raw backend status.
func (s *Server) GetStep(ctx echo.Context, status string) error {
	step := delivery.ProjectRaw(status)
	cfg := delivery.ConfigFor(step)
	return ctx.JSON(http.StatusOK, servers.Step{
		Status:  status,
		Step:    step.String(),
		Label:   cfg.Label,
		Actions: actionNames(cfg.Actions),
	})
}

func (s *Server) view(raw string) (*workflow.View, error) {
	id, err := kernel.ViewIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return s.views.Get(id)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "status", status, "error", err)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}
