package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"rider/internal/core/application/usecases/commands"
	"rider/internal/core/application/usecases/queries"
	"rider/internal/core/domain/model/delivery"
	"rider/internal/core/domain/model/kernel"
	"rider/internal/pkg/errs"
)

const (
	InFlightMessage   = "이미 처리 중인 요청입니다."
	NotAllowedMessage = "현재 단계에서 할 수 없는 요청입니다."
	NotFoundMessage   = "배달 정보를 찾을 수 없습니다."
)

// Reason classifies why a dispatch did or did not succeed.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonInvalid    Reason = "INVALID"
	ReasonInFlight   Reason = "IN_FLIGHT"
	ReasonNotAllowed Reason = "NOT_ALLOWED"
	ReasonNotFound   Reason = "NOT_FOUND"
	ReasonBackend    Reason = "BACKEND"
)

// Next tells the client where to go after a successful action.
type Next struct {
	Kind delivery.Effect
	Path string
}

// Outcome is the result of one Dispatch.
type Outcome struct {
	Result delivery.ActionResult
	Reason Reason
	// Step is the expected step after success, or the current one otherwise.
	Step delivery.Step
	// Next is set only on success.
	Next *Next
	// Detail is the re-fetched delivery after a refresh-in-place effect, or
	// the delivery as loaded before the action otherwise.
	Detail *queries.DeliveryView
}

// Controller gates rider actions on one view.
//
// An action is sent only when the step table allows it for the delivery's
// current step and no other action on the same delivery is in flight.
// Actions on different deliveries do not block each other.
type Controller struct {
	details DetailLoader
	actions ActionInvoker
	logger  *slog.Logger

	mu         sync.Mutex
	acting     map[kernel.DeliveryID]uint64
	generation uint64
}

func NewController(details DetailLoader, actions ActionInvoker, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		details: details,
		actions: actions,
		logger:  logger.With("component", "TransitionController"),
		acting:  make(map[kernel.DeliveryID]uint64),
	}
}

// LegalActions returns the actions the rider may take on d now.
func (c *Controller) LegalActions(d delivery.Delivery) []delivery.ActionKind {
	return d.Config().Actions
}

// IsActing reports whether an action on id is in flight.
func (c *Controller) IsActing(id kernel.DeliveryID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.acting[id]
	return ok
}

// Dispatch loads the delivery, checks the action against its step and sends it.
// A failed action leaves the delivery where it was and actionable again.
func (c *Controller) Dispatch(ctx context.Context, id kernel.DeliveryID, kind delivery.ActionKind) Outcome {
	cmd, err := commands.NewInvokeActionCommand(kind, id)
	if err != nil {
		return Outcome{Result: delivery.Failed(commands.InvalidRequestMessage), Reason: ReasonInvalid}
	}

	release, ok := c.acquire(id)
	if !ok {
		return Outcome{Result: delivery.Failed(InFlightMessage), Reason: ReasonInFlight}
	}
	defer release()

	current, err := c.load(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Outcome{Result: delivery.Failed(NotFoundMessage), Reason: ReasonNotFound}
		}
		return Outcome{Result: delivery.Failed(commands.FailureMessage(err)), Reason: ReasonBackend}
	}

	if !current.Delivery.Allows(kind) {
		c.logger.InfoContext(ctx, "action not allowed in current step",
			"delivery_id", id.Int64(), "action", kind.String(), "step", current.Step.String())
		return Outcome{
			Result: delivery.Failed(NotAllowedMessage),
			Reason: ReasonNotAllowed,
			Step:   current.Step,
			Detail: &current,
		}
	}

	result := c.actions.Handle(ctx, cmd)
	if !result.OK {
		return Outcome{Result: result, Reason: ReasonBackend, Step: current.Step, Detail: &current}
	}

	return c.advance(ctx, id, kind, result, current)
}

// Reset clears every acting flag. Actions still in flight finish but no
// longer block new ones.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acting = make(map[kernel.DeliveryID]uint64)
}

func (c *Controller) advance(
	ctx context.Context,
	id kernel.DeliveryID,
	kind delivery.ActionKind,
	result delivery.ActionResult,
	before queries.DeliveryView,
) Outcome {
	t, ok := delivery.TransitionFor(kind)
	if !ok {
		return Outcome{Result: result, Step: before.Step, Detail: &before}
	}
	out := Outcome{
		Result: result,
		Step:   t.To,
		Next:   &Next{Kind: t.Effect, Path: destination(t.Effect, id)},
	}
	if t.Effect != delivery.EffectRefreshInPlace {
		return out
	}

	refreshed, err := c.load(ctx, id)
	if err != nil {
		c.logger.WarnContext(ctx, "refresh after action failed", "delivery_id", id.Int64(), "error", err)
		return out
	}
	out.Step = refreshed.Step
	out.Detail = &refreshed
	return out
}

func (c *Controller) load(ctx context.Context, id kernel.DeliveryID) (queries.DeliveryView, error) {
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return queries.DeliveryView{}, err
	}
	return c.details.Handle(ctx, query)
}

// acquire sets the acting flag of id. The returned release clears it unless
// a Reset happened in between.
func (c *Controller) acquire(id kernel.DeliveryID) (func(), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.acting[id]; busy {
		return nil, false
	}
	c.generation++
	gen := c.generation
	c.acting[id] = gen
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.acting[id] == gen {
			delete(c.acting, id)
		}
	}, true
}

func destination(effect delivery.Effect, id kernel.DeliveryID) string {
	switch effect {
	case delivery.EffectNavigateDetail:
		return fmt.Sprintf("/rider/deliveries/%d", id.Int64())
	case delivery.EffectNavigateInProgress, delivery.EffectRefreshInPlace:
		return fmt.Sprintf("/rider/deliveries/%d/in-progress", id.Int64())
	default:
		return "/rider/deliveries"
	}
}
