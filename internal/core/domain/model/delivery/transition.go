package delivery

// Effect is what the client does after an action succeeds.
type Effect string

const (
	// EffectNavigateDetail opens the delivery detail screen, which re-fetches.
	EffectNavigateDetail Effect = "NAVIGATE_DETAIL"
	// EffectNavigateInProgress opens the in-progress screen, which re-fetches.
	EffectNavigateInProgress Effect = "NAVIGATE_IN_PROGRESS"
	// EffectRefreshInPlace re-fetches the detail on the current screen.
	EffectRefreshInPlace Effect = "REFRESH_IN_PLACE"
	// EffectNavigateWorklist returns to the worklist.
	EffectNavigateWorklist Effect = "NAVIGATE_WORKLIST"
)

// Transition describes one client-invoked edge of the rider state machine.
//
//	REQUESTED ──ACCEPT──> ACCEPTED ──PICKUP_COMPLETE──> PICKED_UP ──START_DELIVERY──> DELIVERING ──COMPLETE──> COMPLETED
//
// CANCELLED is reached only through external events and has no Transition.
type Transition struct {
	From   Step
	Action ActionKind
	To     Step
	Effect Effect
}

var transitions = map[ActionKind]Transition{
	ActionAccept:         {From: StepRequested, Action: ActionAccept, To: StepAccepted, Effect: EffectNavigateDetail},
	ActionPickupComplete: {From: StepAccepted, Action: ActionPickupComplete, To: StepPickedUp, Effect: EffectNavigateInProgress},
	ActionStartDelivery:  {From: StepPickedUp, Action: ActionStartDelivery, To: StepDelivering, Effect: EffectRefreshInPlace},
	ActionComplete:       {From: StepDelivering, Action: ActionComplete, To: StepCompleted, Effect: EffectNavigateWorklist},
}

// TransitionFor returns the edge triggered by kind.
func TransitionFor(kind ActionKind) (Transition, bool) {
	t, ok := transitions[kind]
	return t, ok
}

// Transitions returns every client-invoked edge in workflow order.
func Transitions() []Transition {
	out := make([]Transition, 0, len(transitions))
	for _, kind := range AllActionKinds() {
		out = append(out, transitions[kind])
	}
	return out
}
