package delivery

// Step is the display grouping a rider sees. Steps are derived from statuses,
// never received from the backend.
type Step string

const (
	StepWaiting     Step = "WAITING"
	StepRequested   Step = "REQUESTED"
	StepAccepted    Step = "ACCEPTED"
	StepPickupReady Step = "PICKUP_READY"
	StepPickedUp    Step = "PICKED_UP"
	StepDelivering  Step = "DELIVERING"
	StepCompleted   Step = "COMPLETED"
	StepCancelled   Step = "CANCELLED"
)

// AllSteps returns every step in display order.
func AllSteps() []Step {
	return []Step{
		StepWaiting,
		StepRequested,
		StepAccepted,
		StepPickupReady,
		StepPickedUp,
		StepDelivering,
		StepCompleted,
		StepCancelled,
	}
}

var projection = map[Status]Step{
	StatusPending:    StepWaiting,
	StatusAssigned:   StepRequested,
	StatusAccepted:   StepAccepted,
	StatusPickedUp:   StepPickedUp,
	StatusInDelivery: StepDelivering,
	StatusDelivered:  StepCompleted,
	StatusCancelled:  StepCancelled,
}

// Project maps a backend status to exactly one step. It is total: an empty or
// unrecognized status yields StepWaiting, so schema drift degrades to
// "nothing actionable yet" instead of an error.
//
// StepPickupReady has no status mapped to it; it exists for display only.
func Project(s Status) Step {
	if step, ok := projection[s]; ok {
		return step
	}
	return StepWaiting
}

// ProjectRaw projects an untyped wire value.
func ProjectRaw(raw string) Step {
	return Project(StatusFromWire(raw))
}

// IsTerminal reports whether the step has no way forward.
func (s Step) IsTerminal() bool {
	return s == StepCompleted || s == StepCancelled
}

func (s Step) String() string {
	return string(s)
}
