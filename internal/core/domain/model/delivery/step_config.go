package delivery

import "slices"

// StepConfig is the label shown for a step and the ordered actions legal in it.
type StepConfig struct {
	Label   string
	Actions []ActionKind
}

// StepPickupReady has no entry and renders through the ConfigFor fallback.
var stepConfigs = map[Step]StepConfig{
	StepWaiting:    {Label: "배달 대기 중"},
	StepRequested:  {Label: "새로운 배달 요청", Actions: []ActionKind{ActionAccept}},
	StepAccepted:   {Label: "가게로 이동 중", Actions: []ActionKind{ActionPickupComplete}},
	StepPickedUp:   {Label: "픽업 완료", Actions: []ActionKind{ActionStartDelivery}},
	StepDelivering: {Label: "배달 중", Actions: []ActionKind{ActionComplete}},
	StepCompleted:  {Label: "배달 완료"},
	StepCancelled:  {Label: "배달 취소"},
}

// ConfigFor looks up the configuration of step. An unmapped step yields its raw
// string as label and no actions, so something can always be rendered.
// The returned Actions slice is a copy and never nil.
func ConfigFor(step Step) StepConfig {
	cfg, ok := stepConfigs[step]
	if !ok {
		return StepConfig{Label: string(step), Actions: []ActionKind{}}
	}
	actions := make([]ActionKind, len(cfg.Actions))
	copy(actions, cfg.Actions)
	return StepConfig{Label: cfg.Label, Actions: actions}
}

// Allows reports whether kind is configured for step.
func Allows(step Step, kind ActionKind) bool {
	return slices.Contains(stepConfigs[step].Actions, kind)
}

// LegalActions returns the actions a rider may take on a delivery in status s.
func LegalActions(s Status) []ActionKind {
	return ConfigFor(Project(s)).Actions
}
