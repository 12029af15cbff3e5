package delivery

import (
	"fmt"
	"strings"

	"rider/internal/pkg/errs"
)

// ActionKind is one of the irreversible, externally visible operations a rider can invoke.
type ActionKind string

const (
	ActionAccept         ActionKind = "ACCEPT"
	ActionPickupComplete ActionKind = "PICKUP_COMPLETE"
	ActionStartDelivery  ActionKind = "START_DELIVERY"
	ActionComplete       ActionKind = "COMPLETE"
)

// operations maps each kind to the single backend operation it triggers.
var operations = map[ActionKind]string{
	ActionAccept:         "accept",
	ActionPickupComplete: "pickup-complete",
	ActionStartDelivery:  "start",
	ActionComplete:       "complete",
}

// AllActionKinds returns the kinds in workflow order.
func AllActionKinds() []ActionKind {
	return []ActionKind{ActionAccept, ActionPickupComplete, ActionStartDelivery, ActionComplete}
}

// ParseActionKind accepts either the enum name ("PICKUP_COMPLETE", any case) or
// the backend operation name ("pickup-complete").
func ParseActionKind(raw string) (ActionKind, error) {
	v := strings.TrimSpace(raw)
	for kind, op := range operations {
		if strings.EqualFold(v, string(kind)) || strings.EqualFold(v, op) {
			return kind, nil
		}
	}
	if v == "" {
		return "", errs.NewValueIsRequiredError("action")
	}
	return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", raw))
}

func (k ActionKind) Validate() error {
	if _, ok := operations[k]; !ok {
		if k == "" {
			return errs.NewValueIsRequiredError("action")
		}
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", string(k)))
	}
	return nil
}

// Operation returns the backend path segment, e.g. "pickup-complete".
// It returns "" for an invalid kind.
func (k ActionKind) Operation() string {
	return operations[k]
}

func (k ActionKind) String() string {
	return string(k)
}
