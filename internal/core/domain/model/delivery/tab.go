package delivery

import (
	"fmt"
	"strings"

	"rider/internal/pkg/errs"
)

// Tab is a named worklist. Each tab is a fixed set of backend statuses; the
// backend accepts one status per query, so loading a tab takes one query per status.
type Tab string

const (
	TabWaiting  Tab = "WAITING"
	TabOngoing  Tab = "ONGOING"
	TabDone     Tab = "DONE"
	TabRequests Tab = "REQUESTS"
)

var tabStatuses = map[Tab][]Status{
	TabWaiting:  {StatusPending, StatusAssigned},
	TabOngoing:  {StatusAccepted, StatusPickedUp, StatusInDelivery},
	TabDone:     {StatusDelivered, StatusCancelled},
	TabRequests: {StatusAssigned},
}

var tabLabels = map[Tab]string{
	TabWaiting:  "대기",
	TabOngoing:  "진행",
	TabDone:     "완료",
	TabRequests: "배달 요청",
}

// AllTabs returns the tabs in display order.
func AllTabs() []Tab {
	return []Tab{TabWaiting, TabOngoing, TabDone, TabRequests}
}

// ParseTab resolves a tab name case-insensitively.
func ParseTab(raw string) (Tab, error) {
	t := Tab(strings.ToUpper(strings.TrimSpace(raw)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Tab) Validate() error {
	if _, ok := tabStatuses[t]; ok {
		return nil
	}
	if t == "" {
		return errs.NewValueIsRequiredError("tab")
	}
	return errs.NewValueIsInvalidErrorWithCause("tab", fmt.Errorf("%q is not a valid tab", string(t)))
}

// Statuses returns a copy of the statuses queried for the tab; nil for an unknown tab.
func (t Tab) Statuses() []Status {
	statuses, ok := tabStatuses[t]
	if !ok {
		return nil
	}
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (t Tab) Label() string {
	if l, ok := tabLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t Tab) String() string {
	return string(t)
}
