package kernel

import (
	"fmt"

	"rider/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrViewIDIsNotConstructed is returned when validating a zero ViewID.
var ErrViewIDIsNotConstructed = errs.NewValueIsRequiredError("viewId must be created via NewViewID or ViewIDFromString")

// ViewID identifies one open rider view. Acting flags and fetch intent tokens
// live for as long as the view does.
type ViewID struct {
	id uuid.UUID
}

// NewViewID returns a random (version 4) identifier.
func NewViewID() ViewID {
	return ViewID{id: uuid.New()}
}

// ViewIDFromString parses the canonical or braced/urn forms accepted by google/uuid.
func ViewIDFromString(s string) (ViewID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ViewID{}, errs.NewValueIsInvalidErrorWithCause("viewId", fmt.Errorf("invalid UUID format: %w", err))
	}
	v := ViewID{id: id}
	if err = v.Validate(); err != nil {
		return ViewID{}, err
	}
	return v, nil
}

func (v ViewID) String() string {
	return v.id.String()
}

func (v ViewID) IsEqual(other ViewID) bool {
	return v.id == other.id
}

func (v ViewID) Validate() error {
	if v.id == uuid.Nil {
		return ErrViewIDIsNotConstructed
	}
	return nil
}
