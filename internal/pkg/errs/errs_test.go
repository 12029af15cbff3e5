package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"rider/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", "42")

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("backend returned 404")
		err := errs.NewObjectNotFoundErrorWithCause("deliveryId", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: deliveryId, ID is: 42 (cause: backend returned 404)",
			err.Error())
	})

	t.Run("Error with numeric ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("tab")

		assert.Equal(t, "tab", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: tab", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown tab BOGUS")
		err := errs.NewValueIsInvalidErrorWithCause("tab", cause)

		assert.Equal(t, "value is invalid: tab (cause: unknown tab BOGUS)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.InDelta(t, 91.5, err.Value, 0.0001)
		assert.Equal(t, "value is invalid: 91.5 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("parse failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("deliveryId", -5, 1, "max", cause)

		assert.Equal(t,
			"value is invalid: -5 is deliveryId, min value is 1, max value is max (cause: parse failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("memo", "ring\nthe bell", 0, 10)
		assert.Contains(t, err.Error(), "ring the bell")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliveryId")

		assert.Equal(t, "value is required: deliveryId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("BACKEND_BASE_URL", errors.New("empty"))

		assert.Equal(t, "value is required: BACKEND_BASE_URL (cause: empty)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load detail: %w", errs.NewObjectNotFoundError("deliveryId", "7"))
		require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, wrapped, &notFound)
		assert.Equal(t, "7", notFound.ID)
	})

	t.Run("each type unwraps to its sentinel", func(t *testing.T) {
		require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
	})
}
