package errs_test

import (
	"errors"
	"testing"

	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORD-1")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORD-1", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("trackingNumber", "TRACK-42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: trackingNumber, ID is: TRACK-42 (cause: connection refused)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")

	assert.Equal(t, "customerId", err.ParamName)
	assert.Equal(t, "value is required: customerId", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("currency")

		assert.Equal(t, "value is invalid: currency", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("unknown status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unknown status)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("carries bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "line\nbreak", 0, 10)

		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("stale aggregate")
	err := errs.NewVersionIsInvalidError("orderVersion", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "version is invalid: orderVersion (cause: stale aggregate)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}
