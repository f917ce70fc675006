package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFormatError(t *testing.T) {
	err := DataFormatError("row has 5 columns, want 7")

	assert.Equal(t, TypeDataFormat, err.Type)
	assert.Equal(t, "row has 5 columns, want 7", err.Message)
	assert.Nil(t, err.Cause)
	assert.NotNil(t, err.Context)
	assert.Equal(t, 65, err.ExitCode())
	assert.Contains(t, err.Error(), "data_format")
	assert.Contains(t, err.Error(), "row has 5 columns, want 7")
}

func TestInsufficientDataError(t *testing.T) {
	err := InsufficientDataError("2 records, want 10")

	assert.Equal(t, TypeInsufficientData, err.Type)
	assert.Nil(t, err.Cause)
	assert.Equal(t, 66, err.ExitCode())
	assert.Contains(t, err.Error(), "insufficient_data")
}

func TestEmptyInputError(t *testing.T) {
	err := EmptyInputError("no tokens to average")

	assert.Equal(t, TypeEmptyInput, err.Type)
	assert.Equal(t, 67, err.ExitCode())
	assert.Contains(t, err.Error(), "empty_input")
	assert.Contains(t, err.Error(), "no tokens to average")
}

func TestTimeoutError(t *testing.T) {
	cause := fmt.Errorf("context deadline exceeded")
	err := TimeoutError("fetching dataset", cause)

	assert.Equal(t, TypeTimeout, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, 75, err.ExitCode())
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := InternalError("unexpected failure", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, 70, err.ExitCode())
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := TimeoutError("fetching dataset", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestErrorsAsThroughWrap(t *testing.T) {
	inner := DataFormatError("bad year").WithContext("row", 42)
	wrapped := fmt.Errorf("loading dataset: %w", inner)

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, TypeDataFormat, e.Type)
	assert.Equal(t, 42, e.Context["row"])
}

func TestWithContext(t *testing.T) {
	err := DataFormatError("bad value").
		WithContext("row", 3).
		WithContext("column", "total_weeks")

	assert.Equal(t, 3, err.Context["row"])
	assert.Equal(t, "total_weeks", err.Context["column"])
}

func TestWithContextNilMap(t *testing.T) {
	err := &Error{Type: TypeInternal, Message: "bare"}
	err.WithContext("key", "value")

	assert.Equal(t, "value", err.Context["key"])
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, TypeEmptyInput, TypeOf(EmptyInputError("nothing")))
	assert.Equal(t, TypeDataFormat, TypeOf(fmt.Errorf("wrap: %w", DataFormatError("bad"))))
	assert.Equal(t, TypeInternal, TypeOf(errors.New("plain")))
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 66, ExitCodeFor(InsufficientDataError("short")))
	assert.Equal(t, 70, ExitCodeFor(errors.New("plain")))
}
