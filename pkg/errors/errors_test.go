package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("buttons.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "buttons.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "buttons.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("buttons.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: buttons.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("buttons[1].action", "references unknown action", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "buttons[1].action", validationErr.Field)
	require.Contains(t, err.Error(), "references unknown action")
}

func TestActionErrorIncludesActionName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not registered")
	err := NewActionError("save", underlying)

	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	require.Equal(t, "save", actionErr.Action)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"save"`)
}

func TestCommandErrorMessage(t *testing.T) {
	t.Parallel()

	err := &CommandError{Command: "false", ExitCode: 1}
	require.Equal(t, `command "false" exited with status 1`, err.Error())

	err.Stderr = "boom"
	require.Contains(t, err.Error(), "boom")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var actionErr *ActionError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, actionErr.Error())
	require.Nil(t, actionErr.Unwrap())
}
