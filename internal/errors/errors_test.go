package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cause := stderrors.New("underlying")
	err := New(ErrCodeFileNotFound, "no such file", cause)

	assert.Equal(t, "[ERR_201_FILE_NOT_FOUND] no such file", err.Error())
	assert.Equal(t, CategoryIO, err.Category)
	assert.Same(t, cause, err.Unwrap())
}

func TestCategoryFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{ErrCodeConfigNotFound, CategoryConfig},
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeFileNotFound, CategoryIO},
		{ErrCodeIsDirectory, CategoryIO},
		{ErrCodeInvalidPattern, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
		{"bogus", CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryFromCode(tt.code))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrCodeFilePermission, cause)
	require.NotNil(t, err)
	assert.Equal(t, "permission denied", err.Message)
	assert.True(t, stderrors.Is(err, cause))

	assert.Nil(t, Wrap(ErrCodeFilePermission, nil))
}

func TestIs_MatchesByCode(t *testing.T) {
	err := New(ErrCodeInvalidPattern, "bad glob", nil)
	assert.True(t, stderrors.Is(err, New(ErrCodeInvalidPattern, "other message", nil)))
	assert.False(t, stderrors.Is(err, New(ErrCodeInvalidInput, "bad glob", nil)))
}

func TestWithDetailAndSuggestion(t *testing.T) {
	err := ValidationError("bad input", nil).
		WithDetail("flag", "--context").
		WithSuggestion("pass a non-negative number")

	assert.Equal(t, "--context", err.Details["flag"])
	assert.Equal(t, "pass a non-negative number", err.Suggestion)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CategoryConfig, ConfigError("x", nil).Category)
	assert.Equal(t, CategoryIO, IOError("x", nil).Category)
	assert.Equal(t, CategoryValidation, ValidationError("x", nil).Category)
	assert.Equal(t, CategoryInternal, InternalError("x", nil).Category)
}

func TestGetCodeAndCategory(t *testing.T) {
	err := New(ErrCodeReadFailed, "read failed", nil)
	assert.Equal(t, ErrCodeReadFailed, GetCode(err))
	assert.Equal(t, CategoryIO, GetCategory(err))

	plain := stderrors.New("plain")
	assert.Empty(t, GetCode(plain))
	assert.Empty(t, GetCategory(plain))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitMatch, ExitCode(true, nil))
	assert.Equal(t, ExitNoMatch, ExitCode(false, nil))
	assert.Equal(t, ExitError, ExitCode(false, stderrors.New("boom")))
	assert.Equal(t, ExitError, ExitCode(true, stderrors.New("boom")))
}
