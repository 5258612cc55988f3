package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{NotFoundErrorCode, "NotFoundError"},
		{ArchiveReadErrorCode, "ArchiveReadError"},
		{InvalidArgumentErrorCode, "InvalidArgumentError"},
		{FileSystemErrorCode, "FileSystemError"},
		{EncodingErrorCode, "EncodingError"},
		{ConfigurationErrorCode, "ConfigurationError"},
		{ErrorCode(99), "UnknownError"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.String())
		})
	}
}

func TestBaseErrorMessageIncludesCause(t *testing.T) {
	cause := stderrors.New("zip: not a valid zip file")
	err := WrapArchiveReadError("server.jar", cause)

	assert.Equal(t, "failed to read archive 'server.jar': zip: not a valid zip file", err.Error())
	assert.Equal(t, ArchiveReadErrorCode, err.ErrorCode())
	assert.Equal(t, "server.jar", err.Context()["path"])
	assert.ErrorIs(t, err, cause)
}

func TestHasCodeFollowsWrapChain(t *testing.T) {
	inner := NotFound("archive", "/tmp/missing.jar")
	outer := fmt.Errorf("building catalog: %w", inner)

	assert.True(t, HasCode(outer, NotFoundErrorCode))
	assert.False(t, HasCode(outer, ArchiveReadErrorCode))
	assert.False(t, HasCode(nil, NotFoundErrorCode))
	assert.False(t, HasCode(stderrors.New("plain"), NotFoundErrorCode))
}

func TestWrapFileSystemErrorKeepsOSError(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here")
	err := WrapFileSystemError("read", "/definitely/not/here", statErr)

	assert.True(t, stderrors.Is(err, os.ErrNotExist))
	assert.Equal(t, "read", err.Context()["operation"])
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("wildcard", "com.vaadin.ui.*", "must start with com.vaadin.v7.")

	assert.Equal(t, InvalidArgumentErrorCode, err.ErrorCode())
	assert.Contains(t, err.Error(), "must start with com.vaadin.v7.")
	assert.Equal(t, "com.vaadin.ui.*", err.Context()["value"])
}

func TestMultipleErrors(t *testing.T) {
	var multi *MultipleErrors
	assert.NoError(t, multi.ErrOrNil())

	AddToMultiple(&multi, ConfigurationError("version", "must not be empty"))
	require.NotNil(t, multi)
	assert.Equal(t, "configuration error in 'version': must not be empty", multi.Error())

	AddToMultiple(&multi, ConfigurationError("jobs", "must be positive"))
	err := multi.ErrOrNil()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple errors (2 total)")
	assert.Contains(t, err.Error(), "  2. configuration error in 'jobs': must be positive")
	assert.True(t, HasCode(err, ConfigurationErrorCode))
	assert.Equal(t, "jobs", multi.Context()["error_1_field"])

	var base *BaseError
	assert.True(t, stderrors.As(err, &base))
}
