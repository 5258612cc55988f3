package errors

import "fmt"

// NotFound reports a missing archive, file, or directory
func NotFound(what, path string) *BaseError {
	return New(NotFoundErrorCode, fmt.Sprintf("%s not found: %s", what, path)).
		WithContext("path", path)
}

// WrapArchiveReadError wraps a failure to open or enumerate an archive
func WrapArchiveReadError(path string, cause error) *BaseError {
	return Wrap(ArchiveReadErrorCode, fmt.Sprintf("failed to read archive '%s'", path), cause).
		WithContext("path", path)
}

// InvalidArgument reports a caller contract violation
func InvalidArgument(param, value, reason string) *BaseError {
	message := fmt.Sprintf("parameter %s: invalid value %s: %s", param, value, reason)
	return New(InvalidArgumentErrorCode, message).
		WithContext("parameter", param).
		WithContext("value", value)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapEncodingError wraps a failure to decode or encode file content
func WrapEncodingError(encoding, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to convert '%s' using encoding %s", path, encoding)
	return Wrap(EncodingErrorCode, message, cause).
		WithContext("encoding", encoding).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// ConfigurationError creates a configuration error
func ConfigurationError(field, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", field, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("field", field)
}

// AddToMultiple adds an error to a MultipleErrors, creating it if nil
func AddToMultiple(multiple **MultipleErrors, err MigrationError) {
	if *multiple == nil {
		*multiple = NewMultipleErrors()
	}
	(*multiple).Add(err)
}
