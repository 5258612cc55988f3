package utils

import (
	"fmt"
	"regexp"

	"github.com/toyz/compat-migrate/internal/errors"
)

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs the validators in order and stops at the first failure
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return errors.ConfigurationError(field, "cannot be empty")
		}
		return nil
	}
}

// MatchesRegex validates that a string matches a regex pattern
func MatchesRegex(field, pattern string) Validator[string] {
	regex := regexp.MustCompile(pattern)
	return func(value string) error {
		if !regex.MatchString(value) {
			return errors.ConfigurationError(field, fmt.Sprintf("'%s' must match pattern '%s'", value, pattern))
		}
		return nil
	}
}

// IsQualifiedName validates a dotted identifier such as "com.vaadin.v7"
func IsQualifiedName(field string) Validator[string] {
	return MatchesRegex(field, `^[\p{L}_$][\p{L}\p{N}_$]*(\.[\p{L}_$][\p{L}\p{N}_$]*)*$`)
}

// AtLeast validates that an integer is not below min
func AtLeast(field string, min int) Validator[int] {
	return func(value int) error {
		if value < min {
			return errors.ConfigurationError(field, fmt.Sprintf("must be at least %d, got %d", min, value))
		}
		return nil
	}
}

// Custom creates a custom validator with a custom message
func Custom[T any](field string, message string, validatorFunc func(T) bool) Validator[T] {
	return func(value T) error {
		if !validatorFunc(value) {
			return errors.ConfigurationError(field, message)
		}
		return nil
	}
}
