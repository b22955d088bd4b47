// Package gen turns parsed IDL schemas into generated source units: one
// unit per declared entity, plus a companion test-data unit for every
// data-bearing entity, with output-name collisions resolved before
// anything reaches the writer.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrNameCollision indicates two generated units resolved to the
	// same output name and could not be merged.
	ErrNameCollision = errors.New("thriftgen: unresolvable name collision")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("thriftgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("thriftgen: code generation failed")
)

// CollisionError reports two generated units resolving to the same
// output name with no merge rule covering the pair. Generation aborts
// as a whole; partial output must not be treated as usable.
type CollisionError struct {
	// Name is the contested output name.
	Name string
	// First and Second are the kinds of the two contributing units,
	// in encounter order.
	First, Second Kind
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("thriftgen: output name %q declared twice (%s and %s); rename one declaration",
		e.Name, e.First, e.Second)
}

// Is reports whether the target matches the sentinel error for CollisionError.
func (e *CollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// NewCollisionError creates a new CollisionError.
func NewCollisionError(name string, first, second Kind) *CollisionError {
	return &CollisionError{Name: name, First: first, Second: second}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("thriftgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("thriftgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError represents a failure while emitting or writing a unit.
type GenerationError struct {
	Phase   string // "generate", "resolve", "write"
	Name    string // output name of the unit, if known
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("thriftgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.Name != "" {
		b.WriteString(" (unit: ")
		b.WriteString(e.Name)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, name, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, Name: name, Message: message, Cause: cause}
}

// IsCollisionError reports whether the error is a CollisionError.
func IsCollisionError(err error) bool {
	var collisionErr *CollisionError
	return errors.As(err, &collisionErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
