package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the input could not be read or parsed.
	ErrParse = errors.New("parse error")

	// ErrStructure indicates the document layout is not the one expected.
	ErrStructure = errors.New("structure error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to load an input document.
// This includes I/O failures, unknown character sets and HTML or
// JSON/YAML syntax errors.
type ParseError struct {
	// Path is the file path, URL or source identifier
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// StructureError reports an expected node that is absent from the document.
// It is raised as a panic value by the schemas package.
type StructureError struct {
	// Section is the schema section being read; empty when the heading itself is missing
	Section string
	// Selector is the structural pattern that matched nothing
	Selector string
	// Row is the 1-based table row, 0 when the failure is not row specific
	Row int
	// Message describes what was expected
	Message string
}

// Error returns a human-readable error message.
func (e *StructureError) Error() string {
	msg := "structure error"
	if e.Section != "" {
		msg += " in section " + e.Section
	}
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Selector != "" {
		msg += fmt.Sprintf(": no node matches %q", e.Selector)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as StructureError has no underlying cause.
func (e *StructureError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
