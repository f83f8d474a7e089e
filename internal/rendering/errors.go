// Package rendering lays out candidate records into the table-styled CV PDF.
package rendering

import "fmt"

// ConfigError represents an invalid layout configuration
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("layout config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("layout config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure of the PDF primitive during a layout pass.
// The pass is abandoned; no partial output is produced.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
