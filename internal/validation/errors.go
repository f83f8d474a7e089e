// Package validation checks finished CV PDFs against output constraints.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PDFReadError represents bytes that could not be opened as a PDF
type PDFReadError struct {
	Message string
	Cause   error
}

func (e *PDFReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF read error: %s", e.Message)
}

func (e *PDFReadError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading a file
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
