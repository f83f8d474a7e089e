package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/verveschool/cv-builder/internal/db"
	"github.com/verveschool/cv-builder/internal/parsing"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrDocumentNotFound indicates no stored document has the requested ID
type ErrDocumentNotFound struct {
	ID uuid.UUID
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}

// ErrStoreUnavailable indicates the server was started without a document store
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "document store is not configured"
}

// ErrPageLimit indicates the rendered document is longer than allowed
type ErrPageLimit struct {
	Pages int
	Max   int
}

func (e *ErrPageLimit) Error() string {
	return fmt.Sprintf("CV has %d pages, maximum allowed is %d", e.Pages, e.Max)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		notFoundErr    *ErrDocumentNotFound
		unavailableErr *ErrStoreUnavailable
		pageLimitErr   *ErrPageLimit
		parseErr       *parsing.ParseError
		shapeErr       *parsing.ValidationError
		tooLargeErr    *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.As(err, &shapeErr), errors.As(err, &pageLimitErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFoundErr), errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
