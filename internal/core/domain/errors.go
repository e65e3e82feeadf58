package domain

import (
	"errors"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumn indicates a required header label is absent from the table.
	ErrMissingColumn = errors.New("missing required column")

	// ErrTableNotFound indicates the document has no table with the configured anchor.
	ErrTableNotFound = errors.New("table not found")

	// ErrNoDocuments indicates the input location yielded no documents.
	ErrNoDocuments = errors.New("no documents found")

	// ErrUnsupportedFormat indicates an unknown output format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidUnits indicates a unit cell that is not a number.
	ErrInvalidUnits = errors.New("invalid unit value")
)

// MissingColumnError lists the header labels that could not be resolved.
type MissingColumnError struct {
	Labels []string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return ErrMissingColumn.Error() + ": " + strings.Join(e.Labels, ", ")
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
