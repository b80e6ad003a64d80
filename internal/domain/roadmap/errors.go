package roadmap

import (
	"errors"
	"fmt"
)

// Domain errors for roadmap operations.
var (
	// ErrDocumentNotFound indicates the roadmap file does not exist.
	ErrDocumentNotFound = errors.New("roadmap document not found")

	// ErrDocumentParse indicates the roadmap file is not valid JSON.
	ErrDocumentParse = errors.New("roadmap document is not valid JSON")

	// ErrDocumentWrite indicates the roadmap file could not be written.
	ErrDocumentWrite = errors.New("failed to write roadmap document")

	// ErrItemNotFound indicates no item carries the requested id.
	ErrItemNotFound = errors.New("roadmap item not found")

	// ErrInvalidStatus indicates a status value outside the known enumeration.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidTransition indicates a status move the transition table forbids.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrEmptyField indicates a required argument was blank or whitespace-only.
	ErrEmptyField = errors.New("required field is empty")

	// ErrInvalidKeyValue indicates a malformed key=value argument.
	ErrInvalidKeyValue = errors.New("invalid key=value argument")
)

// TransitionError reports a rejected status move with the legal alternatives.
type TransitionError struct {
	ItemID  string
	From    Status
	To      Status
	Allowed []Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition %q from %q to %q (valid targets: %v)",
		e.ItemID, e.From, e.To, e.Allowed)
}

// Is allows errors.Is to match TransitionError against ErrInvalidTransition.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// NotFoundError reports a missing item id.
type NotFoundError struct {
	ItemID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with ID %q not found", e.ItemID)
}

// Is allows errors.Is to match NotFoundError against ErrItemNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
