package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var transErr *roadmap.TransitionError
	if errors.As(err, &transErr) {
		return NewCLIError(
			transErr.Error(),
			"Use --force to override transition validation",
			err,
		)
	}

	var nfErr *roadmap.NotFoundError
	if errors.As(err, &nfErr) {
		return NewCLIError(
			nfErr.Error(),
			"Run 'roadmapctl find <title-query>' to look up item ids",
			err,
		)
	}

	switch {
	case errors.Is(err, roadmap.ErrDocumentNotFound):
		return NewCLIError("could not load roadmap document", "Check that roadmap/roadmap.json exists at the project root", err)
	case errors.Is(err, roadmap.ErrDocumentParse):
		return NewCLIError("roadmap document is malformed", "Fix the JSON by hand or restore the file from version control", err)
	case errors.Is(err, roadmap.ErrDocumentWrite):
		return NewCLIError("failed to save roadmap document", "Check file permissions and free disk space", err)
	case errors.Is(err, roadmap.ErrInvalidStatus):
		return NewCLIError("invalid status value", fmt.Sprintf("Valid statuses: %s", statusList()), err)
	case errors.Is(err, roadmap.ErrInvalidKeyValue):
		return NewCLIError("malformed argument", "Updates must be key=value pairs, e.g. phase=testing attempts=3", err)
	case errors.Is(err, roadmap.ErrEmptyField):
		return NewCLIError("missing required value", "Both project name and summary must be non-blank", err)
	}

	return err
}

func statusList() string {
	var names []string
	for _, s := range roadmap.AllStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
