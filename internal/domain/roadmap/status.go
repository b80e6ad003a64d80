package roadmap

import (
	"fmt"
)

// Status is the lifecycle state of a roadmap item.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// validTransitions defines the allowed status moves. Map: current -> targets.
var validTransitions = map[Status][]Status{
	StatusNotStarted: {StatusInProgress, StatusOnHold},
	StatusInProgress: {StatusCompleted, StatusOnHold, StatusNotStarted},
	StatusCompleted:  {StatusInProgress},
	StatusOnHold:     {StatusNotStarted, StatusInProgress},
}

// AllStatuses returns every valid item status.
func AllStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold}
}

// IsValid returns true if the status is one of the four known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo returns true if a move from s to target is allowed.
// Moving to the same status is always allowed.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// ValidTransitions returns the target statuses reachable from s.
func (s Status) ValidTransitions() []Status {
	targets, ok := validTransitions[s]
	if !ok {
		return nil
	}
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %v)", ErrInvalidStatus, s, AllStatuses())
	}
	return status, nil
}
