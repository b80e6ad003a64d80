package roadmap

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

type statusContext struct {
	ItemID string
}

// StatusMachine executes status moves for a single item. Events are named
// after the target status, so sending "completed" attempts the move to
// completed from wherever the machine currently is.
type StatusMachine struct {
	itemID      string
	current     Status
	interpreter *statekit.Interpreter[statusContext]
}

// NewStatusMachine builds a machine positioned at the item's current status.
// Documents written by older tooling may carry statuses outside the table;
// those get a machine with no outgoing transitions, so the only unforced
// move from them is to themselves.
func NewStatusMachine(current Status, itemID string) (*StatusMachine, error) {
	m := &StatusMachine{itemID: itemID, current: current}
	if !current.IsValid() {
		return m, nil
	}

	builder := statekit.NewMachine[statusContext]("roadmap-status").
		WithInitial(statekit.StateID(current)).
		WithContext(statusContext{ItemID: itemID})

	for _, from := range AllStatuses() {
		targets := validTransitions[from]
		trans := builder.State(statekit.StateID(from)).
			On(statekit.EventType(targets[0])).Target(statekit.StateID(targets[0]))
		for _, to := range targets[1:] {
			trans = trans.On(statekit.EventType(to)).Target(statekit.StateID(to))
		}
		trans.Done()
	}

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build status machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	m.interpreter = interpreter
	return m, nil
}

// Current returns the machine's current status.
func (m *StatusMachine) Current() Status {
	if m.interpreter == nil {
		return m.current
	}
	return Status(m.interpreter.State().Value)
}

// Transition attempts to move to the target status. Moving to the current
// status is a no-op success. A move the table forbids returns a
// TransitionError and leaves the machine where it was.
func (m *StatusMachine) Transition(target Status) error {
	before := m.Current()
	if before == target {
		return nil
	}

	if m.interpreter != nil {
		m.interpreter.Send(statekit.Event{Type: statekit.EventType(target)})
		if m.Current() == target {
			return nil
		}
	}

	return &TransitionError{
		ItemID:  m.itemID,
		From:    before,
		To:      target,
		Allowed: before.ValidTransitions(),
	}
}
