package onboarding

import "fmt"

// EmptySelectionError reports an attempt to advance past participant
// selection with no students selected.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "at least one student must be selected"
}

// stateError reports a transition invoked from the wrong wizard state.
type stateError struct {
	op   string
	step Step
}

func (e *stateError) Error() string {
	return fmt.Sprintf("%s not allowed at step %s", e.op, e.step)
}
