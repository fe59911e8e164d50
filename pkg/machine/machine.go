package machine

import (
	"errors"
	"fmt"
	"slices"
)

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine checks transitions out of a current state
type StateMachine[S State] struct {
	current     S
	transitions []Allowable[S]
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](currentState S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: currentState, transitions: transitions}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Can reports whether the machine may move to s from its current state
func (m *StateMachine[S]) Can(s S) bool {
	for _, transition := range m.transitions {
		if transition.from == m.current && slices.Contains(transition.to, s) {
			return true
		}
	}

	return false
}

// ToState returns ErrInvalidTransition, annotated with both states, if s can't be reached
func (m *StateMachine[S]) ToState(s S) error {
	if m.Can(s) {
		return nil
	}

	return fmt.Errorf("%w: %q to %q", ErrInvalidTransition, string(m.current), string(s))
}
