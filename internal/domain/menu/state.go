package menu

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("invalid menu state")

// State is closed: every transition switches over all four values and panics on anything else.
type State string

const (
	StateNew       State = "new"
	StatePublished State = "published"
	StateActive    State = "active"
	StateDeleted   State = "deleted"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateNew, StatePublished, StateActive, StateDeleted:
		return true
	default:
		return false
	}
}

func ParseState(s string) (State, error) {
	st := State(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w %q", ErrInvalidState, s)
	}
	return st, nil
}

func unknownState(s State) string {
	return fmt.Sprintf("menu: unknown state %q", string(s))
}
