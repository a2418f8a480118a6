package engine

import (
	"errors"

	"quiz-bot/api/internal/session"
)

// StateKind is the explicit tag over the three shapes the raw session value can
// take: key absent, empty string, question string. The raw shape is interpreted
// only here, at the store boundary — the state machine never sniffs strings.
type StateKind int

const (
	// StateUnknown — the user has never interacted with the bot.
	StateUnknown StateKind = iota
	// StateIdle — session exists, no active question.
	StateIdle
	// StateActive — a question has been issued and not yet resolved.
	StateActive
)

// State is the decoded per-user session state. Question is set only for
// StateActive and is the bank lookup key.
type State struct {
	Kind     StateKind
	Question string
}

// decodeState maps a raw store read onto the tagged state.
func decodeState(value string, err error) (State, error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return State{Kind: StateUnknown}, nil
	case err != nil:
		return State{}, err
	case value == "":
		return State{Kind: StateIdle}, nil
	default:
		return State{Kind: StateActive, Question: value}, nil
	}
}
