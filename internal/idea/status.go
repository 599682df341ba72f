package idea

import (
	"fmt"
	"strings"

	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/samber/lo"
)

// State is the phase of the most recent submission attempt.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Status is what the presentation layer renders after each transition.
// Message is set for Succeeded and Failed; ThankYou only for Succeeded.
type Status struct {
	State    State
	Message  string
	ThankYou string
}

// ValidationError lists the fields that keep a draft from being submitted.
type ValidationError struct {
	Fields []model.Field
}

func (e *ValidationError) Error() string {
	names := lo.Map(e.Fields, func(f model.Field, _ int) string { return string(f) })
	return "invalid fields: " + strings.Join(names, ", ")
}
