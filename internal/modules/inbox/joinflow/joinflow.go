// Package joinflow models the multi-step "join as investor" form as a pure
// state machine. The flow has three input steps and a terminal done state;
// advancing past a step requires that step's fields to validate. The package
// holds no storage and no HTTP types, so the exact same transitions drive
// both the API endpoint and the tests.
package joinflow

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// State is the current step of the flow.
type State int

const (
	StepPersonal   State = 1
	StepAddress    State = 2
	StepInvestment State = 3
	StepDone       State = 4
)

// Event is a user action on the form.
type Event int

const (
	EventNext Event = iota
	EventBack
	EventSubmit
)

// Form is the accumulated form payload across all steps.
type Form struct {
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PinCode          string  `json:"pin_code"`
	ServiceID        string  `json:"service_id"`
	InvestmentAmount float64 `json:"investment_amount"`
	Message          string  `json:"message"`
	TermsAccepted    bool    `json:"terms_accepted"`
}

var (
	ErrFlowComplete = errors.New("flow is already complete")
	ErrCannotGoBack = errors.New("cannot go back from the first step")
	ErrNotLastStep  = errors.New("submit is only valid on the last step")

	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidationError reports which field of which step failed.
type ValidationError struct {
	Step  State
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s %s", e.Step, e.Field, e.Msg)
}

// Transition applies an event to a state given the form filled so far. It
// returns the next state, or the unchanged state plus an error when the
// event is not allowed or the current step does not validate.
func Transition(s State, f Form, e Event) (State, error) {
	if s == StepDone {
		return s, ErrFlowComplete
	}

	switch e {
	case EventBack:
		if s == StepPersonal {
			return s, ErrCannotGoBack
		}
		return s - 1, nil

	case EventNext:
		if s == StepInvestment {
			return s, ErrNotLastStep
		}
		if err := validateStep(s, f); err != nil {
			return s, err
		}
		return s + 1, nil

	case EventSubmit:
		if s != StepInvestment {
			return s, ErrNotLastStep
		}
		if err := validateStep(s, f); err != nil {
			return s, err
		}
		return StepDone, nil
	}
	return s, fmt.Errorf("unknown event %d", e)
}

// Complete runs the whole flow front to back against a fully filled form.
// It is what the one-shot submit endpoint uses: any step's validation
// failure surfaces as that step's error.
func Complete(f Form) error {
	s := StepPersonal
	for s != StepInvestment {
		next, err := Transition(s, f, EventNext)
		if err != nil {
			return err
		}
		s = next
	}
	_, err := Transition(s, f, EventSubmit)
	return err
}

func validateStep(s State, f Form) error {
	switch s {
	case StepPersonal:
		if strings.TrimSpace(f.FullName) == "" {
			return &ValidationError{Step: s, Field: "full_name", Msg: "is required"}
		}
		if strings.TrimSpace(f.Email) == "" {
			return &ValidationError{Step: s, Field: "email", Msg: "is required"}
		}
		if !emailRe.MatchString(f.Email) {
			return &ValidationError{Step: s, Field: "email", Msg: "is not a valid address"}
		}
		if strings.TrimSpace(f.Phone) == "" {
			return &ValidationError{Step: s, Field: "phone", Msg: "is required"}
		}

	case StepAddress:
		if strings.TrimSpace(f.Address) == "" {
			return &ValidationError{Step: s, Field: "address", Msg: "is required"}
		}
		if strings.TrimSpace(f.City) == "" {
			return &ValidationError{Step: s, Field: "city", Msg: "is required"}
		}
		if strings.TrimSpace(f.State) == "" {
			return &ValidationError{Step: s, Field: "state", Msg: "is required"}
		}

	case StepInvestment:
		if f.InvestmentAmount <= 0 {
			return &ValidationError{Step: s, Field: "investment_amount", Msg: "must be positive"}
		}
		if !f.TermsAccepted {
			return &ValidationError{Step: s, Field: "terms_accepted", Msg: "must be accepted"}
		}
	}
	return nil
}
