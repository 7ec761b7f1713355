package joinflow

import (
	"errors"
	"testing"
)

func validForm() Form {
	return Form{
		FullName:         "Asha Patel",
		Email:            "asha@example.com",
		Phone:            "+91 9000000000",
		Address:          "12 Green Field Road",
		City:             "Pune",
		State:            "Maharashtra",
		PinCode:          "411001",
		InvestmentAmount: 50000,
		TermsAccepted:    true,
	}
}

func TestHappyPath(t *testing.T) {
	f := validForm()
	s := StepPersonal

	s, err := Transition(s, f, EventNext)
	if err != nil || s != StepAddress {
		t.Fatalf("after first next: state=%v err=%v", s, err)
	}
	s, err = Transition(s, f, EventNext)
	if err != nil || s != StepInvestment {
		t.Fatalf("after second next: state=%v err=%v", s, err)
	}
	s, err = Transition(s, f, EventSubmit)
	if err != nil || s != StepDone {
		t.Fatalf("after submit: state=%v err=%v", s, err)
	}
}

func TestNextBlockedByValidation(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"

	s, err := Transition(StepPersonal, f, EventNext)
	if s != StepPersonal {
		t.Errorf("state moved to %v on invalid step", s)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Field != "email" {
		t.Errorf("failing field = %q, want email", verr.Field)
	}
}

func TestBackFromFirstStep(t *testing.T) {
	if _, err := Transition(StepPersonal, Form{}, EventBack); !errors.Is(err, ErrCannotGoBack) {
		t.Errorf("got %v, want ErrCannotGoBack", err)
	}
}

func TestBackNeverValidates(t *testing.T) {
	// going back with a half-filled form must always succeed
	s, err := Transition(StepInvestment, Form{}, EventBack)
	if err != nil || s != StepAddress {
		t.Errorf("back: state=%v err=%v", s, err)
	}
}

func TestSubmitOnlyOnLastStep(t *testing.T) {
	for _, s := range []State{StepPersonal, StepAddress} {
		if _, err := Transition(s, validForm(), EventSubmit); !errors.Is(err, ErrNotLastStep) {
			t.Errorf("submit from %v: got %v, want ErrNotLastStep", s, err)
		}
	}
}

func TestNextPastLastStep(t *testing.T) {
	if _, err := Transition(StepInvestment, validForm(), EventNext); !errors.Is(err, ErrNotLastStep) {
		t.Errorf("got %v, want ErrNotLastStep", err)
	}
}

func TestDoneIsTerminal(t *testing.T) {
	for _, e := range []Event{EventNext, EventBack, EventSubmit} {
		if _, err := Transition(StepDone, validForm(), e); !errors.Is(err, ErrFlowComplete) {
			t.Errorf("event %v on done: got %v, want ErrFlowComplete", e, err)
		}
	}
}

func TestCompleteValid(t *testing.T) {
	if err := Complete(validForm()); err != nil {
		t.Errorf("Complete(valid) = %v", err)
	}
}

func TestCompleteSurfacesEarliestFailure(t *testing.T) {
	f := validForm()
	f.City = ""
	f.TermsAccepted = false

	var verr *ValidationError
	if err := Complete(f); !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	} else if verr.Step != StepAddress {
		t.Errorf("failing step = %v, want address step", verr.Step)
	}
}

func TestInvestmentValidation(t *testing.T) {
	f := validForm()
	f.InvestmentAmount = 0
	if _, err := Transition(StepInvestment, f, EventSubmit); err == nil {
		t.Error("zero investment amount accepted")
	}

	f = validForm()
	f.TermsAccepted = false
	if _, err := Transition(StepInvestment, f, EventSubmit); err == nil {
		t.Error("unaccepted terms accepted")
	}
}
