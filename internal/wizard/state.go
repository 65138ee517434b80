package wizard

import "fmt"

// SubmissionStatus is the submission sub-state of a form.
type SubmissionStatus int

const (
	SubmissionIdle SubmissionStatus = iota
	SubmissionSubmitting
	SubmissionSucceeded
	SubmissionFailed
)

func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionIdle:
		return "idle"
	case SubmissionSubmitting:
		return "submitting"
	case SubmissionSucceeded:
		return "succeeded"
	case SubmissionFailed:
		return "failed"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

func (s SubmissionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SubmissionStatus) UnmarshalText(text []byte) error {
	for _, status := range []SubmissionStatus{SubmissionIdle, SubmissionSubmitting, SubmissionSucceeded, SubmissionFailed} {
		if status.String() == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown submission status %q", text)
}

type submissionEvent string

const (
	eventSubmit  submissionEvent = "submit"
	eventSucceed submissionEvent = "succeed"
	eventFail    submissionEvent = "fail"
	eventReset   submissionEvent = "reset"
)

// transition is the only place submission status changes are decided.
func transition(current SubmissionStatus, event submissionEvent) (SubmissionStatus, error) {
	if event == eventReset {
		return SubmissionIdle, nil
	}

	switch current {
	case SubmissionIdle, SubmissionFailed:
		if event == eventSubmit {
			return SubmissionSubmitting, nil
		}
	case SubmissionSubmitting:
		switch event {
		case eventSucceed:
			return SubmissionSucceeded, nil
		case eventFail:
			return SubmissionFailed, nil
		}
	case SubmissionSucceeded:
	default:
		return current, fmt.Errorf("unknown submission state %q", current)
	}
	return current, fmt.Errorf("invalid transition: %s --(%s)--> ?", current, event)
}

// FormState is a snapshot of one wizard.
type FormState struct {
	CurrentStep int               `json:"current_step"`
	TotalSteps  int               `json:"total_steps"`
	Fields      map[string]Value  `json:"fields"`
	Errors      map[string]string `json:"errors"`
	Submission  SubmissionStatus  `json:"submission"`
}

func newFormState(form *Form) FormState {
	return FormState{
		CurrentStep: 1,
		TotalSteps:  form.StepCount(),
		Fields:      form.defaults(),
		Errors:      make(map[string]string),
		Submission:  SubmissionIdle,
	}
}

func (s FormState) clone() FormState {
	out := s
	out.Fields = make(map[string]Value, len(s.Fields))
	for k, v := range s.Fields {
		out.Fields[k] = v.clone()
	}
	out.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	return out
}

// Payload flattens the field values for the submission boundary.
func (s FormState) Payload() map[string]any {
	payload := make(map[string]any, len(s.Fields))
	for k, v := range s.Fields {
		payload[k] = v.Payload()
	}
	return payload
}
