// Package domain implementeert de meerstaps intake-wizards: stapvalidatie,
// selectielimieten en de inzendstatus die de voorkant toont.
package domain

import (
	"context"
	"errors"
)

// Status reflects the submission lifecycle a wizard exposes to its UI.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

// Answers accumulates the in-progress input of one wizard. Single-value
// fields, bounded multi-selects and booleans are kept apart so selection
// limits can be enforced per field.
type Answers struct {
	values map[string]string
	multi  map[string][]string
	flags  map[string]bool
}

// NewAnswers returns an empty answer set.
func NewAnswers() *Answers {
	return &Answers{
		values: map[string]string{},
		multi:  map[string][]string{},
		flags:  map[string]bool{},
	}
}

// SetValue stores a single-value answer (selected code or free text).
func (a *Answers) SetValue(field, value string) {
	a.values[field] = value
}

// Value returns the stored single-value answer, or "".
func (a *Answers) Value(field string) string {
	return a.values[field]
}

// SetFlag stores a boolean answer such as consent.
func (a *Answers) SetFlag(field string, value bool) {
	a.flags[field] = value
}

// Flag returns the stored boolean answer.
func (a *Answers) Flag(field string) bool {
	return a.flags[field]
}

// Multi returns a copy of the current multi-select values for field.
func (a *Answers) Multi(field string) []string {
	return append([]string(nil), a.multi[field]...)
}

// ToggleMulti flips value in the multi-select field. Removing is always
// allowed; adding beyond max is a silent no-op rather than an error, so a
// full selection simply stops absorbing clicks. max <= 0 means unbounded.
func (a *Answers) ToggleMulti(field, value string, max int) {
	current := a.multi[field]
	for i, existing := range current {
		if existing == value {
			a.multi[field] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
	if max > 0 && len(current) >= max {
		return
	}
	a.multi[field] = append(current, value)
}

// Values returns a copy of all single-value answers.
func (a *Answers) Values() map[string]string {
	result := make(map[string]string, len(a.values))
	for k, v := range a.values {
		result[k] = v
	}
	return result
}

// MultiValues returns a copy of all multi-select answers.
func (a *Answers) MultiValues() map[string][]string {
	result := make(map[string][]string, len(a.multi))
	for k, v := range a.multi {
		result[k] = append([]string(nil), v...)
	}
	return result
}

// Flags returns a copy of all boolean answers.
func (a *Answers) Flags() map[string]bool {
	result := make(map[string]bool, len(a.flags))
	for k, v := range a.flags {
		result[k] = v
	}
	return result
}

// Reset clears every answer, returning the set to its mounted state.
func (a *Answers) Reset() {
	a.values = map[string]string{}
	a.multi = map[string][]string{}
	a.flags = map[string]bool{}
}

// Step is one wizard screen. Validate returns "" when the step is complete,
// otherwise the first unmet requirement as a user-facing message. Checks run
// in a fixed order so the surfaced message is deterministic.
type Step struct {
	Name     string
	Validate func(a *Answers) string
}

// Submitter delivers a completed wizard's answers. Implementations perform
// exactly one network call per invocation.
type Submitter interface {
	Submit(ctx context.Context, a *Answers) error
}

// RejectedError carries the user-facing message a submission endpoint
// returned for a rejected payload.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// Wizard drives a linear multi-step intake form. Step indices run 0..N-1;
// Next refuses to advance past an incomplete step, Back always succeeds.
type Wizard struct {
	steps   []Step
	answers *Answers
	step    int
	message string
	status  Status
}

// NewWizard builds a wizard positioned at step 0 with empty answers.
func NewWizard(steps []Step) *Wizard {
	return &Wizard{steps: steps, answers: NewAnswers()}
}

// Answers exposes the mutable answer set bound to this wizard.
func (w *Wizard) Answers() *Answers {
	return w.answers
}

// Step returns the current step index.
func (w *Wizard) Step() int {
	return w.step
}

// StepCount returns the number of steps.
func (w *Wizard) StepCount() int {
	return len(w.steps)
}

// Message returns the currently surfaced validation or submit message.
func (w *Wizard) Message() string {
	return w.message
}

// Status returns the submission status.
func (w *Wizard) Status() Status {
	return w.status
}

// ValidateStep runs the validator of step i, returning "" when valid.
func (w *Wizard) ValidateStep(i int) string {
	if i < 0 || i >= len(w.steps) {
		return ""
	}
	if w.steps[i].Validate == nil {
		return ""
	}
	return w.steps[i].Validate(w.answers)
}

// Next validates the current step and advances when it is complete. The
// index clamps at the final step. Returns false when the step is incomplete.
func (w *Wizard) Next() bool {
	if msg := w.ValidateStep(w.step); msg != "" {
		w.message = msg
		return false
	}
	w.message = ""
	if w.step < len(w.steps)-1 {
		w.step++
	}
	return true
}

// Back retreats one step, clamped at 0, and clears any surfaced message.
func (w *Wizard) Back() {
	w.message = ""
	if w.step > 0 {
		w.step--
	}
}

// firstIncomplete re-validates every step in order and returns the first
// failing message, mirroring what repeated Next calls would surface.
func (w *Wizard) firstIncomplete() string {
	for i := range w.steps {
		if msg := w.ValidateStep(i); msg != "" {
			return msg
		}
	}
	return ""
}

// Submit re-runs full validation and hands the answers to the submitter.
// While a submission is in flight further calls are no-ops, which is the
// only duplicate-submit protection this flow has. On success the answers
// reset and the wizard shows a persistent confirmation; on failure the
// answers are preserved for resubmission.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter) error {
	if w.status == StatusSubmitting {
		return nil
	}
	if msg := w.firstIncomplete(); msg != "" {
		w.message = msg
		return &RejectedError{Message: msg}
	}

	w.status = StatusSubmitting
	w.message = ""

	err := submitter.Submit(ctx, w.answers)
	if err != nil {
		w.status = StatusFailed
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			w.message = rejected.Message
		} else {
			w.message = "Versturen is niet gelukt. Probeer het opnieuw."
		}
		return err
	}

	w.status = StatusSucceeded
	w.answers.Reset()
	w.step = 0
	return nil
}
