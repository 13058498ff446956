// Package contactform implements the contact form component: a state holder
// that validates fields on change and on submit, and a renderer that turns
// its state into a description of the displayed elements.
package contactform

import "go-contact-form/internal/domain"

// Form holds the state of one mounted contact form. It is not safe for
// concurrent use; hosts serialise access.
type Form struct {
	validator *Validator

	values    domain.FieldValues
	errors    domain.ErrorState
	touched   map[domain.Field]bool
	status    domain.SubmitStatus
	submitted *domain.FieldValues
}

var _ domain.ContactForm = (*Form)(nil)

func NewForm(v *Validator) *Form {
	f := &Form{validator: v}
	f.Reset()
	return f
}

// SetFieldValue stores text and re-validates that field only.
func (f *Form) SetFieldValue(field domain.Field, text string) {
	f.values = f.values.With(field, text)
	f.touched[field] = true
	f.errors = f.errors.Apply(field, f.validator.ValidateField(field, text))
}

// Submit validates every field. When all pass the current values replace the
// submitted snapshot; otherwise the snapshot is left as it was. Field text is
// never cleared.
func (f *Form) Submit() domain.SubmitStatus {
	results := f.validator.ValidateAll(f.values)

	errs := domain.ErrorState{}
	for _, field := range domain.Fields() {
		f.touched[field] = true
		errs = errs.Apply(field, results[field])
	}
	f.errors = errs

	if len(errs) > 0 {
		f.status = domain.SubmitRejected
		return f.status
	}

	snapshot := f.values
	f.submitted = &snapshot
	f.status = domain.SubmitAccepted
	return f.status
}

// Reset returns the form to its freshly mounted state.
func (f *Form) Reset() {
	f.values = domain.FieldValues{}
	f.errors = domain.ErrorState{}
	f.touched = make(map[domain.Field]bool, len(domain.Fields()))
	f.status = domain.SubmitIdle
	f.submitted = nil
}

func (f *Form) Values() domain.FieldValues { return f.values }

// Errors returns a copy of the current error state.
func (f *Form) Errors() domain.ErrorState {
	out := make(domain.ErrorState, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Snapshot returns a copy of the last accepted values, or nil.
func (f *Form) Snapshot() *domain.FieldValues {
	if f.submitted == nil {
		return nil
	}
	s := *f.submitted
	return &s
}

func (f *Form) Status() domain.SubmitStatus { return f.status }

func (f *Form) FieldStatus(field domain.Field) domain.FieldStatus {
	switch {
	case !f.touched[field]:
		return domain.FieldUntouched
	case f.errors[field] != "":
		return domain.FieldInvalid
	default:
		return domain.FieldValid
	}
}
