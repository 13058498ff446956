package domain

import (
	"errors"
	"fmt"
)

// Field names one input of the contact form. The string value is the wire
// name used in JSON, form posts and validation messages.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldMessage   Field = "message"
)

var fieldOrder = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

// Fields returns every field in display order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

var (
	ErrUnknownField = errors.New("unknown field")
	ErrFormNotFound = errors.New("form not found")
	ErrTooManyForms = errors.New("too many active forms")
)

// ParseField accepts exactly the four wire names.
func ParseField(name string) (Field, error) {
	for _, f := range fieldOrder {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FieldValues holds the text of every field. The validate tags are the
// form's rules; their order decides which message wins.
type FieldValues struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required,min=5"`
	LastName  string `json:"lastName" form:"lastName" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Message   string `json:"message" form:"message"`
}

func (v FieldValues) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldEmail:
		return v.Email
	case FieldMessage:
		return v.Message
	}
	return ""
}

// With returns a copy of v with f set to text.
func (v FieldValues) With(f Field, text string) FieldValues {
	switch f {
	case FieldFirstName:
		v.FirstName = text
	case FieldLastName:
		v.LastName = text
	case FieldEmail:
		v.Email = text
	case FieldMessage:
		v.Message = text
	}
	return v
}

// Result is the outcome of validating one field.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func Pass() Result { return Result{Valid: true} }

func Fail(message string) Result { return Result{Message: message} }

// ErrorState maps a field to its active error message. A missing key means
// the field has no error. Treat values as immutable: use With and Without.
type ErrorState map[Field]string

func (e ErrorState) With(f Field, message string) ErrorState {
	out := make(ErrorState, len(e)+1)
	for k, v := range e {
		out[k] = v
	}
	out[f] = message
	return out
}

func (e ErrorState) Without(f Field) ErrorState {
	out := make(ErrorState, len(e))
	for k, v := range e {
		if k != f {
			out[k] = v
		}
	}
	return out
}

// Apply records r for f.
func (e ErrorState) Apply(f Field, r Result) ErrorState {
	if r.Valid {
		return e.Without(f)
	}
	return e.With(f, r.Message)
}

type SubmitStatus string

const (
	SubmitIdle     SubmitStatus = "idle"
	SubmitRejected SubmitStatus = "rejected"
	SubmitAccepted SubmitStatus = "accepted"
)

type FieldStatus string

const (
	FieldUntouched FieldStatus = "untouched"
	FieldInvalid   FieldStatus = "invalid"
	FieldValid     FieldStatus = "valid"
)
