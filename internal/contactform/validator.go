package contactform

import (
	"go-contact-form/internal/domain"
	"go-contact-form/pkg/validation"
)

// Validator evaluates the form rules declared on domain.FieldValues. It holds
// no state besides the validator engine and is safe for concurrent use.
type Validator struct {
	engine *validation.Validator
}

func NewValidator(engine *validation.Validator) *Validator {
	return &Validator{engine: engine}
}

// DefaultValidator uses a fresh validation engine.
func DefaultValidator() *Validator {
	return NewValidator(validation.MustNew())
}

func (v *Validator) ValidateFirstName(text string) domain.Result {
	return v.ValidateField(domain.FieldFirstName, text)
}

func (v *Validator) ValidateLastName(text string) domain.Result {
	return v.ValidateField(domain.FieldLastName, text)
}

func (v *Validator) ValidateEmail(text string) domain.Result {
	return v.ValidateField(domain.FieldEmail, text)
}

// ValidateMessage always passes; the message is optional and has no rule.
func (v *Validator) ValidateMessage(text string) domain.Result {
	return v.ValidateField(domain.FieldMessage, text)
}

// ValidateField checks text against the rule of field alone. The other
// fields are left at values that cannot fail, so only field can report.
func (v *Validator) ValidateField(field domain.Field, text string) domain.Result {
	values := passingValues.With(field, text)
	return v.ValidateAll(values)[field]
}

// ValidateAll evaluates every field of values.
func (v *Validator) ValidateAll(values domain.FieldValues) map[domain.Field]domain.Result {
	results := make(map[domain.Field]domain.Result, len(domain.Fields()))
	for _, f := range domain.Fields() {
		results[f] = domain.Pass()
	}

	messages, err := v.engine.Struct(values)
	if err != nil {
		// FieldValues is always a struct, so this cannot happen
		panic(err)
	}
	for name, msg := range messages {
		results[domain.Field(name)] = domain.Fail(msg)
	}
	return results
}

var passingValues = domain.FieldValues{
	FirstName: "valid",
	LastName:  "valid",
	Email:     "valid@example.com",
}
