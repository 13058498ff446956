package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator pairs a validator instance with the English translator used to
// turn field errors into messages like "lastName is a required field".
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator that reports fields by their json names.
func New() (*Validator, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := RegisterValidators(validate); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("english translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register translations: %w", err)
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// MustNew is New for package-level initialisation.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates s and returns one message per failing field, keyed by the
// field's json name. Validation stops at the first failing tag of a field, so
// tag order decides which rule reports.
func (v *Validator) Struct(s interface{}) (map[string]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return map[string]string{}, nil
	}
	return v.FormatValidationErrors(err)
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func (v *Validator) FormatValidationErrors(err error) (map[string]string, error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error (e.g. a nil or non-struct argument)
		return nil, err
	}

	messages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := messages[e.Field()]; seen {
			continue
		}
		messages[e.Field()] = e.Translate(v.trans)
	}
	return messages, nil
}

// jsonFieldName reports a struct field by its json tag, falling back to the Go name
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
