package contactform

import "go-contact-form/internal/domain"

const (
	Header        = "Contact Form"
	SubmitLabel   = "Submit"
	ErrorTestID   = "error"
	MessageTestID = "messageDisplay"
)

type inputDef struct {
	label     string
	required  bool
	multiline bool
}

var inputs = map[domain.Field]inputDef{
	domain.FieldFirstName: {label: "First Name*", required: true},
	domain.FieldLastName:  {label: "Last Name*", required: true},
	domain.FieldEmail:     {label: "Email*", required: true},
	domain.FieldMessage:   {label: "Message", multiline: true},
}

// Label returns the display label of field.
func Label(field domain.Field) string {
	return inputs[field].label
}

// Render describes what f displays. It does not modify f.
func Render(f domain.ContactForm) domain.View {
	values := f.Values()
	errs := f.Errors()

	view := domain.View{
		Header: Header,
		Submit: domain.ButtonView{Label: SubmitLabel, Role: "button"},
		Errors: []domain.ErrorView{},
		Status: f.Status(),
	}

	for _, field := range domain.Fields() {
		def := inputs[field]
		view.Inputs = append(view.Inputs, domain.InputView{
			Name:      field,
			ID:        string(field),
			Label:     def.label,
			Value:     values.Get(field),
			Multiline: def.multiline,
			Required:  def.required,
			State:     f.FieldStatus(field),
		})

		if msg, ok := errs[field]; ok {
			view.Errors = append(view.Errors, domain.ErrorView{
				Field:   field,
				Message: msg,
				TestID:  ErrorTestID,
			})
		}
	}

	if s := f.Snapshot(); s != nil {
		view.Display = &domain.DisplayView{
			FirstName:     s.FirstName,
			LastName:      s.LastName,
			Email:         s.Email,
			Message:       s.Message,
			ShowMessage:   s.Message != "",
			MessageTestID: MessageTestID,
		}
	}

	return view
}
