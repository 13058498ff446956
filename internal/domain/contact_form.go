package domain

import (
	"context"
	"sync"
	"time"
)

// ContactForm is the state holder of one mounted form.
type ContactForm interface {
	SetFieldValue(field Field, text string)
	Submit() SubmitStatus
	Reset()
	Values() FieldValues
	Errors() ErrorState
	Snapshot() *FieldValues
	Status() SubmitStatus
	FieldStatus(field Field) FieldStatus
}

// View describes everything the form displays for one state.
type View struct {
	Header  string       `json:"header"`
	Inputs  []InputView  `json:"inputs"`
	Submit  ButtonView   `json:"submit"`
	Errors  []ErrorView  `json:"errors"`
	Display *DisplayView `json:"display,omitempty"`
	Status  SubmitStatus `json:"status"`
}

type InputView struct {
	Name      Field       `json:"name"`
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Value     string      `json:"value"`
	Multiline bool        `json:"multiline"`
	Required  bool        `json:"required"`
	State     FieldStatus `json:"state"`
}

func (i InputView) Invalid() bool { return i.State == FieldInvalid }

type ButtonView struct {
	Label string `json:"label"`
	Role  string `json:"role"`
}

type ErrorView struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
	TestID  string `json:"testId"`
}

// DisplayView shows the last accepted submission. The message region is
// always present; it has content only when ShowMessage is set.
type DisplayView struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Message       string `json:"message,omitempty"`
	ShowMessage   bool   `json:"showMessage"`
	MessageTestID string `json:"messageTestId"`
}

// FormInstance is one mounted form. Access to Form goes through Do.
type FormInstance struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	form       ContactForm
	lastAccess time.Time
}

func NewFormInstance(id string, form ContactForm, now time.Time) *FormInstance {
	return &FormInstance{ID: id, CreatedAt: now, form: form, lastAccess: now}
}

// Do runs fn with exclusive access to the form and marks the instance used.
func (i *FormInstance) Do(fn func(ContactForm)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.lastAccess = time.Now()
	fn(i.form)
}

// IdleSince reports whether the instance has not been used since t.
func (i *FormInstance) IdleSince(t time.Time) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lastAccess.Before(t)
}

// FormRepository keeps mounted form instances.
type FormRepository interface {
	Create(ctx context.Context, instance *FormInstance) error
	Get(ctx context.Context, id string) (*FormInstance, error)
	Delete(ctx context.Context, id string) error
	Len() int
}

// ContactFormUsecase drives mounted forms on behalf of a host.
type ContactFormUsecase interface {
	Mount(ctx context.Context) (string, View, error)
	View(ctx context.Context, id string) (View, error)
	ChangeField(ctx context.Context, id string, field string, value string) (View, error)
	// Submit applies values first when given, as a browser post carries every field.
	Submit(ctx context.Context, id string, values *FieldValues) (View, error)
	Reset(ctx context.Context, id string) (View, error)
	Unmount(ctx context.Context, id string) error
}
