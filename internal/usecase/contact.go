package usecase

import (
	"context"
	"fmt"
	"time"

	"go-contact-form/internal/contactform"
	"go-contact-form/internal/domain"
	"go-contact-form/pkg/logger"

	"github.com/google/uuid"
)

type contactFormUsecase struct {
	repo      domain.FormRepository
	validator *contactform.Validator
}

// NewContactFormUsecase creates a new contact form usecase
func NewContactFormUsecase(repo domain.FormRepository, validator *contactform.Validator) domain.ContactFormUsecase {
	return &contactFormUsecase{
		repo:      repo,
		validator: validator,
	}
}

// Mount creates a fresh form instance and returns its id and initial view
func (uc *contactFormUsecase) Mount(ctx context.Context) (string, domain.View, error) {
	form := contactform.NewForm(uc.validator)
	instance := domain.NewFormInstance(uuid.NewString(), form, time.Now())

	if err := uc.repo.Create(ctx, instance); err != nil {
		return "", domain.View{}, fmt.Errorf("failed to mount form: %w", err)
	}

	logger.Log.Debug("Form mounted", "form_id", instance.ID, "active", uc.repo.Len())
	return instance.ID, contactform.Render(form), nil
}

func (uc *contactFormUsecase) View(ctx context.Context, id string) (domain.View, error) {
	return uc.do(ctx, id, func(domain.ContactForm) {})
}

// ChangeField stores a new value for one field and re-validates it
func (uc *contactFormUsecase) ChangeField(ctx context.Context, id string, field string, value string) (domain.View, error) {
	f, err := domain.ParseField(field)
	if err != nil {
		return domain.View{}, err
	}
	return uc.do(ctx, id, func(form domain.ContactForm) {
		form.SetFieldValue(f, value)
	})
}

// Submit validates every field and, when all pass, records the submission.
// Values, when given, are applied as change events for each field whose text
// differs from what the form holds.
func (uc *contactFormUsecase) Submit(ctx context.Context, id string, values *domain.FieldValues) (domain.View, error) {
	var status domain.SubmitStatus
	var errorCount int

	view, err := uc.do(ctx, id, func(form domain.ContactForm) {
		if values != nil {
			current := form.Values()
			for _, f := range domain.Fields() {
				if values.Get(f) != current.Get(f) {
					form.SetFieldValue(f, values.Get(f))
				}
			}
		}
		status = form.Submit()
		errorCount = len(form.Errors())
	})
	if err != nil {
		return domain.View{}, err
	}

	// Field contents are personal data and stay out of the logs
	logger.Log.Info("Form submitted", "form_id", id, "status", status, "errors", errorCount)
	return view, nil
}

func (uc *contactFormUsecase) Reset(ctx context.Context, id string) (domain.View, error) {
	return uc.do(ctx, id, func(form domain.ContactForm) {
		form.Reset()
	})
}

// Unmount discards the instance together with its submitted snapshot
func (uc *contactFormUsecase) Unmount(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Log.Debug("Form unmounted", "form_id", id)
	return nil
}

// do runs fn on the instance under its lock and renders the result
func (uc *contactFormUsecase) do(ctx context.Context, id string, fn func(domain.ContactForm)) (domain.View, error) {
	instance, err := uc.repo.Get(ctx, id)
	if err != nil {
		return domain.View{}, err
	}

	var view domain.View
	instance.Do(func(form domain.ContactForm) {
		fn(form)
		view = contactform.Render(form)
	})
	return view, nil
}
