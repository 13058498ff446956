package usecase

import (
	"context"
	"strconv"

	"go-contact-form/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	forms    domain.FormRepository
	maxForms int
}

// NewHealthUsecase reports on the form store. maxForms <= 0 means unbounded.
func NewHealthUsecase(forms domain.FormRepository, maxForms int) HealthUsecase {
	return &healthUsecase{forms: forms, maxForms: maxForms}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	active := u.forms.Len()
	status := "ok"
	// A full store refuses new forms
	if u.maxForms > 0 && active >= u.maxForms {
		status = "degraded"
	}
	return map[string]string{
		"status":       status,
		"active_forms": strconv.Itoa(active),
	}
}
