package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-contact-form/internal/contactform"
	"go-contact-form/internal/domain"
	"go-contact-form/internal/usecase"
	"go-contact-form/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) Create(ctx context.Context, instance *domain.FormInstance) error {
	return m.Called(ctx, instance).Error(0)
}

func (m *MockFormRepo) Get(ctx context.Context, id string) (*domain.FormInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormInstance), args.Error(1)
}

func (m *MockFormRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFormRepo) Len() int {
	return m.Called().Int(0)
}

var validator = contactform.DefaultValidator()

func init() {
	logger.Nop()
}

func newInstance(id string) *domain.FormInstance {
	return domain.NewFormInstance(id, contactform.NewForm(validator), time.Now())
}

func TestMount(t *testing.T) {
	ctx := context.Background()

	t.Run("Should store a new instance and render it", func(t *testing.T) {
		repo := new(MockFormRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.FormInstance")).Return(nil)
		repo.On("Len").Return(1)
		uc := usecase.NewContactFormUsecase(repo, validator)

		id, view, err := uc.Mount(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, "Contact Form", view.Header)
		assert.Equal(t, domain.SubmitIdle, view.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail when the repository is full", func(t *testing.T) {
		repo := new(MockFormRepo)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrTooManyForms)
		uc := usecase.NewContactFormUsecase(repo, validator)

		_, _, err := uc.Mount(ctx)
		assert.ErrorIs(t, err, domain.ErrTooManyForms)
	})
}

func TestChangeField(t *testing.T) {
	ctx := context.Background()

	t.Run("Should render one error for a short first name", func(t *testing.T) {
		repo := new(MockFormRepo)
		repo.On("Get", ctx, "form1").Return(newInstance("form1"), nil)
		uc := usecase.NewContactFormUsecase(repo, validator)

		view, err := uc.ChangeField(ctx, "form1", "firstName", "123")
		require.NoError(t, err)
		require.Len(t, view.Errors, 1)
		assert.Equal(t, "firstName must be at least 5 characters in length", view.Errors[0].Message)
		assert.Equal(t, "123", view.Inputs[0].Value)
	})

	t.Run("Should reject an unknown field before touching the repository", func(t *testing.T) {
		repo := new(MockFormRepo)
		uc := usecase.NewContactFormUsecase(repo, validator)

		_, err := uc.ChangeField(ctx, "form1", "phone", "123")
		assert.ErrorIs(t, err, domain.ErrUnknownField)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Should fail for an unknown form", func(t *testing.T) {
		repo := new(MockFormRepo)
		repo.On("Get", ctx, "missing").Return(nil, domain.ErrFormNotFound)
		uc := usecase.NewContactFormUsecase(repo, validator)

		_, err := uc.ChangeField(ctx, "missing", "email", "a@b.co")
		assert.ErrorIs(t, err, domain.ErrFormNotFound)
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should render three errors for an empty form", func(t *testing.T) {
		repo := new(MockFormRepo)
		repo.On("Get", ctx, "form1").Return(newInstance("form1"), nil)
		uc := usecase.NewContactFormUsecase(repo, validator)

		view, err := uc.Submit(ctx, "form1", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.SubmitRejected, view.Status)
		assert.Len(t, view.Errors, 3)
		assert.Nil(t, view.Display)
	})

	t.Run("Should apply posted values before submitting", func(t *testing.T) {
		repo := new(MockFormRepo)
		repo.On("Get", ctx, "form1").Return(newInstance("form1"), nil)
		uc := usecase.NewContactFormUsecase(repo, validator)

		view, err := uc.Submit(ctx, "form1", &domain.FieldValues{
			FirstName: "Alexander",
			LastName:  "Monteiro",
			Email:     "monteiro@email.com",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SubmitAccepted, view.Status)
		require.NotNil(t, view.Display)
		assert.Equal(t, "monteiro@email.com", view.Display.Email)
		assert.False(t, view.Display.ShowMessage)
	})

	t.Run("Should keep state between calls on the same instance", func(t *testing.T) {
		instance := newInstance("form1")
		repo := new(MockFormRepo)
		repo.On("Get", ctx, "form1").Return(instance, nil)
		uc := usecase.NewContactFormUsecase(repo, validator)

		_, err := uc.ChangeField(ctx, "form1", "firstName", "Alexander")
		require.NoError(t, err)
		_, err = uc.ChangeField(ctx, "form1", "lastName", "Monteiro")
		require.NoError(t, err)

		view, err := uc.Submit(ctx, "form1", nil)
		require.NoError(t, err)
		require.Len(t, view.Errors, 1)
		assert.Equal(t, "email is a required field", view.Errors[0].Message)
	})
}

func TestResetAndUnmount(t *testing.T) {
	ctx := context.Background()
	instance := newInstance("form1")
	repo := new(MockFormRepo)
	repo.On("Get", ctx, "form1").Return(instance, nil)
	repo.On("Delete", ctx, "form1").Return(nil).Once()
	repo.On("Delete", ctx, "form1").Return(domain.ErrFormNotFound)
	uc := usecase.NewContactFormUsecase(repo, validator)

	_, err := uc.Submit(ctx, "form1", nil)
	require.NoError(t, err)

	view, err := uc.Reset(ctx, "form1")
	require.NoError(t, err)
	assert.Empty(t, view.Errors)
	assert.Equal(t, domain.SubmitIdle, view.Status)

	assert.NoError(t, uc.Unmount(ctx, "form1"))
	assert.ErrorIs(t, uc.Unmount(ctx, "form1"), domain.ErrFormNotFound)
}
