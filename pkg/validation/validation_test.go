package validation_test

import (
	"testing"

	"go-contact-form/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,email"`
}

func TestStructMessages(t *testing.T) {
	v, err := validation.New()
	require.NoError(t, err)

	t.Run("Should report required fields by json name", func(t *testing.T) {
		msgs, err := v.Struct(signup{})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"name":  "name is a required field",
			"email": "email is a required field",
		}, msgs)
	})

	t.Run("Should report length in characters", func(t *testing.T) {
		msgs, err := v.Struct(signup{Name: "Al", Email: "al@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "name must be at least 3 characters in length", msgs["name"])
		assert.Len(t, msgs, 1)
	})

	t.Run("Should reject an email without a TLD", func(t *testing.T) {
		msgs, err := v.Struct(signup{Name: "Alex", Email: "alex@gmail"})
		require.NoError(t, err)
		assert.Equal(t, "email must be a valid email address", msgs["email"])
	})

	t.Run("Should accept a valid struct", func(t *testing.T) {
		msgs, err := v.Struct(signup{Name: "Alex", Email: "alex@gmail.com", Nickname: "a@b.io"})
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("Should pass through non-validation errors", func(t *testing.T) {
		_, err := v.Struct(42)
		assert.Error(t, err)
	})
}

func TestEmailShapes(t *testing.T) {
	v := validation.MustNew()
	type addr struct {
		Email string `json:"email" validate:"email"`
	}

	tests := []struct {
		email string
		valid bool
	}{
		{"monteiro@email.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", true},
		{"alex@gmail", false},
		{"alex@gmail.c", false},
		{"alexgmail.com", false},
		{"alex@@gmail.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			msgs, err := v.Struct(addr{Email: tt.email})
			require.NoError(t, err)
			_, failed := msgs["email"]
			assert.Equal(t, tt.valid, !failed)
		})
	}
}
