package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techsolutions/horabank/models"
)

func TestFormValidator_LoginRequest(t *testing.T) {
	fv := NewFormValidator()
	ctx := context.Background()

	require.NoError(t, fv.Validate(ctx, models.LoginRequest{Email: "a@b.com", Password: "x"}))

	err := fv.Validate(ctx, models.LoginRequest{Email: "not-an-email", Password: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password is required")
}

func TestFormValidator_RegisterForm(t *testing.T) {
	fv := NewFormValidator()
	ctx := context.Background()

	valid := models.RegisterForm{
		Name:            "Ana",
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	require.NoError(t, fv.Validate(ctx, valid))

	t.Run("short password", func(t *testing.T) {
		form := valid
		form.Password = "abc"
		form.ConfirmPassword = "abc"

		err := fv.Validate(ctx, form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password must be at least 6 characters")
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		form := valid
		form.ConfirmPassword = "secret2"

		assert.ErrorIs(t, fv.Validate(ctx, form), ErrPasswordsDoNotMatch)
	})

	t.Run("unknown role", func(t *testing.T) {
		form := valid
		form.Role = "superuser"

		err := fv.Validate(ctx, form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "role must be one of")
	})
}

func TestFormValidator_TaskForm(t *testing.T) {
	fv := NewFormValidator()
	ctx := context.Background()

	valid := models.TaskForm{
		Name:           "Landing page",
		Description:    "Marketing refresh",
		Priority:       models.PriorityMedium,
		EstimatedHours: 4,
		DueDate:        "2026-09-15",
	}
	require.NoError(t, fv.Validate(ctx, valid))

	t.Run("zero estimated hours", func(t *testing.T) {
		form := valid
		form.EstimatedHours = 0

		err := fv.Validate(ctx, form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "estimatedhours")
	})

	t.Run("unknown priority", func(t *testing.T) {
		form := valid
		form.Priority = "urgent"

		err := fv.Validate(ctx, form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority must be one of")
	})
}

func TestFormValidator_ProfileUpdate(t *testing.T) {
	fv := NewFormValidator()
	ctx := context.Background()

	// all fields optional: an empty update is a valid no-op
	require.NoError(t, fv.Validate(ctx, models.ProfileUpdate{}))

	err := fv.Validate(ctx, models.ProfileUpdate{Email: "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
}

func TestFormValidator_UnsupportedType(t *testing.T) {
	fv := NewFormValidator()

	assert.ErrorIs(t, fv.Validate(context.Background(), 42), ErrUnsupportedType)
}
