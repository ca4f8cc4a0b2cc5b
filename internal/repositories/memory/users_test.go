package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/repositories/memory"
)

func TestUserDirectory_FindUserByCode(t *testing.T) {
	ctx := context.Background()
	directory := memory.NewUserDirectory(memory.DefaultUsers()...)

	user, err := directory.FindUserByCode(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, "Alex Petrov", user.Name)

	// Codes match case-insensitively.
	user, err = directory.FindUserByCode(ctx, "AB12")
	require.NoError(t, err)
	assert.Equal(t, "Maria Keller", user.Name)

	_, err = directory.FindUserByCode(ctx, "zzzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
