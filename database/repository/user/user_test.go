package userRepo

import (
	"context"
	"testing"

	"bookingsite/database"
	"bookingsite/database/memstore"
	"bookingsite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetByEmail(t *testing.T) {
	repo := NewUserRepo(memstore.New())
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "owner@example.com")
	assert.ErrorIs(t, err, database.ErrNotFound)

	id, err := repo.Create(ctx, models.User{Email: "owner@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	user, err := repo.GetByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}
